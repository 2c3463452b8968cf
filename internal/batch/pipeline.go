// Package batch runs one sequencing job per input file on a bounded set of
// worker goroutines.
package batch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Result describes one finished job.
type Result struct {
	Input    string
	Output   string
	Slides   int
	Score    int
	Unplaced int
	Elapsed  time.Duration
}

// Processor handles a single input.
type Processor func(ctx context.Context, input string) (Result, error)

type job struct {
	index int
	input string
}

// Run feeds inputs through process with at most workers jobs in flight.
// workers <= 0 starts one worker per input. Results come back in input
// order. The first failing job cancels the rest and its error is returned.
func Run(ctx context.Context, inputs []string, workers int, process Processor) ([]Result, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	if workers <= 0 || workers > len(inputs) {
		workers = len(inputs)
	}

	jobsCh := make(chan job, len(inputs))
	for i, in := range inputs {
		jobsCh <- job{index: i, input: in}
	}
	close(jobsCh)

	results := make([]Result, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for j := range jobsCh {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := process(ctx, j.input)
				if err != nil {
					return fmt.Errorf("%s: %w", j.input, err)
				}
				// each index is written by exactly one worker
				results[j.index] = res
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
