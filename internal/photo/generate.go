package photo

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
)

// GenerateOptions controls the shape of a synthetic input.
type GenerateOptions struct {
	Photos        int
	VerticalShare float64 // fraction of photos that are vertical, 0..1
	Vocabulary    int     // number of distinct tag texts to draw from
	MinTags       int
	MaxTags       int
	Seed          int64
}

// DefaultGenerateOptions resembles a mid-sized mixed-orientation input.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Photos:        10000,
		VerticalShare: 0.5,
		Vocabulary:    500,
		MinTags:       3,
		MaxTags:       15,
		Seed:          1,
	}
}

// Generate writes a syntactically valid input file to w. The same options
// always produce the same bytes.
func Generate(w io.Writer, opts GenerateOptions) error {
	if opts.Photos < 0 || opts.Vocabulary <= 0 || opts.MinTags < 0 || opts.MaxTags < opts.MinTags {
		return fmt.Errorf("invalid generate options: %+v", opts)
	}
	maxTags := opts.MaxTags
	if maxTags > opts.Vocabulary {
		maxTags = opts.Vocabulary
	}
	minTags := opts.MinTags
	if minTags > maxTags {
		minTags = maxTags
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d\n", opts.Photos); err != nil {
		return err
	}
	for i := 0; i < opts.Photos; i++ {
		orientation := "H"
		if rng.Float64() < opts.VerticalShare {
			orientation = "V"
		}
		n := minTags + rng.Intn(maxTags-minTags+1)
		tags := rng.Perm(opts.Vocabulary)[:n]

		if _, err := fmt.Fprintf(bw, "%s %d", orientation, n); err != nil {
			return err
		}
		for _, t := range tags {
			if _, err := fmt.Fprintf(bw, " t%d", t); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
