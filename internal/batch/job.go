package batch

import (
	"context"
	"fmt"
	"path/filepath"

	"photo-slideshow/internal/config"
	"photo-slideshow/internal/logging"
	"photo-slideshow/internal/photo"
	"photo-slideshow/internal/sequence"
	"photo-slideshow/internal/slideshow"
	"photo-slideshow/internal/util"
)

// NewProcessor returns the standard job: load the input, sequence it, and
// write the slideshow next to it.
func NewProcessor(cfg config.Config) Processor {
	return func(ctx context.Context, input string) (Result, error) {
		log := logging.ForJob(input)
		timer := util.NewTimer()

		var opts []photo.VocabularyOption
		if cfg.Tags.Stem {
			opts = append(opts, photo.WithStemming())
		}
		set, err := photo.Load(input, opts...)
		if err != nil {
			return Result{}, err
		}
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		log.Debug().
			Int("horizontal", len(set.Horizontal)).
			Int("vertical", len(set.Vertical)).
			Int("tags", set.Vocabulary.Len()).
			Msg("loaded photos")

		res := sequence.Sequence(set,
			sequence.WithWindows(cfg.Sequence.Windows()),
			sequence.WithProgress(cfg.Sequence.ProgressEvery, func(h, v int) {
				log.Info().Int("horizontal", h).Int("vertical", v).Msg("photos todo")
			}),
		)

		score := res.Show.TotalScore()
		out := slideshow.OutputPath(input, cfg.Output.InputMarker, cfg.Output.ResultMarker)
		log.Info().
			Int("score", score).
			Int("slides", res.Show.Len()).
			Int("unplaced", len(res.Unplaced)).
			Float64("elapsed_ms", timer.Ms()).
			Msg("found score")

		if len(res.Unplaced) > 0 {
			log.Warn().Ints("photos", photoIDs(res.Unplaced)).Msg("photos left without a slide")
		}
		if filepath.Clean(out) == filepath.Clean(input) {
			log.Warn().Str("output", out).Msg("output path has no marker, overwriting input")
		}

		if err := res.Show.WriteFile(out); err != nil {
			return Result{}, fmt.Errorf("write result: %w", err)
		}
		log.Debug().Str("output", out).Msg("wrote slideshow")

		return Result{
			Input:    input,
			Output:   out,
			Slides:   res.Show.Len(),
			Score:    score,
			Unplaced: len(res.Unplaced),
			Elapsed:  timer.Elapsed(),
		}, nil
	}
}

func photoIDs(ids []photo.PhotoID) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}
