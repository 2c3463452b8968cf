// gen.go  –  go run ./scripts/gen -n 20000 -seed 7 >data/synthetic.txt
package main

import (
	"bufio"
	"flag"
	"os"

	"photo-slideshow/internal/logging"
	"photo-slideshow/internal/photo"
)

var (
	count    = flag.Int("n", photo.DefaultGenerateOptions().Photos, "number of photos")
	vertical = flag.Float64("vertical", photo.DefaultGenerateOptions().VerticalShare, "share of vertical photos in [0,1]")
	vocab    = flag.Int("vocab", photo.DefaultGenerateOptions().Vocabulary, "number of distinct tags")
	minTags  = flag.Int("min-tags", photo.DefaultGenerateOptions().MinTags, "minimum tags per photo")
	maxTags  = flag.Int("max-tags", photo.DefaultGenerateOptions().MaxTags, "maximum tags per photo")
	seed     = flag.Int64("seed", photo.DefaultGenerateOptions().Seed, "random seed")
)

func main() {
	flag.Parse()

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	err := photo.Generate(w, photo.GenerateOptions{
		Photos:        *count,
		VerticalShare: *vertical,
		Vocabulary:    *vocab,
		MinTags:       *minTags,
		MaxTags:       *maxTags,
		Seed:          *seed,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("generate failed")
	}
}
