package main

import (
	"flag"
	"fmt"
	"os"

	"photo-slideshow/internal/logging"
	"photo-slideshow/internal/photo"
	"photo-slideshow/internal/slideshow"
)

func main() {
	inputFlag := flag.String("input", "", "Photo input file the submission was built from.")
	resultFlag := flag.String("result", "", "Submission file to score.")
	stemFlag := flag.Bool("stem", false, "Stem tags while loading the input.")
	flag.Parse()

	if *inputFlag == "" || *resultFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: scorer -input <photos.txt> -result <photos.result>")
		os.Exit(2)
	}

	var opts []photo.VocabularyOption
	if *stemFlag {
		opts = append(opts, photo.WithStemming())
	}
	set, err := photo.Load(*inputFlag, opts...)
	if err != nil {
		logging.Fatal().Err(err).Str("input", *inputFlag).Msg("failed to load photos")
	}

	f, err := os.Open(*resultFlag)
	if err != nil {
		logging.Fatal().Err(err).Str("result", *resultFlag).Msg("failed to open submission")
	}
	defer f.Close()

	show, err := slideshow.ParseSubmission(f, set)
	if err != nil {
		logging.Fatal().Err(err).Str("result", *resultFlag).Msg("invalid submission")
	}

	placed := 0
	for _, sl := range show.Slides() {
		placed += len(sl.PhotoIDs())
	}

	// CSV: slides,score,placed,photos
	fmt.Printf("%d,%d,%d,%d\n", show.Len(), show.TotalScore(), placed, set.Len())
}
