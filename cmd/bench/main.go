package main

import (
	"bytes"
	"flag"
	"fmt"
	"time"

	"photo-slideshow/internal/logging"
	"photo-slideshow/internal/photo"
	"photo-slideshow/internal/sequence"
)

func main() {
	inputFlag := flag.String("input", "", "Photo input file. When empty a synthetic set is generated.")
	sizeFlag := flag.Int("size", 10000, "Number of photos to generate when -input is empty.")
	seedFlag := flag.Int64("seed", 1, "Seed for the generated set.")
	hWindowFlag := flag.Int("hwindow", sequence.DefaultWindows().Horizontal, "Horizontal candidate window.")
	vOuterFlag := flag.Int("vouter", sequence.DefaultWindows().VerticalOuter, "Outer vertical candidate window.")
	vInnerFlag := flag.Int("vinner", sequence.DefaultWindows().VerticalInner, "Inner vertical candidate window.")
	headerFlag := flag.Bool("header", false, "Print the CSV header first.")
	flag.Parse()

	windows := sequence.Windows{
		Horizontal:    *hWindowFlag,
		VerticalOuter: *vOuterFlag,
		VerticalInner: *vInnerFlag,
	}
	if err := windows.Validate(); err != nil {
		logging.Fatal().Err(err).Msg("invalid windows")
	}

	var set *photo.Set
	var err error
	if *inputFlag != "" {
		set, err = photo.Load(*inputFlag)
	} else {
		opts := photo.DefaultGenerateOptions()
		opts.Photos = *sizeFlag
		opts.Seed = *seedFlag
		var buf bytes.Buffer
		if err = photo.Generate(&buf, opts); err == nil {
			set, err = photo.Parse(&buf)
		}
	}
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to prepare photos")
	}

	// Loading is not part of the measurement.
	start := time.Now()
	res := sequence.Sequence(set, sequence.WithWindows(windows))
	elapsed := time.Since(start)

	if *headerFlag {
		fmt.Println("h_window,v_outer,v_inner,photos,slides,score,time_ms")
	}
	// Print CSV: h_window,v_outer,v_inner,photos,slides,score,time_ms
	fmt.Printf("%d,%d,%d,%d,%d,%d,%.3f\n",
		windows.Horizontal, windows.VerticalOuter, windows.VerticalInner,
		set.Len(), res.Show.Len(), res.Show.TotalScore(),
		float64(elapsed.Nanoseconds())/1e6)
}
