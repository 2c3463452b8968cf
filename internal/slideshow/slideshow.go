// Package slideshow holds a finished slide ordering, its total interest score,
// and the text format it is written in.
package slideshow

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"photo-slideshow/internal/slide"
)

// Slideshow is an ordered sequence of slides. It is append-only while being
// built and treated as immutable afterwards.
type Slideshow struct {
	slides []slide.Slide
}

// New returns an empty slideshow with room for capacity slides.
func New(capacity int) *Slideshow {
	return &Slideshow{slides: make([]slide.Slide, 0, capacity)}
}

// Append adds s at the end of the show.
func (s *Slideshow) Append(sl slide.Slide) {
	s.slides = append(s.slides, sl)
}

func (s *Slideshow) Len() int { return len(s.slides) }

// Slides returns the slides in display order. Callers must not modify it.
func (s *Slideshow) Slides() []slide.Slide { return s.slides }

// Last returns the most recently appended slide.
func (s *Slideshow) Last() (slide.Slide, bool) {
	if len(s.slides) == 0 {
		return slide.Slide{}, false
	}
	return s.slides[len(s.slides)-1], true
}

// TotalScore sums the interest score of every adjacent pair of slides.
func (s *Slideshow) TotalScore() int {
	total := 0
	for i := 1; i < len(s.slides); i++ {
		total += slide.Score(s.slides[i-1], s.slides[i])
	}
	return total
}

// WriteTo writes the slide count followed by one line per slide holding its
// photo ids separated by a space.
func (s *Slideshow) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64

	n, err := bw.WriteString(strconv.Itoa(len(s.slides)) + "\n")
	written += int64(n)
	if err != nil {
		return written, err
	}

	var line []byte
	for _, sl := range s.slides {
		line = line[:0]
		for k, id := range sl.PhotoIDs() {
			if k > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendInt(line, int64(id), 10)
		}
		line = append(line, '\n')
		n, err := bw.Write(line)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, bw.Flush()
}

// Serialize returns the text produced by WriteTo.
func (s *Slideshow) Serialize() string {
	var sb strings.Builder
	_, _ = s.WriteTo(&sb)
	return sb.String()
}

// WriteFile writes the serialized show to path, replacing any existing file.
func (s *Slideshow) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	if _, err := s.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file %s: %w", path, err)
	}
	return nil
}

// OutputPath derives the result path from an input path by replacing the
// first occurrence of inputMarker with resultMarker. A path without the
// marker is returned unchanged.
func OutputPath(input, inputMarker, resultMarker string) string {
	if inputMarker == "" {
		return input
	}
	return strings.Replace(input, inputMarker, resultMarker, 1)
}
