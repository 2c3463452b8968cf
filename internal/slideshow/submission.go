package slideshow

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"photo-slideshow/internal/photo"
	"photo-slideshow/internal/slide"
)

// ParseSubmission reads a slideshow in the output format back against the
// photo set it was built from, checking that every slide is well formed and
// that no photo is shown twice. Photos missing from the submission are
// allowed; callers compare Len against the set when they need completeness.
func ParseSubmission(r io.Reader, set *photo.Set) (*Slideshow, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lineNumber := 0
	next := func() (string, bool) {
		for scanner.Scan() {
			lineNumber++
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				return line, true
			}
		}
		return "", false
	}

	header, ok := next()
	if !ok {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("error reading submission: %w", err)
		}
		return nil, fmt.Errorf("missing slide count")
	}
	count, err := strconv.Atoi(header)
	if err != nil || count < 0 {
		return nil, fmt.Errorf("line %d: invalid slide count %q", lineNumber, header)
	}

	show := New(count)
	used := make([]bool, set.Len())
	for k := 0; k < count; k++ {
		line, ok := next()
		if !ok {
			break
		}
		sl, err := parseSlide(line, set, used)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		show.Append(sl)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading submission: %w", err)
	}
	if show.Len() != count {
		return nil, fmt.Errorf("declared %d slides but found %d", count, show.Len())
	}
	if extra, ok := next(); ok {
		return nil, fmt.Errorf("line %d: unexpected content after %d slides: %q", lineNumber, count, extra)
	}
	return show, nil
}

func parseSlide(line string, set *photo.Set, used []bool) (slide.Slide, error) {
	fields := strings.Fields(line)
	if len(fields) != 1 && len(fields) != 2 {
		return slide.Slide{}, fmt.Errorf("expected 1 or 2 photo ids, got %d", len(fields))
	}

	indices := make([]int, len(fields))
	for k, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return slide.Slide{}, fmt.Errorf("invalid photo id %q", f)
		}
		id := photo.PhotoID(n)
		orientation, idx, ok := set.Locate(id)
		if !ok {
			return slide.Slide{}, fmt.Errorf("unknown photo id %d", id)
		}
		if used[id] {
			return slide.Slide{}, fmt.Errorf("photo %d is used more than once", id)
		}
		want := photo.Horizontal
		if len(fields) == 2 {
			want = photo.Vertical
		}
		if orientation != want {
			return slide.Slide{}, fmt.Errorf("photo %d is %s but a %d-photo slide needs %s photos", id, orientation, len(fields), want)
		}
		used[id] = true
		indices[k] = idx
	}

	if len(indices) == 2 {
		return slide.NewDual(set, indices[0], indices[1]), nil
	}
	return slide.NewSingle(set, indices[0]), nil
}
