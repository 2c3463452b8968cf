// Package sequence orders the photos of one input into a slideshow with a
// bounded greedy search: each step appends whichever candidate slide scores
// best against the previous one.
package sequence

import (
	"photo-slideshow/internal/photo"
	"photo-slideshow/internal/slide"
	"photo-slideshow/internal/slideshow"
)

// DefaultProgressEvery is the pool-size modulus of the progress notice.
const DefaultProgressEvery = 2000

// ProgressFunc receives the remaining pool sizes.
type ProgressFunc func(horizontal, vertical int)

// Result is the outcome of one sequencing run.
type Result struct {
	Show *slideshow.Slideshow
	// Unplaced lists photos that could not be put on any slide, which only
	// happens to a vertical photo left without a partner.
	Unplaced []photo.PhotoID
}

// Sequencer builds a slideshow for a single photo set. It is not safe for
// concurrent use; run one Sequencer per input.
type Sequencer struct {
	set           *photo.Set
	windows       Windows
	progressEvery int
	progress      ProgressFunc

	// marks[t] is true when tag t belongs to the anchor slide.
	marks     []bool
	marked    []photo.TagID
	anchorLen int
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithWindows overrides DefaultWindows.
func WithWindows(w Windows) Option {
	return func(s *Sequencer) { s.windows = w }
}

// WithProgress registers fn to be called whenever either pool's size modulo
// every equals every/2. every values below 2 fall back to DefaultProgressEvery.
func WithProgress(every int, fn ProgressFunc) Option {
	return func(s *Sequencer) {
		if every < 2 {
			every = DefaultProgressEvery
		}
		s.progressEvery = every
		s.progress = fn
	}
}

// New returns a sequencer over set.
func New(set *photo.Set, opts ...Option) *Sequencer {
	s := &Sequencer{
		set:           set,
		windows:       DefaultWindows(),
		progressEvery: DefaultProgressEvery,
		marks:         make([]bool, set.Vocabulary.Len()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sequence is shorthand for New(set, opts...).Run().
func Sequence(set *photo.Set, opts ...Option) Result {
	return New(set, opts...).Run()
}

// Run places every photo it can and returns the finished show.
func (s *Sequencer) Run() Result {
	set := s.set
	hpool := newPool(len(set.Horizontal))
	vpool := newPool(len(set.Vertical))
	show := slideshow.New(len(set.Horizontal) + len(set.Vertical)/2)

	switch {
	case len(hpool) > 0:
		show.Append(slide.NewSingle(set, hpool.remove(0)))
	case len(vpool) >= 2:
		a, b := vpool.takePair(0, 1)
		show.Append(slide.NewDual(set, a, b))
	}

	if show.Len() > 0 {
		s.extend(show, &hpool, &vpool)
	}

	var unplaced []photo.PhotoID
	for _, i := range hpool {
		unplaced = append(unplaced, set.Horizontal[i].ID)
	}
	for _, i := range vpool {
		unplaced = append(unplaced, set.Vertical[i].ID)
	}
	return Result{Show: show, Unplaced: unplaced}
}

// extend appends slides until neither pool can supply a candidate.
func (s *Sequencer) extend(show *slideshow.Slideshow, hpool, vpool *pool) {
	set := s.set
	for {
		last, _ := show.Last()
		s.anchor(last)

		bestH, hScore := -1, 0
		for i, n := 0, min(s.windows.Horizontal, len(*hpool)); i < n; i++ {
			sc := s.scoreAgainstAnchor(slide.NewSingle(set, (*hpool)[i]))
			if bestH < 0 || sc > hScore {
				bestH, hScore = i, sc
			}
		}

		bestI, bestJ, vScore := -1, -1, 0
		outer := min(s.windows.VerticalOuter, len(*vpool))
		inner := min(s.windows.VerticalInner, len(*vpool))
		for i := 0; i < outer; i++ {
			for j := 0; j < inner; j++ {
				if i == j {
					continue
				}
				sc := s.scoreAgainstAnchor(slide.NewDual(set, (*vpool)[i], (*vpool)[j]))
				if bestI < 0 || sc > vScore {
					bestI, bestJ, vScore = i, j, sc
				}
			}
		}

		s.reportProgress(len(*hpool), len(*vpool))

		switch {
		case bestH >= 0 && hScore >= vScore:
			show.Append(slide.NewSingle(set, hpool.remove(bestH)))
		case bestI >= 0:
			a, b := vpool.takePair(bestI, bestJ)
			show.Append(slide.NewDual(set, a, b))
		default:
			return
		}
	}
}

// anchor records the tag set of sl so candidates can be scored against it
// with one lookup per tag.
func (s *Sequencer) anchor(sl slide.Slide) {
	for _, t := range s.marked {
		s.marks[t] = false
	}
	s.marked = s.marked[:0]
	sl.EachTag(func(t photo.TagID) {
		s.marks[t] = true
		s.marked = append(s.marked, t)
	})
	s.anchorLen = len(s.marked)
}

// scoreAgainstAnchor equals slide.Score(anchor, c).
func (s *Sequencer) scoreAgainstAnchor(c slide.Slide) int {
	common, length := 0, 0
	c.EachTag(func(t photo.TagID) {
		length++
		if s.marks[t] {
			common++
		}
	})
	return min(common, s.anchorLen-common, length-common)
}

func (s *Sequencer) reportProgress(horizontal, vertical int) {
	if s.progress == nil {
		return
	}
	half := s.progressEvery / 2
	if horizontal%s.progressEvery == half || vertical%s.progressEvery == half {
		s.progress(horizontal, vertical)
	}
}
