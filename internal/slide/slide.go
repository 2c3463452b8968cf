// Package slide provides the display unit of a slideshow and the interest
// score between two slides.
package slide

import (
	"slices"

	"photo-slideshow/internal/photo"
)

// Kind distinguishes the two slide variants.
type Kind uint8

const (
	// Single shows one horizontal photo.
	Single Kind = iota + 1
	// Dual shows two vertical photos side by side.
	Dual
)

// Slide is a read-only view over photos owned by a photo.Set. It stores the
// photos' indices into the set rather than the photos themselves.
// The zero Slide is invalid.
type Slide struct {
	set    *photo.Set
	kind   Kind
	first  int
	second int
}

// NewSingle returns a slide for set.Horizontal[i].
func NewSingle(set *photo.Set, i int) Slide {
	return Slide{set: set, kind: Single, first: i}
}

// NewDual returns a slide for set.Vertical[i] and set.Vertical[j], in that order.
func NewDual(set *photo.Set, i, j int) Slide {
	return Slide{set: set, kind: Dual, first: i, second: j}
}

func (s Slide) Kind() Kind { return s.kind }

// Photos returns the constituent photos: one for Single, two for Dual.
func (s Slide) Photos() []photo.Photo {
	if s.kind == Dual {
		return []photo.Photo{s.set.Vertical[s.first], s.set.Vertical[s.second]}
	}
	return []photo.Photo{s.set.Horizontal[s.first]}
}

// PhotoIDs returns the ids of the constituent photos in display order.
func (s Slide) PhotoIDs() []photo.PhotoID {
	if s.kind == Dual {
		return []photo.PhotoID{s.set.Vertical[s.first].ID, s.set.Vertical[s.second].ID}
	}
	return []photo.PhotoID{s.set.Horizontal[s.first].ID}
}

func (s Slide) primary() []photo.TagID {
	if s.kind == Dual {
		return s.set.Vertical[s.first].Tags
	}
	return s.set.Horizontal[s.first].Tags
}

func (s Slide) secondary() []photo.TagID {
	if s.kind == Dual {
		return s.set.Vertical[s.second].Tags
	}
	return nil
}

// EffectiveLength is the size of the slide's tag set. Tags shared by the two
// photos of a Dual slide count once.
func (s Slide) EffectiveLength() int {
	a, b := s.primary(), s.secondary()
	return len(a) + len(b) - intersectionSize(a, b)
}

// Contains reports whether either constituent photo carries tag.
func (s Slide) Contains(tag photo.TagID) bool {
	if _, ok := slices.BinarySearch(s.primary(), tag); ok {
		return true
	}
	_, ok := slices.BinarySearch(s.secondary(), tag)
	return ok
}

// EachTag calls fn once for every distinct tag of the slide.
func (s Slide) EachTag(fn func(photo.TagID)) {
	a := s.primary()
	for _, t := range a {
		fn(t)
	}
	for _, t := range s.secondary() {
		if _, dup := slices.BinarySearch(a, t); !dup {
			fn(t)
		}
	}
}

// intersectionSize counts the tags common to two strictly ascending lists.
func intersectionSize(a, b []photo.TagID) int {
	n, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			n++
			i++
			j++
		}
	}
	return n
}
