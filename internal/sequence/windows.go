package sequence

import "fmt"

// Windows bounds the candidate search of each sequencing step. Larger windows
// find better continuations at higher cost; the vertical search is quadratic.
type Windows struct {
	// Horizontal is how many leading entries of the horizontal pool are scored.
	Horizontal int
	// VerticalOuter bounds the first photo of a candidate vertical pair.
	VerticalOuter int
	// VerticalInner bounds the second photo of a candidate vertical pair.
	VerticalInner int
}

// DefaultWindows returns the stock bounds {40000, 1000, 10}.
func DefaultWindows() Windows {
	return Windows{Horizontal: 40000, VerticalOuter: 1000, VerticalInner: 10}
}

// Validate rejects bounds that would stall sequencing.
func (w Windows) Validate() error {
	if w.Horizontal <= 0 || w.VerticalOuter <= 0 || w.VerticalInner <= 0 {
		return fmt.Errorf("windows must be positive, got %+v", w)
	}
	if w.VerticalOuter == 1 && w.VerticalInner == 1 {
		return fmt.Errorf("vertical windows of 1x1 can never form a pair")
	}
	return nil
}
