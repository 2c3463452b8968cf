package slide

import "photo-slideshow/internal/photo"

// Score is the interest factor between two adjacent slides: the number of
// shared tags, capped by how many tags each side has that the other lacks.
//
//	common = |tags(x) ∩ tags(y)|
//	score  = min(common, |x| - common, |y| - common)
//
// Score is symmetric and never negative.
func Score(x, y Slide) int {
	common := Common(x, y)
	return min(common, x.EffectiveLength()-common, y.EffectiveLength()-common)
}

// Common counts the distinct tags carried by both slides.
func Common(x, y Slide) int {
	common := 0
	x.EachTag(func(t photo.TagID) {
		if y.Contains(t) {
			common++
		}
	})
	return common
}
