package photo

// PhotoID is the 0-based position of a photo among the description lines of
// its input file. It is only used for output.
type PhotoID int

// Orientation is fixed when a photo is parsed.
type Orientation byte

const (
	Horizontal Orientation = 'H'
	Vertical   Orientation = 'V'
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Photo is one parsed photo record. Tags are strictly ascending.
type Photo struct {
	ID          PhotoID
	Orientation Orientation
	Tags        []TagID
}

// location addresses a photo inside one of the Set's orientation slices.
type location struct {
	orientation Orientation
	index       int
}

// Set is the arena owning every photo of one input. It is built once by Parse
// and read-only afterwards; slides and pools refer to photos by their index
// into Horizontal or Vertical.
type Set struct {
	Horizontal []Photo
	Vertical   []Photo
	Vocabulary *Vocabulary

	// Declared is the photo count announced by the header line. It is
	// informational and may differ from Len.
	Declared int

	byID []location
}

// Len is the number of photos actually parsed.
func (s *Set) Len() int {
	return len(s.Horizontal) + len(s.Vertical)
}

// Locate returns the orientation of photo id and its index within that
// orientation's slice.
func (s *Set) Locate(id PhotoID) (Orientation, int, bool) {
	if id < 0 || int(id) >= len(s.byID) {
		return 0, 0, false
	}
	loc := s.byID[id]
	return loc.orientation, loc.index, true
}

// add appends p to the slice matching its orientation.
func (s *Set) add(p Photo) {
	switch p.Orientation {
	case Vertical:
		s.byID = append(s.byID, location{orientation: Vertical, index: len(s.Vertical)})
		s.Vertical = append(s.Vertical, p)
	default:
		s.byID = append(s.byID, location{orientation: Horizontal, index: len(s.Horizontal)})
		s.Horizontal = append(s.Horizontal, p)
	}
}
