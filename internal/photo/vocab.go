package photo

import (
	"strings"

	"github.com/reiver/go-porterstemmer"
)

// TagID is a dense identifier for one distinct tag text within a single input set.
type TagID int

// Vocabulary interns tag text into TagIDs. Identifiers are handed out from 0
// in order of first occurrence. A Vocabulary belongs to exactly one input set
// and is not safe for concurrent use.
type Vocabulary struct {
	ids       map[string]TagID
	next      TagID
	normalize func(string) string
}

// VocabularyOption configures a Vocabulary.
type VocabularyOption func(*Vocabulary)

// WithStemming folds tags to lower case and reduces them to their Porter stem
// before interning, so "Cats" and "cat" share one TagID.
func WithStemming() VocabularyOption {
	return func(v *Vocabulary) {
		v.normalize = stemTag
	}
}

func stemTag(tag string) string {
	return porterstemmer.StemString(strings.ToLower(tag))
}

// NewVocabulary returns an empty vocabulary.
func NewVocabulary(opts ...VocabularyOption) *Vocabulary {
	v := &Vocabulary{ids: make(map[string]TagID)}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Intern returns the TagID for tag, allocating the next free one on first sight.
func (v *Vocabulary) Intern(tag string) TagID {
	if v.normalize != nil {
		tag = v.normalize(tag)
	}
	if id, ok := v.ids[tag]; ok {
		return id
	}
	id := v.next
	v.ids[tag] = id
	v.next++
	return id
}

// Lookup reports the TagID previously assigned to tag, if any.
func (v *Vocabulary) Lookup(tag string) (TagID, bool) {
	if v.normalize != nil {
		tag = v.normalize(tag)
	}
	id, ok := v.ids[tag]
	return id, ok
}

// Len is the number of distinct tags interned so far.
func (v *Vocabulary) Len() int {
	return int(v.next)
}
