package photo

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

// UTF8BOM is the byte order mark for UTF-8
var UTF8BOM = []byte{0xEF, 0xBB, 0xBF}

const maxLineBytes = 4 << 20

// Load opens the input file at path and parses it with Parse.
func Load(path string, opts ...VocabularyOption) (*Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer file.Close()

	set, err := Parse(file, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return set, nil
}

// Parse reads an input description: a header line holding the photo count,
// then one line per photo of the form "<H|V> <n> <tag_1> ... <tag_n>".
// Photo ids follow line order across both orientations. Tags are interned in
// first-occurrence order into a fresh Vocabulary owned by the returned Set.
// Blank lines are skipped and do not consume an id.
func Parse(r io.Reader, opts ...VocabularyOption) (*Set, error) {
	br := bufio.NewReader(r)
	bomCand, err := br.Peek(3)
	if err == nil && bytes.Equal(bomCand, UTF8BOM) {
		_, _ = br.Discard(3)
	}

	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	set := &Set{Vocabulary: NewVocabulary(opts...)}
	lineNumber := 0
	headerSeen := false
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !headerSeen {
			declared, convErr := strconv.Atoi(line)
			if convErr != nil {
				return nil, fmt.Errorf("line %d: invalid photo count %q: %w", lineNumber, line, convErr)
			}
			set.Declared = declared
			headerSeen = true
			continue
		}

		p, parseErr := parsePhoto(line, PhotoID(set.Len()), set.Vocabulary)
		if parseErr != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, parseErr)
		}
		set.add(p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	if !headerSeen {
		return nil, fmt.Errorf("missing photo count header")
	}
	return set, nil
}

func parsePhoto(line string, id PhotoID, vocab *Vocabulary) (Photo, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Photo{}, fmt.Errorf("expected orientation and tag count, got %q", line)
	}

	var orientation Orientation
	switch fields[0] {
	case "H":
		orientation = Horizontal
	case "V":
		orientation = Vertical
	default:
		return Photo{}, fmt.Errorf("unknown orientation %q", fields[0])
	}

	count, err := strconv.Atoi(fields[1])
	if err != nil {
		return Photo{}, fmt.Errorf("invalid tag count %q: %w", fields[1], err)
	}
	if count != len(fields)-2 {
		return Photo{}, fmt.Errorf("declared %d tags but found %d", count, len(fields)-2)
	}

	tags := make([]TagID, 0, count)
	for _, t := range fields[2:] {
		tags = append(tags, vocab.Intern(t))
	}
	slices.Sort(tags)
	tags = slices.Compact(tags)

	return Photo{ID: id, Orientation: orientation, Tags: tags}, nil
}
