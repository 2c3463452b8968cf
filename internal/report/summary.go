// Package report renders the JSON summary of a batch run.
package report

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"photo-slideshow/internal/batch"
)

// Entry is the per-input part of a Summary.
type Entry struct {
	Input     string  `json:"input"`
	Output    string  `json:"output"`
	Slides    int     `json:"slides"`
	Score     int     `json:"score"`
	Unplaced  int     `json:"unplaced"`
	ElapsedMs float64 `json:"elapsed_ms"`
}

type Summary struct {
	TotalScore int     `json:"total_score"`
	Inputs     []Entry `json:"inputs"`
}

// FromResults builds a summary in the order of results.
func FromResults(results []batch.Result) Summary {
	s := Summary{Inputs: make([]Entry, 0, len(results))}
	for _, r := range results {
		s.TotalScore += r.Score
		s.Inputs = append(s.Inputs, Entry{
			Input:     r.Input,
			Output:    r.Output,
			Slides:    r.Slides,
			Score:     r.Score,
			Unplaced:  r.Unplaced,
			ElapsedMs: float64(r.Elapsed.Microseconds()) / 1e3,
		})
	}
	return s
}

// Write stores the summary as indented JSON at path.
func (s Summary) Write(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write summary %s: %w", path, err)
	}
	return nil
}
