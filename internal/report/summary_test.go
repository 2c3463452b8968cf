package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-slideshow/internal/batch"
)

func TestFromResults(t *testing.T) {
	s := FromResults([]batch.Result{
		{Input: "a.txt", Output: "a.result", Slides: 3, Score: 2, Elapsed: 1500 * time.Microsecond},
		{Input: "b.txt", Output: "b.result", Slides: 10, Score: 7, Unplaced: 1},
	})
	assert.Equal(t, 9, s.TotalScore)
	require.Len(t, s.Inputs, 2)
	assert.Equal(t, "a.txt", s.Inputs[0].Input)
	assert.InDelta(t, 1.5, s.Inputs[0].ElapsedMs, 1e-9)
	assert.Equal(t, 1, s.Inputs[1].Unplaced)

	empty := FromResults(nil)
	assert.Zero(t, empty.TotalScore)
	assert.NotNil(t, empty.Inputs)
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	s := FromResults([]batch.Result{{Input: "a.txt", Output: "a.result", Slides: 1}})
	require.NoError(t, s.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.EqualValues(t, 0, decoded["total_score"])
	inputs, ok := decoded["inputs"].([]any)
	require.True(t, ok)
	require.Len(t, inputs, 1)
	assert.Equal(t, "a.result", inputs[0].(map[string]any)["output"])

	assert.Error(t, s.Write(filepath.Join(t.TempDir(), "no", "such", "dir.json")))
}
