package compression_test

import (
	"bytes"
	"testing"

	dt "github.com/dargueta/chunkrle/testing"
	c "github.com/dargueta/chunkrle/utilities/compression"
	"github.com/stretchr/testify/assert"
)

type chunkTestCase struct {
	Input    []byte
	Expected []c.Run
	Name     string
}

func TestEncodeChunk__Basic(t *testing.T) {
	tests := []chunkTestCase{
		{[]byte{}, []c.Run{}, "empty"},
		{[]byte{7}, []c.Run{{7, 1}}, "single byte"},
		{[]byte{4, 4}, []c.Run{{4, 2}}, "run with two only"},
		{
			[]byte{0, 1, 2, 3, 4},
			[]c.Run{{0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}},
			"no runs",
		},
		{[]byte{6, 1, 0, 0, 0}, []c.Run{{6, 1}, {1, 1}, {0, 3}}, "run at end"},
		{
			[]byte{9, 5, 5, 5, 5, 5, 5, 3, 3, 3, 3, 7, 2, 6},
			[]c.Run{{9, 1}, {5, 6}, {3, 4}, {7, 1}, {2, 1}, {6, 1}},
			"adjacent runs",
		},
		{
			[]byte{1, 9, 4, 4, 4, 4, 4, 6, 6, 0, 1, 0, 0, 0},
			[]c.Run{{1, 1}, {9, 1}, {4, 5}, {6, 2}, {0, 1}, {1, 1}, {0, 3}},
			"value recurs after other runs",
		},
		{[]byte("AAAB"), []c.Run{{'A', 3}, {'B', 1}}, "first chunk of AAABBC"},
		{[]byte("BC"), []c.Run{{'B', 1}, {'C', 1}}, "second chunk of AAABBC"},
		{bytes.Repeat([]byte{5}, 1024), []c.Run{{5, 1024}}, "single long run"},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				runs := c.EncodeChunk(test.Input)
				assert.Equal(t, test.Expected, runs)
			},
		)
	}
}

func TestEncodeChunk__RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"random":         dt.CreateRandomBuffer(1852, t),
		"entirely nulls": make([]byte, 571),
		"non-null run":   bytes.Repeat([]byte{182}, 934),
		"sparse":         dt.CreateSparseBuffer(4096, 97, t),
	}

	for name, data := range inputs {
		t.Run(
			name,
			func(t *testing.T) {
				runs := c.EncodeChunk(data)
				dt.RequireValidRuns(t, runs)

				assert.LessOrEqual(t, len(runs), len(data), "more runs than input bytes")
				assert.EqualValues(t, len(data), c.TotalCount(runs), "counts don't add up")
				assert.Equal(t, data, dt.ExpandRuns(runs), "expanded runs differ from input")
				t.Logf("encoded %d bytes to %d runs", len(data), len(runs))
			},
		)
	}
}

func TestEncodeChunk__DoesNotModifyInput(t *testing.T) {
	data := dt.CreateSparseBuffer(512, 5, t)
	original := make([]byte, len(data))
	copy(original, data)

	c.EncodeChunk(data)
	assert.Equal(t, original, data)
}

func TestLongestRun(t *testing.T) {
	assert.EqualValues(t, 0, c.LongestRun(nil))
	assert.EqualValues(
		t, 6, c.LongestRun([]c.Run{{9, 1}, {5, 6}, {3, 4}}))
}
