package testing

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/dargueta/chunkrle/utilities/compression"
	"github.com/stretchr/testify/require"
)

// CreateRandomBuffer returns `size` bytes of random data. It is guaranteed to
// either return a valid slice or fail the test and abort.
func CreateRandomBuffer(size uint, t *testing.T) []byte {
	data := make([]byte, size)

	_, err := rand.Read(data)
	require.NoErrorf(t, err, "failed to initialize %d random bytes", size)
	return data
}

// CreateSparseBuffer returns `size` bytes that are mostly null, with a random
// non-null byte roughly every `spacing` bytes. This resembles the mostly-empty
// images RLE is good at, and produces long runs that cross chunk boundaries.
func CreateSparseBuffer(size, spacing uint, t *testing.T) []byte {
	noise := CreateRandomBuffer(size, t)
	data := make([]byte, size)
	for i := range data {
		if spacing > 0 && uint(noise[i])%spacing == 0 {
			data[i] = noise[i] | 1
		}
	}
	return data
}

// ExpandRuns reproduces the bytes a sequence of runs describes.
func ExpandRuns(runs []compression.Run) []byte {
	buffer := bytes.Buffer{}
	for _, run := range runs {
		buffer.Write(bytes.Repeat([]byte{run.Value}, int(run.Count)))
	}
	return buffer.Bytes()
}

// RequireValidRuns fails the test if any run has a zero count, or if two
// adjacent runs have the same value. Only use this on the output of a single
// chunk; runs from neighboring chunks are allowed to share a value.
func RequireValidRuns(t *testing.T, runs []compression.Run) {
	for i, run := range runs {
		require.GreaterOrEqualf(t, run.Count, uint64(1), "run %d has a count of 0", i)
		if i > 0 {
			require.NotEqualf(
				t,
				runs[i-1].Value,
				run.Value,
				"runs %d and %d both have value %#02x and should've been merged",
				i-1,
				i,
				run.Value,
			)
		}
	}
}
