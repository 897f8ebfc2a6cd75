// Package partition divides a buffer into contiguous fixed-size ranges, the
// units of parallel work for the encoder.
//
// Every range is exactly the configured chunk size except possibly the last,
// which covers whatever is left over. An empty buffer has no ranges at all.
package partition

import "fmt"

// Range is a half-open interval [Start, End) of byte offsets into a buffer.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// NumChunks returns the number of ranges a buffer of `length` bytes is split
// into, i.e. ceil(length / chunkSize).
func NumChunks(length, chunkSize int) int {
	checkChunkSize(chunkSize)
	if length <= 0 {
		return 0
	}
	return (length + chunkSize - 1) / chunkSize
}

// Partition splits a buffer of `length` bytes into ranges of `chunkSize` bytes.
// The ranges are returned in ascending order and together cover [0, length)
// exactly once.
//
// chunkSize must be positive. Callers are expected to have validated it already,
// so a bad value is treated as a programming error and panics.
func Partition(length, chunkSize int) []Range {
	numChunks := NumChunks(length, chunkSize)
	ranges := make([]Range, 0, numChunks)

	for i := 0; i < numChunks; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > length {
			end = length
		}
		ranges = append(ranges, Range{Start: start, End: end})
	}
	return ranges
}

func checkChunkSize(chunkSize int) {
	if chunkSize < 1 {
		panic(fmt.Sprintf("partition: chunk size must be at least 1, got %d", chunkSize))
	}
}
