package compression

// Run represents a single run of a particular byte value.
type Run struct {
	// Value is the byte value for this run.
	Value byte
	// Count gives the number of times the byte occurs in the run (not the
	// number of times it's repeated). A valid run always has this be 1 or
	// greater.
	Count uint64
}

// RunSize is the in-memory size of a single [Run], in bytes: one byte for the
// value, padded out to the alignment of the 64-bit count.
const RunSize = 16

// TotalCount returns the number of input bytes the given runs describe.
func TotalCount(runs []Run) uint64 {
	total := uint64(0)
	for _, run := range runs {
		total += run.Count
	}
	return total
}

// LongestRun returns the largest Count in `runs`, or 0 if there are none.
func LongestRun(runs []Run) uint64 {
	longest := uint64(0)
	for _, run := range runs {
		if run.Count > longest {
			longest = run.Count
		}
	}
	return longest
}
