package compression

// EncodeChunk run-length encodes `data` in a single pass and returns its runs in
// order. Expanding the runs reproduces `data` exactly, and no two adjacent runs
// share a value. An empty slice gives no runs.
//
// EncodeChunk only reads `data`, so it's safe to call concurrently on
// overlapping or shared slices.
func EncodeChunk(data []byte) []Run {
	runs := make([]Run, 0, initialRunCapacity(len(data)))

	haveCurrent := false
	var current Run

	for _, b := range data {
		switch {
		case !haveCurrent:
			current = Run{Value: b, Count: 1}
			haveCurrent = true
		case b == current.Value:
			current.Count++
		default:
			runs = append(runs, current)
			current = Run{Value: b, Count: 1}
		}
	}

	if haveCurrent {
		runs = append(runs, current)
	}
	return runs
}

// initialRunCapacity guesses how many runs a chunk of `size` bytes will need.
// Random data is close to one run per byte while images and sparse files need
// far fewer, so start small and let append grow it.
func initialRunCapacity(size int) int {
	if size < 64 {
		return size
	}
	return size / 8
}
