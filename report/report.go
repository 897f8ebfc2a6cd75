// Package report formats the outcome of an encoding run for people to read.
package report

import (
	"fmt"
	"io"

	"github.com/dargueta/chunkrle/encoder"
	"github.com/dargueta/chunkrle/utilities/compression"
	"github.com/gocarina/gocsv"
)

// Summary gives the sizes involved in encoding one input.
type Summary struct {
	InputBytes int
	Chunks     int
	Runs       int
}

// NewSummary builds a summary of encoding `inputBytes` bytes into `runs`.
func NewSummary(inputBytes int, runs []compression.Run, stats []encoder.ChunkStats) Summary {
	return Summary{
		InputBytes: inputBytes,
		Chunks:     len(stats),
		Runs:       len(runs),
	}
}

// EncodedBytes returns how much memory the runs take up.
func (s Summary) EncodedBytes() int {
	return s.Runs * compression.RunSize
}

// EncodedKilobytes is EncodedBytes in units of 1024 bytes.
func (s Summary) EncodedKilobytes() float64 {
	return float64(s.EncodedBytes()) / 1024.0
}

// WriteSummary prints the encoded size, and if `verbose` is set, the rest of
// the summary.
func WriteSummary(output io.Writer, s Summary, verbose bool) error {
	_, err := fmt.Fprintf(output, "Length of encoded data: %g KB\n", s.EncodedKilobytes())
	if err != nil || !verbose {
		return err
	}

	_, err = fmt.Fprintf(
		output,
		"Input: %d bytes in %d chunks\nRuns: %d (%d bytes)\n",
		s.InputBytes,
		s.Chunks,
		s.Runs,
		s.EncodedBytes(),
	)
	return err
}

// WriteChunkStatsCSV writes one CSV row per chunk, with a header.
func WriteChunkStatsCSV(output io.Writer, stats []encoder.ChunkStats) error {
	if err := gocsv.Marshal(stats, output); err != nil {
		return fmt.Errorf("failed to write chunk statistics: %w", err)
	}
	return nil
}
