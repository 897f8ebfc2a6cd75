// Package encoder run-length encodes a buffer by splitting it into chunks and
// encoding the chunks concurrently.
//
// The result is the concatenation of each chunk's runs, in chunk order. It is
// the same no matter how many workers there are or in what order the chunks
// finish. Runs are never merged across a chunk boundary, so a buffer of 2*C
// identical bytes encodes to two runs of C each.
package encoder

import (
	"runtime"
	"sync"

	"github.com/dargueta/chunkrle"
	"github.com/dargueta/chunkrle/partition"
	"github.com/dargueta/chunkrle/progress"
	"github.com/dargueta/chunkrle/utilities/compression"
)

// FinishMessage is passed to the reporter once every chunk has been encoded.
const FinishMessage = "Compression complete"

// ChunkStats describes the encoded form of a single chunk.
type ChunkStats struct {
	Index      int    `csv:"chunk"`
	Start      int    `csv:"start"`
	End        int    `csv:"end"`
	Runs       int    `csv:"runs"`
	LongestRun uint64 `csv:"longest_run"`
}

// Encoder encodes files or in-memory buffers. It holds no state between calls,
// so one Encoder may be used from several goroutines at once as long as its
// Reporter tolerates that.
type Encoder struct {
	chunkSize int
	workers   int
	opener    Opener
	reporter  progress.Reporter
}

// Option customizes an [Encoder].
type Option func(*Encoder)

// WithOpener sets how files are opened. The default is [OSOpener].
func WithOpener(opener Opener) Option {
	return func(e *Encoder) { e.opener = opener }
}

// WithReporter sets where progress is reported. The default discards it.
func WithReporter(reporter progress.Reporter) Option {
	return func(e *Encoder) { e.reporter = reporter }
}

// New creates an encoder from `cfg`. Only the chunk size and worker count are
// used here; the path is passed to [Encoder.EncodeFile]. Returns an error
// satisfying errors.Is(err, chunkrle.ErrInvalidArgument) if either is invalid.
func New(cfg chunkrle.Config, options ...Option) (*Encoder, error) {
	if err := cfg.ValidateEncoding(); err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	e := &Encoder{
		chunkSize: cfg.ChunkSize,
		workers:   workers,
		opener:    OSOpener{},
		reporter:  progress.NopReporter{},
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// ChunkSize returns the number of bytes per chunk.
func (e *Encoder) ChunkSize() int {
	return e.chunkSize
}

// Workers returns the number of chunks encoded concurrently.
func (e *Encoder) Workers() int {
	return e.workers
}

// EncodeFile reads the whole file at `path` and encodes it. If the file can't be
// read no chunks are encoded, nothing is reported, and the error comes from
// [chunkrle.NewIOError].
func (e *Encoder) EncodeFile(path string) ([]compression.Run, error) {
	runs, _, err := e.EncodeFileWithStats(path)
	return runs, err
}

// EncodeFileWithStats is like [Encoder.EncodeFile] but also returns statistics
// for each chunk.
func (e *Encoder) EncodeFileWithStats(path string) ([]compression.Run, []ChunkStats, error) {
	data, err := ReadFile(e.opener, path)
	if err != nil {
		return nil, nil, err
	}
	runs, stats := e.EncodeBufferWithStats(data)
	return runs, stats, nil
}

// EncodeBuffer encodes `data`, which must not be modified until this returns.
func (e *Encoder) EncodeBuffer(data []byte) []compression.Run {
	runs, _ := e.EncodeBufferWithStats(data)
	return runs
}

// EncodeBufferWithStats is like [Encoder.EncodeBuffer] but also returns
// statistics for each chunk, in chunk order.
func (e *Encoder) EncodeBufferWithStats(data []byte) ([]compression.Run, []ChunkStats) {
	ranges := partition.Partition(len(data), e.chunkSize)
	tracker := progress.NewTracker(len(ranges))
	e.reporter.SetTotal(len(ranges))

	// Each worker writes only to the slots of the chunks it takes, so the
	// results need no locking.
	chunkRuns := make([][]compression.Run, len(ranges))

	indexes := make(chan int)
	wg := sync.WaitGroup{}
	for w := 0; w < e.workers && w < len(ranges); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				r := ranges[i]
				chunkRuns[i] = compression.EncodeChunk(data[r.Start:r.End])

				completed, _ := tracker.MarkDone(i)
				e.reporter.AdvanceTo(completed)
			}
		}()
	}

	for i := range ranges {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	// Workers report concurrently, so the last AdvanceTo they made isn't
	// necessarily the highest. Make sure the final one is.
	if len(ranges) > 0 {
		e.reporter.AdvanceTo(tracker.Completed())
	}
	e.reporter.Finish(FinishMessage)
	return combine(ranges, chunkRuns)
}

// combine concatenates the runs of every chunk in ascending chunk order.
func combine(
	ranges []partition.Range, chunkRuns [][]compression.Run,
) ([]compression.Run, []ChunkStats) {
	totalRuns := 0
	for _, runs := range chunkRuns {
		totalRuns += len(runs)
	}

	combined := make([]compression.Run, 0, totalRuns)
	stats := make([]ChunkStats, len(ranges))
	for i, runs := range chunkRuns {
		combined = append(combined, runs...)
		stats[i] = ChunkStats{
			Index:      i,
			Start:      ranges[i].Start,
			End:        ranges[i].End,
			Runs:       len(runs),
			LongestRun: compression.LongestRun(runs),
		}
	}
	return combined, stats
}
