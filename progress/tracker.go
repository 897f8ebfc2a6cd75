// Package progress keeps count of completed chunks and reports it to a
// progress display.
//
// Chunks finish in no particular order and may be reported from several
// goroutines at once. The only guarantees are that each chunk is counted
// exactly once, the count never goes backwards, and it never exceeds the total.
package progress

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/boljen/go-bitmap"
)

// Tracker counts completed chunks. It is safe for concurrent use.
type Tracker struct {
	total     int
	completed atomic.Int64

	// mu guards finished, since bits for different chunks share bytes.
	mu       sync.Mutex
	finished bitmap.Bitmap
}

// NewTracker creates a tracker for `total` chunks, none of them complete.
func NewTracker(total int) *Tracker {
	if total < 0 {
		panic(fmt.Sprintf("progress: total can't be negative, got %d", total))
	}
	return &Tracker{
		total:    total,
		finished: bitmap.New(total),
	}
}

// MarkDone records that chunk `index` has finished and returns the number of
// chunks completed so far, including this one.
//
// If the chunk was already marked, nothing is counted and `ok` is false. An
// index outside [0, total) is a programming error and panics.
func (tracker *Tracker) MarkDone(index int) (completed int, ok bool) {
	if index < 0 || index >= tracker.total {
		panic(
			fmt.Sprintf(
				"progress: chunk %d not in [0, %d)", index, tracker.total))
	}

	tracker.mu.Lock()
	if tracker.finished.Get(index) {
		tracker.mu.Unlock()
		return tracker.Completed(), false
	}
	tracker.finished.Set(index, true)
	tracker.mu.Unlock()

	return int(tracker.completed.Add(1)), true
}

// IsDone returns true if chunk `index` has been marked.
func (tracker *Tracker) IsDone(index int) bool {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	return tracker.finished.Get(index)
}

// Completed returns the number of chunks marked so far.
func (tracker *Tracker) Completed() int {
	return int(tracker.completed.Load())
}

// Total returns the number of chunks being tracked.
func (tracker *Tracker) Total() int {
	return tracker.total
}

// Done returns true once every chunk has been marked.
func (tracker *Tracker) Done() bool {
	return tracker.Completed() == tracker.total
}
