package progress

import "sync"

// Reporter receives progress updates. Implementations must be safe for
// concurrent use, and must tolerate AdvanceTo being called with values out of
// order or skipping values; only the largest value seen matters.
type Reporter interface {
	// SetTotal is called once, before any other method, with the number of
	// units of work.
	SetTotal(total int)
	// AdvanceTo reports that `pos` units of work have completed.
	AdvanceTo(pos int)
	// Finish is called once after all work completes.
	Finish(message string)
}

// NopReporter discards all progress updates.
type NopReporter struct{}

func (NopReporter) SetTotal(int)  {}
func (NopReporter) AdvanceTo(int) {}
func (NopReporter) Finish(string) {}

// Recorder keeps every update it receives so they can be inspected later.
type Recorder struct {
	mu        sync.Mutex
	total     int
	totalSets int
	positions []int
	messages  []string
}

func (r *Recorder) SetTotal(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total = total
	r.totalSets++
}

func (r *Recorder) AdvanceTo(pos int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.positions = append(r.positions, pos)
}

func (r *Recorder) Finish(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

// Total returns the last total set, and how many times SetTotal was called.
func (r *Recorder) Total() (total int, calls int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total, r.totalSets
}

// Positions returns a copy of every position reported, in the order received.
func (r *Recorder) Positions() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]int, len(r.positions))
	copy(result, r.positions)
	return result
}

// Messages returns a copy of every message passed to Finish.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]string, len(r.messages))
	copy(result, r.messages)
	return result
}
