package progress

import (
	"fmt"
	"io"
	"sync"

	"github.com/schollz/progressbar/v3"
)

const defaultBarWidth = 40

var barTheme = progressbar.Theme{
	Saucer:        "=",
	SaucerHead:    ">",
	SaucerPadding: " ",
	BarStart:      "[",
	BarEnd:        "]",
}

// Bar draws a one-line text progress bar on top of progressbar, like this:
//
//	50% [===================>                    ] (17/34) [3s:3s]
//
// Positions that arrive out of order are ignored if they're behind what's
// already drawn, and positions past the total are clamped. Drawing never
// interrupts the work being reported on; the first write error is kept and
// can be retrieved with [Bar.Err].
type Bar struct {
	mu       sync.Mutex
	output   io.Writer
	bar      *progressbar.ProgressBar
	total    int
	position int
	err      error
}

// NewBar creates a bar that draws to `output`.
func NewBar(output io.Writer) *Bar {
	return &Bar{output: output}
}

func (bar *Bar) SetTotal(total int) {
	bar.mu.Lock()
	defer bar.mu.Unlock()

	bar.total = total
	bar.position = 0
	bar.bar = nil

	// progressbar can't draw a bar with nothing to do.
	if total <= 0 {
		return
	}
	bar.bar = progressbar.NewOptions(
		total,
		progressbar.OptionSetWriter(bar.output),
		progressbar.OptionSetWidth(defaultBarWidth),
		progressbar.OptionSetTheme(barTheme),
		progressbar.OptionShowCount(),
	)
	bar.recordError(bar.bar.RenderBlank())
}

func (bar *Bar) AdvanceTo(pos int) {
	bar.mu.Lock()
	defer bar.mu.Unlock()

	if pos > bar.total {
		pos = bar.total
	}
	if pos <= bar.position || bar.bar == nil {
		return
	}
	bar.position = pos
	bar.recordError(bar.bar.Set(pos))
}

// Finish fills the bar if it isn't already full, writes `message` after it
// and ends the line.
func (bar *Bar) Finish(message string) {
	bar.mu.Lock()
	defer bar.mu.Unlock()

	if bar.bar != nil && !bar.bar.IsFinished() {
		bar.recordError(bar.bar.Finish())
	}
	_, err := fmt.Fprintf(bar.output, " %s\n", message)
	bar.recordError(err)
}

// Position returns the furthest position drawn so far.
func (bar *Bar) Position() int {
	bar.mu.Lock()
	defer bar.mu.Unlock()
	return bar.position
}

// Err returns the first error encountered while drawing, if any.
func (bar *Bar) Err() error {
	bar.mu.Lock()
	defer bar.mu.Unlock()
	return bar.err
}

// recordError must be called with the lock held.
func (bar *Bar) recordError(err error) {
	if bar.err == nil {
		bar.err = err
	}
}
