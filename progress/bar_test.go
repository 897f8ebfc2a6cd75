package progress_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dargueta/chunkrle/progress"
	"github.com/stretchr/testify/assert"
)

func lastLine(output string) string {
	frames := strings.Split(output, "\r")
	return strings.TrimRight(frames[len(frames)-1], "\n")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("terminal went away")
}

func TestBar__DrawsProgress(t *testing.T) {
	output := bytes.Buffer{}
	bar := progress.NewBar(&output)

	bar.SetTotal(4)
	bar.AdvanceTo(2)
	line := lastLine(output.String())
	assert.Contains(t, line, "50%")
	assert.Contains(t, line, "(2/4)")
	assert.NoError(t, bar.Err())
}

func TestBar__IgnoresStaleAndClampsOverflow(t *testing.T) {
	output := bytes.Buffer{}
	bar := progress.NewBar(&output)

	bar.SetTotal(10)
	bar.AdvanceTo(7)
	bar.AdvanceTo(3)
	assert.Equal(t, 7, bar.Position(), "stale update moved the bar backwards")
	assert.Contains(t, lastLine(output.String()), "(7/10)")

	bar.AdvanceTo(15)
	assert.Equal(t, 10, bar.Position(), "bar went past the total")
	assert.NoError(t, bar.Err())
}

func TestBar__Finish(t *testing.T) {
	output := bytes.Buffer{}
	bar := progress.NewBar(&output)

	bar.SetTotal(2)
	bar.AdvanceTo(2)
	bar.Finish("Compression complete")

	assert.True(t, strings.HasSuffix(output.String(), "\n"), "finish didn't end the line")
	line := lastLine(output.String())
	assert.Contains(t, line, "100%")
	assert.Contains(t, line, "(2/2)")
	assert.True(t, strings.HasSuffix(line, "Compression complete"))
	assert.NoError(t, bar.Err())
}

func TestBar__FinishFillsIncompleteBar(t *testing.T) {
	output := bytes.Buffer{}
	bar := progress.NewBar(&output)

	bar.SetTotal(5)
	bar.AdvanceTo(1)
	bar.Finish("done")

	line := lastLine(output.String())
	assert.Contains(t, line, "100%")
	assert.True(t, strings.HasSuffix(line, "done"))
}

func TestBar__NothingToDo(t *testing.T) {
	output := bytes.Buffer{}
	bar := progress.NewBar(&output)

	bar.SetTotal(0)
	bar.AdvanceTo(1)
	bar.Finish("Compression complete")

	assert.Equal(t, 0, bar.Position())
	assert.Equal(t, " Compression complete\n", output.String())
	assert.NoError(t, bar.Err())
}

func TestBar__KeepsFirstWriteError(t *testing.T) {
	bar := progress.NewBar(brokenWriter{})

	bar.SetTotal(3)
	bar.AdvanceTo(1)
	bar.Finish("done")

	assert.EqualError(t, bar.Err(), "terminal went away")
	assert.Equal(t, 1, bar.Position(), "a write failure shouldn't stop tracking")
}

func TestRecorder(t *testing.T) {
	recorder := &progress.Recorder{}
	var reporter progress.Reporter = recorder

	reporter.SetTotal(3)
	reporter.AdvanceTo(2)
	reporter.AdvanceTo(1)
	reporter.Finish("done")

	total, calls := recorder.Total()
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []int{2, 1}, recorder.Positions())
	assert.Equal(t, []string{"done"}, recorder.Messages())
}
