package testing

import (
	"io"
	"io/fs"
	"sync"

	"github.com/xaionaro-go/bytesextra"
)

// MemoryOpener serves files from memory. It implements the encoder's Opener
// interface, so tests can run the full read-then-encode path without touching
// the disk.
type MemoryOpener struct {
	mu    sync.Mutex
	files map[string][]byte
	opens map[string]int
}

// NewMemoryOpener creates an opener serving the given path -> contents map.
// The contents are not copied.
func NewMemoryOpener(files map[string][]byte) *MemoryOpener {
	return &MemoryOpener{
		files: files,
		opens: make(map[string]int),
	}
}

// Open returns a stream over the file's contents, or an error wrapping
// [fs.ErrNotExist] if there's no such file.
func (opener *MemoryOpener) Open(path string) (io.ReadCloser, error) {
	opener.mu.Lock()
	defer opener.mu.Unlock()

	data, ok := opener.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	opener.opens[path]++
	return io.NopCloser(bytesextra.NewReadWriteSeeker(data)), nil
}

// OpenCount returns how many times `path` was opened successfully.
func (opener *MemoryOpener) OpenCount(path string) int {
	opener.mu.Lock()
	defer opener.mu.Unlock()
	return opener.opens[path]
}

// FailingOpener opens files whose reads fail after `FailAfter` bytes with
// `Err`. If `OpenErr` is set, Open itself fails with it instead.
type FailingOpener struct {
	Data      []byte
	FailAfter int
	Err       error
	OpenErr   error
}

func (opener FailingOpener) Open(path string) (io.ReadCloser, error) {
	if opener.OpenErr != nil {
		return nil, &fs.PathError{Op: "open", Path: path, Err: opener.OpenErr}
	}
	return &failingReader{
		source:    bytesextra.NewReadWriteSeeker(opener.Data),
		remaining: opener.FailAfter,
		err:       opener.Err,
	}, nil
}

type failingReader struct {
	source    io.Reader
	remaining int
	err       error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.remaining <= 0 {
		return 0, r.err
	}
	if len(p) > r.remaining {
		p = p[:r.remaining]
	}
	n, err := r.source.Read(p)
	r.remaining -= n
	return n, err
}

func (r *failingReader) Close() error {
	return nil
}
