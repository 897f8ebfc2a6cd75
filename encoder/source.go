package encoder

import (
	"io"
	"os"

	"github.com/dargueta/chunkrle"
)

// Opener opens the file to be encoded.
type Opener interface {
	Open(path string) (io.ReadCloser, error)
}

// OSOpener opens files on the local file system.
type OSOpener struct{}

func (OSOpener) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// ReadFile reads the entire contents of the file at `path` into memory. Any
// failure, including one partway through, discards what was read and returns
// an error from [chunkrle.NewIOError].
func ReadFile(opener Opener, path string) ([]byte, error) {
	stream, err := opener.Open(path)
	if err != nil {
		return nil, chunkrle.NewIOError(path, err)
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, chunkrle.NewIOError(path, err)
	}
	return data, nil
}
