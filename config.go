package chunkrle

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// DefaultChunkSize is the number of bytes each parallel unit of work covers
// unless configured otherwise.
const DefaultChunkSize = 4096

// Config controls a single encoding run.
type Config struct {
	// Path is the file to encode.
	Path string
	// ChunkSize is the number of bytes per parallel unit. Must be at least 1.
	ChunkSize int
	// Workers is the number of goroutines encoding chunks concurrently. 0 means
	// one per available CPU.
	Workers int
}

// DefaultConfig returns a configuration for encoding `path` with the default
// chunk size and one worker per CPU.
func DefaultConfig(path string) Config {
	return Config{
		Path:      path,
		ChunkSize: DefaultChunkSize,
	}
}

// Validate checks every field and reports all problems at once. The returned
// error, if any, satisfies errors.Is(err, ErrInvalidArgument).
func (cfg Config) Validate() error {
	return cfg.validate(true)
}

// ValidateEncoding is like [Config.Validate] but ignores Path, for callers that
// encode buffers already in memory.
func (cfg Config) ValidateEncoding() error {
	return cfg.validate(false)
}

func (cfg Config) validate(needPath bool) error {
	var result *multierror.Error

	if needPath && cfg.Path == "" {
		result = multierror.Append(result, fmt.Errorf("input path is empty"))
	}
	if cfg.ChunkSize < 1 {
		result = multierror.Append(
			result, fmt.Errorf("chunk size must be at least 1, got %d", cfg.ChunkSize))
	}
	if cfg.Workers < 0 {
		result = multierror.Append(
			result, fmt.Errorf("worker count can't be negative, got %d", cfg.Workers))
	}

	if result == nil {
		return nil
	}
	return ErrInvalidArgument.Wrap(result)
}
