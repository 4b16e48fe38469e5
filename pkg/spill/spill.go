// Package spill provides an append-only, gob-encoded disk log for items of a
// single type. The runner journals per-leaf results through it so a finished
// run can be re-rendered without executing anything again.
package spill

import (
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Spill is an append-only disk log of items of type T.
type Spill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Get(index uint64) (T, error)
	Range(fn func(index uint64, item T) error) error
	Close() error
}

type spillImpl[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
}

// New creates a Spill backed by a fresh temp file under dir. An empty dir
// falls back to the system temp directory.
func New[T any](dir string) (Spill[T], error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "easytest-journal")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "journal-*.gob")
	if err != nil {
		return nil, fmt.Errorf("create journal file: %w", err)
	}

	slog.Debug("created journal", "path", file.Name())

	return &spillImpl[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

// Open reads an existing journal file back for Range/Get access.
func Open[T any](path string) (Spill[T], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	// Count records so Len and bounds checks work on reopened journals.
	decoder := gob.NewDecoder(file)
	var length uint64
	for {
		var item T
		if err := decoder.Decode(&item); err != nil {
			break
		}
		length++
	}

	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("close journal after scan: %w", err)
	}

	return &spillImpl[T]{path: path, length: length}, nil
}

// Append encodes one item at the end of the log.
func (s *spillImpl[T]) Append(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.encoder == nil {
		return fmt.Errorf("journal %s is read-only", s.path)
	}

	if err := s.encoder.Encode(item); err != nil {
		return fmt.Errorf("encode item %d: %w", s.length, err)
	}

	s.length++

	return nil
}

// AppendBatch appends items in order, stopping at the first error.
func (s *spillImpl[T]) AppendBatch(items []T) error {
	for _, item := range items {
		if err := s.Append(item); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the backing file path.
func (s *spillImpl[T]) Path() string {
	return s.path
}

// Len returns the number of items appended so far.
func (s *spillImpl[T]) Len() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.length
}

// Get decodes the item at index by scanning the log from the start.
func (s *spillImpl[T]) Get(index uint64) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T

	if index >= s.length {
		return zero, fmt.Errorf("index %d out of bounds (length %d)", index, s.length)
	}

	file, err := os.Open(s.path)
	if err != nil {
		return zero, fmt.Errorf("open journal: %w", err)
	}
	defer closeQuietly(file, s.path)

	decoder := gob.NewDecoder(file)

	var item T
	for i := uint64(0); i <= index; i++ {
		if err := decoder.Decode(&item); err != nil {
			return zero, fmt.Errorf("decode item %d: %w", i, err)
		}
	}

	return item, nil
}

// Range calls fn for every item in append order.
func (s *spillImpl[T]) Range(fn func(index uint64, item T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer closeQuietly(file, s.path)

	decoder := gob.NewDecoder(file)

	var item T
	for i := uint64(0); i < s.length; i++ {
		if err := decoder.Decode(&item); err != nil {
			return fmt.Errorf("decode item %d: %w", i, err)
		}
		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

// Close closes the backing file; the log remains readable via Open.
func (s *spillImpl[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}

	if err := s.file.Close(); err != nil {
		return fmt.Errorf("close journal: %w", err)
	}

	s.file = nil
	s.encoder = nil

	return nil
}

func closeQuietly(file *os.File, path string) {
	if err := file.Close(); err != nil {
		slog.Error("failed to close journal file", "path", path, "error", err)
	}
}
