package onepif

import (
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
)

// DataFileName is the export file inside a .1pif bundle directory.
const DataFileName = "data.1pif"

// Source is an opened 1PIF export on disk.
type Source struct {
	f    *os.File
	path string
}

// Open opens an export. path may point either at the data file itself or at
// a .1pif bundle directory containing data.1pif.
func Open(path string) (*Source, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}
	if st.IsDir() {
		path = filepath.Join(path, DataFileName)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return &Source{f: f, path: path}, nil
}

// Path returns the resolved data file path.
func (s *Source) Path() string {
	return s.path
}

// Records iterates over the export from its first record. Each call starts
// over from the beginning of the file.
func (s *Source) Records() iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		if _, err := s.f.Seek(0, io.SeekStart); err != nil {
			yield(nil, fmt.Errorf("failed to rewind input: %w", err))
			return
		}
		for rec, err := range NewReader(s.f).All() {
			if !yield(rec, err) {
				return
			}
		}
	}
}

// Close closes the underlying file.
func (s *Source) Close() error {
	if s.f == nil {
		return nil
	}
	return s.f.Close()
}
