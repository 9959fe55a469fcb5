package onepif

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Separator terminates every JSON object in a 1PIF export.
const Separator = "***5642bee8-a5ff-11dc-8314-0800200c9a66***"

// Reader splits a 1PIF stream into records.
// It reads lazily, one chunk per Next call.
type Reader struct {
	r     *bufio.Reader
	chunk int // number of chunks returned so far
	done  bool
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns the next record. It returns io.EOF once the stream is
// exhausted; a trailing chunk that holds only whitespace is not a record.
func (r *Reader) Next() (*Record, error) {
	data, err := r.nextChunk()
	if err != nil {
		return nil, err
	}
	r.chunk++

	rec, err := DecodeRecord(data)
	if err != nil {
		if errors.Is(err, ErrMalformedInput) {
			return nil, fmt.Errorf("chunk %d: %w", r.chunk, err)
		}
		return nil, fmt.Errorf("chunk %d (%s): %w", r.chunk, describe(data), err)
	}
	return rec, nil
}

// All iterates over the remaining records. Iteration stops after the first
// error, which is yielded with a nil record.
func (r *Reader) All() iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		for {
			rec, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// nextChunk collects lines up to the next separator line or end of stream.
func (r *Reader) nextChunk() ([]byte, error) {
	if r.done {
		return nil, io.EOF
	}

	var buf bytes.Buffer
	for {
		line, err := r.r.ReadString('\n')
		if len(line) > 0 {
			if strings.TrimSpace(line) == Separator {
				return buf.Bytes(), nil
			}
			buf.WriteString(line)
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("failed to read 1PIF stream: %w", err)
			}
			r.done = true
			// Пустой хвост после последнего разделителя - это конец потока
			if len(bytes.TrimSpace(buf.Bytes())) == 0 {
				return nil, io.EOF
			}
			return buf.Bytes(), nil
		}
	}
}

// describe returns the title and uuid of an undecodable record for error
// messages, when they can still be found.
func describe(data []byte) string {
	root, err := DecodeHeader(data)
	if err != nil {
		return "unknown record"
	}
	return fmt.Sprintf("title %q, uuid %s", root.Title, root.UUID)
}
