// Package cursor provides position-tracking byte sources and sinks for the
// streaming VLQ decoder and encoder.
package cursor

import "io"

// Reader wraps an io.ByteReader with position tracking.
type Reader struct {
	r   io.ByteReader
	pos int
}

// NewReader creates a new Reader wrapping the given io.ByteReader.
func NewReader(r io.ByteReader) *Reader {
	return &Reader{r: r, pos: 0}
}

// Position returns the number of bytes consumed so far.
func (r *Reader) Position() int {
	return r.pos
}

// ReadByte reads a single byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, err
	}
	r.pos++
	return b, nil
}

// More reports whether another byte can be read. Sources that can report
// their length or unread a byte are probed without consuming input; for any
// other source More optimistically returns true.
func (r *Reader) More() bool {
	switch src := r.r.(type) {
	case interface{ Len() int }:
		return src.Len() > 0
	case io.ByteScanner:
		if _, err := src.ReadByte(); err != nil {
			return false
		}
		return src.UnreadByte() == nil
	}
	return true
}
