package cursor

import "io"

// Writer counts bytes written to an io.Writer and remembers the first
// write failure. Once a write has failed every later write returns the
// same error without touching the sink.
type Writer struct {
	w   io.Writer
	err error
	n   int
}

// NewWriter creates a new Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.n
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	return w.err
}

// Write writes p to the sink. A short write without an error from the sink
// is reported as io.ErrShortWrite.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.n += n
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	w.err = err
	return n, err
}
