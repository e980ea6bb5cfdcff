package cursor

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReaderPosition(t *testing.T) {
	r := NewReader(strings.NewReader("abc"))
	for i, want := range []byte("abc") {
		b, err := r.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte %d: %v", i, err)
		}
		if b != want {
			t.Errorf("ReadByte %d = %q, want %q", i, b, want)
		}
		if r.Position() != i+1 {
			t.Errorf("Position = %d, want %d", r.Position(), i+1)
		}
	}
	if _, err := r.ReadByte(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
	if r.Position() != 3 {
		t.Errorf("Position after EOF = %d, want 3", r.Position())
	}
}

// onlyBytes hides every method but ReadByte.
type onlyBytes struct{ r io.ByteReader }

func (o onlyBytes) ReadByte() (byte, error) { return o.r.ReadByte() }

func TestReaderMore(t *testing.T) {
	t.Run("len", func(t *testing.T) {
		r := NewReader(bytes.NewReader([]byte("x")))
		if !r.More() {
			t.Fatal("More = false before read")
		}
		r.ReadByte()
		if r.More() {
			t.Error("More = true after last byte")
		}
	})

	t.Run("scanner", func(t *testing.T) {
		r := NewReader(bufio.NewReader(strings.NewReader("x")))
		if !r.More() {
			t.Fatal("More = false before read")
		}
		b, err := r.ReadByte()
		if err != nil || b != 'x' {
			t.Fatalf("More consumed input: %q, %v", b, err)
		}
		if r.More() {
			t.Error("More = true after last byte")
		}
	})

	t.Run("opaque", func(t *testing.T) {
		r := NewReader(onlyBytes{strings.NewReader("")})
		if !r.More() {
			t.Error("More should be optimistic for opaque sources")
		}
	})
}

type failWriter struct {
	err   error
	calls int
}

func (f *failWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, f.err
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) - 1, nil }

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Write([]byte("ab"))
	w.Write([]byte("c"))
	if buf.String() != "abc" {
		t.Errorf("got %q, want %q", buf.String(), "abc")
	}
	if w.Len() != 3 {
		t.Errorf("Len = %d, want 3", w.Len())
	}
	if w.Err() != nil {
		t.Errorf("Err = %v", w.Err())
	}
}

func TestWriterStickyError(t *testing.T) {
	sinkErr := errors.New("disk full")
	fw := &failWriter{err: sinkErr}
	w := NewWriter(fw)

	if _, err := w.Write([]byte("a")); err != sinkErr {
		t.Fatalf("first write: got %v, want %v", err, sinkErr)
	}
	if _, err := w.Write([]byte("b")); err != sinkErr {
		t.Fatalf("second write: got %v, want %v", err, sinkErr)
	}
	if fw.calls != 1 {
		t.Errorf("sink called %d times, want 1", fw.calls)
	}
}

func TestWriterShortWrite(t *testing.T) {
	w := NewWriter(shortWriter{})
	if _, err := w.Write([]byte("abc")); err != io.ErrShortWrite {
		t.Errorf("got %v, want io.ErrShortWrite", err)
	}
	if w.Len() != 2 {
		t.Errorf("Len = %d, want 2", w.Len())
	}
}
