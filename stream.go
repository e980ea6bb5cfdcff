package vlq

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/wippyai/vlq/errors"
	"github.com/wippyai/vlq/internal/cursor"
)

// Decoder reads successive values from a byte source.
type Decoder struct {
	r      *cursor.Reader
	decode func(io.ByteReader) (int64, error)
}

// NewDecoder returns a strict Decoder reading from r.
func NewDecoder(r io.ByteReader) *Decoder {
	return &Decoder{r: cursor.NewReader(r), decode: Decode}
}

// NewWrappingDecoder returns a Decoder that uses DecodeWrapping.
func NewWrappingDecoder(r io.ByteReader) *Decoder {
	return &Decoder{r: cursor.NewReader(r), decode: DecodeWrapping}
}

// Decode reads the next value. Codec errors are annotated with the offset
// at which the failing value started.
func (d *Decoder) Decode() (int64, error) {
	start := d.r.Position()
	v, err := d.decode(d.r)
	if err != nil {
		var e *errors.Error
		if stderrors.As(err, &e) && e.Phase == errors.PhaseDecode {
			return 0, e.WithPath(fmt.Sprintf("offset[%d]", start))
		}
		return 0, err
	}
	return v, nil
}

// More reports whether the source has unread bytes.
func (d *Decoder) More() bool {
	return d.r.More()
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int {
	return d.r.Position()
}

// Encoder writes successive values to a sink.
type Encoder struct {
	w *cursor.Writer
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: cursor.NewWriter(w)}
}

// Encode writes v. After a sink failure every call returns that failure.
func (e *Encoder) Encode(v int64) error {
	return Encode(e.w, v)
}

// Written returns the number of bytes accepted by the sink.
func (e *Encoder) Written() int {
	return e.w.Len()
}
