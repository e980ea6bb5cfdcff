package vlq

import (
	"io"
	"math"
	"strings"

	"github.com/wippyai/vlq/errors"
)

const (
	shiftBits = 5
	mask      = 1<<shiftBits - 1 // payload bits of a digit
	continued = 1 << shiftBits   // more digits follow

	// lastShift is the bit position of the final group that still fits in
	// 64 bits; only its low four payload bits are usable.
	lastShift = 60
	highBit   = 0x10
)

// MaxLen64 is the maximum length of an encoded int64.
const MaxLen64 = 13

// Decode reads one value from r. It consumes exactly the bytes of that value
// and rejects values that do not fit in 64 bits with ErrOverflow.
func Decode(r io.ByteReader) (int64, error) {
	var accum uint64
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, readError(err)
		}
		digit, err := DecodeDigit(b)
		if err != nil {
			return 0, err
		}
		if shift > lastShift || (shift == lastShift && digit&highBit != 0) {
			return 0, errors.Overflow(errors.PhaseDecode, shift)
		}
		accum |= uint64(digit&mask) << shift
		shift += shiftBits
		if digit&continued == 0 {
			return fromVLQSigned(accum), nil
		}
	}
}

// DecodeWrapping reads one value from r like Decode but never reports
// overflow: bits beyond 64 are dropped and negation wraps. A negative zero
// decodes to 0.
func DecodeWrapping(r io.ByteReader) (int64, error) {
	var accum uint64
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, readError(err)
		}
		digit, err := DecodeDigit(b)
		if err != nil {
			return 0, err
		}
		accum |= uint64(digit&mask) << shift
		shift += shiftBits
		if digit&continued == 0 {
			break
		}
	}
	mag := accum >> 1
	if accum&1 != 0 {
		mag = -mag
	}
	return int64(mag), nil
}

// DecodeString decodes s, which must hold exactly one value.
func DecodeString(s string) (int64, error) {
	r := strings.NewReader(s)
	v, err := Decode(r)
	if err != nil {
		return 0, err
	}
	if r.Len() > 0 {
		return 0, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Value(s).
			Detail("%d trailing bytes after value", r.Len()).
			Build()
	}
	return v, nil
}

// Encode writes the encoding of v to w with a single Write call. A write
// failure is returned unchanged.
func Encode(w io.Writer, v int64) error {
	var buf [MaxLen64]byte
	_, err := w.Write(AppendEncode(buf[:0], v))
	return err
}

// AppendEncode appends the encoding of v to dst and returns the extended slice.
func AppendEncode(dst []byte, v int64) []byte {
	u := toVLQSigned(v)
	for {
		digit := byte(u & mask)
		u >>= shiftBits
		if u != 0 {
			digit |= continued
		}
		dst = append(dst, EncodeDigit(digit))
		if u == 0 {
			return dst
		}
	}
}

// EncodeToString returns the encoding of v.
func EncodeToString(v int64) string {
	var buf [MaxLen64]byte
	return string(AppendEncode(buf[:0], v))
}

// EncodeAll encodes vs back to back.
func EncodeAll(vs ...int64) []byte {
	var dst []byte
	for _, v := range vs {
		dst = AppendEncode(dst, v)
	}
	return dst
}

// toVLQSigned moves the sign into bit 0. The magnitude is taken as the
// negated bit pattern, so math.MinInt64 yields 1<<63 before the shift.
func toVLQSigned(v int64) uint64 {
	if v < 0 {
		return -uint64(v)<<1 | 1
	}
	return uint64(v) << 1
}

func fromVLQSigned(u uint64) int64 {
	mag := u >> 1
	if u&1 == 0 {
		return int64(mag)
	}
	if mag == 0 {
		return math.MinInt64
	}
	return -int64(mag)
}

// readError maps source exhaustion to ErrUnexpectedEOF and passes any other
// source failure through.
func readError(err error) error {
	if err == io.EOF {
		return errors.UnexpectedEOF(errors.PhaseDecode, io.ErrUnexpectedEOF)
	}
	return err
}
