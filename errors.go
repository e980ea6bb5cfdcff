package vlq

import (
	stderrors "errors"

	"github.com/wippyai/vlq/errors"
)

// Sentinels for errors.Is. Returned errors carry more context (the offending
// byte, the bit position, a path) but match these by phase and kind.
var (
	// ErrInvalidBase64 is returned for a byte outside A-Za-z0-9+/.
	ErrInvalidBase64 = &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindInvalidBase64}

	// ErrUnexpectedEOF is returned when the source ends before a digit
	// without the continuation bit.
	ErrUnexpectedEOF = &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindUnexpectedEOF}

	// ErrOverflow is returned by the strict decoder when a value does not
	// fit in 64 bits.
	ErrOverflow = &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindOverflow}
)

// InvalidByte returns the offending byte of an ErrInvalidBase64 error.
func InvalidByte(err error) (byte, bool) {
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindInvalidBase64 {
		return 0, false
	}
	c, ok := e.Value.(byte)
	return c, ok
}
