package vlq

import (
	"fmt"

	"github.com/wippyai/vlq/errors"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const invalidDigit = 0xFF

var decodeMap = func() [256]byte {
	var rev [256]byte
	for i := range rev {
		rev[i] = invalidDigit
	}
	for i := 0; i < len(alphabet); i++ {
		rev[alphabet[i]] = byte(i)
	}
	return rev
}()

// DecodeDigit maps one alphabet character to its 6-bit digit.
func DecodeDigit(c byte) (byte, error) {
	d := decodeMap[c]
	if d == invalidDigit {
		return 0, errors.InvalidBase64(errors.PhaseDecode, c)
	}
	return d, nil
}

// EncodeDigit maps a 6-bit digit to its alphabet character.
// It panics if d > 63; callers only pass masked values.
func EncodeDigit(d byte) byte {
	if d >= 64 {
		panic(fmt.Sprintf("vlq: digit %d out of range", d))
	}
	return alphabet[d]
}
