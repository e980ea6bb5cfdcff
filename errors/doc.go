// Package errors provides structured error types for the vlq module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries positional context as a path (for example
// line[2].segment[0].offset[4]), the offending value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidData).
//		Path("line[2]", "segment[0]").
//		Value(6).
//		Detail("segment has %d fields", 6).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidBase64(errors.PhaseDecode, '!')
//	err := errors.UnexpectedEOF(errors.PhaseDecode, io.ErrUnexpectedEOF)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
