// Package errors provides structured error types for ywlib.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the field path, Go type name, text encoding and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseValidate, errors.KindSurrogate).
//		Path("title").
//		Encoding("utf-16").
//		Value(0xD800).
//		Detail("lone surrogate at index %d", 3).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidScalar(errors.PhaseValidate, 3, 0x110000)
//	err := errors.OutOfBounds(errors.PhaseClassify, path, 4, 3)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
