package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode   Phase = "encode"   // code points to units
	PhaseDecode   Phase = "decode"   // units to code points
	PhaseValidate Phase = "validate" // scalar value checks
	PhaseClassify Phase = "classify" // element access strategy selection
	PhaseLower    Phase = "lower"    // text into guest memory
	PhaseLift     Phase = "lift"     // text out of guest memory
	PhaseRuntime  Phase = "runtime"  // host lifecycle
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidScalar Kind = "invalid_scalar"
	KindSurrogate     Kind = "surrogate"
	KindTruncated     Kind = "truncated"
	KindInvalidUTF8   Kind = "invalid_utf8"
	KindInvalidUTF16  Kind = "invalid_utf16"
	KindOutOfBounds   Kind = "out_of_bounds"
	KindUnsupported   Kind = "unsupported"
	KindAllocation    Kind = "allocation"
	KindNotFound      Kind = "not_found"
	KindInvalidInput  Kind = "invalid_input"
	KindClosed        Kind = "closed"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	GoType   string
	Encoding string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.Encoding != "" {
		b.WriteString(": ")
		switch {
		case e.GoType != "" && e.Encoding != "":
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", encoding ")
			b.WriteString(e.Encoding)
		case e.GoType != "":
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		default:
			b.WriteString("encoding ")
			b.WriteString(e.Encoding)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.Encoding != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Encoding sets the text encoding name
func (b *Builder) Encoding(enc string) *Builder {
	b.err.Encoding = enc
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidScalar reports a code point above U+10FFFF or below zero.
func InvalidScalar(phase Phase, index int, r rune) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidScalar,
		Detail: fmt.Sprintf("code point %#x at index %d is not a Unicode scalar value", uint32(r), index),
		Value:  r,
	}
}

// Surrogate reports a surrogate code point where a scalar value was required.
func Surrogate(phase Phase, index int, r rune) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindSurrogate,
		Detail: fmt.Sprintf("surrogate %#x at index %d", uint32(r), index),
		Value:  r,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, index int, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:    phase,
		Kind:     KindInvalidUTF8,
		Encoding: "utf-8",
		Detail:   fmt.Sprintf("invalid UTF-8 sequence at byte %d: %x", index, preview),
		Value:    index,
	}
}

// InvalidUTF16 creates an invalid UTF-16 error for an unpaired surrogate unit.
func InvalidUTF16(phase Phase, index int, unit uint16) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindInvalidUTF16,
		Encoding: "utf-16",
		Detail:   fmt.Sprintf("unpaired surrogate %#04x at unit %d", unit, index),
		Value:    unit,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size, align uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes (align %d)", size, align),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Truncated reports input that ends inside a multi-unit sequence.
func Truncated(phase Phase, index int, encoding string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTruncated,
		Encoding: encoding,
		Detail:   fmt.Sprintf("sequence starting at %d is cut off by end of input", index),
		Value:    index,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what string, id any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %v not found", what, id),
		Value:  id,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Closed reports use of a component after Close.
func Closed(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s is closed", component),
	}
}
