// Package text provides the code-point string type and its UTF-16 and UTF-8
// encodings.
//
// A String is a sequence of 32-bit code points. It is converted to 16-bit
// units (surrogate pairs above U+FFFF) or 8-bit units (1 to 4 bytes per code
// point) by pure functions; nothing in this package holds state.
//
// # Permissive Encoding
//
// EncodeUTF16 and EncodeUTF8 apply the encoding arithmetic to every input
// value without checking it. Surrogate code points come out as lone surrogate
// units (or their 3-byte UTF-8 form) and values above U+10FFFF come out as
// out-of-range surrogates or 4-byte sequences whose high bits are dropped.
// The decoders are the matching inverses and pass lone surrogates through.
//
// For untrusted input use Validate or the Strict variants, which reject
// anything that is not a Unicode scalar value:
//
//	units, err := text.EncodeUTF16Strict(s)
//	if err != nil {
//	    // *errors.Error in PhaseEncode with Kind KindSurrogate or
//	    // KindInvalidScalar and the index of the offending value
//	}
//
// The Strict decoders report KindInvalidUTF16 or KindInvalidUTF8 for bad
// units and KindTruncated when the input ends inside a sequence.
//
// # Allocation
//
// The Encode functions size their output exactly: the unit count is computed
// first and a single buffer of that length is allocated. The Append variants
// reuse the caller's buffer.
package text
