// Package ywlib is a small generic-programming toolkit built around a
// code-point string type.
//
// The library is organized into several packages with distinct responsibilities:
//
//	ywlib/         Root package with the Memory and Allocator interfaces
//	├── text/      Code-point strings and UTF-8 / UTF-16 transcoding
//	├── get/       Uniform element access for tuples, arrays and single values
//	├── array/     Fixed, empty and dynamically sized array containers
//	├── compare/   Comparison function objects and partial ordering
//	├── nullable/  The Null sentinel and the Nullable optional value
//	├── resource/  Generic handle table
//	├── host/      Guest linear memory that receives transcoded text
//	└── errors/    Structured error types
//
// # Quick Start
//
// Transcode a code-point string:
//
//	s := text.FromString("A€😀")
//	units := text.EncodeUTF16(s) // [0x0041 0x20AC 0xD83D 0xDE00]
//	bytes := text.EncodeUTF8(s)  // [0x41 0xE2 0x82 0xAC 0xF0 0x9F 0x98 0x80]
//
// Hand text to a consumer that expects 16-bit units in its own memory:
//
//	h, err := host.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	handle, err := h.Lower(ctx, s, host.EncodingUTF16)
//
// # Validation
//
// The encoders in package text do not validate their input. Surrogate code
// points and values above U+10FFFF go through the same bit arithmetic as valid
// scalar values. Use the Strict variants or text.Validate when the input is
// untrusted.
//
// # Thread Safety
//
// Everything in text, get, array, compare and nullable is free of shared
// mutable state, except the strategy cache and accessor registry in get,
// which are safe for concurrent use. A host.Host serializes its own access.
package ywlib
