package host

import (
	"strings"

	"github.com/ywlang/ywlib/errors"
	"github.com/ywlang/ywlib/text"
	"go.bytecodealliance.org/wit"
)

// Encoding selects the unit width of lowered text.
type Encoding uint8

const (
	EncodingUTF8 Encoding = iota
	EncodingUTF16
	EncodingUTF32
)

// Encodings lists every supported encoding.
var Encodings = []Encoding{EncodingUTF8, EncodingUTF16, EncodingUTF32}

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf-8"
	case EncodingUTF16:
		return "utf-16"
	case EncodingUTF32:
		return "utf-32"
	default:
		return "unknown"
	}
}

// ParseEncoding accepts "utf8", "utf-8", "utf16", "utf-16", "utf32" and
// "utf-32", case-insensitively.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ReplaceAll(strings.ToLower(s), "-", "") {
	case "utf8":
		return EncodingUTF8, nil
	case "utf16":
		return EncodingUTF16, nil
	case "utf32":
		return EncodingUTF32, nil
	}
	return 0, errors.InvalidInput(errors.PhaseLower, "unknown encoding "+s)
}

// ElemType returns the WIT type of one unit.
func (e Encoding) ElemType() wit.Type {
	switch e {
	case EncodingUTF8:
		return wit.U8{}
	case EncodingUTF16:
		return wit.U16{}
	case EncodingUTF32:
		return wit.Char{}
	default:
		return nil
	}
}

// ListType returns the WIT list type of a lowered buffer.
func (e Encoding) ListType() wit.Type {
	return &wit.TypeDef{Kind: &wit.List{Type: e.ElemType()}}
}

// TypeName returns the WIT spelling of ListType.
func (e Encoding) TypeName() string {
	switch e.ElemType().(type) {
	case wit.U8:
		return "list<u8>"
	case wit.U16:
		return "list<u16>"
	case wit.Char:
		return "list<char>"
	default:
		return "unknown"
	}
}

// Layout returns the size and alignment of one unit in bytes.
func (e Encoding) Layout() (size, align uint32) {
	switch e.ElemType().(type) {
	case wit.U8:
		return 1, 1
	case wit.U16:
		return 2, 2
	case wit.Char:
		return 4, 4
	default:
		return 0, 1
	}
}

// Units returns the number of units s occupies in this encoding.
func (e Encoding) Units(s text.String) int {
	switch e {
	case EncodingUTF8:
		return text.UTF8Len(s)
	case EncodingUTF16:
		return text.UTF16Len(s)
	default:
		return len(s)
	}
}

func (e Encoding) valid() bool {
	return e <= EncodingUTF32
}
