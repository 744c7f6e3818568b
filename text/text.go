package text

import (
	"slices"
	"strconv"
	"strings"
)

const (
	// MaxScalar is the largest Unicode scalar value.
	MaxScalar = 0x10FFFF

	// 0xD800-0xDC00 carries the high 10 bits of a pair,
	// 0xDC00-0xE000 the low 10 bits. The value is those 20 bits plus 0x10000.
	surr1    = 0xD800
	surr2    = 0xDC00
	surr3    = 0xE000
	surrSelf = 0x10000
)

// String is an ordered sequence of code points.
type String []rune

// FromString converts a Go string to code points.
// Invalid UTF-8 bytes become U+FFFD.
func FromString(s string) String {
	return String([]rune(s))
}

// String returns the UTF-8 form of s.
func (s String) String() string {
	return string(EncodeUTF8(s))
}

// UTF16 returns the UTF-16 form of s.
func (s String) UTF16() []uint16 {
	return EncodeUTF16(s)
}

// UTF8 returns the UTF-8 form of s.
func (s String) UTF8() []byte {
	return EncodeUTF8(s)
}

// Len returns the number of code points.
func (s String) Len() int {
	return len(s)
}

// Equal reports whether s and o hold the same code points in the same order.
func (s String) Equal(o String) bool {
	return slices.Equal(s, o)
}

// Clone returns a copy of s that shares no storage with it.
func (s String) Clone() String {
	return slices.Clone(s)
}

// GoString formats s as a list of U+XXXX code points.
func (s String) GoString() string {
	var b strings.Builder
	b.WriteString("text.String{")
	for i, r := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(CodePoint(r))
	}
	b.WriteByte('}')
	return b.String()
}

// CodePoint formats r in U+XXXX notation.
func CodePoint(r rune) string {
	hex := strings.ToUpper(strconv.FormatUint(uint64(uint32(r)), 16))
	if len(hex) < 4 {
		hex = strings.Repeat("0", 4-len(hex)) + hex
	}
	return "U+" + hex
}

// IsSurrogate reports whether r lies in the surrogate range U+D800..U+DFFF.
func IsSurrogate(r rune) bool {
	return surr1 <= r && r < surr3
}

// IsScalar reports whether r is a Unicode scalar value.
func IsScalar(r rune) bool {
	return r >= 0 && r <= MaxScalar && !IsSurrogate(r)
}
