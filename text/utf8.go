package text

const (
	replacementChar = '\uFFFD'

	tx = 0x80 // 10xxxxxx
	t2 = 0xC0 // 110xxxxx
	t3 = 0xE0 // 1110xxxx
	t4 = 0xF0 // 11110xxx
	t5 = 0xF8

	maskx = 0x3F
)

// UTF8Len returns the number of bytes EncodeUTF8 emits for s.
func UTF8Len(s String) int {
	n := 0
	for _, r := range s {
		n += RuneLen8(r)
	}
	return n
}

// RuneLen8 returns the number of bytes the permissive encoder emits for r.
func RuneLen8(r rune) int {
	switch c := uint32(r); {
	case c >= 0x10000:
		return 4
	case c >= 0x800:
		return 3
	case c >= 0x80:
		return 2
	default:
		return 1
	}
}

// RuneLen16 returns the number of 16-bit units the permissive encoder emits for r.
func RuneLen16(r rune) int {
	if uint32(r) >= surrSelf {
		return 2
	}
	return 1
}

// EncodeUTF8 returns the UTF-8 encoding of s.
// Input values are not validated; see the package documentation.
func EncodeUTF8(s String) []byte {
	return AppendUTF8(make([]byte, 0, UTF8Len(s)), s)
}

// AppendUTF8 appends the UTF-8 encoding of s to dst and returns the extended
// buffer.
func AppendUTF8(dst []byte, s String) []byte {
	for _, r := range s {
		c := uint32(r)
		switch {
		case c >= 0x10000:
			dst = append(dst,
				byte(t4|(c>>18)&0x07),
				byte(tx|(c>>12)&maskx),
				byte(tx|(c>>6)&maskx),
				byte(tx|c&maskx))
		case c >= 0x800:
			dst = append(dst,
				byte(t3|(c>>12)&0x0F),
				byte(tx|(c>>6)&maskx),
				byte(tx|c&maskx))
		case c >= 0x80:
			dst = append(dst,
				byte(t2|(c>>6)&0x1F),
				byte(tx|c&maskx))
		default:
			dst = append(dst, byte(c))
		}
	}
	return dst
}

// DecodeUTF8 returns the code points encoded by b.
// It inverts AppendUTF8: surrogate and overlong forms are accepted. A leading
// byte that is not followed by enough continuation bytes, a stray
// continuation byte and the bytes 0xF8..0xFF each decode to U+FFFD and
// consume one byte.
func DecodeUTF8(b []byte) String {
	s := make(String, 0, len(b))
	for i := 0; i < len(b); {
		r, n := decodeRune8(b[i:])
		s = append(s, r)
		i += n
	}
	return s
}

// decodeRune8 decodes the first sequence in b without range checks.
// Malformed input yields U+FFFD with a width of 1.
func decodeRune8(b []byte) (rune, int) {
	c := b[0]
	var n int
	var r rune
	switch {
	case c < tx:
		return rune(c), 1
	case c < t2:
		return replacementChar, 1
	case c < t3:
		n, r = 2, rune(c&0x1F)
	case c < t4:
		n, r = 3, rune(c&0x0F)
	case c < t5:
		n, r = 4, rune(c&0x07)
	default:
		return replacementChar, 1
	}
	if len(b) < n {
		return replacementChar, 1
	}
	for _, cc := range b[1:n] {
		if cc&0xC0 != tx {
			return replacementChar, 1
		}
		r = r<<6 | rune(cc&maskx)
	}
	return r, n
}
