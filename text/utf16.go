package text

// UTF16Len returns the number of 16-bit units EncodeUTF16 emits for s.
func UTF16Len(s String) int {
	n := len(s)
	for _, r := range s {
		if uint32(r) >= surrSelf {
			n++
		}
	}
	return n
}

// EncodeUTF16 returns the UTF-16 encoding of s.
// Input values are not validated; see the package documentation.
func EncodeUTF16(s String) []uint16 {
	return AppendUTF16(make([]uint16, 0, UTF16Len(s)), s)
}

// AppendUTF16 appends the UTF-16 encoding of s to dst and returns the
// extended buffer.
func AppendUTF16(dst []uint16, s String) []uint16 {
	for _, r := range s {
		c := uint32(r)
		if c >= surrSelf {
			c -= surrSelf
			dst = append(dst, uint16(surr1+(c>>10)), uint16(surr2+(c&0x3FF)))
			continue
		}
		dst = append(dst, uint16(c))
	}
	return dst
}

// DecodeUTF16 returns the code points encoded by u.
// A high surrogate followed by a low surrogate is combined; every other unit,
// including an unpaired surrogate, becomes one code point of the same value.
func DecodeUTF16(u []uint16) String {
	s := make(String, 0, len(u))
	for i := 0; i < len(u); i++ {
		c := rune(u[i])
		if surr1 <= c && c < surr2 && i+1 < len(u) {
			if c2 := rune(u[i+1]); surr2 <= c2 && c2 < surr3 {
				s = append(s, (c-surr1)<<10|(c2-surr2)+surrSelf)
				i++
				continue
			}
		}
		s = append(s, c)
	}
	return s
}
