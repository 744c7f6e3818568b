package text

import (
	"unicode/utf8"

	"github.com/ywlang/ywlib/errors"
)

// Validate returns an error for the first value in s that is not a Unicode
// scalar value, or nil.
func Validate(s String) error {
	for i, r := range s {
		if err := checkScalar(errors.PhaseValidate, i, r); err != nil {
			return err
		}
	}
	return nil
}

func checkScalar(phase errors.Phase, i int, r rune) *errors.Error {
	switch {
	case r < 0 || r > MaxScalar:
		return errors.InvalidScalar(phase, i, r)
	case IsSurrogate(r):
		return errors.Surrogate(phase, i, r)
	}
	return nil
}

// EncodeUTF16Strict is EncodeUTF16 that rejects non-scalar input with a
// PhaseEncode error of kind KindSurrogate or KindInvalidScalar.
func EncodeUTF16Strict(s String) ([]uint16, error) {
	if err := checkAll(s, "utf-16"); err != nil {
		return nil, err
	}
	return EncodeUTF16(s), nil
}

// EncodeUTF8Strict is EncodeUTF8 that rejects non-scalar input like
// EncodeUTF16Strict.
func EncodeUTF8Strict(s String) ([]byte, error) {
	if err := checkAll(s, "utf-8"); err != nil {
		return nil, err
	}
	return EncodeUTF8(s), nil
}

func checkAll(s String, encoding string) error {
	for i, r := range s {
		if err := checkScalar(errors.PhaseEncode, i, r); err != nil {
			err.Encoding = encoding
			return err
		}
	}
	return nil
}

// DecodeUTF16Strict decodes u and rejects unpaired surrogates. A high
// surrogate in the last unit is reported as KindTruncated.
func DecodeUTF16Strict(u []uint16) (String, error) {
	s := make(String, 0, len(u))
	for i := 0; i < len(u); i++ {
		c := rune(u[i])
		switch {
		case surr1 <= c && c < surr2:
			if i+1 >= len(u) {
				return nil, errors.Truncated(errors.PhaseDecode, i, "utf-16")
			}
			c2 := rune(u[i+1])
			if c2 < surr2 || c2 >= surr3 {
				return nil, errors.InvalidUTF16(errors.PhaseDecode, i, u[i])
			}
			s = append(s, (c-surr1)<<10|(c2-surr2)+surrSelf)
			i++
		case surr2 <= c && c < surr3:
			return nil, errors.InvalidUTF16(errors.PhaseDecode, i, u[i])
		default:
			s = append(s, c)
		}
	}
	return s, nil
}

// DecodeUTF8Strict decodes b and rejects overlong and surrogate sequences as
// well as values above U+10FFFF. A valid prefix cut off by the end of b is
// reported as KindTruncated.
func DecodeUTF8Strict(b []byte) (String, error) {
	s := make(String, 0, utf8.RuneCount(b))
	for i := 0; i < len(b); {
		r, n := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && n == 1 {
			if !utf8.FullRune(b[i:]) {
				return nil, errors.Truncated(errors.PhaseDecode, i, "utf-8")
			}
			return nil, errors.InvalidUTF8(errors.PhaseDecode, i, b[i:])
		}
		s = append(s, r)
		i += n
	}
	return s, nil
}
