package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseLower,
				Kind:     KindAllocation,
				Path:     []string{"dialog", "caption"},
				GoType:   "text.String",
				Encoding: "utf-16",
				Detail:   "memory full",
			},
			contains: []string{"[lower]", "allocation", "dialog.caption", "text.String", "utf-16", "memory full"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseClassify,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[classify]", "out_of_bounds"},
		},
		{
			name: "encoding only",
			err: &Error{
				Phase:    PhaseDecode,
				Kind:     KindInvalidUTF16,
				Encoding: "utf-16",
				Detail:   "unpaired",
			},
			contains: []string{"[decode]", "encoding utf-16 - unpaired"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseRuntime,
				Kind:   KindClosed,
				Detail: "host",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[runtime]", "closed", "host", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseLift,
		Kind:  KindInvalidInput,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseValidate,
		Kind:  KindSurrogate,
		Path:  []string{"title"},
	}

	if !err.Is(&Error{Phase: PhaseValidate, Kind: KindSurrogate}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindSurrogate}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseValidate, Kind: KindInvalidScalar}) {
		t.Error("Is should not match different kind")
	}

	var wrapped error = Wrap(PhaseLower, KindInvalidInput, err, "lower title")
	if !errors.Is(wrapped, &Error{Phase: PhaseValidate, Kind: KindSurrogate}) {
		t.Error("errors.Is should find the cause")
	}

	var target *Error
	if !errors.As(wrapped, &target) || target.Phase != PhaseLower {
		t.Errorf("errors.As = %v, want the outer error", target)
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseValidate, KindSurrogate).
		Path("dialog", "text").
		GoType("text.String").
		Encoding("utf-16").
		Value(0xD800).
		Cause(cause).
		Detail("lone surrogate at index %d", 3).
		Build()

	if err.Phase != PhaseValidate {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseValidate)
	}
	if err.Kind != KindSurrogate {
		t.Errorf("Kind = %v, want %v", err.Kind, KindSurrogate)
	}
	if len(err.Path) != 2 || err.Path[0] != "dialog" || err.Path[1] != "text" {
		t.Errorf("Path = %v, want [dialog text]", err.Path)
	}
	if err.GoType != "text.String" {
		t.Errorf("GoType = %v, want 'text.String'", err.GoType)
	}
	if err.Encoding != "utf-16" {
		t.Errorf("Encoding = %v, want 'utf-16'", err.Encoding)
	}
	if err.Value != 0xD800 {
		t.Errorf("Value = %v, want 0xD800", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "lone surrogate at index 3" {
		t.Errorf("Detail = %v, want 'lone surrogate at index 3'", err.Detail)
	}

	plain := New(PhaseRuntime, KindClosed).Detail("100% closed").Build()
	if plain.Detail != "100% closed" {
		t.Errorf("Detail without args = %q, want it verbatim", plain.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("InvalidScalar", func(t *testing.T) {
		err := InvalidScalar(PhaseValidate, 2, 0x110000)
		if err.Kind != KindInvalidScalar {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidScalar)
		}
		if !strings.Contains(err.Detail, "0x110000") || !strings.Contains(err.Detail, "index 2") {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("Surrogate", func(t *testing.T) {
		err := Surrogate(PhaseValidate, 0, 0xDC00)
		if err.Kind != KindSurrogate {
			t.Errorf("Kind = %v, want %v", err.Kind, KindSurrogate)
		}
		if err.Value != rune(0xDC00) {
			t.Errorf("Value = %v, want 0xDC00", err.Value)
		}
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		err := InvalidUTF8(PhaseDecode, 1, []byte{0xff, 0xfe})
		if err.Kind != KindInvalidUTF8 {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidUTF8)
		}
		if !strings.Contains(err.Detail, "fffe") {
			t.Errorf("Detail = %q, should contain hex preview", err.Detail)
		}
	})

	t.Run("InvalidUTF8 long preview", func(t *testing.T) {
		err := InvalidUTF8(PhaseDecode, 0, make([]byte, 100))
		if strings.Count(err.Detail, "00") > 40 {
			t.Errorf("preview not truncated: %q", err.Detail)
		}
	})

	t.Run("InvalidUTF16", func(t *testing.T) {
		err := InvalidUTF16(PhaseDecode, 4, 0xD83D)
		if err.Kind != KindInvalidUTF16 {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidUTF16)
		}
		if err.Encoding != "utf-16" {
			t.Errorf("Encoding = %q, want utf-16", err.Encoding)
		}
	})

	t.Run("AllocationFailed", func(t *testing.T) {
		err := AllocationFailed(PhaseLower, 1024, 2)
		if err.Kind != KindAllocation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindAllocation)
		}
		if !strings.Contains(err.Detail, "1024") {
			t.Errorf("Detail = %v, should contain size", err.Detail)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseClassify, []string{"[3]int"}, 10, 3)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != 10 {
			t.Errorf("Value = %v, want 10", err.Value)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseLift, "handle", 7)
		if err.Kind != KindNotFound || !strings.Contains(err.Detail, "handle 7") {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("Truncated", func(t *testing.T) {
		err := Truncated(PhaseDecode, 3, "utf-8")
		if err.Kind != KindTruncated || err.Encoding != "utf-8" || err.Value != 3 {
			t.Errorf("err = %#v", err)
		}
	})

	t.Run("Closed", func(t *testing.T) {
		err := Closed(PhaseLower, "host")
		if err.Kind != KindClosed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindClosed)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseClassify, "func types")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
	})
}
