package nullable

import (
	"testing"

	"github.com/ywlang/ywlib/compare"
)

func TestNull(t *testing.T) {
	n := From(1, "two", 3.0)
	if n.Bool() {
		t.Error("Null.Bool() = true, want false")
	}
	if n.Equal(Null{}) {
		t.Error("Null == Null should be false")
	}
	if got := n.Compare(Null{}); got != compare.Unordered {
		t.Errorf("Compare = %v, want unordered", got)
	}
	for _, op := range []compare.Op{compare.OpEqual, compare.OpLess, compare.OpLessEqual, compare.OpGreater, compare.OpGreaterEqual} {
		if compare.ByOp[Null](op)(n, n) {
			t.Errorf("null %v null should be false", op)
		}
	}
	if !compare.ByOp[Null](compare.OpNotEqual)(n, n) {
		t.Error("null != null should be true")
	}

	got := n.Add(n).Mul(n.Neg()).Sub(n.Pos()).Div(n).Assign(42)
	if got != (Null{}) {
		t.Errorf("arithmetic = %v, want null", got)
	}
	if n.String() != "null" {
		t.Errorf("String() = %q", n.String())
	}
}

type flag bool

func (f flag) Bool() bool { return bool(f) }

func TestNullable(t *testing.T) {
	tests := []struct {
		name     string
		truthy   bool
		hasValue bool
		nullable interface {
			Truthy() bool
			HasValue() bool
			IsNull() bool
		}
	}{
		{"none", false, false, None[int]()},
		{"zero int", true, true, Of(0)},
		{"empty string", true, true, Of("")},
		{"true", true, true, Of(true)},
		{"false", false, true, Of(false)},
		{"booler true", true, true, Of(flag(true))},
		{"booler false", false, true, Of(flag(false))},
		{"null", false, true, Of(Null{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.nullable.Truthy(); got != tt.truthy {
				t.Errorf("Truthy() = %v, want %v", got, tt.truthy)
			}
			if got := tt.nullable.HasValue(); got != tt.hasValue {
				t.Errorf("HasValue() = %v, want %v", got, tt.hasValue)
			}
			if tt.nullable.IsNull() == tt.hasValue {
				t.Errorf("IsNull() = %v with HasValue() = %v", tt.nullable.IsNull(), tt.hasValue)
			}
		})
	}
}

func TestNullable_Access(t *testing.T) {
	var empty Nullable[string]
	if empty.Get() != "" || empty.Or("def") != "def" || empty.Ptr() != nil {
		t.Error("empty Nullable should yield zero, default and nil")
	}
	if v, ok := empty.GetOk(); ok || v != "" {
		t.Errorf("GetOk() = %q, %v", v, ok)
	}
	if empty.String() != "null" {
		t.Errorf("String() = %q, want null", empty.String())
	}

	n := Of("title")
	if n.Get() != "title" || n.Or("def") != "title" {
		t.Errorf("Get/Or = %q/%q", n.Get(), n.Or("def"))
	}
	*n.Ptr() = "renamed"
	if n.Get() != "renamed" {
		t.Errorf("write through Ptr lost: %q", n.Get())
	}
	if n.String() != "renamed" {
		t.Errorf("String() = %q", n.String())
	}
}
