package compare

import (
	"math"
	"slices"
	"testing"
)

func TestOf(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name string
		a, b float64
		want Ordering
	}{
		{"less", 1, 2, LessThan},
		{"equal", 2, 2, EqualTo},
		{"greater", 3, 2, GreaterThan},
		{"nan left", nan, 2, Unordered},
		{"nan right", 2, nan, Unordered},
		{"nan both", nan, nan, Unordered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Of(tt.a, tt.b); got != tt.want {
				t.Errorf("Of(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
	if got := Of("a", "b"); got != LessThan {
		t.Errorf("Of(a, b) = %v, want less", got)
	}
}

func TestOp_Holds(t *testing.T) {
	orderings := []Ordering{LessThan, EqualTo, GreaterThan, Unordered}
	want := map[Op][4]bool{
		OpEqual:        {false, true, false, false},
		OpNotEqual:     {true, false, true, true},
		OpLess:         {true, false, false, false},
		OpLessEqual:    {true, true, false, false},
		OpGreater:      {false, false, true, false},
		OpGreaterEqual: {false, true, true, false},
	}
	for op, row := range want {
		for i, o := range orderings {
			if got := op.Holds(o); got != row[i] {
				t.Errorf("%v.Holds(%v) = %v, want %v", op, o, got, row[i])
			}
		}
	}
}

func TestOrdered_MatchesOperators(t *testing.T) {
	pairs := [][2]int{{1, 2}, {2, 2}, {3, 2}}
	funcs := map[Op]Func[int]{
		OpEqual:        Equal[int],
		OpNotEqual:     NotEqual[int],
		OpLess:         Less[int],
		OpLessEqual:    LessEqual[int],
		OpGreater:      Greater[int],
		OpGreaterEqual: GreaterEqual[int],
	}
	for op, fn := range funcs {
		pred := Ordered[int](op)
		for _, p := range pairs {
			if pred(p[0], p[1]) != fn(p[0], p[1]) {
				t.Errorf("%d %v %d: Ordered and operator disagree", p[0], op, p[1])
			}
		}
	}
}

type version struct{ major, minor int }

func (v version) Compare(o version) Ordering {
	if c := Of(v.major, o.major); c != EqualTo {
		return c
	}
	return Of(v.minor, o.minor)
}

func TestByOp(t *testing.T) {
	vs := []version{{1, 2}, {0, 9}, {1, 0}}
	less := ByOp[version](OpLess)
	slices.SortFunc(vs, func(a, b version) int {
		if less(a, b) {
			return -1
		}
		if less(b, a) {
			return 1
		}
		return 0
	})
	want := []version{{0, 9}, {1, 0}, {1, 2}}
	if !slices.Equal(vs, want) {
		t.Errorf("sorted = %v, want %v", vs, want)
	}
	if !ByOp[version](OpEqual)(version{1, 1}, version{1, 1}) {
		t.Error("equal versions should satisfy ==")
	}
}

func TestStrings(t *testing.T) {
	if OpLessEqual.String() != "<=" || Op(42).String() != "?" {
		t.Errorf("Op strings: %v %v", OpLessEqual, Op(42))
	}
	if Unordered.String() != "unordered" || Ordering(9).String() != "invalid" {
		t.Errorf("Ordering strings: %v %v", Unordered, Ordering(9))
	}
}
