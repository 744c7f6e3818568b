// Package compare provides comparison operators as function values and a
// partial ordering that admits unordered pairs.
package compare

import "cmp"

// Ordering is the result of a three-way comparison.
type Ordering int8

const (
	LessThan    Ordering = -1
	EqualTo     Ordering = 0
	GreaterThan Ordering = 1
	// Unordered is returned for pairs that have no order, such as NaN
	// operands or the Null sentinel.
	Unordered Ordering = 2
)

func (o Ordering) String() string {
	switch o {
	case LessThan:
		return "less"
	case EqualTo:
		return "equal"
	case GreaterThan:
		return "greater"
	case Unordered:
		return "unordered"
	default:
		return "invalid"
	}
}

// Comparable is implemented by types with their own three-way comparison.
type Comparable[T any] interface {
	Compare(other T) Ordering
}

// Of compares two ordered values. Any NaN operand makes the pair unordered.
func Of[T cmp.Ordered](a, b T) Ordering {
	if a != a || b != b {
		return Unordered
	}
	return Ordering(cmp.Compare(a, b))
}

// Op names one of the six comparison operators.
type Op uint8

const (
	OpEqual Op = iota
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
)

var opNames = [...]string{"==", "!=", "<", "<=", ">", ">="}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "?"
}

// Holds reports whether op is satisfied by a comparison result.
// Only != holds for an unordered pair.
func (op Op) Holds(o Ordering) bool {
	if o == Unordered {
		return op == OpNotEqual
	}
	switch op {
	case OpEqual:
		return o == EqualTo
	case OpNotEqual:
		return o != EqualTo
	case OpLess:
		return o == LessThan
	case OpLessEqual:
		return o != GreaterThan
	case OpGreater:
		return o == GreaterThan
	case OpGreaterEqual:
		return o != LessThan
	}
	return false
}

// Func is a binary predicate.
type Func[T any] func(a, b T) bool

// ByOp returns the predicate for op over a Comparable type.
func ByOp[T Comparable[T]](op Op) Func[T] {
	return func(a, b T) bool { return op.Holds(a.Compare(b)) }
}

// Ordered returns the predicate for op over an ordered type.
func Ordered[T cmp.Ordered](op Op) Func[T] {
	return func(a, b T) bool { return op.Holds(Of(a, b)) }
}

func Equal[T comparable](a, b T) bool    { return a == b }
func NotEqual[T comparable](a, b T) bool { return a != b }

func Less[T cmp.Ordered](a, b T) bool         { return a < b }
func LessEqual[T cmp.Ordered](a, b T) bool    { return a <= b }
func Greater[T cmp.Ordered](a, b T) bool      { return a > b }
func GreaterEqual[T cmp.Ordered](a, b T) bool { return a >= b }
