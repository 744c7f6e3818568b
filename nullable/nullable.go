package nullable

import "fmt"

// Booler is implemented by values with their own truthiness.
type Booler interface {
	Bool() bool
}

// Nullable holds a T or nothing. The zero value holds nothing.
type Nullable[T any] struct {
	value    T
	hasValue bool
}

// Of returns a Nullable holding v.
func Of[T any](v T) Nullable[T] {
	return Nullable[T]{value: v, hasValue: true}
}

// None returns an empty Nullable.
func None[T any]() Nullable[T] {
	return Nullable[T]{}
}

// HasValue reports whether n holds a value.
func (n Nullable[T]) HasValue() bool { return n.hasValue }

// IsNull reports whether n is empty.
func (n Nullable[T]) IsNull() bool { return !n.hasValue }

// Get returns the held value, or the zero T when n is empty.
func (n Nullable[T]) Get() T { return n.value }

// GetOk returns the held value and whether there is one.
func (n Nullable[T]) GetOk() (T, bool) { return n.value, n.hasValue }

// Or returns the held value, or def when n is empty.
func (n Nullable[T]) Or(def T) T {
	if n.hasValue {
		return n.value
	}
	return def
}

// Ptr returns a pointer to the held value, or nil when n is empty.
func (n *Nullable[T]) Ptr() *T {
	if !n.hasValue {
		return nil
	}
	return &n.value
}

// Truthy is false for an empty Nullable. For a bool or a Booler it is the
// held value's own truthiness; otherwise it is true. Numeric zero and the
// empty string count as truthy: Of(0).Truthy() is true.
func (n Nullable[T]) Truthy() bool {
	if !n.hasValue {
		return false
	}
	switch v := any(n.value).(type) {
	case bool:
		return v
	case Booler:
		return v.Bool()
	}
	return true
}

func (n Nullable[T]) String() string {
	if !n.hasValue {
		return "null"
	}
	return fmt.Sprint(n.value)
}
