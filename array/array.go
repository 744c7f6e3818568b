// Package array provides fixed, empty and dynamically sized array containers
// behind one interface.
//
// Element access through At is not bounds-checked beyond Go's own slice
// indexing: an out-of-range index panics like it would on a slice.
//
// A Dynamic owns its buffer. It is handled through a pointer, it is never
// copied implicitly (go vet flags copies), and Move hands the buffer to a new
// Dynamic, leaving the source empty.
package array

import (
	"iter"
	"slices"
)

// Unbounded is the size sentinel that selects a Dynamic in New.
const Unbounded = -1

// Array is the surface shared by Fixed, Empty and Dynamic.
type Array[T any] interface {
	Len() int
	Data() []T
	At(i int) T
	All() iter.Seq2[int, T]
	Values() iter.Seq[T]
}

// Number is the set of types FromNumbers converts between.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// New returns an Empty for size 0, a Dynamic for Unbounded and a Fixed of
// zero values otherwise.
func New[T any](size int) Array[T] {
	switch {
	case size == 0:
		return Empty[T]{}
	case size == Unbounded:
		return Make[T](0)
	case size < 0:
		panic("array: negative size")
	default:
		return NewFixed[T](size)
	}
}

// Fixed is an array whose length is set at construction and never changes.
// Copies of a Fixed share storage; Clone makes an independent one.
type Fixed[T any] struct {
	data []T
}

// NewFixed returns a Fixed of n zero values.
func NewFixed[T any](n int) Fixed[T] {
	return Fixed[T]{data: make([]T, n)}
}

// FixedOf returns a Fixed holding a copy of vals.
func FixedOf[T any](vals ...T) Fixed[T] {
	return Fixed[T]{data: slices.Clone(vals)}
}

func (a Fixed[T]) Len() int               { return len(a.data) }
func (a Fixed[T]) Data() []T              { return a.data }
func (a Fixed[T]) At(i int) T             { return a.data[i] }
func (a Fixed[T]) Set(i int, v T)         { a.data[i] = v }
func (a Fixed[T]) All() iter.Seq2[int, T] { return slices.All(a.data) }
func (a Fixed[T]) Values() iter.Seq[T]    { return slices.Values(a.data) }
func (a Fixed[T]) Clone() Fixed[T]        { return Fixed[T]{data: slices.Clone(a.data)} }

// Empty is the zero-length array. It holds no storage.
type Empty[T any] struct{}

func (Empty[T]) Len() int   { return 0 }
func (Empty[T]) Data() []T  { return nil }
func (Empty[T]) At(i int) T { return []T(nil)[i] }

func (Empty[T]) All() iter.Seq2[int, T] {
	return func(func(int, T) bool) {}
}

func (Empty[T]) Values() iter.Seq[T] {
	return func(func(T) bool) {}
}
