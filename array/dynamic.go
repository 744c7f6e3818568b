package array

import (
	"iter"
	"slices"
)

// noCopy makes go vet's copylocks check report copies of the containing struct.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Dynamic is a heap-allocated array sized at run time.
type Dynamic[T any] struct {
	noCopy noCopy
	data   []T
}

// Make returns a Dynamic of n zero values.
func Make[T any](n int) *Dynamic[T] {
	return &Dynamic[T]{data: make([]T, n)}
}

// Fill returns a Dynamic of n copies of v.
func Fill[T any](n int, v T) *Dynamic[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = v
	}
	return &Dynamic[T]{data: data}
}

// FromSlice returns a Dynamic holding a copy of src.
func FromSlice[T any](src []T) *Dynamic[T] {
	return &Dynamic[T]{data: slices.Clone(src)}
}

// FromSeq returns a Dynamic holding the values of seq in order.
func FromSeq[T any](seq iter.Seq[T]) *Dynamic[T] {
	return &Dynamic[T]{data: slices.Collect(seq)}
}

// FromArray returns a Dynamic holding a copy of the elements of src.
func FromArray[T any](src Array[T]) *Dynamic[T] {
	data := make([]T, 0, src.Len())
	for v := range src.Values() {
		data = append(data, v)
	}
	return &Dynamic[T]{data: data}
}

// FromNumbers returns a Dynamic holding the elements of src converted to T.
func FromNumbers[T, E Number](src []E) *Dynamic[T] {
	data := make([]T, len(src))
	for i, v := range src {
		data[i] = T(v)
	}
	return &Dynamic[T]{data: data}
}

// Convert returns a Dynamic holding conv applied to each element of src.
func Convert[T, E any](src []E, conv func(E) T) *Dynamic[T] {
	data := make([]T, len(src))
	for i, v := range src {
		data[i] = conv(v)
	}
	return &Dynamic[T]{data: data}
}

func (d *Dynamic[T]) Len() int               { return len(d.data) }
func (d *Dynamic[T]) Data() []T              { return d.data }
func (d *Dynamic[T]) At(i int) T             { return d.data[i] }
func (d *Dynamic[T]) Set(i int, v T)         { d.data[i] = v }
func (d *Dynamic[T]) All() iter.Seq2[int, T] { return slices.All(d.data) }
func (d *Dynamic[T]) Values() iter.Seq[T]    { return slices.Values(d.data) }

// Move transfers the buffer to a new Dynamic and leaves d empty.
func (d *Dynamic[T]) Move() *Dynamic[T] {
	m := &Dynamic[T]{data: d.data}
	d.data = nil
	return m
}

// MoveFrom releases d's buffer, takes src's buffer and leaves src empty.
func (d *Dynamic[T]) MoveFrom(src *Dynamic[T]) {
	if d == src {
		return
	}
	d.data = src.data
	src.data = nil
}

// Clone returns an independent copy of d.
func (d *Dynamic[T]) Clone() *Dynamic[T] {
	return &Dynamic[T]{data: slices.Clone(d.data)}
}
