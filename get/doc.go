// Package get provides uniform indexed access to tuples, arrays and single
// values.
//
// There are two layers.
//
// The static layer resolves everything at compile time. Get0 to Get3 accept
// any type with the matching GetN method; calling Get2 on a Pair does not
// compile:
//
//	p := get.MakePair("x", 42)
//	n := get.Get1[int](p) // 42
//
// The dynamic layer works on values of any type. For a (type, index) pair it
// selects one strategy, in this order:
//
//  1. the value's own GetN method
//  2. the value's own At(int) and Len() int methods, as on array.Fixed and
//     *array.Dynamic
//  3. an accessor registered for the type with Register
//  4. array indexing, when the type is an array and the index is in range
//  5. identity, for index 0: the whole value is a one-element sequence
//
// The choice is made once per (type, index) and cached. A pair that no
// strategy accepts fails in Classify, before any value is touched, with an
// *errors.Error in PhaseClassify. For At/Len types the length is only known
// per value, so Get checks the index against Len and reports the same
// out-of-bounds error.
package get
