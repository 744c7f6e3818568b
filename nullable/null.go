// Package nullable provides the Null sentinel and the Nullable optional value.
//
// Null behaves like an absorbing element: it converts to false, it never
// equals anything (itself included), it has no order, and every arithmetic
// operation on it yields Null again. It lets a missing value flow through an
// expression without a check at every step.
//
// Nullable[T] is an optional T whose truthiness also looks at the held value
// when that value is itself truthy or falsy.
package nullable

import "github.com/ywlang/ywlib/compare"

// Null is the null sentinel. The zero value is ready to use.
type Null struct{}

// From builds Null from any arguments, ignoring them.
func From(...any) Null { return Null{} }

// Assign discards v and returns n unchanged.
func (n Null) Assign(any) Null { return n }

// Bool is always false.
func (Null) Bool() bool { return false }

// Equal is always false, Null == Null included.
func (Null) Equal(Null) bool { return false }

// Compare always reports an unordered pair.
func (Null) Compare(Null) compare.Ordering { return compare.Unordered }

func (Null) Pos() Null      { return Null{} }
func (Null) Neg() Null      { return Null{} }
func (Null) Add(Null) Null  { return Null{} }
func (Null) Sub(Null) Null  { return Null{} }
func (Null) Mul(Null) Null  { return Null{} }
func (Null) Div(Null) Null  { return Null{} }
func (Null) String() string { return "null" }
