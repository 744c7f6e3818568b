package get

type Getter0[E any] interface{ Get0() E }
type Getter1[E any] interface{ Get1() E }
type Getter2[E any] interface{ Get2() E }
type Getter3[E any] interface{ Get3() E }

func Get0[E any, T Getter0[E]](v T) E { return v.Get0() }
func Get1[E any, T Getter1[E]](v T) E { return v.Get1() }
func Get2[E any, T Getter2[E]](v T) E { return v.Get2() }
func Get3[E any, T Getter3[E]](v T) E { return v.Get3() }

// Pair is a two-element tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

func (p Pair[A, B]) Get0() A { return p.First }
func (p Pair[A, B]) Get1() B { return p.Second }
func (Pair[A, B]) Len() int  { return 2 }
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Triple is a three-element tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func MakeTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}

func (t Triple[A, B, C]) Get0() A { return t.First }
func (t Triple[A, B, C]) Get1() B { return t.Second }
func (t Triple[A, B, C]) Get2() C { return t.Third }
func (Triple[A, B, C]) Len() int  { return 3 }
func (t Triple[A, B, C]) Unpack() (A, B, C) {
	return t.First, t.Second, t.Third
}
