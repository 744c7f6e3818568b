package get

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/ywlang/ywlib/errors"
)

// Strategy is the access path chosen for a (type, index) pair.
type Strategy uint8

const (
	StrategyNone Strategy = iota
	StrategyMethod
	StrategyIndexed
	StrategyFunc
	StrategyArray
	StrategyIdentity
)

func (s Strategy) String() string {
	switch s {
	case StrategyMethod:
		return "method"
	case StrategyIndexed:
		return "indexed"
	case StrategyFunc:
		return "func"
	case StrategyArray:
		return "array"
	case StrategyIdentity:
		return "identity"
	default:
		return "none"
	}
}

// Func is a free accessor registered for a type.
type Func func(v any, i int) any

type accessor struct {
	fn Func
	n  int
}

type cacheKey struct {
	typ   reflect.Type
	index int
}

type classification struct {
	err      error
	method   string
	strategy Strategy
}

var (
	accessors  sync.Map // reflect.Type -> accessor
	cache      sync.Map // cacheKey -> classification
	registryMu sync.RWMutex
)

// Register installs fn as the accessor for T covering indexes [0, n).
// It replaces any earlier registration for T and invalidates cached
// classifications of T.
func Register[T any](n int, fn func(v T, i int) any) {
	typ := reflect.TypeFor[T]()

	// classify resolves and caches under the read lock.
	registryMu.Lock()
	defer registryMu.Unlock()

	accessors.Store(typ, accessor{
		n:  n,
		fn: func(v any, i int) any { return fn(v.(T), i) },
	})
	cache.Range(func(k, _ any) bool {
		if k.(cacheKey).typ == typ {
			cache.Delete(k)
		}
		return true
	})
}

// Classify returns the strategy Get uses for values of typ at index.
func Classify(typ reflect.Type, index int) (Strategy, error) {
	c := classify(typ, index)
	return c.strategy, c.err
}

func classify(typ reflect.Type, index int) classification {
	key := cacheKey{typ: typ, index: index}
	if cached, ok := cache.Load(key); ok {
		return cached.(classification)
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	c := resolve(typ, index)
	cache.Store(key, c)
	return c
}

func resolve(typ reflect.Type, index int) classification {
	if typ == nil {
		return classification{err: errors.InvalidInput(errors.PhaseClassify, "nil type")}
	}
	if index < 0 {
		return classification{err: errors.New(errors.PhaseClassify, errors.KindInvalidInput).
			GoType(typ.String()).
			Value(index).
			Detail("negative index %d", index).
			Build()}
	}

	name := "Get" + strconv.Itoa(index)
	if m, ok := typ.MethodByName(name); ok && m.Type.NumIn() == 1 && m.Type.NumOut() == 1 {
		return classification{strategy: StrategyMethod, method: name}
	}
	if hasIndexer(typ) {
		return classification{strategy: StrategyIndexed}
	}

	length := max(1, methodCount(typ))
	if v, ok := accessors.Load(typ); ok {
		acc := v.(accessor)
		if index < acc.n {
			return classification{strategy: StrategyFunc}
		}
		length = acc.n
	}

	if typ.Kind() == reflect.Array {
		if index < typ.Len() {
			return classification{strategy: StrategyArray}
		}
		length = typ.Len()
	}

	if index == 0 {
		return classification{strategy: StrategyIdentity}
	}

	return classification{err: errors.OutOfBounds(errors.PhaseClassify, []string{typ.String()}, index, length)}
}

// hasIndexer reports whether typ has At(int) E and Len() int methods.
func hasIndexer(typ reflect.Type) bool {
	at, ok := typ.MethodByName("At")
	if !ok || at.Type.NumIn() != 2 || at.Type.In(1).Kind() != reflect.Int || at.Type.NumOut() != 1 {
		return false
	}
	n, ok := typ.MethodByName("Len")
	return ok && n.Type.NumIn() == 1 && n.Type.NumOut() == 1 && n.Type.Out(0).Kind() == reflect.Int
}

// methodCount returns how many of Get0, Get1, ... typ has without a gap.
func methodCount(typ reflect.Type) int {
	n := 0
	for {
		if _, ok := typ.MethodByName("Get" + strconv.Itoa(n)); !ok {
			return n
		}
		n++
	}
}

// Get returns element index of v.
func Get(v any, index int) (any, error) {
	c := classify(reflect.TypeOf(v), index)
	if c.err != nil {
		return nil, c.err
	}

	switch c.strategy {
	case StrategyMethod:
		return reflect.ValueOf(v).MethodByName(c.method).Call(nil)[0].Interface(), nil
	case StrategyIndexed:
		return indexed(reflect.ValueOf(v), index)
	case StrategyFunc:
		acc, ok := accessors.Load(reflect.TypeOf(v))
		if !ok {
			return nil, errors.NotFound(errors.PhaseClassify, "accessor for", reflect.TypeOf(v))
		}
		return acc.(accessor).fn(v, index), nil
	case StrategyArray:
		return reflect.ValueOf(v).Index(index).Interface(), nil
	default:
		return v, nil
	}
}

func indexed(rv reflect.Value, index int) (any, error) {
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, errors.New(errors.PhaseClassify, errors.KindInvalidInput).
			GoType(rv.Type().String()).
			Detail("nil %s", rv.Type()).
			Build()
	}
	n := int(rv.MethodByName("Len").Call(nil)[0].Int())
	if index >= n {
		return nil, errors.New(errors.PhaseClassify, errors.KindOutOfBounds).
			Path(rv.Type().String()).
			Value(index).
			Detail("index %d out of bounds (length %d)", index, n).
			Build()
	}
	return rv.MethodByName("At").Call([]reflect.Value{reflect.ValueOf(index)})[0].Interface(), nil
}

// As is Get with the result asserted to E.
func As[E any](v any, index int) (E, error) {
	var zero E
	r, err := Get(v, index)
	if err != nil {
		return zero, err
	}
	e, ok := r.(E)
	if !ok {
		return zero, errors.New(errors.PhaseClassify, errors.KindInvalidInput).
			GoType(fmt.Sprintf("%T", r)).
			Detail("element %d is not a %s", index, reflect.TypeFor[E]()).
			Build()
	}
	return e, nil
}

// MustGet is Get that panics on error.
func MustGet(v any, index int) any {
	r, err := Get(v, index)
	if err != nil {
		panic(err)
	}
	return r
}
