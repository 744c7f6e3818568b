package host

import (
	"math"
	"sync"

	"github.com/ywlang/ywlib"
	"github.com/ywlang/ywlib/errors"
)

// heapBase is the first address handed out. Address 0 stays unused so a
// zero pointer never names a live buffer.
const heapBase = 16

var _ ywlib.Allocator = (*bumpAllocator)(nil)

// bumpAllocator places regions one after another and grows memory by whole
// pages. Free only reclaims the most recent region. Everything below next is
// owned by a heap region or a reserved one.
type bumpAllocator struct {
	mem  *memory
	next uint32
	mu   sync.Mutex
}

func newBumpAllocator(mem *memory) *bumpAllocator {
	return &bumpAllocator{mem: mem, next: heapBase}
}

func (a *bumpAllocator) Alloc(size, align uint32) (uint32, error) {
	if align == 0 || align&(align-1) != 0 {
		return 0, errors.InvalidInput(errors.PhaseLower, "alignment must be a power of two")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	ptr := alignUp(uint64(a.next), align)
	end := ptr + uint64(size)
	if end > math.MaxUint32 || !a.mem.grow(end) {
		return 0, errors.AllocationFailed(errors.PhaseLower, size, align)
	}
	a.next = uint32(end)
	return uint32(ptr), nil
}

func (a *bumpAllocator) Free(ptr, size, _ uint32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if uint64(ptr)+uint64(size) == uint64(a.next) && ptr >= heapBase {
		a.next = ptr
	}
}

// reserve claims [ptr, ptr+size) for a caller-placed region. The region must
// start at or above the heap top; the heap continues after it.
func (a *bumpAllocator) reserve(ptr, size uint32) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if ptr < a.next {
		return errors.New(errors.PhaseLower, errors.KindInvalidInput).
			Value(ptr).
			Detail("offset %#x overlaps heap below %#x", ptr, a.next).
			Build()
	}
	a.next = ptr + size
	return nil
}

// used returns the high-water mark of the heap.
func (a *bumpAllocator) used() uint32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.next
}

func alignUp(v uint64, align uint32) uint64 {
	a := uint64(align)
	return (v + a - 1) &^ (a - 1)
}
