package resource

import (
	"sync"
)

// Table stores values of type T under handles.
type Table[T any] struct {
	entries   []entry[T]
	freeList  []Handle
	observers []Observer[T]
	mu        sync.RWMutex
	obsMu     sync.RWMutex
	closed    bool
}

type entry[T any] struct {
	value       T
	borrowCount uint32
	valid       bool
}

// NewTable creates an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{
		entries:  make([]entry[T], 0, 16),
		freeList: make([]Handle, 0, 4),
	}
}

// Insert adds a value and returns its handle.
// It returns 0 once the table is closed.
func (t *Table[T]) Insert(value T) Handle {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0
	}

	e := entry[T]{value: value, valid: true}
	var handle Handle
	if n := len(t.freeList); n > 0 {
		handle = t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.entries[handle-1] = e
	} else {
		t.entries = append(t.entries, e)
		handle = Handle(len(t.entries))
	}
	t.mu.Unlock()

	t.notify(Event[T]{Type: EventCreated, Handle: handle, Value: value})
	return handle
}

// lookup returns the live entry for handle. Callers hold t.mu.
func (t *Table[T]) lookup(handle Handle) *entry[T] {
	if handle == 0 || int(handle) > len(t.entries) {
		return nil
	}
	e := &t.entries[handle-1]
	if !e.valid {
		return nil
	}
	return e
}

// Get retrieves a value by handle.
func (t *Table[T]) Get(handle Handle) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if e := t.lookup(handle); e != nil {
		return e.value, true
	}
	var zero T
	return zero, false
}

// Borrow marks the value behind handle as in use and returns it.
func (t *Table[T]) Borrow(handle Handle) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if e := t.lookup(handle); e != nil {
		e.borrowCount++
		return e.value, true
	}
	var zero T
	return zero, false
}

// Return ends one borrow of handle.
func (t *Table[T]) Return(handle Handle) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := t.lookup(handle)
	if e == nil || e.borrowCount == 0 {
		return false
	}
	e.borrowCount--
	return true
}

// Remove drops a value and returns it.
func (t *Table[T]) Remove(handle Handle) (T, error) {
	var zero T

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return zero, ErrClosed
	}
	e := t.lookup(handle)
	if e == nil {
		t.mu.Unlock()
		return zero, ErrInvalidHandle
	}
	if e.borrowCount > 0 {
		t.mu.Unlock()
		return zero, ErrOutstandingBorrow
	}
	value := e.value
	*e = entry[T]{}
	t.freeList = append(t.freeList, handle)
	t.mu.Unlock()

	if d, ok := any(value).(Dropper); ok {
		d.Drop()
	}
	t.notify(Event[T]{Type: EventDropped, Handle: handle, Value: value})
	return value, nil
}

// Len returns the number of live values.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries) - len(t.freeList)
}

// Each calls fn for every live value until fn returns false.
// fn must not modify the table.
func (t *Table[T]) Each(fn func(Handle, T) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, e := range t.entries {
		if e.valid && !fn(Handle(i+1), e.value) {
			return
		}
	}
}

// Subscribe adds an observer for lifecycle events.
func (t *Table[T]) Subscribe(o Observer[T]) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Close drops every value and stops accepting inserts.
// Dropped events are not sent for values released by Close.
func (t *Table[T]) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	entries := t.entries
	t.entries = nil
	t.freeList = nil
	t.mu.Unlock()

	for _, e := range entries {
		if !e.valid {
			continue
		}
		if d, ok := any(e.value).(Dropper); ok {
			d.Drop()
		}
	}
	return nil
}

func (t *Table[T]) notify(e Event[T]) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnResourceEvent(e)
	}
}
