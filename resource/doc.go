// Package resource maps opaque integer handles to owned Go values.
//
// A Table hands out a Handle for every inserted value and recovers the value
// from the handle later, typically inside a callback that only receives the
// handle. Handle 0 is never issued. Freed handles are reused.
//
//	table := resource.NewTable[*Buffer]()
//	h := table.Insert(buf)
//
//	buf, ok := table.Get(h)
//	buf, ok = table.Remove(h)
//
// # Borrows
//
// Borrow marks a value as in use; Remove refuses to drop it until every
// borrow is returned with Return.
//
// # Observers
//
// Observers are notified after a value is inserted or removed:
//
//	table.Subscribe(resource.ObserverFunc[*Buffer](func(e resource.Event[*Buffer]) {
//	    if e.Type == resource.EventDropped {
//	        log.Printf("buffer %d dropped", e.Handle)
//	    }
//	}))
//
// Values implementing Dropper have Drop called when they leave the table,
// including on Close.
package resource
