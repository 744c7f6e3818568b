// Package host lowers code-point strings into a WebAssembly guest's linear
// memory and lifts them back.
//
// A Host owns a wazero runtime with a single instantiated module that
// exports one memory. Lowered text is placed by a bump allocator and tracked
// in a resource table, so callers only hold handles:
//
//	h, err := host.New(ctx, nil)
//	if err != nil {
//	    return err
//	}
//	defer h.Close(ctx)
//
//	handle, err := h.Lower(ctx, text.FromString("A€😀"), host.EncodingUTF16)
//	buf, _ := h.Buffer(handle) // Ptr, Units, Encoding
//	s, err := h.Lift(handle)
//	err = h.Drop(handle)
//
// Default returns a process-wide Host created on first use.
package host
