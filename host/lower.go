package host

import (
	"context"
	"encoding/binary"
	stderrors "errors"

	"github.com/ywlang/ywlib"
	"github.com/ywlang/ywlib/errors"
	"github.com/ywlang/ywlib/nullable"
	"github.com/ywlang/ywlib/resource"
	"github.com/ywlang/ywlib/text"
)

// Buffer describes text lowered into guest memory.
type Buffer struct {
	release  func()
	Ptr      uint32
	Units    uint32
	Cap      uint32
	Encoding Encoding
}

// Bytes returns the size of the written units in bytes.
func (b *Buffer) Bytes() uint32 {
	size, _ := b.Encoding.Layout()
	return b.Units * size
}

// Drop returns heap space to the allocator when possible.
func (b *Buffer) Drop() {
	if b.release != nil {
		b.release()
	}
}

// LowerOptions adjusts placement of a lowered buffer. A null field keeps the
// default.
type LowerOptions struct {
	// Offset places the buffer at an explicit guest address instead of the
	// heap. It must be aligned for the encoding and must not start below the
	// heap top. The whole buffer must fit in current memory. Later heap
	// allocations are placed after it.
	Offset nullable.Nullable[uint32]

	// Capacity reserves room for at least this many units.
	Capacity nullable.Nullable[uint32]
}

// Lower transcodes s and writes it into guest memory.
func (h *Host) Lower(ctx context.Context, s text.String, enc Encoding) (resource.Handle, error) {
	return h.LowerWith(ctx, s, enc, LowerOptions{})
}

// LowerWith is Lower with placement options.
func (h *Host) LowerWith(ctx context.Context, s text.String, enc Encoding, opts LowerOptions) (resource.Handle, error) {
	if h.closed.Load() {
		return 0, errors.Closed(errors.PhaseLower, "host")
	}
	if !enc.valid() {
		return 0, errors.Unsupported(errors.PhaseLower, "encoding "+enc.String())
	}
	if err := ctx.Err(); err != nil {
		return 0, errors.Wrap(errors.PhaseLower, errors.KindInvalidInput, err, "context done")
	}

	data := encode(s, enc)
	size, align := enc.Layout()
	units := uint32(len(data)) / size
	capUnits := max(units, opts.Capacity.Or(0))
	total := uint64(capUnits) * uint64(size)
	if total > uint64(^uint32(0)) {
		return 0, errors.AllocationFailed(errors.PhaseLower, ^uint32(0), align)
	}

	buf := &Buffer{Units: units, Cap: capUnits, Encoding: enc}

	h.memMu.Lock()
	if off, ok := opts.Offset.GetOk(); ok {
		if off%align != 0 {
			h.memMu.Unlock()
			return 0, errors.New(errors.PhaseLower, errors.KindInvalidInput).
				Encoding(enc.String()).
				Value(off).
				Detail("offset %#x is not %d-byte aligned", off, align).
				Build()
		}
		if uint64(off)+total > uint64(h.mem.Size()) {
			h.memMu.Unlock()
			return 0, errors.OutOfBounds(errors.PhaseLower, []string{"offset"}, int(off), int(h.mem.Size()))
		}
		if err := h.alloc.reserve(off, uint32(total)); err != nil {
			h.memMu.Unlock()
			return 0, err
		}
		buf.Ptr = off
	} else {
		ptr, err := h.alloc.Alloc(uint32(total), align)
		if err != nil {
			h.memMu.Unlock()
			return 0, err
		}
		buf.Ptr = ptr
		alloc := h.alloc
		buf.release = func() { alloc.Free(ptr, uint32(total), align) }
	}
	err := h.mem.Write(buf.Ptr, data)
	h.memMu.Unlock()
	if err != nil {
		buf.Drop()
		return 0, errors.New(errors.PhaseLower, errors.KindOutOfBounds).
			Encoding(enc.String()).
			Cause(err).
			Detail("write %d units at %#x", units, buf.Ptr).
			Build()
	}

	handle := h.buffers.Insert(buf)
	if handle == 0 {
		buf.Drop()
		return 0, errors.Closed(errors.PhaseLower, "host")
	}
	return handle, nil
}

// Lift reads a lowered buffer back as code points.
func (h *Host) Lift(handle resource.Handle) (text.String, error) {
	buf, ok := h.buffers.Borrow(handle)
	if !ok {
		if h.closed.Load() {
			return nil, errors.Closed(errors.PhaseLift, "host")
		}
		return nil, errors.NotFound(errors.PhaseLift, "buffer", handle)
	}
	defer h.buffers.Return(handle)

	h.memMu.RLock()
	defer h.memMu.RUnlock()
	s, err := load(h.mem, buf.Ptr, buf.Units, buf.Encoding)
	if err != nil {
		return nil, errors.New(errors.PhaseLift, errors.KindOutOfBounds).
			Encoding(buf.Encoding.String()).
			Cause(err).
			Detail("read %d units at %#x", buf.Units, buf.Ptr).
			Build()
	}
	return s, nil
}

// Buffer returns the buffer registered under handle.
func (h *Host) Buffer(handle resource.Handle) (*Buffer, bool) {
	return h.buffers.Get(handle)
}

// Drop releases a lowered buffer.
func (h *Host) Drop(handle resource.Handle) error {
	_, err := h.buffers.Remove(handle)
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, resource.ErrClosed):
		return errors.Closed(errors.PhaseRuntime, "host")
	case stderrors.Is(err, resource.ErrInvalidHandle):
		return errors.NotFound(errors.PhaseRuntime, "buffer", handle)
	default:
		return errors.Wrap(errors.PhaseRuntime, errors.KindInvalidInput, err, "drop buffer")
	}
}

// encode returns the little-endian bytes of s in enc.
func encode(s text.String, enc Encoding) []byte {
	switch enc {
	case EncodingUTF8:
		return text.EncodeUTF8(s)
	case EncodingUTF16:
		out := make([]byte, 0, 2*text.UTF16Len(s))
		for _, u := range text.EncodeUTF16(s) {
			out = binary.LittleEndian.AppendUint16(out, u)
		}
		return out
	default:
		out := make([]byte, 0, 4*len(s))
		for _, r := range s {
			out = binary.LittleEndian.AppendUint32(out, uint32(r))
		}
		return out
	}
}

// load decodes units code units of enc stored at ptr.
func load(mem ywlib.Memory, ptr, units uint32, enc Encoding) (text.String, error) {
	size, _ := enc.Layout()
	data, err := mem.Read(ptr, units*size)
	if err != nil {
		return nil, err
	}
	switch enc {
	case EncodingUTF8:
		return text.DecodeUTF8(data), nil
	case EncodingUTF16:
		u := make([]uint16, units)
		for i := range u {
			u[i] = binary.LittleEndian.Uint16(data[2*i:])
		}
		return text.DecodeUTF16(u), nil
	default:
		s := make(text.String, units)
		for i := range s {
			s[i] = rune(binary.LittleEndian.Uint32(data[4*i:]))
		}
		return s, nil
	}
}
