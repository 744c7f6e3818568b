package host

import (
	"fmt"

	"github.com/tetratelabs/wazero/api"
	"github.com/ywlang/ywlib"
)

// wasmPageSize is the size of one WebAssembly memory page.
const wasmPageSize = 65536

var (
	_ ywlib.Memory      = (*memory)(nil)
	_ ywlib.MemorySizer = (*memory)(nil)
)

// memory adapts wazero api.Memory to ywlib.Memory.
type memory struct {
	mem api.Memory
}

func (m *memory) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, fmt.Errorf("memory read out of bounds: offset=%d, length=%d", offset, length)
	}
	return data, nil
}

func (m *memory) Write(offset uint32, data []byte) error {
	if !m.mem.Write(offset, data) {
		return fmt.Errorf("memory write out of bounds: offset=%d, length=%d", offset, len(data))
	}
	return nil
}

func (m *memory) ReadU16(offset uint32) (uint16, error) {
	v, ok := m.mem.ReadUint16Le(offset)
	if !ok {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	return v, nil
}

func (m *memory) ReadU32(offset uint32) (uint32, error) {
	v, ok := m.mem.ReadUint32Le(offset)
	if !ok {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	return v, nil
}

func (m *memory) WriteU16(offset uint32, value uint16) error {
	if !m.mem.WriteUint16Le(offset, value) {
		return fmt.Errorf("memory write out of bounds: offset=%d", offset)
	}
	return nil
}

func (m *memory) WriteU32(offset uint32, value uint32) error {
	if !m.mem.WriteUint32Le(offset, value) {
		return fmt.Errorf("memory write out of bounds: offset=%d", offset)
	}
	return nil
}

func (m *memory) Size() uint32 {
	return m.mem.Size()
}

// grow makes memory at least size bytes large.
func (m *memory) grow(size uint64) bool {
	cur := uint64(m.mem.Size())
	if size <= cur {
		return true
	}
	pages := (size - cur + wasmPageSize - 1) / wasmPageSize
	if pages > 65536 {
		return false
	}
	_, ok := m.mem.Grow(uint32(pages))
	return ok
}
