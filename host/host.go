package host

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/tetratelabs/wazero"
	"github.com/ywlang/ywlib"
	"github.com/ywlang/ywlib/errors"
	"github.com/ywlang/ywlib/resource"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// guestWASM is a module that exports a single memory named "memory" with a
// minimum of one page and no maximum.
var guestWASM = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	0x05, 0x03, 0x01, // memory section, 1 entry
	0x00, 0x01, // no max, min 1 page
	0x07, 0x0a, 0x01, // export section, 1 entry
	0x06, 'm', 'e', 'm', 'o', 'r', 'y',
	0x02, 0x00, // memory index 0
}

// Config holds configuration for host creation
type Config struct {
	// Logger overrides the package logger for this host.
	Logger *zap.Logger

	// MemoryLimitPages caps guest memory in pages (64KB each).
	// 0 means the wazero default (65536 pages = 4GB).
	MemoryLimitPages uint32
}

// Host owns a guest memory and the text buffers lowered into it.
type Host struct {
	runtime wazero.Runtime
	mem     *memory
	alloc   *bumpAllocator
	buffers *resource.Table[*Buffer]
	logger  *zap.Logger
	memMu   sync.RWMutex
	closed  atomic.Bool
}

// New creates a host with its own wazero runtime.
func New(ctx context.Context, cfg *Config) (*Host, error) {
	runtimeCfg := wazero.NewRuntimeConfig()
	log := Logger()
	if cfg != nil {
		if cfg.MemoryLimitPages > 0 {
			runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
		}
		if cfg.Logger != nil {
			log = cfg.Logger
		}
	}

	rt := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)
	compiled, err := rt.CompileModule(ctx, guestWASM)
	if err != nil {
		return nil, multierr.Append(
			errors.Wrap(errors.PhaseRuntime, errors.KindInvalidInput, err, "compile guest module"),
			rt.Close(ctx))
	}
	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName("guest"))
	if err != nil {
		return nil, multierr.Append(
			errors.Wrap(errors.PhaseRuntime, errors.KindAllocation, err, "instantiate guest module"),
			rt.Close(ctx))
	}

	mem := &memory{mem: mod.Memory()}
	h := &Host{
		runtime: rt,
		mem:     mem,
		alloc:   newBumpAllocator(mem),
		buffers: resource.NewTable[*Buffer](),
		logger:  log,
	}
	h.buffers.Subscribe(resource.ObserverFunc[*Buffer](h.logEvent))

	log.Debug("host created", zap.Uint32("memory_bytes", mem.Size()))
	return h, nil
}

var (
	defaultHost *Host
	defaultErr  error
	defaultOnce sync.Once
)

// Default returns the process-wide host, creating it on first use.
// It is never replaced or closed by this package.
func Default() (*Host, error) {
	defaultOnce.Do(func() {
		defaultHost, defaultErr = New(context.Background(), nil)
	})
	return defaultHost, defaultErr
}

// Memory exposes guest memory.
func (h *Host) Memory() ywlib.Memory {
	return h.mem
}

// Allocator exposes the guest heap allocator.
func (h *Host) Allocator() ywlib.Allocator {
	return h.alloc
}

// MemorySize returns the current guest memory size in bytes.
func (h *Host) MemorySize() uint32 {
	h.memMu.RLock()
	defer h.memMu.RUnlock()
	return h.mem.Size()
}

// Len returns the number of live buffers.
func (h *Host) Len() int {
	return h.buffers.Len()
}

// Subscribe registers an observer for buffer lifecycle events.
func (h *Host) Subscribe(o resource.Observer[*Buffer]) {
	h.buffers.Subscribe(o)
}

// Close drops every buffer and shuts down the runtime.
// Calling Close more than once is a no-op.
func (h *Host) Close(ctx context.Context) error {
	if !h.closed.CompareAndSwap(false, true) {
		return nil
	}
	n := h.buffers.Len()
	err := multierr.Append(h.buffers.Close(), h.runtime.Close(ctx))
	h.logger.Debug("host closed", zap.Int("buffers", n), zap.Error(err))
	return err
}

func (h *Host) logEvent(e resource.Event[*Buffer]) {
	if ce := h.logger.Check(zap.DebugLevel, "buffer "+e.Type.String()); ce != nil {
		ce.Write(
			zap.Uint32("handle", uint32(e.Handle)),
			zap.String("encoding", e.Value.Encoding.String()),
			zap.Uint32("ptr", e.Value.Ptr),
			zap.Uint32("units", e.Value.Units),
		)
	}
}
