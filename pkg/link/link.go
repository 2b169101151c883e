// Package link narrows the multi-player serial exchange down to the one
// operation the handshake state machine needs: trade one sent word for
// three received words. Concrete backends register themselves by name
// the way pkg/can's bus implementations do, so the handshake can run
// unmodified against real hardware, a mapped register window, or a
// scripted test double.
package link

import (
	"fmt"

	"github.com/retrolink/multiboot"
)

// Link performs one atomic 4-console serial exchange: transmit one word
// from the host, collect the three client slots' response words. There is
// no error return — a wedged or absent link manifests as
// multiboot.AllOnes, which the handshake interprets, not the transport.
type Link interface {
	Exchange(tx multiboot.Word) [3]multiboot.Word
}

// ControlRegisters is the narrow capability link setup needs before any
// exchange happens: clear the reception-control register, write the
// master-multiplayer configuration, then read it back to check the SD and
// master-id bits. Not every conceivable Link need implement it (a purely
// software loopback might not), so the handshake type-asserts for it.
type ControlRegisters interface {
	WriteReceptionControl(v uint16)
	WriteSerialControl(v uint16)
	ReadSerialControl() uint16
}

// NewFunc constructs a Link backend for a given channel string (backend
// specific: a device path, a host:port, or empty for the sole real
// target).
type NewFunc func(channel string) (Link, error)

var registry = make(map[string]NewFunc)

// Register makes a backend available under name. Backends call this from
// an init() function, mirroring pkg/can.RegisterInterface.
func Register(name string, fn NewFunc) {
	registry[name] = fn
}

// New builds the named backend. Currently known names: "fake", "mmap",
// and "mmio" (the last only in binaries built for the real target).
func New(name, channel string) (Link, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("link: unknown backend %q", name)
	}
	return fn(channel)
}
