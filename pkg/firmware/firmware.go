// Package firmware adapts the collected handshake parameters to the
// layout firmware expects and invokes its multiboot service. Backends
// register themselves by name, the same registry shape pkg/link uses, so
// the handshake's final phase is identical whether it is really issuing
// `swi 0x25` or exercising a fake for tests.
package firmware

import (
	"fmt"

	"github.com/retrolink/multiboot/internal/paramblock"
)

// TransferMode selects the firmware's multiboot transfer mode. All three
// values are carried even though the handshake only ever issues
// MultiPlay, matching the original enum in full.
type TransferMode uint8

const (
	Normal         TransferMode = 0
	MultiPlay      TransferMode = 1
	NormalUnstable TransferMode = 2
)

// Syscall invokes the firmware's multiboot service with a fully-populated
// parameter block. Implementations must be invoked only with the core in
// the instruction-set mode firmware expects for this service; ensuring
// that is the build environment's responsibility, not this interface's.
type Syscall interface {
	Invoke(block *paramblock.Block, mode TransferMode) error
}

// NewFunc constructs a Syscall backend.
type NewFunc func() (Syscall, error)

var registry = make(map[string]NewFunc)

// Register makes a backend available under name.
func Register(name string, fn NewFunc) {
	registry[name] = fn
}

// New builds the named backend. Currently known names: "fake" and "bios"
// (the latter only in binaries built for the real target).
func New(name string) (Syscall, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("firmware: unknown backend %q", name)
	}
	return fn()
}
