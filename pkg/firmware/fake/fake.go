// Package fake is a substitutable firmware.Syscall backend: it records
// the block and mode it was invoked with and returns a configured error,
// without touching any hardware.
package fake

import (
	"github.com/retrolink/multiboot/internal/paramblock"
	"github.com/retrolink/multiboot/pkg/firmware"
)

func init() {
	firmware.Register("fake", New)
}

// Syscall is a scripted firmware.Syscall.
type Syscall struct {
	// Err is returned by Invoke; leave nil to simulate success.
	Err error

	// Calls records every invocation, most recent last.
	Calls []Call
}

// Call captures one Invoke's arguments for later assertions.
type Call struct {
	Block *paramblock.Block
	Mode  firmware.TransferMode
}

// New returns a fake that succeeds until configured otherwise.
func New() (firmware.Syscall, error) {
	return &Syscall{}, nil
}

// Invoke implements firmware.Syscall.
func (s *Syscall) Invoke(block *paramblock.Block, mode firmware.TransferMode) error {
	s.Calls = append(s.Calls, Call{Block: block, Mode: mode})
	return s.Err
}
