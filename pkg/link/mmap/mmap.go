// Package mmap is a host-side link.Link backend for bring-up against a
// peripheral window mapped into this process's address space — for
// example a debug build of an emulator that exposes its I/O registers via
// a shared memory file, or a development board whose SIO-equivalent
// registers are reachable through /dev/mem. It is a thin, testable stand-in
// for the production pkg/link/mmio backend: same register offsets, same
// polling algorithm, but reached through a mapped []byte instead of bare
// pointers, using golang.org/x/sys/unix for the mmap call.
package mmap

import (
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/retrolink/multiboot"
	"github.com/retrolink/multiboot/pkg/link"
)

// Register byte offsets within the mapped window, relative to its base
// address (the window is expected to start at 0x4000100, covering the
// multi-player I/O block used here).
const (
	windowBase = 0x4000100

	offReceptionControl = 0x4000134 - windowBase
	offSerialControl    = 0x4000128 - windowBase
	offSerialSend       = 0x400012A - windowBase
	offSerialRecv1      = 0x4000122 - windowBase
	offSerialRecv2      = 0x4000124 - windowBase
	offSerialRecv3      = 0x4000126 - windowBase

	windowSize = 0x40

	startBusyBit uint16 = 0x0080

	maxExchangeIterations = 4096
)

func init() {
	link.Register("mmap", New)
}

// Bus maps a peripheral window from a file (typically /dev/mem at a
// board-specific offset, supplied by the caller as channel in the form
// "path@offset") and drives it exactly as the real registers are driven.
type Bus struct {
	mem []byte
}

// New mmaps windowSize bytes from channel. channel has the form
// "/dev/mem@0x3f200000" (path@hex-offset).
func New(channel string) (link.Link, error) {
	path, offset, err := parseChannel(channel)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap: open %s: %w", path, err)
	}
	defer f.Close()

	mem, err := unix.Mmap(int(f.Fd()), offset, windowSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap: mmap %s@0x%x: %w", path, offset, err)
	}
	return &Bus{mem: mem}, nil
}

func parseChannel(channel string) (path string, offset int64, err error) {
	for i := len(channel) - 1; i >= 0; i-- {
		if channel[i] == '@' {
			path = channel[:i]
			_, err = fmt.Sscanf(channel[i+1:], "0x%x", &offset)
			return path, offset, err
		}
	}
	return "", 0, fmt.Errorf("mmap: channel %q must be path@0xOFFSET", channel)
}

func (b *Bus) read16(off int) uint16 {
	return binary.LittleEndian.Uint16(b.mem[off : off+2])
}

func (b *Bus) write16(off int, v uint16) {
	binary.LittleEndian.PutUint16(b.mem[off:off+2], v)
}

// WriteReceptionControl and WriteSerialControl mirror the mmio backend's
// out-of-band register access for the handshake's link-setup phase.
func (b *Bus) WriteReceptionControl(v uint16) { b.write16(offReceptionControl, v) }
func (b *Bus) WriteSerialControl(v uint16)    { b.write16(offSerialControl, v) }
func (b *Bus) ReadSerialControl() uint16      { return b.read16(offSerialControl) }

// Exchange implements link.Link against the mapped window, in the same
// textual order as the real backend.
func (b *Bus) Exchange(tx multiboot.Word) [3]multiboot.Word {
	b.write16(offSerialSend, tx.Uint16())
	b.write16(offSerialControl, b.read16(offSerialControl)|startBusyBit)
	for i := 0; i < maxExchangeIterations; i++ {
		if b.read16(offSerialControl)&startBusyBit == 0 {
			break
		}
	}
	return [3]multiboot.Word{
		multiboot.WordFromUint16(b.read16(offSerialRecv1)),
		multiboot.WordFromUint16(b.read16(offSerialRecv2)),
		multiboot.WordFromUint16(b.read16(offSerialRecv3)),
	}
}
