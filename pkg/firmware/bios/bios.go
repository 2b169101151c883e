// Package bios is the production firmware.Syscall backend: it places the
// parameter block's address and the transfer mode in the first two
// argument registers and issues software interrupt 0x25. Go has no
// inline-assembly equivalent to an `asm!("swi 0x25", ...)` call, so the
// interrupt itself is a tiny assembly trampoline (swi25, in swi_arm.s)
// and this file is only the Go-side calling convention around it. It
// only builds for the real target.
//
//go:build gba

package bios

import (
	"errors"

	"github.com/retrolink/multiboot/internal/paramblock"
	"github.com/retrolink/multiboot/pkg/firmware"
)

func init() {
	firmware.Register("bios", New)
}

// Bios is the real swi 0x25 backend.
type Bios struct{}

// New returns the real backend. There is only ever one.
func New() (firmware.Syscall, error) {
	return Bios{}, nil
}

// ErrSyscallFailed is returned when the firmware reports a non-zero
// result in its first argument register.
var ErrSyscallFailed = errors.New("firmware: multiboot syscall failed")

// Invoke issues the syscall. The assembly trampoline returns the
// firmware's raw result register value: zero is success, anything else
// is failure.
func (Bios) Invoke(block *paramblock.Block, mode firmware.TransferMode) error {
	if result := swi25(block.Addr(), uint32(mode)); result != 0 {
		return ErrSyscallFailed
	}
	return nil
}

// swi25 issues software interrupt 0x25 with paramsAddr in r0 and mode in
// r1, and returns r0's value afterwards. Implemented in swi_arm.s; must
// only be called from 16-bit ("thumb") instruction-set mode, which the
// build environment for this target guarantees.
//
//go:noescape
func swi25(paramsAddr uintptr, mode uint32) uint32
