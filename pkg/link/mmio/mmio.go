// Package mmio is the production link.Link backend: it drives the five
// documented multi-player serial registers directly. It only builds into
// binaries targeting the real handheld console's memory map ("gba"); on
// any other target the registers below do not exist and dereferencing
// them would be meaningless, so the backend is excluded from the build
// entirely rather than guarded at runtime.
//
//go:build gba

package mmio

import (
	"github.com/retrolink/multiboot"
	"github.com/retrolink/multiboot/internal/reg"
	"github.com/retrolink/multiboot/pkg/link"
)

const (
	regReceptionControl uintptr = 0x4000134
	regSerialControl    uintptr = 0x4000128
	regSerialSend       uintptr = 0x400012A
	regSerialRecv0      uintptr = 0x4000120
	regSerialRecv1      uintptr = 0x4000122
	regSerialRecv2      uintptr = 0x4000124
	regSerialRecv3      uintptr = 0x4000126

	// startBusyBit is the serial-control "start transfer"/"busy" bit.
	startBusyBit uint16 = 0x0080

	maxExchangeIterations = 4096
)

func init() {
	link.Register("mmio", New)
}

// Bus is the real multi-player serial register backend.
type Bus struct{}

// New ignores channel; there is exactly one real multi-player link.
func New(channel string) (link.Link, error) {
	return &Bus{}, nil
}

// WriteReceptionControl, WriteSerialControl and ReadSerialControl let the
// handshake's link-setup phase
// read/write the two registers outside of an exchange, for direct
// register manipulation before any word is traded.
func (b *Bus) WriteReceptionControl(v uint16) { reg.Write16(regReceptionControl, v) }
func (b *Bus) WriteSerialControl(v uint16)    { reg.Write16(regSerialControl, v) }
func (b *Bus) ReadSerialControl() uint16      { return reg.Read16(regSerialControl) }

// Exchange implements link.Link: write the send word, set the start bit,
// spin-poll the busy bit, read the three receive registers in order.
// MMIO accesses happen in this exact textual order; reg.Read16/Write16
// guarantee each is a single, non-reorderable access of the stated width.
func (b *Bus) Exchange(tx multiboot.Word) [3]multiboot.Word {
	reg.Write16(regSerialSend, tx.Uint16())
	reg.Write16(regSerialControl, reg.Read16(regSerialControl)|startBusyBit)
	reg.WaitFor16Clear(regSerialControl, startBusyBit, maxExchangeIterations)

	return [3]multiboot.Word{
		multiboot.WordFromUint16(reg.Read16(regSerialRecv1)),
		multiboot.WordFromUint16(reg.Read16(regSerialRecv2)),
		multiboot.WordFromUint16(reg.Read16(regSerialRecv3)),
	}
}
