// Package fake is a scripted link.Link backend for testing: it records
// every word the handshake sends and returns pre-programmed response
// triples, entirely in-process.
package fake

import (
	"sync"

	"github.com/retrolink/multiboot"
	"github.com/retrolink/multiboot/pkg/link"
)

func init() {
	link.Register("fake", New)
}

// Bus is a scripted, in-process Link. Responses is consumed one entry per
// Exchange call; once exhausted, further calls return three
// multiboot.AllOnes words (matching a client-absent/wedged-link reading
// rather than panicking, since the real hardware never runs out of
// register reads either).
type Bus struct {
	mu sync.Mutex

	Responses []Responder

	// Sent records every word transmitted, in call order, for assertions.
	Sent []multiboot.Word

	// ReceptionControl and SerialControl record the last value written by
	// the handshake, for assertions.
	ReceptionControl uint16
	SerialControl    uint16

	// LinkStatus simulates the hardware-driven SD and master-id status
	// bits that a real serial-control read reflects regardless of what
	// was last written. Tests set this before Start to script link
	// setup's outcome; it defaults to "link present, this console is
	// parent" (SD set, master-id clear).
	LinkStatus uint16
}

// defaultLinkStatus is SD set (0x0008), master-id clear: a healthy,
// parent-role link.
const defaultLinkStatus uint16 = 0x0008

// Responder produces the three client responses for one Exchange call,
// given the word that was sent — letting tests react to what was sent
// (e.g. echoing the header byte back) rather than only replaying a fixed
// script.
type Responder func(tx multiboot.Word) [3]multiboot.Word

// New ignores channel; every fake bus is freshly scripted by its caller.
func New(channel string) (link.Link, error) {
	return &Bus{LinkStatus: defaultLinkStatus}, nil
}

// Script appends a fixed triple as the next response, regardless of what
// is sent.
func (b *Bus) Script(resp [3]multiboot.Word) {
	b.Responses = append(b.Responses, func(multiboot.Word) [3]multiboot.Word { return resp })
}

// ScriptFunc appends a Responder as the next response.
func (b *Bus) ScriptFunc(fn Responder) {
	b.Responses = append(b.Responses, fn)
}

// Exchange implements link.Link.
func (b *Bus) Exchange(tx multiboot.Word) [3]multiboot.Word {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.Sent = append(b.Sent, tx)
	if len(b.Responses) == 0 {
		return [3]multiboot.Word{multiboot.AllOnes, multiboot.AllOnes, multiboot.AllOnes}
	}
	next := b.Responses[0]
	b.Responses = b.Responses[1:]
	return next(tx)
}

// WriteReceptionControl implements link.ControlRegisters.
func (b *Bus) WriteReceptionControl(v uint16) { b.ReceptionControl = v }

// WriteSerialControl implements link.ControlRegisters, recording the
// configuration value the handshake wrote.
func (b *Bus) WriteSerialControl(v uint16) { b.SerialControl = v }

// ReadSerialControl implements link.ControlRegisters: the last written
// configuration combined with the simulated hardware status bits in
// LinkStatus, the way a real status register reflects both at once.
func (b *Bus) ReadSerialControl() uint16 { return b.SerialControl | b.LinkStatus }
