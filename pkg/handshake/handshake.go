// Package handshake drives the stateful sequence of exchanges that
// identifies connected clients, streams the cartridge header, agrees on
// palette/handshake bytes, and finally invokes the firmware syscall. It
// owns the protocol's retry counters, per-client "present" flags, and
// accumulators, split into one file per phase.
package handshake

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/retrolink/multiboot"
	"github.com/retrolink/multiboot/internal/paramblock"
	"github.com/retrolink/multiboot/pkg/firmware"
	"github.com/retrolink/multiboot/pkg/link"
)

const cartridgeHeaderLen = 0xC0

// Handshake drives one or repeated multiboot attempts against a fixed
// Link and Syscall backend pair.
type Handshake struct {
	link     link.Link
	ctrl     link.ControlRegisters
	firmware firmware.Syscall
	logger   *logrus.Entry

	// lastClientBit is the client-bit field accumulated by the most
	// recent Start call, for callers that want to report it (e.g. a
	// status monitor) without threading it through Start's return value.
	// Start does not run concurrently with itself, so no lock is needed.
	lastClientBit byte
}

// New builds a Handshake. l must additionally implement
// link.ControlRegisters, since link setup needs direct register access
// before any exchange happens; every backend in this repository does.
func New(l link.Link, fw firmware.Syscall, logger *logrus.Entry) (*Handshake, error) {
	ctrl, ok := l.(link.ControlRegisters)
	if !ok {
		return nil, fmt.Errorf("handshake: link backend %T does not implement link.ControlRegisters", l)
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Handshake{link: l, ctrl: ctrl, firmware: fw, logger: logger.WithField("component", "handshake")}, nil
}

// attempt holds the state accumulated over one Start call: per-client
// presence, the client-bit field, and the parameter block being filled
// in. It is allocated fresh for each call and discarded on return,
// matching the parameter block's documented create-mutate-read-once
// lifecycle.
type attempt struct {
	h *Handshake

	present   [3]bool
	clientBit byte
	block     *paramblock.Block
}

// Start drives payload through link setup, client discovery, header
// streaming, palette negotiation, and the handshake byte, then invokes
// the firmware syscall. It returns nil on success or a multiboot.Code on
// failure; no error is retried beyond the bounded loops in client
// discovery and palette negotiation.
func (h *Handshake) Start(payload []byte, paletteData byte) error {
	if err := validatePayload(payload); err != nil {
		h.lastClientBit = 0
		return err
	}

	a := &attempt{h: h, block: paramblock.New()}
	a.block.SetPaletteData(paletteData)
	defer func() { h.lastClientBit = a.clientBit }()

	if err := a.linkSetup(); err != nil {
		return err
	}
	if err := a.discovery(); err != nil {
		return err
	}
	if err := a.headerStream(payload); err != nil {
		return err
	}
	if err := a.paletteNegotiate(paletteData); err != nil {
		return err
	}
	if err := a.bootFirmware(payload); err != nil {
		return err
	}
	h.logger.Info("multiboot succeeded")
	return nil
}

// LastClientBit returns the client-bit field accumulated by the most
// recent Start call (zero if Start has never been called or failed
// before discovery completed).
func (h *Handshake) LastClientBit() byte {
	return h.lastClientBit
}

// validatePayload enforces the payload-size preconditions without
// touching hardware: length a multiple of 16, at least 0x100+0xC0 bytes,
// at most 0x3FFFF bytes.
func validatePayload(payload []byte) error {
	l := len(payload)
	if l%16 != 0 || l < 0x100+cartridgeHeaderLen || l > 0x3FFFF {
		return multiboot.CodeBadPayloadSize
	}
	return nil
}

// exchange is the one call site every phase uses to reach the link,
// logging the sent word at debug level. Logging is advisory only and
// never alters control flow.
func (a *attempt) exchange(tx multiboot.Word) [3]multiboot.Word {
	a.h.logger.Debugf("send command=0x%02x data=0x%02x", tx.Command, tx.Data)
	return a.h.link.Exchange(tx)
}
