package handshake

import "github.com/retrolink/multiboot"

const (
	paletteCommand       = 0x63
	paletteRetries       = 15
	paletteAcceptedCmd   = 0x73
	handshakeByteCommand = 0x64
	handshakeByteBase    = 0x11
)

// paletteNegotiate drives the bounded palette retry loop, then computes
// and sends the handshake byte derived from whatever each client
// returned.
func (a *attempt) paletteNegotiate(paletteData byte) error {
	var accepted [3]multiboot.Word
	found := false

	for try := 0; try < paletteRetries; try++ {
		resp := a.exchange(multiboot.NewWord(paletteCommand, paletteData))
		if !paletteAcceptable(resp) {
			a.h.logger.Debugf("palette attempt %d: unacceptable response %v, retrying", try, resp)
			continue
		}
		accepted = resp
		found = true
		break
	}

	if !found {
		return multiboot.CodeNoPaletteResponse
	}

	sum := handshakeByteBase
	for j, w := range accepted {
		a.block.SetClientData(j, w.Data)
		sum += int(w.Data)
	}
	handshakeData := byte(sum % 256)
	a.block.SetHandshakeData(handshakeData)

	a.exchange(multiboot.NewWord(handshakeByteCommand, handshakeData))
	return nil
}

func paletteAcceptable(resp [3]multiboot.Word) bool {
	for _, w := range resp {
		if w.Command != 0xFF && w.Command != paletteAcceptedCmd {
			return false
		}
	}
	return true
}
