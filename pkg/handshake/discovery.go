package handshake

import "github.com/retrolink/multiboot"

const (
	discoveryCommand      = 0x62
	discoveryRetries      = 15
	clientPresentCommand  = 0x72
	clientRegistrationCmd = 0x61
)

// discovery issues the priming send, then drives the bounded discovery
// retry loop, registering whichever clients answer.
func (a *attempt) discovery() error {
	a.exchange(multiboot.NewWord(discoveryCommand, 0x00))

	var accepted [3]multiboot.Word
	found := false

	for try := 0; try < discoveryRetries; try++ {
		resp := a.exchange(multiboot.NewWord(discoveryCommand, 0x00))

		if !discoveryAcceptable(resp) {
			a.h.logger.Debugf("discovery attempt %d: unacceptable response %v, retrying", try, resp)
			continue
		}

		// A wholly-acceptable response where every slot reported absent
		// does not terminate the loop; only a reply with at least one
		// client present does. This is a literal, intentional carryover:
		// it makes the client_bit==0 check below effectively dead code.
		if discoveryHasClient(resp) {
			accepted = resp
			found = true
			break
		}
	}

	if !found {
		return multiboot.CodeNoDiscoveryResp
	}

	for j, w := range accepted {
		if w.Command == clientPresentCommand {
			a.present[j] = true
			a.clientBit |= multiboot.ClientIndex(j).Mask()
			a.block.SetClientBit(multiboot.ClientIndex(j).Mask())
		}
	}
	if a.clientBit == 0 {
		return multiboot.CodeNoClients
	}

	a.exchange(multiboot.NewWord(clientRegistrationCmd, a.clientBit))
	return nil
}

// discoveryAcceptable reports whether every slot's response is a valid
// discovery reply: either absent (command 0xFF) or present with its own
// mask bit echoed back as the data byte.
func discoveryAcceptable(resp [3]multiboot.Word) bool {
	for j, w := range resp {
		if w.Command == 0xFF {
			continue
		}
		if w.Command == clientPresentCommand && w.Data == multiboot.ClientIndex(j).Mask() {
			continue
		}
		return false
	}
	return true
}

func discoveryHasClient(resp [3]multiboot.Word) bool {
	for _, w := range resp {
		if w.Command == clientPresentCommand {
			return true
		}
	}
	return false
}
