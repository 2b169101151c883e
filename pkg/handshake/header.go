package handshake

import "github.com/retrolink/multiboot"

const headerCompletionCommand = 0x62

// headerStream streams the cartridge header two bytes at a time,
// validating every client slot's response against the expected remaining
// word count. There is no retry here: one mismatch aborts the attempt.
func (a *attempt) headerStream(payload []byte) error {
	for i := 0; i < cartridgeHeaderLen; i += 2 {
		tx := multiboot.NewWord(payload[i+1], payload[i])
		resp := a.exchange(tx)

		expected := byte((cartridgeHeaderLen - i) / 2)
		for j, w := range resp {
			if a.present[j] {
				if w.Command != expected || w.Data != multiboot.ClientIndex(j).Mask() {
					return multiboot.CodeHeaderMismatch
				}
				continue
			}
			if w != multiboot.AllOnes {
				return multiboot.CodeHeaderMismatch
			}
		}
	}

	a.exchange(multiboot.NewWord(headerCompletionCommand, 0x00))
	a.exchange(multiboot.NewWord(headerCompletionCommand, a.clientBit))
	return nil
}
