package handshake

import (
	"testing"

	"github.com/retrolink/multiboot"
)

func TestDiscoveryAcceptableSlotRules(t *testing.T) {
	absentEverywhere := [3]multiboot.Word{multiboot.AllOnes, multiboot.AllOnes, multiboot.AllOnes}
	if !discoveryAcceptable(absentEverywhere) {
		t.Error("all-absent response should be acceptable (but not terminating)")
	}

	mixed := [3]multiboot.Word{
		multiboot.NewWord(0x72, 0x02),
		multiboot.AllOnes,
		multiboot.AllOnes,
	}
	if !discoveryAcceptable(mixed) {
		t.Error("one present client with correct mask byte should be acceptable")
	}

	wrongMask := [3]multiboot.Word{
		multiboot.NewWord(0x72, 0x04), // slot 0 echoing slot 1's mask
		multiboot.AllOnes,
		multiboot.AllOnes,
	}
	if discoveryAcceptable(wrongMask) {
		t.Error("a present client echoing the wrong mask bit should be unacceptable")
	}
}

func TestDiscoveryAllAbsentDoesNotTerminate(t *testing.T) {
	absentEverywhere := [3]multiboot.Word{multiboot.AllOnes, multiboot.AllOnes, multiboot.AllOnes}
	if discoveryHasClient(absentEverywhere) {
		t.Error("an all-absent response must not be treated as having a client")
	}
}

func TestClientBitDiscipline(t *testing.T) {
	a := &attempt{}
	resp := [3]multiboot.Word{
		multiboot.NewWord(0x72, 0x02),
		multiboot.AllOnes,
		multiboot.NewWord(0x72, 0x08),
	}
	for j, w := range resp {
		if w.Command == clientPresentCommand {
			a.present[j] = true
			a.clientBit |= multiboot.ClientIndex(j).Mask()
		}
	}
	if a.clientBit != 0x0A {
		t.Errorf("client_bit = 0x%02x, want 0x0A", a.clientBit)
	}
	if !a.present[0] || a.present[1] || !a.present[2] {
		t.Errorf("present = %v, want [true false true]", a.present)
	}
}
