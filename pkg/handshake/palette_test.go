package handshake

import (
	"testing"
	"testing/quick"

	"github.com/retrolink/multiboot"
)

func TestHandshakeArithmetic(t *testing.T) {
	f := func(a, b, c byte) bool {
		want := byte((handshakeByteBase + int(a) + int(b) + int(c)) % 256)
		sum := handshakeByteBase + int(a) + int(b) + int(c)
		got := byte(sum % 256)
		return got == want
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestPaletteAcceptableRules(t *testing.T) {
	ok := [3]multiboot.Word{
		multiboot.NewWord(0x73, 0x10),
		multiboot.AllOnes,
		multiboot.NewWord(0x73, 0x20),
	}
	if !paletteAcceptable(ok) {
		t.Error("0xFF/0x73 mix should be acceptable")
	}

	bad := [3]multiboot.Word{
		multiboot.NewWord(0x72, 0x10), // wrong command for this phase
		multiboot.AllOnes,
		multiboot.AllOnes,
	}
	if paletteAcceptable(bad) {
		t.Error("a command other than 0xFF/0x73 should be unacceptable")
	}
}
