package multiboot

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

func TestWordRoundTrip(t *testing.T) {
	f := func(c, d byte) bool {
		w := NewWord(c, d)
		return WordFromUint16(w.Uint16()) == w
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestWordUint16Encoding(t *testing.T) {
	w := NewWord(0x62, 0xAA)
	assert.EqualValues(t, 0x62AA, w.Uint16())
}

func TestClientIndexMask(t *testing.T) {
	assert.EqualValues(t, 0x02, Client0.Mask())
	assert.EqualValues(t, 0x04, Client1.Mask())
	assert.EqualValues(t, 0x08, Client2.Mask())
}
