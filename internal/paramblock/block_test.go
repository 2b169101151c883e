package paramblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	b := New()
	assert.EqualValues(t, 0xFF, b.ClientData(0))
	assert.EqualValues(t, 0xFF, b.ClientData(1))
	assert.EqualValues(t, 0xFF, b.ClientData(2))
	assert.EqualValues(t, 0x81, b.raw[offPaletteData])
	assert.Zero(t, b.ClientBit())
}

func TestSetClientBitOrs(t *testing.T) {
	b := New()
	b.SetClientBit(0x02)
	b.SetClientBit(0x08)
	assert.EqualValues(t, 0x0A, b.ClientBit())
}

func TestLayoutOffsets(t *testing.T) {
	b := New()
	b.SetPaletteData(0x93)
	b.SetHandshakeData(0xB3)
	b.SetClientBit(0x0E)
	raw := b.Bytes()
	assert.Len(t, raw, Size)
	assert.EqualValues(t, 0xB3, raw[0x14])
	assert.EqualValues(t, 0x93, raw[0x1C])
	assert.EqualValues(t, 0x0E, raw[0x1E])
}

func TestSetBootRange(t *testing.T) {
	b := New()
	b.SetBootRange(0x02000000+0xC0, 0x02000000+0x1000)
	raw := b.Bytes()
	srcp := uint32(raw[0x20]) | uint32(raw[0x21])<<8 | uint32(raw[0x22])<<16 | uint32(raw[0x23])<<24
	endp := uint32(raw[0x24]) | uint32(raw[0x25])<<8 | uint32(raw[0x26])<<16 | uint32(raw[0x27])<<24
	assert.EqualValues(t, 0x020000C0, srcp)
	assert.EqualValues(t, 0x02001000, endp)
}
