package multiboot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeBitExactValues(t *testing.T) {
	assert.EqualValues(t, 0b0_00111_00111_00111, CodeBadPayloadSize)
	assert.EqualValues(t, 0b0_00000_00000_11111, CodeBadConnection)
	assert.EqualValues(t, 0b0_11111_00000_00111, CodeNotParent)
	assert.EqualValues(t, 0b0_00111_00000_11111, CodeNoDiscoveryResp)
	assert.EqualValues(t, 0b0_00000_00111_00111, CodeNoClients)
	assert.EqualValues(t, 0b0_00000_11111_11111, CodeHeaderMismatch)
	assert.EqualValues(t, 0b0_01111_01111_11111, CodeNoPaletteResponse)
	assert.EqualValues(t, 0b0_11111_11111_11111, CodeSyscallFailed)
}

func TestCodeErrorUnknown(t *testing.T) {
	assert.Equal(t, "unknown multiboot error code", Code(0x7777).Error())
}

func TestCodeErrorDescribesKnownCodes(t *testing.T) {
	assert.NotEqual(t, "unknown multiboot error code", CodeBadConnection.Error())
}
