package handshake

import (
	"unsafe"

	"github.com/retrolink/multiboot"
	"github.com/retrolink/multiboot/pkg/firmware"
)

// bootFirmware records the payload's boot range — excluding the
// cartridge header already streamed in headerStream — and invokes the
// firmware syscall with the fully-populated parameter block.
func (a *attempt) bootFirmware(payload []byte) error {
	base := uintptr(unsafe.Pointer(&payload[0]))
	a.block.SetBootRange(base+cartridgeHeaderLen, base+uintptr(len(payload)))

	if err := a.h.firmware.Invoke(a.block, firmware.MultiPlay); err != nil {
		a.h.logger.Errorf("firmware syscall failed: %v", err)
		return multiboot.CodeSyscallFailed
	}
	return nil
}
