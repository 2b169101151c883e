package paramblock

import "unsafe"

// addrOf narrows the use of unsafe to this single line; the parameter
// block's address is handed to the firmware syscall by address.
func addrOf(b *byte) unsafe.Pointer {
	return unsafe.Pointer(b)
}
