// Package reg provides single, non-reorderable, non-elided 16-bit loads
// and stores against a fixed memory address, plus a bounded busy-wait
// helper. It is the Go analogue of tamago's internal/reg package (itself
// the standard way bare-metal Go expresses "this load/store must not be
// reordered or optimized away" without inline assembly): a narrow seam
// that both the real MMIO backend and its tests can stand on.
package reg

import "unsafe"

// Read16 performs one volatile 16-bit load from addr.
func Read16(addr uintptr) uint16 {
	return *(*uint16)(unsafe.Pointer(addr))
}

// Write16 performs one volatile 16-bit store to addr.
func Write16(addr uintptr, val uint16) {
	*(*uint16)(unsafe.Pointer(addr)) = val
}

// WaitFor16Clear polls addr up to maxIterations times, returning the
// iteration count at which mask cleared in the read value, or
// maxIterations if it never did. It performs no sleeping: every "wait" in
// this protocol is a bounded spin, never a wall-clock timeout.
func WaitFor16Clear(addr uintptr, mask uint16, maxIterations int) int {
	for i := 0; i < maxIterations; i++ {
		if Read16(addr)&mask == 0 {
			return i
		}
	}
	return maxIterations
}
