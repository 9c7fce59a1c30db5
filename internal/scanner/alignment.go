package scanner

import (
	"unsafe"
)

// IsAligned checks if a pointer is aligned to the specified boundary.
func IsAligned(ptr unsafe.Pointer, alignment int) bool {
	addr := uintptr(ptr)
	return addr&uintptr(alignment-1) == 0
}

// alignedPrefix returns how many leading bytes of b precede the first
// BlockSize-aligned address, capped at len(b).
func alignedPrefix(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(&b[0]))
	n := int((BlockSize - addr&(BlockSize-1)) & (BlockSize - 1))
	if n > len(b) {
		return len(b)
	}
	return n
}

// partition splits b into an unaligned prefix length, the length of the
// run of whole aligned blocks after it, and the suffix length.
func partition(b []byte) (prefix, blocks, suffix int) {
	prefix = alignedPrefix(b)
	rest := len(b) - prefix
	blocks = rest &^ (BlockSize - 1)
	suffix = rest - blocks
	return prefix, blocks, suffix
}
