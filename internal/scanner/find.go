// Package scanner holds the byte-level machinery shared by the dialect
// scanners: classification tables and the accelerated byte search.
package scanner

import (
	"encoding/binary"
	"math/bits"
	"unsafe"

	"github.com/biggeezerdevelopment/lexkit/internal/invariant"
)

const (
	lanes  = 0x0101010101010101
	high   = 0x8080808080808080
	gather = 0x0102040810204080
)

// HasSIMD returns true if the block-accelerated search is enabled for this CPU.
func HasSIMD() bool {
	return hasSIMD()
}

// IndexByte returns the index of the first c in b, or -1. Inputs shorter
// than one block, and CPUs without vector support, take the scalar loop.
func IndexByte(b []byte, c byte) int {
	if len(b) >= BlockSize && hasSIMD() {
		return IndexByteBlocks(b, c)
	}
	return IndexByteScalar(b, c)
}

// IndexByteScalar is the byte-at-a-time reference search.
func IndexByteScalar(b []byte, c byte) int {
	for i := 0; i < len(b); i++ {
		if b[i] == c {
			return i
		}
	}
	return -1
}

// IndexByteBlocks scans the unaligned prefix byte by byte, then compares
// whole aligned 32-byte blocks against a broadcast of c, then scans the
// suffix. It must return exactly what IndexByteScalar returns.
func IndexByteBlocks(b []byte, c byte) int {
	prefix, blocks, _ := partition(b)
	invariant.Invariant(blocks == 0 || IsAligned(unsafe.Pointer(&b[prefix]), BlockSize),
		"IndexByteBlocks: block run at %d is not %d-byte aligned", prefix, BlockSize)

	for i := 0; i < prefix; i++ {
		if b[i] == c {
			return i
		}
	}

	broadcast := uint64(c) * lanes
	end := prefix + blocks
	for i := prefix; i < end; i += BlockSize {
		if mask := blockMask(b[i:i+BlockSize], broadcast); mask != 0 {
			return i + bits.TrailingZeros32(mask)
		}
	}

	for i := end; i < len(b); i++ {
		if b[i] == c {
			return i
		}
	}
	return -1
}

// blockMask compares one 32-byte block against broadcast and returns a
// 32-bit mask with bit k set when byte k matched. Only the lowest set bit
// is exact: a borrow may mark a 0x01-distance byte above a real match, and
// callers consume the first bit only.
func blockMask(block []byte, broadcast uint64) uint32 {
	_ = block[BlockSize-1]
	m0 := laneMask(binary.LittleEndian.Uint64(block[0:8]) ^ broadcast)
	m1 := laneMask(binary.LittleEndian.Uint64(block[8:16]) ^ broadcast)
	m2 := laneMask(binary.LittleEndian.Uint64(block[16:24]) ^ broadcast)
	m3 := laneMask(binary.LittleEndian.Uint64(block[24:32]) ^ broadcast)
	return m0 | m1<<8 | m2<<16 | m3<<24
}

// laneMask flags the zero bytes of x and packs the flags into the low
// eight bits, one bit per byte, lowest address first.
func laneMask(x uint64) uint32 {
	z := (x - lanes) &^ x & high
	return uint32(((z >> 7) * gather) >> 56)
}
