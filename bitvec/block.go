package bitvec

import (
	"math/bits"
	"unsafe"
)

// Block is the set of unsigned integer types usable as a storage word.
// All bitwise operators, the zero value and wrapping arithmetic come with
// the underlying type; width and popcount are provided by Bits and
// OnesCount.
type Block interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bits returns the width of the block type B in bits.
func Bits[B Block]() uint {
	var z B
	return uint(unsafe.Sizeof(z)) * 8
}

// OnesCount returns the number of set bits in w.
func OnesCount[B Block](w B) uint {
	return uint(bits.OnesCount64(uint64(w)))
}

// BlocksFor returns the number of blocks needed to store nbits bits.
//
// The remainder check avoids the overflow that the more obvious
// (nbits + Bits - 1) / Bits form would hit near the top of the uint range.
func BlocksFor[B Block](nbits uint) int {
	w := Bits[B]()
	if nbits%w == 0 {
		return int(nbits / w)
	}
	return int(nbits/w) + 1
}
