package bitvec

import "iter"

// Vec is a BitVec over the default 64-bit block width.
type Vec = BitVec[uint64]

// BitVec is a growable bit vector: an ordered sequence of blocks plus a
// logical length in bits.
//
// Invariant: every bit at a position >= Len() within the allocated blocks
// is zero. All mutating methods preserve this; FromWords trusts the caller.
type BitVec[B Block] struct {
	words []B
	nbits uint
}

// New creates an empty bit vector of length 0.
func New[B Block]() *BitVec[B] {
	return &BitVec[B]{}
}

// WithCapacity creates an empty bit vector with room for nbits bits before
// the backing slice needs to reallocate.
func WithCapacity[B Block](nbits uint) *BitVec[B] {
	return &BitVec[B]{words: make([]B, 0, BlocksFor[B](nbits))}
}

// FromElem creates a bit vector of nbits bits, all set to value.
func FromElem[B Block](nbits uint, value bool) *BitVec[B] {
	v := &BitVec[B]{words: make([]B, BlocksFor[B](nbits)), nbits: nbits}
	if value {
		for i := range v.words {
			v.words[i] = ^B(0)
		}
		v.fixTail()
	}
	return v
}

// FromBytes creates a bit vector from a byte slice, most significant bit
// first within each byte: bit i of the vector is bit (7 - i%8) of byte i/8.
// The resulting length is len(data) * 8.
func FromBytes[B Block](data []byte) *BitVec[B] {
	v := FromElem[B](uint(len(data))*8, false)
	for i, b := range data {
		for j := uint(0); j < 8; j++ {
			if b&(0x80>>j) != 0 {
				v.Set(uint(i)*8+j, true)
			}
		}
	}
	return v
}

// FromWords wraps an existing block slice as a bit vector of nbits bits.
// The caller is responsible for keeping bits at positions >= nbits zero;
// FromWords does not mask them.
func FromWords[B Block](words []B, nbits uint) *BitVec[B] {
	return &BitVec[B]{words: words, nbits: nbits}
}

// Len returns the logical length in bits.
func (v *BitVec[B]) Len() uint {
	return v.nbits
}

// Cap returns the number of bits the vector can hold without reallocating.
func (v *BitVec[B]) Cap() uint {
	return uint(cap(v.words)) * Bits[B]()
}

// Get returns the bit at position i. It panics if i >= Len().
func (v *BitVec[B]) Get(i uint) bool {
	if i >= v.nbits {
		panic("bitvec: index out of range")
	}
	w := Bits[B]()
	return v.words[i/w]&(B(1)<<(i%w)) != 0
}

// Set writes the bit at position i. It panics if i >= Len().
func (v *BitVec[B]) Set(i uint, x bool) {
	if i >= v.nbits {
		panic("bitvec: index out of range")
	}
	w := Bits[B]()
	if x {
		v.words[i/w] |= B(1) << (i % w)
	} else {
		v.words[i/w] &^= B(1) << (i % w)
	}
}

// Grow extends the vector by n bits, all set to value.
func (v *BitVec[B]) Grow(n uint, value bool) {
	if n == 0 {
		return
	}
	newBits := v.nbits + n
	if value && v.nbits%Bits[B]() != 0 {
		// Fill the unused tail of the current last block; fixTail below
		// trims anything past the new length.
		v.words[v.nbits/Bits[B]()] |= ^B(0) << (v.nbits % Bits[B]())
	}
	var fill B
	if value {
		fill = ^B(0)
	}
	for len(v.words) < BlocksFor[B](newBits) {
		v.words = append(v.words, fill)
	}
	v.nbits = newBits
	v.fixTail()
}

// Reserve requests room for n additional bits beyond the current length.
// The backing slice may over-allocate to amortize future growth.
func (v *BitVec[B]) Reserve(n uint) {
	need := BlocksFor[B](v.nbits + n)
	if need > cap(v.words) {
		grown := make([]B, len(v.words), max(need, 2*cap(v.words)))
		copy(grown, v.words)
		v.words = grown
	}
}

// ReserveExact is like Reserve but requests exactly the required capacity,
// without growth slack. The allocator may still round up.
func (v *BitVec[B]) ReserveExact(n uint) {
	need := BlocksFor[B](v.nbits + n)
	if need > cap(v.words) {
		grown := make([]B, len(v.words), need)
		copy(grown, v.words)
		v.words = grown
	}
}

// Clear sets every bit to false. The length is unchanged.
func (v *BitVec[B]) Clear() {
	clear(v.words)
}

// None reports whether no bit is set.
func (v *BitVec[B]) None() bool {
	for _, w := range v.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of set bits.
func (v *BitVec[B]) Count() uint {
	var n uint
	for _, w := range v.words {
		n += OnesCount(w)
	}
	return n
}

// Words returns the backing block slice. Writes through it must not change
// the block count and must keep bits past Len() zero.
func (v *BitVec[B]) Words() []B {
	return v.words
}

// Blocks returns an iterator over the blocks in order.
func (v *BitVec[B]) Blocks() iter.Seq[B] {
	return func(yield func(B) bool) {
		for _, w := range v.words {
			if !yield(w) {
				return
			}
		}
	}
}

// Truncate drops blocks past nblocks. It does not adjust the logical
// length; callers pair it with SetLen and guarantee consistency.
func (v *BitVec[B]) Truncate(nblocks int) {
	if nblocks < len(v.words) {
		v.words = v.words[:nblocks]
	}
}

// SetLen overwrites the logical length in bits. The caller guarantees that
// the allocated blocks cover the new length and that bits past it are zero.
func (v *BitVec[B]) SetLen(nbits uint) {
	v.nbits = nbits
}

// Bytes returns the bits as a byte slice, most significant bit first within
// each byte, padded with zeros to a whole number of bytes. It is the
// round-trip partner of FromBytes.
func (v *BitVec[B]) Bytes() []byte {
	out := make([]byte, (v.nbits+7)/8)
	for i := uint(0); i < v.nbits; i++ {
		if v.Get(i) {
			out[i/8] |= 0x80 >> (i % 8)
		}
	}
	return out
}

// Clone returns a deep copy.
func (v *BitVec[B]) Clone() *BitVec[B] {
	words := make([]B, len(v.words))
	copy(words, v.words)
	return &BitVec[B]{words: words, nbits: v.nbits}
}

// Equal reports whether both vectors have the same length and bits.
func (v *BitVec[B]) Equal(other *BitVec[B]) bool {
	if v.nbits != other.nbits {
		return false
	}
	for i := 0; i < max(len(v.words), len(other.words)); i++ {
		var a, b B
		if i < len(v.words) {
			a = v.words[i]
		}
		if i < len(other.words) {
			b = other.words[i]
		}
		if a != b {
			return false
		}
	}
	return true
}

// fixTail zeroes the bits of the last block past the logical length.
func (v *BitVec[B]) fixTail() {
	if r := v.nbits % Bits[B](); r != 0 && len(v.words) > 0 {
		v.words[v.nbits/Bits[B]()] &= B(1)<<r - 1
	}
}
