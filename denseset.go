package denseset

import (
	"iter"

	"github.com/hupe1980/denseset/bitvec"
)

// Set is a BitSet over the default 64-bit block width.
type Set = BitSet[uint64]

// BitSet is a set of non-negative integers backed by a single bit vector.
// Bit i of the vector is 1 exactly when i is a member.
//
// BitSet maintains the invariant that no operation leaves a 1-bit at a
// position >= the vector's logical length, which is what makes block-wise
// comparison and algebra correct without masking on every access.
type BitSet[B bitvec.Block] struct {
	vec *bitvec.BitVec[B]
}

// New creates an empty set of length 0.
func New[B bitvec.Block]() *BitSet[B] {
	return &BitSet[B]{vec: bitvec.New[B]()}
}

// WithCapacity creates an empty set able to hold members below nbits
// without resizing.
func WithCapacity[B bitvec.Block](nbits uint) *BitSet[B] {
	return FromBitVec(bitvec.FromElem[B](nbits, false))
}

// FromBitVec wraps an existing bit vector verbatim: every set bit becomes
// a member. The vector's own trailing-bit invariant is trusted, not
// re-checked.
func FromBitVec[B bitvec.Block](v *bitvec.BitVec[B]) *BitSet[B] {
	return &BitSet[B]{vec: v}
}

// Of creates a set holding the given values.
func Of[B bitvec.Block](values ...uint) *BitSet[B] {
	s := New[B]()
	s.InsertMany(values...)
	return s
}

// Collect creates a set holding every value yielded by seq.
func Collect[B bitvec.Block](seq iter.Seq[uint]) *BitSet[B] {
	s := New[B]()
	s.Extend(seq)
	return s
}

// Capacity returns the number of bits the backing vector can address
// without reallocating. Inserting any value below it will not resize.
func (s *BitSet[B]) Capacity() uint {
	return s.vec.Cap()
}

// ReserveLen requests room for n total distinct elements: as long as all
// inserted values stay below n, no reallocation occurs. The backing vector
// may over-allocate to amortize growth.
func (s *BitSet[B]) ReserveLen(n uint) {
	if cur := s.vec.Len(); n >= cur {
		s.vec.Reserve(n - cur)
	}
}

// ReserveLenExact is like ReserveLen but without over-allocation slack.
// Prefer ReserveLen if further insertions are expected.
func (s *BitSet[B]) ReserveLenExact(n uint) {
	if cur := s.vec.Len(); n >= cur {
		s.vec.ReserveExact(n - cur)
	}
}

// BitVec returns the backing bit vector.
func (s *BitSet[B]) BitVec() *bitvec.BitVec[B] {
	return s.vec
}

// IntoBitVec returns the backing bit vector unchanged and detaches it from
// the set, which is left empty.
func (s *BitSet[B]) IntoBitVec() *bitvec.BitVec[B] {
	v := s.vec
	s.vec = bitvec.New[B]()
	return v
}

// ShrinkToFit drops trailing all-zero blocks from the backing vector, down
// to a minimum of one block. Membership is unchanged.
func (s *BitSet[B]) ShrinkToFit() {
	words := s.vec.Words()
	if len(words) == 0 {
		return
	}
	n := 0
	for n < len(words) && words[len(words)-1-n] == 0 {
		n++
	}
	trunc := max(len(words)-n, 1)
	s.vec.Truncate(trunc)
	s.vec.SetLen(uint(trunc) * bitvec.Bits[B]())
}

// Len returns the number of members. It is recomputed from block popcounts
// on every call, O(blocks).
func (s *BitSet[B]) Len() uint {
	return s.vec.Count()
}

// IsEmpty reports whether the set has no members.
func (s *BitSet[B]) IsEmpty() bool {
	return s.vec.None()
}

// Clear removes all members. Storage is retained, not deallocated.
func (s *BitSet[B]) Clear() {
	s.vec.Clear()
}

// Contains reports whether value is a member. Values beyond the logical
// length are absent, never an error.
func (s *BitSet[B]) Contains(value uint) bool {
	return value < s.vec.Len() && s.vec.Get(value)
}

// Insert adds value to the set, growing the backing vector if needed.
// It returns false if value was already present.
func (s *BitSet[B]) Insert(value uint) bool {
	if s.Contains(value) {
		return false
	}
	if cur := s.vec.Len(); value >= cur {
		s.vec.Grow(value-cur+1, false)
	}
	s.vec.Set(value, true)
	return true
}

// InsertMany adds every given value.
func (s *BitSet[B]) InsertMany(values ...uint) {
	for _, v := range values {
		s.Insert(v)
	}
}

// Extend adds every value yielded by seq.
func (s *BitSet[B]) Extend(seq iter.Seq[uint]) {
	for v := range seq {
		s.Insert(v)
	}
}

// Remove deletes value from the set. It returns false if value was absent.
// Storage never shrinks on removal; see ShrinkToFit.
func (s *BitSet[B]) Remove(value uint) bool {
	if !s.Contains(value) {
		return false
	}
	s.vec.Set(value, false)
	return true
}

// IsDisjoint reports whether the sets have no members in common. It stops
// at the first nonzero merged AND block.
func (s *BitSet[B]) IsDisjoint(other *BitSet[B]) bool {
	it := s.Intersection(other)
	_, ok := it.Next()
	return !ok
}

// IsSubset reports whether every member of s is a member of other.
func (s *BitSet[B]) IsSubset(other *BitSet[B]) bool {
	sw, ow := s.vec.Words(), other.vec.Words()

	// Over the overlapping block range, s AND other must equal s.
	for i := 0; i < min(len(sw), len(ow)); i++ {
		if sw[i]&ow[i] != sw[i] {
			return false
		}
	}
	// Any block of s past other's logical length must be entirely zero.
	for i := bitvec.BlocksFor[B](other.vec.Len()); i < len(sw); i++ {
		if sw[i] != 0 {
			return false
		}
	}
	return true
}

// IsSuperset reports whether every member of other is a member of s.
func (s *BitSet[B]) IsSuperset(other *BitSet[B]) bool {
	return other.IsSubset(s)
}
