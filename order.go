package denseset

import (
	"strconv"
	"strings"

	"github.com/hupe1980/denseset/internal/hash"
)

// Equal reports whether both sets have exactly the same members. Blocks
// are compared pairwise over the zero-padded matched streams, so operands
// of different lengths compare correctly.
func (s *BitSet[B]) Equal(other *BitSet[B]) bool {
	a, b := matchWords(s.vec, other.vec)
	for {
		wa, ok := a.next()
		if !ok {
			return true
		}
		wb, _ := b.next()
		if wa != wb {
			return false
		}
	}
}

// Compare orders two sets lexicographically by their ascending member
// sequences: the set whose first differing member is smaller compares
// lower, and a strict prefix compares lower than its extension. It returns
// -1, 0 or +1. Compare, Equal and Hash agree: Compare returns 0 exactly
// when Equal is true, and equal sets hash identically.
func (s *BitSet[B]) Compare(other *BitSet[B]) int {
	x, y := s.Iter(), other.Iter()
	for {
		vx, okx := x.Next()
		vy, oky := y.Next()
		switch {
		case !okx && !oky:
			return 0
		case !okx:
			return -1
		case !oky:
			return 1
		case vx < vy:
			return -1
		case vx > vy:
			return 1
		}
	}
}

// Hash returns an order-dependent digest of the members in ascending
// order. Sets that are Equal always hash to the same value.
func (s *BitSet[B]) Hash() uint64 {
	h := hash.Init()
	for it := s.Iter(); ; {
		v, ok := it.Next()
		if !ok {
			return h
		}
		h = hash.Mix(h, uint64(v))
	}
}

// String formats the set as "{1, 2, 4}" with members ascending.
func (s *BitSet[B]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for it := s.Iter(); ; {
		v, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
		first = false
	}
	sb.WriteByte('}')
	return sb.String()
}

// Clone returns a deep copy of the set.
func (s *BitSet[B]) Clone() *BitSet[B] {
	return &BitSet[B]{vec: s.vec.Clone()}
}
