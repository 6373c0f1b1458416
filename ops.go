package denseset

import (
	"iter"

	"github.com/hupe1980/denseset/bitvec"
)

// blockCursor walks a block slice as if it were zero-padded to n blocks.
// Two cursors produced by matchWords always terminate together, which is
// what lets every binary operation skip per-access bounds checks.
type blockCursor[B bitvec.Block] struct {
	words  []B
	pos, n int
}

func (c *blockCursor[B]) next() (B, bool) {
	if c.pos >= c.n {
		return 0, false
	}
	var w B
	if c.pos < len(c.words) {
		w = c.words[c.pos]
	}
	c.pos++
	return w, true
}

// matchWords returns cursors over the blocks of a and b where the shorter
// side is conceptually padded with zero blocks up to the longer side's
// block count. No padded copy is materialized.
func matchWords[B bitvec.Block](a, b *bitvec.BitVec[B]) (blockCursor[B], blockCursor[B]) {
	n := max(len(a.Words()), len(b.Words()))
	return blockCursor[B]{words: a.Words(), n: n}, blockCursor[B]{words: b.Words(), n: n}
}

// otherOp combines other into s block-wise with f, writing through the
// backing slice directly. s is grown (zero-filled) to match a longer other
// unconditionally, even for ops where the grown region stays empty; growth
// never changes membership because zero is the padding value.
func (s *BitSet[B]) otherOp(other *BitSet[B], f func(B, B) B) {
	if s.vec.Len() < other.vec.Len() {
		s.vec.Grow(other.vec.Len()-s.vec.Len(), false)
	}

	// s now has at least as many blocks as other, so the padded stream
	// over other is exactly len(words) blocks long.
	words := s.vec.Words()
	_, ow := matchWords(s.vec, other.vec)
	for i := 0; i < len(words); i++ {
		w, _ := ow.next()
		words[i] = f(words[i], w)
	}
}

// UnionWith adds every member of other to s, in place.
func (s *BitSet[B]) UnionWith(other *BitSet[B]) {
	s.otherOp(other, func(w1, w2 B) B { return w1 | w2 })
}

// IntersectWith removes every member of s not in other, in place.
func (s *BitSet[B]) IntersectWith(other *BitSet[B]) {
	s.otherOp(other, func(w1, w2 B) B { return w1 & w2 })
}

// DifferenceWith removes every member of other from s, in place.
func (s *BitSet[B]) DifferenceWith(other *BitSet[B]) {
	s.otherOp(other, func(w1, w2 B) B { return w1 &^ w2 })
}

// SymmetricDifferenceWith leaves s holding the members in exactly one of
// the two sets, in place.
func (s *BitSet[B]) SymmetricDifferenceWith(other *BitSet[B]) {
	s.otherOp(other, func(w1, w2 B) B { return w1 ^ w2 })
}

// Iter returns an iterator over the members of s in ascending order.
func (s *BitSet[B]) Iter() Iterator[B] {
	words := s.vec.Words()
	return newIterator(blockCursor[B]{words: words, n: len(words)}, blockCursor[B]{}, nil)
}

// All returns a range-over-func view of the members in ascending order.
// Each range derives a fresh iterator, so All may be ranged repeatedly.
func (s *BitSet[B]) All() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for it := s.Iter(); ; {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Union returns a lazy iterator over the members of s ∪ other in ascending
// order. See UnionWith for the in-place form.
func (s *BitSet[B]) Union(other *BitSet[B]) UnionIterator[B] {
	a, b := matchWords(s.vec, other.vec)
	return newIterator(a, b, func(w1, w2 B) B { return w1 | w2 })
}

// Intersection returns a lazy iterator over the members of s ∩ other in
// ascending order. The merged walk is truncated to the shorter operand's
// blocks, since no bit past it can be in both sets. See IntersectWith for
// the in-place form.
func (s *BitSet[B]) Intersection(other *BitSet[B]) IntersectionIterator[B] {
	a, b := matchWords(s.vec, other.vec)
	limit := bitvec.BlocksFor[B](min(s.vec.Len(), other.vec.Len()))
	a.n, b.n = limit, limit
	return newIterator(a, b, func(w1, w2 B) B { return w1 & w2 })
}

// Difference returns a lazy iterator over the members of s \ other in
// ascending order. Difference is not commutative: s.Difference(other) and
// other.Difference(s) generally differ. See DifferenceWith for the
// in-place form.
func (s *BitSet[B]) Difference(other *BitSet[B]) DifferenceIterator[B] {
	a, b := matchWords(s.vec, other.vec)
	return newIterator(a, b, func(w1, w2 B) B { return w1 &^ w2 })
}

// SymmetricDifference returns a lazy iterator over the members in exactly
// one of the two sets, in ascending order. See SymmetricDifferenceWith for
// the in-place form.
func (s *BitSet[B]) SymmetricDifference(other *BitSet[B]) SymmetricDifferenceIterator[B] {
	a, b := matchWords(s.vec, other.vec)
	return newIterator(a, b, func(w1, w2 B) B { return w1 ^ w2 })
}
