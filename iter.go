package denseset

import (
	"iter"

	"github.com/hupe1980/denseset/bitvec"
)

// Iterator yields set bit positions in strictly ascending order. It drains
// one block at a time by repeatedly isolating the lowest set bit, pulling
// the next block from its stream only when the current one is exhausted:
// O(1) amortized per member plus O(1) per skipped all-zero block, with no
// allocation.
//
// An Iterator is single-pass and borrows the set(s) it was derived from;
// the sources must not be mutated while it is live. To restart, derive a
// fresh iterator.
type Iterator[B bitvec.Block] struct {
	head       B
	headOffset uint
	a, b       blockCursor[B]
	merge      func(B, B) B // nil when iterating a single stream
}

// The four set-algebra operations all yield the same iterator shape: a
// zero-padded two-stream merge feeding the bit-isolation loop. Only the
// combining function differs.
type (
	UnionIterator[B bitvec.Block]               = Iterator[B]
	IntersectionIterator[B bitvec.Block]        = Iterator[B]
	DifferenceIterator[B bitvec.Block]          = Iterator[B]
	SymmetricDifferenceIterator[B bitvec.Block] = Iterator[B]
)

func newIterator[B bitvec.Block](a, b blockCursor[B], merge func(B, B) B) Iterator[B] {
	it := Iterator[B]{a: a, b: b, merge: merge}
	if w, ok := it.pull(); ok {
		it.head = w
	}
	return it
}

// pull produces the next block of the underlying stream: the next block of
// a single set, or the merge of the next block from each matched stream.
func (it *Iterator[B]) pull() (B, bool) {
	if it.merge == nil {
		return it.a.next()
	}
	wa, aok := it.a.next()
	wb, bok := it.b.next()
	if !aok && !bok {
		return 0, false
	}
	// Matched cursors exhaust together; a lone miss reads as a zero block.
	return it.merge(wa, wb), true
}

// Next returns the next member position. The second result is false once
// the iterator is exhausted, and stays false.
func (it *Iterator[B]) Next() (uint, bool) {
	for it.head == 0 {
		w, ok := it.pull()
		if !ok {
			return 0, false
		}
		it.head = w
		it.headOffset += bitvec.Bits[B]()
	}

	// Isolate the lowest set bit and subtract one, producing a mask with
	// as many set bits as the index of that bit within the block.
	k := it.head&-it.head - 1
	// Drop the lowest set bit from the head.
	it.head &= it.head - 1
	return it.headOffset + bitvec.OnesCount(k), true
}

// Values returns a single-use range-over-func adapter. It consumes a copy
// of the iterator: breaking out of a range and ranging the same Seq again
// resumes where the first range stopped.
func (it Iterator[B]) Values() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for {
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

// Collect drains a copy of the iterator into a slice. Mostly useful in
// tests.
func (it Iterator[B]) Collect() []uint {
	var out []uint
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
