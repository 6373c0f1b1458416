// Package denseset provides a set of non-negative integers backed by a
// packed array of fixed-width unsigned blocks.
//
// Denseset targets dense integer sets whose members cluster in a bounded
// range: membership, insertion and removal are O(1) amortized, and the
// set-algebra operations (union, intersection, difference, symmetric
// difference) run block-wise at near-memory-bandwidth speed instead of
// bit-wise.
//
// # Quick Start
//
//	s := denseset.New[uint64]()
//	s.Insert(0)
//	s.Insert(3)
//	s.Insert(7)
//
//	s.Remove(7)
//
//	if !s.Contains(7) {
//		fmt.Println("there is no 7")
//	}
//
//	// Ascending iteration, allocation-free
//	for it := s.Iter(); ; {
//		v, ok := it.Next()
//		if !ok {
//			break
//		}
//		fmt.Println(v)
//	}
//
// # Set Algebra
//
// Each binary operation comes in two forms: an in-place mutator that
// rewrites the receiver's blocks directly, and a lazy iterator that yields
// the members of the result in ascending order without allocating a result
// set:
//
//	a.UnionWith(b)                 // a = a ∪ b, block-wise in place
//	for v := range a.Union(b).Values() {
//		// members of a ∪ b, ascending; a and b unchanged
//	}
//
// Operands of different lengths are handled by conceptually zero-padding
// the shorter one; no padded copy is ever materialized.
//
// # Block Width
//
// BitSet is generic over its block type (uint8 through uint64). The Set
// alias fixes the default 64-bit width:
//
//	s := denseset.New[uint64]() // equivalently: a denseset.Set
//	t := denseset.New[uint8]()  // byte-wide blocks
//
// # Concurrency
//
// A BitSet is not synchronized. Multiple goroutines may read a set
// concurrently as long as none mutates it; any mutation requires external
// serialization. Iterators borrow their source and must not outlive a
// mutation.
package denseset
