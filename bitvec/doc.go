// Package bitvec provides a growable sequence of fixed-width unsigned
// blocks with a logical length in bits.
//
// Architecture:
//   - Generic block width: any of uint8/uint16/uint32/uint64 via the Block
//     constraint; Vec is the 64-bit default
//   - Invariant: bits at positions >= Len() inside the last allocated block
//     are always zero, so block-wise algebra never reads garbage
//   - Raw access: Words exposes the backing slice for block-wise operations
//     that bypass the per-bit accessors
//
// Used by the denseset root package as the storage layer behind BitSet.
package bitvec
