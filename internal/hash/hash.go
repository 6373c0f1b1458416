// Package hash provides the order-dependent mixing function behind
// BitSet.Hash.
//
// The function is FNV-1a over little-endian 8-byte words, inlined so that
// hashing a set never allocates a hash.Hash64 per call. FNV constants are
// pre-computed; two equal member sequences always produce equal digests.
package hash

// FNV-1a 64-bit parameters.
const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// Init returns the starting digest.
func Init() uint64 {
	return offset64
}

// Mix folds the eight little-endian bytes of x into h and returns the
// updated digest.
func Mix(h, x uint64) uint64 {
	for i := 0; i < 8; i++ {
		h ^= x & 0xff
		h *= prime64
		x >>= 8
	}
	return h
}
