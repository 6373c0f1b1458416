package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateMembers generates num random values in [0, bound) using the
// given RNG. Duplicates may occur.
func (r *RNG) GenerateMembers(num int, bound uint) []uint {
	members := make([]uint, num)
	for i := range members {
		members[i] = uint(r.rand.Int63n(int64(bound)))
	}

	return members
}

// GenerateDenseRun generates a contiguous run of length values starting at
// a random offset in [0, bound), the clustered workload dense sets target.
func (r *RNG) GenerateDenseRun(length int, bound uint) []uint {
	start := uint(r.rand.Int63n(int64(bound)))
	members := make([]uint, length)
	for i := range members {
		members[i] = start + uint(i)
	}

	return members
}

// Bool returns a random boolean with probability p of being true.
func (r *RNG) Bool(p float64) bool {
	return r.rand.Float64() < p
}
