package denseset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/denseset/util"
)

func TestBitSet_Equal(t *testing.T) {
	a := Of[uint64](3, 7)

	b := WithCapacity[uint64](1000)
	b.InsertMany(3, 7)

	assert.True(t, a.Equal(b), "storage length must not affect equality")
	assert.True(t, b.Equal(a))

	b.Insert(900)
	assert.False(t, a.Equal(b))
	assert.False(t, b.Equal(a))

	assert.True(t, New[uint64]().Equal(WithCapacity[uint64](512)))
}

func TestBitSet_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b *BitSet[uint64]
		want int
	}{
		{"equal", Of[uint64](1, 2), Of[uint64](1, 2), 0},
		{"empty vs empty", New[uint64](), New[uint64](), 0},
		{"empty vs any", New[uint64](), Of[uint64](0), -1},
		{"smaller first member", Of[uint64](0, 2), Of[uint64](1), -1},
		{"prefix is less", Of[uint64](1), Of[uint64](1, 2), -1},
		{"larger first member", Of[uint64](5), Of[uint64](3, 900), 1},
		{"capacity is irrelevant", Of[uint64](1, 2), WithCapacity[uint64](777), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}
}

// Equal sets must agree under Compare and produce identical hashes; a
// strict Compare ordering must show up at the first differing member of
// the ascending iterations.
func TestBitSet_OrderEqualHashConsistency(t *testing.T) {
	rng := util.NewRNG(99)

	sets := make([]*BitSet[uint64], 0, 16)
	for i := 0; i < 8; i++ {
		members := rng.GenerateMembers(30, 256)
		s := New[uint64]()
		s.InsertMany(members...)
		// Same members, different storage shape.
		twin := WithCapacity[uint64](2048)
		twin.InsertMany(members...)
		sets = append(sets, s, twin)
	}

	for _, a := range sets {
		for _, b := range sets {
			eq := a.Equal(b)
			cmp := a.Compare(b)

			assert.Equal(t, eq, cmp == 0, "Equal and Compare must agree")
			if eq {
				assert.Equal(t, a.Hash(), b.Hash(), "equal sets must hash equal")
			}

			if cmp != 0 {
				va, vb := firstDifference(a, b)
				if cmp < 0 {
					assert.Less(t, va, vb)
				} else {
					assert.Greater(t, va, vb)
				}
			}
		}
	}
}

// firstDifference walks both ascending iterations to the first point where
// they diverge. An exhausted side reads as -1: a strict prefix compares
// below its extension.
func firstDifference(a, b *BitSet[uint64]) (int64, int64) {
	x, y := a.Iter(), b.Iter()
	for {
		va, vb := int64(-1), int64(-1)
		if v, ok := x.Next(); ok {
			va = int64(v)
		}
		if v, ok := y.Next(); ok {
			vb = int64(v)
		}
		if va != vb || (va == -1 && vb == -1) {
			return va, vb
		}
	}
}

func TestBitSet_String(t *testing.T) {
	assert.Equal(t, "{}", New[uint64]().String())
	assert.Equal(t, "{7}", Of[uint64](7).String())
	assert.Equal(t, "{1, 2, 4}", Of[uint64](4, 1, 2).String())
}

func TestBitSet_Clone(t *testing.T) {
	a := Of[uint64](1, 2, 4)
	c := a.Clone()

	assert.True(t, a.Equal(c))

	c.Insert(8)
	assert.False(t, a.Equal(c), "clone must not share storage")
	assert.False(t, a.Contains(8))
}
