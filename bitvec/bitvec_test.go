package bitvec

import (
	"bytes"
	"testing"
)

func TestBitVec(t *testing.T) {
	v := FromElem[uint64](100, false)

	if v.Len() != 100 {
		t.Errorf("expected len 100, got %d", v.Len())
	}

	v.Set(10, true)
	if !v.Get(10) {
		t.Errorf("expected bit 10 to be set")
	}

	if v.Count() != 1 {
		t.Errorf("expected count 1, got %d", v.Count())
	}

	v.Set(10, false)
	if v.Get(10) {
		t.Errorf("expected bit 10 to be unset")
	}

	v.Set(10, true)
	v.Set(20, true)
	v.Set(99, true)

	if v.Count() != 3 {
		t.Errorf("expected count 3, got %d", v.Count())
	}
	if v.None() {
		t.Errorf("expected None to be false")
	}

	v.Clear()
	if v.Count() != 0 {
		t.Errorf("expected count 0 after clear, got %d", v.Count())
	}
	if !v.None() {
		t.Errorf("expected None to be true after clear")
	}
	if v.Len() != 100 {
		t.Errorf("expected clear to keep len 100, got %d", v.Len())
	}
}

func TestBitVec_GetOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on out-of-range Get")
		}
	}()

	v := FromElem[uint64](8, false)
	v.Get(8)
}

func TestBitVec_Grow(t *testing.T) {
	v := FromElem[uint32](10, false)
	v.Set(5, true)

	v.Grow(100, false)
	if v.Len() != 110 {
		t.Errorf("expected len 110, got %d", v.Len())
	}
	if !v.Get(5) {
		t.Errorf("expected bit 5 to persist after grow")
	}
	for i := uint(10); i < 110; i++ {
		if v.Get(i) {
			t.Errorf("expected grown bit %d to be zero", i)
		}
	}

	v.Grow(7, true)
	for i := uint(110); i < 117; i++ {
		if !v.Get(i) {
			t.Errorf("expected grown bit %d to be one", i)
		}
	}
	// The tail of the last block must stay clean for block-wise algebra.
	last := v.Words()[len(v.Words())-1]
	for i := v.Len() % 32; i < 32; i++ {
		if last&(1<<i) != 0 {
			t.Errorf("expected bit %d past the logical length to be zero", i)
		}
	}
}

func TestBitVec_GrowWithinBlock(t *testing.T) {
	v := FromElem[uint64](3, false)
	v.Grow(2, true)

	if v.Len() != 5 {
		t.Errorf("expected len 5, got %d", v.Len())
	}
	for i, want := range []bool{false, false, false, true, true} {
		if v.Get(uint(i)) != want {
			t.Errorf("bit %d: expected %v", i, want)
		}
	}
	if len(v.Words()) != 1 {
		t.Errorf("expected a single block, got %d", len(v.Words()))
	}
}

func TestBitVec_FromBytes(t *testing.T) {
	// MSB-first within each byte: 0b01101000 sets bits 1, 2 and 4.
	v := FromBytes[uint64]([]byte{0b01101000})

	if v.Len() != 8 {
		t.Errorf("expected len 8, got %d", v.Len())
	}
	for i, want := range []bool{false, true, true, false, true, false, false, false} {
		if v.Get(uint(i)) != want {
			t.Errorf("bit %d: expected %v", i, want)
		}
	}
}

func TestBitVec_BytesRoundTrip(t *testing.T) {
	data := []byte{0b01101000, 0b10100000, 0xff, 0x00, 0x41}
	v := FromBytes[uint16](data)

	if got := v.Bytes(); !bytes.Equal(got, data) {
		t.Errorf("round trip mismatch: expected %08b, got %08b", data, got)
	}
}

func TestBitVec_TruncateSetLen(t *testing.T) {
	v := FromElem[uint8](64, false)
	v.Set(3, true)

	v.Truncate(2)
	v.SetLen(16)

	if v.Len() != 16 {
		t.Errorf("expected len 16, got %d", v.Len())
	}
	if len(v.Words()) != 2 {
		t.Errorf("expected 2 blocks, got %d", len(v.Words()))
	}
	if !v.Get(3) {
		t.Errorf("expected bit 3 to survive truncation")
	}
}

func TestBitVec_Reserve(t *testing.T) {
	v := New[uint64]()

	v.Reserve(1000)
	if v.Cap() < 1000 {
		t.Errorf("expected capacity >= 1000, got %d", v.Cap())
	}
	if v.Len() != 0 {
		t.Errorf("expected reserve to keep len 0, got %d", v.Len())
	}

	w := New[uint64]()
	w.ReserveExact(128)
	if w.Cap() < 128 {
		t.Errorf("expected capacity >= 128, got %d", w.Cap())
	}
}

func TestBitVec_CloneEqual(t *testing.T) {
	v := FromElem[uint64](200, false)
	v.Set(0, true)
	v.Set(64, true)
	v.Set(199, true)

	c := v.Clone()
	if !v.Equal(c) {
		t.Errorf("expected clone to equal original")
	}

	c.Set(1, true)
	if v.Equal(c) {
		t.Errorf("expected mutation of clone to break equality")
	}
	if v.Get(1) {
		t.Errorf("expected clone mutation not to affect original")
	}
}

func TestBlocksFor(t *testing.T) {
	tests := []struct {
		nbits uint
		want  int
	}{
		{0, 0},
		{1, 1},
		{63, 1},
		{64, 1},
		{65, 2},
		{128, 2},
	}
	for _, tt := range tests {
		if got := BlocksFor[uint64](tt.nbits); got != tt.want {
			t.Errorf("BlocksFor[uint64](%d): expected %d, got %d", tt.nbits, tt.want, got)
		}
	}

	if got := BlocksFor[uint8](9); got != 2 {
		t.Errorf("BlocksFor[uint8](9): expected 2, got %d", got)
	}
}

func TestBits(t *testing.T) {
	if got := Bits[uint8](); got != 8 {
		t.Errorf("expected 8, got %d", got)
	}
	if got := Bits[uint64](); got != 64 {
		t.Errorf("expected 64, got %d", got)
	}
}
