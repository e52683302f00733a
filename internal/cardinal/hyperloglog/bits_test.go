package hyperloglog

import "testing"

func TestClz(t *testing.T) {
	cases32 := []struct {
		in   uint32
		want uint8
	}{
		{0, 32},
		{1, 31},
		{0x80000000, 0},
		{0x00010000, 15},
		{0xFFFFFFFF, 0},
	}
	for _, tc := range cases32 {
		if got := clz32(tc.in); got != tc.want {
			t.Errorf("clz32(%#x) = %d, want %d", tc.in, got, tc.want)
		}
	}

	cases64 := []struct {
		in   uint64
		want uint8
	}{
		{0, 64},
		{1, 63},
		{1 << 63, 0},
		{1 << 32, 31},
		{0xFFFFFFFFFFFFFFFF, 0},
	}
	for _, tc := range cases64 {
		if got := clz64(tc.in); got != tc.want {
			t.Errorf("clz64(%#x) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestExtractHighBits(t *testing.T) {
	if got := extractHighBits64(0xFF00000000000000, 8); got != 0xFF {
		t.Errorf("extractHighBits64: got %#x, want 0xff", got)
	}
	if got := extractHighBits64(1<<63, 1); got != 1 {
		t.Errorf("extractHighBits64 top bit: got %d, want 1", got)
	}
	if got := extractHighBits32(0xABCD0000, 16); got != 0xABCD {
		t.Errorf("extractHighBits32: got %#x, want 0xabcd", got)
	}
}

func TestExtractBits32(t *testing.T) {
	cases := []struct {
		v         uint32
		hi, lo    uint8
		shiftLeft bool
		want      uint32
	}{
		// The additional-rank field of an encoded word: bits [1, 7).
		{0b1010_0110, 7, 1, false, 0b1_0011},
		{0xFFFFFFFF, 7, 1, false, 0x3F},
		{0x00000000, 7, 1, false, 0},
		// Left-aligned extraction keeps the lo offset and shifts the
		// masked value into the top of the word.
		{0b1100, 4, 2, true, 0xC0000000},
		{0x000000F0, 8, 4, true, 0xF0000000},
	}
	for _, tc := range cases {
		got := extractBits32(tc.v, tc.hi, tc.lo, tc.shiftLeft)
		if got != tc.want {
			t.Errorf("extractBits32(%#x, %d, %d, %v) = %#x, want %#x",
				tc.v, tc.hi, tc.lo, tc.shiftLeft, got, tc.want)
		}
	}
}

func TestTrailingOnes(t *testing.T) {
	if got := trailingOnes64(12); got != 0xFFF {
		t.Errorf("trailingOnes64(12) = %#x, want 0xfff", got)
	}
	if got := trailingOnes64(25); got != 0x1FFFFFF {
		t.Errorf("trailingOnes64(25) = %#x, want 0x1ffffff", got)
	}
	if got := trailingOnes32(4); got != 0xF {
		t.Errorf("trailingOnes32(4) = %#x, want 0xf", got)
	}
}
