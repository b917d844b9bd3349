package mac400

import "testing"

func TestExplodeBitsLSBFirst(t *testing.T) {
	bits := ExplodeBits(0b1011, 4)
	want := []bool{true, true, false, true}
	if len(bits) != len(want) {
		t.Fatalf("ExplodeBits length = %d, want %d", len(bits), len(want))
	}
	for i, w := range want {
		if bits[i] != w {
			t.Fatalf("bit %d = %v, want %v", i, bits[i], w)
		}
	}
}

func TestBitsRoundTripExhaustive(t *testing.T) {
	for _, n := range []int{1, 4, 8} {
		for x := uint32(0); x < 1<<n; x++ {
			got := ImplodeBits(ExplodeBits(x, n))
			if got != x {
				t.Fatalf("ImplodeBits(ExplodeBits(%d, %d)) = %d, want %d", x, n, got, x)
			}
		}
	}
}

func TestBitsRoundTrip32(t *testing.T) {
	cases := []uint32{
		0,
		1,
		0x80000000,
		0xFFFFFFFF,
		0xDEADBEEF,
		0x55555555,
		0xAAAAAAAA,
		1 << 10,
		1<<31 | 1,
	}
	for _, x := range cases {
		bits := ExplodeBits(x, 32)
		if len(bits) != 32 {
			t.Fatalf("ExplodeBits(%#x, 32) length = %d, want 32", x, len(bits))
		}
		if got := ImplodeBits(bits); got != x {
			t.Fatalf("round trip of %#x = %#x", x, got)
		}
	}
}

func TestSetBits(t *testing.T) {
	bits := ExplodeBits(1<<3|1<<17, 32)
	set := SetBits(bits)
	if len(set) != 2 || set[0] != 3 || set[1] != 17 {
		t.Fatalf("SetBits = %v, want [3 17]", set)
	}
	if set := SetBits(ExplodeBits(0, 32)); len(set) != 0 {
		t.Fatalf("SetBits of zero = %v, want empty", set)
	}
}
