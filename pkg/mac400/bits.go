package mac400

// ExplodeBits expands the low n bits of x into a bit sequence, least
// significant bit first: bits[i] == (x>>i)&1.
func ExplodeBits(x uint32, n int) []bool {
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = (x>>i)&1 == 1
	}
	return bits
}

// ImplodeBits reassembles a bit sequence produced by ExplodeBits into an
// integer. The sequence is least significant bit first and at most 32 bits
// long; ImplodeBits(ExplodeBits(x, n)) == x for every x below 2^n.
func ImplodeBits(bits []bool) uint32 {
	var x uint32
	for i, bit := range bits {
		if bit {
			x |= 1 << i
		}
	}
	return x
}

// SetBits returns the indices of the bits that are set, in ascending order.
// Useful for reporting which flags of a bitfield register (such as ERR_STAT)
// have tripped.
func SetBits(bits []bool) []int {
	var set []int
	for i, bit := range bits {
		if bit {
			set = append(set, i)
		}
	}
	return set
}
