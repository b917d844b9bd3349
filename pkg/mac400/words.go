package mac400

// Word-pair packing for 32-bit register values.
//
// The bus carries each register as two 16-bit words in little-endian word
// order: the word at the lower address holds the low 16 bits. The MAC400
// user manual describes the order as "big endian", but the order observed on
// the wire (and used by every known host implementation) is low word first.
// The round-trip tests pin this convention.

// U32ToWords splits an unsigned 32-bit value into its low and high bus words.
func U32ToWords(x uint32) (lo, hi uint16) {
	return uint16(x & 0xFFFF), uint16(x >> 16)
}

// WordsToU32 reassembles an unsigned 32-bit value from its low and high bus
// words. It is the exact inverse of U32ToWords.
func WordsToU32(lo, hi uint16) uint32 {
	return uint32(lo) | uint32(hi)<<16
}

// I32ToWords splits a signed 32-bit value (two's complement) into its low and
// high bus words.
func I32ToWords(x int32) (lo, hi uint16) {
	return U32ToWords(uint32(x))
}

// WordsToI32 reassembles a signed 32-bit value from its low and high bus
// words. It is the exact inverse of I32ToWords.
func WordsToI32(lo, hi uint16) int32 {
	return int32(WordsToU32(lo, hi))
}
