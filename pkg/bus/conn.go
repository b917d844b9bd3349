package bus

// Conn is a word-level connection to a drive. Each MAC400 register occupies
// two consecutive 16-bit words; addr is the register's low word address.
//
// Implementations wrap whatever link the drive is reached over (Modbus TCP
// through the MAC00-EC4 module, for instance) and handle framing, retries,
// and timeouts internally.
type Conn interface {
	// ReadWords reads the word pair at (addr, addr+1).
	ReadWords(addr uint16) (lo, hi uint16, err error)

	// WriteWords writes the word pair at (addr, addr+1).
	WriteWords(addr, lo, hi uint16) error
}
