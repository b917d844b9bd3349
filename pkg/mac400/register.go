package mac400

import "fmt"

// Register describes one 32-bit drive parameter. Registers are immutable
// values; the full set lives in the package's register table and is reached
// through a Registry.
type Register struct {
	Name  string // register name from the user manual, e.g. "V_SOLL"
	Num   uint16 // register number from listing 5.12.3
	Codec Codec
}

// Addr returns the two consecutive bus word addresses holding this register:
// 2*Num for the low word and 2*Num+1 for the high word. The addresses are
// derived from the register number rather than stored, since every register
// follows the same pattern.
func (r Register) Addr() (lo, hi uint16) {
	return 2 * r.Num, 2*r.Num + 1
}

// Decode converts the register's word pair into a typed value using its codec.
func (r Register) Decode(lo, hi uint16) (Value, error) {
	v, err := r.Codec.Decode(lo, hi)
	if err != nil {
		return Value{}, fmt.Errorf("decode %s: %w", r.Name, err)
	}
	return v, nil
}

// Encode converts a typed value into the register's word pair using its codec.
func (r Register) Encode(v Value) (lo, hi uint16, err error) {
	lo, hi, err = r.Codec.Encode(v)
	if err != nil {
		return 0, 0, fmt.Errorf("encode %s: %w", r.Name, err)
	}
	return lo, hi, nil
}

func (r Register) String() string {
	return fmt.Sprintf("%s(%d)", r.Name, r.Num)
}
