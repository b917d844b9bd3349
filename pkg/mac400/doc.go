// Package mac400 defines the internal register map of the JVL MAC400
// integrated servo motor and the codecs that translate register contents
// between raw bus words and typed values.
//
// Every MAC400 register is a 32-bit quantity stored as two consecutive 16-bit
// words on the field bus. Register numbers come from listing 5.12.3 of the
// MAC400 user manual; a register numbered n occupies word addresses 2n and
// 2n+1. Word order is little endian throughout: the word at 2n holds the low
// 16 bits, the word at 2n+1 the high 16 bits.
//
// # Overview
//
// The package provides:
//   - Register: an immutable description of one register (name, number, codec)
//   - Registry: lookup of registers by name or by word address
//   - Codec: per-register encode/decode between word pairs and typed values
//   - Mode: the drive's closed set of operating modes
//
// # Usage
//
// Callers combine the registry, a register's codec, and their own bus
// transport:
//
//	regs := mac400.DefaultRegistry()
//	reg, err := regs.ForName("V_SOLL")
//	// read 2 words at reg.Addr() over the bus, then
//	v, err := reg.Decode(lo, hi)
//	fmt.Printf("commanded velocity: %.1f RPM\n", v.Float)
//
// This package never performs bus I/O itself; see the bus package for the
// transport interface and a simulated drive.
//
// # Codecs
//
// Most registers are plain 32-bit unsigned integers. The exceptions carry one
// of the other codec kinds:
//   - signed position/velocity registers (encoder counts)
//   - scaled physical quantities (RPM, RPM/s, % nominal torque, bus volts)
//   - MODE_REG's closed mode enumeration
//   - ERR_STAT's 32 independent flag bits
//
// Scaled codecs perform no range validation: a physical value outside the
// representable range simply wraps when packed, matching the drive's own
// behavior. Mode decoding is the only codec that can fail.
package mac400
