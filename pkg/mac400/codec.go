package mac400

import (
	"fmt"
	"math"
	"strings"
)

// Kind selects the interpretation of a register's 32-bit contents.
type Kind uint8

const (
	// KindUint32 is the default: the register is a plain unsigned integer.
	KindUint32 Kind = iota
	// KindInt32 interprets the register as two's complement, used for
	// positions and other signed encoder-count quantities.
	KindInt32
	// KindScaled interprets the register as a fixed-point physical quantity.
	// The raw integer divided by the codec's factor yields the physical
	// value (RPM, RPM/s, % of nominal torque, volts).
	KindScaled
	// KindMode interprets the register as a Mode value.
	KindMode
	// KindBits interprets the register as 32 independent flag bits.
	KindBits
)

var kindNames = map[Kind]string{
	KindUint32: "uint32",
	KindInt32:  "int32",
	KindScaled: "scaled",
	KindMode:   "mode",
	KindBits:   "bits",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Codec describes how one register's word pair maps to a typed value.
// Codecs are plain immutable values; the zero Codec is the default unsigned
// interpretation.
type Codec struct {
	Kind Kind

	// Factor is the number of raw counts per physical unit. Meaningful only
	// for KindScaled.
	Factor float64

	// Signed selects two's complement interpretation of the raw integer
	// underneath a scaled codec. Meaningful only for KindScaled.
	Signed bool
}

// Unsigned is the default codec shared by most of the register map.
var Unsigned = Codec{Kind: KindUint32}

// Signed interprets the register as a two's complement integer.
var Signed = Codec{Kind: KindInt32}

// ScaledBy returns a codec for a physical quantity stored as
// round(physical*factor) raw counts.
func ScaledBy(factor float64, signed bool) Codec {
	return Codec{Kind: KindScaled, Factor: factor, Signed: signed}
}

// Value is a decoded register value. Kind says which field carries the
// payload; the remaining fields are zero.
type Value struct {
	Kind  Kind
	Uint  uint32  // KindUint32
	Int   int32   // KindInt32
	Float float64 // KindScaled
	Mode  Mode    // KindMode
	Bits  []bool  // KindBits, LSB first, length 32
}

// UintValue wraps a raw unsigned register value.
func UintValue(x uint32) Value { return Value{Kind: KindUint32, Uint: x} }

// IntValue wraps a signed register value.
func IntValue(x int32) Value { return Value{Kind: KindInt32, Int: x} }

// FloatValue wraps a scaled physical quantity.
func FloatValue(x float64) Value { return Value{Kind: KindScaled, Float: x} }

// ModeValue wraps an operating mode.
func ModeValue(m Mode) Value { return Value{Kind: KindMode, Mode: m} }

// BitsValue wraps a flag bit sequence, LSB first.
func BitsValue(bits []bool) Value { return Value{Kind: KindBits, Bits: bits} }

func (v Value) String() string {
	switch v.Kind {
	case KindUint32:
		return fmt.Sprintf("%d", v.Uint)
	case KindInt32:
		return fmt.Sprintf("%d", v.Int)
	case KindScaled:
		return fmt.Sprintf("%g", v.Float)
	case KindMode:
		return v.Mode.String()
	case KindBits:
		set := SetBits(v.Bits)
		if len(set) == 0 {
			return "no bits set"
		}
		parts := make([]string, len(set))
		for i, bit := range set {
			parts[i] = fmt.Sprintf("%d", bit)
		}
		return "bits " + strings.Join(parts, ",")
	}
	return fmt.Sprintf("Value(%s)", v.Kind)
}

// Decode converts a register's word pair into a typed value. Only mode
// codecs can fail, when the raw value is outside the defined mode set.
func (c Codec) Decode(lo, hi uint16) (Value, error) {
	switch c.Kind {
	case KindUint32:
		return UintValue(WordsToU32(lo, hi)), nil
	case KindInt32:
		return IntValue(WordsToI32(lo, hi)), nil
	case KindScaled:
		var raw float64
		if c.Signed {
			raw = float64(WordsToI32(lo, hi))
		} else {
			raw = float64(WordsToU32(lo, hi))
		}
		return FloatValue(raw / c.Factor), nil
	case KindMode:
		m, err := ModeForValue(WordsToU32(lo, hi))
		if err != nil {
			return Value{}, err
		}
		return ModeValue(m), nil
	case KindBits:
		return BitsValue(ExplodeBits(WordsToU32(lo, hi), 32)), nil
	}
	return Value{}, fmt.Errorf("mac400: decode with unhandled codec kind %s", c.Kind)
}

// Encode converts a typed value back into the register's word pair. The
// value's kind must match the codec's. Scaled values are rounded to the
// nearest raw count; no range validation is performed, out-of-range values
// wrap just as they would on the drive.
func (c Codec) Encode(v Value) (lo, hi uint16, err error) {
	if v.Kind != c.Kind {
		return 0, 0, fmt.Errorf("mac400: cannot encode %s value with %s codec", v.Kind, c.Kind)
	}
	switch c.Kind {
	case KindUint32:
		lo, hi = U32ToWords(v.Uint)
	case KindInt32:
		lo, hi = I32ToWords(v.Int)
	case KindScaled:
		raw := int64(math.Round(v.Float * c.Factor))
		lo, hi = U32ToWords(uint32(raw))
	case KindMode:
		if _, err := ModeForValue(uint32(v.Mode)); err != nil {
			return 0, 0, err
		}
		lo, hi = U32ToWords(uint32(v.Mode))
	case KindBits:
		lo, hi = U32ToWords(ImplodeBits(v.Bits))
	default:
		return 0, 0, fmt.Errorf("mac400: encode with unhandled codec kind %s", c.Kind)
	}
	return lo, hi, nil
}
