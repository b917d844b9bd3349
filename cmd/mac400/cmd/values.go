package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vhaggans/JVL-mac400-testing/pkg/mac400"
)

var modesByName = map[string]mac400.Mode{
	"passive":  mac400.ModePassive,
	"velocity": mac400.ModeVelocity,
	"position": mac400.ModePosition,
	"stop":     mac400.ModeStop,
}

// parseValue parses a command-line value according to the register's codec
// kind. Integer arguments accept 0x/0b/0o prefixes; mode registers also
// accept mode names.
func parseValue(reg mac400.Register, arg string) (mac400.Value, error) {
	switch reg.Codec.Kind {
	case mac400.KindUint32:
		x, err := strconv.ParseUint(arg, 0, 32)
		if err != nil {
			return mac400.Value{}, fmt.Errorf("%s expects an unsigned value: %w", reg.Name, err)
		}
		return mac400.UintValue(uint32(x)), nil

	case mac400.KindInt32:
		x, err := strconv.ParseInt(arg, 0, 32)
		if err != nil {
			return mac400.Value{}, fmt.Errorf("%s expects a signed value: %w", reg.Name, err)
		}
		return mac400.IntValue(int32(x)), nil

	case mac400.KindScaled:
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return mac400.Value{}, fmt.Errorf("%s expects a numeric value: %w", reg.Name, err)
		}
		return mac400.FloatValue(x), nil

	case mac400.KindMode:
		if m, ok := modesByName[strings.ToLower(arg)]; ok {
			return mac400.ModeValue(m), nil
		}
		x, err := strconv.ParseUint(arg, 0, 32)
		if err != nil {
			return mac400.Value{}, fmt.Errorf("%s expects a mode name or number: %w", reg.Name, err)
		}
		m, err := mac400.ModeForValue(uint32(x))
		if err != nil {
			return mac400.Value{}, err
		}
		return mac400.ModeValue(m), nil

	case mac400.KindBits:
		x, err := strconv.ParseUint(arg, 0, 32)
		if err != nil {
			return mac400.Value{}, fmt.Errorf("%s expects a flag word: %w", reg.Name, err)
		}
		return mac400.BitsValue(mac400.ExplodeBits(uint32(x), 32)), nil
	}
	return mac400.Value{}, fmt.Errorf("unhandled codec kind %s", reg.Codec.Kind)
}
