package mac400

import "fmt"

// Mode is the drive's operating mode, as held in MODE_REG. The MAC400 defines
// further modes in table 5.12.3 of the user manual; only the ones used by
// motion testing are modeled, and decoding any other value fails with
// ErrInvalidMode.
type Mode uint32

const (
	ModePassive  Mode = 0
	ModeVelocity Mode = 1
	ModePosition Mode = 2

	// ModeStop may be read back briefly when a position limit is hit,
	// before the drive falls back to passive mode.
	ModeStop Mode = 11
)

var modeNames = map[Mode]string{
	ModePassive:  "Passive",
	ModeVelocity: "Velocity",
	ModePosition: "Position",
	ModeStop:     "Stop",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", uint32(m))
}

// ModeForValue maps a raw register value onto the mode set. It returns
// ErrInvalidMode for values outside the set.
func ModeForValue(raw uint32) (Mode, error) {
	m := Mode(raw)
	if _, ok := modeNames[m]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMode, raw)
	}
	return m, nil
}
