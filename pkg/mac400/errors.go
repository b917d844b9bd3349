package mac400

import "errors"

// ErrUnknownRegister is returned by registry lookups when no register exists
// with the requested name, or when a word address falls in a reserved gap or
// outside the register map.
var ErrUnknownRegister = errors.New("mac400: unknown register")

// ErrInvalidMode is returned when decoding a mode register whose raw value is
// outside the defined mode set. The drive can in principle report modes this
// package does not model; callers should treat this as a hardware condition
// to surface, not a bug to swallow.
var ErrInvalidMode = errors.New("mac400: mode value outside the defined mode set")
