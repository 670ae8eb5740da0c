package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidMode reports a string or Mode value that does not name one
// of the six recognized polarization modes.
var ErrInvalidMode = errors.New("not a polarization mode")

// Mode identifies a gravitational-wave polarization mode.
type Mode int

const (
	ModeUnknown      Mode = iota
	ModePlus              // tensor +
	ModeCross             // tensor x
	ModeBreathing         // scalar transverse
	ModeLongitudinal      // scalar along propagation
	ModeVectorX           // vector, m-omega
	ModeVectorY           // vector, n-omega
)

var modeNames = map[Mode]string{
	ModePlus:         "plus",
	ModeCross:        "cross",
	ModeBreathing:    "breathing",
	ModeLongitudinal: "longitudinal",
	ModeVectorX:      "x",
	ModeVectorY:      "y",
}

// Modes returns the recognized polarization modes in canonical order.
func Modes() []Mode {
	return []Mode{ModePlus, ModeCross, ModeBreathing, ModeLongitudinal, ModeVectorX, ModeVectorY}
}

// String returns the canonical lowercase name of the mode.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps an external mode name to its Mode. Matching is
// case-insensitive; anything but the six canonical names fails with
// ErrInvalidMode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "plus":
		return ModePlus, nil
	case "cross":
		return ModeCross, nil
	case "breathing":
		return ModeBreathing, nil
	case "longitudinal":
		return ModeLongitudinal, nil
	case "x":
		return ModeVectorX, nil
	case "y":
		return ModeVectorY, nil
	default:
		return ModeUnknown, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// sourceAngles reduces sidereal time modulo 2*pi and converts a sky
// position to the azimuthal and polar angles of the source in the
// geocentric frame.
func sourceAngles(ra, dec, t float64) (phi, theta float64) {
	gmst := math.Mod(t, 2*math.Pi)
	if gmst < 0 {
		gmst += 2 * math.Pi
	}
	return ra - gmst, math.Pi/2 - dec
}

// PolarizationTensor returns the polarization basis tensor for a source
// at right ascension ra and declination dec (radians), Greenwich Mean
// Sidereal Time t (radians; reduced modulo 2*pi) and polarization angle
// psi (radians).
func PolarizationTensor(ra, dec, t, psi float64, mode Mode) (Tensor, error) {
	phi, theta := sourceAngles(ra, dec, t)

	u := Vec3{
		X: math.Cos(phi) * math.Cos(theta),
		Y: math.Cos(theta) * math.Sin(phi),
		Z: -math.Sin(theta),
	}
	v := Vec3{X: -math.Sin(phi), Y: math.Cos(phi), Z: 0}
	m := u.Scale(-math.Sin(psi)).Sub(v.Scale(math.Cos(psi)))
	n := u.Scale(-math.Cos(psi)).Add(v.Scale(math.Sin(psi)))

	switch mode {
	case ModePlus:
		return m.Outer(m).Sub(n.Outer(n)), nil
	case ModeCross:
		return m.Outer(n).Add(n.Outer(m)), nil
	case ModeBreathing:
		return m.Outer(m).Add(n.Outer(n)), nil
	}

	// plus, cross and breathing never need omega.
	omega := m.Cross(n)
	switch mode {
	case ModeLongitudinal:
		return omega.Outer(omega), nil
	case ModeVectorX:
		return m.Outer(omega).Add(omega.Outer(m)), nil
	case ModeVectorY:
		return n.Outer(omega).Add(omega.Outer(n)), nil
	default:
		return Tensor{}, fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}
}
