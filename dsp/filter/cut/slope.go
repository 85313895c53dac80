package cut

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxStages is the number of biquad stages in every Chain.
const MaxStages = 4

// Slope is the steepness of a cut filter. Each step adds one cascaded
// second-order stage, i.e. 12 dB per octave.
type Slope int

// Supported slopes.
const (
	Slope12 Slope = iota
	Slope24
	Slope36
	Slope48
)

// Slopes lists every valid slope from gentle to steep.
func Slopes() []Slope {
	return []Slope{Slope12, Slope24, Slope36, Slope48}
}

// Valid reports whether s is one of the supported slopes.
func (s Slope) Valid() bool {
	return s >= Slope12 && s <= Slope48
}

// Stages returns the number of active biquad stages for s.
func (s Slope) Stages() int {
	return int(s) + 1
}

// Order returns the Butterworth filter order that realizes s.
func (s Slope) Order() int {
	return 2 * s.Stages()
}

// DBPerOctave returns the asymptotic roll-off of s.
func (s Slope) DBPerOctave() int {
	return 12 * s.Stages()
}

// String returns the label used in parameter displays, e.g. "24 dB/oct".
func (s Slope) String() string {
	if !s.Valid() {
		return "Slope(" + strconv.Itoa(int(s)) + ")"
	}
	return strconv.Itoa(s.DBPerOctave()) + " dB/oct"
}

// MarshalText implements encoding.TextMarshaler.
func (s Slope) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSlope, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseSlope.
func (s *Slope) UnmarshalText(text []byte) error {
	v, err := ParseSlope(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSlope accepts a roll-off in dB/oct ("12", "48 dB/oct", "24db/oct")
// or a choice index ("0".."3").
func ParseSlope(text string) (Slope, error) {
	str := strings.ToLower(strings.TrimSpace(text))
	str = strings.TrimSpace(strings.TrimSuffix(str, "db/oct"))

	n, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlope, text)
	}

	switch {
	case n >= int(Slope12) && n <= int(Slope48):
		return Slope(n), nil
	case n >= 12 && n <= 48 && n%12 == 0:
		return Slope(n/12 - 1), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlope, text)
	}
}

// ClampSlope maps any integer choice index onto the nearest valid slope.
func ClampSlope(index int) Slope {
	if index < int(Slope12) {
		return Slope12
	}
	if index > int(Slope48) {
		return Slope48
	}
	return Slope(index)
}
