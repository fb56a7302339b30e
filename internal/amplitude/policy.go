package amplitude

import (
	"errors"
	"fmt"
)

// ErrInvalidPolicy is returned for out-of-range clipping parameters.
var ErrInvalidPolicy = errors.New("invalid amplitude policy")

const (
	MinPercentile = 50.0
	MaxPercentile = 100.0
	MaxStdDevs    = 10.0

	DefaultPercentile = 99.0
	DefaultStdDevs    = 2.0
)

// Mode selects how the display range is computed.
type Mode int

const (
	ModeNone Mode = iota
	ModePercentile
	ModeStdDev
)

func (m Mode) String() string {
	switch m {
	case ModePercentile:
		return "percentile"
	case ModeStdDev:
		return "stddev"
	default:
		return "none"
	}
}

// ParseMode parses the textual form produced by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "percentile":
		return ModePercentile, nil
	case "stddev", "std_dev":
		return ModeStdDev, nil
	case "none", "":
		return ModeNone, nil
	}
	return ModeNone, fmt.Errorf("%w: unknown mode '%s'", ErrInvalidPolicy, s)
}

// Policy is a single clipping policy. Only the parameter of the active mode is used.
type Policy struct {
	Mode       Mode
	Percentile float64 // Upper percentile in [50, 100]
	StdDevs    float64 // Clip width k in (0, 10]
}

// None returns a policy that uses the true min/max.
func None() Policy {
	return Policy{Mode: ModeNone}
}

// Percentile returns a one-sided percentile policy anchored at zero.
func Percentile(p float64) Policy {
	return Policy{Mode: ModePercentile, Percentile: p}
}

// StdDev returns a policy clipping samples to mean ± k standard deviations.
func StdDev(k float64) Policy {
	return Policy{Mode: ModeStdDev, StdDevs: k}
}

// Validate checks the parameter of the active mode.
func (p Policy) Validate() error {
	switch p.Mode {
	case ModeNone:
		return nil
	case ModePercentile:
		if !(p.Percentile >= MinPercentile && p.Percentile <= MaxPercentile) {
			return fmt.Errorf("%w: percentile %g is outside [%g, %g]", ErrInvalidPolicy, p.Percentile, MinPercentile, MaxPercentile)
		}
	case ModeStdDev:
		if !(p.StdDevs > 0 && p.StdDevs <= MaxStdDevs) {
			return fmt.Errorf("%w: standard deviations %g is outside (0, %g]", ErrInvalidPolicy, p.StdDevs, MaxStdDevs)
		}
	default:
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidPolicy, int(p.Mode))
	}
	return nil
}

func (p Policy) String() string {
	switch p.Mode {
	case ModePercentile:
		return fmt.Sprintf("percentile(%g)", p.Percentile)
	case ModeStdDev:
		return fmt.Sprintf("std_dev(%g)", p.StdDevs)
	default:
		return "none"
	}
}

// Settings remembers both clipping parameters while keeping exactly one mode
// active. Enabling one mode disables the other.
type Settings struct {
	mode       Mode
	percentile float64
	stdDevs    float64
}

// DefaultSettings returns percentile clipping at 99 with a remembered k of 2.
func DefaultSettings() Settings {
	return Settings{
		mode:       ModePercentile,
		percentile: DefaultPercentile,
		stdDevs:    DefaultStdDevs,
	}
}

// EnablePercentile activates percentile clipping at p.
func (s *Settings) EnablePercentile(p float64) {
	s.mode = ModePercentile
	s.percentile = p
}

// EnableStdDev activates standard deviation clipping with width k.
func (s *Settings) EnableStdDev(k float64) {
	s.mode = ModeStdDev
	s.stdDevs = k
}

// Disable turns clipping off.
func (s *Settings) Disable() {
	s.mode = ModeNone
}

// Mode returns the active mode.
func (s Settings) Mode() Mode {
	return s.mode
}

// Policy returns the active policy.
func (s Settings) Policy() Policy {
	switch s.mode {
	case ModePercentile:
		return Percentile(s.percentile)
	case ModeStdDev:
		return StdDev(s.stdDevs)
	default:
		return None()
	}
}
