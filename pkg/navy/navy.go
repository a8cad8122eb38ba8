// Package navy estimates body fat percentage with the U.S. Navy
// circumference method.
package navy

import (
	"errors"
	"fmt"
	"math"

	"github.com/ChicagoDave/bodycomp/pkg/spec"
)

// ErrUndefinedLog is wrapped by DomainError.
var ErrUndefinedLog = errors.New("navy: circumference difference must be positive")

// DomainError reports measurements for which the formula's logarithm is
// undefined: waist-neck (male) or waist+hip-neck (female) is not positive.
type DomainError struct {
	Gender   spec.Gender
	Argument float64
}

func (e *DomainError) Error() string {
	if e.Gender == spec.Female {
		return fmt.Sprintf("waist + hip - neck = %.2f cm; waist and hip together must exceed neck", e.Argument)
	}
	return fmt.Sprintf("waist - neck = %.2f cm; waist must be larger than neck", e.Argument)
}

func (e *DomainError) Unwrap() error { return ErrUndefinedLog }

// Estimate is the formula output before and after clamping.
type Estimate struct {
	Raw     float64 `json:"raw_percent"`
	Percent float64 `json:"percent"`
	Clamped bool    `json:"clamped"`
}

// BodyFat computes the clamped body fat percentage for a normalized, already
// validated measurement record.
func BodyFat(m spec.MeasurementInput) (Estimate, error) {
	raw, err := RawBodyFat(m)
	if err != nil {
		return Estimate{}, err
	}
	pct := Clamp(raw)
	return Estimate{Raw: raw, Percent: pct, Clamped: pct != raw}, nil
}

// RawBodyFat evaluates the gender-specific equation without clamping.
func RawBodyFat(m spec.MeasurementInput) (float64, error) {
	if !(m.HeightCm > 0) || math.IsInf(m.HeightCm, 1) {
		return 0, fmt.Errorf("navy: height %v cm: %w", m.HeightCm, ErrUndefinedLog)
	}
	switch m.Gender {
	case spec.Male:
		arg := m.WaistCm - m.NeckCm
		if !(arg > 0) {
			return 0, &DomainError{Gender: m.Gender, Argument: arg}
		}
		return MaleCircumferenceCoef*math.Log10(arg) - MaleHeightCoef*math.Log10(m.HeightCm) + MaleConstant, nil
	case spec.Female:
		arg := m.WaistCm + m.HipCm - m.NeckCm
		if !(arg > 0) {
			return 0, &DomainError{Gender: m.Gender, Argument: arg}
		}
		return FemaleCircumferenceCoef*math.Log10(arg) - FemaleHeightCoef*math.Log10(m.HeightCm) - FemaleConstant, nil
	}
	return 0, fmt.Errorf("navy: unsupported gender %q", m.Gender)
}

// Clamp limits a percentage to [MinBodyFatPercent, MaxBodyFatPercent].
func Clamp(pct float64) float64 {
	return math.Max(MinBodyFatPercent, math.Min(pct, MaxBodyFatPercent))
}
