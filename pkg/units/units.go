package units

import "fmt"

// System selects the unit system raw measurements are entered in.
type System string

const (
	Metric   System = "metric"
	Imperial System = "imperial"
)

// Conversion factors into the canonical metric system.
const (
	CmPerInch  = 2.54
	KgPerPound = 0.453592
)

// Parse resolves a unit selector. An empty string selects Metric.
func Parse(s string) (System, error) {
	switch System(s) {
	case "", Metric:
		return Metric, nil
	case Imperial:
		return Imperial, nil
	}
	return "", fmt.Errorf("unknown unit system %q (want %q or %q)", s, Metric, Imperial)
}

// Valid reports whether s is one of the known systems.
func (s System) Valid() bool {
	return s == Metric || s == Imperial
}

// LengthLabel is the display unit for circumferences and height.
func (s System) LengthLabel() string {
	if s == Imperial {
		return "in"
	}
	return "cm"
}

// MassLabel is the display unit for weights.
func (s System) MassLabel() string {
	if s == Imperial {
		return "lbs"
	}
	return "kg"
}

// LengthToCm converts a length entered in s to centimeters.
func LengthToCm(v float64, s System) float64 {
	if s == Imperial {
		return v * CmPerInch
	}
	return v
}

// MassToKg converts a weight entered in s to kilograms.
func MassToKg(v float64, s System) float64 {
	if s == Imperial {
		return v * KgPerPound
	}
	return v
}

// CmToLength converts centimeters back into s.
func CmToLength(cm float64, s System) float64 {
	if s == Imperial {
		return cm / CmPerInch
	}
	return cm
}

// KgToMass converts kilograms back into s.
func KgToMass(kg float64, s System) float64 {
	if s == Imperial {
		return kg / KgPerPound
	}
	return kg
}
