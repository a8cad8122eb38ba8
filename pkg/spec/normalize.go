package spec

import "github.com/ChicagoDave/bodycomp/pkg/units"

// Normalize converts a raw record into canonical metric units at full precision.
// Hip is only meaningful for the female formula and is zeroed otherwise.
func Normalize(r RawInput) MeasurementInput {
	sys := r.System()
	m := MeasurementInput{
		Gender:   r.Gender,
		Age:      r.Age,
		HeightCm: units.LengthToCm(r.Height, sys),
		WeightKg: units.MassToKg(r.Weight, sys),
		NeckCm:   units.LengthToCm(r.Neck, sys),
		WaistCm:  units.LengthToCm(r.Waist, sys),
	}
	if r.Gender == Female {
		m.HipCm = units.LengthToCm(r.Hip, sys)
	}
	return m
}
