package validation

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/bodycomp/pkg/spec"
)

// ValidateInput checks a raw record before any conversion or formula runs.
// Every required measurement must be finite and strictly positive; female
// records also need a hip measurement.
func ValidateInput(raw *spec.RawInput) *Report {
	r := NewReport()

	validateGender(raw, r)
	validateUnits(raw, r)
	validateAge(raw, r)

	unit := raw.System().LengthLabel()
	requirePositive(r, spec.FieldHeight, raw.Height, unit)
	requirePositive(r, spec.FieldWeight, raw.Weight, raw.System().MassLabel())
	requirePositive(r, spec.FieldNeck, raw.Neck, unit)
	requirePositive(r, spec.FieldWaist, raw.Waist, unit)

	validateHip(raw, r)

	return r
}

func validateGender(raw *spec.RawInput, r *Report) {
	if raw.Gender.Valid() {
		return
	}
	r.AddError(Result{
		Level:       LevelInput,
		Message:     fmt.Sprintf("gender %q is not supported", raw.Gender),
		Field:       spec.FieldGender,
		ActualValue: string(raw.Gender),
		Expected:    "male or female",
	})
}

func validateUnits(raw *spec.RawInput, r *Report) {
	if raw.System().Valid() {
		return
	}
	r.AddError(Result{
		Level:       LevelInput,
		Message:     fmt.Sprintf("unit system %q is not supported", raw.Units),
		Field:       spec.FieldUnits,
		ActualValue: string(raw.Units),
		Expected:    "metric or imperial",
	})
}

func validateAge(raw *spec.RawInput, r *Report) {
	switch {
	case math.IsNaN(raw.Age) || math.IsInf(raw.Age, 0) || raw.Age < 0:
		r.AddError(Result{
			Level:       LevelInput,
			Message:     "age must be a positive number",
			Field:       spec.FieldAge,
			ActualValue: reportable(raw.Age),
			Expected:    "> 0",
		})
	case raw.Age == 0:
		r.AddInfo(Result{
			Level:   LevelInput,
			Message: "age not provided; it is not used by the Navy formula",
			Field:   spec.FieldAge,
		})
	}
}

func validateHip(raw *spec.RawInput, r *Report) {
	switch raw.Gender {
	case spec.Female:
		if !positive(raw.Hip) {
			r.AddError(Result{
				Level:       LevelInput,
				Message:     "hip measurement is required for women",
				Field:       spec.FieldHip,
				ActualValue: reportable(raw.Hip),
				Expected:    "> 0 " + raw.System().LengthLabel(),
				Suggestions: []string{"Measure the hips at their widest point"},
			})
		}
	case spec.Male:
		if raw.Hip != 0 {
			r.AddInfo(Result{
				Level:       LevelInput,
				Message:     "hip measurement is ignored for men",
				Field:       spec.FieldHip,
				ActualValue: reportable(raw.Hip),
			})
		}
	}
}

// ValidateMeasurements checks a normalized record right before the formula
// runs. Records built by Normalize can still overflow after unit conversion,
// and callers of calc.FromMeasurements skip ValidateInput entirely.
func ValidateMeasurements(m spec.MeasurementInput) *Report {
	r := NewReport()

	if !m.Gender.Valid() {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     fmt.Sprintf("gender %q is not supported", m.Gender),
			Field:       spec.FieldGender,
			ActualValue: string(m.Gender),
			Expected:    "male or female",
		})
	}

	requireFinite(r, spec.FieldHeight, m.HeightCm, "cm")
	requireFinite(r, spec.FieldWeight, m.WeightKg, "kg")
	requireFinite(r, spec.FieldNeck, m.NeckCm, "cm")
	requireFinite(r, spec.FieldWaist, m.WaistCm, "cm")
	if m.Gender == spec.Female {
		requireFinite(r, spec.FieldHip, m.HipCm, "cm")
	}

	if r.HasError(spec.FieldHeight) || r.HasError(spec.FieldWeight) {
		return r
	}
	// Fat mass is weight times a percentage of at most 100.
	if math.IsInf(m.WeightKg*100, 0) {
		r.AddError(Result{
			Level:       LevelFormula,
			Message:     "weight is too large to derive fat mass",
			Field:       spec.FieldWeight,
			ActualValue: m.WeightKg,
			Expected:    "a realistic body weight",
		})
	}
	heightM := m.HeightCm / 100
	if bmi := m.WeightKg / (heightM * heightM); math.IsInf(bmi, 0) || math.IsNaN(bmi) {
		r.AddError(Result{
			Level:       LevelFormula,
			Message:     "height and weight do not give a finite BMI",
			Field:       spec.FieldHeight,
			ActualValue: m.HeightCm,
			Expected:    "a realistic height",
		})
	}
	return r
}

func requireFinite(r *Report, field string, v float64, unit string) {
	if positive(v) {
		return
	}
	r.AddError(Result{
		Level:       LevelInput,
		Message:     fmt.Sprintf("%s must be a finite positive number after conversion to %s", field, unit),
		Field:       field,
		ActualValue: reportable(v),
		Expected:    "> 0 " + unit,
	})
}

func requirePositive(r *Report, field string, v float64, unit string) {
	if positive(v) {
		return
	}
	msg := fmt.Sprintf("%s is required", field)
	if v != 0 {
		msg = fmt.Sprintf("%s must be a positive number", field)
	}
	r.AddError(Result{
		Level:       LevelInput,
		Message:     msg,
		Field:       field,
		ActualValue: reportable(v),
		Expected:    "> 0 " + unit,
	})
}

// positive rejects zero, negatives, NaN and infinities.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// reportable keeps NaN and infinities out of ActualValue, which must
// survive JSON encoding.
func reportable(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	return v
}
