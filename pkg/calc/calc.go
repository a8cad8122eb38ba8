// Package calc ties the normalizer, estimator, deriver and classifier into a
// single stateless computation.
package calc

import (
	"errors"
	"fmt"

	"github.com/ChicagoDave/bodycomp/pkg/classify"
	"github.com/ChicagoDave/bodycomp/pkg/composition"
	"github.com/ChicagoDave/bodycomp/pkg/navy"
	"github.com/ChicagoDave/bodycomp/pkg/spec"
	"github.com/ChicagoDave/bodycomp/pkg/units"
	"github.com/ChicagoDave/bodycomp/pkg/validation"
)

// Result is the outcome of one calculation. Masses are always kilograms.
type Result struct {
	BodyFatPercent    float64                  `json:"body_fat_percent"`
	RawBodyFatPercent float64                  `json:"raw_body_fat_percent"`
	Clamped           bool                     `json:"clamped"`
	BMI               float64                  `json:"bmi"`
	LeanBodyMassKg    float64                  `json:"lean_body_mass_kg"`
	FatMassKg         float64                  `json:"fat_mass_kg"`
	BodyFatCategory   classify.BodyFatCategory `json:"body_fat_category"`
	BMICategory       classify.BMICategory     `json:"bmi_category"`
	Units             units.System             `json:"units"`
	Measurements      spec.MeasurementInput    `json:"measurements"`
}

// Compute validates raw, converts it to metric and evaluates it. The report
// carries non-fatal notes even when err is nil. err wraps
// validation.ErrInvalidInput or navy.ErrUndefinedLog.
func Compute(raw spec.RawInput) (Result, *validation.Report, error) {
	report := validation.ValidateInput(&raw)
	if err := report.Err(); err != nil {
		return Result{}, report, err
	}
	return evaluate(spec.Normalize(raw), raw.System(), report)
}

// ComputeFields is Compute for text values keyed by logical field name.
func ComputeFields(fields map[string]string) (Result, *validation.Report, error) {
	raw, report := validation.ValidateFields(fields)
	if err := report.Err(); err != nil {
		return Result{}, report, err
	}
	return evaluate(spec.Normalize(raw), raw.System(), report)
}

// FromMeasurements evaluates an already normalized record. sys only records
// which system the caller displays in.
func FromMeasurements(m spec.MeasurementInput, sys units.System) (Result, error) {
	res, _, err := evaluate(m, sys, validation.NewReport())
	return res, err
}

func evaluate(m spec.MeasurementInput, sys units.System, report *validation.Report) (Result, *validation.Report, error) {
	report.Merge(validation.ValidateMeasurements(m))
	if err := report.Err(); err != nil {
		return Result{}, report, err
	}

	est, err := navy.BodyFat(m)
	if err != nil {
		var de *navy.DomainError
		if errors.As(err, &de) {
			report.AddError(validation.Result{
				Level:       validation.LevelFormula,
				Message:     de.Error(),
				Field:       spec.FieldWaist,
				ActualValue: de.Argument,
				Expected:    "> 0",
				Suggestions: []string{"Check that neck, waist and hip were not swapped"},
			})
		}
		return Result{}, report, fmt.Errorf("estimating body fat: %w", err)
	}

	if est.Clamped {
		report.AddWarning(validation.Result{
			Level:       validation.LevelResult,
			Message:     fmt.Sprintf("formula gave %.1f%%, clamped to %.0f%%", est.Raw, est.Percent),
			Field:       "body_fat_percent",
			ActualValue: est.Raw,
			Expected:    fmt.Sprintf("%.0f-%.0f", navy.MinBodyFatPercent, navy.MaxBodyFatPercent),
		})
	}

	derived := composition.Derive(m.WeightKg, m.HeightCm, est.Percent)

	return Result{
		BodyFatPercent:    est.Percent,
		RawBodyFatPercent: est.Raw,
		Clamped:           est.Clamped,
		BMI:               derived.BMI,
		LeanBodyMassKg:    derived.LeanBodyMassKg,
		FatMassKg:         derived.FatMassKg,
		BodyFatCategory:   classify.BodyFat(m.Gender, est.Percent),
		BMICategory:       classify.BMI(derived.BMI),
		Units:             sys,
		Measurements:      m,
	}, report, nil
}
