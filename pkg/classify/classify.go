// Package classify maps body fat percentage and BMI onto descriptive
// categories. Each band includes its lower bound and excludes its upper bound.
package classify

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/ChicagoDave/bodycomp/pkg/spec"
)

// BodyFatCategory is a body fat band label.
type BodyFatCategory string

const (
	EssentialFat BodyFatCategory = "Essential Fat"
	Athletes     BodyFatCategory = "Athletes"
	Fitness      BodyFatCategory = "Fitness"
	Average      BodyFatCategory = "Average"
	ObeseFat     BodyFatCategory = "Obese"
)

// BMICategory is a BMI band label.
type BMICategory string

const (
	Underweight  BMICategory = "Underweight"
	NormalWeight BMICategory = "Normal Weight"
	Overweight   BMICategory = "Overweight"
	ObeseBMI     BMICategory = "Obese"
)

// Band is one half-open range [Min, Max) of a category table.
type Band[C ~string] struct {
	Category C       `json:"category"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// Range renders the band the way the reference table prints it.
func (b Band[C]) Range() string {
	switch {
	case math.IsInf(b.Min, -1):
		return fmt.Sprintf("<%g", b.Max)
	case math.IsInf(b.Max, 1):
		return fmt.Sprintf(">=%g", b.Min)
	}
	return fmt.Sprintf("%g-<%g", b.Min, b.Max)
}

// MarshalJSON leaves out the unbounded ends, which JSON cannot represent.
func (b Band[C]) MarshalJSON() ([]byte, error) {
	out := struct {
		Category C        `json:"category"`
		Min      *float64 `json:"min,omitempty"`
		Max      *float64 `json:"max,omitempty"`
		Range    string   `json:"range"`
	}{Category: b.Category, Range: b.Range()}
	if !math.IsInf(b.Min, 0) {
		out.Min = &b.Min
	}
	if !math.IsInf(b.Max, 0) {
		out.Max = &b.Max
	}
	return json.Marshal(out)
}

var (
	maleBodyFat = []Band[BodyFatCategory]{
		{EssentialFat, math.Inf(-1), 6},
		{Athletes, 6, 14},
		{Fitness, 14, 18},
		{Average, 18, 25},
		{ObeseFat, 25, math.Inf(1)},
	}
	femaleBodyFat = []Band[BodyFatCategory]{
		{EssentialFat, math.Inf(-1), 14},
		{Athletes, 14, 21},
		{Fitness, 21, 25},
		{Average, 25, 32},
		{ObeseFat, 32, math.Inf(1)},
	}
	bmiBands = []Band[BMICategory]{
		{Underweight, math.Inf(-1), 18.5},
		{NormalWeight, 18.5, 25},
		{Overweight, 25, 30},
		{ObeseBMI, 30, math.Inf(1)},
	}
)

// BodyFatBands returns a copy of the body fat table for g.
func BodyFatBands(g spec.Gender) []Band[BodyFatCategory] {
	if g == spec.Female {
		return append([]Band[BodyFatCategory](nil), femaleBodyFat...)
	}
	return append([]Band[BodyFatCategory](nil), maleBodyFat...)
}

// BMIBands returns a copy of the BMI table.
func BMIBands() []Band[BMICategory] {
	return append([]Band[BMICategory](nil), bmiBands...)
}

// BodyFat returns the body fat category for pct. Any gender other than
// female uses the male table.
func BodyFat(g spec.Gender, pct float64) BodyFatCategory {
	bands := maleBodyFat
	if g == spec.Female {
		bands = femaleBodyFat
	}
	return lookup(bands, pct)
}

// BMI returns the BMI category for bmi.
func BMI(bmi float64) BMICategory {
	return lookup(bmiBands, bmi)
}

func lookup[C ~string](bands []Band[C], v float64) C {
	for _, b := range bands[:len(bands)-1] {
		if v < b.Max {
			return b.Category
		}
	}
	return bands[len(bands)-1].Category
}
