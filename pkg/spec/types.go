package spec

import "github.com/ChicagoDave/bodycomp/pkg/units"

// Gender selects which Navy formula branch and category table apply.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Valid reports whether g is a known gender.
func (g Gender) Valid() bool {
	return g == Male || g == Female
}

// Logical field names shared by every input surface (flags, form, YAML, JSON).
const (
	FieldGender = "gender"
	FieldAge    = "age"
	FieldHeight = "height"
	FieldWeight = "weight"
	FieldNeck   = "neck"
	FieldWaist  = "waist"
	FieldHip    = "hip"
	FieldUnits  = "units"
)

// RawInput is a measurement record as entered, in the unit system named by Units.
// Zero means the field was left empty.
type RawInput struct {
	Gender Gender       `yaml:"gender" json:"gender"`
	Age    float64      `yaml:"age" json:"age"`
	Height float64      `yaml:"height" json:"height"`
	Weight float64      `yaml:"weight" json:"weight"`
	Neck   float64      `yaml:"neck" json:"neck"`
	Waist  float64      `yaml:"waist" json:"waist"`
	Hip    float64      `yaml:"hip,omitempty" json:"hip,omitempty"`
	Units  units.System `yaml:"units" json:"units"`
}

// System returns the unit system of the record, defaulting to metric.
func (r RawInput) System() units.System {
	if r.Units == "" {
		return units.Metric
	}
	return r.Units
}

// MeasurementInput is a measurement record in canonical metric units.
type MeasurementInput struct {
	Gender   Gender  `json:"gender"`
	Age      float64 `json:"age,omitempty"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
	NeckCm   float64 `json:"neck_cm"`
	WaistCm  float64 `json:"waist_cm"`
	HipCm    float64 `json:"hip_cm,omitempty"`
}
