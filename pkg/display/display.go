// Package display formats calculation results for people: one decimal place,
// a percent sign on body fat and a mass unit label matching the active
// unit system.
package display

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ChicagoDave/bodycomp/pkg/calc"
	"github.com/ChicagoDave/bodycomp/pkg/units"
)

// Options controls how masses are shown.
type Options struct {
	// ConvertMass shows lean and fat mass in pounds when the imperial system
	// is active. Without it the kilogram figures are shown under the "lbs"
	// label.
	ConvertMass bool `yaml:"convert_mass" json:"convert_mass"`
}

// Summary is a result rendered to display strings.
type Summary struct {
	BodyFat         string `json:"body_fat"`
	BodyFatCategory string `json:"body_fat_category"`
	BMI             string `json:"bmi"`
	BMICategory     string `json:"bmi_category"`
	LeanBodyMass    string `json:"lean_body_mass"`
	FatMass         string `json:"fat_mass"`
	MassUnit        string `json:"mass_unit"`
}

// Summarize renders res for the unit system it was computed in.
func Summarize(res calc.Result, opts Options) Summary {
	sys := res.Units
	if sys == "" {
		sys = units.Metric
	}

	lean, fat := res.LeanBodyMassKg, res.FatMassKg
	if opts.ConvertMass {
		lean, fat = units.KgToMass(lean, sys), units.KgToMass(fat, sys)
	}

	return Summary{
		BodyFat:         fixed1(res.BodyFatPercent) + "%",
		BodyFatCategory: string(res.BodyFatCategory),
		BMI:             fixed1(res.BMI),
		BMICategory:     string(res.BMICategory),
		LeanBodyMass:    fixed1(lean),
		FatMass:         fixed1(fat),
		MassUnit:        sys.MassLabel(),
	}
}

// WriteText prints s as an aligned plain-text block.
func WriteText(w io.Writer, s Summary) error {
	_, err := fmt.Fprintf(w,
		"Body fat:        %s (%s)\nBMI:             %s (%s)\nLean body mass:  %s %s\nFat mass:        %s %s\n",
		s.BodyFat, s.BodyFatCategory,
		s.BMI, s.BMICategory,
		s.LeanBodyMass, s.MassUnit,
		s.FatMass, s.MassUnit)
	return err
}

// Markdown renders s as a two-column Markdown table.
func Markdown(s Summary) string {
	var b strings.Builder
	b.WriteString("| Measure | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Body fat | %s |\n", s.BodyFat)
	fmt.Fprintf(&b, "| Body fat category | %s |\n", s.BodyFatCategory)
	fmt.Fprintf(&b, "| BMI | %s |\n", s.BMI)
	fmt.Fprintf(&b, "| BMI category | %s |\n", s.BMICategory)
	fmt.Fprintf(&b, "| Lean body mass | %s %s |\n", s.LeanBodyMass, s.MassUnit)
	fmt.Fprintf(&b, "| Fat mass | %s %s |\n", s.FatMass, s.MassUnit)
	return b.String()
}

// fixed1 formats v with one decimal. Values exactly halfway between two
// tenths round away from zero; everything else rounds to the nearest tenth.
func fixed1(v float64) string {
	// Only multiples of 0.25 with an odd quarter count sit exactly on a
	// half tenth.
	if q := v * 4; !math.IsInf(v, 0) && q == math.Trunc(q) && math.Mod(q, 2) != 0 {
		v = math.Copysign(math.Floor(math.Abs(v)*10+0.5)/10, v)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
