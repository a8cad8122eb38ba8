package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ChicagoDave/bodycomp/pkg/spec"
	"github.com/ChicagoDave/bodycomp/pkg/units"
)

// ParseFields builds a raw record from text values keyed by logical field
// name, as collected by a form. Empty values are left as zero so that
// ValidateInput reports them as missing; non-numeric values are reported here.
// Gender and unit selectors are only normalized, ValidateInput checks them.
func ParseFields(fields map[string]string) (spec.RawInput, *Report) {
	r := NewReport()
	raw := spec.RawInput{
		Gender: spec.Gender(strings.ToLower(strings.TrimSpace(fields[spec.FieldGender]))),
	}

	if u := strings.ToLower(strings.TrimSpace(fields[spec.FieldUnits])); u != "" {
		raw.Units = units.System(u)
	}

	targets := []struct {
		field string
		dst   *float64
	}{
		{spec.FieldAge, &raw.Age},
		{spec.FieldHeight, &raw.Height},
		{spec.FieldWeight, &raw.Weight},
		{spec.FieldNeck, &raw.Neck},
		{spec.FieldWaist, &raw.Waist},
		{spec.FieldHip, &raw.Hip},
	}
	for _, tgt := range targets {
		s := strings.TrimSpace(fields[tgt.field])
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			r.AddError(Result{
				Level:       LevelInput,
				Message:     fmt.Sprintf("%s must be numeric", tgt.field),
				Field:       tgt.field,
				ActualValue: s,
				Expected:    "a number",
			})
			continue
		}
		*tgt.dst = v
	}

	return raw, r
}

// ValidateFields parses form text and validates the resulting record in one
// pass. A field that failed to parse is not reported a second time as missing.
func ValidateFields(fields map[string]string) (spec.RawInput, *Report) {
	raw, parsed := ParseFields(fields)
	checked := ValidateInput(&raw)

	for _, e := range checked.Errors {
		if !parsed.HasError(e.Field) {
			parsed.AddError(e)
		}
	}
	for _, w := range checked.Warnings {
		parsed.AddWarning(w)
	}
	for _, i := range checked.Info {
		parsed.AddInfo(i)
	}
	return raw, parsed
}
