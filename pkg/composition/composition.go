package composition

// Metrics are the quantities derived from weight, height and body fat.
type Metrics struct {
	BMI            float64 `json:"bmi"`
	FatMassKg      float64 `json:"fat_mass_kg"`
	LeanBodyMassKg float64 `json:"lean_body_mass_kg"`
}

// Derive computes BMI, fat mass and lean body mass. Lean mass is taken as the
// remainder so that LeanBodyMassKg + FatMassKg reproduces weightKg.
func Derive(weightKg, heightCm, bodyFatPercent float64) Metrics {
	heightM := heightCm / 100
	fat := weightKg * bodyFatPercent / 100
	return Metrics{
		BMI:            weightKg / (heightM * heightM),
		FatMassKg:      fat,
		LeanBodyMassKg: weightKg - fat,
	}
}
