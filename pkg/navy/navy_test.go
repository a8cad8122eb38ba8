package navy

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/ChicagoDave/bodycomp/pkg/spec"
)

const tolerance = 0.05

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestBodyFatMale(t *testing.T) {
	m := spec.MeasurementInput{Gender: spec.Male, HeightCm: 180, WeightKg: 80, NeckCm: 38, WaistCm: 85}
	est, err := BodyFat(m)
	if err != nil {
		t.Fatalf("BodyFat: %v", err)
	}
	want := 86.010*math.Log10(47) - 70.041*math.Log10(180) + 36.76
	if est.Raw != want {
		t.Errorf("raw = %v, want exactly %v", est.Raw, want)
	}
	if !approxEqual(est.Percent, 22.6, tolerance) {
		t.Errorf("percent = %.3f, want ~22.6", est.Percent)
	}
	if est.Clamped {
		t.Error("in-range estimate should not be clamped")
	}
}

func TestBodyFatFemale(t *testing.T) {
	m := spec.MeasurementInput{Gender: spec.Female, HeightCm: 165, WeightKg: 60, NeckCm: 32, WaistCm: 70, HipCm: 95}
	est, err := BodyFat(m)
	if err != nil {
		t.Fatalf("BodyFat: %v", err)
	}
	want := 163.205*math.Log10(133) - 97.684*math.Log10(165) - 78.387
	if est.Raw != want {
		t.Errorf("raw = %v, want exactly %v", est.Raw, want)
	}
	if !approxEqual(est.Percent, 51.6, tolerance) {
		t.Errorf("percent = %.3f, want ~51.6", est.Percent)
	}
}

func TestBodyFatClamps(t *testing.T) {
	tests := []struct {
		name string
		m    spec.MeasurementInput
		want float64
	}{
		{"low", spec.MeasurementInput{Gender: spec.Male, HeightCm: 200, NeckCm: 40, WaistCm: 50}, MinBodyFatPercent},
		{"high", spec.MeasurementInput{Gender: spec.Male, HeightCm: 140, NeckCm: 30, WaistCm: 200}, MaxBodyFatPercent},
		{"female low", spec.MeasurementInput{Gender: spec.Female, HeightCm: 190, NeckCm: 40, WaistCm: 40, HipCm: 50}, MinBodyFatPercent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est, err := BodyFat(tt.m)
			if err != nil {
				t.Fatalf("BodyFat: %v", err)
			}
			if est.Percent != tt.want {
				t.Errorf("percent = %v (raw %v), want %v", est.Percent, est.Raw, tt.want)
			}
			if !est.Clamped {
				t.Error("expected Clamped")
			}
		})
	}
}

func TestBodyFatDomainError(t *testing.T) {
	tests := []struct {
		name string
		m    spec.MeasurementInput
		arg  float64
	}{
		{"male waist equals neck", spec.MeasurementInput{Gender: spec.Male, HeightCm: 180, NeckCm: 40, WaistCm: 40}, 0},
		{"male neck larger", spec.MeasurementInput{Gender: spec.Male, HeightCm: 180, NeckCm: 45, WaistCm: 40}, -5},
		{"female", spec.MeasurementInput{Gender: spec.Female, HeightCm: 160, NeckCm: 100, WaistCm: 30, HipCm: 40}, -30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BodyFat(tt.m)
			if !errors.Is(err, ErrUndefinedLog) {
				t.Fatalf("err = %v, want ErrUndefinedLog", err)
			}
			var de *DomainError
			if !errors.As(err, &de) {
				t.Fatal("expected *DomainError")
			}
			if de.Argument != tt.arg || de.Gender != tt.m.Gender {
				t.Errorf("DomainError = %+v, want argument %v", de, tt.arg)
			}
		})
	}
}

func TestBodyFatRejectsHeight(t *testing.T) {
	for _, h := range []float64{0, -180, math.NaN(), math.Inf(1)} {
		_, err := BodyFat(spec.MeasurementInput{Gender: spec.Male, HeightCm: h, NeckCm: 38, WaistCm: 85})
		if !errors.Is(err, ErrUndefinedLog) {
			t.Errorf("height %v: err = %v, want ErrUndefinedLog", h, err)
		}
	}
}

func TestBodyFatUnknownGender(t *testing.T) {
	if _, err := BodyFat(spec.MeasurementInput{Gender: "x", HeightCm: 1, NeckCm: 1, WaistCm: 2}); err == nil {
		t.Error("expected error for unknown gender")
	}
}

func TestBodyFatAlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		neck := 20 + rng.Float64()*40
		m := spec.MeasurementInput{
			HeightCm: 100 + rng.Float64()*120,
			NeckCm:   neck,
			WaistCm:  neck + 0.01 + rng.Float64()*150,
			HipCm:    50 + rng.Float64()*100,
		}
		m.Gender = spec.Male
		if i%2 == 1 {
			m.Gender = spec.Female
		}
		est, err := BodyFat(m)
		if err != nil {
			t.Fatalf("BodyFat(%+v): %v", m, err)
		}
		if est.Percent < MinBodyFatPercent || est.Percent > MaxBodyFatPercent {
			t.Fatalf("percent %v out of range for %+v", est.Percent, m)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-100, 2}, {2, 2}, {15.4, 15.4}, {60, 60}, {1e9, 60},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
