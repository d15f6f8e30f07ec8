package service

import (
	"testing"

	"github.com/KashAmir418/Numerio-sub000/internal/domain"
)

func forecastProfile(personalYear, personalDay, universalDay, attitude int) domain.NumericProfile {
	return domain.NumericProfile{
		Attitude: attitude,
		Forecast: domain.Forecast{
			PersonalYear: personalYear,
			PersonalDay:  personalDay,
			UniversalDay: universalDay,
		},
	}
}

func TestComputeSynergy_Branches(t *testing.T) {
	if s := computeSynergy(forecastProfile(5, 1, 1, 1), forecastProfile(5, 1, 1, 1)); s.Score != 90 {
		t.Fatalf("equal personal years: got %d, want 90", s.Score)
	}
	// 4+5 = 9: armonía.
	if s := computeSynergy(forecastProfile(4, 1, 1, 1), forecastProfile(5, 1, 1, 1)); s.Score != 78 {
		t.Fatalf("harmonic sum: got %d, want 78", s.Score)
	}
	// 3+7 = 10 -> 1: fricción generativa.
	if s := computeSynergy(forecastProfile(3, 1, 1, 1), forecastProfile(7, 1, 1, 1)); s.Score != 68 {
		t.Fatalf("generative sum: got %d, want 68", s.Score)
	}
	// 3+8 = 11 -> 2: fuera de fase.
	if s := computeSynergy(forecastProfile(3, 1, 1, 1), forecastProfile(8, 1, 1, 1)); s.Score != 55 {
		t.Fatalf("out of phase: got %d, want 55", s.Score)
	}
}

func TestComputeTiming_BoundedAndDeterministic(t *testing.T) {
	a := forecastProfile(1, 3, 9, 1)
	b := forecastProfile(1, 8, 9, 1)
	first := computeTiming(a, b, "2024-06-15")
	second := computeTiming(a, b, "2024-06-15")
	if first != second {
		t.Fatalf("same day must give identical timing")
	}
	if first.Score < 40 || first.Score > 95 {
		t.Fatalf("timing score %d outside [40,95]", first.Score)
	}
	if first.Text == "" {
		t.Fatalf("timing text must not be empty")
	}
}

func TestComputeAttitude_Branches(t *testing.T) {
	if s := computeAttitude(forecastProfile(1, 1, 1, 4), forecastProfile(1, 1, 1, 4)); s.Score != 85 {
		t.Fatalf("equal attitudes: got %d", s.Score)
	}
	if s := computeAttitude(forecastProfile(1, 1, 1, 2), forecastProfile(1, 1, 1, 4)); s.Score != 70 {
		t.Fatalf("same parity: got %d", s.Score)
	}
	if s := computeAttitude(forecastProfile(1, 1, 1, 3), forecastProfile(1, 1, 1, 4)); s.Score != 50 {
		t.Fatalf("opposed parity: got %d", s.Score)
	}
}
