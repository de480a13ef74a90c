package device

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestChipTier_CaseInsensitive(t *testing.T) {
	if got := ChipTier("M4"); got != 5 {
		t.Errorf("expected tier 5 for M4, got %g", got)
	}
	if got := ChipTier("m4"); got != 5 {
		t.Errorf("expected tier 5 for lowercase m4, got %g", got)
	}
	if got := ChipTier("a14"); got != 2.5 {
		t.Errorf("expected tier 2.5 for a14, got %g", got)
	}
}

func TestChipTier_UnknownDefaultsToTwo(t *testing.T) {
	for _, chip := range []string{"", "Snapdragon", "M99"} {
		if got := ChipTier(chip); got != 2 {
			t.Errorf("expected default tier 2 for %q, got %g", chip, got)
		}
	}
}

func TestScore_WorkedExample(t *testing.T) {
	a := Device{
		Chip:           "M4",
		DisplaySize:    11,
		Cellular:       boolPtr(true),
		StorageOptions: []int{256, 512, 1024},
	}
	b := Device{
		Chip:           "A14",
		DisplaySize:    10.9,
		Cellular:       boolPtr(true),
		StorageOptions: []int{64, 256},
	}

	if got := Score(&a); !almostEqual(got, 7.8) {
		t.Errorf("score(a) = %g, want 7.8", got)
	}
	if got := Score(&b); !almostEqual(got, 5.18) {
		t.Errorf("score(b) = %g, want 5.18", got)
	}
}

func TestScore_NoCellularNoStorage(t *testing.T) {
	d := Device{Chip: "M1", DisplaySize: 10}
	// 3.5 + 2.0, no cellular bonus, no storage options
	if got := Score(&d); !almostEqual(got, 5.5) {
		t.Errorf("score = %g, want 5.5", got)
	}
}

func TestScore_CaseInsensitiveChipEquivalence(t *testing.T) {
	upper := Device{Chip: "M4", DisplaySize: 11, StorageOptions: []int{256}}
	lower := Device{Chip: "m4", DisplaySize: 11, StorageOptions: []int{256}}
	if Score(&upper) != Score(&lower) {
		t.Errorf("expected identical scores for M4 and m4, got %g and %g", Score(&upper), Score(&lower))
	}
}

func boolPtr(b bool) *bool { return &b }
