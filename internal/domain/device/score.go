package device

import "strings"

// chipTiers maps chip identifiers (upper-cased) to their heuristic tier.
var chipTiers = map[string]float64{
	"M4":  5,
	"M3":  4.5,
	"M2":  4,
	"M1":  3.5,
	"A15": 3,
	"A14": 2.5,
}

// defaultChipTier applies when the chip is unrecognized or empty.
const defaultChipTier = 2

// ChipTier returns the tier for a chip identifier, case-insensitively.
func ChipTier(chip string) float64 {
	if tier, ok := chipTiers[strings.ToUpper(chip)]; ok {
		return tier
	}
	return defaultChipTier
}

// Score computes the comparability score of a record:
// chip tier + 0.2 per display inch + 0.3 for cellular + 0.1 per storage option.
// Pure and deterministic in the record's fields.
func Score(d *Device) float64 {
	score := ChipTier(d.Chip)
	score += d.DisplaySize * 0.2
	if d.IsCellular() {
		score += 0.3
	}
	score += float64(len(d.StorageOptions)) * 0.1
	return score
}
