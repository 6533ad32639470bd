package score

// clamp bounds a score to the canonical [0, 100] scale.
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// normalizeGrade maps a grade-level metric onto [0, 100] with a banded
// linear decline: values at or below idealLow score 100, values inside
// the ideal band score 90, values at or beyond maxHard score 0, and the
// stretch between the band and the ceiling decays linearly from 90.
func normalizeGrade(value, idealLow, idealHigh, maxHard float64) float64 {
	if value <= idealLow {
		return 100
	}
	if value <= idealHigh {
		return 90
	}
	if value >= maxHard {
		return 0
	}
	return 90 * (1 - (value-idealHigh)/(maxHard-idealHigh))
}
