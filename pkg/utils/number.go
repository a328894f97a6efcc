package utils

import "math"

// RoundWithTwoDecimalPlace arredonda notas e percentuais para exibição; NaN e infinitos viram zero
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return math.Round(f*100) / 100
}

// Clamp limita value ao intervalo [min, max]
func Clamp(value, min, max float64) float64 {
	return math.Max(min, math.Min(max, value))
}
