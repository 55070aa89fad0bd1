package utils

import "math"

// RoundDecimals arredonda f para a quantidade de casas informada.
// NaN e infinitos viram zero para não vazarem para a tela.
func RoundDecimals(f float64, places int) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	scale := math.Pow10(places)
	return math.Round(f*scale) / scale
}

// RoundToInt arredonda para o inteiro mais próximo saturando nos limites de int.
// float64(math.MaxInt) já não cabe em int, por isso as comparações usam >= e <=.
func RoundToInt(f float64) int {
	switch rounded := math.Round(f); {
	case math.IsNaN(rounded):
		return 0
	case rounded >= float64(math.MaxInt):
		return math.MaxInt
	case rounded <= float64(math.MinInt):
		return math.MinInt
	default:
		return int(rounded)
	}
}
