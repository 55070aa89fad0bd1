// Package animation calcula a sequência de valores exibida pelos contadores dos cards.
//
// O pacote não conhece o resumo de vendas: recebe apenas um valor alvo e devolve
// os valores intermediários, o que permite testá-lo isoladamente da busca.
package animation

import "math"

// Easing mapeia o progresso linear [0,1] para o progresso visual [0,1]
type Easing func(t float64) float64

// Linear não aplica nenhuma curva
func Linear(t float64) float64 {
	return clamp01(t)
}

// EaseOut é a curva "easeOut" padrão dos navegadores: cubic-bezier(0, 0, 0.58, 1)
var EaseOut = CubicBezier(0, 0, 0.58, 1)

const (
	newtonIterations = 8
	newtonMinSlope   = 1e-3
	subdivisionEps   = 1e-7
	subdivisionSteps = 30
)

// CubicBezier cria uma curva com pontos de controle (x1,y1) e (x2,y2), como no CSS.
// x1 e x2 devem estar em [0,1] para que a curva seja uma função de x.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	x1 = clamp01(x1)
	x2 = clamp01(x2)

	sampleX := func(t float64) float64 { return bezier(t, x1, x2) }
	sampleY := func(t float64) float64 { return bezier(t, y1, y2) }
	slopeX := func(t float64) float64 { return bezierSlope(t, x1, x2) }

	solveT := func(x float64) float64 {
		// Newton-Raphson converge rápido na maior parte da curva
		t := x
		for i := 0; i < newtonIterations; i++ {
			slope := slopeX(t)
			if math.Abs(slope) < newtonMinSlope {
				break
			}
			diff := sampleX(t) - x
			if math.Abs(diff) < subdivisionEps {
				return t
			}
			t -= diff / slope
		}

		// Bisseção quando a inclinação é pequena demais para Newton
		lo, hi := 0.0, 1.0
		t = x
		for i := 0; i < subdivisionSteps; i++ {
			diff := sampleX(t) - x
			if math.Abs(diff) < subdivisionEps {
				return t
			}
			if diff > 0 {
				hi = t
			} else {
				lo = t
			}
			t = (lo + hi) / 2
		}
		return t
	}

	return func(x float64) float64 {
		x = clamp01(x)
		if x == 0 || x == 1 {
			return x
		}
		return sampleY(solveT(x))
	}
}

// bezier avalia uma coordenada da curva com P0=0 e P3=1
func bezier(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
