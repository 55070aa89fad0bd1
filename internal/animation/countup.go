package animation

import (
	"math"
	"time"

	"github.com/vfg2006/salesmap-dashboard/pkg/utils"
)

// Settings são os parâmetros comuns a todos os contadores de uma renderização
type Settings struct {
	Duration time.Duration
	FPS      int
}

// DefaultSettings replica o contador do dashboard: 2 segundos a 30 quadros por segundo
func DefaultSettings() Settings {
	return Settings{Duration: 2 * time.Second, FPS: 30}
}

// CountUp descreve um contador que vai de From até To em Duration
type CountUp struct {
	From     float64
	To       float64
	Duration time.Duration
	Ease     Easing
}

// NewCountUp cria o contador padrão: de zero até o alvo com EaseOut
func NewCountUp(target float64, settings Settings) CountUp {
	return CountUp{
		From:     0,
		To:       target,
		Duration: settings.Duration,
		Ease:     EaseOut,
	}
}

// ValueAt devolve o valor exibido após elapsed. Ao fim da duração o valor é exatamente To.
func (c CountUp) ValueAt(elapsed time.Duration) float64 {
	if c.Done(elapsed) {
		return c.To
	}
	if elapsed <= 0 {
		return c.From
	}

	ease := c.Ease
	if ease == nil {
		ease = Linear
	}

	progress := float64(elapsed) / float64(c.Duration)
	return c.From + (c.To-c.From)*ease(progress)
}

// Done indica se a animação terminou
func (c CountUp) Done(elapsed time.Duration) bool {
	return c.Duration <= 0 || elapsed >= c.Duration
}

// Frames amostra o contador a fps quadros por segundo.
// A sequência começa em From, é monótona na direção de To e termina exatamente em To.
func (c CountUp) Frames(fps int) []float64 {
	if fps <= 0 || c.Duration <= 0 {
		return []float64{c.To}
	}

	count := int(math.Ceil(c.Duration.Seconds() * float64(fps)))
	if count < 1 {
		count = 1
	}

	ascending := c.To >= c.From
	frames := make([]float64, 0, count+1)
	for i := 0; i <= count; i++ {
		elapsed := time.Duration(float64(c.Duration) * float64(i) / float64(count))
		v := c.ValueAt(elapsed)

		// Garante monotonicidade mesmo com erro numérico do solver da curva
		if n := len(frames); n > 0 {
			prev := frames[n-1]
			if ascending && v < prev || !ascending && v > prev {
				v = prev
			}
		}
		frames = append(frames, v)
	}

	frames[len(frames)-1] = c.To
	return frames
}

// IntFrames arredonda os quadros para inteiros, usado na quantidade de vendas
func (c CountUp) IntFrames(fps int) []int {
	raw := c.Frames(fps)
	frames := make([]int, len(raw))
	for i, v := range raw {
		frames[i] = utils.RoundToInt(v)
	}
	return frames
}

// DecimalFrames arredonda os quadros para duas casas, usado no faturamento
func (c CountUp) DecimalFrames(fps int) []float64 {
	raw := c.Frames(fps)
	frames := make([]float64, len(raw))
	for i, v := range raw {
		frames[i] = utils.RoundDecimals(v, 2)
	}
	return frames
}
