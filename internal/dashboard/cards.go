package dashboard

import (
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/salesmap-dashboard/internal/animation"
	"github.com/vfg2006/salesmap-dashboard/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var cardTitles = map[domain.Period]string{
	domain.PeriodToday:     "Today's Summary",
	domain.PeriodThisWeek:  "Weekly Summary",
	domain.PeriodThisMonth: "Monthly Summary",
}

// Card é um dos três cards do resumo com a sequência da contagem de cada número
type Card struct {
	Period         domain.Period `json:"period"`
	Title          string        `json:"title"`
	TotalSales     int           `json:"totalSales"`
	TotalEarnings  float64       `json:"totalEarnings"`
	SalesFrames    []int         `json:"salesFrames"`
	EarningsFrames []float64     `json:"earningsFrames"`
	DurationMs     int64         `json:"durationMs"`
}

// BuildCards monta os três cards na ordem de exibição. Resumo nil ou período
// ausente resultam em zeros.
func BuildCards(summary *domain.SalesSummary, settings animation.Settings) []Card {
	cards := make([]Card, 0, len(domain.Periods))
	for _, period := range domain.Periods {
		totals := summary.Totals(period)

		sales := animation.NewCountUp(float64(totals.TotalSales), settings)
		earnings := animation.NewCountUp(totals.TotalEarnings, settings)

		cards = append(cards, Card{
			Period:         period,
			Title:          cardTitles[period],
			TotalSales:     totals.TotalSales,
			TotalEarnings:  totals.TotalEarnings,
			SalesFrames:    sales.IntFrames(settings.FPS),
			EarningsFrames: earnings.DecimalFrames(settings.FPS),
			DurationMs:     settings.Duration.Milliseconds(),
		})
	}
	return cards
}

// Sales é o valor final de vendas formatado para exibição
func (c Card) Sales() string {
	return strconv.Itoa(c.TotalSales)
}

// Earnings é o faturamento final formatado para exibição
func (c Card) Earnings() string {
	return strconv.FormatFloat(c.TotalEarnings, 'f', -1, 64)
}

// SalesFramesJSON serializa os quadros para o atributo data-frames do template
func (c Card) SalesFramesJSON() string {
	return framesJSON(c.SalesFrames)
}

// EarningsFramesJSON serializa os quadros para o atributo data-frames do template
func (c Card) EarningsFramesJSON() string {
	return framesJSON(c.EarningsFrames)
}

func framesJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

// FrameInterval é o intervalo entre quadros em milissegundos
func (c Card) FrameInterval() string {
	frames := len(c.SalesFrames) - 1
	if frames <= 0 || c.DurationMs <= 0 {
		return "0"
	}
	return fmt.Sprintf("%.3f", float64(c.DurationMs)/float64(frames))
}
