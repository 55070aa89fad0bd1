package dashboard

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salesmap-dashboard/internal/animation"
	"github.com/vfg2006/salesmap-dashboard/internal/domain"
)

func TestBuildCards(t *testing.T) {
	settings := animation.Settings{Duration: time.Second, FPS: 10}

	cards := BuildCards(fullSummary(), settings)
	require.Len(t, cards, 3)

	assert.Equal(t, []string{"Today's Summary", "Weekly Summary", "Monthly Summary"},
		[]string{cards[0].Title, cards[1].Title, cards[2].Title})
	assert.Equal(t, domain.PeriodThisMonth, cards[2].Period)

	for _, card := range cards {
		assert.Len(t, card.SalesFrames, 11, card.Title)
		assert.Len(t, card.EarningsFrames, 11, card.Title)
		assert.Equal(t, card.TotalSales, card.SalesFrames[10], card.Title)
		assert.Equal(t, card.TotalEarnings, card.EarningsFrames[10], card.Title)
		assert.Equal(t, int64(1000), card.DurationMs)

		for i := 1; i < len(card.SalesFrames); i++ {
			assert.GreaterOrEqual(t, card.SalesFrames[i], card.SalesFrames[i-1])
			assert.GreaterOrEqual(t, card.EarningsFrames[i], card.EarningsFrames[i-1])
		}
	}
}

func TestBuildCards_NilSummary(t *testing.T) {
	cards := BuildCards(nil, animation.DefaultSettings())
	require.Len(t, cards, 3)

	for _, card := range cards {
		assert.Zero(t, card.TotalSales)
		assert.Zero(t, card.TotalEarnings)
		assert.Equal(t, "0", card.Sales())
		assert.Equal(t, "0", card.Earnings())
	}
}

func TestBuildCards_HugeSalesStayNonNegative(t *testing.T) {
	summary := &domain.SalesSummary{Today: &domain.PeriodTotals{TotalSales: math.MaxInt}}

	cards := BuildCards(summary, animation.Settings{Duration: time.Second, FPS: 10})

	frames := cards[0].SalesFrames
	require.NotEmpty(t, frames)
	assert.Equal(t, math.MaxInt, frames[len(frames)-1])
	for i, v := range frames {
		assert.GreaterOrEqual(t, v, 0, "quadro %d", i)
	}
}

func TestBuildCards_WithoutAnimation(t *testing.T) {
	cards := BuildCards(fullSummary(), animation.Settings{})

	assert.Equal(t, []int{5}, cards[0].SalesFrames)
	assert.Equal(t, []float64{120.5}, cards[0].EarningsFrames)
	assert.Equal(t, "0", cards[0].FrameInterval())
}

func TestCard_TemplateHelpers(t *testing.T) {
	card := Card{
		TotalSales:     5,
		TotalEarnings:  120.5,
		SalesFrames:    []int{0, 3, 5},
		EarningsFrames: []float64{0, 90.25, 120.5},
		DurationMs:     100,
	}

	assert.Equal(t, "5", card.Sales())
	assert.Equal(t, "120.5", card.Earnings())
	assert.Equal(t, "[0,3,5]", card.SalesFramesJSON())
	assert.Equal(t, "[0,90.25,120.5]", card.EarningsFramesJSON())
	assert.Equal(t, "50.000", card.FrameInterval())
}
