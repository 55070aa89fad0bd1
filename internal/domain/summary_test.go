package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSalesSummary_TotalsDefaultsMissingToZero(t *testing.T) {
	s := &SalesSummary{
		Today:     &PeriodTotals{TotalSales: 5, TotalEarnings: 120.5},
		ThisMonth: &PeriodTotals{TotalSales: 40, TotalEarnings: 999.9},
	}

	assert.Equal(t, PeriodTotals{TotalSales: 5, TotalEarnings: 120.5}, s.Totals(PeriodToday))
	assert.Equal(t, PeriodTotals{}, s.Totals(PeriodThisWeek))
	assert.Equal(t, PeriodTotals{TotalSales: 40, TotalEarnings: 999.9}, s.Totals(PeriodThisMonth))

	var absent *SalesSummary
	assert.Equal(t, PeriodTotals{}, absent.Totals(PeriodToday))
}

func TestSalesSummary_IsEmpty(t *testing.T) {
	var absent *SalesSummary
	assert.True(t, absent.IsEmpty())
	assert.True(t, (&SalesSummary{}).IsEmpty())
	assert.False(t, (&SalesSummary{ThisWeek: &PeriodTotals{}}).IsEmpty())
}

func TestSalesSummary_CloneDoesNotShareState(t *testing.T) {
	original := &SalesSummary{Today: &PeriodTotals{TotalSales: 1, TotalEarnings: 2}}

	clone := original.Clone()
	clone.Today.TotalSales = 99

	assert.Equal(t, 1, original.Today.TotalSales)
	assert.Nil(t, clone.ThisWeek)
	assert.Nil(t, (*SalesSummary)(nil).Clone())
}

func TestNewSummarySnapshot(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	snap := NewSummarySnapshot("abc123", now, &SalesSummary{
		ThisWeek: &PeriodTotals{TotalSales: 7, TotalEarnings: 70},
	})

	assert.Equal(t, "abc123", snap.ID)
	assert.Equal(t, now, snap.CapturedAt)
	assert.Equal(t, PeriodTotals{}, snap.Today)
	assert.Equal(t, PeriodTotals{TotalSales: 7, TotalEarnings: 70}, snap.ThisWeek)
	assert.Equal(t, PeriodTotals{}, snap.ThisMonth)
}
