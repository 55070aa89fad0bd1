package posbackend

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	posdomain "github.com/vfg2006/salesmap-dashboard/infrastructure/integrator/posbackend/domain"
	"github.com/vfg2006/salesmap-dashboard/infrastructure/integrator/posbackend/posclient/mocks"
	"github.com/vfg2006/salesmap-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestPOSService_GetSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := New(client)

	client.EXPECT().
		GetSummary(gomock.Any(), "raw-token").
		Return(posdomain.SummaryResponse{
			Today:    &posdomain.PeriodTotals{TotalSales: floatPtr(5), TotalEarnings: floatPtr(120.5)},
			ThisWeek: &posdomain.PeriodTotals{TotalSales: floatPtr(12)},
		}, nil).
		Times(1)

	summary, err := service.GetSummary(context.Background(), "raw-token")
	require.NoError(t, err)

	assert.Equal(t, &domain.PeriodTotals{TotalSales: 5, TotalEarnings: 120.5}, summary.Today)
	assert.Equal(t, &domain.PeriodTotals{TotalSales: 12, TotalEarnings: 0}, summary.ThisWeek)
	assert.Nil(t, summary.ThisMonth)
}

func TestPOSService_GetSummaryWrapsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cause := &posdomain.StatusError{StatusCode: 502, Status: "502 Bad Gateway"}
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().GetSummary(gomock.Any(), gomock.Any()).Return(posdomain.SummaryResponse{}, cause)

	summary, err := New(client).GetSummary(context.Background(), "")
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), "falha ao buscar resumo")
	assert.True(t, errors.Is(err, posdomain.ErrUnexpectedStatus))
}

func TestFactorySalesSummary(t *testing.T) {
	tests := []struct {
		name string
		in   posdomain.SummaryResponse
		want *domain.SalesSummary
	}{
		{
			name: "resposta vazia mantém períodos ausentes",
			in:   posdomain.SummaryResponse{},
			want: &domain.SalesSummary{},
		},
		{
			name: "quantidade fracionada é arredondada",
			in: posdomain.SummaryResponse{
				ThisMonth: &posdomain.PeriodTotals{TotalSales: floatPtr(2.6), TotalEarnings: floatPtr(10)},
			},
			want: &domain.SalesSummary{
				ThisMonth: &domain.PeriodTotals{TotalSales: 3, TotalEarnings: 10},
			},
		},
		{
			name: "valores negativos ou inválidos viram zero",
			in: posdomain.SummaryResponse{
				Today: &posdomain.PeriodTotals{TotalSales: floatPtr(-4), TotalEarnings: floatPtr(math.NaN())},
			},
			want: &domain.SalesSummary{
				Today: &domain.PeriodTotals{},
			},
		},
		{
			name: "quantidade acima de MaxInt satura em vez de ficar negativa",
			in: posdomain.SummaryResponse{
				ThisWeek:  &posdomain.PeriodTotals{TotalSales: floatPtr(1e300), TotalEarnings: floatPtr(1)},
				ThisMonth: &posdomain.PeriodTotals{TotalSales: floatPtr(float64(math.MaxInt)), TotalEarnings: floatPtr(1)},
			},
			want: &domain.SalesSummary{
				ThisWeek:  &domain.PeriodTotals{TotalSales: math.MaxInt, TotalEarnings: 1},
				ThisMonth: &domain.PeriodTotals{TotalSales: math.MaxInt, TotalEarnings: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FactorySalesSummary(tt.in))
		})
	}
}
