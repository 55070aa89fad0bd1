package posbackend

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	posdomain "github.com/vfg2006/salesmap-dashboard/infrastructure/integrator/posbackend/domain"
	"github.com/vfg2006/salesmap-dashboard/infrastructure/integrator/posbackend/posclient"
	"github.com/vfg2006/salesmap-dashboard/internal/domain"
	"github.com/vfg2006/salesmap-dashboard/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// SummaryIntegrator busca o resumo de vendas no backend do PDV
type SummaryIntegrator interface {
	GetSummary(ctx context.Context, token string) (*domain.SalesSummary, error)
}

type POSService struct {
	Client posclient.Client
}

func New(client posclient.Client) SummaryIntegrator {
	return &POSService{
		Client: client,
	}
}

func (s *POSService) GetSummary(ctx context.Context, token string) (*domain.SalesSummary, error) {
	start := time.Now()

	resp, err := s.Client.GetSummary(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "summary: falha ao buscar resumo no backend do PDV")
	}

	summary := FactorySalesSummary(resp)

	logrus.WithFields(logrus.Fields{
		"duration_ms": time.Since(start).Milliseconds(),
		"today":       summary.Today != nil,
		"this_week":   summary.ThisWeek != nil,
		"this_month":  summary.ThisMonth != nil,
	}).Debug("summary: resumo recebido do backend do PDV")

	return summary, nil
}

// FactorySalesSummary converte a resposta do backend para o domínio.
// Períodos ausentes continuam nil; valores negativos ou não finitos viram zero.
func FactorySalesSummary(resp posdomain.SummaryResponse) *domain.SalesSummary {
	return &domain.SalesSummary{
		Today:     factoryPeriodTotals(resp.Today),
		ThisWeek:  factoryPeriodTotals(resp.ThisWeek),
		ThisMonth: factoryPeriodTotals(resp.ThisMonth),
	}
}

func factoryPeriodTotals(p *posdomain.PeriodTotals) *domain.PeriodTotals {
	if p == nil {
		return nil
	}

	return &domain.PeriodTotals{
		TotalSales:    salesCount(p.TotalSales),
		TotalEarnings: nonNegative(p.TotalEarnings),
	}
}

// salesCount arredonda a quantidade de vendas; valores enormes saturam em math.MaxInt
func salesCount(v *float64) int {
	return utils.RoundToInt(nonNegative(v))
}

func nonNegative(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return 0
	}
	return *v
}
