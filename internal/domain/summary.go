// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// PeriodTotals representa os totais de um período (hoje, semana, mês)
type PeriodTotals struct {
	TotalSales    int     `json:"totalSales"`
	TotalEarnings float64 `json:"totalEarnings"`
}

// SalesSummary é o resumo de vendas devolvido pelo backend do PDV.
// Um período nil significa que o campo não veio na resposta.
type SalesSummary struct {
	Today     *PeriodTotals `json:"today"`
	ThisWeek  *PeriodTotals `json:"thisWeek"`
	ThisMonth *PeriodTotals `json:"thisMonth"`
}

// Period identifica um dos três intervalos do resumo
type Period string

const (
	PeriodToday     Period = "today"
	PeriodThisWeek  Period = "thisWeek"
	PeriodThisMonth Period = "thisMonth"
)

// Periods mantém a ordem de exibição dos cards
var Periods = []Period{PeriodToday, PeriodThisWeek, PeriodThisMonth}

// Totals devolve os totais do período, com zero quando o campo está ausente
func (s *SalesSummary) Totals(p Period) PeriodTotals {
	if s == nil {
		return PeriodTotals{}
	}

	var totals *PeriodTotals
	switch p {
	case PeriodToday:
		totals = s.Today
	case PeriodThisWeek:
		totals = s.ThisWeek
	case PeriodThisMonth:
		totals = s.ThisMonth
	}

	if totals == nil {
		return PeriodTotals{}
	}
	return *totals
}

// IsEmpty indica que nenhum período veio na resposta
func (s *SalesSummary) IsEmpty() bool {
	return s == nil || (s.Today == nil && s.ThisWeek == nil && s.ThisMonth == nil)
}

// Clone devolve uma cópia profunda, para que o dono do resumo não compartilhe ponteiros
func (s *SalesSummary) Clone() *SalesSummary {
	if s == nil {
		return nil
	}

	clone := &SalesSummary{}
	if s.Today != nil {
		t := *s.Today
		clone.Today = &t
	}
	if s.ThisWeek != nil {
		w := *s.ThisWeek
		clone.ThisWeek = &w
	}
	if s.ThisMonth != nil {
		m := *s.ThisMonth
		clone.ThisMonth = &m
	}
	return clone
}

// SummarySnapshot é uma fotografia do resumo guardada pela sincronização agendada
type SummarySnapshot struct {
	ID         string       `json:"id"`
	CapturedAt time.Time    `json:"captured_at"`
	Today      PeriodTotals `json:"today"`
	ThisWeek   PeriodTotals `json:"this_week"`
	ThisMonth  PeriodTotals `json:"this_month"`
}

// NewSummarySnapshot cria uma fotografia a partir do resumo, com zero nos períodos ausentes
func NewSummarySnapshot(id string, capturedAt time.Time, s *SalesSummary) SummarySnapshot {
	return SummarySnapshot{
		ID:         id,
		CapturedAt: capturedAt,
		Today:      s.Totals(PeriodToday),
		ThisWeek:   s.Totals(PeriodThisWeek),
		ThisMonth:  s.Totals(PeriodThisMonth),
	}
}
