package posdomain

import (
	"errors"
	"fmt"
)

// PeriodTotals é o formato de cada período na resposta do backend.
// Ponteiros distinguem "campo ausente" de "zero".
type PeriodTotals struct {
	TotalSales    *float64 `json:"totalSales"`
	TotalEarnings *float64 `json:"totalEarnings"`
}

// SummaryResponse é o corpo de GET /api/bill/bills/summary
type SummaryResponse struct {
	Today     *PeriodTotals `json:"today"`
	ThisWeek  *PeriodTotals `json:"thisWeek"`
	ThisMonth *PeriodTotals `json:"thisMonth"`
}

// ErrorResponse é o corpo de erro devolvido pelo backend, quando existe
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ErrUnexpectedStatus é a causa de toda resposta fora da faixa 2xx
var ErrUnexpectedStatus = errors.New("status inesperado do backend do PDV")

// StatusError carrega o status e a mensagem da resposta que falhou
type StatusError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("requisição falhou com status: %s (%s)", e.Status, e.Message)
	}
	return fmt.Sprintf("requisição falhou com status: %s", e.Status)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// IsUnauthorized indica token ausente, inválido ou expirado
func (e *StatusError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}
