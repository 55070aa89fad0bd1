// Package dashboard contém a tela de resumo de vendas: o ciclo de vida da busca
// e a montagem dos cards exibidos.
package dashboard

import (
	"errors"

	"github.com/vfg2006/salesmap-dashboard/internal/domain"
)

// State é o estado de exibição da tela
type State string

const (
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
)

// Outcome diz como a busca terminou. Só é diferente de OutcomePending em StateLoaded.
type Outcome string

const (
	OutcomePending Outcome = "pending"
	OutcomeData    Outcome = "data"
	OutcomeEmpty   Outcome = "empty"
	OutcomeFailed  Outcome = "failed"
)

// SkeletonCount é o número de placeholders exibidos enquanto a busca não termina
const SkeletonCount = 3

// ErrFetchFailed cobre falha de rede, status fora de 2xx e corpo inválido, sem distinção
var ErrFetchFailed = errors.New("dashboard: falha ao buscar o resumo de vendas")

// Snapshot é uma cópia do estado da tela em um instante
type Snapshot struct {
	Generation uint64
	Mounted    bool
	State      State
	Outcome    Outcome
	Summary    *domain.SalesSummary
	Err        error

	// CredentialRejected é verdadeiro quando a falha foi um 401 ou 403 do backend
	CredentialRejected bool
}

// Rendering é o que a tela mostra: placeholders enquanto carrega, cards depois
type Rendering struct {
	State     State   `json:"state"`
	Outcome   Outcome `json:"outcome"`
	Skeletons int     `json:"skeletons"`
	Cards     []Card  `json:"cards"`
}

// Loading indica se a renderização ainda mostra placeholders
func (r Rendering) Loading() bool {
	return r.State == StateLoading
}

// SkeletonSlots facilita o range no template dos placeholders
func (r Rendering) SkeletonSlots() []int {
	slots := make([]int, r.Skeletons)
	for i := range slots {
		slots[i] = i
	}
	return slots
}

// LoadingRendering é a renderização inicial, usada antes de qualquer montagem
func LoadingRendering() Rendering {
	return Rendering{
		State:     StateLoading,
		Outcome:   OutcomePending,
		Skeletons: SkeletonCount,
	}
}
