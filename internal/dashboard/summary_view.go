package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/salesmap-dashboard/infrastructure/integrator/posbackend"
	posdomain "github.com/vfg2006/salesmap-dashboard/infrastructure/integrator/posbackend/domain"
	"github.com/vfg2006/salesmap-dashboard/internal/animation"
	"github.com/vfg2006/salesmap-dashboard/internal/credential"
	"github.com/vfg2006/salesmap-dashboard/internal/domain"
	"github.com/vfg2006/salesmap-dashboard/pkg/log"
)

// SummaryView busca o resumo uma única vez por montagem e passa de Loading para Loaded
// quando a busca termina, com sucesso ou não.
//
// Cada montagem recebe uma geração e um contexto cancelável. Unmount cancela a
// requisição e avança a geração, então uma resposta atrasada é descartada.
type SummaryView struct {
	fetcher    posbackend.SummaryIntegrator
	credential credential.Provider
	animation  animation.Settings
	onChange   func(Snapshot)

	mu         sync.Mutex
	mounted    bool
	generation uint64
	state      State
	outcome    Outcome
	summary    *domain.SalesSummary
	err        error
	rejected   bool
	cancel     context.CancelFunc
	settled    chan struct{}
}

// Option configura uma SummaryView
type Option func(*SummaryView)

// WithAnimation define duração e quadros por segundo da contagem dos cards
func WithAnimation(settings animation.Settings) Option {
	return func(v *SummaryView) {
		v.animation = settings
	}
}

// WithOnChange registra uma função chamada a cada mudança de estado
func WithOnChange(fn func(Snapshot)) Option {
	return func(v *SummaryView) {
		v.onChange = fn
	}
}

func NewSummaryView(fetcher posbackend.SummaryIntegrator, provider credential.Provider, opts ...Option) *SummaryView {
	if provider == nil {
		provider = credential.Static("")
	}

	v := &SummaryView{
		fetcher:    fetcher,
		credential: provider,
		animation:  animation.DefaultSettings(),
		state:      StateLoading,
		outcome:    OutcomePending,
		settled:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Mount inicia a busca do resumo. Chamadas repetidas enquanto montada não disparam
// outra requisição.
func (v *SummaryView) Mount(ctx context.Context) {
	v.mu.Lock()
	if v.mounted {
		v.mu.Unlock()
		return
	}

	v.mounted = true
	v.generation++
	generation := v.generation

	v.state = StateLoading
	v.outcome = OutcomePending
	v.summary = nil
	v.err = nil
	v.rejected = false
	if isClosed(v.settled) {
		v.settled = make(chan struct{})
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	snapshot := v.snapshotLocked()
	v.mu.Unlock()

	log.ForContext(ctx).WithField(log.FieldGeneration, generation).Debug("dashboard: montando resumo de vendas")
	v.notify(snapshot)

	go v.load(fetchCtx, generation)
}

// Unmount descarta a tela. A requisição em andamento é cancelada e sua resposta ignorada.
func (v *SummaryView) Unmount() {
	v.mu.Lock()
	if !v.mounted {
		v.mu.Unlock()
		return
	}

	v.mounted = false
	v.generation++
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.summary = nil
	closeOnce(v.settled)
	snapshot := v.snapshotLocked()
	v.mu.Unlock()

	v.notify(snapshot)
}

// Settled é fechado quando a busca da montagem atual termina ou a tela é desmontada
func (v *SummaryView) Settled() <-chan struct{} {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.settled
}

// Wait bloqueia até a busca terminar ou o contexto acabar. Retorna true se a tela
// chegou a Loaded.
func (v *SummaryView) Wait(ctx context.Context) bool {
	select {
	case <-v.Settled():
	case <-ctx.Done():
	}
	return v.Snapshot().State == StateLoaded
}

// Snapshot devolve uma cópia do estado atual
func (v *SummaryView) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

// Render devolve três placeholders enquanto carrega e os cards depois.
// Falha é exibida como cards zerados, mas o Outcome continua registrado.
func (v *SummaryView) Render() Rendering {
	snapshot := v.Snapshot()
	if snapshot.State == StateLoading {
		return LoadingRendering()
	}

	return Rendering{
		State:   snapshot.State,
		Outcome: snapshot.Outcome,
		Cards:   BuildCards(snapshot.Summary, v.animation),
	}
}

func (v *SummaryView) load(ctx context.Context, generation uint64) {
	start := time.Now()

	var (
		summary *domain.SalesSummary
		err     error
	)

	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic durante a busca: %v", r)
			}
		}()

		token := v.credential.Token(ctx)
		summary, err = v.fetcher.GetSummary(ctx, token)
	}()

	v.complete(ctx, generation, summary, err, time.Since(start))
}

func (v *SummaryView) complete(ctx context.Context, generation uint64, summary *domain.SalesSummary, err error, elapsed time.Duration) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		log.FieldGeneration: generation,
		log.FieldDurationMs: elapsed.Milliseconds(),
	})

	v.mu.Lock()
	if !v.mounted || generation != v.generation {
		v.mu.Unlock()
		logger.Debug("dashboard: resposta de uma montagem antiga descartada")
		return
	}

	v.state = StateLoaded
	switch {
	case err != nil:
		v.outcome = OutcomeFailed
		v.err = fmt.Errorf("%w: %w", ErrFetchFailed, err)
		v.rejected = isCredentialRejected(err)
		v.summary = nil
	case summary.IsEmpty():
		v.outcome = OutcomeEmpty
		v.summary = nil
	default:
		v.outcome = OutcomeData
		v.summary = summary.Clone()
	}

	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	closeOnce(v.settled)
	snapshot := v.snapshotLocked()
	v.mu.Unlock()

	logger = logger.WithField(log.FieldOutcome, snapshot.Outcome)
	switch {
	case snapshot.CredentialRejected:
		logger.WithError(snapshot.Err).Warn("dashboard: token recusado pelo backend do PDV, exibindo cards zerados")
	case snapshot.Err != nil:
		logger.WithError(snapshot.Err).Warn("dashboard: falha ao carregar o resumo, exibindo cards zerados")
	default:
		logger.Debug("dashboard: resumo carregado")
	}

	v.notify(snapshot)
}

func (v *SummaryView) snapshotLocked() Snapshot {
	return Snapshot{
		Generation: v.generation,
		Mounted:    v.mounted,
		State:      v.state,
		Outcome:    v.outcome,
		Summary:    v.summary.Clone(),
		Err:        v.err,

		CredentialRejected: v.rejected,
	}
}

func (v *SummaryView) notify(snapshot Snapshot) {
	if v.onChange != nil {
		v.onChange(snapshot)
	}
}

// isCredentialRejected indica que o backend respondeu 401 ou 403
func isCredentialRejected(err error) bool {
	var statusErr *posdomain.StatusError
	return errors.As(err, &statusErr) && statusErr.IsUnauthorized()
}

func isClosed(ch chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func closeOnce(ch chan struct{}) {
	if !isClosed(ch) {
		close(ch)
	}
}
