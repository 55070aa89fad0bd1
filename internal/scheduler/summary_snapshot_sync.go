// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salesmap-dashboard/infrastructure/integrator/posbackend"
	"github.com/vfg2006/salesmap-dashboard/infrastructure/repository"
	"github.com/vfg2006/salesmap-dashboard/internal/config"
	"github.com/vfg2006/salesmap-dashboard/internal/credential"
	"github.com/vfg2006/salesmap-dashboard/internal/domain"
	"github.com/vfg2006/salesmap-dashboard/pkg/utils"
)

// ErrSyncRunning indica que já existe uma sincronização em andamento
var ErrSyncRunning = errors.New("sincronização de fotografias já em andamento")

type SummarySnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SummarySnapshotSyncService guarda periodicamente uma fotografia do resumo de vendas
type SummarySnapshotSyncService struct {
	scheduler    *gocron.Scheduler
	summary      posbackend.SummaryIntegrator
	credential   credential.Provider
	snapshotRepo repository.SummarySnapshotRepository
	config       SummarySnapshotSyncConfig
	now          func() time.Time
	newID        func() (string, error)

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSnapshotID      string
	lastError           string
}

func NewSummarySnapshotSyncService(
	summary posbackend.SummaryIntegrator,
	provider credential.Provider,
	snapshotRepo repository.SummarySnapshotRepository,
	cfg *config.Config,
) *SummarySnapshotSyncService {
	syncConfig := SummarySnapshotSyncConfig{
		CronSchedule: cfg.SummarySnapshotSync.CronSchedule,
		SyncEnabled:  cfg.SummarySnapshotSync.Enabled && snapshotRepo != nil,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de fotografias do resumo carregada")

	return &SummarySnapshotSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		summary:      summary,
		credential:   provider,
		snapshotRepo: snapshotRepo,
		config:       syncConfig,
		now:          time.Now,
		newID:        utils.GenerateID,
	}
}

func (s *SummarySnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de fotografias do resumo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de fotografias do resumo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncSnapshot(ctx); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Erro na sincronização de fotografias do resumo")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de fotografias do resumo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de fotografias do resumo")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncSnapshot busca o resumo com a credencial local e grava uma fotografia.
// Execuções sobrepostas são recusadas com ErrSyncRunning.
func (s *SummarySnapshotSyncService) SyncSnapshot(ctx context.Context) error {
	if !s.begin() {
		logrus.Warn("Sincronização de fotografias do resumo já está em execução")
		return ErrSyncRunning
	}

	snapshotID, err := s.sync(ctx)
	s.finish(snapshotID, err)

	return err
}

func (s *SummarySnapshotSyncService) sync(ctx context.Context) (string, error) {
	logrus.Info("Iniciando sincronização de fotografias do resumo")

	token := ""
	if s.credential != nil {
		token = s.credential.Token(ctx)
	}

	summary, err := s.summary.GetSummary(ctx, token)
	if err != nil {
		return "", errors.Wrap(err, "sincronização de fotografias: falha ao buscar resumo")
	}

	id, err := s.newID()
	if err != nil {
		return "", errors.Wrap(err, "sincronização de fotografias: falha ao gerar ID")
	}

	snapshot := domain.NewSummarySnapshot(id, s.now().UTC(), summary)
	if err := s.snapshotRepo.Save(ctx, snapshot); err != nil {
		return "", errors.Wrap(err, "sincronização de fotografias: falha ao salvar")
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id":    snapshot.ID,
		"today_sales":    snapshot.Today.TotalSales,
		"today_earnings": snapshot.Today.TotalEarnings,
	}).Info("Fotografia do resumo salva")

	return snapshot.ID, nil
}

func (s *SummarySnapshotSyncService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *SummarySnapshotSyncService) finish(snapshotID string, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	if err != nil {
		s.lastError = err.Error()
		return
	}
	s.lastError = ""
	s.lastSnapshotID = snapshotID
}

// TriggerManualSync inicia uma sincronização em segundo plano. Retorna false se
// já houver uma em andamento.
func (s *SummarySnapshotSyncService) TriggerManualSync() bool {
	if s.IsRunning() {
		logrus.Info("Sincronização de fotografias já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de fotografias do resumo")
	go func() {
		if err := s.SyncSnapshot(context.Background()); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Erro na sincronização manual de fotografias do resumo")
		}
	}()
	return true
}

// Available indica se há onde gravar as fotografias, mesmo com a cron desabilitada
func (s *SummarySnapshotSyncService) Available() bool {
	return s.snapshotRepo != nil && s.summary != nil
}

// IsRunning indica se há uma sincronização em andamento
func (s *SummarySnapshotSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *SummarySnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_snapshot_id":       s.lastSnapshotID,
		"last_error":             s.lastError,
	}
}
