package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salesmap-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/salesmap-dashboard/infrastructure/integrator/posbackend"
	"github.com/vfg2006/salesmap-dashboard/infrastructure/integrator/posbackend/posclient"
	"github.com/vfg2006/salesmap-dashboard/infrastructure/repository"
	"github.com/vfg2006/salesmap-dashboard/internal/animation"
	"github.com/vfg2006/salesmap-dashboard/internal/api"
	"github.com/vfg2006/salesmap-dashboard/internal/config"
	"github.com/vfg2006/salesmap-dashboard/internal/credential"
	"github.com/vfg2006/salesmap-dashboard/internal/dashboard"
	"github.com/vfg2006/salesmap-dashboard/internal/scheduler"
	"github.com/vfg2006/salesmap-dashboard/internal/usecases/snapshotting"
	"github.com/vfg2006/salesmap-dashboard/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := credential.NewFileStore(cfg.Credential.StorePath)
	storedCredential := credential.NewStoreProvider(store, cfg.Credential.Key)
	warnIfExpired(ctx, storedCredential)

	posClient := posclient.NewClient(cfg)
	summaryIntegrator := posbackend.New(posClient)

	// O token do navegador tem prioridade; sem ele vale o armazenado localmente
	requestCredential := credential.ContextProvider{Fallback: storedCredential}
	animationSettings := animation.Settings{Duration: cfg.Animation.Duration, FPS: cfg.Animation.FPS}

	newView := func() *dashboard.SummaryView {
		return dashboard.NewSummaryView(
			summaryIntegrator,
			requestCredential,
			dashboard.WithAnimation(animationSettings),
		)
	}

	var snapshotRepo repository.SummarySnapshotRepository
	if cfg.SummarySnapshotSync.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		snapshotRepo = repository.NewSummarySnapshotRepository(pgConn)
	}

	snapshotService := snapshotting.NewSummarySnapshotService(snapshotRepo)
	snapshotSyncService := scheduler.NewSummarySnapshotSyncService(
		summaryIntegrator,
		storedCredential,
		snapshotRepo,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de fotografias do resumo")
	}

	if !cfg.AdminEnabled() {
		logrus.Warn("ADMIN_PASSWORD_HASH vazio, rotas administrativas desabilitadas")
	}

	server, err := api.New(cfg, newView, snapshotService, snapshotSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// warnIfExpired avisa quando o token guardado já expirou. A busca continua sendo feita:
// quem recusa o token é o backend do PDV.
func warnIfExpired(ctx context.Context, provider credential.Provider) {
	token := provider.Token(ctx)
	if token == "" {
		logrus.Warn("Nenhum token no armazenamento local, o resumo será buscado sem credencial")
		return
	}

	info, err := credential.Inspect(token)
	if err != nil {
		logrus.WithError(err).Debug("Token armazenado não é um JWT legível")
		return
	}

	if info.Expired(time.Now()) {
		logrus.WithFields(logrus.Fields{
			"subject":    info.Subject,
			"expires_at": info.ExpiresAt,
		}).Warn("Token armazenado já expirou")
	}
}

// pgconn cria a conexão e garante o schema das fotografias
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := postgres.EnsureSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar o schema do PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
