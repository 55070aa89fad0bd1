package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salesmap-dashboard/internal/api/handler"
	"github.com/vfg2006/salesmap-dashboard/internal/api/handler/router"
	"github.com/vfg2006/salesmap-dashboard/internal/config"
	"github.com/vfg2006/salesmap-dashboard/internal/scheduler"
	"github.com/vfg2006/salesmap-dashboard/internal/usecases/snapshotting"
	"github.com/vfg2006/salesmap-dashboard/pkg/middleware"
	"github.com/vfg2006/salesmap-dashboard/web"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	newView handler.ViewFactory,
	snapshotService snapshotting.SnapshotService,
	snapshotSyncService *scheduler.SummarySnapshotSyncService,
) (*Server, error) {
	tmpl, err := web.ParseTemplates()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar templates: %w", err)
	}

	static, err := web.Static()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar arquivos estáticos: %w", err)
	}

	cronServices := handler.CronJobServices{
		SummarySnapshotSyncService: snapshotSyncService,
	}

	adminOnly := middleware.AdminOnly(config.Admin.User, config.Admin.PasswordHash)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Dashboard(tmpl, newView, config.Server.SummaryWaitTimeout)...),
		router.WithRoutes(handler.Snapshots(snapshotService, adminOnly)...),
		router.WithRoutes(handler.CronJobs(cronServices, adminOnly)...),
		router.WithRoutes(handler.Static(static)...),
	)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           Handler(config, rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// Handler aplica a cadeia global de middlewares
func Handler(config *config.Config, next http.Handler) http.Handler {
	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.CredentialMiddleware(config.Credential.CookieName),
	}

	return alice.New(middlewares...).Then(next)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown encerra o servidor HTTP. Requisições do resumo em andamento terminam
// desmontando suas telas.
func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
