package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salesmap-dashboard/internal/scheduler"
	"github.com/vfg2006/salesmap-dashboard/pkg/apiErrors"
)

// Tipos de cron job aceitos em /v1/cron/:type/run
const (
	CronJobTypeSummarySnapshot = "summary-snapshot"
	CronJobTypeAll             = "all"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	SummarySnapshotSyncService *scheduler.SummarySnapshotSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSummarySnapshot, CronJobTypeAll:
			if services.SummarySnapshotSyncService == nil || !services.SummarySnapshotSyncService.Available() {
				apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Serviço de fotografias do resumo não disponível", nil)
				return
			}

			if !services.SummarySnapshotSyncService.TriggerManualSync() {
				writeJSON(w, http.StatusConflict, map[string]any{
					"message": "Cron job já está em execução",
					"type":    cronType,
				})
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: summary-snapshot, all", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job iniciada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.SummarySnapshotSyncService != nil {
			status[CronJobTypeSummarySnapshot] = services.SummarySnapshotSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
