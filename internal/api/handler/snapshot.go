package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/salesmap-dashboard/internal/usecases/snapshotting"
	"github.com/vfg2006/salesmap-dashboard/pkg/apiErrors"
)

// ListSnapshots retorna as últimas fotografias do resumo guardadas pela sincronização
func ListSnapshots(service snapshotting.SnapshotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit deve ser um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		snapshots, err := service.ListSnapshots(r.Context(), limit)
		if err != nil {
			if errors.Is(err, snapshotting.ErrSnapshotsDisabled) {
				apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Fotografias do resumo desabilitadas", nil)
				return
			}
			writeServiceError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar fotografias do resumo", err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"snapshots": snapshots,
			"count":     len(snapshots),
		})
	}
}

// LatestSnapshot retorna a fotografia mais recente, 404 quando ainda não há nenhuma
func LatestSnapshot(service snapshotting.SnapshotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := service.LatestSnapshot(r.Context())
		if err != nil {
			if errors.Is(err, snapshotting.ErrSnapshotsDisabled) {
				apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Fotografias do resumo desabilitadas", nil)
				return
			}
			writeServiceError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar a última fotografia do resumo", err)
			return
		}

		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhuma fotografia do resumo registrada", nil)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}
