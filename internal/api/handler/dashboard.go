package handler

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/vfg2006/salesmap-dashboard/internal/dashboard"
	"github.com/vfg2006/salesmap-dashboard/pkg/apiErrors"
	"github.com/vfg2006/salesmap-dashboard/pkg/log"
)

const pageTitle = "SalesMap Dashboard"

// ViewFactory cria uma SummaryView nova. Cada requisição monta a sua.
type ViewFactory func() *dashboard.SummaryView

type dashboardPage struct {
	Title   string
	Summary dashboard.Rendering
}

// DashboardPage renderiza a página no estado Loading. Os cards chegam pelo /ui/summary.
func DashboardPage(tmpl *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderTemplate(w, r, tmpl, "dashboard_page", dashboardPage{
			Title:   pageTitle,
			Summary: dashboard.LoadingRendering(),
		})
	}
}

// SummaryPartial monta a tela, espera a busca terminar e devolve o fragmento dos cards
func SummaryPartial(newView ViewFactory, tmpl *template.Template, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rendering := loadSummary(r.Context(), newView, timeout)
		if r.Context().Err() != nil {
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		renderTemplate(w, r, tmpl, "summary_partial", rendering)
	}
}

// SummaryJSON expõe o mesmo ciclo de vida em JSON
func SummaryJSON(newView ViewFactory, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rendering := loadSummary(r.Context(), newView, timeout)
		if r.Context().Err() != nil {
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, http.StatusOK, rendering)
	}
}

// loadSummary monta a tela durante a requisição. O timeout cancela a busca, que então
// termina como falha e é exibida com cards zerados. Se o cliente desconectar, a tela
// é desmontada e a resposta do backend descartada.
func loadSummary(ctx context.Context, newView ViewFactory, timeout time.Duration) dashboard.Rendering {
	view := newView()

	fetchCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	view.Mount(fetchCtx)
	defer view.Unmount()

	// a busca pode terminar no mesmo instante em que o cliente desconecta
	if loaded := view.Wait(ctx); ctx.Err() != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			log.FieldGeneration: view.Snapshot().Generation,
			"loaded":            loaded,
			"reason":            context.Cause(ctx).Error(),
		}).Info("dashboard: cliente desconectou antes do resumo carregar, tela desmontada")
	}

	return view.Render()
}

func renderTemplate(w http.ResponseWriter, r *http.Request, tmpl *template.Template, name string, data any) {
	if tmpl == nil {
		apiErrors.WriteError(w, apiErrors.ErrRenderTemplate, "Templates não carregados", nil)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.ForContext(r.Context()).WithError(err).WithField("template", name).Error("Erro ao renderizar template")
		apiErrors.WriteError(w, apiErrors.ErrRenderTemplate, "Erro ao renderizar a página", nil)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
