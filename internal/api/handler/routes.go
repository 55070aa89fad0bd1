package handler

import (
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/vfg2006/salesmap-dashboard/internal/api/handler/router"
	"github.com/vfg2006/salesmap-dashboard/internal/usecases/snapshotting"
)

// Middleware é a assinatura dos middlewares aplicados por rota
type Middleware = func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(tmpl *template.Template, newView ViewFactory, waitTimeout time.Duration) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(tmpl),
		},
		{
			Path:    "/ui/summary",
			Method:  http.MethodGet,
			Handler: SummaryPartial(newView, tmpl, waitTimeout),
		},
		{
			Path:    "/v1/summary",
			Method:  http.MethodGet,
			Handler: SummaryJSON(newView, waitTimeout),
		},
	}
}

func Snapshots(service snapshotting.SnapshotService, admin Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/summary/snapshots",
			Method:      http.MethodGet,
			Handler:     ListSnapshots(service),
			Middlewares: []func(http.Handler) http.Handler{admin},
		},
		{
			Path:        "/v1/summary/snapshots/latest",
			Method:      http.MethodGet,
			Handler:     LatestSnapshot(service),
			Middlewares: []func(http.Handler) http.Handler{admin},
		},
	}
}

func CronJobs(services CronJobServices, admin Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{admin},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{admin},
		},
	}
}

func Static(static fs.FS) []router.Route {
	fileServer := http.StripPrefix("/static", http.FileServer(http.FS(static)))

	return []router.Route{
		{
			Path:   "/static/*filepath",
			Method: http.MethodGet,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Cache-Control", "public, max-age=3600")
				fileServer.ServeHTTP(w, r)
			}),
		},
	}
}
