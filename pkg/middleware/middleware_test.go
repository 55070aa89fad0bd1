package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salesmap-dashboard/internal/credential"
	"github.com/vfg2006/salesmap-dashboard/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	log.SetupTestLogger()
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestCredentialMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		cookie string
		want   string
		found  bool
	}{
		{name: "sem token", found: false},
		{name: "header Authorization", header: "raw-header", want: "raw-header", found: true},
		{name: "cookie tem prioridade", header: "raw-header", cookie: "raw-cookie", want: "raw-cookie", found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got string
				ok  bool
			)
			h := CredentialMiddleware("token")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, ok = credential.FromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/ui/summary", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.cookie})
			}

			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		hash     string
		user     string
		password string
		noAuth   bool
		want     int
	}{
		{name: "credenciais corretas", hash: string(hash), user: "admin", password: "s3nha", want: http.StatusNoContent},
		{name: "senha errada", hash: string(hash), user: "admin", password: "outra", want: http.StatusUnauthorized},
		{name: "usuário errado", hash: string(hash), user: "root", password: "s3nha", want: http.StatusUnauthorized},
		{name: "sem basic auth", hash: string(hash), noAuth: true, want: http.StatusUnauthorized},
		{name: "sem hash configurado", hash: "", user: "admin", password: "s3nha", want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
			if !tt.noAuth {
				req.SetBasicAuth(tt.user, tt.password)
			}
			rec := httptest.NewRecorder()

			AdminOnly("admin", tt.hash)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	h := Cors([]string{"http://localhost:3000"})(okHandler())

	t.Run("origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/summary", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/summary", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/summary", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	h := LoggingMiddleware()(LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falhou")
	})))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoggingMiddleware_AddsCorrelationID(t *testing.T) {
	var correlationID string
	h := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.NotEmpty(t, correlationID)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
