package posclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	posdomain "github.com/vfg2006/salesmap-dashboard/infrastructure/integrator/posbackend/domain"
	"github.com/vfg2006/salesmap-dashboard/internal/config"
)

func newTestConfig(url string) *config.Config {
	return &config.Config{
		POS: config.POS{
			URL:            url,
			SummaryPath:    "/api/bill/bills/summary",
			RequestTimeout: 2 * time.Second,
		},
	}
}

func TestGetSummary_Success(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/bill/bills/summary", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		assert.Equal(t, "raw-token", r.Header.Get("Authorization"), "token vai sem prefixo")
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"today": {"totalSales": 5, "totalEarnings": 120.5},
			"thisWeek": {"totalSales": 12, "totalEarnings": 300},
			"thisMonth": {"totalSales": 40, "totalEarnings": 1999.99}
		}`))
	}))
	defer srv.Close()

	resp, err := NewClient(newTestConfig(srv.URL)).GetSummary(context.Background(), "raw-token")
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
	require.NotNil(t, resp.Today)
	assert.Equal(t, 5.0, *resp.Today.TotalSales)
	assert.Equal(t, 120.5, *resp.Today.TotalEarnings)
	require.NotNil(t, resp.ThisMonth)
	assert.Equal(t, 1999.99, *resp.ThisMonth.TotalEarnings)
}

func TestGetSummary_EmptyTokenIsStillSent(t *testing.T) {
	var seen atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.Store(true)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	resp, err := NewClient(newTestConfig(srv.URL)).GetSummary(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, seen.Load())
	assert.Nil(t, resp.Today)
	assert.Nil(t, resp.ThisWeek)
	assert.Nil(t, resp.ThisMonth)
}

func TestGetSummary_MissingPeriod(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"today": {"totalSales": 1, "totalEarnings": 2}, "thisMonth": {"totalSales": 3}}`))
	}))
	defer srv.Close()

	resp, err := NewClient(newTestConfig(srv.URL)).GetSummary(context.Background(), "t")
	require.NoError(t, err)

	assert.NotNil(t, resp.Today)
	assert.Nil(t, resp.ThisWeek)
	require.NotNil(t, resp.ThisMonth)
	assert.Nil(t, resp.ThisMonth.TotalEarnings)
}

func TestGetSummary_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "status 401 com mensagem",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"jwt expired"}`))
			},
			check: func(t *testing.T, err error) {
				var statusErr *posdomain.StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
				assert.Equal(t, "jwt expired", statusErr.Message)
				assert.True(t, statusErr.IsUnauthorized())
				assert.ErrorIs(t, err, posdomain.ErrUnexpectedStatus)
			},
		},
		{
			name: "status 500 sem corpo",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			check: func(t *testing.T, err error) {
				var statusErr *posdomain.StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
				assert.Empty(t, statusErr.Message)
				assert.False(t, statusErr.IsUnauthorized())
			},
		},
		{
			name: "corpo malformado",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"today": "muitas"`))
			},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "decodificar")
				assert.False(t, errors.Is(err, posdomain.ErrUnexpectedStatus))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewClient(newTestConfig(srv.URL)).GetSummary(context.Background(), "t")
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestGetSummary_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(newTestConfig(url)).GetSummary(context.Background(), "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executar a requisição")
}

func TestGetSummary_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(newTestConfig(srv.URL)).GetSummary(ctx, "t")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
