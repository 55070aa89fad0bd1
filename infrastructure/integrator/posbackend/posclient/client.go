package posclient

import (
	"context"
	"net/http"

	posdomain "github.com/vfg2006/salesmap-dashboard/infrastructure/integrator/posbackend/domain"
	"github.com/vfg2006/salesmap-dashboard/internal/config"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

type Client interface {
	GetSummary(ctx context.Context, token string) (posdomain.SummaryResponse, error)
}

type POSClient struct {
	httpClient *http.Client
	config     config.POS
}

// NewClient cria o cliente HTTP do backend do PDV
func NewClient(cfg *config.Config) Client {
	return NewClientWithHTTP(cfg, &http.Client{
		Timeout: cfg.POS.RequestTimeout,
	})
}

// NewClientWithHTTP permite injetar o http.Client (testes, transportes customizados)
func NewClientWithHTTP(cfg *config.Config, httpClient *http.Client) Client {
	return &POSClient{
		httpClient: httpClient,
		config:     cfg.POS,
	}
}
