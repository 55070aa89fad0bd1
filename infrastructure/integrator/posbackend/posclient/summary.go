package posclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	posdomain "github.com/vfg2006/salesmap-dashboard/infrastructure/integrator/posbackend/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxBodyBytes limita a leitura do corpo; o resumo tem poucas centenas de bytes
const maxBodyBytes = 1 << 20

// GetSummary busca o resumo de vendas. O token vai cru no header Authorization,
// sem prefixo "Bearer", como o backend espera. Token vazio também é enviado.
func (c *POSClient) GetSummary(ctx context.Context, token string) (posdomain.SummaryResponse, error) {
	var response posdomain.SummaryResponse

	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, c.config.SummaryPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, maxBodyBytes)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := &posdomain.StatusError{StatusCode: resp.StatusCode, Status: resp.Status}

		var errResp posdomain.ErrorResponse
		if raw, readErr := io.ReadAll(body); readErr == nil && json.Unmarshal(raw, &errResp) == nil {
			statusErr.Message = errResp.Message
			if statusErr.Message == "" {
				statusErr.Message = errResp.Error
			}
		}

		return response, statusErr
	}

	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
