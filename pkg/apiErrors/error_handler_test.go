package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrExternalService, "backend indisponível", map[string]int{"status": 503})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrExternalService, body.Code)
	assert.Equal(t, "backend indisponível", body.Message)
}

func TestStatusCode_UnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusCode("XYZ_999"))
	assert.Equal(t, http.StatusForbidden, StatusCode(ErrAdminDisabled))
}

func TestFromError(t *testing.T) {
	apiErr := FromError(errors.New("conexão recusada"), ErrDatabaseOperation)
	assert.Equal(t, "SRV_002: conexão recusada", apiErr.Error())

	unknown := FromError(nil, ErrDatabaseOperation)
	assert.Equal(t, ErrInternalServer, unknown.Code)
}
