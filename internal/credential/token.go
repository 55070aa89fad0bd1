package credential

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyToken indica que não há token para inspecionar
var ErrEmptyToken = errors.New("token vazio")

// TokenInfo são os dados do token lidos sem validar a assinatura.
// Servem apenas para diagnóstico: quem valida o token é o backend do PDV.
type TokenInfo struct {
	Subject   string
	ExpiresAt *time.Time
}

// Expired indica se o token já expirou em now. Tokens sem exp nunca expiram aqui.
func (i TokenInfo) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && !now.Before(*i.ExpiresAt)
}

// Inspect lê as claims do token sem verificar a assinatura
func Inspect(token string) (TokenInfo, error) {
	raw := strings.TrimSpace(token)
	raw = strings.TrimPrefix(raw, "Bearer ")
	if raw == "" {
		return TokenInfo{}, ErrEmptyToken
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return TokenInfo{}, fmt.Errorf("token não é um JWT legível: %w", err)
	}

	info := TokenInfo{}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return TokenInfo{}, fmt.Errorf("claim exp inválida: %w", err)
	}
	if exp != nil {
		expiresAt := exp.Time
		info.ExpiresAt = &expiresAt
	}

	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}

	return info, nil
}
