// Package credential fornece o token usado para autenticar a busca do resumo.
//
// O token nunca é lido de um estado global: quem monta a tela recebe um Provider,
// o que permite aos testes fornecer um token falso.
package credential

import (
	"context"
	"strings"

	"github.com/vfg2006/salesmap-dashboard/pkg/log"
)

// DefaultKey é o nome fixo sob o qual o token fica guardado no armazenamento local
const DefaultKey = "token"

// Provider devolve o token atual. Ausência é representada por string vazia.
type Provider interface {
	Token(ctx context.Context) string
}

// ProviderFunc adapta uma função para Provider
type ProviderFunc func(ctx context.Context) string

func (f ProviderFunc) Token(ctx context.Context) string {
	return f(ctx)
}

// Static devolve sempre o mesmo token
type Static string

func (s Static) Token(context.Context) string {
	return string(s)
}

// StoreProvider lê o token de um Store a cada chamada
type StoreProvider struct {
	store Store
	key   string
}

// NewStoreProvider cria um provider que lê a chave informada (DefaultKey quando vazia)
func NewStoreProvider(store Store, key string) *StoreProvider {
	if key == "" {
		key = DefaultKey
	}
	return &StoreProvider{store: store, key: key}
}

func (p *StoreProvider) Token(ctx context.Context) string {
	if p.store == nil {
		return ""
	}

	token, ok, err := p.store.Get(p.key)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Não foi possível ler o armazenamento local de credenciais")
		return ""
	}
	if !ok {
		log.ForContext(ctx).Debugf("Nenhum token salvo na chave %q", p.key)
		return ""
	}

	return token
}

type contextKey string

const tokenContextKey contextKey = "credential_token"

// WithToken guarda no contexto o token recebido na requisição
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// FromContext obtém o token guardado por WithToken
func FromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	if !ok || strings.TrimSpace(token) == "" {
		return "", false
	}
	return token, true
}

// ContextProvider usa o token da requisição e, na falta dele, o Fallback
type ContextProvider struct {
	Fallback Provider
}

func (p ContextProvider) Token(ctx context.Context) string {
	if token, ok := FromContext(ctx); ok {
		return token
	}
	if p.Fallback != nil {
		return p.Fallback.Token(ctx)
	}
	return ""
}
