package middleware

import (
	"net/http"

	"github.com/vfg2006/salesmap-dashboard/internal/credential"
)

// CredentialMiddleware coloca no contexto o token enviado pelo navegador, lido do
// cookie configurado ou do header Authorization. O valor segue cru, sem validação:
// quem decide se o token vale é o backend do PDV.
func CredentialMiddleware(cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")

			if cookieName != "" {
				if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
					token = cookie.Value
				}
			}

			if token != "" {
				r = r.WithContext(credential.WithToken(r.Context(), token))
			}

			next.ServeHTTP(w, r)
		})
	}
}
