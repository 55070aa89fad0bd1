package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salesmap-dashboard/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

// AdminOnly protege as rotas administrativas com basic auth. A senha é comparada
// com o hash bcrypt configurado; sem hash configurado as rotas ficam indisponíveis.
func AdminOnly(user, passwordHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if passwordHash == "" {
				apiErrors.WriteError(w, apiErrors.ErrAdminDisabled, "Rotas administrativas desabilitadas", nil)
				return
			}

			username, password, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", `Basic realm="salesmap-admin"`)
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais de administrador ausentes", nil)
				return
			}

			userMatches := subtle.ConstantTimeCompare([]byte(username), []byte(user)) == 1
			passwordErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

			if !userMatches || passwordErr != nil {
				logrus.WithFields(logrus.Fields{
					"user": username,
					"path": r.URL.Path,
				}).Warn("Tentativa de acesso administrativo negada")

				w.Header().Set("WWW-Authenticate", `Basic realm="salesmap-admin"`)
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais de administrador inválidas", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
