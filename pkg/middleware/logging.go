package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/salesmap-dashboard/pkg/log"
)

// slowRequest é o limite acima do qual a requisição é registrada como lenta.
// A rota do resumo espera o backend do PDV, então o limite é mais alto que o de uma API comum.
const slowRequest = 3 * time.Second

// LoggingMiddleware registra cada requisição com um ID de correlação
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			if !log.IsDevelopment() {
				log.L.WithFields(log.Fields{
					log.FieldCorrelationID: correlationID,
					log.FieldMethod:        r.Method,
					log.FieldPath:          r.URL.Path,
					"remote_addr":          r.RemoteAddr,
					"user_agent":           r.UserAgent(),
					"hx_request":           r.Header.Get("HX-Request") == "true",
				}).Info("Requisição iniciada")
			}

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			logger := log.L.WithFields(log.Fields{
				log.FieldCorrelationID: correlationID,
				log.FieldMethod:        r.Method,
				log.FieldPath:          r.URL.Path,
				log.FieldStatusCode:    lrw.statusCode,
				log.FieldDurationMs:    elapsed.Milliseconds(),
			})

			msg := "Requisição finalizada"
			if log.IsDevelopment() {
				msg = fmt.Sprintf("%s %s em %s", r.Method, r.URL.Path, formatDuration(elapsed))
			}

			switch {
			case lrw.statusCode >= 500:
				logger.Error(msg)
			case lrw.statusCode >= 400:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}

			if elapsed > slowRequest {
				logger.Warnf("Requisição lenta: %s", formatDuration(elapsed))
			}
		})
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter captura o status code da resposta
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// Flush mantém o suporte a streaming quando o writer original suporta
func (lrw *loggingResponseWriter) Flush() {
	if f, ok := lrw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// LogPanicMiddleware converte um panic em 500 e registra o stack trace
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackTrace := string(stack[:runtime.Stack(stack, false)])

					logger := log.ForContext(r.Context()).WithFields(log.Fields{
						"panic_error":   err,
						log.FieldMethod: r.Method,
						log.FieldPath:   r.URL.Path,
					})
					logger.Error("Erro não tratado na aplicação")

					if log.IsDevelopment() {
						fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n===================\n", stackTrace)
					} else {
						logger.WithField("stack_trace", stackTrace).Error("Stack trace do erro")
					}

					http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
