// Package shell exposes the console over a localhost HTTP surface: a
// route table mapping paths to page controllers, gated by the session
// store. It renders page state as JSON; visual rendering is out of scope.
package shell

import (
	"net/http"
	"strings"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/contasplay/painel-admin/internal/session"
)

// LoginPath is where anonymous requests are sent.
const LoginPath = "/login"

// RequireSession gates the management routes on the session store.
// Anonymous browser requests get a redirect to the login route; API-style
// requests get a bare 401. The login route itself is never gated.
func RequireSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store.IsAuthenticated() {
				next.ServeHTTP(w, r)
				return
			}
			if wantsHTML(r) && r.URL.Path != LoginPath {
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"detail": "sessão expirada, faça login novamente",
			})
		})
	}
}

// wantsHTML reports whether the request came from a browser navigation
// rather than a JSON consumer.
func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// WithRequestLogging logs each request with its status and duration.
func WithRequestLogging(log *zap.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("elapsed", time.Since(start)),
			)
		})
	}
}
