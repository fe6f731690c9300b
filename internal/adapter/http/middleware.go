package adapthttp

import (
	"context"
	"log"
	"net/http"
	"strings"

	"ifjourney/internal/app"
	"ifjourney/internal/domain"
)

type contextKey string

const sessionContextKey contextKey = "loginSession"

// publicPaths need no login session.
var publicPaths = []string{
	"/health",
	"/auth/register",
	"/auth/login",
	"/auth/logout",
	"/auth/google/",
}

func isPublicPath(p string) bool {
	for _, prefix := range publicPaths {
		if p == prefix || (strings.HasSuffix(prefix, "/") && strings.HasPrefix(p, prefix)) {
			return true
		}
	}
	return false
}

// authMiddleware resolves the session cookie to a login marker and stores
// it in the request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		cookie, err := r.Cookie("session")
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sess, err := s.auth.ValidateSession(r.Context(), cookie.Value)
		if err == app.ErrSessionNotFound || err == app.ErrSessionExpired {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFromContext returns the login marker placed by authMiddleware.
func sessionFromContext(ctx context.Context) *domain.LoginSession {
	sess, _ := ctx.Value(sessionContextKey).(*domain.LoginSession)
	return sess
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware logs method, path and response status for every request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d", r.Method, r.URL.Path, rec.status)
	})
}
