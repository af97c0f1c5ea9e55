package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/security"
	"car-rental-backend/internal/session"
)

type contextKey string

const (
	claimsKey contextKey = "driverClaims"
	tokenKey  contextKey = "bearerToken"
)

// AuthMiddleware validates the bearer token and checks the server-side
// session is still active, so logged-out tokens stop working before expiry.
type AuthMiddleware struct {
	tokens   security.TokenManager
	sessions session.Store
}

func NewAuthMiddleware(tokens security.TokenManager, sessions session.Store) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, sessions: sessions}
}

func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, envelope{"success": false, "message": "missing bearer token"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		claims, err := m.tokens.Validate(token)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, envelope{"success": false, "message": err.Error()})
			return
		}
		if !m.sessions.Active(token) {
			writeJSON(w, http.StatusUnauthorized, envelope{"success": false, "message": "session has been logged out"})
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		ctx = context.WithValue(ctx, tokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// claimsFrom returns the authenticated driver's claims, nil outside the auth
// middleware.
func claimsFrom(r *http.Request) *security.DriverClaims {
	claims, _ := r.Context().Value(claimsKey).(*security.DriverClaims)
	return claims
}

func tokenFrom(r *http.Request) string {
	token, _ := r.Context().Value(tokenKey).(string)
	return token
}

// LoggingMiddleware logs one line per request with status and latency.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
