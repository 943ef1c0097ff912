package middleware

import (
	"advisoryboard/internal/model"
	"advisoryboard/internal/service"
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type contextKey string

const ClaimsKey contextKey = "claims"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
	logger  *zap.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc, logger: logger}
}

// RequireUser validates the bearer token from the Authorization header
func (m *AuthMiddleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ExtractBearerToken(r)
		if token == "" {
			writeAuthError(w, "missing authorization header")
			return
		}

		claims, err := m.authSvc.ValidateToken(r.Context(), token)
		if err != nil {
			if !errors.Is(err, service.ErrInvalidToken) {
				m.logger.Error("Token validation failed", zap.Error(err))
				http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
				return
			}
			writeAuthError(w, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// WithClaims stores validated claims on the context
func WithClaims(ctx context.Context, claims *model.UserClaims) context.Context {
	return context.WithValue(ctx, ClaimsKey, claims)
}

// GetClaims extracts the validated claims from context
func GetClaims(ctx context.Context) *model.UserClaims {
	if v, ok := ctx.Value(ClaimsKey).(*model.UserClaims); ok {
		return v
	}
	return nil
}

// GetUserID extracts the user ID from context
func GetUserID(ctx context.Context) string {
	if c := GetClaims(ctx); c != nil {
		return c.UserID()
	}
	return ""
}

// ExtractBearerToken returns the token of an "Authorization: Bearer" header
func ExtractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
