package http

import (
	"context"
	"net/http"
	"strings"

	"naturexpress-cargo-backend/internal/auth"
	"naturexpress-cargo-backend/internal/config"
	"naturexpress-cargo-backend/internal/domain"
	"naturexpress-cargo-backend/internal/logger"
	"naturexpress-cargo-backend/internal/repository"
)

type contextKey string

const callerKey contextKey = "caller"

// Caller is the authenticated identity attached to a request context.
type Caller struct {
	UID  string
	Role domain.UserRole
}

// CallerFrom extracts the authenticated caller, if any.
func CallerFrom(ctx context.Context) (*Caller, bool) {
	c, ok := ctx.Value(callerKey).(*Caller)
	return c, ok
}

// AuthMiddleware verifies bearer ID tokens and enforces per-route security
// levels. The route name must match a key in config.EndpointSecurityConfig.
type AuthMiddleware struct {
	verifier auth.TokenVerifier
	users    repository.UserRepository
}

func NewAuthMiddleware(verifier auth.TokenVerifier, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, users: users}
}

// Guard wraps next with the checks required by the named route.
func (m *AuthMiddleware) Guard(route string, next http.HandlerFunc) http.HandlerFunc {
	level := config.GetSecurityLevel(route)
	if level == config.SecurityPublic {
		return next
	}

	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "missing bearer token"})
			return
		}

		uid, err := m.verifier.VerifyIDToken(r.Context(), token)
		if err != nil {
			logger.Warn("Token verification failed", "route", route, "error", err)
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid token"})
			return
		}

		caller := &Caller{UID: uid, Role: domain.UserRoleUser}
		if user, err := m.users.GetByID(r.Context(), uid); err == nil {
			caller.Role = user.Role
		}

		if level == config.SecurityAdmin && caller.Role != domain.UserRoleAdmin {
			writeJSON(w, http.StatusForbidden, errorBody{Error: "admin role required"})
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), callerKey, caller)))
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
