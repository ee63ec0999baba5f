package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/littlelemon/restaurant-backend/internal/accesspolicy"
	"github.com/littlelemon/restaurant-backend/utils"
	"go.uber.org/zap"
)

// RequirePermission resolves the access policy for (resource, request verb,
// caller role) and rejects denied requests before any handler or store work.
// It must run after RequireAuth.
func (m *AuthMiddleware) RequirePermission(resource accesspolicy.Resource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := chimw.GetReqID(ctx)

			claims := GetClaimsFromContext(ctx)
			if claims == nil {
				m.logger.Error("claims not found in context",
					zap.String("request_id", requestID))
				_ = utils.WriteUnauthorized(w, "Authentication required")
				return
			}

			verb := verbForMethod(r.Method)
			if !accesspolicy.Allow(resource, verb, claims.Role()) {
				m.logger.Warn("permission denied",
					zap.String("request_id", requestID),
					zap.String("username", claims.Username),
					zap.String("resource", string(resource)),
					zap.String("verb", string(verb)),
					zap.String("role", claims.Role().String()))
				_ = utils.WriteForbidden(w, "Insufficient permissions")
				return
			}

			m.logger.Debug("permission granted",
				zap.String("request_id", requestID),
				zap.String("resource", string(resource)),
				zap.String("verb", string(verb)))

			next.ServeHTTP(w, r)
		})
	}
}

// verbForMethod maps an HTTP method to a policy verb. Listing and single
// reads share the same minimum role, so GET maps to read for both.
func verbForMethod(method string) accesspolicy.Verb {
	switch method {
	case http.MethodPost:
		return accesspolicy.VerbCreate
	case http.MethodPut, http.MethodPatch:
		return accesspolicy.VerbUpdate
	case http.MethodDelete:
		return accesspolicy.VerbDelete
	default:
		return accesspolicy.VerbRead
	}
}
