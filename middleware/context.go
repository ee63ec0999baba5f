package middleware

import (
	"context"

	"github.com/littlelemon/restaurant-backend/internal/accesspolicy"
)

// Context key type to avoid collisions
type contextKey string

const (
	// ClaimsKey is the context key for validated token claims
	ClaimsKey contextKey = "claims"
)

// Claims is the caller identity resolved from a bearer token. Handlers read
// it from the request context; nothing reads ambient/global state.
type Claims struct {
	UserID      int64  `json:"uid"`
	Username    string `json:"username"`
	IsSuperuser bool   `json:"is_superuser"`
}

// Role maps the claims to an access policy role.
func (c *Claims) Role() accesspolicy.Role {
	if c == nil {
		return accesspolicy.RoleAnonymous
	}
	if c.IsSuperuser {
		return accesspolicy.RoleAdmin
	}
	return accesspolicy.RoleAuthenticated
}

// GetClaimsFromContext retrieves token claims from context
func GetClaimsFromContext(ctx context.Context) *Claims {
	if val := ctx.Value(ClaimsKey); val != nil {
		if claims, ok := val.(*Claims); ok {
			return claims
		}
	}
	return nil
}

// WithClaims adds token claims to the context
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, ClaimsKey, claims)
}
