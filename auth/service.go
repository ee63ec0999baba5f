// Package auth is the token authority for the API: it registers accounts,
// exchanges credentials for signed bearer tokens, and validates tokens back
// into a caller identity. It is the only package that touches password or
// token cryptography.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/littlelemon/restaurant-backend/middleware"
	"github.com/littlelemon/restaurant-backend/models"
	"github.com/littlelemon/restaurant-backend/repositories"
	"github.com/littlelemon/restaurant-backend/services"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service defines the auth provider surface consumed by handlers and
// middleware. Implementations are swappable collaborators.
type Service interface {
	// Register creates a new account with a hashed password
	Register(ctx context.Context, username, email, password string) (*models.User, error)

	// Login verifies credentials and issues a signed token
	Login(ctx context.Context, username, password string) (string, error)

	// ValidateToken validates a token and returns the caller identity
	ValidateToken(ctx context.Context, token string) (*middleware.Claims, error)
}

// tokenClaims is the JWT payload for issued tokens
type tokenClaims struct {
	UserID      int64  `json:"uid"`
	Username    string `json:"username"`
	IsSuperuser bool   `json:"is_superuser"`
	jwt.RegisteredClaims
}

// TokenService implements Service with HS256 JWTs backed by the user store
type TokenService struct {
	users  repositories.UserRepository
	secret []byte
	ttl    time.Duration
	logger *zap.Logger
}

// NewTokenService creates a new TokenService
func NewTokenService(users repositories.UserRepository, secret string, ttl time.Duration, logger *zap.Logger) *TokenService {
	return &TokenService{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger,
	}
}

// Register creates a new account. The password is stored only as a bcrypt hash.
func (s *TokenService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, services.NewDomainError(services.ErrorTypeInternal, "failed to hash password", err)
	}

	user := models.NewUser(username, email, string(hash))
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, services.ErrDuplicateUsername
		}
		return nil, services.NewDomainError(services.ErrorTypeInternal, "failed to create user", err)
	}

	s.logger.Info("user registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	return user, nil
}

// Login verifies the credentials and returns a signed token. Unknown users
// and wrong passwords produce the same error, so the response does not leak
// which usernames exist.
func (s *TokenService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", services.ErrInvalidCredentials
		}
		return "", services.NewDomainError(services.ErrorTypeInternal, "failed to look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", services.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", services.NewDomainError(services.ErrorTypeInternal, "failed to sign token", err)
	}

	s.logger.Info("user logged in",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	return token, nil
}

// ValidateToken parses and verifies a token, returning the caller identity.
func (s *TokenService) ValidateToken(ctx context.Context, tokenString string) (*middleware.Claims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, services.ErrTokenExpired
		}
		return nil, services.ErrInvalidToken
	}
	if !token.Valid {
		return nil, services.ErrInvalidToken
	}

	return &middleware.Claims{
		UserID:      claims.UserID,
		Username:    claims.Username,
		IsSuperuser: claims.IsSuperuser,
	}, nil
}

// issueToken signs an HS256 token for the user
func (s *TokenService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		UserID:      user.ID,
		Username:    user.Username,
		IsSuperuser: user.IsSuperuser,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
