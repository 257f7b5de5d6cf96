package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/userdept/admin-system/internal/core/domain"
	"github.com/userdept/admin-system/internal/core/ports"
)

// AuthService implements login and token revocation.
type AuthService struct {
	repo      ports.UserRepository
	blacklist ports.TokenBlacklist
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.UserRepository, blacklist ports.TokenBlacklist, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, blacklist: blacklist, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		// An unknown username answers the same as a wrong password so the
		// login endpoint cannot be used to enumerate accounts.
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.Enabled() {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Logout blacklists the presented token for the remainder of its lifetime.
// An already-expired or unparseable token is a no-op: there is nothing left
// to revoke.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if s.blacklist == nil || token == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	ttl := time.Until(exp.Time)
	if ttl <= 0 {
		return nil
	}

	return s.blacklist.Revoke(ctx, token, ttl)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"realname": user.Realname,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
