package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/userdept/admin-system/internal/core/domain"
	"github.com/userdept/admin-system/internal/core/ports"
)

type stubBlacklist struct {
	revoked map[string]time.Duration
}

func newStubBlacklist() *stubBlacklist {
	return &stubBlacklist{revoked: make(map[string]time.Duration)}
}

func (b *stubBlacklist) Revoke(_ context.Context, token string, ttl time.Duration) error {
	b.revoked[token] = ttl
	return nil
}

func (b *stubBlacklist) IsRevoked(_ context.Context, token string) (bool, error) {
	_, ok := b.revoked[token]
	return ok, nil
}

func seedUser(t *testing.T, repo *stubUserRepo, username, password string, status int) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		Realname:     "Test " + username,
		Status:       status,
		PasswordHash: string(hash),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "x", domain.StatusEnabled)
	svc := NewAuthService(repo, newStubBlacklist(), "secret", time.Hour)

	token, user, err := svc.Login(context.Background(), "alice", "x")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["username"] != "alice" {
		t.Fatalf("expected username claim alice, got %v", claims["username"])
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "bob", "goodpass", domain.StatusEnabled)
	svc := NewAuthService(repo, newStubBlacklist(), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "bob", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "carol", "s3cret", domain.StatusDisabled)
	svc := NewAuthService(repo, newStubBlacklist(), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "carol", "s3cret"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for disabled account, got %v", err)
	}
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newStubBlacklist(), "secret", time.Hour)

	// A missing account answers like a wrong password, so the response does
	// not reveal which usernames exist.
	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newStubBlacklist(), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "dave", "pw", domain.StatusEnabled)
	blacklist := newStubBlacklist()
	svc := NewAuthService(repo, blacklist, "secret", time.Hour)

	token, _, err := svc.Login(context.Background(), "dave", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	revoked, _ := blacklist.IsRevoked(context.Background(), token)
	if !revoked {
		t.Fatalf("expected token to be blacklisted")
	}
	if ttl := blacklist.revoked[token]; ttl <= 0 || ttl > time.Hour {
		t.Fatalf("unexpected blacklist ttl: %v", ttl)
	}
}

func TestAuthService_Logout_GarbageTokenIsNoop(t *testing.T) {
	blacklist := newStubBlacklist()
	svc := NewAuthService(newStubUserRepo(), blacklist, "secret", time.Hour)

	if err := svc.Logout(context.Background(), "not-a-token"); err != nil {
		t.Fatalf("logout of garbage token should be a no-op: %v", err)
	}
	if len(blacklist.revoked) != 0 {
		t.Fatalf("nothing should have been blacklisted")
	}
}

var _ ports.AuthService = (*AuthService)(nil)
