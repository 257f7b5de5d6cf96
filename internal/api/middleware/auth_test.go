package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type fakeBlacklist struct {
	revoked map[string]bool
}

func (b *fakeBlacklist) Revoke(_ context.Context, token string, _ time.Duration) error {
	b.revoked[token] = true
	return nil
}

func (b *fakeBlacklist) IsRevoked(_ context.Context, token string) (bool, error) {
	return b.revoked[token], nil
}

func signToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	signed := signToken(t, "secret")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth("secret", nil)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("username") != "alice" {
			t.Fatalf("username not set")
		}
		if c.Get("token") != signed {
			t.Fatalf("token not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth("secret", nil)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth("secret", nil)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth("secret", nil)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_RevokedToken(t *testing.T) {
	e := echo.New()
	signed := signToken(t, "secret")
	blacklist := &fakeBlacklist{revoked: map[string]bool{signed: true}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth("secret", blacklist)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked token, got %d", rec.Code)
	}
}
