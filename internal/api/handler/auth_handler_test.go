package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/userdept/admin-system/internal/core/domain"
	"github.com/userdept/admin-system/internal/core/ports"
)

type stubAuthService struct {
	token  string
	user   *domain.User
	err    error
	logout []string
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (string, *domain.User, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.user, nil
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	s.logout = append(s.logout, token)
	return s.err
}

var _ ports.AuthService = (*stubAuthService)(nil)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandlerLoginSuccess(t *testing.T) {
	svc := &stubAuthService{
		token: "tok-123",
		user: &domain.User{
			ID: "u1", Username: "admin", Realname: "Administrator",
			Status: domain.StatusEnabled, Creator: "system",
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/auth/login", `{"username":"admin","password":"secret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var env struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Data    struct {
			Token string `json:"token"`
			User  struct {
				Username string `json:"username"`
				Enabled  bool   `json:"enabled"`
			} `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if env.Code != http.StatusOK {
		t.Errorf("envelope code = %d, want 200", env.Code)
	}
	if env.Data.Token != "tok-123" {
		t.Errorf("token = %q, want tok-123", env.Data.Token)
	}
	if env.Data.User.Username != "admin" {
		t.Errorf("username = %q, want admin", env.Data.User.Username)
	}
	if !env.Data.User.Enabled {
		t.Error("enabled flag must survive serialization")
	}
	// Audit fields stay internal, the profile payload is the same shape the
	// user endpoints return.
	if strings.Contains(rec.Body.String(), "creator") {
		t.Error("login payload must not expose audit fields")
	}
}

func TestAuthHandlerLoginInvalidCredentials(t *testing.T) {
	svc := &stubAuthService{err: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/auth/login", `{"username":"admin","password":"wrong"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("Login error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthHandlerLoginMissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/auth/login", `{"username":"admin"}`)
	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("Login error = %v, want *echo.HTTPError", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", he.Code)
	}
}

func TestAuthHandlerLogout(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/auth/logout", "")
	c.Set("token", "tok-xyz")
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(svc.logout) != 1 || svc.logout[0] != "tok-xyz" {
		t.Fatalf("logout tokens = %v, want [tok-xyz]", svc.logout)
	}
}
