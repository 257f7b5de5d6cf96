package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userdept/admin-system/internal/api/metrics"
	"github.com/userdept/admin-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginData struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// Login authenticates a user and returns a bearer token plus the profile.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  Envelope{data=loginData}
// @Failure      400   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return okMessage(c, "login successful", loginData{Token: token, User: toUserResponse(user)})
}

// Logout revokes the presented token server-side. The client is expected to
// discard its session state regardless of the outcome.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Router       /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), ctxToken(c)); err != nil {
		return err
	}
	return okMessage(c, "logout successful", nil)
}
