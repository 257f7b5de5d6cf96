package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/userdept/admin-system/internal/api/metrics"
	"github.com/userdept/admin-system/internal/core/domain"
	"github.com/userdept/admin-system/internal/core/ports"
)

// UserHandler handles HTTP requests for account management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func toUserResponse(u *domain.User) userResponse {
	codes := u.DepartmentCodes
	if codes == nil {
		codes = []string{}
	}
	return userResponse{
		ID:              u.ID,
		Username:        u.Username,
		Realname:        u.Realname,
		Email:           u.Email,
		Mobile:          u.Mobile,
		Enabled:         u.Enabled(),
		DepartmentCodes: codes,
		CreatedTime:     u.CreatedAt,
		UpdatedTime:     u.UpdatedAt,
	}
}

// List handles GET /api/v1/users?page=&per_page=&query=.
// An empty query means no filter, not a filter for the empty string.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int     false  "1-based page number"  default(1)
// @Param        per_page  query     int     false  "page size"            default(10)
// @Param        query     query     string  false  "partial match on username, realname or mobile"
// @Success      200       {object}  Envelope{data=PageData}
// @Failure      401       {object}  Envelope
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	result, err := h.service.ListUsers(c.Request().Context(), ports.ListUsersFilter{
		Query:   c.QueryParam("query"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return err
	}

	items := make([]userResponse, len(result.Items))
	for i, u := range result.Items {
		items[i] = toUserResponse(u)
	}
	return ok(c, PageData{
		List:    items,
		Total:   result.Total,
		Current: result.Page,
		Size:    result.PerPage,
	})
}

// Get handles GET /api/v1/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  Envelope{data=userResponse}
// @Failure      404  {object}  Envelope
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return ok(c, toUserResponse(user))
}

// Create handles POST /api/v1/users. Password is mandatory at creation.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      200   {object}  Envelope{data=userResponse}
// @Failure      400   {object}  Envelope
// @Failure      409   {object}  Envelope
// @Router       /api/v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Username:        req.Username,
		Password:        req.Password,
		Realname:        req.Realname,
		Email:           req.Email,
		Mobile:          req.Mobile,
		Enabled:         req.Enabled,
		DepartmentCodes: req.DepartmentCodes,
		Actor:           ctxUsername(c),
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("user", "create").Inc()
	return ok(c, toUserResponse(user))
}

// Update handles PUT /api/v1/users/:id. Username is immutable.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "User details"
// @Success      200   {object}  Envelope{data=userResponse}
// @Failure      400   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /api/v1/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.UpdateUser(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Password:        req.Password,
		Realname:        req.Realname,
		Email:           req.Email,
		Mobile:          req.Mobile,
		Enabled:         req.Enabled,
		DepartmentCodes: req.DepartmentCodes,
		Actor:           ctxUsername(c),
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("user", "update").Inc()
	return ok(c, toUserResponse(user))
}

// Delete handles DELETE /api/v1/users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id"), ctxUsername(c)); err != nil {
		return err
	}
	metrics.MutationsTotal.WithLabelValues("user", "delete").Inc()
	return okMessage(c, "user deleted", nil)
}

// SetStatus handles PATCH /api/v1/users/:id/status, toggling the enabled
// flag independently of a full edit.
//
// @Summary      Enable or disable a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      userStatusRequest  true  "Target status"
// @Success      200   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /api/v1/users/{id}/status [patch]
func (h *UserHandler) SetStatus(c echo.Context) error {
	var req userStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.SetUserStatus(c.Request().Context(), c.Param("id"), req.Enabled, ctxUsername(c)); err != nil {
		return err
	}
	metrics.MutationsTotal.WithLabelValues("user", "status").Inc()
	return okMessage(c, "status updated", nil)
}

// ResetPassword handles PATCH /api/v1/users/:id/reset-password. The server
// generates the new credential and returns it exactly once.
//
// @Summary      Reset a user's password
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  Envelope{data=resetPasswordData}
// @Failure      404  {object}  Envelope
// @Router       /api/v1/users/{id}/reset-password [patch]
func (h *UserHandler) ResetPassword(c echo.Context) error {
	password, err := h.service.ResetPassword(c.Request().Context(), c.Param("id"), ctxUsername(c))
	if err != nil {
		return err
	}
	metrics.MutationsTotal.WithLabelValues("user", "reset-password").Inc()
	return okMessage(c, "password reset", resetPasswordData{Password: password})
}
