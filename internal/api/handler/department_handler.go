package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/userdept/admin-system/internal/api/metrics"
	"github.com/userdept/admin-system/internal/core/domain"
	"github.com/userdept/admin-system/internal/core/ports"
)

// DepartmentHandler handles HTTP requests for hierarchy management.
type DepartmentHandler struct {
	service ports.DepartmentService
}

func NewDepartmentHandler(service ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

func toDepartmentResponse(d *domain.Department) departmentResponse {
	resp := departmentResponse{
		ID:          d.ID,
		Code:        d.Code,
		Name:        d.Name,
		ParentCode:  d.ParentCode,
		Description: d.Description,
		CreatedTime: d.CreatedAt,
		UpdatedTime: d.UpdatedAt,
	}
	for _, child := range d.Children {
		resp.Children = append(resp.Children, toDepartmentResponse(child))
	}
	return resp
}

// List handles GET /api/v1/departments?page=&per_page=&search=.
//
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int     false  "1-based page number"  default(1)
// @Param        per_page  query     int     false  "page size"            default(10)
// @Param        search    query     string  false  "partial match on code, name or description"
// @Success      200       {object}  Envelope{data=PageData}
// @Failure      401       {object}  Envelope
// @Router       /api/v1/departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	result, err := h.service.ListDepartments(c.Request().Context(), ports.ListDepartmentsFilter{
		Search:  c.QueryParam("search"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return err
	}

	items := make([]departmentResponse, len(result.Items))
	for i, d := range result.Items {
		items[i] = toDepartmentResponse(d)
	}
	return ok(c, PageData{
		List:    items,
		Total:   result.Total,
		Current: result.Page,
		Size:    result.PerPage,
	})
}

// Tree handles GET /api/v1/departments/tree, returning the full hierarchy as
// a forest of root departments with nested children.
//
// @Summary      Get the department tree
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope{data=[]departmentResponse}
// @Failure      401  {object}  Envelope
// @Router       /api/v1/departments/tree [get]
func (h *DepartmentHandler) Tree(c echo.Context) error {
	roots, err := h.service.GetTree(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]departmentResponse, len(roots))
	for i, d := range roots {
		out[i] = toDepartmentResponse(d)
	}
	return ok(c, out)
}

// Get handles GET /api/v1/departments/:id.
//
// @Summary      Get a department by id
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Department id"
// @Success      200  {object}  Envelope{data=departmentResponse}
// @Failure      404  {object}  Envelope
// @Router       /api/v1/departments/{id} [get]
func (h *DepartmentHandler) Get(c echo.Context) error {
	dept, err := h.service.GetDepartment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return ok(c, toDepartmentResponse(dept))
}

// Create handles POST /api/v1/departments.
//
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDepartmentRequest  true  "Department details"
// @Success      200   {object}  Envelope{data=departmentResponse}
// @Failure      400   {object}  Envelope
// @Failure      409   {object}  Envelope
// @Failure      422   {object}  Envelope
// @Router       /api/v1/departments [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	var req createDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dept, err := h.service.CreateDepartment(c.Request().Context(), ports.CreateDepartmentInput{
		Code:        req.Code,
		Name:        req.Name,
		ParentCode:  req.ParentCode,
		Description: req.Description,
		Actor:       ctxUsername(c),
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("department", "create").Inc()
	return ok(c, toDepartmentResponse(dept))
}

// Update handles PUT /api/v1/departments/:id. Code is immutable.
//
// @Summary      Update a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Department id"
// @Param        body  body      updateDepartmentRequest  true  "Department details"
// @Success      200   {object}  Envelope{data=departmentResponse}
// @Failure      400   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Failure      422   {object}  Envelope
// @Router       /api/v1/departments/{id} [put]
func (h *DepartmentHandler) Update(c echo.Context) error {
	var req updateDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dept, err := h.service.UpdateDepartment(c.Request().Context(), c.Param("id"), ports.UpdateDepartmentInput{
		Name:        req.Name,
		ParentCode:  req.ParentCode,
		Description: req.Description,
		Actor:       ctxUsername(c),
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("department", "update").Inc()
	return ok(c, toDepartmentResponse(dept))
}

// Delete handles DELETE /api/v1/departments/:id. Departments with children
// cannot be deleted.
//
// @Summary      Delete a department
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Department id"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Failure      409  {object}  Envelope
// @Router       /api/v1/departments/{id} [delete]
func (h *DepartmentHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteDepartment(c.Request().Context(), c.Param("id"), ctxUsername(c)); err != nil {
		return err
	}
	metrics.MutationsTotal.WithLabelValues("department", "delete").Inc()
	return okMessage(c, "department deleted", nil)
}

// Users handles GET /api/v1/departments/:id/users, listing the accounts
// associated with the department.
//
// @Summary      List users in a department
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Department ID"
// @Success      200  {object}  Envelope{data=[]departmentMemberResponse}
// @Failure      404  {object}  Envelope
// @Router       /api/v1/departments/{id}/users [get]
func (h *DepartmentHandler) Users(c echo.Context) error {
	dept, err := h.service.GetDepartment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	users, err := h.service.ListUsersInDepartment(c.Request().Context(), dept.Code)
	if err != nil {
		return err
	}

	out := make([]departmentMemberResponse, len(users))
	for i, u := range users {
		out[i] = departmentMemberResponse{
			Username: u.Username,
			Realname: u.Realname,
			Email:    u.Email,
			Enabled:  u.Enabled(),
		}
	}
	return ok(c, out)
}
