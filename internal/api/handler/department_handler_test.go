package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/userdept/admin-system/internal/core/domain"
	"github.com/userdept/admin-system/internal/core/ports"
)

type stubDepartmentService struct {
	listFilter ports.ListDepartmentsFilter
	listResult *ports.ListDepartmentsResult
	tree       []*domain.Department
	err        error
}

func (s *stubDepartmentService) CreateDepartment(_ context.Context, input ports.CreateDepartmentInput) (*domain.Department, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Department{Code: input.Code, Name: input.Name, ParentCode: input.ParentCode}, nil
}

func (s *stubDepartmentService) GetDepartment(_ context.Context, id string) (*domain.Department, error) {
	return nil, s.err
}

func (s *stubDepartmentService) ListDepartments(_ context.Context, filter ports.ListDepartmentsFilter) (*ports.ListDepartmentsResult, error) {
	s.listFilter = filter
	return s.listResult, s.err
}

func (s *stubDepartmentService) GetTree(_ context.Context) ([]*domain.Department, error) {
	return s.tree, s.err
}

func (s *stubDepartmentService) UpdateDepartment(_ context.Context, id string, input ports.UpdateDepartmentInput) (*domain.Department, error) {
	return nil, s.err
}

func (s *stubDepartmentService) DeleteDepartment(_ context.Context, id, actor string) error {
	return s.err
}

func (s *stubDepartmentService) ListUsersInDepartment(_ context.Context, code string) ([]*domain.User, error) {
	return nil, s.err
}

var _ ports.DepartmentService = (*stubDepartmentService)(nil)

func TestDepartmentHandlerListForwardsPaging(t *testing.T) {
	svc := &stubDepartmentService{
		listResult: &ports.ListDepartmentsResult{
			Items:   []*domain.Department{{Code: "HQ", Name: "Headquarters"}},
			Total:   1,
			Page:    3,
			PerPage: 5,
		},
	}
	h := NewDepartmentHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/departments?page=3&per_page=5&search=head", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if svc.listFilter.Page != 3 || svc.listFilter.PerPage != 5 {
		t.Errorf("filter paging = %d/%d, want 3/5", svc.listFilter.Page, svc.listFilter.PerPage)
	}
	if svc.listFilter.Search != "head" {
		t.Errorf("filter search = %q, want head", svc.listFilter.Search)
	}

	var env struct {
		Data struct {
			List    []json.RawMessage `json:"list"`
			Total   int64             `json:"total"`
			Current int               `json:"current"`
			Size    int               `json:"size"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(env.Data.List) != 1 || env.Data.Total != 1 || env.Data.Current != 3 || env.Data.Size != 5 {
		t.Errorf("page data = %d items total=%d current=%d size=%d", len(env.Data.List), env.Data.Total, env.Data.Current, env.Data.Size)
	}
}

func TestDepartmentHandlerTreeRendersChildren(t *testing.T) {
	svc := &stubDepartmentService{
		tree: []*domain.Department{
			{
				Code: "HQ",
				Name: "Headquarters",
				Children: []*domain.Department{
					{Code: "ENG", Name: "Engineering", ParentCode: "HQ"},
				},
			},
		},
	}
	h := NewDepartmentHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/departments/tree", "")
	if err := h.Tree(c); err != nil {
		t.Fatalf("Tree returned error: %v", err)
	}

	var env struct {
		Data []struct {
			Code     string `json:"code"`
			Children []struct {
				Code string `json:"code"`
			} `json:"children"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(env.Data) != 1 || env.Data[0].Code != "HQ" {
		t.Fatalf("roots = %+v, want single HQ root", env.Data)
	}
	if len(env.Data[0].Children) != 1 || env.Data[0].Children[0].Code != "ENG" {
		t.Errorf("children = %+v, want single ENG child", env.Data[0].Children)
	}
}

func TestDepartmentHandlerCreateConflict(t *testing.T) {
	svc := &stubDepartmentService{err: domain.ErrDepartmentExists}
	h := NewDepartmentHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/departments", `{"code":"HQ","name":"Headquarters"}`)
	err := h.Create(c)
	if !errors.Is(err, domain.ErrDepartmentExists) {
		t.Fatalf("Create error = %v, want ErrDepartmentExists", err)
	}
}
