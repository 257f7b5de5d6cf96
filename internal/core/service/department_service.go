package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/userdept/admin-system/internal/core/domain"
	"github.com/userdept/admin-system/internal/core/ports"
)

// DepartmentService implements hierarchy management use cases. All parent
// assignments are validated against the acyclicity invariant before they are
// persisted.
type DepartmentService struct {
	repo   ports.DepartmentRepository
	users  ports.UserRepository
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewDepartmentService(repo ports.DepartmentRepository, users ports.UserRepository, audit ports.AuditSink, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{repo: repo, users: users, audit: audit, logger: logger}
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, input ports.CreateDepartmentInput) (*domain.Department, error) {
	if _, err := s.repo.FindByCode(ctx, input.Code); err == nil {
		return nil, domain.ErrDepartmentExists
	}

	if err := s.validateParent(ctx, input.Code, input.ParentCode); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	dept := &domain.Department{
		Code:        input.Code,
		Name:        input.Name,
		ParentCode:  input.ParentCode,
		Description: input.Description,
		Creator:     input.Actor,
		Modifier:    input.Actor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, dept)
	if err != nil {
		s.logger.Error().Err(err).Str("code", input.Code).Msg("failed to create department")
		return nil, err
	}

	s.logger.Info().Str("code", created.Code).Msg("department created")
	s.record(input.Actor, "create", created.ID, created.Code)
	return created, nil
}

func (s *DepartmentService) GetDepartment(ctx context.Context, id string) (*domain.Department, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DepartmentService) ListDepartments(ctx context.Context, filter ports.ListDepartmentsFilter) (*ports.ListDepartmentsResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = 10
	}
	if filter.PerPage > maxPerPage {
		filter.PerPage = maxPerPage
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.ListDepartmentsResult{
		Items:   items,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, nil
}

func (s *DepartmentService) GetTree(ctx context.Context) ([]*domain.Department, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.BuildTree(all), nil
}

// UpdateDepartment edits name, parent and description. Code never changes.
func (s *DepartmentService) UpdateDepartment(ctx context.Context, id string, input ports.UpdateDepartmentInput) (*domain.Department, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ParentCode != dept.ParentCode {
		if err := s.validateParent(ctx, dept.Code, input.ParentCode); err != nil {
			return nil, err
		}
	}

	dept.Name = input.Name
	dept.ParentCode = input.ParentCode
	dept.Description = input.Description
	dept.Modifier = input.Actor
	dept.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, dept); err != nil {
		s.logger.Error().Err(err).Str("code", dept.Code).Msg("failed to update department")
		return nil, err
	}

	s.record(input.Actor, "update", dept.ID, dept.Code)
	return dept, nil
}

// DeleteDepartment refuses to remove a department that still has children.
// Allowing the delete would leave the children with a dangling parent code.
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id, actor string) error {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	hasChildren, err := s.repo.HasChildren(ctx, dept.Code)
	if err != nil {
		return err
	}
	if hasChildren {
		s.logger.Warn().Str("code", dept.Code).Msg("delete rejected: department has children")
		return domain.ErrHasChildren
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Deleting the department must also drop its code from every user that
	// carries it, or member lists would keep pointing at a dead code.
	if err := s.users.RemoveDepartmentCode(ctx, dept.Code); err != nil {
		s.logger.Error().Err(err).Str("code", dept.Code).Msg("failed to detach users from deleted department")
		return err
	}

	s.logger.Info().Str("code", dept.Code).Msg("department deleted")
	s.record(actor, "delete", id, dept.Code)
	return nil
}

func (s *DepartmentService) ListUsersInDepartment(ctx context.Context, code string) ([]*domain.User, error) {
	if _, err := s.repo.FindByCode(ctx, code); err != nil {
		return nil, err
	}
	return s.users.ListByDepartment(ctx, code)
}

func (s *DepartmentService) validateParent(ctx context.Context, code, parentCode string) error {
	if parentCode == "" {
		return nil
	}
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}
	return domain.ValidateParentAssignment(code, parentCode, all)
}

func (s *DepartmentService) record(actor, action, entityID, detail string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuditEntry{
		Actor:     actor,
		Action:    action,
		Entity:    "department",
		EntityID:  entityID,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}
