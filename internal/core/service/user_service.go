package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/userdept/admin-system/internal/core/domain"
	"github.com/userdept/admin-system/internal/core/ports"
)

const maxPerPage = 100

// UserService implements account management use cases.
type UserService struct {
	repo   ports.UserRepository
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, audit ports.AuditSink, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, audit: audit, logger: logger}
}

func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:        input.Username,
		Realname:        input.Realname,
		Email:           input.Email,
		Mobile:          input.Mobile,
		Status:          statusOf(input.Enabled),
		PasswordHash:    string(hash),
		DepartmentCodes: input.DepartmentCodes,
		Creator:         input.Actor,
		Modifier:        input.Actor,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user created")
	s.record(input.Actor, "create", created.ID, created.Username)
	return created, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, filter ports.ListUsersFilter) (*ports.ListUsersResult, error) {
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
	return &ports.ListUsersResult{
		Items:   items,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Realname = input.Realname
	user.Email = input.Email
	user.Mobile = input.Mobile
	user.Status = statusOf(input.Enabled)
	user.DepartmentCodes = input.DepartmentCodes
	user.Modifier = input.Actor
	user.UpdatedAt = time.Now().UTC()

	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("failed to update user")
		return nil, err
	}

	s.record(input.Actor, "update", user.ID, user.Username)
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id, actor string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("username", user.Username).Msg("user deleted")
	s.record(actor, "delete", id, user.Username)
	return nil
}

func (s *UserService) SetUserStatus(ctx context.Context, id string, enabled bool, actor string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	user.Status = statusOf(enabled)
	user.Modifier = actor
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.record(actor, "status", id, fmt.Sprintf("%s enabled=%t", user.Username, enabled))
	return nil
}

func (s *UserService) ResetPassword(ctx context.Context, id, actor string) (string, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	plain := generatePassword()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user.PasswordHash = string(hash)
	user.Modifier = actor
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return "", err
	}

	s.logger.Info().Str("username", user.Username).Msg("password reset")
	s.record(actor, "reset-password", id, user.Username)
	return plain, nil
}

func (s *UserService) record(actor, action, entityID, detail string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuditEntry{
		Actor:     actor,
		Action:    action,
		Entity:    "user",
		EntityID:  entityID,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}

func statusOf(enabled bool) int {
	if enabled {
		return domain.StatusEnabled
	}
	return domain.StatusDisabled
}

// generatePassword returns a random credential in the format UD-XXXXXXXX
// used for server-side resets.
func generatePassword() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("UD-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("UD-%08X", b)
}
