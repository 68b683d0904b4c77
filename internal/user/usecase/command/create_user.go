package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/ims-admin/internal/apperr"
	"github.com/tair/ims-admin/internal/user/domain"
	"github.com/tair/ims-admin/kafka"
)

// CreateUserCommand represents the command to create a user
type CreateUserCommand struct {
	Name   string
	Email  string
	Role   string
	Status string
}

// CreateUserHandler handles user creation command
type CreateUserHandler struct {
	repo      domain.UserRepository
	publisher kafka.EventPublisher
}

// NewCreateUserHandler creates a new create user handler
func NewCreateUserHandler(repo domain.UserRepository, publisher kafka.EventPublisher) *CreateUserHandler {
	return &CreateUserHandler{repo: repo, publisher: publisher}
}

// Handle executes the create user command
func (h *CreateUserHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*domain.User, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, apperr.Validation("name is required")
	}
	if strings.TrimSpace(cmd.Email) == "" {
		return nil, apperr.Validation("email is required")
	}

	user := &domain.User{
		Name:   cmd.Name,
		Email:  cmd.Email,
		Role:   cmd.Role,
		Status: cmd.Status,
	}
	if user.Role == "" {
		user.Role = domain.RoleStaff
	}
	if user.Status == "" {
		user.Status = domain.StatusActive
	}
	if err := validateEnums(user); err != nil {
		return nil, err
	}

	if err := h.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	kafka.Notify(ctx, h.publisher, kafka.NewChangeEvent(kafka.EntityUser, kafka.ActionCreated, user.ID))
	return user, nil
}

func validateEnums(user *domain.User) error {
	if !domain.ValidRole(user.Role) {
		return apperr.Validation("unknown role %q", user.Role)
	}
	if !domain.ValidStatus(user.Status) {
		return apperr.Validation("unknown status %q", user.Status)
	}
	return nil
}
