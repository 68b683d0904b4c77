package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/ims-admin/internal/apperr"
	"github.com/tair/ims-admin/internal/user/domain"
	"github.com/tair/ims-admin/kafka"
)

// UpdateUserCommand is a patch over a user; nil fields are left unchanged
type UpdateUserCommand struct {
	ID     uint
	Name   *string
	Email  *string
	Role   *string
	Status *string
}

// UpdateUserHandler handles user update command
type UpdateUserHandler struct {
	repo      domain.UserRepository
	publisher kafka.EventPublisher
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(repo domain.UserRepository, publisher kafka.EventPublisher) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo, publisher: publisher}
}

// Handle executes the update user command
func (h *UpdateUserHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*domain.User, error) {
	user, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if cmd.Name != nil {
		if strings.TrimSpace(*cmd.Name) == "" {
			return nil, apperr.Validation("name cannot be empty")
		}
		user.Name = *cmd.Name
	}
	if cmd.Email != nil {
		if strings.TrimSpace(*cmd.Email) == "" {
			return nil, apperr.Validation("email cannot be empty")
		}
		user.Email = *cmd.Email
	}
	if cmd.Role != nil {
		user.Role = *cmd.Role
	}
	if cmd.Status != nil {
		user.Status = *cmd.Status
	}
	if err := validateEnums(user); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	kafka.Notify(ctx, h.publisher, kafka.NewChangeEvent(kafka.EntityUser, kafka.ActionUpdated, user.ID))
	return user, nil
}
