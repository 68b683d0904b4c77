package command

import (
	"context"
	"fmt"

	"github.com/tair/ims-admin/internal/user/domain"
	"github.com/tair/ims-admin/kafka"
)

// DeleteUserCommand represents the command to delete a user
type DeleteUserCommand struct {
	ID uint
}

// DeleteUserHandler handles user deletion command
type DeleteUserHandler struct {
	repo      domain.UserRepository
	publisher kafka.EventPublisher
}

// NewDeleteUserHandler creates a new delete user handler
func NewDeleteUserHandler(repo domain.UserRepository, publisher kafka.EventPublisher) *DeleteUserHandler {
	return &DeleteUserHandler{repo: repo, publisher: publisher}
}

// Handle executes the delete user command
func (h *DeleteUserHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	kafka.Notify(ctx, h.publisher, kafka.NewChangeEvent(kafka.EntityUser, kafka.ActionDeleted, cmd.ID))
	return nil
}
