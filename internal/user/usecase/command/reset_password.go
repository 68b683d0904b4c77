package command

import (
	"context"
	"fmt"

	"github.com/tair/ims-admin/internal/user/domain"
	"github.com/tair/ims-admin/kafka"
)

// ResetPasswordCommand represents the command to reset a user's password
type ResetPasswordCommand struct {
	UserID uint
}

// ResetPasswordHandler stores a fixed placeholder credential on the user.
// It does not issue a real credential; the placeholder is the same for
// every reset.
type ResetPasswordHandler struct {
	repo        domain.UserRepository
	publisher   kafka.EventPublisher
	placeholder string
}

// NewResetPasswordHandler creates a new reset password handler
func NewResetPasswordHandler(repo domain.UserRepository, publisher kafka.EventPublisher, placeholder string) *ResetPasswordHandler {
	return &ResetPasswordHandler{repo: repo, publisher: publisher, placeholder: placeholder}
}

// Handle executes the reset password command
func (h *ResetPasswordHandler) Handle(ctx context.Context, cmd ResetPasswordCommand) (*domain.User, error) {
	user, err := h.repo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	temp := h.placeholder
	user.TempPassword = &temp

	if err := h.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to reset password: %w", err)
	}

	kafka.Notify(ctx, h.publisher, kafka.NewChangeEvent(kafka.EntityUser, kafka.ActionPasswordReset, user.ID))
	return user, nil
}
