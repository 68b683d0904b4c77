package command

import (
	"context"
	"fmt"

	"github.com/tair/ims-admin/internal/expense/domain"
	"github.com/tair/ims-admin/kafka"
)

// DeleteExpenseCommand represents the command to delete an expense
type DeleteExpenseCommand struct {
	ID uint
}

// DeleteExpenseHandler handles delete expense command
type DeleteExpenseHandler struct {
	repo      domain.ExpenseRepository
	publisher kafka.EventPublisher
}

// NewDeleteExpenseHandler creates a new delete expense handler
func NewDeleteExpenseHandler(repo domain.ExpenseRepository, publisher kafka.EventPublisher) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{repo: repo, publisher: publisher}
}

// Handle executes the delete expense command
func (h *DeleteExpenseHandler) Handle(ctx context.Context, cmd DeleteExpenseCommand) error {
	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	kafka.Notify(ctx, h.publisher, kafka.NewChangeEvent(kafka.EntityExpense, kafka.ActionDeleted, cmd.ID))
	return nil
}
