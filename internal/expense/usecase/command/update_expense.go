package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tair/ims-admin/internal/apperr"
	"github.com/tair/ims-admin/internal/expense/domain"
	"github.com/tair/ims-admin/kafka"
)

// UpdateExpenseCommand is a patch; nil fields keep their stored value
type UpdateExpenseCommand struct {
	ID          uint
	Date        *domain.Date
	Category    *string
	Amount      *decimal.Decimal
	Description *string
}

// UpdateExpenseHandler handles update expense command
type UpdateExpenseHandler struct {
	repo      domain.ExpenseRepository
	publisher kafka.EventPublisher
}

// NewUpdateExpenseHandler creates a new update expense handler
func NewUpdateExpenseHandler(repo domain.ExpenseRepository, publisher kafka.EventPublisher) *UpdateExpenseHandler {
	return &UpdateExpenseHandler{repo: repo, publisher: publisher}
}

// Handle executes the update expense command
func (h *UpdateExpenseHandler) Handle(ctx context.Context, cmd UpdateExpenseCommand) (*domain.Expense, error) {
	expense, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense: %w", err)
	}

	if cmd.Date != nil {
		if cmd.Date.IsZero() {
			return nil, apperr.Validation("date cannot be empty")
		}
		expense.Date = *cmd.Date
	}
	if cmd.Category != nil {
		if strings.TrimSpace(*cmd.Category) == "" {
			return nil, apperr.Validation("category cannot be empty")
		}
		expense.Category = *cmd.Category
	}
	if cmd.Amount != nil {
		expense.Amount = cmd.Amount.Round(2)
	}
	if cmd.Description != nil {
		expense.Description = cmd.Description
	}

	if err := h.repo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	kafka.Notify(ctx, h.publisher, kafka.NewChangeEvent(kafka.EntityExpense, kafka.ActionUpdated, expense.ID))
	return expense, nil
}
