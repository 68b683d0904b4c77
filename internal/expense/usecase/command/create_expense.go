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

// CreateExpenseCommand represents the command to record an expense
type CreateExpenseCommand struct {
	Date        *domain.Date
	Category    string
	Amount      *decimal.Decimal
	Description *string
}

// CreateExpenseHandler handles create expense command
type CreateExpenseHandler struct {
	repo      domain.ExpenseRepository
	publisher kafka.EventPublisher
}

// NewCreateExpenseHandler creates a new create expense handler
func NewCreateExpenseHandler(repo domain.ExpenseRepository, publisher kafka.EventPublisher) *CreateExpenseHandler {
	return &CreateExpenseHandler{repo: repo, publisher: publisher}
}

// Handle executes the create expense command
func (h *CreateExpenseHandler) Handle(ctx context.Context, cmd CreateExpenseCommand) (*domain.Expense, error) {
	if cmd.Date == nil || cmd.Date.IsZero() {
		return nil, apperr.Validation("date is required")
	}
	if strings.TrimSpace(cmd.Category) == "" {
		return nil, apperr.Validation("category is required")
	}
	if cmd.Amount == nil {
		return nil, apperr.Validation("amount is required")
	}

	expense := &domain.Expense{
		Date:        *cmd.Date,
		Category:    cmd.Category,
		Amount:      cmd.Amount.Round(2),
		Description: cmd.Description,
	}

	if err := h.repo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	kafka.Notify(ctx, h.publisher, kafka.NewChangeEvent(kafka.EntityExpense, kafka.ActionCreated, expense.ID))
	return expense, nil
}
