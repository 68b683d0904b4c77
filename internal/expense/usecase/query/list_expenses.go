package query

import (
	"context"
	"fmt"

	"github.com/tair/ims-admin/internal/expense/domain"
)

// ListExpensesQuery represents the query to list expenses
type ListExpensesQuery struct {
	Search   string
	Category string
}

// ListExpensesHandler handles list expenses query
type ListExpensesHandler struct {
	repo domain.ExpenseRepository
}

// NewListExpensesHandler creates a new list expenses handler
func NewListExpensesHandler(repo domain.ExpenseRepository) *ListExpensesHandler {
	return &ListExpensesHandler{repo: repo}
}

// Handle executes the list expenses query
func (h *ListExpensesHandler) Handle(ctx context.Context, query ListExpensesQuery) ([]domain.Expense, error) {
	expenses, err := h.repo.FindAll(ctx, domain.ExpenseFilter{
		Search:   query.Search,
		Category: query.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}
