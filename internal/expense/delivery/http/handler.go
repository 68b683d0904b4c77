package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/tair/ims-admin/internal/expense/domain"
	"github.com/tair/ims-admin/internal/expense/usecase/command"
	"github.com/tair/ims-admin/internal/expense/usecase/query"
	"github.com/tair/ims-admin/pkg/logger"
)

// ExpenseHandler handles HTTP requests for expenses
type ExpenseHandler struct {
	createHandler *command.CreateExpenseHandler
	updateHandler *command.UpdateExpenseHandler
	deleteHandler *command.DeleteExpenseHandler
	listHandler   *query.ListExpensesHandler
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(
	createHandler *command.CreateExpenseHandler,
	updateHandler *command.UpdateExpenseHandler,
	deleteHandler *command.DeleteExpenseHandler,
	listHandler *query.ListExpensesHandler,
) *ExpenseHandler {
	return &ExpenseHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		listHandler:   listHandler,
	}
}

// ExpenseRequest is the body of POST and PUT /api/expenses
type ExpenseRequest struct {
	Date        *domain.Date     `json:"date" swaggertype:"string" example:"2025-09-01"`
	Category    *string          `json:"category"`
	Amount      *decimal.Decimal `json:"amount" swaggertype:"number"`
	Description *string          `json:"description"`
}

// ListExpenses handles GET /api/expenses
func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	expenses, err := h.listHandler.Handle(r.Context(), query.ListExpensesQuery{
		Search:   params.Get("search"),
		Category: params.Get("category"),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list expenses")
		writeError(w, http.StatusInternalServerError, "Failed to fetch expenses")
		return
	}

	writeJSON(w, http.StatusOK, expenses)
}

// CreateExpense handles POST /api/expenses
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to create expense")
		return
	}

	cmd := command.CreateExpenseCommand{
		Date:        req.Date,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.Category != nil {
		cmd.Category = *req.Category
	}

	expense, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Failed to create expense")
		writeError(w, http.StatusBadRequest, "Failed to create expense")
		return
	}

	writeJSON(w, http.StatusCreated, expense)
}

// UpdateExpense handles PUT /api/expenses/{id}
func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to update expense")
		return
	}

	var req ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to update expense")
		return
	}

	expense, err := h.updateHandler.Handle(r.Context(), command.UpdateExpenseCommand{
		ID:          uint(id),
		Date:        req.Date,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Uint64("expense_id", id).Msg("Failed to update expense")
		writeError(w, http.StatusBadRequest, "Failed to update expense")
		return
	}

	writeJSON(w, http.StatusOK, expense)
}

// DeleteExpense handles DELETE /api/expenses/{id}
func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to delete expense")
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteExpenseCommand{ID: uint(id)}); err != nil {
		logger.Warn(r.Context()).Err(err).Uint64("expense_id", id).Msg("Failed to delete expense")
		writeError(w, http.StatusBadRequest, "Failed to delete expense")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegisterRoutes registers all expense routes
func (h *ExpenseHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/expenses", h.ListExpenses).Methods("GET")
	router.HandleFunc("/expenses", h.CreateExpense).Methods("POST")
	router.HandleFunc("/expenses/{id}", h.UpdateExpense).Methods("PUT")
	router.HandleFunc("/expenses/{id}", h.DeleteExpense).Methods("DELETE")
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
