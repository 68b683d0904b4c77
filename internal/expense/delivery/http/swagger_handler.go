package http

// ListExpenses godoc
// @Summary List expenses
// @Description List every expense, most recent date first
// @Tags Expenses
// @Produce json
// @Param search query string false "Substring of category or description"
// @Param category query string false "Exact category"
// @Success 200 {array} domain.Expense
// @Failure 500 {object} object{error=string}
// @Router /api/expenses [get]
func (h *ExpenseHandler) ListExpensesDoc() {}

// CreateExpense godoc
// @Summary Record expense
// @Description date, category and amount are required
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body ExpenseRequest true "Expense data"
// @Success 201 {object} domain.Expense
// @Failure 400 {object} object{error=string}
// @Router /api/expenses [post]
func (h *ExpenseHandler) CreateExpenseDoc() {}

// UpdateExpense godoc
// @Summary Update expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Param request body ExpenseRequest true "Fields to change"
// @Success 200 {object} domain.Expense
// @Failure 400 {object} object{error=string}
// @Router /api/expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpenseDoc() {}

// DeleteExpense godoc
// @Summary Delete expense
// @Tags Expenses
// @Param id path int true "Expense ID"
// @Success 204
// @Router /api/expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpenseDoc() {}
