package http

// Health godoc
// @Summary Health check
// @Tags Dashboard
// @Produce json
// @Success 200 {object} object{status=string}
// @Router /api/health [get]
func (h *DashboardHandler) HealthDoc() {}

// Data godoc
// @Summary Combined data bundle
// @Description Users, products, expenses, settings and product assignments. Demo data is returned when the tables are empty or unreadable.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.Bundle
// @Router /api/data [get]
func (h *DashboardHandler) DataDoc() {}

// Login godoc
// @Summary Demo login
// @Description Returns the data bundle and the user matching email
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body LoginRequest false "Login"
// @Success 200 {object} domain.LoginBundle
// @Router /api/login [post]
func (h *DashboardHandler) LoginDoc() {}

// Overview godoc
// @Summary Dashboard overview
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.Overview
// @Failure 500 {object} object{error=string}
// @Router /api/dashboard/overview [get]
func (h *DashboardHandler) OverviewDoc() {}
