package query

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/ims-admin/internal/dashboard/domain"
)

// OverviewMetrics exports the last computed overview as gauges
type OverviewMetrics struct {
	totalStock      prometheus.Gauge
	lowStockItems   prometheus.Gauge
	suppliers       prometheus.Gauge
	monthlyExpenses prometheus.Gauge
}

// NewOverviewMetrics creates the gauges and registers them with reg
func NewOverviewMetrics(reg prometheus.Registerer) *OverviewMetrics {
	m := &OverviewMetrics{
		totalStock: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ims_inventory_total_stock",
			Help: "Sum of product quantities",
		}),
		lowStockItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ims_inventory_low_stock_items",
			Help: "Products at or below their low stock threshold",
		}),
		suppliers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ims_inventory_suppliers",
			Help: "Distinct suppliers across products",
		}),
		monthlyExpenses: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ims_expenses_current_month_total",
			Help: "Sum of expense amounts dated in the current month",
		}),
	}

	reg.MustRegister(m.totalStock, m.lowStockItems, m.suppliers, m.monthlyExpenses)
	return m
}

func (m *OverviewMetrics) observe(o domain.Overview) {
	if m == nil {
		return
	}
	m.totalStock.Set(float64(o.TotalStock))
	m.lowStockItems.Set(float64(o.LowStockItems))
	m.suppliers.Set(float64(o.Suppliers))
	m.monthlyExpenses.Set(o.MonthlyExpenses.InexactFloat64())
}

// GetOverviewHandler computes the dashboard overview
type GetOverviewHandler struct {
	repo    domain.OverviewRepository
	metrics *OverviewMetrics
	now     domain.Clock
}

// NewGetOverviewHandler creates a new get overview handler
func NewGetOverviewHandler(repo domain.OverviewRepository, metrics *OverviewMetrics, now domain.Clock) *GetOverviewHandler {
	return &GetOverviewHandler{repo: repo, metrics: metrics, now: now}
}

// Handle runs the four aggregate statements in turn. They are not
// wrapped in a transaction.
func (h *GetOverviewHandler) Handle(ctx context.Context) (*domain.Overview, error) {
	var (
		overview domain.Overview
		err      error
	)

	if overview.TotalStock, err = h.repo.TotalStock(ctx); err != nil {
		return nil, fmt.Errorf("failed to get total stock: %w", err)
	}
	if overview.LowStockItems, err = h.repo.LowStockCount(ctx); err != nil {
		return nil, fmt.Errorf("failed to get low stock items: %w", err)
	}
	if overview.Suppliers, err = h.repo.DistinctSuppliers(ctx); err != nil {
		return nil, fmt.Errorf("failed to get suppliers: %w", err)
	}

	from, to := domain.MonthBounds(h.now())
	if overview.MonthlyExpenses, err = h.repo.ExpensesBetween(ctx, from, to); err != nil {
		return nil, fmt.Errorf("failed to get monthly expenses: %w", err)
	}

	h.metrics.observe(overview)
	return &overview, nil
}
