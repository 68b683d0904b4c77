package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	dashboarddomain "github.com/tair/ims-admin/internal/dashboard/domain"
	"github.com/tair/ims-admin/internal/dashboard/repository"
	expensedomain "github.com/tair/ims-admin/internal/expense/domain"
	productdomain "github.com/tair/ims-admin/internal/product/domain"
	"github.com/tair/ims-admin/pkg/database"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	_ = godotenv.Load("../../../.env")

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := database.Open(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(&productdomain.Product{}, &expensedomain.Expense{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	if err := db.Exec("TRUNCATE TABLE products, expenses RESTART IDENTITY").Error; err != nil {
		t.Fatalf("Failed to truncate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestOverview_EmptyTables(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewGormOverviewRepository(db)
	ctx := context.Background()

	stock, err := repo.TotalStock(ctx)
	if err != nil || stock != 0 {
		t.Errorf("TotalStock = %d, %v; want 0", stock, err)
	}
	suppliers, err := repo.DistinctSuppliers(ctx)
	if err != nil || suppliers != 0 {
		t.Errorf("DistinctSuppliers = %d, %v; want 0", suppliers, err)
	}

	from, to := dashboarddomain.MonthBounds(time.Now())
	total, err := repo.ExpensesBetween(ctx, from, to)
	if err != nil || !total.IsZero() {
		t.Errorf("ExpensesBetween = %s, %v; want 0", total, err)
	}
}

func TestOverview_Aggregates(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewGormOverviewRepository(db)
	ctx := context.Background()

	products := []productdomain.Product{
		{Name: "Low", SKU: "LOW-1", Quantity: 5, LowStockThreshold: 10, Supplier: "TechSupply", Status: "active"},
		{Name: "Plenty", SKU: "OK-1", Quantity: 20, LowStockThreshold: 5, Supplier: "", Status: "active"},
		{Name: "Edge", SKU: "EDGE-1", Quantity: 0, LowStockThreshold: 0, Supplier: "TechSupply", Status: "active"},
	}
	if err := db.Create(&products).Error; err != nil {
		t.Fatalf("insert products: %v", err)
	}

	now := time.Now()
	from, to := dashboarddomain.MonthBounds(now)
	mkExpense := func(day time.Time, amount string) expensedomain.Expense {
		return expensedomain.Expense{
			Date:     expensedomain.NewDate(day.Year(), day.Month(), day.Day()),
			Category: "Utilities",
			Amount:   decimal.RequireFromString(amount),
		}
	}
	expenses := []expensedomain.Expense{
		mkExpense(from, "230.50"),
		mkExpense(from.AddDate(0, 0, -1), "1200.00"),
		mkExpense(to, "99.00"),
	}
	if err := db.Create(&expenses).Error; err != nil {
		t.Fatalf("insert expenses: %v", err)
	}

	stock, err := repo.TotalStock(ctx)
	if err != nil || stock != 25 {
		t.Errorf("TotalStock = %d, %v; want 25", stock, err)
	}

	low, err := repo.LowStockCount(ctx)
	if err != nil || low != 2 {
		t.Errorf("LowStockCount = %d, %v; want 2", low, err)
	}

	suppliers, err := repo.DistinctSuppliers(ctx)
	if err != nil || suppliers != 1 {
		t.Errorf("DistinctSuppliers = %d, %v; want 1", suppliers, err)
	}

	monthly, err := repo.ExpensesBetween(ctx, from, to)
	if err != nil || !monthly.Equal(decimal.RequireFromString("230.50")) {
		t.Errorf("ExpensesBetween = %s, %v; want 230.50", monthly, err)
	}
}
