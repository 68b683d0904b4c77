package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/tair/ims-admin/internal/apperr"
	"github.com/tair/ims-admin/internal/product/domain"
	"github.com/tair/ims-admin/internal/product/repository"
	"github.com/tair/ims-admin/pkg/database"
)

func setupRepo(t *testing.T) *repository.GormProductRepository {
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
	repo := repository.NewGormProductRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	if err := db.Exec("TRUNCATE TABLE products RESTART IDENTITY").Error; err != nil {
		t.Fatalf("Failed to truncate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return repo
}

func newProduct(name, sku, category string) *domain.Product {
	return &domain.Product{
		Name:              name,
		SKU:               sku,
		Category:          category,
		Quantity:          10,
		PurchasePrice:     decimal.RequireFromString("5.00"),
		SalePrice:         decimal.RequireFromString("9.99"),
		Status:            domain.StatusActive,
		LowStockThreshold: domain.DefaultLowStockThreshold,
	}
}

func TestGormProductRepository_DuplicateSKU(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, newProduct("Mouse", "MSE-1", "Accessories")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(ctx, newProduct("Other mouse", "MSE-1", "Accessories"))
	if !apperr.IsValidation(err) {
		t.Fatalf("duplicate sku err = %v, want validation", err)
	}
}

func TestGormProductRepository_FindAll(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	retired := newProduct("Mouse Pad", "MP-OLD", "Accessories")
	retired.Status = domain.StatusInactive

	for _, p := range []*domain.Product{
		newProduct("Wireless Mouse", "WM-001", "Accessories"),
		newProduct("Monitor 27", "MN-027", "Displays"),
		newProduct("Keyboard", "KB-MOUSE", "Accessories"),
		retired,
		newProduct("Bundle 50% Off", "BND-50", "Bundles"),
		newProduct("Drive 500GB", "HD-500", "Storage"),
	} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	tests := []struct {
		name   string
		filter domain.ProductFilter
		want   []string
	}{
		{"all newest first", domain.ProductFilter{}, []string{"HD-500", "BND-50", "MP-OLD", "KB-MOUSE", "MN-027", "WM-001"}},
		{"search is case insensitive on name and sku", domain.ProductFilter{Search: "mouse"}, []string{"MP-OLD", "KB-MOUSE", "WM-001"}},
		{"active status includes matches", domain.ProductFilter{Status: domain.StatusActive}, []string{"HD-500", "BND-50", "KB-MOUSE", "MN-027", "WM-001"}},
		{"search and active status", domain.ProductFilter{Search: "mouse", Status: domain.StatusActive}, []string{"KB-MOUSE", "WM-001"}},
		{"search and inactive status", domain.ProductFilter{Search: "MOUSE", Status: domain.StatusInactive}, []string{"MP-OLD"}},
		{"search and category", domain.ProductFilter{Search: "mouse", Category: "Accessories", Status: domain.StatusActive}, []string{"KB-MOUSE", "WM-001"}},
		{"category", domain.ProductFilter{Category: "Displays"}, []string{"MN-027"}},
		{"percent is literal", domain.ProductFilter{Search: "50%"}, []string{"BND-50"}},
		{"underscore is literal", domain.ProductFilter{Search: "_"}, []string{}},
		{"no match", domain.ProductFilter{Category: "Displays", Status: domain.StatusInactive}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := repo.FindAll(ctx, tt.filter)
			if err != nil {
				t.Fatalf("FindAll: %v", err)
			}
			if len(products) != len(tt.want) {
				t.Fatalf("got %d products, want %d", len(products), len(tt.want))
			}
			for i, sku := range tt.want {
				if products[i].SKU != sku {
					t.Errorf("products[%d].SKU = %s, want %s", i, products[i].SKU, sku)
				}
			}
		})
	}
}

func TestGormProductRepository_MissingRow(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, 999); !apperr.IsNotFound(err) {
		t.Errorf("FindByID err = %v, want not found", err)
	}
	if err := repo.Delete(ctx, 999); err != nil {
		t.Errorf("Delete missing = %v, want nil", err)
	}
}
