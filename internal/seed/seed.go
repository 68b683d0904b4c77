// Package seed resets tables to a fixed demo dataset.
package seed

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	expensedomain "github.com/tair/ims-admin/internal/expense/domain"
	productdomain "github.com/tair/ims-admin/internal/product/domain"
	settingsdomain "github.com/tair/ims-admin/internal/settings/domain"
	userdomain "github.com/tair/ims-admin/internal/user/domain"
	"github.com/tair/ims-admin/pkg/logger"
)

// Table names accepted by Run
const (
	TableProducts = "products"
	TableUsers    = "users"
	TableExpenses = "expenses"
	TableSettings = "settings"
)

type seeder func(tx *gorm.DB) (int, error)

var seeders = map[string]seeder{
	TableProducts: seedProducts,
	TableUsers:    seedUsers,
	TableExpenses: seedExpenses,
	TableSettings: seedSettings,
}

// Tables lists every seedable table in a stable order
func Tables() []string {
	tables := make([]string, 0, len(seeders))
	for name := range seeders {
		tables = append(tables, name)
	}
	sort.Strings(tables)
	return tables
}

// Run deletes every row of each named table and inserts its fixed rows.
// Each table is reset in its own transaction; an empty list seeds all.
func Run(ctx context.Context, db *gorm.DB, tables ...string) error {
	if len(tables) == 0 {
		tables = Tables()
	}

	for _, name := range tables {
		fn, ok := seeders[name]
		if !ok {
			return fmt.Errorf("unknown seed table %q", name)
		}

		var inserted int
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var err error
			inserted, err = fn(tx)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", name, err)
		}

		logger.Info(ctx).Str("table", name).Int("rows", inserted).Msg("Table seeded")
	}
	return nil
}

func reset(tx *gorm.DB, model interface{}) error {
	return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error
}

func seedProducts(tx *gorm.DB) (int, error) {
	if err := reset(tx, &productdomain.Product{}); err != nil {
		return 0, err
	}
	rows := []productdomain.Product{
		product("Wireless Mouse", "WM-001", "Accessories", 150, "TechSupply", "8.5", "19.99", 20),
		product("Mechanical Keyboard", "MK-002", "Accessories", 35, "KeyMasters", "45.0", "89.99", 15),
		product(`27" Monitor`, "MN-027", "Displays", 8, "DisplayWorld", "120.0", "199.99", 10),
		product("USB-C Cable", "UC-010", "Cables", 400, "CableCo", "2.0", "6.99", 50),
	}
	return len(rows), tx.Create(&rows).Error
}

func seedUsers(tx *gorm.DB) (int, error) {
	if err := reset(tx, &userdomain.User{}); err != nil {
		return 0, err
	}
	rows := []userdomain.User{
		{Name: "Admin User", Email: "admin@example.com", Role: userdomain.RoleAdmin, Status: userdomain.StatusActive},
		{Name: "Manager Jane", Email: "jane.manager@example.com", Role: userdomain.RoleManager, Status: userdomain.StatusActive},
		{Name: "Staff John", Email: "john.staff@example.com", Role: userdomain.RoleStaff, Status: userdomain.StatusActive},
	}
	return len(rows), tx.Create(&rows).Error
}

func seedExpenses(tx *gorm.DB) (int, error) {
	if err := reset(tx, &expensedomain.Expense{}); err != nil {
		return 0, err
	}
	rows := []expensedomain.Expense{
		expense(1, "Utilities", "230.50", "Electricity bill"),
		expense(5, "Supplies", "480.00", "Packaging materials"),
		expense(10, "Logistics", "1200.00", "Monthly shipping contract"),
	}
	return len(rows), tx.Create(&rows).Error
}

func seedSettings(tx *gorm.DB) (int, error) {
	if err := reset(tx, &settingsdomain.Settings{}); err != nil {
		return 0, err
	}
	row := settingsdomain.NewDefault()
	row.CompanyName = "Acme Retail"
	return 1, tx.Create(row).Error
}

func product(name, sku, category string, qty int, supplier, purchase, sale string, threshold int) productdomain.Product {
	return productdomain.Product{
		Name:              name,
		SKU:               sku,
		Category:          category,
		Quantity:          qty,
		Supplier:          supplier,
		PurchasePrice:     decimal.RequireFromString(purchase),
		SalePrice:         decimal.RequireFromString(sale),
		Status:            productdomain.StatusActive,
		LowStockThreshold: threshold,
	}
}

// expense builds a September 2025 expense
func expense(day int, category, amount, description string) expensedomain.Expense {
	return expensedomain.Expense{
		Date:        expensedomain.NewDate(2025, 9, day),
		Category:    category,
		Amount:      decimal.RequireFromString(amount),
		Description: &description,
	}
}
