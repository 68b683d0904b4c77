package query

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tair/ims-admin/internal/dashboard/domain"
	expensedomain "github.com/tair/ims-admin/internal/expense/domain"
	productdomain "github.com/tair/ims-admin/internal/product/domain"
	settingsdomain "github.com/tair/ims-admin/internal/settings/domain"
	userdomain "github.com/tair/ims-admin/internal/user/domain"
)

// DefaultDemoEmail picks the demo user when /login is called without one
const DefaultDemoEmail = "alice@example.com"

// dataDemo is served by /data when the tables are empty, and by both
// /data and /login when the store fails.
func dataDemo() domain.Bundle {
	users := []userdomain.User{
		demoUser(1, "Alice Admin", "alice@example.com", userdomain.RoleAdmin),
		demoUser(2, "Bob Staff", "bob@example.com", userdomain.RoleStaff),
	}
	products := []productdomain.Product{
		demoProduct(1, "Laptop", "LAP-001", "Computers", 10, "TechSupply", "800", "1199", 5),
		demoProduct(2, "Mouse", "MSE-010", "Accessories", 60, "GadgetHub", "8", "19.99", 20),
	}
	expenses := []expensedomain.Expense{
		demoExpense(1, 2025, 9, 1, "Rent", "1200", "Office rent"),
		demoExpense(2, 2025, 9, 10, "Supplies", "200", "Stationery"),
	}

	return domain.Bundle{
		Users:         users,
		Products:      products,
		Expenses:      expenses,
		Settings:      demoSettings("Demo Co"),
		Relationships: domain.Relationships{ProductAssignments: domain.AssignProducts(products, users)},
	}
}

// loginDemo is served by /login when the tables are empty
func loginDemo() domain.Bundle {
	users := []userdomain.User{
		demoUser(1, "Alice Admin", "alice@example.com", userdomain.RoleAdmin),
		demoUser(2, "Bob Staff", "bob@example.com", userdomain.RoleStaff),
		demoUser(3, "Carol Manager", "carol@example.com", userdomain.RoleManager),
	}
	products := []productdomain.Product{
		demoProduct(1, `Laptop Pro 14"`, "LP14-PRO", "Computers", 12, "TechSupply", "900", "1299", 5),
		demoProduct(2, "Wireless Mouse", "WM-200", "Accessories", 85, "GadgetHub", "10", "24.99", 20),
		demoProduct(3, "USB-C Hub", "HUB-7IN1", "Accessories", 34, "GadgetHub", "18", "39.99", 10),
	}
	expenses := []expensedomain.Expense{
		demoExpense(1, 2025, 9, 1, "Rent", "1500.00", "Warehouse rent"),
		demoExpense(2, 2025, 9, 10, "Utilities", "220.40", "Electricity and water"),
		demoExpense(3, 2025, 9, 15, "Supplies", "310.75", "Packing materials"),
	}

	return domain.Bundle{
		Users:         users,
		Products:      products,
		Expenses:      expenses,
		Settings:      demoSettings("Acme Retail"),
		Relationships: domain.Relationships{ProductAssignments: domain.AssignProducts(products, users)},
	}
}

func demoUser(id uint, name, email, role string) userdomain.User {
	return userdomain.User{ID: id, Name: name, Email: email, Role: role, Status: userdomain.StatusActive}
}

func demoProduct(id uint, name, sku, category string, qty int, supplier, purchase, sale string, threshold int) productdomain.Product {
	return productdomain.Product{
		ID:                id,
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

func demoExpense(id uint, year int, month time.Month, day int, category, amount, description string) expensedomain.Expense {
	return expensedomain.Expense{
		ID:          id,
		Date:        expensedomain.NewDate(year, month, day),
		Category:    category,
		Amount:      decimal.RequireFromString(amount),
		Description: &description,
	}
}

func demoSettings(company string) *settingsdomain.Settings {
	s := settingsdomain.NewDefault()
	s.ID = 1
	s.CompanyName = company
	return s
}
