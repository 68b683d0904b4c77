package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	expensedomain "github.com/tair/ims-admin/internal/expense/domain"
	productdomain "github.com/tair/ims-admin/internal/product/domain"
	settingsdomain "github.com/tair/ims-admin/internal/settings/domain"
	userdomain "github.com/tair/ims-admin/internal/user/domain"
)

// Overview holds the dashboard headline figures
type Overview struct {
	TotalStock      int64           `json:"totalStock"`
	LowStockItems   int64           `json:"lowStockItems"`
	Suppliers       int64           `json:"suppliers"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses" swaggertype:"number"`
}

// OverviewRepository runs the aggregate statements behind Overview.
// Each method is a single independent statement.
type OverviewRepository interface {
	TotalStock(ctx context.Context) (int64, error)
	LowStockCount(ctx context.Context) (int64, error)
	DistinctSuppliers(ctx context.Context) (int64, error)
	ExpensesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}

// Clock returns the current time
type Clock func() time.Time

// MonthBounds returns the first day of now's month and the first day of
// the following month, both at midnight in now's location.
func MonthBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}

// ProductAssignment pairs a product with the user it is shown under
type ProductAssignment struct {
	ProductID uint `json:"product_id"`
	UserID    uint `json:"user_id"`
}

// Relationships carries the synthesized cross-entity links of a bundle
type Relationships struct {
	ProductAssignments []ProductAssignment `json:"productAssignments"`
}

// Bundle is the combined read returned by /data
type Bundle struct {
	Users         []userdomain.User        `json:"users"`
	Products      []productdomain.Product  `json:"products"`
	Expenses      []expensedomain.Expense  `json:"expenses"`
	Settings      *settingsdomain.Settings `json:"settings"`
	Relationships Relationships            `json:"relationships"`
}

// LoginBundle is the /login response: a Bundle plus the resolved user
type LoginBundle struct {
	Status string           `json:"status"`
	User   *userdomain.User `json:"user"`
	Bundle
}

// StatusLoggedIn is the only status /login reports
const StatusLoggedIn = "logged_in"

// AssignProducts assigns products to users round robin. The result is
// empty, never nil, when there are no users.
func AssignProducts(products []productdomain.Product, users []userdomain.User) []ProductAssignment {
	assignments := make([]ProductAssignment, 0, len(products))
	if len(users) == 0 {
		return assignments
	}
	for i, p := range products {
		assignments = append(assignments, ProductAssignment{
			ProductID: p.ID,
			UserID:    users[i%len(users)].ID,
		})
	}
	return assignments
}
