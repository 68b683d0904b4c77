package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are rendered as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// Expense is a single monetary outflow. The currency is global (Settings).
type Expense struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Date        Date            `json:"date" gorm:"type:date;not null;index"`
	Category    string          `json:"category" gorm:"not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName specifies the table name
func (Expense) TableName() string {
	return "expenses"
}

// ExpenseFilter narrows an expense listing. Empty fields do not filter.
type ExpenseFilter struct {
	Search   string // substring of category or description
	Category string
}

// ExpenseRepository defines the contract for expense data access
type ExpenseRepository interface {
	Create(ctx context.Context, expense *Expense) error
	FindByID(ctx context.Context, id uint) (*Expense, error)
	FindAll(ctx context.Context, filter ExpenseFilter) ([]Expense, error)
	Update(ctx context.Context, expense *Expense) error
	Delete(ctx context.Context, id uint) error
}
