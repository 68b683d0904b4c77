package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices are rendered as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// Status values used by the admin client
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// DefaultLowStockThreshold applies when a product is created without one
const DefaultLowStockThreshold = 10

// Product represents the product entity
type Product struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	Name              string          `json:"name" gorm:"not null"`
	SKU               string          `json:"sku" gorm:"uniqueIndex;not null"`
	Category          string          `json:"category"`
	Quantity          int             `json:"quantity" gorm:"not null"`
	Supplier          string          `json:"supplier"`
	PurchasePrice     decimal.Decimal `json:"purchase_price" gorm:"type:decimal(10,2);not null"`
	SalePrice         decimal.Decimal `json:"sale_price" gorm:"type:decimal(10,2);not null"`
	Status            string          `json:"status" gorm:"not null;default:active"`
	LowStockThreshold int             `json:"low_stock_threshold" gorm:"not null"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether quantity has reached the product's own threshold
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.LowStockThreshold
}

// ProductFilter narrows a product listing. Empty fields do not filter.
type ProductFilter struct {
	Search   string // substring of name or sku
	Category string
	Supplier string
	Status   string
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	FindAll(ctx context.Context, filter ProductFilter) ([]Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
}
