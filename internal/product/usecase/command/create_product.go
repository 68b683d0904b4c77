package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tair/ims-admin/internal/apperr"
	"github.com/tair/ims-admin/internal/product/domain"
	"github.com/tair/ims-admin/kafka"
)

// CreateProductCommand represents the command to create a new product.
// Nil pointers take the column default.
type CreateProductCommand struct {
	Name              string
	SKU               string
	Category          string
	Quantity          *int
	Supplier          string
	PurchasePrice     *decimal.Decimal
	SalePrice         *decimal.Decimal
	Status            string
	LowStockThreshold *int
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo      domain.ProductRepository
	publisher kafka.EventPublisher
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository, publisher kafka.EventPublisher) *CreateProductHandler {
	return &CreateProductHandler{repo: repo, publisher: publisher}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, apperr.Validation("product name is required")
	}
	if strings.TrimSpace(cmd.SKU) == "" {
		return nil, apperr.Validation("sku is required")
	}

	product := &domain.Product{
		Name:              cmd.Name,
		SKU:               cmd.SKU,
		Category:          cmd.Category,
		Supplier:          cmd.Supplier,
		Status:            cmd.Status,
		PurchasePrice:     decimal.Zero,
		SalePrice:         decimal.Zero,
		LowStockThreshold: domain.DefaultLowStockThreshold,
	}
	if product.Status == "" {
		product.Status = domain.StatusActive
	}

	applyNumbers(product, cmd.Quantity, cmd.PurchasePrice, cmd.SalePrice, cmd.LowStockThreshold)
	if err := validateNumbers(product); err != nil {
		return nil, err
	}

	if err := h.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	kafka.Notify(ctx, h.publisher, kafka.NewChangeEvent(kafka.EntityProduct, kafka.ActionCreated, product.ID))
	return product, nil
}

func applyNumbers(p *domain.Product, quantity *int, purchase, sale *decimal.Decimal, threshold *int) {
	if quantity != nil {
		p.Quantity = *quantity
	}
	if purchase != nil {
		p.PurchasePrice = *purchase
	}
	if sale != nil {
		p.SalePrice = *sale
	}
	if threshold != nil {
		p.LowStockThreshold = *threshold
	}
}

func validateNumbers(p *domain.Product) error {
	switch {
	case p.Quantity < 0:
		return apperr.Validation("quantity cannot be negative")
	case p.PurchasePrice.IsNegative():
		return apperr.Validation("purchase_price cannot be negative")
	case p.SalePrice.IsNegative():
		return apperr.Validation("sale_price cannot be negative")
	case p.LowStockThreshold < 0:
		return apperr.Validation("low_stock_threshold cannot be negative")
	}
	return nil
}
