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

// UpdateProductCommand is a patch: nil fields keep their stored value
type UpdateProductCommand struct {
	ID                uint
	Name              *string
	SKU               *string
	Category          *string
	Quantity          *int
	Supplier          *string
	PurchasePrice     *decimal.Decimal
	SalePrice         *decimal.Decimal
	Status            *string
	LowStockThreshold *int
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo      domain.ProductRepository
	publisher kafka.EventPublisher
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository, publisher kafka.EventPublisher) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo, publisher: publisher}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, apperr.NotFound("product", cmd.ID)
	}

	product, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	if cmd.Name != nil {
		if strings.TrimSpace(*cmd.Name) == "" {
			return nil, apperr.Validation("product name cannot be empty")
		}
		product.Name = *cmd.Name
	}
	if cmd.SKU != nil {
		if strings.TrimSpace(*cmd.SKU) == "" {
			return nil, apperr.Validation("sku cannot be empty")
		}
		product.SKU = *cmd.SKU
	}
	if cmd.Category != nil {
		product.Category = *cmd.Category
	}
	if cmd.Supplier != nil {
		product.Supplier = *cmd.Supplier
	}
	if cmd.Status != nil {
		product.Status = *cmd.Status
	}

	applyNumbers(product, cmd.Quantity, cmd.PurchasePrice, cmd.SalePrice, cmd.LowStockThreshold)
	if err := validateNumbers(product); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	kafka.Notify(ctx, h.publisher, kafka.NewChangeEvent(kafka.EntityProduct, kafka.ActionUpdated, product.ID))
	return product, nil
}
