package command

import (
	"context"
	"fmt"

	"github.com/tair/ims-admin/internal/product/domain"
	"github.com/tair/ims-admin/kafka"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID uint
}

// DeleteProductHandler handles product deletion command
type DeleteProductHandler struct {
	repo      domain.ProductRepository
	publisher kafka.EventPublisher
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository, publisher kafka.EventPublisher) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo, publisher: publisher}
}

// Handle deletes the product. Deleting an id that does not exist succeeds.
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	kafka.Notify(ctx, h.publisher, kafka.NewChangeEvent(kafka.EntityProduct, kafka.ActionDeleted, cmd.ID))
	return nil
}
