package query

import (
	"context"
	"fmt"

	"github.com/tair/ims-admin/internal/product/domain"
)

// ListProductsQuery represents the query to list products; there is no pagination
type ListProductsQuery struct {
	Search   string
	Category string
	Supplier string
	Status   string
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, query ListProductsQuery) ([]domain.Product, error) {
	products, err := h.repo.FindAll(ctx, domain.ProductFilter{
		Search:   query.Search,
		Category: query.Category,
		Supplier: query.Supplier,
		Status:   query.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}
