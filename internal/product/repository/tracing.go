package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/ims-admin/internal/product/domain"
)

var tracer = otel.Tracer("product-repository")

// TracingProductRepository wraps a ProductRepository with a span per call
type TracingProductRepository struct {
	next domain.ProductRepository
}

// NewTracingProductRepository decorates next with tracing
func NewTracingProductRepository(next domain.ProductRepository) *TracingProductRepository {
	return &TracingProductRepository{next: next}
}

func (r *TracingProductRepository) Create(ctx context.Context, product *domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.product.Create",
		trace.WithAttributes(attribute.String("product.sku", product.SKU)),
	)
	defer span.End()

	err := r.next.Create(ctx, product)
	recordErr(span, err)
	if err == nil {
		span.SetAttributes(attribute.Int("product.id", int(product.ID)))
	}
	return err
}

func (r *TracingProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.product.FindByID",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	product, err := r.next.FindByID(ctx, id)
	recordErr(span, err)
	return product, err
}

func (r *TracingProductRepository) FindAll(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.product.FindAll",
		trace.WithAttributes(
			attribute.String("filter.search", filter.Search),
			attribute.String("filter.category", filter.Category),
			attribute.String("filter.supplier", filter.Supplier),
			attribute.String("filter.status", filter.Status),
		),
	)
	defer span.End()

	products, err := r.next.FindAll(ctx, filter)
	recordErr(span, err)
	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, err
}

func (r *TracingProductRepository) Update(ctx context.Context, product *domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.product.Update",
		trace.WithAttributes(attribute.Int("product.id", int(product.ID))),
	)
	defer span.End()

	err := r.next.Update(ctx, product)
	recordErr(span, err)
	return err
}

func (r *TracingProductRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.product.Delete",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	err := r.next.Delete(ctx, id)
	recordErr(span, err)
	return err
}

func recordErr(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
