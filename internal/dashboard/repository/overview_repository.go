package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/ims-admin/internal/apperr"
)

var tracer = otel.Tracer("dashboard-repository")

// GormOverviewRepository implements domain.OverviewRepository over the
// products and expenses tables
type GormOverviewRepository struct {
	db *gorm.DB
}

func NewGormOverviewRepository(db *gorm.DB) *GormOverviewRepository {
	return &GormOverviewRepository{db: db}
}

// TotalStock sums quantity over all products, 0 when there are none
func (r *GormOverviewRepository) TotalStock(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.dashboard.TotalStock")
	defer span.End()

	var total int64
	row := r.db.WithContext(ctx).Table("products").Select("COALESCE(SUM(quantity), 0)").Row()
	if err := row.Scan(&total); err != nil {
		return 0, fail(span, "sum stock", err)
	}
	return total, nil
}

// LowStockCount counts products at or below their own threshold
func (r *GormOverviewRepository) LowStockCount(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.dashboard.LowStockCount")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Table("products").
		Where("quantity <= low_stock_threshold").
		Count(&count).Error
	if err != nil {
		return 0, fail(span, "count low stock", err)
	}
	return count, nil
}

// DistinctSuppliers counts distinct non-empty supplier names
func (r *GormOverviewRepository) DistinctSuppliers(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.dashboard.DistinctSuppliers")
	defer span.End()

	var count int64
	row := r.db.WithContext(ctx).Table("products").
		Select("COUNT(DISTINCT supplier)").
		Where("supplier IS NOT NULL AND supplier <> ''").
		Row()
	if err := row.Scan(&count); err != nil {
		return 0, fail(span, "count suppliers", err)
	}
	return count, nil
}

// ExpensesBetween sums amount over expenses dated in [from, to)
func (r *GormOverviewRepository) ExpensesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	fromDate, toDate := from.Format(time.DateOnly), to.Format(time.DateOnly)
	ctx, span := tracer.Start(ctx, "repository.dashboard.ExpensesBetween",
		trace.WithAttributes(
			attribute.String("range.from", fromDate),
			attribute.String("range.to", toDate),
		),
	)
	defer span.End()

	var total decimal.Decimal
	row := r.db.WithContext(ctx).Table("expenses").
		Select("COALESCE(SUM(amount), 0)").
		Where("date >= ? AND date < ?", fromDate, toDate).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, fail(span, "sum expenses", err)
	}
	return total, nil
}

func fail(span trace.Span, op string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return apperr.FromGorm(op, err)
}
