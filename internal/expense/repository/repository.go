package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/ims-admin/internal/apperr"
	"github.com/tair/ims-admin/internal/expense/domain"
	"github.com/tair/ims-admin/pkg/database"
)

var tracer = otel.Tracer("expense-repository")

// GormExpenseRepository implements domain.ExpenseRepository. Each call
// opens its own span rather than going through a decorator.
type GormExpenseRepository struct {
	db *gorm.DB
}

func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

func (r *GormExpenseRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Expense{})
}

func (r *GormExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	ctx, span := tracer.Start(ctx, "repository.expense.Create",
		trace.WithAttributes(attribute.String("expense.category", expense.Category)),
	)
	defer span.End()

	err := r.db.WithContext(ctx).Create(expense).Error
	return finish(span, "create expense", err)
}

func (r *GormExpenseRepository) FindByID(ctx context.Context, id uint) (*domain.Expense, error) {
	ctx, span := tracer.Start(ctx, "repository.expense.FindByID",
		trace.WithAttributes(attribute.Int("expense.id", int(id))),
	)
	defer span.End()

	var expense domain.Expense
	if err := r.db.WithContext(ctx).First(&expense, id).Error; err != nil {
		return nil, finish(span, "find expense", err)
	}
	return &expense, nil
}

// FindAll returns matching expenses, most recent date first
func (r *GormExpenseRepository) FindAll(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	ctx, span := tracer.Start(ctx, "repository.expense.FindAll")
	defer span.End()

	query := r.db.WithContext(ctx).Model(&domain.Expense{})
	if filter.Search != "" {
		like := database.ContainsPattern(filter.Search)
		query = query.Where(`category ILIKE ? ESCAPE '\' OR description ILIKE ? ESCAPE '\'`, like, like)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	expenses := []domain.Expense{}
	if err := query.Order("date DESC").Order("id DESC").Find(&expenses).Error; err != nil {
		return nil, finish(span, "list expenses", err)
	}

	span.SetAttributes(attribute.Int("result.count", len(expenses)))
	return expenses, nil
}

func (r *GormExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	ctx, span := tracer.Start(ctx, "repository.expense.Update",
		trace.WithAttributes(attribute.Int("expense.id", int(expense.ID))),
	)
	defer span.End()

	return finish(span, "update expense", r.db.WithContext(ctx).Save(expense).Error)
}

func (r *GormExpenseRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.expense.Delete",
		trace.WithAttributes(attribute.Int("expense.id", int(id))),
	)
	defer span.End()

	return finish(span, "delete expense", r.db.WithContext(ctx).Delete(&domain.Expense{}, id).Error)
}

// finish classifies err and records it on span
func finish(span trace.Span, op string, err error) error {
	if err == nil {
		return nil
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return apperr.FromGorm(op, err)
}
