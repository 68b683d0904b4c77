package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/ims-admin/internal/user/domain"
)

var tracer = otel.Tracer("user-repository")

// TracingUserRepository wraps a UserRepository with tracing
type TracingUserRepository struct {
	next domain.UserRepository
}

// NewTracingUserRepository creates a new repository with tracing
func NewTracingUserRepository(next domain.UserRepository) *TracingUserRepository {
	return &TracingUserRepository{next: next}
}

// Create with tracing
func (r *TracingUserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, span := tracer.Start(ctx, "repository.user.Create",
		trace.WithAttributes(
			attribute.String("user.email", user.Email),
			attribute.String("user.role", user.Role),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, user); err != nil {
		addErrorToSpan(span, err)
		return err
	}

	span.SetAttributes(attribute.Int("user.id", int(user.ID)))
	return nil
}

// FindByID with tracing
func (r *TracingUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.user.FindByID",
		trace.WithAttributes(attribute.Int("user.id", int(id))),
	)
	defer span.End()

	user, err := r.next.FindByID(ctx, id)
	if err != nil {
		addErrorToSpan(span, err)
		return nil, err
	}
	return user, nil
}

// FindAll with tracing
func (r *TracingUserRepository) FindAll(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.user.FindAll",
		trace.WithAttributes(
			attribute.String("filter.search", filter.Search),
			attribute.String("filter.role", filter.Role),
			attribute.String("filter.status", filter.Status),
		),
	)
	defer span.End()

	users, err := r.next.FindAll(ctx, filter)
	if err != nil {
		addErrorToSpan(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(users)))
	return users, nil
}

// Update with tracing
func (r *TracingUserRepository) Update(ctx context.Context, user *domain.User) error {
	ctx, span := tracer.Start(ctx, "repository.user.Update",
		trace.WithAttributes(attribute.Int("user.id", int(user.ID))),
	)
	defer span.End()

	if err := r.next.Update(ctx, user); err != nil {
		addErrorToSpan(span, err)
		return err
	}
	return nil
}

// Delete with tracing
func (r *TracingUserRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.user.Delete",
		trace.WithAttributes(attribute.Int("user.id", int(id))),
	)
	defer span.End()

	if err := r.next.Delete(ctx, id); err != nil {
		addErrorToSpan(span, err)
		return err
	}
	return nil
}

func addErrorToSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
