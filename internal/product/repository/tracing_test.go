package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/tair/ims-admin/internal/product/domain"
)

type stubRepo struct {
	domain.ProductRepository
	err error
}

func (s stubRepo) FindByID(context.Context, uint) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Product{ID: 1}, nil
}

func (s stubRepo) Delete(context.Context, uint) error { return s.err }

// The package tracer binds to the first global provider, so every test
// shares one recorder and inspects the most recent span.
var (
	recorder     *tracetest.SpanRecorder
	recorderOnce sync.Once
)

func lastSpan(t *testing.T) sdktrace.ReadOnlySpan {
	t.Helper()
	spans := recorder.Ended()
	if len(spans) == 0 {
		t.Fatal("no spans recorded")
	}
	return spans[len(spans)-1]
}

func withRecorder() {
	recorderOnce.Do(func() {
		recorder = tracetest.NewSpanRecorder()
		otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	})
}

func TestTracingProductRepository_Spans(t *testing.T) {
	withRecorder()
	repo := NewTracingProductRepository(stubRepo{})

	if _, err := repo.FindByID(context.Background(), 1); err != nil {
		t.Fatalf("FindByID: %v", err)
	}

	span := lastSpan(t)
	if span.Name() != "repository.product.FindByID" {
		t.Errorf("span name = %q", span.Name())
	}
	if span.Status().Code == codes.Error {
		t.Error("successful call should not mark the span as failed")
	}
}

func TestTracingProductRepository_RecordsError(t *testing.T) {
	withRecorder()
	repo := NewTracingProductRepository(stubRepo{err: errors.New("connection reset")})

	if err := repo.Delete(context.Background(), 5); err == nil {
		t.Fatal("expected error")
	}

	span := lastSpan(t)
	if span.Name() != "repository.product.Delete" || span.Status().Code != codes.Error {
		t.Errorf("span = %q status %v, want failed Delete span", span.Name(), span.Status().Code)
	}
}
