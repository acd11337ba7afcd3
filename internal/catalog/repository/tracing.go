package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lisbeauty/storefront/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// TracingProductRepository decorates an existing StoreProductRepository
// with context-aware variants that record spans around catalog mutations.
// It is the catalog repository when tracing is enabled.
type TracingProductRepository struct {
	*StoreProductRepository
}

var _ domain.ContextProductRepository = (*TracingProductRepository)(nil)

// NewTracingProductRepository wraps base. The decorator shares the base
// repository's lock and cache, so both views stay consistent.
func NewTracingProductRepository(base *StoreProductRepository) *TracingProductRepository {
	return &TracingProductRepository{StoreProductRepository: base}
}

// CreateWithContext records a span around Create.
func (r *TracingProductRepository) CreateWithContext(ctx context.Context, product *domain.Product) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("product.name", product.Name),
			attribute.String("product.category", product.Category),
			attribute.Int64("product.price", product.Price),
		),
	)
	defer span.End()

	err := r.StoreProductRepository.Create(product)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.String("product.id", product.ID))
	return nil
}

// FindByIDWithContext records a span around FindByID.
func (r *TracingProductRepository) FindByIDWithContext(ctx context.Context, id string) (*domain.Product, bool) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.String("product.id", id)),
	)
	defer span.End()

	product, ok := r.StoreProductRepository.FindByID(id)
	span.SetAttributes(attribute.Bool("product.found", ok))
	return product, ok
}

// UpdateWithContext records a span around Update.
func (r *TracingProductRepository) UpdateWithContext(ctx context.Context, product *domain.Product) error {
	_, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(attribute.String("product.id", product.ID)),
	)
	defer span.End()

	err := r.StoreProductRepository.Update(product)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// DeleteWithContext records a span around Delete.
func (r *TracingProductRepository) DeleteWithContext(ctx context.Context, id string) error {
	_, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.String("product.id", id)),
	)
	defer span.End()

	err := r.StoreProductRepository.Delete(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
