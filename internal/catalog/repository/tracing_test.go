package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/lisbeauty/storefront/internal/catalog/domain"
	"github.com/lisbeauty/storefront/pkg/store"
)

var (
	spanRecorderOnce sync.Once
	spanRecorder     *tracetest.SpanRecorder
)

// The package-level tracer in tracing.go binds to the first provider
// installed via otel.SetTracerProvider, so all tests must share one
// recorder and diff Ended() from their own starting offset.
func installSpanRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	spanRecorderOnce.Do(func() {
		spanRecorder = tracetest.NewSpanRecorder()
		otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spanRecorder)))
	})
	return spanRecorder
}

func TestTracingRepositorySharesBaseState(t *testing.T) {
	installSpanRecorder(t)

	base := NewStoreProductRepository(store.NewMemory())
	traced := NewTracingProductRepository(base)

	product := &domain.Product{ID: "p-1", Name: "Peruca Loira", Category: "Perucas", Price: 45000, Active: true}
	require.NoError(t, traced.CreateWithContext(context.Background(), product))

	// Writes through the decorator land in the base repository.
	stored, ok := base.FindByID("p-1")
	require.True(t, ok)
	assert.Equal(t, "Peruca Loira", stored.Name)
	assert.Equal(t, 1, base.Count())
	assert.Equal(t, 1, traced.Count())
}

func TestTracingRepositoryRecordsSpans(t *testing.T) {
	recorder := installSpanRecorder(t)
	baseline := len(recorder.Ended())

	traced := NewTracingProductRepository(NewStoreProductRepository(store.NewMemory()))
	ctx := context.Background()

	product := &domain.Product{ID: "p-1", Name: "Peruca Loira", Category: "Perucas", Price: 45000, Active: true}
	require.NoError(t, traced.CreateWithContext(ctx, product))

	found, ok := traced.FindByIDWithContext(ctx, "p-1")
	require.True(t, ok)
	assert.Equal(t, "Peruca Loira", found.Name)

	require.NoError(t, traced.DeleteWithContext(ctx, "p-1"))

	ended := recorder.Ended()[baseline:]
	names := make([]string, 0, len(ended))
	for _, span := range ended {
		names = append(names, span.Name())
	}
	assert.Equal(t, []string{"repository.Create", "repository.FindByID", "repository.Delete"}, names)
}
