package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lisbeauty/storefront/internal/catalog/domain"
	"github.com/lisbeauty/storefront/internal/catalog/repository"
	"github.com/lisbeauty/storefront/pkg/store"
)

func newRepo(t *testing.T) *repository.StoreProductRepository {
	t.Helper()
	return repository.NewStoreProductRepository(store.NewMemory())
}

func TestCreateProductAppliesDefaults(t *testing.T) {
	repo := newRepo(t)
	handler := NewCreateProductHandler(repo)

	product, err := handler.Handle(context.Background(), CreateProductCommand{
		Name:     "Peruca Ondulada",
		Price:    30000,
		Category: "Perucas",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.True(t, product.Active)
	assert.Equal(t, 0, product.Clicks)
	assert.Equal(t, "../img/placeholder.jpg", product.Image)

	stored, ok := repo.FindByID(product.ID)
	require.True(t, ok)
	assert.Equal(t, product.Name, stored.Name)
}

func TestCreateProductValidation(t *testing.T) {
	handler := NewCreateProductHandler(newRepo(t))

	cases := []struct {
		name string
		cmd  CreateProductCommand
	}{
		{"missing name", CreateProductCommand{Price: 100, Category: "Perucas"}},
		{"short name", CreateProductCommand{Name: "ab", Price: 100, Category: "Perucas"}},
		{"missing category", CreateProductCommand{Name: "Peruca", Price: 100}},
		{"zero price", CreateProductCommand{Name: "Peruca", Category: "Perucas"}},
		{"negative price", CreateProductCommand{Name: "Peruca", Category: "Perucas", Price: -5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := handler.Handle(context.Background(), tc.cmd)
			assert.Error(t, err)
		})
	}
}

func TestUpdateProductKeepsUnsetFields(t *testing.T) {
	repo := newRepo(t)
	created, err := NewCreateProductHandler(repo).Handle(context.Background(), CreateProductCommand{
		Name:        "Peruca Ondulada",
		Description: "Original",
		Price:       30000,
		Category:    "Perucas",
	})
	require.NoError(t, err)

	updated, err := NewUpdateProductHandler(repo).Handle(context.Background(), UpdateProductCommand{
		ID:    created.ID,
		Price: 35000,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(35000), updated.Price)
	assert.Equal(t, "Peruca Ondulada", updated.Name)
	assert.Equal(t, "Original", updated.Description)
	assert.Equal(t, created.ID, updated.ID)
}

func TestUpdateProductNotFound(t *testing.T) {
	_, err := NewUpdateProductHandler(newRepo(t)).Handle(context.Background(), UpdateProductCommand{ID: "missing", Name: "Novo Nome"})
	assert.EqualError(t, err, "product not found")
}

func TestToggleActiveTwiceRestoresFlag(t *testing.T) {
	repo := newRepo(t)
	created, err := NewCreateProductHandler(repo).Handle(context.Background(), CreateProductCommand{
		Name:     "Peruca Ondulada",
		Price:    30000,
		Category: "Perucas",
	})
	require.NoError(t, err)

	handler := NewToggleActiveHandler(repo)

	first, err := handler.Handle(context.Background(), ToggleActiveCommand{ID: created.ID})
	require.NoError(t, err)
	assert.False(t, first.Active)

	second, err := handler.Handle(context.Background(), ToggleActiveCommand{ID: created.ID})
	require.NoError(t, err)
	assert.True(t, second.Active)
}

func TestDuplicateProduct(t *testing.T) {
	repo := newRepo(t)
	created, err := NewCreateProductHandler(repo).Handle(context.Background(), CreateProductCommand{
		Name:     "Peruca Ondulada",
		Price:    30000,
		Category: "Perucas",
		Tags:     []string{"ondulada", "natural"},
	})
	require.NoError(t, err)

	// Give the original some history the copy must not inherit.
	_, err = NewRecordViewHandler(repo).Handle(context.Background(), RecordViewCommand{ID: created.ID})
	require.NoError(t, err)

	copy, err := NewDuplicateProductHandler(repo).Handle(context.Background(), DuplicateProductCommand{ID: created.ID})
	require.NoError(t, err)

	assert.Equal(t, "Peruca Ondulada (Cópia)", copy.Name)
	assert.NotEqual(t, created.ID, copy.ID)
	assert.Equal(t, 0, copy.Clicks)
	assert.Equal(t, created.Price, copy.Price)
	assert.Equal(t, 2, repo.Count())
}

func TestDeleteProductRemovesRecord(t *testing.T) {
	repo := newRepo(t)
	created, err := NewCreateProductHandler(repo).Handle(context.Background(), CreateProductCommand{
		Name:     "Peruca Ondulada",
		Price:    30000,
		Category: "Perucas",
	})
	require.NoError(t, err)

	require.NoError(t, NewDeleteProductHandler(repo).Handle(context.Background(), DeleteProductCommand{ID: created.ID}))

	_, ok := repo.FindByID(created.ID)
	assert.False(t, ok)
}

func TestRecordViewIncrementsClicks(t *testing.T) {
	repo := newRepo(t)
	created, err := NewCreateProductHandler(repo).Handle(context.Background(), CreateProductCommand{
		Name:     "Peruca Ondulada",
		Price:    30000,
		Category: "Perucas",
	})
	require.NoError(t, err)

	handler := NewRecordViewHandler(repo)
	_, err = handler.Handle(context.Background(), RecordViewCommand{ID: created.ID})
	require.NoError(t, err)
	viewed, err := handler.Handle(context.Background(), RecordViewCommand{ID: created.ID})
	require.NoError(t, err)

	assert.Equal(t, 2, viewed.Clicks)
}

// contextRecordingRepository notes which context-aware variants the command
// handlers invoke while delegating the work to a real repository.
type contextRecordingRepository struct {
	*repository.StoreProductRepository
	calls []string
}

var _ domain.ContextProductRepository = (*contextRecordingRepository)(nil)

func (r *contextRecordingRepository) CreateWithContext(ctx context.Context, product *domain.Product) error {
	r.calls = append(r.calls, "CreateWithContext")
	return r.StoreProductRepository.Create(product)
}

func (r *contextRecordingRepository) FindByIDWithContext(ctx context.Context, id string) (*domain.Product, bool) {
	r.calls = append(r.calls, "FindByIDWithContext")
	return r.StoreProductRepository.FindByID(id)
}

func (r *contextRecordingRepository) UpdateWithContext(ctx context.Context, product *domain.Product) error {
	r.calls = append(r.calls, "UpdateWithContext")
	return r.StoreProductRepository.Update(product)
}

func (r *contextRecordingRepository) DeleteWithContext(ctx context.Context, id string) error {
	r.calls = append(r.calls, "DeleteWithContext")
	return r.StoreProductRepository.Delete(id)
}

func TestCommandsDispatchToContextAwareRepository(t *testing.T) {
	repo := &contextRecordingRepository{
		StoreProductRepository: repository.NewStoreProductRepository(store.NewMemory()),
	}
	ctx := context.Background()

	created, err := NewCreateProductHandler(repo).Handle(ctx, CreateProductCommand{
		Name:     "Peruca Ondulada",
		Price:    30000,
		Category: "Perucas",
	})
	require.NoError(t, err)

	_, err = NewRecordViewHandler(repo).Handle(ctx, RecordViewCommand{ID: created.ID})
	require.NoError(t, err)

	require.NoError(t, NewDeleteProductHandler(repo).Handle(ctx, DeleteProductCommand{ID: created.ID}))

	assert.Equal(t, []string{
		"CreateWithContext",
		"FindByIDWithContext",
		"UpdateWithContext",
		"FindByIDWithContext",
		"DeleteWithContext",
	}, repo.calls)
}
