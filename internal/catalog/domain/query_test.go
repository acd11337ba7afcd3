package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryFiltersByCategory(t *testing.T) {
	got := Query(SeedProducts(), Filter{Category: "Perucas"})

	require.Len(t, got, 4)
	for _, p := range got {
		assert.Equal(t, "Perucas", p.Category)
	}
}

func TestQuerySearchMatchesTags(t *testing.T) {
	got := Query(SeedProducts(), Filter{Search: "loira"})

	require.Len(t, got, 1)
	assert.Equal(t, "Peruca Loira Lisa", got[0].Name)
}

func TestQuerySearchIsCaseInsensitive(t *testing.T) {
	got := Query(SeedProducts(), Filter{Search: "LOIRA"})
	require.Len(t, got, 1)
}

func TestQueryMaxPrice(t *testing.T) {
	got := Query(SeedProducts(), Filter{MaxPrice: 48000})

	require.Len(t, got, 3)
	for _, p := range got {
		assert.LessOrEqual(t, p.Price, int64(48000))
	}
}

func TestQueryActiveOnlyHidesInactive(t *testing.T) {
	products := SeedProducts()
	products[0].Active = false

	got := Query(products, Filter{ActiveOnly: true})
	assert.Len(t, got, 5)
}

func TestQuerySortPriceAsc(t *testing.T) {
	got := Query(SeedProducts(), Filter{Sort: SortPriceAsc})

	require.Len(t, got, 6)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Price, got[i].Price)
	}
}

func TestQuerySortPopular(t *testing.T) {
	got := Query(SeedProducts(), Filter{Sort: SortPopular})

	require.NotEmpty(t, got)
	assert.Equal(t, "Peruca Loira Lisa", got[0].Name)
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	products := SeedProducts()
	firstID := products[0].ID

	Query(products, Filter{Sort: SortPriceAsc})

	assert.Equal(t, firstID, products[0].ID)
}

func TestSubcategoriesDistinctPerCategory(t *testing.T) {
	got := Subcategories(SeedProducts(), "Perucas")
	assert.Equal(t, []string{"Lace Front", "Full Lace"}, got)
}

func TestIsNewWithinSevenDays(t *testing.T) {
	now := time.Now()

	fresh := Product{CreatedAt: now.AddDate(0, 0, -3)}
	old := Product{CreatedAt: now.AddDate(0, 0, -10)}

	assert.True(t, fresh.IsNew(now))
	assert.False(t, old.IsNew(now))
}
