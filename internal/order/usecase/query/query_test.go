package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogrepo "github.com/lisbeauty/storefront/internal/catalog/repository"
	"github.com/lisbeauty/storefront/internal/order/domain"
	orderrepo "github.com/lisbeauty/storefront/internal/order/repository"
	"github.com/lisbeauty/storefront/pkg/store"
)

func seededRepos(t *testing.T) (*orderrepo.StoreOrderRepository, *orderrepo.StoreCustomerRepository, *catalogrepo.StoreProductRepository) {
	t.Helper()
	s := store.NewMemory()

	orders := orderrepo.NewStoreOrderRepository(s)
	require.NoError(t, orders.EnsureSeed())
	customers := orderrepo.NewStoreCustomerRepository(s)
	require.NoError(t, customers.EnsureSeed())
	products := catalogrepo.NewStoreProductRepository(s)
	require.NoError(t, products.EnsureSeed())

	return orders, customers, products
}

func TestListOrdersNewestFirst(t *testing.T) {
	orders, _, _ := seededRepos(t)

	got := NewListOrdersHandler(orders).Handle(ListOrdersQuery{})

	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].CreatedAt.After(got[i-1].CreatedAt))
	}
}

func TestListOrdersFiltersByStatus(t *testing.T) {
	orders, _, _ := seededRepos(t)

	got := NewListOrdersHandler(orders).Handle(ListOrdersQuery{Status: domain.StatusPending})

	require.Len(t, got, 1)
	assert.Equal(t, "1003", got[0].ID)
}

func TestListCustomersActiveOnly(t *testing.T) {
	_, customers, _ := seededRepos(t)

	all := NewListCustomersHandler(customers).Handle(ListCustomersQuery{})
	active := NewListCustomersHandler(customers).Handle(ListCustomersQuery{ActiveOnly: true})

	assert.Len(t, all, 3)
	assert.LessOrEqual(t, len(active), len(all))
	for _, c := range active {
		assert.True(t, c.Active)
	}
}

func TestDashboardCounters(t *testing.T) {
	orders, customers, products := seededRepos(t)
	handler := NewGetDashboardHandler(orders, customers, products)

	stats := handler.Handle(GetDashboardQuery{Now: time.Now()})

	assert.Equal(t, 6, stats.TotalProducts)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 3, stats.TotalCustomers)
	assert.Len(t, stats.TopProducts, 5)
	require.NotEmpty(t, stats.RecentOrders)
	assert.Equal(t, "1003", stats.RecentOrders[0].ID)
}

func TestDashboardMonthlyRevenueCountsDeliveredOnly(t *testing.T) {
	s := store.NewMemory()
	orders := orderrepo.NewStoreOrderRepository(s)
	customers := orderrepo.NewStoreCustomerRepository(s)
	products := catalogrepo.NewStoreProductRepository(s)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, orders.Create(&domain.Order{
		ID: "a", Value: 10000, Status: domain.StatusDelivered, CreatedAt: now.AddDate(0, 0, -1),
	}))
	require.NoError(t, orders.Create(&domain.Order{
		ID: "b", Value: 20000, Status: domain.StatusPending, CreatedAt: now.AddDate(0, 0, -2),
	}))
	require.NoError(t, orders.Create(&domain.Order{
		ID: "c", Value: 40000, Status: domain.StatusDelivered, CreatedAt: now.AddDate(0, -2, 0),
	}))

	stats := NewGetDashboardHandler(orders, customers, products).Handle(GetDashboardQuery{Now: now})

	assert.Equal(t, int64(10000), stats.MonthlyRevenue)
	assert.Equal(t, 2, stats.OrdersThisMonth)
}
