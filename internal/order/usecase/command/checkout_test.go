package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartrepo "github.com/lisbeauty/storefront/internal/cart/repository"
	cartcommand "github.com/lisbeauty/storefront/internal/cart/usecase/command"
	catalogrepo "github.com/lisbeauty/storefront/internal/catalog/repository"
	"github.com/lisbeauty/storefront/internal/order/domain"
	orderrepo "github.com/lisbeauty/storefront/internal/order/repository"
	"github.com/lisbeauty/storefront/pkg/store"
)

type checkoutFixture struct {
	handler   *CheckoutHandler
	addItem   *cartcommand.AddItemHandler
	orders    *orderrepo.StoreOrderRepository
	customers *orderrepo.StoreCustomerRepository
	cart      *cartrepo.StoreCartRepository
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	s := store.NewMemory()

	products := catalogrepo.NewStoreProductRepository(s)
	require.NoError(t, products.EnsureSeed())

	cart := cartrepo.NewStoreCartRepository(s)
	addItem := cartcommand.NewAddItemHandler(cart, products)
	_, err := addItem.Handle(cartcommand.AddItemCommand{ProductID: "1"})
	require.NoError(t, err)
	_, err = addItem.Handle(cartcommand.AddItemCommand{ProductID: "2"})
	require.NoError(t, err)

	orders := orderrepo.NewStoreOrderRepository(s)
	customers := orderrepo.NewStoreCustomerRepository(s)

	return &checkoutFixture{
		handler:   NewCheckoutHandler(orders, customers, cart, nil),
		addItem:   addItem,
		orders:    orders,
		customers: customers,
		cart:      cart,
	}
}

func TestCheckoutCreatesOneOrderPerLine(t *testing.T) {
	f := newCheckoutFixture(t)

	created, err := f.handler.Handle(context.Background(), CheckoutCommand{
		CustomerName: "Maria Silva",
		Phone:        "923456789",
	})
	require.NoError(t, err)

	require.Len(t, created, 2)
	for _, o := range created {
		assert.Equal(t, domain.StatusPending, o.Status)
		assert.Equal(t, "Maria Silva", o.Customer)
		assert.Equal(t, "923456789", o.Phone)
	}
	assert.Empty(t, f.cart.Items())
}

func TestCheckoutUpsertsCustomerAggregates(t *testing.T) {
	f := newCheckoutFixture(t)

	created, err := f.handler.Handle(context.Background(), CheckoutCommand{
		CustomerName: "Maria Silva",
		Phone:        "923456789",
		Email:        "maria@example.com",
	})
	require.NoError(t, err)

	var total int64
	for _, o := range created {
		total += o.Value
	}

	customer, ok := f.customers.FindByPhone("923456789")
	require.True(t, ok)
	assert.Equal(t, 2, customer.Purchases)
	assert.Equal(t, total, customer.TotalSpent)
	assert.True(t, customer.Active)
}

func TestCheckoutSecondPurchaseAccumulates(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.handler.Handle(context.Background(), CheckoutCommand{
		CustomerName: "Maria Silva",
		Phone:        "923456789",
	})
	require.NoError(t, err)

	// Refill the cart and buy again with the same phone.
	_, err = f.addItem.Handle(cartcommand.AddItemCommand{ProductID: "3"})
	require.NoError(t, err)

	_, err = f.handler.Handle(context.Background(), CheckoutCommand{
		CustomerName: "Maria Silva",
		Phone:        "923456789",
	})
	require.NoError(t, err)

	customer, ok := f.customers.FindByPhone("923456789")
	require.True(t, ok)
	assert.Equal(t, 3, customer.Purchases)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)
	require.NoError(t, f.cart.Save(nil))

	_, err := f.handler.Handle(context.Background(), CheckoutCommand{
		CustomerName: "Maria Silva",
		Phone:        "923456789",
	})
	assert.EqualError(t, err, "cart is empty")
}

func TestCheckoutValidatesPhone(t *testing.T) {
	f := newCheckoutFixture(t)

	for _, phone := range []string{"", "12345", "823456789", "9234567890"} {
		_, err := f.handler.Handle(context.Background(), CheckoutCommand{
			CustomerName: "Maria Silva",
			Phone:        phone,
		})
		assert.Error(t, err, "phone %q", phone)
	}
}

func TestCheckoutRequiresName(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.handler.Handle(context.Background(), CheckoutCommand{Phone: "923456789"})
	assert.EqualError(t, err, "customer name is required")
}

func TestUpdateStatusEnforcesLifecycle(t *testing.T) {
	s := store.NewMemory()
	orders := orderrepo.NewStoreOrderRepository(s)

	order := &domain.Order{ID: "o1", Status: domain.StatusPending}
	require.NoError(t, orders.Create(order))

	handler := NewUpdateStatusHandler(orders)

	updated, err := handler.Handle(UpdateStatusCommand{OrderID: "o1", Status: domain.StatusProcessing})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, updated.Status)

	_, err = handler.Handle(UpdateStatusCommand{OrderID: "o1", Status: domain.StatusDelivered})
	assert.EqualError(t, err, "cannot transition order from processing to delivered")

	_, err = handler.Handle(UpdateStatusCommand{OrderID: "o1", Status: domain.Status("bogus")})
	assert.Error(t, err)
}
