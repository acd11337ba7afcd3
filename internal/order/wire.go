//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"

	cartdomain "github.com/lisbeauty/storefront/internal/cart/domain"
	catalogdomain "github.com/lisbeauty/storefront/internal/catalog/domain"
	"github.com/lisbeauty/storefront/internal/order/delivery/http"
	"github.com/lisbeauty/storefront/internal/order/domain"
	"github.com/lisbeauty/storefront/internal/order/repository"
	"github.com/lisbeauty/storefront/internal/order/usecase/command"
	"github.com/lisbeauty/storefront/internal/order/usecase/query"
	"github.com/lisbeauty/storefront/pkg/store"
)

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(s store.Store) domain.OrderRepository {
	return repository.NewStoreOrderRepository(s)
}

// ProvideCustomerRepository provides the customer repository
func ProvideCustomerRepository(s store.Store) domain.CustomerRepository {
	return repository.NewStoreCustomerRepository(s)
}

// Command Handlers Providers
func ProvideCheckoutHandler(
	orders domain.OrderRepository,
	customers domain.CustomerRepository,
	cartRepo cartdomain.CartRepository,
	publisher command.EventPublisher,
) *command.CheckoutHandler {
	return command.NewCheckoutHandler(orders, customers, cartRepo, publisher)
}

func ProvideUpdateStatusHandler(orders domain.OrderRepository) *command.UpdateStatusHandler {
	return command.NewUpdateStatusHandler(orders)
}

// Query Handlers Providers
func ProvideListOrdersHandler(orders domain.OrderRepository) *query.ListOrdersHandler {
	return query.NewListOrdersHandler(orders)
}

func ProvideListCustomersHandler(customers domain.CustomerRepository) *query.ListCustomersHandler {
	return query.NewListCustomersHandler(customers)
}

func ProvideGetDashboardHandler(
	orders domain.OrderRepository,
	customers domain.CustomerRepository,
	products catalogdomain.ProductRepository,
) *query.GetDashboardHandler {
	return query.NewGetDashboardHandler(orders, customers, products)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
	ProvideCustomerRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCheckoutHandler,
	ProvideUpdateStatusHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideListOrdersHandler,
	ProvideListCustomersHandler,
	ProvideGetDashboardHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes the order HTTP handler with all
// dependencies
func InitializeHTTPHandler(
	s store.Store,
	cartRepo cartdomain.CartRepository,
	products catalogdomain.ProductRepository,
	publisher command.EventPublisher,
) (*http.OrderHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewOrderHandler,
	)
	return nil, nil
}
