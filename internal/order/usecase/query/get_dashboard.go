package query

import (
	"sort"
	"time"

	catalog "github.com/lisbeauty/storefront/internal/catalog/domain"
	"github.com/lisbeauty/storefront/internal/order/domain"
)

// DashboardStats aggregates the admin landing page numbers.
type DashboardStats struct {
	TotalProducts   int               `json:"totalProdutos"`
	TotalOrders     int               `json:"totalEncomendas"`
	TotalCustomers  int               `json:"totalClientes"`
	ActiveCustomers int               `json:"clientesAtivos"`
	OrdersThisMonth int               `json:"encomendasMes"`
	MonthlyRevenue  int64             `json:"receitaMes"`
	TopProducts     []catalog.Product `json:"produtosPopulares"`
	RecentOrders    []domain.Order    `json:"encomendasRecentes"`
}

// GetDashboardQuery represents the dashboard aggregation query
type GetDashboardQuery struct {
	Now time.Time
}

// GetDashboardHandler handles the dashboard aggregation
type GetDashboardHandler struct {
	orders    domain.OrderRepository
	customers domain.CustomerRepository
	products  catalog.ProductRepository
}

// NewGetDashboardHandler creates a new dashboard handler
func NewGetDashboardHandler(
	orders domain.OrderRepository,
	customers domain.CustomerRepository,
	products catalog.ProductRepository,
) *GetDashboardHandler {
	return &GetDashboardHandler{orders: orders, customers: customers, products: products}
}

// Handle computes the dashboard counters. Monthly revenue counts delivered
// orders only.
func (h *GetDashboardHandler) Handle(q GetDashboardQuery) DashboardStats {
	now := q.Now
	if now.IsZero() {
		now = time.Now()
	}

	orders := h.orders.FindAll()
	customers := h.customers.FindAll()
	products := h.products.FindAll()

	stats := DashboardStats{
		TotalProducts:  len(products),
		TotalOrders:    len(orders),
		TotalCustomers: len(customers),
	}

	for _, c := range customers {
		if c.Active {
			stats.ActiveCustomers++
		}
	}

	for _, o := range orders {
		if o.CreatedAt.Year() == now.Year() && o.CreatedAt.Month() == now.Month() {
			stats.OrdersThisMonth++
			if o.Status == domain.StatusDelivered {
				stats.MonthlyRevenue += o.Value
			}
		}
	}

	top := catalog.Query(products, catalog.Filter{Sort: catalog.SortPopular})
	if len(top) > 5 {
		top = top[:5]
	}
	stats.TopProducts = top

	recent := append([]domain.Order(nil), orders...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > 10 {
		recent = recent[:10]
	}
	stats.RecentOrders = recent

	return stats
}
