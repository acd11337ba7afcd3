package domain

import "time"

// Status is the order lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// CanTransitionTo reports whether the lifecycle allows moving to next.
// Orders advance pending -> processing -> shipped -> delivered; cancellation
// is reachable from pending or processing only. Delivered and cancelled are
// terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusCancelled
	case StatusProcessing:
		return next == StatusShipped || next == StatusCancelled
	case StatusShipped:
		return next == StatusDelivered
	default:
		return false
	}
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is one placed order row. The product name is denormalized, not a
// foreign key, so later catalog edits leave order history untouched. Value
// is in minor currency units.
type Order struct {
	ID        string    `json:"id"`
	Customer  string    `json:"cliente"`
	Product   string    `json:"produto"`
	Value     int64     `json:"valor"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"data"`
	UpdatedAt time.Time `json:"atualizadoEm"`
	Phone     string    `json:"telefone"`
}

// Customer is an aggregate customer record updated at checkout.
type Customer struct {
	ID           string    `json:"id"`
	Name         string    `json:"nome"`
	Email        string    `json:"email"`
	Phone        string    `json:"telefone"`
	Address      string    `json:"endereco"`
	Purchases    int       `json:"compras"`
	TotalSpent   int64     `json:"totalGasto"`
	LastPurchase time.Time `json:"ultimaCompra"`
	Active       bool      `json:"ativo"`
}

// OrderRepository defines the contract for order data access.
type OrderRepository interface {
	FindAll() []Order
	FindByID(id string) (*Order, bool)
	Create(order *Order) error
	Update(order *Order) error
	Count() int
}

// CustomerRepository defines the contract for customer data access.
type CustomerRepository interface {
	FindAll() []Customer
	FindByPhone(phone string) (*Customer, bool)
	Create(customer *Customer) error
	Update(customer *Customer) error
	Count() int
}
