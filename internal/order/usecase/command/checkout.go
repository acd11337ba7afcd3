package command

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	cart "github.com/lisbeauty/storefront/internal/cart/domain"
	"github.com/lisbeauty/storefront/internal/order/domain"
	"github.com/lisbeauty/storefront/kafka"
	"github.com/lisbeauty/storefront/pkg/logger"
)

var phonePattern = regexp.MustCompile(`^9\d{8}$`)

// EventPublisher publishes order lifecycle events. A nil publisher disables
// publishing.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error
}

// CheckoutCommand turns the current cart into orders for one customer.
type CheckoutCommand struct {
	CustomerName string
	Email        string
	Phone        string
	Address      string
}

// CheckoutHandler handles the checkout command
type CheckoutHandler struct {
	orders    domain.OrderRepository
	customers domain.CustomerRepository
	cart      cart.CartRepository
	publisher EventPublisher
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(
	orders domain.OrderRepository,
	customers domain.CustomerRepository,
	cartRepo cart.CartRepository,
	publisher EventPublisher,
) *CheckoutHandler {
	return &CheckoutHandler{orders: orders, customers: customers, cart: cartRepo, publisher: publisher}
}

// Handle creates one pending order per cart line, updates the customer
// aggregates and clears the cart. The sequence is not transactional: a
// storage failure mid-way can leave orders recorded with the cart still
// populated, which a retry resolves by design (duplicate lines are the
// operator's call to cancel).
func (h *CheckoutHandler) Handle(ctx context.Context, cmd CheckoutCommand) ([]domain.Order, error) {
	if cmd.CustomerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if !phonePattern.MatchString(cmd.Phone) {
		return nil, fmt.Errorf("phone must have 9 digits and start with 9")
	}

	items := h.cart.Items()
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	now := time.Now()
	var created []domain.Order
	var total int64
	for i := range items {
		order := domain.Order{
			ID:        uuid.NewString(),
			Customer:  cmd.CustomerName,
			Product:   items[i].Product.Name,
			Value:     items[i].Subtotal(),
			Status:    domain.StatusPending,
			CreatedAt: now,
			UpdatedAt: now,
			Phone:     cmd.Phone,
		}
		if err := h.orders.Create(&order); err != nil {
			return nil, fmt.Errorf("failed to record order: %w", err)
		}
		created = append(created, order)
		total += order.Value
	}

	if err := h.upsertCustomer(cmd, len(created), total, now); err != nil {
		return nil, err
	}

	if err := h.cart.Save([]cart.LineItem{}); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	h.publish(ctx, cmd, created, total)
	return created, nil
}

func (h *CheckoutHandler) upsertCustomer(cmd CheckoutCommand, orders int, total int64, now time.Time) error {
	if existing, ok := h.customers.FindByPhone(cmd.Phone); ok {
		existing.Name = cmd.CustomerName
		if cmd.Email != "" {
			existing.Email = cmd.Email
		}
		if cmd.Address != "" {
			existing.Address = cmd.Address
		}
		existing.Purchases += orders
		existing.TotalSpent += total
		existing.LastPurchase = now
		existing.Active = true
		if err := h.customers.Update(existing); err != nil {
			return fmt.Errorf("failed to update customer: %w", err)
		}
		return nil
	}

	customer := domain.Customer{
		ID:           uuid.NewString(),
		Name:         cmd.CustomerName,
		Email:        cmd.Email,
		Phone:        cmd.Phone,
		Address:      cmd.Address,
		Purchases:    orders,
		TotalSpent:   total,
		LastPurchase: now,
		Active:       true,
	}
	if err := h.customers.Create(&customer); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (h *CheckoutHandler) publish(ctx context.Context, cmd CheckoutCommand, orders []domain.Order, total int64) {
	if h.publisher == nil {
		return
	}
	event := kafka.OrderPlacedEvent{
		CustomerName: cmd.CustomerName,
		Phone:        cmd.Phone,
		OrderCount:   len(orders),
		Total:        total,
	}
	for _, o := range orders {
		event.OrderIDs = append(event.OrderIDs, o.ID)
	}
	if err := h.publisher.PublishOrderPlaced(ctx, event); err != nil {
		// Event delivery is best effort; the order is already recorded.
		logger.Warn(ctx).Err(err).Msg("failed to publish order placed event")
	}
}
