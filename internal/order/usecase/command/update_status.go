package command

import (
	"fmt"
	"time"

	"github.com/lisbeauty/storefront/internal/order/domain"
)

// UpdateStatusCommand represents the command to advance an order's status
type UpdateStatusCommand struct {
	OrderID string
	Status  domain.Status
}

// UpdateStatusHandler handles order status transitions
type UpdateStatusHandler struct {
	orders domain.OrderRepository
}

// NewUpdateStatusHandler creates a new update status handler
func NewUpdateStatusHandler(orders domain.OrderRepository) *UpdateStatusHandler {
	return &UpdateStatusHandler{orders: orders}
}

// Handle applies the transition if the lifecycle allows it.
func (h *UpdateStatusHandler) Handle(cmd UpdateStatusCommand) (*domain.Order, error) {
	if !cmd.Status.Valid() {
		return nil, fmt.Errorf("unknown status %q", cmd.Status)
	}

	order, ok := h.orders.FindByID(cmd.OrderID)
	if !ok {
		return nil, fmt.Errorf("order not found")
	}

	if !order.Status.CanTransitionTo(cmd.Status) {
		return nil, fmt.Errorf("cannot transition order from %s to %s", order.Status, cmd.Status)
	}

	order.Status = cmd.Status
	order.UpdatedAt = time.Now()

	if err := h.orders.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return order, nil
}
