package rabbitmq

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"
)

const ordersExchange = "foodcourt.orders"

// OrderStatusNotifier publishes order status changes to the orders exchange.
// Consumers (the customer notification service) bind with routing keys of the
// form "order.status.<status>".
type OrderStatusNotifier struct {
	client *Client
}

// NewOrderStatusNotifier creates a notifier and declares the exchange it
// publishes to.
func NewOrderStatusNotifier(client *Client) (*OrderStatusNotifier, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if err := client.DeclareTopology(ordersExchange); err != nil {
		return nil, errs.NewDependencyFailureErrorWithCause("notification broker", err)
	}
	return &OrderStatusNotifier{client: client}, nil
}

type orderStatusMessage struct {
	OrderID      string  `json:"order_id"`
	CustomerID   string  `json:"customer_id"`
	RestaurantID string  `json:"restaurant_id"`
	Status       string  `json:"status"`
	PIN          *string `json:"pin,omitempty"`
	OccurredAt   string  `json:"occurred_at"`
}

// OrderStatusChanged announces the order's current status. The handoff PIN is
// included only while the order is READY, which is when the customer needs it.
func (n *OrderStatusNotifier) OrderStatusChanged(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(newOrderStatusMessage(aggregate))
	if err != nil {
		return err
	}

	key := routingKey(aggregate.Status())
	if err = n.client.Publish(ctx, ordersExchange, key, body); err != nil {
		return errs.NewDependencyFailureErrorWithCause("notification broker", err)
	}

	return nil
}

func newOrderStatusMessage(aggregate *order.Order) orderStatusMessage {
	msg := orderStatusMessage{
		OrderID:      aggregate.ID().String(),
		CustomerID:   aggregate.CustomerID().String(),
		RestaurantID: aggregate.RestaurantID().String(),
		Status:       aggregate.Status().String(),
		OccurredAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if aggregate.Status() == order.Ready {
		msg.PIN = aggregate.PIN()
	}

	return msg
}

func routingKey(status order.Status) string {
	return "order.status." + strings.ToLower(status.String())
}
