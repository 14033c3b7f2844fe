package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventOrderCreated  EventType = "order_created"
	EventOrderDeleted  EventType = "order_deleted"
	EventSessionClosed EventType = "session_closed"
	EventSessionOpened EventType = "session_opened"
)

// Event is the message pos-svc publishes after a committed mutation.
// The same JSON shape is decoded by agg-svc.
type Event struct {
	Type           EventType        `json:"type"`
	OrderID        *uuid.UUID       `json:"orderId,omitempty"`
	FoodID         *uuid.UUID       `json:"foodId,omitempty"`
	TableSessionID uuid.UUID        `json:"tableSessionId"`
	TableID        *uuid.UUID       `json:"tableId,omitempty"`
	Quantity       int              `json:"quantity,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Total          *decimal.Decimal `json:"total,omitempty"`
	PlacedAt       *time.Time       `json:"placedAt,omitempty"`
	Timestamp      time.Time        `json:"timestamp"`
}

func OrderEvent(eventType EventType, order *Order, at time.Time) Event {
	orderID, foodID, price := order.ID, order.FoodID, order.Price
	event := Event{
		Type:           eventType,
		OrderID:        &orderID,
		FoodID:         &foodID,
		TableSessionID: order.TableSessionID,
		Quantity:       order.Quantity,
		Price:          &price,
		Timestamp:      at,
	}
	// agg-svc books the sale on the day the order was placed.
	if !order.CreatedAt.IsZero() {
		placed := order.CreatedAt.UTC()
		event.PlacedAt = &placed
	}
	return event
}

func SessionEvent(eventType EventType, session *TableSession, at time.Time) Event {
	tableID, total := session.TableNo, session.Total
	return Event{
		Type:           eventType,
		TableSessionID: session.ID,
		TableID:        &tableID,
		Total:          &total,
		Timestamp:      at,
	}
}
