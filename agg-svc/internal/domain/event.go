package domain

import (
	"errors"
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

// Event mirrors the JSON pos-svc writes to the events topic.
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

var ErrIncompleteEvent = errors.New("event is missing required fields")

// Sale is the order line an order event adds to (or removes from) the aggregates.
type Sale struct {
	SessionID uuid.UUID
	FoodID    uuid.UUID
	Quantity  int
	Amount    decimal.Decimal
	Day       time.Time
}

// Sale extracts the order line of an order event. Deletions carry negative
// quantity and amount so the store can apply both directions the same way.
func (e Event) Sale() (Sale, error) {
	if e.FoodID == nil || e.Price == nil || e.Quantity <= 0 || e.TableSessionID == uuid.Nil {
		return Sale{}, ErrIncompleteEvent
	}
	day := e.Timestamp
	if e.PlacedAt != nil {
		day = *e.PlacedAt
	}
	sale := Sale{
		SessionID: e.TableSessionID,
		FoodID:    *e.FoodID,
		Quantity:  e.Quantity,
		Amount:    e.Price.Mul(decimal.NewFromInt(int64(e.Quantity))),
		Day:       day.UTC(),
	}
	if e.Type == EventOrderDeleted {
		sale.Quantity = -sale.Quantity
		sale.Amount = sale.Amount.Neg()
	}
	return sale, nil
}

// Bill is the PostgreSQL view of a session's orders.
type Bill struct {
	Billed decimal.Decimal
	Items  int
}

const (
	BillStatusUnpaid = "unpaid"
	BillStatusPaid   = "paid"
)
