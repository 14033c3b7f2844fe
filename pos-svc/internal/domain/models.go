package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, the way clients send them.
	decimal.MarshalJSONWithoutQuotes = true
}

type Category struct {
	ID        uuid.UUID `json:"id"`
	Icon      string    `json:"icon"`
	Text      string    `json:"text"`
	Type      string    `json:"type"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Food struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Type        string          `json:"type"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type Size struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Addon struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SizeFood replaces the food's base price when that size is ordered.
type SizeFood struct {
	ID        uuid.UUID       `json:"id"`
	SizeID    uuid.UUID       `json:"sizeId"`
	FoodID    uuid.UUID       `json:"foodId"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`

	Food *Food `json:"food,omitempty"`
	Size *Size `json:"size,omitempty"`
}

// AddonFood is added on top of the base price when that addon is ordered.
type AddonFood struct {
	ID        uuid.UUID       `json:"id"`
	AddonID   uuid.UUID       `json:"addonId"`
	FoodID    uuid.UUID       `json:"foodId"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`

	Food  *Food  `json:"food,omitempty"`
	Addon *Addon `json:"addon,omitempty"`
}

type Table struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	TotalPax  int       `json:"totalPax"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SessionStatus string

const (
	SessionUnpaid SessionStatus = "unpaid"
	SessionPaid   SessionStatus = "paid"
)

func (s SessionStatus) Valid() bool {
	return s == SessionUnpaid || s == SessionPaid
}

type TableSession struct {
	ID        uuid.UUID       `json:"id"`
	TableNo   uuid.UUID       `json:"tableNo"`
	Pax       int             `json:"pax"`
	Status    SessionStatus   `json:"status"`
	Total     decimal.Decimal `json:"total"`
	Version   int             `json:"version"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`

	Table *Table `json:"table,omitempty"`
}

type Order struct {
	ID             uuid.UUID       `json:"id"`
	FoodID         uuid.UUID       `json:"foodId"`
	Quantity       int             `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
	TableSessionID uuid.UUID       `json:"tableSessionId"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`

	Food         *Food         `json:"food,omitempty"`
	TableSession *TableSession `json:"tableSession,omitempty"`
}

// Subtotal is quantity times the snapshotted unit price.
func (o Order) Subtotal() decimal.Decimal {
	return o.Price.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

type AddonCharge struct {
	AddonID uuid.UUID       `json:"addonId"`
	Price   decimal.Decimal `json:"price"`
}

type PriceQuote struct {
	FoodID    uuid.UUID        `json:"foodId"`
	SizeID    *uuid.UUID       `json:"sizeId,omitempty"`
	AddonIDs  []uuid.UUID      `json:"addonIds"`
	BasePrice decimal.Decimal  `json:"basePrice"`
	SizePrice *decimal.Decimal `json:"sizePrice,omitempty"`
	Addons    []AddonCharge    `json:"addons"`
	UnitPrice decimal.Decimal  `json:"unitPrice"`
}
