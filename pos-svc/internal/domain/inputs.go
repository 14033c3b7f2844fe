package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Inputs are already validated; patches use nil for "leave unchanged".

type CategoryInput struct {
	Icon   string
	Text   string
	Type   string
	Active bool
}

type CategoryPatch struct {
	Icon   *string
	Text   *string
	Type   *string
	Active *bool
}

type FoodInput struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Image       string
	Type        string
}

type FoodPatch struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
	Image       *string
	Type        *string
}

type SizeInput struct {
	Text string
}

type SizePatch struct {
	Text *string
}

type AddonInput struct {
	Text string
}

type AddonPatch struct {
	Text *string
}

type SizeFoodInput struct {
	SizeID uuid.UUID
	FoodID uuid.UUID
	Price  decimal.Decimal
}

type SizeFoodPatch struct {
	SizeID *uuid.UUID
	FoodID *uuid.UUID
	Price  *decimal.Decimal
}

type AddonFoodInput struct {
	AddonID uuid.UUID
	FoodID  uuid.UUID
	Price   decimal.Decimal
}

type AddonFoodPatch struct {
	AddonID *uuid.UUID
	FoodID  *uuid.UUID
	Price   *decimal.Decimal
}

type TableInput struct {
	Name     string
	TotalPax int
}

type TablePatch struct {
	Name     *string
	TotalPax *int
}

type TableSessionInput struct {
	TableNo uuid.UUID
	Pax     int
	Status  SessionStatus
	Total   decimal.Decimal
}

// TableSessionPatch has no status: status only moves through Open and Close.
type TableSessionPatch struct {
	TableNo *uuid.UUID
	Pax     *int
	Total   *decimal.Decimal
	Version *int
}

type OrderInput struct {
	FoodID         uuid.UUID
	Quantity       int
	Price          *decimal.Decimal
	TableSessionID uuid.UUID
	SizeID         *uuid.UUID
	AddonIDs       []uuid.UUID
}

type OrderPatch struct {
	FoodID         *uuid.UUID
	Quantity       *int
	Price          *decimal.Decimal
	TableSessionID *uuid.UUID
}

type PriceRequest struct {
	FoodID   uuid.UUID
	SizeID   *uuid.UUID
	AddonIDs []uuid.UUID
}

// TextFilter is the optional case-insensitive substring predicate shared by
// every list operation. An empty Contains means no predicate.
type TextFilter struct {
	Contains string
}

type OrderFilter struct {
	FoodTitle      string
	TableSessionID *uuid.UUID
}
