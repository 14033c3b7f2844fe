package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// FoodSales is one row of a best-sellers ranking.
type FoodSales struct {
	FoodID   uuid.UUID `json:"foodId"`
	Title    string    `json:"title"`
	Quantity int       `json:"quantity"`
}

type TopFoods struct {
	Date  string      `json:"date,omitempty"`
	Foods []FoodSales `json:"foods"`
}

const (
	SourceCache    = "cache"
	SourceDatabase = "database"
)

type SessionBill struct {
	TableSessionID uuid.UUID       `json:"tableSessionId"`
	Billed         decimal.Decimal `json:"billed"`
	Items          int             `json:"items"`
	Status         string          `json:"status"`
	Source         string          `json:"source"`
}

var ErrBillNotFound = errors.New("session bill not found")

// Keys written by agg-svc.
const AllTimeSalesKey = "sales:alltime"

func DailySalesKey(day time.Time) string {
	return "sales:daily:" + Day(day)
}

func Day(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func SessionKey(id uuid.UUID) string {
	return "session:" + id.String()
}
