package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	AllTimeSalesKey = "sales:alltime"

	DailySalesTTL = 7 * 24 * time.Hour
	PaidBillTTL   = 24 * time.Hour
)

func DailySalesKey(day time.Time) string {
	return "sales:daily:" + day.UTC().Format("2006-01-02")
}

func SessionKey(id uuid.UUID) string {
	return "session:" + id.String()
}
