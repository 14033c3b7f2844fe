package storage

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cahuala/ordersApi/agg-svc/internal/domain"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis, sqlmock.Sqlmock) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewStore(db, rdb), mr, sqlMock
}

func hashFloat(t *testing.T, mr *miniredis.Miniredis, key, field string) float64 {
	t.Helper()
	value, err := strconv.ParseFloat(mr.HGet(key, field), 64)
	require.NoError(t, err)
	return value
}

func TestApplySale(t *testing.T) {
	store, mr, _ := newTestStore(t)
	ctx := context.Background()
	day := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	sessionID, burger, fries := uuid.New(), uuid.New(), uuid.New()

	sales := []domain.Sale{
		{SessionID: sessionID, FoodID: burger, Quantity: 3, Amount: decimal.RequireFromString("13.50"), Day: day},
		{SessionID: sessionID, FoodID: fries, Quantity: 2, Amount: decimal.RequireFromString("5.00"), Day: day},
		{SessionID: sessionID, FoodID: burger, Quantity: -3, Amount: decimal.RequireFromString("-13.50"), Day: day},
	}
	for _, sale := range sales {
		require.NoError(t, store.ApplySale(ctx, sale))
	}

	dailyKey := "sales:daily:2024-05-01"
	score, err := mr.ZScore(dailyKey, fries.String())
	require.NoError(t, err)
	assert.Equal(t, 2.0, score)
	members, _ := mr.ZMembers(dailyKey)
	assert.NotContains(t, members, burger.String())
	assert.Equal(t, domain.DailySalesTTL, mr.TTL(dailyKey))

	score, err = mr.ZScore(domain.AllTimeSalesKey, fries.String())
	require.NoError(t, err)
	assert.Equal(t, 2.0, score)
	members, _ = mr.ZMembers(domain.AllTimeSalesKey)
	assert.NotContains(t, members, burger.String())

	sessionKey := domain.SessionKey(sessionID)
	assert.InDelta(t, 5.0, hashFloat(t, mr, sessionKey, "billed"), 0.001)
	assert.Equal(t, "2", mr.HGet(sessionKey, "items"))
	assert.Equal(t, domain.BillStatusUnpaid, mr.HGet(sessionKey, "status"))
}

func TestSessionBill(t *testing.T) {
	store, _, sqlMock := newTestStore(t)
	sessionID := uuid.New()

	sqlMock.ExpectQuery(`SELECT COALESCE\(SUM\(quantity \* price\), 0\), COALESCE\(SUM\(quantity\), 0\) FROM orders`).
		WithArgs(sessionID).
		WillReturnRows(sqlmock.NewRows([]string{"billed", "items"}).AddRow("27.00", 4))

	bill, err := store.SessionBill(context.Background(), sessionID)

	require.NoError(t, err)
	assert.True(t, bill.Billed.Equal(decimal.RequireFromString("27")))
	assert.Equal(t, 4, bill.Items)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestCloseAndReopenBill(t *testing.T) {
	store, mr, _ := newTestStore(t)
	ctx := context.Background()
	sessionID := uuid.New()
	key := domain.SessionKey(sessionID)

	err := store.CloseBill(ctx, sessionID, domain.Bill{Billed: decimal.RequireFromString("27"), Items: 4})

	require.NoError(t, err)
	assert.Equal(t, "27.00", mr.HGet(key, "billed"))
	assert.Equal(t, "4", mr.HGet(key, "items"))
	assert.Equal(t, domain.BillStatusPaid, mr.HGet(key, "status"))
	assert.Equal(t, domain.PaidBillTTL, mr.TTL(key))

	require.NoError(t, store.ReopenBill(ctx, sessionID))

	assert.Equal(t, domain.BillStatusUnpaid, mr.HGet(key, "status"))
	assert.Equal(t, "27.00", mr.HGet(key, "billed"))
	assert.Zero(t, mr.TTL(key))
}
