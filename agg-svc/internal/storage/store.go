package storage

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cahuala/ordersApi/agg-svc/internal/domain"
)

// Store keeps the sales rankings and running session bills in Redis.
// PostgreSQL is only read, to settle a bill when its session closes.
type Store struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
	}
}

// ApplySale adds the sale to the day and all-time rankings and to the
// session's running bill. A negative sale reverses an earlier one; members
// that fall to zero leave the rankings.
func (s *Store) ApplySale(ctx context.Context, sale domain.Sale) error {
	dailyKey := domain.DailySalesKey(sale.Day)
	sessionKey := domain.SessionKey(sale.SessionID)
	member := sale.FoodID.String()
	quantity := float64(sale.Quantity)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZIncrBy(ctx, dailyKey, quantity, member)
		pipe.ZRemRangeByScore(ctx, dailyKey, "-inf", "0")
		pipe.Expire(ctx, dailyKey, domain.DailySalesTTL)

		pipe.ZIncrBy(ctx, domain.AllTimeSalesKey, quantity, member)
		pipe.ZRemRangeByScore(ctx, domain.AllTimeSalesKey, "-inf", "0")

		pipe.HIncrByFloat(ctx, sessionKey, "billed", sale.Amount.InexactFloat64())
		pipe.HIncrBy(ctx, sessionKey, "items", int64(sale.Quantity))
		pipe.HSetNX(ctx, sessionKey, "status", domain.BillStatusUnpaid)
		return nil
	})
	return err
}

// SessionBill sums the session's orders as PostgreSQL has them.
func (s *Store) SessionBill(ctx context.Context, sessionID uuid.UUID) (domain.Bill, error) {
	var bill domain.Bill
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(quantity * price), 0), COALESCE(SUM(quantity), 0)
		FROM orders
		WHERE table_session_id = $1
	`, sessionID).Scan(&bill.Billed, &bill.Items)
	return bill, err
}

func (s *Store) CloseBill(ctx context.Context, sessionID uuid.UUID, bill domain.Bill) error {
	key := domain.SessionKey(sessionID)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]interface{}{
			"billed": bill.Billed.StringFixed(2),
			"items":  bill.Items,
			"status": domain.BillStatusPaid,
		})
		pipe.Expire(ctx, key, domain.PaidBillTTL)
		return nil
	})
	return err
}

func (s *Store) ReopenBill(ctx context.Context, sessionID uuid.UUID) error {
	key := domain.SessionKey(sessionID)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, "status", domain.BillStatusUnpaid)
		pipe.Persist(ctx, key)
		return nil
	})
	return err
}
