package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/cahuala/ordersApi/analytics-svc/internal/domain"
)

// AnalyticsService reads the aggregates agg-svc keeps in Redis. When Redis
// has nothing for a query the answer is computed from PostgreSQL.
type AnalyticsService struct {
	db  *sql.DB
	rdb *redis.Client

	Now func() time.Time
}

func NewAnalyticsService(db *sql.DB, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		db:  db,
		rdb: rdb,
		Now: time.Now,
	}
}

func (s *AnalyticsService) TopToday(ctx context.Context, limit int) ([]domain.FoodSales, error) {
	today := s.Now().UTC()
	sales, err := s.ranking(ctx, domain.DailySalesKey(today), limit)
	if err != nil || len(sales) == 0 {
		start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		return s.salesFromDB(ctx, "WHERE o.created_at >= $2", limit, start)
	}
	return sales, nil
}

func (s *AnalyticsService) TopAllTime(ctx context.Context, limit int) ([]domain.FoodSales, error) {
	sales, err := s.ranking(ctx, domain.AllTimeSalesKey, limit)
	if err != nil || len(sales) == 0 {
		return s.salesFromDB(ctx, "", limit)
	}
	return sales, nil
}

// ranking reads the top members of a sales sorted set and resolves their
// titles. Foods deleted since the sale are left out.
func (s *AnalyticsService) ranking(ctx context.Context, key string, limit int) ([]domain.FoodSales, error) {
	members, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil || len(members) == 0 {
		return nil, err
	}

	ids := make([]string, 0, len(members))
	for _, member := range members {
		ids = append(ids, fmt.Sprint(member.Member))
	}
	titles, err := s.foodTitles(ctx, ids)
	if err != nil {
		return nil, err
	}

	sales := make([]domain.FoodSales, 0, len(members))
	for _, member := range members {
		id, err := uuid.Parse(fmt.Sprint(member.Member))
		if err != nil {
			continue
		}
		title, ok := titles[id]
		if !ok {
			continue
		}
		sales = append(sales, domain.FoodSales{FoodID: id, Title: title, Quantity: int(member.Score)})
	}
	return sales, nil
}

func (s *AnalyticsService) foodTitles(ctx context.Context, ids []string) (map[uuid.UUID]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, title FROM foods WHERE id = ANY($1::uuid[])", pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	titles := make(map[uuid.UUID]string, len(ids))
	for rows.Next() {
		var id uuid.UUID
		var title string
		if err := rows.Scan(&id, &title); err != nil {
			return nil, err
		}
		titles[id] = title
	}
	return titles, rows.Err()
}

func (s *AnalyticsService) salesFromDB(ctx context.Context, where string, limit int, args ...interface{}) ([]domain.FoodSales, error) {
	query := `
		SELECT f.id, f.title, SUM(o.quantity) AS sold
		FROM orders o
		JOIN foods f ON f.id = o.food_id
		` + where + `
		GROUP BY f.id, f.title
		ORDER BY sold DESC, f.title ASC
		LIMIT $1`
	rows, err := s.db.QueryContext(ctx, query, append([]interface{}{limit}, args...)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := []domain.FoodSales{}
	for rows.Next() {
		var sale domain.FoodSales
		if err := rows.Scan(&sale.FoodID, &sale.Title, &sale.Quantity); err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}

func (s *AnalyticsService) SessionBill(ctx context.Context, sessionID uuid.UUID) (*domain.SessionBill, error) {
	if bill, ok := s.cachedBill(ctx, sessionID); ok {
		return bill, nil
	}

	bill := &domain.SessionBill{TableSessionID: sessionID, Source: domain.SourceDatabase}
	err := s.db.QueryRowContext(ctx, `
		SELECT ts.status, COALESCE(SUM(o.quantity * o.price), 0), COALESCE(SUM(o.quantity), 0)
		FROM table_sessions ts
		LEFT JOIN orders o ON o.table_session_id = ts.id
		WHERE ts.id = $1
		GROUP BY ts.id, ts.status
	`, sessionID).Scan(&bill.Status, &bill.Billed, &bill.Items)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBillNotFound
	}
	if err != nil {
		return nil, err
	}
	bill.Billed = bill.Billed.Round(2)
	return bill, nil
}

// cachedBill reports false for a missing or unreadable hash.
func (s *AnalyticsService) cachedBill(ctx context.Context, sessionID uuid.UUID) (*domain.SessionBill, bool) {
	fields, err := s.rdb.HGetAll(ctx, domain.SessionKey(sessionID)).Result()
	if err != nil || len(fields) == 0 {
		return nil, false
	}
	billed, err := decimal.NewFromString(fields["billed"])
	if err != nil {
		return nil, false
	}
	items, err := strconv.Atoi(fields["items"])
	if err != nil {
		return nil, false
	}
	return &domain.SessionBill{
		TableSessionID: sessionID,
		Billed:         billed.Round(2),
		Items:          items,
		Status:         fields["status"],
		Source:         domain.SourceCache,
	}, true
}
