package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/cahuala/ordersApi/pos-svc/internal/domain"
	"github.com/cahuala/ordersApi/pos-svc/internal/pagination"
)

const (
	orderColumns = "o.id, o.food_id, o.quantity, o.price, o.table_session_id, o.created_at, o.updated_at"
	orderFrom    = "orders o JOIN foods f ON f.id = o.food_id JOIN table_sessions ts ON ts.id = o.table_session_id"
)

func scanOrder(row scanner) (*domain.Order, error) {
	o := domain.Order{Food: &domain.Food{}, TableSession: &domain.TableSession{}}
	dest := []interface{}{&o.ID, &o.FoodID, &o.Quantity, &o.Price, &o.TableSessionID, &o.CreatedAt, &o.UpdatedAt}
	dest = append(dest, foodFields(o.Food)...)
	dest = append(dest, sessionFields(o.TableSession)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOrder inserts only while the session is unpaid, in one statement, so
// a close racing with the insert cannot leave an order on a paid bill.
func (r *PostgresRepository) CreateOrder(ctx context.Context, o *domain.Order) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO orders (id, food_id, quantity, price, table_session_id)
		SELECT $1::uuid, $2::uuid, $3::int, $4::numeric, $5::uuid
		WHERE EXISTS (SELECT 1 FROM table_sessions WHERE id = $5::uuid AND status = 'unpaid')
		RETURNING created_at, updated_at`,
		o.ID, o.FoodID, o.Quantity, o.Price, o.TableSessionID,
	).Scan(&o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrSessionPaid
	}
	return writeErr(err)
}

// ListOrders keeps insertion order and filters on the food title.
func (r *PostgresRepository) ListOrders(ctx context.Context, filter domain.OrderFilter, window pagination.Window) ([]domain.Order, int, error) {
	q := &query{}
	q.contains("f.title", domain.TextFilter{Contains: filter.FoodTitle})
	if filter.TableSessionID != nil {
		q.add("o.table_session_id = %s", *filter.TableSessionID)
	}

	total, err := r.count(ctx, orderFrom, q)
	if err != nil {
		return nil, 0, err
	}

	limit, args := q.page(window)
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+orderColumns+", "+foodColumns+", "+sessionColumns+" FROM "+orderFrom+
			q.whereClause()+" ORDER BY o.created_at ASC, o.id ASC"+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *o)
	}
	return orders, total, rows.Err()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+orderColumns+", "+foodColumns+", "+sessionColumns+" FROM "+orderFrom+" WHERE o.id = $1", id)
	o, err := scanOrder(row)
	if err != nil {
		return nil, readErr(err)
	}
	return o, nil
}

func (r *PostgresRepository) UpdateOrder(ctx context.Context, o *domain.Order) error {
	err := r.DB.QueryRowContext(ctx,
		"UPDATE orders SET food_id=$1, quantity=$2, price=$3, table_session_id=$4, updated_at=now() WHERE id=$5 RETURNING updated_at",
		o.FoodID, o.Quantity, o.Price, o.TableSessionID, o.ID,
	).Scan(&o.UpdatedAt)
	return writeErr(err)
}

func (r *PostgresRepository) DeleteOrder(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.delete(ctx, "orders", id)
}
