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
	tableColumns   = "t.id, t.name, t.total_pax, t.created_at, t.updated_at"
	sessionColumns = "ts.id, ts.table_no, ts.pax, ts.status, ts.total, ts.version, ts.created_at, ts.updated_at"
	sessionFrom    = "table_sessions ts JOIN tables t ON t.id = ts.table_no"
)

func tableFields(t *domain.Table) []interface{} {
	return []interface{}{&t.ID, &t.Name, &t.TotalPax, &t.CreatedAt, &t.UpdatedAt}
}

func sessionFields(s *domain.TableSession) []interface{} {
	return []interface{}{&s.ID, &s.TableNo, &s.Pax, &s.Status, &s.Total, &s.Version, &s.CreatedAt, &s.UpdatedAt}
}

func scanSession(row scanner) (*domain.TableSession, error) {
	s := domain.TableSession{Table: &domain.Table{}}
	if err := row.Scan(append(sessionFields(&s), tableFields(s.Table)...)...); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresRepository) CreateTable(ctx context.Context, t *domain.Table) error {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO tables (id, name, total_pax) VALUES ($1, $2, $3) RETURNING created_at, updated_at",
		t.ID, t.Name, t.TotalPax,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	return writeErr(err)
}

func (r *PostgresRepository) ListTables(ctx context.Context, filter domain.TextFilter, window pagination.Window) ([]domain.Table, int, error) {
	q := &query{}
	q.contains("t.name", filter)

	total, err := r.count(ctx, "tables t", q)
	if err != nil {
		return nil, 0, err
	}

	limit, args := q.page(window)
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+tableColumns+" FROM tables t"+q.whereClause()+" ORDER BY t.created_at DESC"+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tables := []domain.Table{}
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(tableFields(&t)...); err != nil {
			return nil, 0, err
		}
		tables = append(tables, t)
	}
	return tables, total, rows.Err()
}

func (r *PostgresRepository) GetTable(ctx context.Context, id uuid.UUID) (*domain.Table, error) {
	var t domain.Table
	err := r.DB.QueryRowContext(ctx, "SELECT "+tableColumns+" FROM tables t WHERE t.id = $1", id).
		Scan(tableFields(&t)...)
	if err != nil {
		return nil, readErr(err)
	}
	return &t, nil
}

func (r *PostgresRepository) UpdateTable(ctx context.Context, t *domain.Table) error {
	err := r.DB.QueryRowContext(ctx,
		"UPDATE tables SET name=$1, total_pax=$2, updated_at=now() WHERE id=$3 RETURNING updated_at",
		t.Name, t.TotalPax, t.ID,
	).Scan(&t.UpdatedAt)
	return writeErr(err)
}

func (r *PostgresRepository) DeleteTable(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.delete(ctx, "tables", id)
}

func (r *PostgresRepository) CreateTableSession(ctx context.Context, s *domain.TableSession) error {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO table_sessions (id, table_no, pax, status, total) VALUES ($1, $2, $3, $4, $5) RETURNING version, created_at, updated_at",
		s.ID, s.TableNo, s.Pax, s.Status, s.Total,
	).Scan(&s.Version, &s.CreatedAt, &s.UpdatedAt)
	return writeErr(err)
}

// ListTableSessions filters on the joined table name.
func (r *PostgresRepository) ListTableSessions(ctx context.Context, filter domain.TextFilter, window pagination.Window) ([]domain.TableSession, int, error) {
	q := &query{}
	q.contains("t.name", filter)

	total, err := r.count(ctx, sessionFrom, q)
	if err != nil {
		return nil, 0, err
	}

	limit, args := q.page(window)
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+sessionColumns+", "+tableColumns+" FROM "+sessionFrom+
			q.whereClause()+" ORDER BY ts.created_at DESC"+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	sessions := []domain.TableSession{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, 0, err
		}
		sessions = append(sessions, *s)
	}
	return sessions, total, rows.Err()
}

func (r *PostgresRepository) GetTableSession(ctx context.Context, id uuid.UUID) (*domain.TableSession, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+sessionColumns+", "+tableColumns+" FROM "+sessionFrom+" WHERE ts.id = $1", id)
	s, err := scanSession(row)
	if err != nil {
		return nil, readErr(err)
	}
	return s, nil
}

// UpdateTableSession bumps the version. Zero matched rows means either the
// session is gone or someone else bumped the version first.
func (r *PostgresRepository) UpdateTableSession(ctx context.Context, s *domain.TableSession, expectedVersion int) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE table_sessions
		SET table_no=$1, pax=$2, total=$3, version=version+1, updated_at=now()
		WHERE id=$4 AND version=$5
		RETURNING version, updated_at`,
		s.TableNo, s.Pax, s.Total, s.ID, expectedVersion,
	).Scan(&s.Version, &s.UpdatedAt)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return writeErr(err)
	}

	var exists bool
	if err := r.DB.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM table_sessions WHERE id = $1)", s.ID).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return domain.ErrSessionVersion
	}
	return domain.ErrNotFound
}

func (r *PostgresRepository) SetTableSessionStatus(ctx context.Context, id uuid.UUID, status domain.SessionStatus) (*domain.TableSession, error) {
	var s domain.TableSession
	err := r.DB.QueryRowContext(ctx, `
		UPDATE table_sessions ts
		SET status=$1, version=version+1, updated_at=now()
		WHERE ts.id=$2
		RETURNING `+sessionColumns,
		status, id,
	).Scan(sessionFields(&s)...)
	if err != nil {
		return nil, readErr(err)
	}
	return &s, nil
}

func (r *PostgresRepository) DeleteTableSession(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.delete(ctx, "table_sessions", id)
}
