package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/cahuala/ordersApi/pos-svc/internal/domain"
	"github.com/cahuala/ordersApi/pos-svc/internal/pagination"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
	pqCheckViolation      = "23514"
	pqNumericOutOfRange   = "22003"
)

const msgValueOutOfRange = "Valor fora do intervalo permitido"

// writeErr maps driver failures of INSERT/UPDATE statements to domain errors.
func writeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqForeignKeyViolation:
			return domain.ErrInvalidReference
		case pqUniqueViolation:
			return domain.ErrDuplicateRecord
		case pqCheckViolation, pqNumericOutOfRange:
			field := pqErr.Column
			if field == "" {
				field = "value"
			}
			return domain.NewValidationError(field, msgValueOutOfRange)
		}
	}
	return err
}

// deleteErr is writeErr for DELETE: a foreign key violation there means the
// row is still referenced.
func deleteErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
		return domain.ErrReferenceInUse
	}
	return writeErr(err)
}

func readErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// query accumulates WHERE predicates and their positional arguments.
type query struct {
	where []string
	args  []interface{}
}

func (q *query) contains(column string, filter domain.TextFilter) {
	if filter.Contains == "" {
		return
	}
	q.add(column+" ILIKE %s", likePattern(filter.Contains))
}

func (q *query) add(predicate string, arg interface{}) {
	q.args = append(q.args, arg)
	q.where = append(q.where, fmt.Sprintf(predicate, fmt.Sprintf("$%d", len(q.args))))
}

func (q *query) whereClause() string {
	if len(q.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.where, " AND ")
}

// page returns the LIMIT/OFFSET suffix and the arguments it needs.
func (q *query) page(window pagination.Window) (string, []interface{}) {
	n := len(q.args)
	args := append(append([]interface{}{}, q.args...), window.Take, window.Skip)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2), args
}

func (r *PostgresRepository) count(ctx context.Context, from string, q *query) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+from+q.whereClause(), q.args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return total, nil
}

func (r *PostgresRepository) delete(ctx context.Context, table string, id interface{}) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return 0, deleteErr(err)
	}
	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...interface{}) error
}
