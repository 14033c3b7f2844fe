package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/cahuala/ordersApi/pos-svc/internal/domain"
	"github.com/cahuala/ordersApi/pos-svc/internal/pagination"
)

const (
	categoryColumns = "c.id, c.icon, c.text, c.type, c.active, c.created_at, c.updated_at"
	foodColumns     = "f.id, f.title, f.description, f.price, f.image, f.type, f.created_at, f.updated_at"
	sizeColumns     = "s.id, s.text, s.created_at, s.updated_at"
	addonColumns    = "a.id, a.text, a.created_at, a.updated_at"
)

func categoryFields(c *domain.Category) []interface{} {
	return []interface{}{&c.ID, &c.Icon, &c.Text, &c.Type, &c.Active, &c.CreatedAt, &c.UpdatedAt}
}

func foodFields(f *domain.Food) []interface{} {
	return []interface{}{&f.ID, &f.Title, &f.Description, &f.Price, &f.Image, &f.Type, &f.CreatedAt, &f.UpdatedAt}
}

func sizeFields(s *domain.Size) []interface{} {
	return []interface{}{&s.ID, &s.Text, &s.CreatedAt, &s.UpdatedAt}
}

func addonFields(a *domain.Addon) []interface{} {
	return []interface{}{&a.ID, &a.Text, &a.CreatedAt, &a.UpdatedAt}
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO categories (id, icon, text, type, active) VALUES ($1, $2, $3, $4, $5) RETURNING created_at, updated_at",
		c.ID, c.Icon, c.Text, c.Type, c.Active,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	return writeErr(err)
}

func (r *PostgresRepository) ListCategories(ctx context.Context, filter domain.TextFilter, window pagination.Window) ([]domain.Category, int, error) {
	q := &query{}
	q.contains("c.text", filter)

	total, err := r.count(ctx, "categories c", q)
	if err != nil {
		return nil, 0, err
	}

	limit, args := q.page(window)
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+categoryColumns+" FROM categories c"+q.whereClause()+" ORDER BY c.created_at DESC"+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(categoryFields(&c)...); err != nil {
			return nil, 0, err
		}
		categories = append(categories, c)
	}
	return categories, total, rows.Err()
}

func (r *PostgresRepository) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var c domain.Category
	err := r.DB.QueryRowContext(ctx, "SELECT "+categoryColumns+" FROM categories c WHERE c.id = $1", id).
		Scan(categoryFields(&c)...)
	if err != nil {
		return nil, readErr(err)
	}
	return &c, nil
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	err := r.DB.QueryRowContext(ctx,
		"UPDATE categories SET icon=$1, text=$2, type=$3, active=$4, updated_at=now() WHERE id=$5 RETURNING updated_at",
		c.Icon, c.Text, c.Type, c.Active, c.ID,
	).Scan(&c.UpdatedAt)
	return writeErr(err)
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.delete(ctx, "categories", id)
}

func (r *PostgresRepository) CreateFood(ctx context.Context, f *domain.Food) error {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO foods (id, title, description, price, image, type) VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at, updated_at",
		f.ID, f.Title, f.Description, f.Price, f.Image, f.Type,
	).Scan(&f.CreatedAt, &f.UpdatedAt)
	return writeErr(err)
}

func (r *PostgresRepository) ListFoods(ctx context.Context, filter domain.TextFilter, window pagination.Window) ([]domain.Food, int, error) {
	q := &query{}
	q.contains("f.title", filter)

	total, err := r.count(ctx, "foods f", q)
	if err != nil {
		return nil, 0, err
	}

	limit, args := q.page(window)
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+foodColumns+" FROM foods f"+q.whereClause()+" ORDER BY f.created_at DESC"+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	foods := []domain.Food{}
	for rows.Next() {
		var f domain.Food
		if err := rows.Scan(foodFields(&f)...); err != nil {
			return nil, 0, err
		}
		foods = append(foods, f)
	}
	return foods, total, rows.Err()
}

func (r *PostgresRepository) GetFood(ctx context.Context, id uuid.UUID) (*domain.Food, error) {
	var f domain.Food
	err := r.DB.QueryRowContext(ctx, "SELECT "+foodColumns+" FROM foods f WHERE f.id = $1", id).
		Scan(foodFields(&f)...)
	if err != nil {
		return nil, readErr(err)
	}
	return &f, nil
}

func (r *PostgresRepository) UpdateFood(ctx context.Context, f *domain.Food) error {
	err := r.DB.QueryRowContext(ctx,
		"UPDATE foods SET title=$1, description=$2, price=$3, image=$4, type=$5, updated_at=now() WHERE id=$6 RETURNING updated_at",
		f.Title, f.Description, f.Price, f.Image, f.Type, f.ID,
	).Scan(&f.UpdatedAt)
	return writeErr(err)
}

func (r *PostgresRepository) DeleteFood(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.delete(ctx, "foods", id)
}

func (r *PostgresRepository) CreateSize(ctx context.Context, s *domain.Size) error {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO sizes (id, text) VALUES ($1, $2) RETURNING created_at, updated_at", s.ID, s.Text,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	return writeErr(err)
}

func (r *PostgresRepository) ListSizes(ctx context.Context, filter domain.TextFilter, window pagination.Window) ([]domain.Size, int, error) {
	q := &query{}
	q.contains("s.text", filter)

	total, err := r.count(ctx, "sizes s", q)
	if err != nil {
		return nil, 0, err
	}

	limit, args := q.page(window)
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+sizeColumns+" FROM sizes s"+q.whereClause()+" ORDER BY s.created_at DESC"+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	sizes := []domain.Size{}
	for rows.Next() {
		var s domain.Size
		if err := rows.Scan(sizeFields(&s)...); err != nil {
			return nil, 0, err
		}
		sizes = append(sizes, s)
	}
	return sizes, total, rows.Err()
}

func (r *PostgresRepository) GetSize(ctx context.Context, id uuid.UUID) (*domain.Size, error) {
	var s domain.Size
	err := r.DB.QueryRowContext(ctx, "SELECT "+sizeColumns+" FROM sizes s WHERE s.id = $1", id).
		Scan(sizeFields(&s)...)
	if err != nil {
		return nil, readErr(err)
	}
	return &s, nil
}

func (r *PostgresRepository) UpdateSize(ctx context.Context, s *domain.Size) error {
	err := r.DB.QueryRowContext(ctx,
		"UPDATE sizes SET text=$1, updated_at=now() WHERE id=$2 RETURNING updated_at", s.Text, s.ID,
	).Scan(&s.UpdatedAt)
	return writeErr(err)
}

func (r *PostgresRepository) DeleteSize(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.delete(ctx, "sizes", id)
}

func (r *PostgresRepository) CreateAddon(ctx context.Context, a *domain.Addon) error {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO addons (id, text) VALUES ($1, $2) RETURNING created_at, updated_at", a.ID, a.Text,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	return writeErr(err)
}

func (r *PostgresRepository) ListAddons(ctx context.Context, filter domain.TextFilter, window pagination.Window) ([]domain.Addon, int, error) {
	q := &query{}
	q.contains("a.text", filter)

	total, err := r.count(ctx, "addons a", q)
	if err != nil {
		return nil, 0, err
	}

	limit, args := q.page(window)
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+addonColumns+" FROM addons a"+q.whereClause()+" ORDER BY a.created_at DESC"+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	addons := []domain.Addon{}
	for rows.Next() {
		var a domain.Addon
		if err := rows.Scan(addonFields(&a)...); err != nil {
			return nil, 0, err
		}
		addons = append(addons, a)
	}
	return addons, total, rows.Err()
}

func (r *PostgresRepository) GetAddon(ctx context.Context, id uuid.UUID) (*domain.Addon, error) {
	var a domain.Addon
	err := r.DB.QueryRowContext(ctx, "SELECT "+addonColumns+" FROM addons a WHERE a.id = $1", id).
		Scan(addonFields(&a)...)
	if err != nil {
		return nil, readErr(err)
	}
	return &a, nil
}

func (r *PostgresRepository) UpdateAddon(ctx context.Context, a *domain.Addon) error {
	err := r.DB.QueryRowContext(ctx,
		"UPDATE addons SET text=$1, updated_at=now() WHERE id=$2 RETURNING updated_at", a.Text, a.ID,
	).Scan(&a.UpdatedAt)
	return writeErr(err)
}

func (r *PostgresRepository) DeleteAddon(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.delete(ctx, "addons", id)
}
