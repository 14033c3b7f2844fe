package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/cahuala/ordersApi/pos-svc/internal/domain"
	"github.com/cahuala/ordersApi/pos-svc/internal/pagination"
)

const (
	sizeFoodColumns  = "sf.id, sf.size_id, sf.food_id, sf.price, sf.created_at, sf.updated_at"
	sizeFoodFrom     = "size_foods sf JOIN foods f ON f.id = sf.food_id JOIN sizes s ON s.id = sf.size_id"
	addonFoodColumns = "af.id, af.addon_id, af.food_id, af.price, af.created_at, af.updated_at"
	addonFoodFrom    = "addon_foods af JOIN foods f ON f.id = af.food_id JOIN addons a ON a.id = af.addon_id"
)

func scanSizeFood(row scanner) (*domain.SizeFood, error) {
	sf := domain.SizeFood{Food: &domain.Food{}, Size: &domain.Size{}}
	dest := []interface{}{&sf.ID, &sf.SizeID, &sf.FoodID, &sf.Price, &sf.CreatedAt, &sf.UpdatedAt}
	dest = append(dest, foodFields(sf.Food)...)
	dest = append(dest, sizeFields(sf.Size)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &sf, nil
}

func scanAddonFood(row scanner) (*domain.AddonFood, error) {
	af := domain.AddonFood{Food: &domain.Food{}, Addon: &domain.Addon{}}
	dest := []interface{}{&af.ID, &af.AddonID, &af.FoodID, &af.Price, &af.CreatedAt, &af.UpdatedAt}
	dest = append(dest, foodFields(af.Food)...)
	dest = append(dest, addonFields(af.Addon)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &af, nil
}

func (r *PostgresRepository) CreateSizeFood(ctx context.Context, sf *domain.SizeFood) error {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO size_foods (id, size_id, food_id, price) VALUES ($1, $2, $3, $4) RETURNING created_at, updated_at",
		sf.ID, sf.SizeID, sf.FoodID, sf.Price,
	).Scan(&sf.CreatedAt, &sf.UpdatedAt)
	return writeErr(err)
}

// ListSizeFoods filters on the size text for both the count and the page.
func (r *PostgresRepository) ListSizeFoods(ctx context.Context, filter domain.TextFilter, window pagination.Window) ([]domain.SizeFood, int, error) {
	q := &query{}
	q.contains("s.text", filter)

	total, err := r.count(ctx, sizeFoodFrom, q)
	if err != nil {
		return nil, 0, err
	}

	limit, args := q.page(window)
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+sizeFoodColumns+", "+foodColumns+", "+sizeColumns+" FROM "+sizeFoodFrom+
			q.whereClause()+" ORDER BY sf.created_at DESC"+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	sizeFoods := []domain.SizeFood{}
	for rows.Next() {
		sf, err := scanSizeFood(rows)
		if err != nil {
			return nil, 0, err
		}
		sizeFoods = append(sizeFoods, *sf)
	}
	return sizeFoods, total, rows.Err()
}

func (r *PostgresRepository) GetSizeFood(ctx context.Context, id uuid.UUID) (*domain.SizeFood, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+sizeFoodColumns+", "+foodColumns+", "+sizeColumns+" FROM "+sizeFoodFrom+" WHERE sf.id = $1", id)
	sf, err := scanSizeFood(row)
	if err != nil {
		return nil, readErr(err)
	}
	return sf, nil
}

// FindSizeFood returns the newest override for the pair.
func (r *PostgresRepository) FindSizeFood(ctx context.Context, foodID, sizeID uuid.UUID) (*domain.SizeFood, error) {
	var sf domain.SizeFood
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+sizeFoodColumns+" FROM size_foods sf WHERE sf.food_id = $1 AND sf.size_id = $2 ORDER BY sf.created_at DESC LIMIT 1",
		foodID, sizeID,
	).Scan(&sf.ID, &sf.SizeID, &sf.FoodID, &sf.Price, &sf.CreatedAt, &sf.UpdatedAt)
	if err != nil {
		return nil, readErr(err)
	}
	return &sf, nil
}

func (r *PostgresRepository) UpdateSizeFood(ctx context.Context, sf *domain.SizeFood) error {
	err := r.DB.QueryRowContext(ctx,
		"UPDATE size_foods SET size_id=$1, food_id=$2, price=$3, updated_at=now() WHERE id=$4 RETURNING updated_at",
		sf.SizeID, sf.FoodID, sf.Price, sf.ID,
	).Scan(&sf.UpdatedAt)
	return writeErr(err)
}

func (r *PostgresRepository) DeleteSizeFood(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.delete(ctx, "size_foods", id)
}

func (r *PostgresRepository) CreateAddonFood(ctx context.Context, af *domain.AddonFood) error {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO addon_foods (id, addon_id, food_id, price) VALUES ($1, $2, $3, $4) RETURNING created_at, updated_at",
		af.ID, af.AddonID, af.FoodID, af.Price,
	).Scan(&af.CreatedAt, &af.UpdatedAt)
	return writeErr(err)
}

func (r *PostgresRepository) ListAddonFoods(ctx context.Context, filter domain.TextFilter, window pagination.Window) ([]domain.AddonFood, int, error) {
	q := &query{}
	q.contains("a.text", filter)

	total, err := r.count(ctx, addonFoodFrom, q)
	if err != nil {
		return nil, 0, err
	}

	limit, args := q.page(window)
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+addonFoodColumns+", "+foodColumns+", "+addonColumns+" FROM "+addonFoodFrom+
			q.whereClause()+" ORDER BY af.created_at DESC"+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	addonFoods := []domain.AddonFood{}
	for rows.Next() {
		af, err := scanAddonFood(rows)
		if err != nil {
			return nil, 0, err
		}
		addonFoods = append(addonFoods, *af)
	}
	return addonFoods, total, rows.Err()
}

func (r *PostgresRepository) GetAddonFood(ctx context.Context, id uuid.UUID) (*domain.AddonFood, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+addonFoodColumns+", "+foodColumns+", "+addonColumns+" FROM "+addonFoodFrom+" WHERE af.id = $1", id)
	af, err := scanAddonFood(row)
	if err != nil {
		return nil, readErr(err)
	}
	return af, nil
}

// FindAddonFoods returns one row per requested addon that has a price for
// the food; addons without a row are simply absent.
func (r *PostgresRepository) FindAddonFoods(ctx context.Context, foodID uuid.UUID, addonIDs []uuid.UUID) ([]domain.AddonFood, error) {
	ids := make([]string, len(addonIDs))
	for i, id := range addonIDs {
		ids[i] = id.String()
	}

	rows, err := r.DB.QueryContext(ctx,
		"SELECT DISTINCT ON (af.addon_id) "+addonFoodColumns+" FROM addon_foods af"+
			" WHERE af.food_id = $1 AND af.addon_id = ANY($2::uuid[]) ORDER BY af.addon_id, af.created_at DESC",
		foodID, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addonFoods := []domain.AddonFood{}
	for rows.Next() {
		var af domain.AddonFood
		if err := rows.Scan(&af.ID, &af.AddonID, &af.FoodID, &af.Price, &af.CreatedAt, &af.UpdatedAt); err != nil {
			return nil, err
		}
		addonFoods = append(addonFoods, af)
	}
	return addonFoods, rows.Err()
}

func (r *PostgresRepository) UpdateAddonFood(ctx context.Context, af *domain.AddonFood) error {
	err := r.DB.QueryRowContext(ctx,
		"UPDATE addon_foods SET addon_id=$1, food_id=$2, price=$3, updated_at=now() WHERE id=$4 RETURNING updated_at",
		af.AddonID, af.FoodID, af.Price, af.ID,
	).Scan(&af.UpdatedAt)
	return writeErr(err)
}

func (r *PostgresRepository) DeleteAddonFood(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.delete(ctx, "addon_foods", id)
}
