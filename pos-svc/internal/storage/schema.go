package storage

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY,
		icon TEXT NOT NULL,
		text TEXT NOT NULL,
		type TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS foods (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL CHECK (price > 0),
		image TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sizes (
		id UUID PRIMARY KEY,
		text TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS addons (
		id UUID PRIMARY KEY,
		text TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS size_foods (
		id UUID PRIMARY KEY,
		size_id UUID NOT NULL REFERENCES sizes(id),
		food_id UUID NOT NULL REFERENCES foods(id),
		price NUMERIC(10,2) NOT NULL CHECK (price > 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS addon_foods (
		id UUID PRIMARY KEY,
		addon_id UUID NOT NULL REFERENCES addons(id),
		food_id UUID NOT NULL REFERENCES foods(id),
		price NUMERIC(10,2) NOT NULL CHECK (price > 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS tables (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		total_pax INT NOT NULL CHECK (total_pax > 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS table_sessions (
		id UUID PRIMARY KEY,
		table_no UUID NOT NULL REFERENCES tables(id),
		pax INT NOT NULL CHECK (pax > 0),
		status TEXT NOT NULL DEFAULT 'unpaid' CHECK (status IN ('unpaid', 'paid')),
		total NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (total >= 0),
		version INT NOT NULL DEFAULT 1,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		food_id UUID NOT NULL REFERENCES foods(id),
		quantity INT NOT NULL CHECK (quantity > 0),
		price NUMERIC(10,2) NOT NULL CHECK (price > 0),
		table_session_id UUID NOT NULL REFERENCES table_sessions(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_table_session_id ON orders (table_session_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_size_foods_food_size ON size_foods (food_id, size_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_addon_foods_food_addon ON addon_foods (food_id, addon_id)`,
}

// EnsureSchema creates the pos tables when they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
