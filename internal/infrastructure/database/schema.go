package database

import (
	"context"
	"fmt"
)

// reviewsSchema mirrors the reviews table the webhook writes to
const reviewsSchema = `
CREATE TABLE IF NOT EXISTS reviews (
	id             BIGSERIAL PRIMARY KEY,
	contact_number TEXT        NOT NULL,
	user_name      TEXT        NOT NULL,
	product_name   TEXT        NOT NULL,
	product_review TEXT        NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_reviews_contact_number ON reviews (contact_number);
CREATE INDEX IF NOT EXISTS idx_reviews_created_at ON reviews (created_at DESC);
`

// EnsureSchema creates the tables the API needs when they are missing
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}
	if _, err := db.Pool.Exec(ctx, reviewsSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
