package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"whatsapp-reviews/internal/domains/review/model"
)

// Querier is the slice of *pgxpool.Pool the repository needs
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresReviewRepository struct {
	pool Querier
}

func NewPostgresReviewRepository(pool Querier) ReviewRepository {
	return &postgresReviewRepository{pool: pool}
}

const reviewColumns = `id, contact_number, user_name, product_name, product_review, created_at`

// =====================================================
// CREATE
// =====================================================

func (r *postgresReviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (contact_number, user_name, product_name, product_review, created_at)
		VALUES ($1, $2, $3, $4, COALESCE($5, NOW()))
		RETURNING id, created_at
	`

	var createdAt any
	if !review.CreatedAt.IsZero() {
		createdAt = review.CreatedAt
	}

	err := r.pool.QueryRow(ctx, query,
		review.ContactNumber,
		review.UserName,
		review.ProductName,
		review.ProductReview,
		createdAt,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

// =====================================================
// DUPLICATE LOOKUP
// =====================================================

func (r *postgresReviewRepository) FindLatestSubmission(
	ctx context.Context,
	contact, product, text string,
) (*model.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE contact_number = $1 AND product_name = $2 AND product_review = $3
		ORDER BY created_at DESC
		LIMIT 1
	`

	review, err := scanReview(r.pool.QueryRow(ctx, query, contact, product, text))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}

	return review, nil
}

// =====================================================
// LIST
// =====================================================

func (r *postgresReviewRepository) List(ctx context.Context, limit, offset int) ([]*model.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]*model.Review, 0, limit)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}

	return reviews, nil
}

func scanReview(row pgx.Row) (*model.Review, error) {
	review := &model.Review{}
	err := row.Scan(
		&review.ID,
		&review.ContactNumber,
		&review.UserName,
		&review.ProductName,
		&review.ProductReview,
		&review.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return review, nil
}
