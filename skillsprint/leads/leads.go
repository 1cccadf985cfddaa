package leads

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new lead repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// records a captured lead
func (r *Repository) Create(ctx context.Context, email, name, message, source string) (*Lead, error) {
	var lead Lead

	err := r.db.QueryRow(ctx, queryCreate, email, name, message, source).Scan(
		&lead.ID,
		&lead.Email,
		&lead.Name,
		&lead.Message,
		&lead.Source,
		&lead.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &lead, nil
}

// lists leads, newest first
func (r *Repository) List(ctx context.Context, limit, offset int) ([]Lead, error) {
	rows, err := r.db.Query(ctx, queryList, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Lead

	for rows.Next() {
		var lead Lead

		err := rows.Scan(
			&lead.ID,
			&lead.Email,
			&lead.Name,
			&lead.Message,
			&lead.Source,
			&lead.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		result = append(result, lead)
	}

	return result, rows.Err()
}

// returns the most recent leads
func (r *Repository) Recent(ctx context.Context, limit int) ([]Lead, error) {
	rows, err := r.db.Query(ctx, queryRecent, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Lead

	for rows.Next() {
		var lead Lead

		err := rows.Scan(
			&lead.ID,
			&lead.Email,
			&lead.Name,
			&lead.Message,
			&lead.Source,
			&lead.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		result = append(result, lead)
	}

	return result, rows.Err()
}

// counts all leads
func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, queryCount).Scan(&count)
	return count, err
}

// counts leads captured since a point in time
func (r *Repository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, queryCountSince, since).Scan(&count)
	return count, err
}
