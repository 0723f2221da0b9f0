package court

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) GetActiveCourts(ctx context.Context) ([]Court, error) {
	sql := `
		SELECT name, active, updated_at
		FROM courts
		WHERE active
		ORDER BY name;
	`

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch courts: %w", err)
	}

	defer rows.Close()

	var courts []Court

	for rows.Next() {
		var court Court

		if err := rows.Scan(&court.Name, &court.Active, &court.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning court row: %w", err)
		}

		courts = append(courts, court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating court rows: %w", err)
	}

	return courts, nil
}

// SeedCourts inserts the names that are not yet known. Existing rows keep
// their active flag.
func (r *Repository) SeedCourts(ctx context.Context, names []string) error {
	sql := `
		INSERT INTO courts (name, active, updated_at)
		SELECT unnest($1::text[]), true, now()
		ON CONFLICT (name) DO NOTHING;
	`

	if _, err := r.pool.Exec(ctx, sql, names); err != nil {
		return fmt.Errorf("failed to seed courts: %w", err)
	}

	return nil
}
