package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const attemptColumns = `id, court, target_time, owner, duration_minutes, alternate_times, status, error_message, created_at, updated_at`

func scanAttempt(row pgx.Row) (Attempt, error) {
	var attempt Attempt

	err := row.Scan(
		&attempt.ID,
		&attempt.Court,
		&attempt.TargetTime,
		&attempt.Owner,
		&attempt.DurationMinutes,
		&attempt.AlternateTimes,
		&attempt.Status,
		&attempt.ErrorMessage,
		&attempt.CreatedAt,
		&attempt.UpdatedAt,
	)

	return attempt, err
}

func (r *Repository) InsertAttempt(ctx context.Context, attempt Attempt) (Attempt, error) {
	sql := `
		INSERT INTO attempts (id, court, target_time, owner, duration_minutes, alternate_times, status, error_message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING ` + attemptColumns + `;
	`

	if attempt.AlternateTimes == nil {
		attempt.AlternateTimes = []string{}
	}

	inserted, err := scanAttempt(r.pool.QueryRow(ctx, sql,
		attempt.ID,
		attempt.Court,
		attempt.TargetTime,
		attempt.Owner,
		attempt.DurationMinutes,
		attempt.AlternateTimes,
		attempt.Status,
		attempt.ErrorMessage,
		attempt.CreatedAt,
	))

	if err != nil {
		return Attempt{}, fmt.Errorf("failed to insert attempt: %w", err)
	}

	return inserted, nil
}

func (r *Repository) GetAttemptByID(ctx context.Context, id string) (Attempt, error) {
	sql := `SELECT ` + attemptColumns + ` FROM attempts WHERE id=$1;`

	attempt, err := scanAttempt(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Attempt{}, ErrAttemptNotFound
	}

	if err != nil {
		return Attempt{}, fmt.Errorf("failed to fetch attempt with id %v: %w", id, err)
	}

	return attempt, nil
}

func (r *Repository) GetAttemptsByOwner(ctx context.Context, owner string) ([]Attempt, error) {
	sql := `SELECT ` + attemptColumns + ` FROM attempts WHERE owner=$1 ORDER BY target_time DESC;`

	rows, err := r.pool.Query(ctx, sql, owner)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch attempts for owner '%v': %w", owner, err)
	}

	defer rows.Close()

	attempts := []Attempt{}

	for rows.Next() {
		attempt, err := scanAttempt(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning attempt row: %w", err)
		}

		attempts = append(attempts, attempt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attempt rows: %w", err)
	}

	return attempts, nil
}

func (r *Repository) SetAttemptStatus(ctx context.Context, id string, status Status, errorMessage *string) error {
	sql := `
		UPDATE attempts
		SET status=$2, error_message=$3, updated_at=$4
		WHERE id=$1;
	`

	tag, err := r.pool.Exec(ctx, sql, id, status, errorMessage, time.Now())

	if err != nil {
		return fmt.Errorf("failed to set status of attempt %v: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrAttemptNotFound
	}

	return nil
}

// JobStore persists the deferred job table so it survives restarts.
type JobStore struct{ pool *pgxpool.Pool }

func NewJobStore(pool *pgxpool.Pool) *JobStore {
	return &JobStore{pool: pool}
}

func (s *JobStore) UpsertJob(ctx context.Context, job Job) error {
	sql := `
		INSERT INTO scheduled_jobs (job_id, attempt_id, fires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_id) DO UPDATE
		SET attempt_id=EXCLUDED.attempt_id, fires_at=EXCLUDED.fires_at;
	`

	if _, err := s.pool.Exec(ctx, sql, job.ID, job.AttemptID, job.FiresAt); err != nil {
		return fmt.Errorf("failed to save job %v: %w", job.ID, err)
	}

	return nil
}

func (s *JobStore) DeleteJob(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM scheduled_jobs WHERE job_id=$1;`, id); err != nil {
		return fmt.Errorf("failed to delete job %v: %w", id, err)
	}

	return nil
}

func (s *JobStore) GetPendingJobs(ctx context.Context) ([]Job, error) {
	rows, err := s.pool.Query(ctx, `SELECT job_id, attempt_id, fires_at FROM scheduled_jobs ORDER BY fires_at;`)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}

	defer rows.Close()

	var jobs []Job

	for rows.Next() {
		var job Job

		if err := rows.Scan(&job.ID, &job.AttemptID, &job.FiresAt); err != nil {
			return nil, fmt.Errorf("error scanning job row: %w", err)
		}

		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}

	return jobs, nil
}
