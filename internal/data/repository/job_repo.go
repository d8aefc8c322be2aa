package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"she-fix/internal/data/entity"
	"she-fix/pkg/database"
)

type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	FindByStatus(ctx context.Context, status entity.JobStatus) ([]*entity.Job, error)

	// UpdateStatus moves the job from one status to another in a single conditional
	// write. It reports false when the job does not exist or is not in status from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.JobStatus, acceptedBy *uuid.UUID) (bool, error)
}

type jobRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewJobRepository(db database.PgxIface, log *zap.Logger) JobRepository {
	return &jobRepository{
		db:  db,
		log: log.With(zap.String("repository", "job")),
	}
}

const jobColumns = `id, title, location, category, description, pay, unit, service_type,
		       duration, status, safety_verified, posted_by, accepted_by, created_at, updated_at`

func scanJob(row scanner) (*entity.Job, error) {
	var job entity.Job
	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Location,
		&job.Category,
		&job.Description,
		&job.Pay,
		&job.Unit,
		&job.ServiceType,
		&job.Duration,
		&job.Status,
		&job.SafetyVerified,
		&job.PostedBy,
		&job.AcceptedBy,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Create(ctx context.Context, job *entity.Job) error {
	query := `
		INSERT INTO jobs (id, title, location, category, description, pay, unit,
		                  service_type, duration, status, safety_verified, posted_by,
		                  accepted_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.Exec(ctx, query,
		job.ID,
		job.Title,
		job.Location,
		job.Category,
		job.Description,
		job.Pay,
		job.Unit,
		job.ServiceType,
		job.Duration,
		job.Status,
		job.SafetyVerified,
		job.PostedBy,
		job.AcceptedBy,
		job.CreatedAt,
		job.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create job",
			zap.Error(err),
			zap.String("title", job.Title),
			zap.String("posted_by", job.PostedBy.String()),
		)
		return fmt.Errorf("create job: %w", err)
	}

	return nil
}

func (r *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find job by ID",
			zap.Error(err),
			zap.String("job_id", id.String()),
		)
		return nil, fmt.Errorf("find job %s: %w", id.String(), err)
	}

	return job, nil
}

// FindByStatus lists jobs in the given status, newest first.
func (r *jobRepository) FindByStatus(ctx context.Context, status entity.JobStatus) ([]*entity.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE status = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		r.log.Error("Failed to find jobs by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find jobs by status %s: %w", status, err)
	}
	defer rows.Close()

	jobs := make([]*entity.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			r.log.Error("Failed to scan job row", zap.Error(err))
			return nil, fmt.Errorf("scan job row: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate job rows: %w", err)
	}

	r.log.Debug("Jobs found",
		zap.String("status", string(status)),
		zap.Int("count", len(jobs)),
	)

	return jobs, nil
}

func (r *jobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.JobStatus, acceptedBy *uuid.UUID) (bool, error) {
	query := `
		UPDATE jobs
		SET status = $3, accepted_by = COALESCE($4, accepted_by), updated_at = $5
		WHERE id = $1 AND status = $2
	`

	result, err := r.db.Exec(ctx, query, id, from, to, acceptedBy, time.Now())
	if err != nil {
		r.log.Error("Failed to update job status",
			zap.Error(err),
			zap.String("job_id", id.String()),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
		return false, fmt.Errorf("update job %s status: %w", id.String(), err)
	}

	return result.RowsAffected() == 1, nil
}
