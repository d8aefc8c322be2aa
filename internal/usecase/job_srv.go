package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"she-fix/internal/data/entity"
	"she-fix/internal/data/repository"
	"she-fix/internal/dto/request"
	"she-fix/internal/dto/response"
	"she-fix/internal/filter"
	"she-fix/pkg/utils"
)

type JobService interface {
	// GetOpenJobs returns open jobs only, newest first, narrowed by f when set.
	GetOpenJobs(ctx context.Context, f filter.JobFilter) ([]response.JobResponse, error)
	GetJobByID(ctx context.Context, jobID string) (*response.JobResponse, error)
	CreateJob(ctx context.Context, posterID uuid.UUID, req *request.JobRequest) (*response.JobResponse, error)
	AcceptJob(ctx context.Context, jobID string, workerID uuid.UUID) (*response.JobResponse, error)
	CompleteJob(ctx context.Context, jobID string, actorID uuid.UUID) (*response.JobResponse, error)
}

type jobService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewJobService(repo *repository.Repository, log *zap.Logger) JobService {
	return &jobService{
		repo: repo,
		log:  log.With(zap.String("service", "job")),
	}
}

func (s *jobService) GetOpenJobs(ctx context.Context, f filter.JobFilter) ([]response.JobResponse, error) {
	jobs, err := s.repo.Job.FindByStatus(ctx, entity.JobStatusOpen)
	if err != nil {
		s.log.Error("Failed to get open jobs", zap.Error(err))
		return nil, fmt.Errorf("failed to get jobs")
	}

	jobResponses := make([]response.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		// The repository filters by status; re-check so a stale row never leaks.
		if job.Status != entity.JobStatusOpen {
			continue
		}
		jobResponses = append(jobResponses, response.JobToResponse(job))
	}

	if !f.IsZero() {
		jobResponses = filter.Jobs(jobResponses, f)
	}

	s.log.Info("Open jobs retrieved",
		zap.Int("count", len(jobResponses)),
		zap.Bool("filtered", !f.IsZero()),
	)

	return jobResponses, nil
}

func (s *jobService) GetJobByID(ctx context.Context, jobID string) (*response.JobResponse, error) {
	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	resp := response.JobToResponse(job)
	return &resp, nil
}

func (s *jobService) CreateJob(ctx context.Context, posterID uuid.UUID, req *request.JobRequest) (*response.JobResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create job validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	poster, err := s.repo.User.FindByID(ctx, posterID)
	if err != nil {
		s.log.Error("Failed to find poster", zap.Error(err), zap.String("user_id", posterID.String()))
		return nil, fmt.Errorf("failed to create job")
	}
	if poster == nil {
		return nil, fmt.Errorf("user not found")
	}
	if poster.Role != entity.RoleSeeker {
		return nil, fmt.Errorf("forbidden: only seekers can post jobs")
	}

	safetyVerified := true
	if req.SafetyVerified != nil {
		safetyVerified = *req.SafetyVerified
	}

	now := time.Now()
	job := &entity.Job{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:          strings.TrimSpace(req.Title),
		Location:       strings.TrimSpace(req.Location),
		Category:       strings.TrimSpace(req.Category),
		Description:    trimmedOrNil(req.Description),
		Pay:            req.Pay,
		Unit:           entity.PayUnit(req.Unit),
		ServiceType:    entity.ServiceType(req.ServiceType),
		Duration:       strings.TrimSpace(req.Duration),
		Status:         entity.JobStatusOpen,
		SafetyVerified: safetyVerified,
		PostedBy:       posterID,
	}

	if err := s.repo.Job.Create(ctx, job); err != nil {
		s.log.Error("Failed to create job", zap.Error(err), zap.String("title", job.Title))
		return nil, fmt.Errorf("failed to create job")
	}

	s.log.Info("Job posted",
		zap.String("job_id", job.ID.String()),
		zap.String("posted_by", posterID.String()),
		zap.String("category", job.Category),
	)

	resp := response.JobToResponse(job)
	return &resp, nil
}

func (s *jobService) AcceptJob(ctx context.Context, jobID string, workerID uuid.UUID) (*response.JobResponse, error) {
	worker, err := s.repo.User.FindByID(ctx, workerID)
	if err != nil {
		s.log.Error("Failed to find worker", zap.Error(err), zap.String("user_id", workerID.String()))
		return nil, fmt.Errorf("failed to accept job")
	}
	if worker == nil {
		return nil, fmt.Errorf("user not found")
	}
	if worker.Role != entity.RoleWorker {
		return nil, fmt.Errorf("forbidden: only workers can accept jobs")
	}

	return s.transition(ctx, jobID, entity.JobStatusAccepted, &workerID, nil)
}

func (s *jobService) CompleteJob(ctx context.Context, jobID string, actorID uuid.UUID) (*response.JobResponse, error) {
	authorize := func(job *entity.Job) error {
		if job.PostedBy == actorID {
			return nil
		}
		if job.AcceptedBy != nil && *job.AcceptedBy == actorID {
			return nil
		}
		return fmt.Errorf("forbidden: only the assigned worker or the poster can complete this job")
	}

	return s.transition(ctx, jobID, entity.JobStatusCompleted, nil, authorize)
}

// transition applies one lifecycle step with a conditional update so that two
// concurrent accepts cannot both succeed.
func (s *jobService) transition(
	ctx context.Context,
	jobID string,
	to entity.JobStatus,
	acceptedBy *uuid.UUID,
	authorize func(*entity.Job) error,
) (*response.JobResponse, error) {
	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if authorize != nil {
		if err := authorize(job); err != nil {
			s.log.Warn("Job transition rejected",
				zap.String("job_id", jobID),
				zap.String("to", string(to)),
				zap.Error(err))
			return nil, err
		}
	}

	if !job.Status.CanTransitionTo(to) {
		return nil, fmt.Errorf("invalid status transition: job is %s", job.Status)
	}

	updated, err := s.repo.Job.UpdateStatus(ctx, job.ID, job.Status, to, acceptedBy)
	if err != nil {
		s.log.Error("Failed to update job status",
			zap.Error(err),
			zap.String("job_id", jobID),
			zap.String("to", string(to)))
		return nil, fmt.Errorf("failed to update job")
	}
	if !updated {
		return nil, fmt.Errorf("invalid status transition: job is no longer %s", job.Status)
	}

	job, err = s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	s.log.Info("Job status changed",
		zap.String("job_id", jobID),
		zap.String("status", string(job.Status)))

	resp := response.JobToResponse(job)
	return &resp, nil
}

func (s *jobService) findJob(ctx context.Context, jobID string) (*entity.Job, error) {
	id, err := uuid.Parse(jobID)
	if err != nil {
		s.log.Warn("Invalid job ID", zap.String("job_id", jobID), zap.Error(err))
		return nil, fmt.Errorf("invalid job ID")
	}

	job, err := s.repo.Job.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find job", zap.Error(err), zap.String("job_id", jobID))
		return nil, fmt.Errorf("failed to get job")
	}
	if job == nil {
		return nil, fmt.Errorf("job not found")
	}

	return job, nil
}
