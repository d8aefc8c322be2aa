package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"she-fix/internal/data/entity"
)

// NewMemoryRepository returns repositories backed by process memory. It serves the
// STORAGE=memory demo mode and the test suites; records are lost on restart.
func NewMemoryRepository(log *zap.Logger) *Repository {
	store := &memoryStore{
		users: make(map[uuid.UUID]entity.User),
		jobs:  make(map[uuid.UUID]entity.Job),
	}
	return &Repository{
		User: &memoryUserRepository{store: store, log: log.With(zap.String("repository", "user"))},
		Job:  &memoryJobRepository{store: store, log: log.With(zap.String("repository", "job"))},
	}
}

type memoryStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]entity.User
	jobs  map[uuid.UUID]entity.Job
}

type memoryUserRepository struct {
	store *memoryStore
	log   *zap.Logger
}

func (r *memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return fmt.Errorf("create user %s: %w", user.Email, ErrDuplicate)
		}
	}
	r.store.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.findFirst(func(u entity.User) bool { return u.Email == email }), nil
}

func (r *memoryUserRepository) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	return r.findFirst(func(u entity.User) bool { return u.Phone != nil && *u.Phone == phone }), nil
}

func (r *memoryUserRepository) FindByRole(_ context.Context, role entity.UserRole) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]*entity.User, 0)
	for _, u := range r.store.users {
		if u.Role == role {
			users = append(users, &u)
		}
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.users[user.ID]
	if !ok {
		return fmt.Errorf("user %s not found", user.ID.String())
	}

	existing.Name = user.Name
	existing.Phone = user.Phone
	existing.Profession = user.Profession
	existing.TrustScore = user.TrustScore
	existing.KYCStatus = user.KYCStatus
	existing.Language = user.Language
	existing.UpdatedAt = user.UpdatedAt
	r.store.users[user.ID] = existing
	return nil
}

// findFirst returns the earliest created user matching fn.
func (r *memoryUserRepository) findFirst(fn func(entity.User) bool) *entity.User {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var found *entity.User
	for _, u := range r.store.users {
		if !fn(u) {
			continue
		}
		if found == nil || u.CreatedAt.Before(found.CreatedAt) {
			found = &u
		}
	}
	return found
}

type memoryJobRepository struct {
	store *memoryStore
	log   *zap.Logger
}

func (r *memoryJobRepository) Create(_ context.Context, job *entity.Job) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[job.PostedBy]; !ok {
		return fmt.Errorf("create job: poster %s does not exist", job.PostedBy.String())
	}
	r.store.jobs[job.ID] = *job
	return nil
}

func (r *memoryJobRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	job, ok := r.store.jobs[id]
	if !ok {
		return nil, nil
	}
	return &job, nil
}

func (r *memoryJobRepository) FindByStatus(_ context.Context, status entity.JobStatus) ([]*entity.Job, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	jobs := make([]*entity.Job, 0)
	for _, j := range r.store.jobs {
		if j.Status == status {
			jobs = append(jobs, &j)
		}
	}
	sort.SliceStable(jobs, func(i, k int) bool {
		return jobs[i].CreatedAt.After(jobs[k].CreatedAt)
	})

	r.log.Debug("Jobs found",
		zap.String("status", string(status)),
		zap.Int("count", len(jobs)),
	)
	return jobs, nil
}

func (r *memoryJobRepository) UpdateStatus(_ context.Context, id uuid.UUID, from, to entity.JobStatus, acceptedBy *uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	job, ok := r.store.jobs[id]
	if !ok || job.Status != from {
		return false, nil
	}

	job.Status = to
	if acceptedBy != nil {
		by := *acceptedBy
		job.AcceptedBy = &by
	}
	job.UpdatedAt = time.Now()
	r.store.jobs[id] = job
	return true, nil
}
