package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"she-fix/internal/data/entity"
)

func newUser(email string, role entity.UserRole, created time.Time) *entity.User {
	return &entity.User{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: created, UpdatedAt: created},
		Name:      email,
		Email:     email,
		Role:      role,
		KYCStatus: entity.KYCStatusPending,
		Language:  "en",
	}
}

func newJob(poster uuid.UUID, status entity.JobStatus, created time.Time) *entity.Job {
	return &entity.Job{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: created, UpdatedAt: created},
		Title:       "Deep House Cleaning",
		Location:    "Navi Mumbai",
		Category:    "Cleaning",
		Pay:         350,
		Unit:        entity.PayUnitHour,
		ServiceType: entity.ServiceTypeShortTerm,
		Duration:    "4 Hours",
		Status:      status,
		PostedBy:    poster,
	}
}

func TestMemoryUser_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(zap.NewNop())
	now := time.Now()

	user := newUser("savita@example.com", entity.RoleWorker, now)
	phone := "9876543210"
	user.Phone = &phone
	require.NoError(t, repo.User.Create(ctx, user))

	err := repo.User.Create(ctx, newUser("savita@example.com", entity.RoleSeeker, now))
	assert.ErrorIs(t, err, ErrDuplicate)

	found, err := repo.User.FindByEmail(ctx, "savita@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	found, err = repo.User.FindByPhone(ctx, phone)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	missing, err := repo.User.FindByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryUser_FindByPhoneReturnsEarliest(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(zap.NewNop())
	now := time.Now()
	phone := "9123456780"

	later := newUser("later@example.com", entity.RoleSeeker, now)
	later.Phone = &phone
	earlier := newUser("earlier@example.com", entity.RoleSeeker, now.Add(-time.Hour))
	earlier.Phone = &phone
	require.NoError(t, repo.User.Create(ctx, later))
	require.NoError(t, repo.User.Create(ctx, earlier))

	found, err := repo.User.FindByPhone(ctx, phone)
	require.NoError(t, err)
	assert.Equal(t, earlier.ID, found.ID)
}

func TestMemoryUser_FindByRoleNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(zap.NewNop())
	now := time.Now()

	old := newUser("old@example.com", entity.RoleWorker, now.Add(-2*time.Hour))
	recent := newUser("recent@example.com", entity.RoleWorker, now)
	seeker := newUser("seeker@example.com", entity.RoleSeeker, now)
	for _, u := range []*entity.User{old, recent, seeker} {
		require.NoError(t, repo.User.Create(ctx, u))
	}

	workers, err := repo.User.FindByRole(ctx, entity.RoleWorker)
	require.NoError(t, err)
	require.Len(t, workers, 2)
	assert.Equal(t, recent.ID, workers[0].ID)
	assert.Equal(t, old.ID, workers[1].ID)
}

func TestMemoryUser_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(zap.NewNop())

	user := newUser("riya@example.com", entity.RoleWorker, time.Now())
	require.NoError(t, repo.User.Create(ctx, user))

	user.KYCStatus = entity.KYCStatusVerified
	user.TrustScore = 0.97
	require.NoError(t, repo.User.Update(ctx, user))

	found, err := repo.User.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, found.IsVerified())
	assert.Equal(t, 0.97, found.TrustScore)

	assert.Error(t, repo.User.Update(ctx, newUser("ghost@example.com", entity.RoleWorker, time.Now())))
}

func TestMemoryJob_CreateRequiresPoster(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(zap.NewNop())

	err := repo.Job.Create(ctx, newJob(uuid.New(), entity.JobStatusOpen, time.Now()))
	assert.Error(t, err)
}

func TestMemoryJob_FindByStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(zap.NewNop())
	now := time.Now()

	poster := newUser("anjali@example.com", entity.RoleSeeker, now)
	require.NoError(t, repo.User.Create(ctx, poster))

	older := newJob(poster.ID, entity.JobStatusOpen, now.Add(-time.Hour))
	newer := newJob(poster.ID, entity.JobStatusOpen, now)
	done := newJob(poster.ID, entity.JobStatusCompleted, now)
	for _, j := range []*entity.Job{older, newer, done} {
		require.NoError(t, repo.Job.Create(ctx, j))
	}

	open, err := repo.Job.FindByStatus(ctx, entity.JobStatusOpen)
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, newer.ID, open[0].ID)
	assert.Equal(t, older.ID, open[1].ID)
}

func TestMemoryJob_UpdateStatusIsConditional(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(zap.NewNop())
	now := time.Now()

	poster := newUser("priya@example.com", entity.RoleSeeker, now)
	require.NoError(t, repo.User.Create(ctx, poster))
	job := newJob(poster.ID, entity.JobStatusOpen, now)
	require.NoError(t, repo.Job.Create(ctx, job))

	// Ten workers race for the same job; exactly one wins.
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker := uuid.New()
			ok, err := repo.Job.UpdateStatus(ctx, job.ID, entity.JobStatusOpen, entity.JobStatusAccepted, &worker)
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)

	found, err := repo.Job.FindByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusAccepted, found.Status)
	assert.NotNil(t, found.AcceptedBy)

	ok, err := repo.Job.UpdateStatus(ctx, uuid.New(), entity.JobStatusOpen, entity.JobStatusAccepted, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}
