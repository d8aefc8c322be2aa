package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"she-fix/internal/data/entity"
)

var jobColumnNames = []string{
	"id", "title", "location", "category", "description", "pay", "unit", "service_type",
	"duration", "status", "safety_verified", "posted_by", "accepted_by", "created_at", "updated_at",
}

func TestJobRepository_FindByStatus(t *testing.T) {
	mock := newMockPool(t)
	repo := NewJobRepository(mock, zap.NewNop())

	poster := uuid.New()
	first, second := uuid.New(), uuid.New()
	now := time.Now()
	desc := "Need deep cleaning for 2 BHK apartment before festival."

	rows := pgxmock.NewRows(jobColumnNames).
		AddRow(first, "Deep House Cleaning", "Sector 12, Navi Mumbai", "Cleaning", &desc, 350.0,
			entity.PayUnitHour, entity.ServiceTypeShortTerm, "4 Hours (Today)", entity.JobStatusOpen,
			true, poster, (*uuid.UUID)(nil), now, now).
		AddRow(second, "Daily House Maid", "Panvel, Mumbai", "Cleaning", (*string)(nil), 8000.0,
			entity.PayUnitMonth, entity.ServiceTypeLongTerm, "Ongoing", entity.JobStatusOpen,
			true, poster, (*uuid.UUID)(nil), now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("FROM jobs WHERE status = $1 ORDER BY created_at DESC")).
		WithArgs(entity.JobStatusOpen).
		WillReturnRows(rows)

	jobs, err := repo.FindByStatus(context.Background(), entity.JobStatusOpen)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, first, jobs[0].ID)
	assert.Equal(t, desc, *jobs[0].Description)
	assert.Nil(t, jobs[1].Description)
	assert.Nil(t, jobs[1].AcceptedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_UpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{"transition applied", 1, true},
		{"status already moved", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			repo := NewJobRepository(mock, zap.NewNop())

			jobID, worker := uuid.New(), uuid.New()
			mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND status = $2")).
				WithArgs(jobID, entity.JobStatusOpen, entity.JobStatusAccepted, &worker, pgxmock.AnyArg()).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			ok, err := repo.UpdateStatus(context.Background(), jobID, entity.JobStatusOpen, entity.JobStatusAccepted, &worker)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
