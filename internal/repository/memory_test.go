package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySleepLogRepository_Uniqueness(t *testing.T) {
	repo := NewMemorySleepLogRepository()
	ctx := context.Background()
	userID := uuid.New()

	first := newLog(userID)
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, int64(1), first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	err := repo.Create(ctx, newLog(userID))
	assert.True(t, errors.Is(err, domain.ErrConflict))

	// Same date for a different user is fine.
	require.NoError(t, repo.Create(ctx, newLog(uuid.New())))

	exists, err := repo.ExistsByUserAndDate(ctx, userID, domain.NewDate(2024, 3, 10))
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUserAndDate(ctx, userID, domain.NewDate(2024, 3, 11))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemorySleepLogRepository_FindLatest(t *testing.T) {
	repo := NewMemorySleepLogRepository()
	ctx := context.Background()
	userID := uuid.New()

	_, err := repo.FindLatest(ctx, userID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	for _, day := range []int{12, 14, 13} {
		log := newLog(userID)
		log.SleepDate = domain.NewDate(2024, 3, day)
		require.NoError(t, repo.Create(ctx, log))
	}

	latest, err := repo.FindLatest(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-14", domain.FormatDate(latest.SleepDate))
}

func TestMemorySleepLogRepository_FindInRange(t *testing.T) {
	repo := NewMemorySleepLogRepository()
	ctx := context.Background()
	userID := uuid.New()
	other := uuid.New()

	for _, day := range []int{1, 5, 10, 11} {
		log := newLog(userID)
		log.SleepDate = domain.NewDate(2024, 3, day)
		require.NoError(t, repo.Create(ctx, log))
	}
	foreign := newLog(other)
	foreign.SleepDate = domain.NewDate(2024, 3, 5)
	require.NoError(t, repo.Create(ctx, foreign))

	logs, err := repo.FindInRange(ctx, userID, domain.NewDate(2024, 3, 5), domain.NewDate(2024, 3, 10))
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "2024-03-05", domain.FormatDate(logs[0].SleepDate))
	assert.Equal(t, "2024-03-10", domain.FormatDate(logs[1].SleepDate))
	for _, l := range logs {
		assert.Equal(t, userID, l.UserID)
	}

	repo.Truncate()
	logs, err = repo.FindInRange(ctx, userID, domain.NewDate(2024, 3, 1), domain.NewDate(2024, 3, 31))
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestMemorySleepLogRepository_CancelledContext(t *testing.T) {
	repo := NewMemorySleepLogRepository()
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	err := repo.Create(ctx, newLog(uuid.New()))
	assert.True(t, errors.Is(err, domain.ErrStorage))
}
