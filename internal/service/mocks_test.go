package service

import (
	"context"

	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/blaisecz/sleep-journal/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MockSleepLogRepository wraps the in-memory repository and lets tests force
// errors or observe calls.
type MockSleepLogRepository struct {
	*repository.MemorySleepLogRepository

	existsErr   error
	createErr   error
	rangeErr    error
	existsFunc  func(ctx context.Context, userID uuid.UUID, date datatypes.Date) (bool, error)
	rangeCalls  int
	lastFrom    datatypes.Date
	lastTo      datatypes.Date
	createCalls int
}

func NewMockSleepLogRepository() *MockSleepLogRepository {
	return &MockSleepLogRepository{MemorySleepLogRepository: repository.NewMemorySleepLogRepository()}
}

func (m *MockSleepLogRepository) Create(ctx context.Context, log *domain.SleepLog) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	return m.MemorySleepLogRepository.Create(ctx, log)
}

func (m *MockSleepLogRepository) ExistsByUserAndDate(ctx context.Context, userID uuid.UUID, date datatypes.Date) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	if m.existsFunc != nil {
		return m.existsFunc(ctx, userID, date)
	}
	return m.MemorySleepLogRepository.ExistsByUserAndDate(ctx, userID, date)
}

func (m *MockSleepLogRepository) FindInRange(ctx context.Context, userID uuid.UUID, from, to datatypes.Date) ([]domain.SleepLog, error) {
	m.rangeCalls++
	m.lastFrom, m.lastTo = from, to
	if m.rangeErr != nil {
		return nil, m.rangeErr
	}
	return m.MemorySleepLogRepository.FindInRange(ctx, userID, from, to)
}
