package handler

import (
	"context"
	"time"

	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/google/uuid"
)

// MockSleepLogService is a mock implementation of SleepLogService
type MockSleepLogService struct {
	createFunc    func(ctx context.Context, req *domain.CreateSleepLogRequest) (*domain.SleepLog, error)
	getLatestFunc func(ctx context.Context, userID uuid.UUID) (*domain.SleepLog, error)
	lastRequest   *domain.CreateSleepLogRequest
}

func (m *MockSleepLogService) Create(ctx context.Context, req *domain.CreateSleepLogRequest) (*domain.SleepLog, error) {
	m.lastRequest = req
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	sleepDate, _ := domain.ParseDate(req.SleepDate)
	return &domain.SleepLog{
		ID:                    1,
		UserID:                req.UserID,
		SleepDate:             sleepDate,
		BedTime:               req.BedTime,
		WakeTime:              req.WakeTime,
		TotalTimeInBedMinutes: domain.TotalTimeInBedMinutes(req.BedTime, req.WakeTime),
		Feeling:               req.Feeling,
		CreatedAt:             time.Now(),
	}, nil
}

func (m *MockSleepLogService) GetLatest(ctx context.Context, userID uuid.UUID) (*domain.SleepLog, error) {
	if m.getLatestFunc != nil {
		return m.getLatestFunc(ctx, userID)
	}
	return nil, domain.NewError(domain.ErrNotFound, "no sleep log found for user %s", userID)
}

// MockStatisticsService is a mock implementation of StatisticsService
type MockStatisticsService struct {
	computeFunc func(ctx context.Context, userID uuid.UUID) (*domain.SleepStatistics, error)
}

func (m *MockStatisticsService) Compute(ctx context.Context, userID uuid.UUID) (*domain.SleepStatistics, error) {
	if m.computeFunc != nil {
		return m.computeFunc(ctx, userID)
	}
	return &domain.SleepStatistics{
		DateRange:     domain.DateRange{From: "2024-02-10", To: "2024-03-10"},
		FeelingCounts: domain.EmptyFeelingCounts(),
	}, nil
}
