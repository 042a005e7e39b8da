package service

import (
	"context"
	"time"

	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/blaisecz/sleep-journal/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"
)

// StatisticsService computes the rolling sleep summary for a user.
type StatisticsService interface {
	// Compute summarises the user's logs over the last
	// domain.StatisticsWindowDays calendar days, today included.
	Compute(ctx context.Context, userID uuid.UUID) (*domain.SleepStatistics, error)
}

type statisticsService struct {
	repo     repository.SleepLogRepository
	location *time.Location
	now      func() time.Time
}

// NewStatisticsService creates a StatisticsService. Clock times and "today"
// are evaluated in loc; now supplies the current instant. A nil loc means
// time.Local and a nil now means time.Now.
func NewStatisticsService(repo repository.SleepLogRepository, loc *time.Location, now func() time.Time) StatisticsService {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &statisticsService{
		repo:     repo,
		location: loc,
		now:      now,
	}
}

func (s *statisticsService) Compute(ctx context.Context, userID uuid.UUID) (*domain.SleepStatistics, error) {
	from, to := StatisticsWindow(s.now(), s.location)

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "StatisticsService.Compute",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("window.from", domain.FormatDate(from)),
			attribute.String("window.to", domain.FormatDate(to)),
			attribute.String("window.zone", s.location.String()),
		),
	)
	defer span.End()

	logs, err := s.repo.FindInRange(ctx, userID, from, to)
	if err != nil {
		return nil, recordError(span, err)
	}
	span.SetAttributes(attribute.Int("window.sleep_count", len(logs)))

	return Aggregate(from, to, logs, s.location), nil
}

// StatisticsWindow returns the inclusive window ending on the calendar date
// of now in loc and spanning domain.StatisticsWindowDays days.
func StatisticsWindow(now time.Time, loc *time.Location) (from, to datatypes.Date) {
	to = domain.DateOf(now, loc)
	from = domain.AddDays(to, -(domain.StatisticsWindowDays - 1))
	return from, to
}
