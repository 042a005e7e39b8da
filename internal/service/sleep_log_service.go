package service

import (
	"context"

	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/blaisecz/sleep-journal/internal/repository"
	"github.com/blaisecz/sleep-journal/internal/validation"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "sleep-journal-api/service"

type SleepLogService interface {
	// Create validates and stores a new sleep log.
	Create(ctx context.Context, req *domain.CreateSleepLogRequest) (*domain.SleepLog, error)
	// GetLatest returns the user's log with the most recent sleep date.
	GetLatest(ctx context.Context, userID uuid.UUID) (*domain.SleepLog, error)
}

type sleepLogService struct {
	repo repository.SleepLogRepository
}

func NewSleepLogService(repo repository.SleepLogRepository) SleepLogService {
	return &sleepLogService{repo: repo}
}

// Create runs validate, existence check and insert in that order. The
// existence check only gives a friendlier early answer; the store's unique
// constraint decides races and yields the same conflict error.
func (s *sleepLogService) Create(ctx context.Context, req *domain.CreateSleepLogRequest) (*domain.SleepLog, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "SleepLogService.Create")
	defer span.End()

	if err := validation.ValidateCreateSleepLog(req); err != nil {
		return nil, recordError(span, err)
	}
	span.SetAttributes(
		attribute.String("user.id", req.UserID.String()),
		attribute.String("sleep.date", req.SleepDate),
	)

	sleepDate, err := domain.ParseDate(req.SleepDate)
	if err != nil {
		return nil, recordError(span, domain.WrapError(domain.ErrInvalidArgument, err, "Sleep date must be a valid date (YYYY-MM-DD)"))
	}

	exists, err := s.repo.ExistsByUserAndDate(ctx, req.UserID, sleepDate)
	if err != nil {
		return nil, recordError(span, err)
	}
	if exists {
		return nil, recordError(span, domain.DuplicateSleepLogError(req.UserID, sleepDate))
	}

	bedTime := req.BedTime.UTC()
	wakeTime := req.WakeTime.UTC()
	total := domain.TotalTimeInBedMinutes(bedTime, wakeTime)
	if total < 1 {
		return nil, recordError(span, domain.NewError(domain.ErrInvalidArgument, "Time in bed must be at least one minute"))
	}

	log := &domain.SleepLog{
		UserID:                req.UserID,
		SleepDate:             sleepDate,
		BedTime:               bedTime,
		WakeTime:              wakeTime,
		TotalTimeInBedMinutes: total,
		Feeling:               req.Feeling,
	}
	if err := s.repo.Create(ctx, log); err != nil {
		return nil, recordError(span, err)
	}

	span.SetAttributes(attribute.Int("sleep.total_minutes", total))
	return log, nil
}

func (s *sleepLogService) GetLatest(ctx context.Context, userID uuid.UUID) (*domain.SleepLog, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "SleepLogService.GetLatest",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	log, err := s.repo.FindLatest(ctx, userID)
	if err != nil {
		return nil, recordError(span, err)
	}
	return log, nil
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, domain.MessageOf(err))
	return err
}
