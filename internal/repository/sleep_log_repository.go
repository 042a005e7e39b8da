package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

type SleepLogRepository interface {
	Create(ctx context.Context, log *domain.SleepLog) error
	ExistsByUserAndDate(ctx context.Context, userID uuid.UUID, date datatypes.Date) (bool, error)
	FindLatest(ctx context.Context, userID uuid.UUID) (*domain.SleepLog, error)
	FindInRange(ctx context.Context, userID uuid.UUID, from, to datatypes.Date) ([]domain.SleepLog, error)
}

type sleepLogRepository struct {
	db *gorm.DB
}

func NewSleepLogRepository(db *gorm.DB) SleepLogRepository {
	return &sleepLogRepository{db: db}
}

// Create inserts the log, filling in ID and CreatedAt. A unique violation on
// (user_id, sleep_date) is reported as ErrConflict.
func (r *sleepLogRepository) Create(ctx context.Context, log *domain.SleepLog) error {
	err := r.db.WithContext(ctx).Create(log).Error
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return domain.DuplicateSleepLogError(log.UserID, log.SleepDate)
	}
	return domain.WrapError(domain.ErrStorage, err, "failed to insert sleep log")
}

func (r *sleepLogRepository) ExistsByUserAndDate(ctx context.Context, userID uuid.UUID, date datatypes.Date) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.SleepLog{}).
		Where("user_id = ? AND sleep_date = ?", userID, date).
		Count(&count).Error
	if err != nil {
		return false, domain.WrapError(domain.ErrStorage, err, "failed to check sleep log existence")
	}
	return count > 0, nil
}

// FindLatest returns the log with the greatest sleep_date, breaking ties by
// created_at and then id.
func (r *sleepLogRepository) FindLatest(ctx context.Context, userID uuid.UUID) (*domain.SleepLog, error) {
	var log domain.SleepLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sleep_date DESC").
		Order("created_at DESC").
		Order("id DESC").
		Take(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewError(domain.ErrNotFound, "no sleep log found for user %s", userID)
		}
		return nil, domain.WrapError(domain.ErrStorage, err, "failed to load latest sleep log")
	}
	return &log, nil
}

// FindInRange returns the user's logs with from <= sleep_date <= to.
func (r *sleepLogRepository) FindInRange(ctx context.Context, userID uuid.UUID, from, to datatypes.Date) ([]domain.SleepLog, error) {
	var logs []domain.SleepLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("sleep_date BETWEEN ? AND ?", from, to).
		Order("sleep_date ASC").
		Find(&logs).Error
	if err != nil {
		return nil, domain.WrapError(domain.ErrStorage, err, "failed to load sleep logs")
	}
	return logs, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
