package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MemorySleepLogRepository keeps sleep logs in process memory. It enforces
// the same (user_id, sleep_date) uniqueness as the Postgres schema and is
// meant for local development and tests.
type MemorySleepLogRepository struct {
	mu     sync.Mutex
	logs   []domain.SleepLog
	nextID int64
	now    func() time.Time
}

var _ SleepLogRepository = (*MemorySleepLogRepository)(nil)

// NewMemorySleepLogRepository creates an empty in-memory repository.
func NewMemorySleepLogRepository() *MemorySleepLogRepository {
	return &MemorySleepLogRepository{now: time.Now}
}

func (m *MemorySleepLogRepository) Create(ctx context.Context, log *domain.SleepLog) error {
	if err := ctx.Err(); err != nil {
		return domain.WrapError(domain.ErrStorage, err, "failed to insert sleep log")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.logs {
		if existing.UserID == log.UserID && domain.SameDate(existing.SleepDate, log.SleepDate) {
			return domain.DuplicateSleepLogError(log.UserID, log.SleepDate)
		}
	}

	m.nextID++
	log.ID = m.nextID
	log.CreatedAt = m.now().UTC()
	m.logs = append(m.logs, *log)
	return nil
}

func (m *MemorySleepLogRepository) ExistsByUserAndDate(ctx context.Context, userID uuid.UUID, date datatypes.Date) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, l := range m.logs {
		if l.UserID == userID && domain.SameDate(l.SleepDate, date) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemorySleepLogRepository) FindLatest(ctx context.Context, userID uuid.UUID) (*domain.SleepLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var latest *domain.SleepLog
	for i := range m.logs {
		l := &m.logs[i]
		if l.UserID != userID {
			continue
		}
		if latest == nil || newer(l, latest) {
			latest = l
		}
	}
	if latest == nil {
		return nil, domain.NewError(domain.ErrNotFound, "no sleep log found for user %s", userID)
	}
	found := *latest
	return &found, nil
}

func (m *MemorySleepLogRepository) FindInRange(ctx context.Context, userID uuid.UUID, from, to datatypes.Date) ([]domain.SleepLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []domain.SleepLog
	for _, l := range m.logs {
		if l.UserID != userID {
			continue
		}
		if domain.DateBefore(l.SleepDate, from) || domain.DateBefore(to, l.SleepDate) {
			continue
		}
		result = append(result, l)
	}
	sort.Slice(result, func(i, j int) bool {
		return domain.DateBefore(result[i].SleepDate, result[j].SleepDate)
	})
	return result, nil
}

// Truncate removes every stored log.
func (m *MemorySleepLogRepository) Truncate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = nil
}

// newer orders logs by sleep_date, then created_at, then id.
func newer(a, b *domain.SleepLog) bool {
	if !domain.SameDate(a.SleepDate, b.SleepDate) {
		return domain.DateBefore(b.SleepDate, a.SleepDate)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
