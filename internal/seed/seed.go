package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/blaisecz/sleep-journal/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const seededDays = 40

// Users are the demo accounts that receive sample data.
var Users = []uuid.UUID{
	uuid.MustParse("11111111-1111-1111-1111-111111111111"),
	uuid.MustParse("22222222-2222-2222-2222-222222222222"),
	uuid.MustParse("33333333-3333-3333-3333-333333333333"),
}

// Run creates sample sleep logs for the demo users through the write
// service. Dates that already have a log are skipped, so it is safe to call
// multiple times. It returns the number of logs created.
func Run(ctx context.Context, svc service.SleepLogService, now time.Time, loc *time.Location, logger *zap.Logger) (int, error) {
	rng := rand.New(rand.NewSource(now.UnixNano()))
	today := time.Time(domain.DateOf(now, loc))

	created := 0
	for _, userID := range Users {
		for i := 1; i <= seededDays; i++ {
			req := sampleNight(userID, today.AddDate(0, 0, -i), loc, rng)
			if _, err := svc.Create(ctx, req); err != nil {
				if errors.Is(err, domain.ErrConflict) {
					continue
				}
				return created, fmt.Errorf("failed to seed sleep log for user %s on %s: %w", userID, req.SleepDate, err)
			}
			created++
		}
		logger.Info("seeded sleep logs", zap.String("user_id", userID.String()))
	}

	logger.Info("seed completed", zap.Int("created", created))
	return created, nil
}

// sampleNight builds a night ending on date: bed between 21:30 and 00:29,
// six to nine hours in bed.
func sampleNight(userID uuid.UUID, date time.Time, loc *time.Location, rng *rand.Rand) *domain.CreateSleepLogRequest {
	y, m, d := date.Date()
	bed := time.Date(y, m, d-1, 21, 30, 0, 0, loc).Add(time.Duration(rng.Intn(180)) * time.Minute)
	wake := bed.Add(6*time.Hour + time.Duration(rng.Intn(180))*time.Minute)
	feelings := domain.Feelings()

	return &domain.CreateSleepLogRequest{
		UserID:    userID,
		SleepDate: date.Format(domain.DateLayout),
		BedTime:   bed,
		WakeTime:  wake,
		Feeling:   feelings[rng.Intn(len(feelings))],
	}
}
