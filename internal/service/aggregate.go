package service

import (
	"time"

	"github.com/blaisecz/sleep-journal/internal/domain"
	"gorm.io/datatypes"
)

// Aggregate folds the logs of one window into SleepStatistics. Bed and wake
// clock times are read in loc. An empty window yields a zero average, null
// clock times and zero feeling counts.
func Aggregate(from, to datatypes.Date, logs []domain.SleepLog, loc *time.Location) *domain.SleepStatistics {
	stats := &domain.SleepStatistics{
		DateRange: domain.DateRange{
			From: domain.FormatDate(from),
			To:   domain.FormatDate(to),
		},
		FeelingCounts: domain.EmptyFeelingCounts(),
	}
	if len(logs) == 0 {
		return stats
	}

	var totalMinutes int64
	bedTimes := make([]time.Time, 0, len(logs))
	wakeTimes := make([]time.Time, 0, len(logs))
	for _, l := range logs {
		totalMinutes += int64(l.TotalTimeInBedMinutes)
		bedTimes = append(bedTimes, l.BedTime)
		wakeTimes = append(wakeTimes, l.WakeTime)
		if l.Feeling.IsValid() {
			stats.FeelingCounts[l.Feeling]++
		}
	}

	stats.AverageTotalTimeInBedMinutes = float64(totalMinutes) / float64(len(logs))
	stats.AverageBedTime = averageClockTime(bedTimes, loc)
	stats.AverageWakeTime = averageClockTime(wakeTimes, loc)
	return stats
}

// averageClockTime takes the linear mean of the seconds-of-day of times in
// loc, truncating the division. Samples on both sides of midnight pull the
// mean towards noon (23:50 and 00:10 average to 12:00:00).
func averageClockTime(times []time.Time, loc *time.Location) *domain.ClockTime {
	if len(times) == 0 {
		return nil
	}

	var sum int64
	for _, t := range times {
		sum += int64(domain.ClockTimeOf(t, loc).SecondOfDay())
	}
	avg := domain.ClockTimeFromSeconds(sum / int64(len(times)))
	return &avg
}
