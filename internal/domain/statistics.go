package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// StatisticsWindowDays is the length of the rolling statistics window,
// inclusive of today.
const StatisticsWindowDays = 30

const secondsPerDay = 24 * 60 * 60

// ClockTime is a time of day with no date and no zone, stored as seconds
// since midnight in [0, 86400).
type ClockTime int

// NewClockTime builds a ClockTime from its components.
func NewClockTime(hour, minute, second int) ClockTime {
	return ClockTime(hour*3600 + minute*60 + second)
}

// ClockTimeOf projects an absolute timestamp onto the wall clock in loc.
func ClockTimeOf(t time.Time, loc *time.Location) ClockTime {
	h, m, s := t.In(loc).Clock()
	return NewClockTime(h, m, s)
}

// ClockTimeFromSeconds wraps a second-of-day value into [0, 86400).
func ClockTimeFromSeconds(seconds int64) ClockTime {
	seconds %= secondsPerDay
	if seconds < 0 {
		seconds += secondsPerDay
	}
	return ClockTime(seconds)
}

// SecondOfDay returns the number of seconds since midnight.
func (c ClockTime) SecondOfDay() int {
	return int(c)
}

func (c ClockTime) String() string {
	s := int(c)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s/60)%60, s%60)
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t, err := time.Parse("15:04:05", raw)
	if err != nil {
		return fmt.Errorf("invalid clock time %q: %w", raw, err)
	}
	*c = NewClockTime(t.Clock())
	return nil
}

// DateRange is an inclusive pair of calendar dates.
// @Description Inclusive date range the statistics were computed over.
type DateRange struct {
	From string `json:"from" example:"2024-02-10"`
	To   string `json:"to" example:"2024-03-10"`
}

// SleepStatistics summarises a user's sleep over the rolling window.
// @Description Sleep statistics over the last 30 days.
type SleepStatistics struct {
	DateRange DateRange `json:"dateRange"`
	// Mean time in bed; 0 when the window is empty
	AverageTotalTimeInBedMinutes float64 `json:"averageTotalTimeInBedMinutes" example:"420"`
	// Mean bed clock-time (HH:MM:SS); null when the window is empty
	AverageBedTime *ClockTime `json:"averageBedTime" swaggertype:"string" example:"22:30:00"`
	// Mean wake clock-time (HH:MM:SS); null when the window is empty
	AverageWakeTime *ClockTime `json:"averageWakeTime" swaggertype:"string" example:"06:45:00"`
	// Count per feeling; every variant is always present
	FeelingCounts map[Feeling]int `json:"feelingCounts"`
}

// EmptyFeelingCounts returns a tally with every variant set to zero.
func EmptyFeelingCounts() map[Feeling]int {
	counts := make(map[Feeling]int, len(Feelings()))
	for _, f := range Feelings() {
		counts[f] = 0
	}
	return counts
}
