package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Feeling is the user's subjective rating of a night.
// @Description How the user felt after waking up.
type Feeling string

const (
	FeelingBad  Feeling = "BAD"
	FeelingOK   Feeling = "OK"
	FeelingGood Feeling = "GOOD"
)

// Feelings returns every feeling variant in declaration order.
func Feelings() []Feeling {
	return []Feeling{FeelingBad, FeelingOK, FeelingGood}
}

// IsValid reports whether f is one of the declared variants.
func (f Feeling) IsValid() bool {
	switch f {
	case FeelingBad, FeelingOK, FeelingGood:
		return true
	}
	return false
}

// SleepLog is one night's entry for one user. At most one exists per
// (user_id, sleep_date).
type SleepLog struct {
	ID                    int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID                uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uk_sleep_logs_user_date,priority:1" json:"user_id"`
	SleepDate             datatypes.Date `gorm:"not null;uniqueIndex:uk_sleep_logs_user_date,priority:2" json:"sleep_date"`
	BedTime               time.Time      `gorm:"not null" json:"bed_time"`
	WakeTime              time.Time      `gorm:"not null" json:"wake_time"`
	TotalTimeInBedMinutes int            `gorm:"not null" json:"total_time_in_bed_minutes"`
	Feeling               Feeling        `gorm:"type:varchar(10);not null" json:"feeling"`
	CreatedAt             time.Time      `gorm:"autoCreateTime;<-:create" json:"created_at"`
}

func (SleepLog) TableName() string {
	return "sleep_logs"
}

// TotalTimeInBedMinutes returns the whole minutes between bed and wake,
// truncating any remaining seconds.
func TotalTimeInBedMinutes(bedTime, wakeTime time.Time) int {
	return int(wakeTime.Sub(bedTime) / time.Minute)
}

// CreateSleepLogRequest is the request body for creating a sleep log.
// @Description Request payload for recording one night of sleep.
type CreateSleepLogRequest struct {
	// Taken from the X-User-ID header, never from the body
	UserID uuid.UUID `json:"-" validate:"required" swaggerignore:"true"`
	// Calendar date the night is labeled with
	SleepDate string `json:"sleepDate" validate:"required,datetime=2006-01-02" example:"2024-03-10"`
	// Time the user went to bed (RFC3339)
	BedTime time.Time `json:"bedTime" validate:"required" example:"2024-03-09T22:00:00Z"`
	// Time the user woke up (RFC3339, must be after bedTime)
	WakeTime time.Time `json:"wakeTime" validate:"required,gtfield=BedTime" example:"2024-03-10T06:30:00Z"`
	// How the user felt in the morning
	Feeling Feeling `json:"feeling" validate:"required,oneof=BAD OK GOOD" example:"GOOD" enums:"BAD,OK,GOOD"`
}

// SleepLogResponse is the response body for sleep log endpoints.
// @Description Stored sleep log.
type SleepLogResponse struct {
	SleepDate             string    `json:"sleepDate" example:"2024-03-10"`
	BedTime               time.Time `json:"bedTime" example:"2024-03-09T22:00:00Z"`
	WakeTime              time.Time `json:"wakeTime" example:"2024-03-10T06:30:00Z"`
	TotalTimeInBedMinutes int       `json:"totalTimeInBedMinutes" example:"510"`
	Feeling               Feeling   `json:"feeling" example:"GOOD"`
}

func (s *SleepLog) ToResponse() SleepLogResponse {
	return SleepLogResponse{
		SleepDate:             FormatDate(s.SleepDate),
		BedTime:               s.BedTime.UTC(),
		WakeTime:              s.WakeTime.UTC(),
		TotalTimeInBedMinutes: s.TotalTimeInBedMinutes,
		Feeling:               s.Feeling,
	}
}
