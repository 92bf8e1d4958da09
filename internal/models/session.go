package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"

	DefaultDifficulty      = "medium"
	DefaultDurationMinutes = 45
)

type InterviewSession struct {
	ID              uuid.UUID  `db:"id"`
	Domain          string     `db:"domain"`
	Difficulty      string     `db:"difficulty"`
	DurationMinutes int        `db:"duration_minutes"`
	Status          string     `db:"status"`
	Score           *float64   `db:"score"`
	CreatedAt       time.Time  `db:"created_at"`
	CompletedAt     *time.Time `db:"completed_at"`
}

// ExpiresAt is the moment the interview clock runs out.
func (s *InterviewSession) ExpiresAt() time.Time {
	return s.CreatedAt.Add(time.Duration(s.DurationMinutes) * time.Minute)
}

func (s *InterviewSession) Expired(now time.Time) bool {
	return s.ExpiresAt().Before(now)
}
