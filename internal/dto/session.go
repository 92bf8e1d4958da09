package dto

import (
	"time"

	"mockmate/internal/models"
)

type CreateSessionRequest struct {
	Domain          string `json:"domain" validate:"required"`
	Difficulty      string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,min=5,max=180"`
}

type SessionResponse struct {
	ID              string     `json:"id"`
	Domain          string     `json:"domain"`
	Difficulty      string     `json:"difficulty"`
	DurationMinutes int        `json:"duration_minutes"`
	Status          string     `json:"status"`
	Score           *float64   `json:"score,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

func ToSessionResponse(s *models.InterviewSession) SessionResponse {
	return SessionResponse{
		ID:              s.ID.String(),
		Domain:          s.Domain,
		Difficulty:      s.Difficulty,
		DurationMinutes: s.DurationMinutes,
		Status:          s.Status,
		Score:           s.Score,
		CreatedAt:       s.CreatedAt,
		CompletedAt:     s.CompletedAt,
	}
}

type CompleteSessionResponse struct {
	Message    string   `json:"message"`
	FinalScore *float64 `json:"final_score,omitempty"`
}
