package dto

import (
	"time"

	"mockmate/internal/models"
)

type QuestionRequest struct {
	Context string `json:"context"`
}

type QuestionResponse struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"session_id"`
	QuestionText string    `json:"question_text"`
	QuestionType string    `json:"question_type,omitempty"`
	UserAnswer   *string   `json:"user_answer,omitempty"`
	Score        *float64  `json:"score,omitempty"`
	Feedback     *string   `json:"feedback,omitempty"`
	AskedAt      time.Time `json:"asked_at"`
}

func ToQuestionResponse(q *models.InterviewQuestion, questionType string) QuestionResponse {
	return QuestionResponse{
		ID:           q.ID.String(),
		SessionID:    q.SessionID.String(),
		QuestionText: q.QuestionText,
		QuestionType: questionType,
		UserAnswer:   q.UserAnswer,
		Score:        q.Score,
		Feedback:     q.Feedback,
		AskedAt:      q.AskedAt,
	}
}

type AnswerSubmission struct {
	AnswerText string `json:"answer_text" validate:"required"`
}

type AnswerFeedback struct {
	QuestionID  string   `json:"question_id,omitempty"`
	Score       float64  `json:"score"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
	Error       bool     `json:"error,omitempty"`
}

func ToAnswerFeedback(questionID string, e *models.AnswerEvaluation) AnswerFeedback {
	return AnswerFeedback{
		QuestionID:  questionID,
		Score:       e.Score,
		Feedback:    e.Feedback,
		Suggestions: e.Suggestions,
	}
}
