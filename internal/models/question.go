package models

import (
	"time"

	"github.com/google/uuid"
)

type InterviewQuestion struct {
	ID             uuid.UUID  `db:"id"`
	SessionID      uuid.UUID  `db:"session_id"`
	QuestionText   string     `db:"question_text"`
	ExpectedAnswer string     `db:"expected_answer"`
	UserAnswer     *string    `db:"user_answer"`
	Score          *float64   `db:"score"`
	Feedback       *string    `db:"feedback"`
	AskedAt        time.Time  `db:"asked_at"`
	AnsweredAt     *time.Time `db:"answered_at"`
}

// Answered reports whether the candidate has already responded to the question.
func (q *InterviewQuestion) Answered() bool {
	return q.UserAnswer != nil
}
