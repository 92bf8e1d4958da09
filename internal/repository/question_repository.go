package repository

import (
	"context"
	"time"

	"mockmate/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type QuestionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewQuestionRepository(db *pgxpool.Pool, logger *zap.Logger) *QuestionRepository {
	return &QuestionRepository{
		db:     db,
		logger: logger,
	}
}

var questionColumns = []string{
	"id", "session_id", "question_text", "expected_answer",
	"user_answer", "score", "feedback", "asked_at", "answered_at",
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.InterviewQuestion) error {
	query := squirrel.Insert("interview_questions").
		Columns(questionColumns...).
		Values(question.ID, question.SessionID, question.QuestionText, question.ExpectedAnswer,
			question.UserAnswer, question.Score, question.Feedback, question.AskedAt, question.AnsweredAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *QuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.InterviewQuestion, error) {
	query := squirrel.Select(questionColumns...).
		From("interview_questions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var q models.InterviewQuestion
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&q.ID, &q.SessionID, &q.QuestionText, &q.ExpectedAnswer,
		&q.UserAnswer, &q.Score, &q.Feedback, &q.AskedAt, &q.AnsweredAt,
	)
	if err != nil {
		return nil, err
	}

	return &q, nil
}

// ListBySession returns a session's questions in the order they were asked.
func (r *QuestionRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*models.InterviewQuestion, error) {
	return r.list(ctx, squirrel.Eq{"session_id": sessionID})
}

// ListScoredBySession returns only the questions that already carry a score.
func (r *QuestionRepository) ListScoredBySession(ctx context.Context, sessionID uuid.UUID) ([]*models.InterviewQuestion, error) {
	return r.list(ctx, squirrel.And{
		squirrel.Eq{"session_id": sessionID},
		squirrel.NotEq{"score": nil},
	})
}

func (r *QuestionRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*models.InterviewQuestion, error) {
	query := squirrel.Select(questionColumns...).
		From("interview_questions").
		Where(where).
		OrderBy("asked_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []*models.InterviewQuestion
	for rows.Next() {
		var q models.InterviewQuestion
		if err := rows.Scan(
			&q.ID, &q.SessionID, &q.QuestionText, &q.ExpectedAnswer,
			&q.UserAnswer, &q.Score, &q.Feedback, &q.AskedAt, &q.AnsweredAt,
		); err != nil {
			return nil, err
		}
		questions = append(questions, &q)
	}

	return questions, rows.Err()
}

// RecordAnswer stores the candidate's answer together with its evaluation.
func (r *QuestionRepository) RecordAnswer(ctx context.Context, id uuid.UUID, answer string, score float64, feedback string, answeredAt time.Time) error {
	query := squirrel.Update("interview_questions").
		Set("user_answer", answer).
		Set("score", score).
		Set("feedback", feedback).
		Set("answered_at", answeredAt).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
