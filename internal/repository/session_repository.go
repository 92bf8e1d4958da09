package repository

import (
	"context"

	"mockmate/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type SessionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSessionRepository(db *pgxpool.Pool, logger *zap.Logger) *SessionRepository {
	return &SessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SessionRepository) Create(ctx context.Context, session *models.InterviewSession) error {
	query := squirrel.Insert("interview_sessions").
		Columns("id", "domain", "difficulty", "duration_minutes", "status", "score", "created_at", "completed_at").
		Values(session.ID, session.Domain, session.Difficulty, session.DurationMinutes,
			session.Status, session.Score, session.CreatedAt, session.CompletedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.InterviewSession, error) {
	query := squirrel.Select("id", "domain", "difficulty", "duration_minutes", "status", "score", "created_at", "completed_at").
		From("interview_sessions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var session models.InterviewSession
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&session.ID, &session.Domain, &session.Difficulty, &session.DurationMinutes,
		&session.Status, &session.Score, &session.CreatedAt, &session.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	return &session, nil
}

func (r *SessionRepository) Update(ctx context.Context, session *models.InterviewSession) error {
	query := squirrel.Update("interview_sessions").
		Set("status", session.Status).
		Set("score", session.Score).
		Set("completed_at", session.CompletedAt).
		Where(squirrel.Eq{"id": session.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
