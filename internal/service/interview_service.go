package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"mockmate/internal/models"
	"mockmate/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrSessionExpired   = errors.New("interview time has expired")
)

// nextQuestionMarker is the context phrase the UI sends when the candidate
// explicitly advances; without it a repeated request reuses the pending
// unanswered question instead of generating a duplicate.
const nextQuestionMarker = "Moving to next question"

// InterviewService orchestrates sessions and questions around the generation
// facade: persistence, session expiry and duplicate-request handling.
type InterviewService struct {
	sessions  *repository.SessionRepository
	questions *repository.QuestionRepository
	llm       *LLMService
	logger    *zap.Logger
}

func NewInterviewService(
	sessions *repository.SessionRepository,
	questions *repository.QuestionRepository,
	llm *LLMService,
	logger *zap.Logger,
) *InterviewService {
	return &InterviewService{
		sessions:  sessions,
		questions: questions,
		llm:       llm,
		logger:    logger,
	}
}

func (s *InterviewService) CreateSession(ctx context.Context, domain, difficulty string, durationMinutes int) (*models.InterviewSession, error) {
	if difficulty == "" {
		difficulty = models.DefaultDifficulty
	}
	if durationMinutes <= 0 {
		durationMinutes = models.DefaultDurationMinutes
	}

	domain = models.NormalizeDomain(domain)
	if !models.KnownDomain(domain) {
		s.logger.Warn("Unknown domain, generic fallback content will be used",
			zap.String("domain", domain))
	}

	session := &models.InterviewSession{
		ID:              uuid.New(),
		Domain:          domain,
		Difficulty:      difficulty,
		DurationMinutes: durationMinutes,
		Status:          models.SessionStatusActive,
		CreatedAt:       time.Now(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("Session created",
		zap.String("session_id", session.ID.String()),
		zap.String("domain", session.Domain),
		zap.String("difficulty", session.Difficulty),
	)
	return session, nil
}

func (s *InterviewService) GetSession(ctx context.Context, id uuid.UUID) (*models.InterviewSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return session, nil
}

// CompleteSession marks a session completed and sets its final score to the
// average of all scored questions, rounded to two decimals.
func (s *InterviewService) CompleteSession(ctx context.Context, id uuid.UUID) (*models.InterviewSession, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	scored, err := s.questions.ListScoredBySession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load scored questions: %w", err)
	}
	if len(scored) > 0 {
		var total float64
		for _, q := range scored {
			total += *q.Score
		}
		avg := math.Round(total/float64(len(scored))*100) / 100
		session.Score = &avg
	}

	now := time.Now()
	session.Status = models.SessionStatusCompleted
	session.CompletedAt = &now
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}

	s.logger.Info("Session completed", zap.String("session_id", id.String()))
	return session, nil
}

func (s *InterviewService) SessionQuestions(ctx context.Context, sessionID uuid.UUID) ([]*models.InterviewQuestion, error) {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.questions.ListBySession(ctx, sessionID)
}

func (s *InterviewService) GetQuestion(ctx context.Context, id uuid.UUID) (*models.InterviewQuestion, error) {
	question, err := s.questions.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load question: %w", err)
	}
	return question, nil
}

// ensureActive auto-completes an expired session and reports the expiry.
func (s *InterviewService) ensureActive(ctx context.Context, session *models.InterviewSession) error {
	if !session.Expired(time.Now()) {
		return nil
	}
	if session.Status != models.SessionStatusCompleted {
		if _, err := s.CompleteSession(ctx, session.ID); err != nil {
			s.logger.Error("Failed to auto-complete expired session",
				zap.String("session_id", session.ID.String()),
				zap.Error(err),
			)
		}
	}
	return ErrSessionExpired
}

// NextQuestion returns the question the candidate should see next. An empty
// prior context returns the session's first question if one already exists; a
// non-empty context without the explicit advance marker reuses any pending
// unanswered question. Otherwise a new question is generated and persisted.
// The returned string is the question type for the response payload.
func (s *InterviewService) NextQuestion(ctx context.Context, sessionID uuid.UUID, priorContext string) (*models.InterviewQuestion, string, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}
	if err := s.ensureActive(ctx, session); err != nil {
		return nil, "", err
	}

	existing, err := s.questions.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load questions: %w", err)
	}

	if strings.TrimSpace(priorContext) == "" {
		if len(existing) > 0 {
			s.logger.Info("Returning existing first question",
				zap.String("question_id", existing[0].ID.String()))
			return existing[0], "technical", nil
		}
	} else if !strings.Contains(priorContext, nextQuestionMarker) {
		// Possible duplicate call: hand back the pending question if any.
		for _, q := range existing {
			if !q.Answered() {
				s.logger.Info("Returning existing unanswered question",
					zap.String("question_id", q.ID.String()))
				return q, "technical", nil
			}
		}
	}

	generated := s.llm.GenerateQuestion(ctx, session.Domain, session.Difficulty, priorContext)
	question := &models.InterviewQuestion{
		ID:             uuid.New(),
		SessionID:      sessionID,
		QuestionText:   sanitizeUTF8(generated.QuestionText),
		ExpectedAnswer: strings.Join(generated.ExpectedConcepts, ", "),
		AskedAt:        time.Now(),
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, "", fmt.Errorf("failed to save question: %w", err)
	}

	s.logger.Info("Question generated",
		zap.String("session_id", sessionID.String()),
		zap.String("question_id", question.ID.String()),
	)
	return question, generated.QuestionType, nil
}

// SubmitAnswer evaluates an answer, persists the result on the question and
// returns the evaluation.
func (s *InterviewService) SubmitAnswer(ctx context.Context, questionID uuid.UUID, answerText string) (*models.AnswerEvaluation, error) {
	question, err := s.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	session, err := s.GetSession(ctx, question.SessionID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureActive(ctx, session); err != nil {
		return nil, err
	}

	evaluation := s.llm.EvaluateAnswer(ctx, question.QuestionText, answerText, session.Domain)

	if err := s.questions.RecordAnswer(ctx, questionID, answerText,
		evaluation.Score, sanitizeUTF8(evaluation.Feedback), time.Now()); err != nil {
		return nil, fmt.Errorf("failed to record answer: %w", err)
	}

	return evaluation, nil
}
