package service

import (
	"context"

	"mockmate/internal/models"

	"go.uber.org/zap"
)

// Generator produces a free-text completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// LLMService turns domain/difficulty/answer inputs into structured question
// and evaluation records. Both entry points are total: any backend failure or
// unusable reply resolves through the fallback tables, never an error.
type LLMService struct {
	generator Generator
	rag       *RAGService
	logger    *zap.Logger
}

func NewLLMService(generator Generator, rag *RAGService, logger *zap.Logger) *LLMService {
	return &LLMService{
		generator: generator,
		rag:       rag,
		logger:    logger,
	}
}

// callModel invokes the generation backend, mapping any transport error to
// the unavailable sentinel so the parsers only ever see text.
func (s *LLMService) callModel(ctx context.Context, prompt string) string {
	response, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("Model backend unavailable, using fallback responses", zap.Error(err))
		return responseUnavailable
	}
	return response
}

// GenerateQuestion composes a context-enriched prompt, asks the model and
// parses the reply. Falls back to the canned question table when the model is
// down or its reply has no usable question text.
func (s *LLMService) GenerateQuestion(ctx context.Context, domain, difficulty, priorContext string) *models.GeneratedQuestion {
	prompt := s.rag.QuestionPrompt(domain, difficulty, priorContext)
	parsed := parseQuestionResponse(s.callModel(ctx, prompt))
	if parsed == nil || parsed.QuestionText == "" {
		s.logger.Info("Using fallback question",
			zap.String("domain", domain),
			zap.String("difficulty", difficulty),
		)
		return fallbackQuestion(domain, difficulty)
	}
	return parsed
}

// EvaluateAnswer grades an answer against its question with domain context.
func (s *LLMService) EvaluateAnswer(ctx context.Context, question, answer, domain string) *models.AnswerEvaluation {
	prompt := s.rag.EvaluationPrompt(question, answer, domain)
	return parseEvaluationResponse(s.callModel(ctx, prompt), question, answer, domain)
}

// ListTopics exposes topic introspection through the facade.
func (s *LLMService) ListTopics(domain string) []string {
	return s.rag.ListTopics(domain)
}
