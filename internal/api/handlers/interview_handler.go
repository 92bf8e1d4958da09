package handlers

import (
	"errors"

	"mockmate/internal/dto"
	"mockmate/internal/models"
	"mockmate/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionExpiredMessage = "Interview time has expired. Redirecting to results."

type InterviewHandler struct {
	interviews *service.InterviewService
	llm        *service.LLMService
	logger     *zap.Logger
}

func NewInterviewHandler(interviews *service.InterviewService, llm *service.LLMService, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{
		interviews: interviews,
		llm:        llm,
		logger:     logger,
	}
}

func parseID(c *fiber.Ctx, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid " + param,
		})
		return uuid.Nil, false
	}
	return id, true
}

// ListDomains godoc
// @Summary List interview domains
// @Description Returns the interview domains available for practice
// @Tags interview
// @Produce json
// @Success 200 {object} dto.DomainsResponse
// @Router /api/interview/domains [get]
func (h *InterviewHandler) ListDomains(c *fiber.Ctx) error {
	resp := dto.DomainsResponse{}
	labels := models.DomainLabels()
	for i, d := range models.Domains() {
		resp.Domains = append(resp.Domains, dto.DomainInfo{
			ID:    d,
			Label: labels[i],
		})
	}
	return c.JSON(resp)
}

// ListTopics godoc
// @Summary List topics for a domain
// @Description Returns the knowledge base topic names for a domain
// @Tags interview
// @Produce json
// @Param domain path string true "Interview domain"
// @Success 200 {object} dto.TopicsResponse
// @Router /api/interview/domains/{domain}/topics [get]
func (h *InterviewHandler) ListTopics(c *fiber.Ctx) error {
	domain := models.NormalizeDomain(c.Params("domain"))
	return c.JSON(dto.TopicsResponse{
		Domain: domain,
		Label:  models.DomainLabel(domain),
		Topics: h.llm.ListTopics(domain),
	})
}

// CreateSession godoc
// @Summary Start an interview session
// @Description Creates a new interview session for a domain and difficulty
// @Tags interview
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest true "Session parameters"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} map[string]string
// @Router /api/interview/sessions [post]
func (h *InterviewHandler) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if errs := dto.Validate(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": errs,
		})
	}

	session, err := h.interviews.CreateSession(c.Context(), req.Domain, req.Difficulty, req.DurationMinutes)
	if err != nil {
		h.logger.Error("Failed to create session", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create session",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSessionResponse(session))
}

// GetSession godoc
// @Summary Get a session
// @Tags interview
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} map[string]string
// @Router /api/interview/sessions/{id} [get]
func (h *InterviewHandler) GetSession(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	session, err := h.interviews.GetSession(c.Context(), id)
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(dto.ToSessionResponse(session))
}

// CompleteSession godoc
// @Summary Complete a session
// @Description Finishes the session and computes the final score
// @Tags interview
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.CompleteSessionResponse
// @Failure 404 {object} map[string]string
// @Router /api/interview/sessions/{id}/complete [post]
func (h *InterviewHandler) CompleteSession(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	session, err := h.interviews.CompleteSession(c.Context(), id)
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(dto.CompleteSessionResponse{
		Message:    "Session completed",
		FinalScore: session.Score,
	})
}

// ListQuestions godoc
// @Summary List session questions
// @Tags interview
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {array} dto.QuestionResponse
// @Failure 404 {object} map[string]string
// @Router /api/interview/sessions/{id}/questions [get]
func (h *InterviewHandler) ListQuestions(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	questions, err := h.interviews.SessionQuestions(c.Context(), id)
	if err != nil {
		return h.sessionError(c, err)
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		resp = append(resp, dto.ToQuestionResponse(q, ""))
	}
	return c.JSON(resp)
}

// NextQuestion godoc
// @Summary Get the next interview question
// @Description Generates or resumes the next question for the session
// @Tags interview
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.QuestionRequest false "Prior conversation context"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /api/interview/sessions/{id}/questions [post]
func (h *InterviewHandler) NextQuestion(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	var req dto.QuestionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	question, questionType, err := h.interviews.NextQuestion(c.Context(), id, req.Context)
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(dto.ToQuestionResponse(question, questionType))
}

// SubmitAnswer godoc
// @Summary Submit an answer
// @Description Evaluates the answer and records it on the question
// @Tags interview
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param request body dto.AnswerSubmission true "Answer text"
// @Success 200 {object} dto.AnswerFeedback
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /api/interview/questions/{id}/answers [post]
func (h *InterviewHandler) SubmitAnswer(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	var req dto.AnswerSubmission
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if errs := dto.Validate(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": errs,
		})
	}

	evaluation, err := h.interviews.SubmitAnswer(c.Context(), id, req.AnswerText)
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(dto.ToAnswerFeedback(id.String(), evaluation))
}

func (h *InterviewHandler) sessionError(c *fiber.Ctx, err error) error {
	return interviewError(c, h.logger, err)
}

func interviewError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	switch {
	case errors.Is(err, service.ErrSessionExpired):
		return c.Status(fiber.StatusGone).JSON(fiber.Map{
			"error": sessionExpiredMessage,
		})
	case errors.Is(err, service.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	case errors.Is(err, service.ErrQuestionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Question not found",
		})
	default:
		logger.Error("Interview request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
