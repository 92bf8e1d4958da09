package handlers

import (
	"context"
	"io"
	"strings"

	"mockmate/internal/dto"
	"mockmate/internal/models"
	"mockmate/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// interviewFlow is the slice of the interview service the speech endpoints use.
type interviewFlow interface {
	GetQuestion(ctx context.Context, id uuid.UUID) (*models.InterviewQuestion, error)
	SubmitAnswer(ctx context.Context, questionID uuid.UUID, answerText string) (*models.AnswerEvaluation, error)
}

// speechConverter turns text into audio and audio into text.
type speechConverter interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
	Transcribe(ctx context.Context, audio []byte) string
}

type SpeechHandler struct {
	interviews interviewFlow
	speech     speechConverter
	storage    *service.StorageService
	logger     *zap.Logger
}

func NewSpeechHandler(
	interviews interviewFlow,
	speech speechConverter,
	storage *service.StorageService,
	logger *zap.Logger,
) *SpeechHandler {
	return &SpeechHandler{
		interviews: interviews,
		speech:     speech,
		storage:    storage,
		logger:     logger,
	}
}

// SubmitAudioAnswer godoc
// @Summary Submit a spoken answer
// @Description Transcribes uploaded WAV audio and evaluates it as the answer
// @Tags speech
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Question ID"
// @Param audio formData file true "WAV audio recording"
// @Success 200 {object} dto.TranscriptionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/interview/questions/{id}/answers/audio [post]
func (h *SpeechHandler) SubmitAudioAnswer(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	file, err := c.FormFile("audio")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Audio file is required",
		})
	}
	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open audio file",
		})
	}
	defer src.Close()

	audio, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read audio file",
		})
	}

	text := h.speech.Transcribe(c.Context(), audio)
	if strings.TrimSpace(text) == "" {
		return c.JSON(dto.TranscriptionResponse{
			Transcription: "",
			Evaluation: dto.AnswerFeedback{
				Score:    0,
				Feedback: "Could not understand the audio. Please try again or type your answer.",
				Suggestions: []string{
					"Speak clearly and at a moderate pace",
					"Reduce background noise",
					"Move closer to the microphone",
					"Check that your microphone is working",
					"Type your answer if the problem persists",
				},
				Error: true,
			},
		})
	}
	if len(strings.TrimSpace(text)) < 10 {
		return c.JSON(dto.TranscriptionResponse{
			Transcription: text,
			Evaluation: dto.AnswerFeedback{
				Score:    0,
				Feedback: "Answer too short. Please provide a more complete response.",
				Suggestions: []string{
					"Explain your reasoning in a few sentences",
					"Mention the key concepts the question asks about",
					"Give a concrete example",
				},
				Error: true,
			},
		})
	}

	// Storage failure does not block the answer flow.
	if _, err := h.storage.SaveAudio(audio); err != nil {
		h.logger.Warn("Failed to store answer audio", zap.Error(err))
	}

	evaluation, err := h.interviews.SubmitAnswer(c.Context(), id, text)
	if err != nil {
		return h.submitError(c, err)
	}
	return c.JSON(dto.TranscriptionResponse{
		Transcription: text,
		Evaluation:    dto.ToAnswerFeedback(id.String(), evaluation),
	})
}

// QuestionSpeech godoc
// @Summary Download a question as speech
// @Description Synthesizes the question text to WAV audio
// @Tags speech
// @Produce audio/wav
// @Param id path string true "Question ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string
// @Router /api/interview/questions/{id}/speech [get]
func (h *SpeechHandler) QuestionSpeech(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	question, err := h.interviews.GetQuestion(c.Context(), id)
	if err != nil {
		return h.submitError(c, err)
	}

	audio, err := h.speech.Synthesize(c.Context(), question.QuestionText)
	if err != nil {
		h.logger.Warn("Question synthesis failed", zap.Error(err))
		return c.JSON(fiber.Map{
			"error":         "Text-to-speech not available",
			"question_text": question.QuestionText,
		})
	}

	if _, err := h.storage.SaveAudio(audio); err != nil {
		h.logger.Error("Failed to store audio", zap.Error(err))
	}
	c.Set(fiber.HeaderContentType, "audio/wav")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="question_`+id.String()+`.wav"`)
	return c.Send(audio)
}

// FeedbackSpeech godoc
// @Summary Synthesize feedback text
// @Description Converts arbitrary feedback text to WAV audio
// @Tags speech
// @Accept json
// @Produce audio/wav
// @Param request body dto.FeedbackSpeechRequest true "Text to synthesize"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Router /api/interview/speech/feedback [post]
func (h *SpeechHandler) FeedbackSpeech(c *fiber.Ctx) error {
	var req dto.FeedbackSpeechRequest
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

	audio, err := h.speech.Synthesize(c.Context(), req.Text)
	if err != nil {
		h.logger.Warn("Feedback synthesis failed", zap.Error(err))
		return c.JSON(fiber.Map{
			"error": "Text-to-speech not available",
			"text":  req.Text,
		})
	}
	c.Set(fiber.HeaderContentType, "audio/wav")
	return c.Send(audio)
}

func (h *SpeechHandler) submitError(c *fiber.Ctx, err error) error {
	return interviewError(c, h.logger, err)
}
