package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"mockmate/internal/dto"
	"mockmate/internal/models"
	"mockmate/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubInterviewFlow struct {
	question  *models.InterviewQuestion
	submitted []string
}

func (s *stubInterviewFlow) GetQuestion(_ context.Context, _ uuid.UUID) (*models.InterviewQuestion, error) {
	return s.question, nil
}

func (s *stubInterviewFlow) SubmitAnswer(_ context.Context, _ uuid.UUID, answerText string) (*models.AnswerEvaluation, error) {
	s.submitted = append(s.submitted, answerText)
	return &models.AnswerEvaluation{
		Score:       7.0,
		Feedback:    "Good answer with reasonable detail.",
		Suggestions: []string{"Provide concrete examples"},
	}, nil
}

type stubSpeechConverter struct {
	audio    []byte
	synthErr error
	text     string
}

func (s *stubSpeechConverter) Synthesize(_ context.Context, _ string) ([]byte, error) {
	return s.audio, s.synthErr
}

func (s *stubSpeechConverter) Transcribe(_ context.Context, _ []byte) string {
	return s.text
}

func speechTestApp(t *testing.T, flow *stubInterviewFlow, speech *stubSpeechConverter) (*fiber.App, string) {
	t.Helper()

	audioDir := filepath.Join(t.TempDir(), "audio")
	storage, err := service.NewStorageService(audioDir)
	require.NoError(t, err)

	handler := NewSpeechHandler(flow, speech, storage, zap.NewNop())
	app := fiber.New()
	app.Post("/api/interview/questions/:id/answers/audio", handler.SubmitAudioAnswer)
	app.Get("/api/interview/questions/:id/speech", handler.QuestionSpeech)
	return app, audioDir
}

func newAudioRequest(t *testing.T, payload []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("audio", "answer.wav")
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func wavFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*.wav"))
	require.NoError(t, err)
	return matches
}

func TestSubmitAudioAnswer_StoresRecording(t *testing.T) {
	flow := &stubInterviewFlow{}
	app, audioDir := speechTestApp(t, flow, &stubSpeechConverter{
		text: "Quicksort partitions around a pivot and recurses.",
	})

	payload := []byte("RIFF-fake-wav-bytes")
	body, contentType := newAudioRequest(t, payload)
	id := uuid.New()
	req := httptest.NewRequest("POST", "/api/interview/questions/"+id.String()+"/answers/audio", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.TranscriptionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Quicksort partitions around a pivot and recurses.", out.Transcription)
	assert.Equal(t, 7.0, out.Evaluation.Score)
	require.Len(t, flow.submitted, 1)

	// The recording lands on disk once the guards pass.
	files := wavFiles(t, audioDir)
	require.Len(t, files, 1)
	stored, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Equal(t, payload, stored)
}

func TestSubmitAudioAnswer_EmptyTranscription(t *testing.T) {
	flow := &stubInterviewFlow{}
	app, audioDir := speechTestApp(t, flow, &stubSpeechConverter{text: ""})

	body, contentType := newAudioRequest(t, []byte("noise"))
	req := httptest.NewRequest("POST", "/api/interview/questions/"+uuid.NewString()+"/answers/audio", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out dto.TranscriptionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Evaluation.Error)
	assert.Len(t, out.Evaluation.Suggestions, 5)
	assert.Empty(t, flow.submitted)
	// Rejected audio is not stored.
	assert.Empty(t, wavFiles(t, audioDir))
}

func TestSubmitAudioAnswer_TooShort(t *testing.T) {
	flow := &stubInterviewFlow{}
	app, audioDir := speechTestApp(t, flow, &stubSpeechConverter{text: "yes"})

	body, contentType := newAudioRequest(t, []byte("noise"))
	req := httptest.NewRequest("POST", "/api/interview/questions/"+uuid.NewString()+"/answers/audio", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out dto.TranscriptionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "yes", out.Transcription)
	assert.True(t, out.Evaluation.Error)
	assert.Contains(t, out.Evaluation.Feedback, "Answer too short")
	assert.Len(t, out.Evaluation.Suggestions, 3)
	assert.Empty(t, flow.submitted)
	assert.Empty(t, wavFiles(t, audioDir))
}

func TestQuestionSpeech_DeterministicFilename(t *testing.T) {
	id := uuid.New()
	flow := &stubInterviewFlow{question: &models.InterviewQuestion{
		ID:           id,
		QuestionText: "Explain PID control.",
	}}
	app, audioDir := speechTestApp(t, flow, &stubSpeechConverter{audio: []byte("RIFF-tts")})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/interview/questions/"+id.String()+"/speech", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "audio/wav", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="question_`+id.String()+`.wav"`,
		resp.Header.Get(fiber.HeaderContentDisposition))

	// Synthesized audio is also kept on disk.
	assert.Len(t, wavFiles(t, audioDir), 1)
}

func TestQuestionSpeech_SynthesisUnavailable(t *testing.T) {
	id := uuid.New()
	flow := &stubInterviewFlow{question: &models.InterviewQuestion{
		ID:           id,
		QuestionText: "Explain PID control.",
	}}
	app, audioDir := speechTestApp(t, flow, &stubSpeechConverter{synthErr: errors.New("not configured")})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/interview/questions/"+id.String()+"/speech", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Text-to-speech not available", out["error"])
	assert.Equal(t, "Explain PID control.", out["question_text"])
	assert.Empty(t, wavFiles(t, audioDir))
}
