package service

import (
	"context"
	"errors"
	"testing"

	"mockmate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.response, g.err
}

func testLLMService(gen Generator) *LLMService {
	return NewLLMService(gen, testRAGService(), zap.NewNop())
}

func TestGenerateQuestion_ParsesModelReply(t *testing.T) {
	gen := &stubGenerator{response: "Question: How do B-trees differ from hash indexes?\nType: technical\nExpected_concepts: indexing, trade-offs"}
	svc := testLLMService(gen)

	got := svc.GenerateQuestion(context.Background(), models.DomainSoftwareEngineering, "medium", "")
	require.NotNil(t, got)
	assert.Equal(t, "How do B-trees differ from hash indexes?", got.QuestionText)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "expert interviewer for software_engineering positions")
}

func TestGenerateQuestion_BackendErrorFallsBack(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	svc := testLLMService(gen)

	got := svc.GenerateQuestion(context.Background(), models.DomainSoftwareEngineering, "easy", "")
	require.NotNil(t, got)
	assert.Equal(t,
		"What is the difference between a class and an object in object-oriented programming?",
		got.QuestionText)
}

func TestGenerateQuestion_EmptyReplyFallsBack(t *testing.T) {
	gen := &stubGenerator{response: "ok"}
	svc := testLLMService(gen)

	got := svc.GenerateQuestion(context.Background(), models.DomainAIML, "medium", "")
	require.NotNil(t, got)
	assert.Equal(t, "Explain the concept of backpropagation in neural networks.", got.QuestionText)
}

func TestEvaluateAnswer_ParsesModelReply(t *testing.T) {
	gen := &stubGenerator{response: "Score: 9\nRelevance_Check: Pass - thorough"}
	svc := testLLMService(gen)

	got := svc.EvaluateAnswer(context.Background(), "Explain sorting", "A detailed answer with enough words", models.DomainSoftwareEngineering)
	require.NotNil(t, got)
	assert.Equal(t, 9.0, got.Score)
	assert.Equal(t, "Relevance: Pass - thorough", got.Feedback)
}

func TestEvaluateAnswer_BackendErrorFallsBack(t *testing.T) {
	gen := &stubGenerator{err: errors.New("timeout")}
	svc := testLLMService(gen)

	answer := "Quicksort partitions around a pivot and recurses, giving O(n log n) average complexity."
	got := svc.EvaluateAnswer(context.Background(), "Explain quicksort", answer, models.DomainSoftwareEngineering)
	want := fallbackEvaluation("Explain quicksort", answer, models.DomainSoftwareEngineering)

	require.NotNil(t, got)
	assert.Equal(t, want.Score, got.Score)
	assert.Equal(t, want.Feedback, got.Feedback)
	assert.Equal(t, want.Suggestions, got.Suggestions)
}

func TestListTopics_Passthrough(t *testing.T) {
	svc := testLLMService(&stubGenerator{})
	assert.Equal(t, []string{"Data Structures", "Algorithms", "System Design"},
		svc.ListTopics(models.DomainSoftwareEngineering))
}
