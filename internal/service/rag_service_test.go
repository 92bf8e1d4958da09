package service

import (
	"strings"
	"testing"

	"mockmate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testRAGService() *RAGService {
	kb := map[string][]models.Section{
		models.DomainSoftwareEngineering: {
			{Name: "Data Structures", Body: "Domain: software_engineering\nSection: Data Structures\narrays linked lists hash tables trees"},
			{Name: "Algorithms", Body: "Domain: software_engineering\nSection: Algorithms\nsorting searching complexity trees graphs"},
			{Name: "System Design", Body: "Domain: software_engineering\nSection: System Design\nscaling caching load balancing"},
		},
	}
	return NewRAGService(NewKnowledgeServiceFromSections(kb, zap.NewNop()), zap.NewNop())
}

func TestRelevantContext_RanksByDistinctTokens(t *testing.T) {
	rag := testRAGService()

	// "trees" appears in two sections; "sorting complexity" only in Algorithms.
	got := rag.RelevantContext("sorting complexity trees", models.DomainSoftwareEngineering, 2)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "Algorithms")
	assert.Contains(t, got[1], "Data Structures")
}

func TestRelevantContext_RepeatedTokenCountsOnce(t *testing.T) {
	rag := testRAGService()

	// Repeating "trees" must not outrank the section matching two distinct tokens.
	got := rag.RelevantContext("sorting complexity trees trees trees", models.DomainSoftwareEngineering, 1)
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "Algorithms")
}

func TestRelevantContext_StableOrderOnTies(t *testing.T) {
	rag := testRAGService()

	// "trees" matches both Data Structures and Algorithms equally; document
	// order breaks the tie.
	got := rag.RelevantContext("trees", models.DomainSoftwareEngineering, 3)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "Data Structures")
	assert.Contains(t, got[1], "Algorithms")
}

func TestRelevantContext_NoMatches(t *testing.T) {
	rag := testRAGService()
	got := rag.RelevantContext("quantum entanglement", models.DomainSoftwareEngineering, 3)
	assert.Empty(t, got)

	// An empty query scores nothing; the generic fallback is reserved for
	// unknown domains.
	assert.Empty(t, rag.RelevantContext("", models.DomainSoftwareEngineering, 3))
}

func TestKnowledgeBase(t *testing.T) {
	rag := testRAGService()
	kb := rag.KnowledgeBase()
	require.Contains(t, kb, models.DomainSoftwareEngineering)
	assert.Len(t, kb[models.DomainSoftwareEngineering], 3)
}

func TestRelevantContext_TopicsQueryReturnsAllNames(t *testing.T) {
	rag := testRAGService()

	got := rag.RelevantContext("list the Topics please", models.DomainSoftwareEngineering, 1)
	// Ignores the limit and returns names, not bodies.
	assert.Equal(t, []string{"Data Structures", "Algorithms", "System Design"}, got)
}

func TestRelevantContext_UnknownDomain(t *testing.T) {
	rag := testRAGService()
	got := rag.RelevantContext("anything", "underwater_basketry", 3)
	assert.Equal(t, []string{"General underwater_basketry interview topics"}, got)
}

func TestListTopics(t *testing.T) {
	rag := testRAGService()
	assert.Equal(t, []string{"Data Structures", "Algorithms", "System Design"},
		rag.ListTopics(models.DomainSoftwareEngineering))
	assert.Equal(t, []string{"General robotics interview topics"},
		rag.ListTopics(models.DomainRobotics))
}

func TestQuestionPrompt(t *testing.T) {
	rag := testRAGService()

	prompt := rag.QuestionPrompt(models.DomainSoftwareEngineering, "medium", "")
	assert.Contains(t, prompt, "expert interviewer for software_engineering positions")
	assert.Contains(t, prompt, "Generate a medium level interview question")
	assert.Contains(t, prompt, "Previous context: This is the first question")
	// The retrieval query mentions "topics", so the context is the topic list.
	assert.Contains(t, prompt, "Data Structures\nAlgorithms\nSystem Design")

	withPrior := rag.QuestionPrompt(models.DomainSoftwareEngineering, "medium", "Q1 was about trees")
	assert.Contains(t, withPrior, "Previous context: Q1 was about trees")
	assert.NotContains(t, withPrior, firstQuestionContext)
}

func TestEvaluationPrompt(t *testing.T) {
	rag := testRAGService()

	prompt := rag.EvaluationPrompt("Explain sorting complexity", "Quicksort is O(n log n) on average.", models.DomainSoftwareEngineering)
	assert.Contains(t, prompt, "EXTREMELY STRICT technical interviewer for software_engineering")
	assert.Contains(t, prompt, "Question: Explain sorting complexity")
	assert.Contains(t, prompt, "Answer: Quicksort is O(n log n) on average.")
	assert.Contains(t, prompt, "Score: [0-10]")
	// Question text drives retrieval; at most two sections are included.
	count := strings.Count(prompt, "Section: ")
	assert.LessOrEqual(t, count, 2)
	assert.Greater(t, count, 0)
}
