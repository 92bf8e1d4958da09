package service

import (
	"strings"
	"testing"

	"mockmate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackQuestion(t *testing.T) {
	got := fallbackQuestion(models.DomainSoftwareEngineering, "medium")
	require.NotNil(t, got)
	assert.Equal(t, "Explain the SOLID principles and provide an example of each.", got.QuestionText)
	assert.Equal(t, "technical", got.QuestionType)
	assert.Equal(t, []string{"Domain knowledge", "Problem solving"}, got.ExpectedConcepts)

	assert.Equal(t, "How would you implement SLAM for an autonomous robot?",
		fallbackQuestion(models.DomainRobotics, "hard").QuestionText)
}

func TestFallbackQuestion_UnknownInputs(t *testing.T) {
	assert.Equal(t, genericFallbackQuestion, fallbackQuestion("basket_weaving", "medium").QuestionText)
	assert.Equal(t, genericFallbackQuestion, fallbackQuestion(models.DomainAIML, "impossible").QuestionText)
}

func TestLengthBasedEvaluation_Bands(t *testing.T) {
	short := lengthBasedEvaluation("only four words here", models.DomainSoftwareEngineering)
	assert.Equal(t, 4.0, short.Score)
	assert.Contains(t, short.Feedback, "could benefit from more detailed explanations")

	mid := lengthBasedEvaluation(strings.Repeat("word ", 40), models.DomainSoftwareEngineering)
	assert.Equal(t, 5.0, mid.Score)
	assert.Equal(t, "Solid answer that demonstrates good understanding.", mid.Feedback)
	assert.Contains(t, mid.Suggestions[0], models.DomainSoftwareEngineering)

	long := lengthBasedEvaluation(strings.Repeat("word ", 120), models.DomainSoftwareEngineering)
	assert.Equal(t, 9.0, long.Score)
	assert.Contains(t, long.Feedback, "comprehensive answer")
}

func TestFallbackEvaluation_Bands(t *testing.T) {
	cases := []struct {
		words int
		score float64
	}{
		{3, 2.0},
		{10, 4.0},
		{30, 6.5},
		{60, 7.5},
		{100, 8.0},
	}
	for _, tc := range cases {
		answer := strings.TrimSpace(strings.Repeat("zzzz ", tc.words))
		got := fallbackEvaluation("q", answer, models.DomainSoftwareEngineering)
		assert.Equal(t, tc.score, got.Score, "words=%d", tc.words)
	}
}

func TestFallbackEvaluation_KeywordBoost(t *testing.T) {
	plain := strings.TrimSpace(strings.Repeat("zzzz ", 30))
	base := fallbackEvaluation("q", plain, models.DomainSoftwareEngineering)

	// Two keywords add 0.6 and a pluralized acknowledgement.
	boosted := fallbackEvaluation("q",
		plain+" the algorithm improves scalability",
		models.DomainSoftwareEngineering)
	assert.Equal(t, base.Score+0.6, boosted.Score)
	assert.Contains(t, boosted.Feedback, "Great use of 2 relevant technical terms.")

	single := fallbackEvaluation("q", plain+" the algorithm", models.DomainSoftwareEngineering)
	assert.Contains(t, single.Feedback, "Great use of 1 relevant technical term.")
	assert.NotContains(t, single.Feedback, "terms")
}

func TestFallbackEvaluation_BoostCaps(t *testing.T) {
	// Many keywords still add at most 1.5 and never push past 9.5.
	loaded := "algorithm complexity scalability database API REST microservices testing debugging optimization " +
		strings.Repeat("zzzz ", 100)
	got := fallbackEvaluation("q", loaded, models.DomainSoftwareEngineering)
	assert.Equal(t, 9.5, got.Score)
}

func TestFallbackEvaluation_Suggestions(t *testing.T) {
	got := fallbackEvaluation("q", "short answer", models.DomainRobotics)
	assert.Equal(t, domainSuggestions(models.DomainRobotics), got.Suggestions)

	unknown := fallbackEvaluation("q", "short answer", "basket_weaving")
	assert.Equal(t, domainSuggestions("basket_weaving"), unknown.Suggestions)
	assert.Contains(t, unknown.Suggestions, "Provide more specific technical details")
}
