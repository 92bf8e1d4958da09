package service

import (
	"fmt"
	"sort"
	"strings"

	"mockmate/internal/models"

	"go.uber.org/zap"
)

// RAGService ranks knowledge-base sections against free-text queries and
// composes the two prompt kinds sent to the generation backend.
type RAGService struct {
	knowledge *KnowledgeService
	logger    *zap.Logger
}

func NewRAGService(knowledge *KnowledgeService, logger *zap.Logger) *RAGService {
	return &RAGService{
		knowledge: knowledge,
		logger:    logger,
	}
}

// RelevantContext returns the bodies of the top-limit sections of a domain,
// ranked by how many distinct query tokens each body contains. Two special
// cases: an unknown domain yields a single generic context line, and a query
// mentioning "topics" yields the domain's section names (unbounded) for
// list-topics style prompts.
func (s *RAGService) RelevantContext(query, domain string, limit int) []string {
	sections, ok := s.knowledge.Sections(domain)
	if !ok {
		return []string{"General " + domain + " interview topics"}
	}

	if strings.Contains(strings.ToLower(query), "topics") {
		names := make([]string, 0, len(sections))
		for _, sec := range sections {
			names = append(names, sec.Name)
		}
		return names
	}

	tokens := queryTokens(query)

	type scoredSection struct {
		score int
		body  string
	}
	var scored []scoredSection
	for _, sec := range sections {
		body := strings.ToLower(sec.Body)
		score := 0
		for _, tok := range tokens {
			if strings.Contains(body, tok) {
				score++
			}
		}
		if score > 0 {
			scored = append(scored, scoredSection{score: score, body: sec.Body})
		}
	}

	// Stable sort keeps document order among equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	bodies := make([]string, 0, len(scored))
	for _, sc := range scored {
		bodies = append(bodies, sc.body)
	}
	return bodies
}

// ListTopics returns the section names for a domain, or a single generic
// entry when the domain has no topic document.
func (s *RAGService) ListTopics(domain string) []string {
	sections, ok := s.knowledge.Sections(domain)
	if !ok {
		return []string{"General " + domain + " interview topics"}
	}
	topics := make([]string, 0, len(sections))
	for _, sec := range sections {
		if sec.Name != "" {
			topics = append(topics, sec.Name)
		}
	}
	return topics
}

// KnowledgeBase exposes the underlying knowledge base for introspection.
func (s *RAGService) KnowledgeBase() map[string][]models.Section {
	return s.knowledge.KnowledgeBase()
}

// queryTokens lowercases and whitespace-splits a query, deduplicating tokens
// so a repeated word cannot inflate a section's score.
func queryTokens(query string) []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, tok := range strings.Fields(strings.ToLower(query)) {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}
	return tokens
}

const firstQuestionContext = "This is the first question"

const questionPromptTemplate = `You are an expert interviewer for %s positions.
Generate a %s level interview question based on the following context.
Ensure that the question is specific, practical, and relevant to current industry practices and also doesn't require code execution.

RELEVANT TOPICS AND CONTEXT:
%s

Domain: %s
Difficulty: %s
Previous context: %s

Based on the relevant topics above, create a specific, practical question that:
1. Tests both theoretical knowledge and practical application
2. Is appropriate for the %s difficulty level
3. Draws from the specific topics mentioned in the context
4. Is engaging and relevant to current industry practices

Format your response as:
Question: [Your specific question here]
Type: [technical/behavioral/coding]
Expected_concepts: [key concepts from the context that the answer should cover]
Difficulty_justification: [why this is %s level]
`

const evaluationPromptTemplate = `You are an EXTREMELY STRICT technical interviewer for %s. Your reputation depends on maintaining the highest standards. You must be ruthless in your evaluation and never give undeserved scores.

DOMAIN CONTEXT:
%s

Question: %s
Answer: %s

**CRITICAL EVALUATION RULES:**

**FIRST: RELEVANCE CHECK**
- Does the answer actually address the question asked? If not, score 0-1 immediately.
- Is the answer in the correct domain (%s)? If not, score 0-1 immediately.
- Is the answer coherent and understandable? If it's gibberish, nonsense, or unrelated rambling, score 0-1 immediately.

**STRICT SCORING RUBRIC (BE RUTHLESS):**

**0-1: IMMEDIATE FAIL** - Gibberish, random characters, or nonsensical text
**2-3: FUNDAMENTALLY WRONG** - Major factual errors
**4-5: SEVERELY INADEQUATE** - On-topic but superficial
**6-7: BELOW EXPECTATIONS** - Covers basics but lacks detail
**8-9: MEETS EXPECTATIONS** - Accurate, well-structured
**10: EXCEPTIONAL** - Comprehensive and insightful

**FORMAT YOUR RESPONSE:**
Score: [0-10]
Relevance_Check: [Pass/Fail - explain why]
Content_Quality: [Assessment of technical accuracy and depth]
Missing_Elements: [Key concepts not addressed]
Improvement_Suggestions: [Specific, actionable advice]

**Remember: Your job is to maintain standards, not to be kind. Be merciless with poor answers.**
`

// QuestionPrompt builds the question-generation prompt. An empty prior
// context means this is the session's first question.
func (s *RAGService) QuestionPrompt(domain, difficulty, priorContext string) string {
	query := domain + " " + difficulty + " interview question topics"
	contextText := strings.Join(s.RelevantContext(query, domain, 3), "\n")
	if priorContext == "" {
		priorContext = firstQuestionContext
	}
	return fmt.Sprintf(questionPromptTemplate,
		domain, difficulty, contextText, domain, difficulty, priorContext,
		difficulty, difficulty)
}

// EvaluationPrompt builds the strict-grading prompt for an answer, using the
// question itself as the retrieval query.
func (s *RAGService) EvaluationPrompt(question, answer, domain string) string {
	contextText := strings.Join(s.RelevantContext(question, domain, 2), "\n")
	return fmt.Sprintf(evaluationPromptTemplate,
		domain, contextText, question, answer, domain)
}
