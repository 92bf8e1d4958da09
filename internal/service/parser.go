package service

import (
	"regexp"
	"strconv"
	"strings"

	"mockmate/internal/models"
)

// Sentinel replies from the model backend. Either one means the call failed
// entirely and the caller must fall back.
const (
	responseUnavailable = "Ollama not available"
	responseError       = "Error generating response"
)

var (
	scorePattern      = regexp.MustCompile(`\d+(?:\.\d+)?`)
	bulletPattern     = regexp.MustCompile(`^[-*\x{2022}]\s`)
	numberedPattern   = regexp.MustCompile(`^\d+[.)].`)
	listMarkerPattern = regexp.MustCompile(`^[-*\x{2022}\d.)]+\s*`)
	wordPattern       = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)
)

func modelUnavailable(response string) bool {
	return response == responseUnavailable || response == responseError
}

var questionPrefixes = []string{"Question:", "Q:", "Interview Question:", "Technical Question:"}

// parseQuestionResponse extracts a question record from the model's labeled
// reply. Returns nil on a sentinel response; an empty QuestionText on the
// returned record means neither the labeled lines nor the whole-text recovery
// produced a usable question.
func parseQuestionResponse(response string) *models.GeneratedQuestion {
	if modelUnavailable(response) {
		return nil
	}

	result := &models.GeneratedQuestion{
		QuestionType:     "technical",
		ExpectedConcepts: []string{"Domain knowledge", "Problem solving"},
	}

	for _, line := range strings.Split(response, "\n") {
		switch {
		case strings.HasPrefix(line, "Question:"):
			result.QuestionText = strings.TrimSpace(strings.TrimPrefix(line, "Question:"))
		case strings.HasPrefix(line, "Type:"):
			result.QuestionType = strings.TrimSpace(strings.TrimPrefix(line, "Type:"))
		case strings.HasPrefix(line, "Expected_concepts:"):
			concepts := strings.TrimSpace(strings.TrimPrefix(line, "Expected_concepts:"))
			result.ExpectedConcepts = strings.Split(concepts, ",")
		}
	}

	// Recovery path: models sometimes reply with the bare question instead of
	// the labeled format.
	if result.QuestionText == "" {
		clean := strings.TrimSpace(response)
		if len(clean) > 10 {
			for _, prefix := range questionPrefixes {
				if strings.HasPrefix(clean, prefix) {
					clean = strings.TrimSpace(strings.TrimPrefix(clean, prefix))
				}
			}
			if len(clean) > 10 {
				result.QuestionText = clean
			}
		}
	}

	return result
}

// evalSection tags which labeled block of the evaluation reply the line
// scanner is currently inside.
type evalSection int

const (
	sectionNone evalSection = iota
	sectionScore
	sectionRelevance
	sectionContent
	sectionMissing
	sectionSuggestions
)

// parseEvaluationResponse scans the model's grading reply as a small state
// machine over line prefixes. It is total: sentinel responses and unusable
// replies are resolved through the fallback evaluators, never errors.
func parseEvaluationResponse(response, question, answer, domain string) *models.AnswerEvaluation {
	if modelUnavailable(response) {
		return fallbackEvaluation(question, answer, domain)
	}

	var (
		score         float64
		feedbackParts []string
		suggestions   []string
		current       = sectionNone
	)

	appendToLast := func(line string) {
		if len(feedbackParts) > 0 {
			feedbackParts[len(feedbackParts)-1] += " " + line
		}
	}

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "Score:"):
			current = sectionScore
			if m := scorePattern.FindString(strings.TrimPrefix(line, "Score:")); m != "" {
				score, _ = strconv.ParseFloat(m, 64)
			}
		case strings.HasPrefix(line, "Relevance_Check:"):
			current = sectionRelevance
			feedbackParts = append(feedbackParts,
				"Relevance: "+strings.TrimSpace(strings.TrimPrefix(line, "Relevance_Check:")))
		case strings.HasPrefix(line, "Content_Quality:"):
			current = sectionContent
			feedbackParts = append(feedbackParts,
				"Content Quality: "+strings.TrimSpace(strings.TrimPrefix(line, "Content_Quality:")))
		case strings.HasPrefix(line, "Missing_Elements:"):
			current = sectionMissing
			feedbackParts = append(feedbackParts,
				"Missing Elements: "+strings.TrimSpace(strings.TrimPrefix(line, "Missing_Elements:")))
		case strings.HasPrefix(line, "Improvement_Suggestions:"):
			current = sectionSuggestions
			if content := strings.TrimSpace(strings.TrimPrefix(line, "Improvement_Suggestions:")); content != "" {
				suggestions = append(suggestions, content)
			}
		case current == sectionSuggestions:
			if bulletPattern.MatchString(line) || numberedPattern.MatchString(line) {
				suggestions = append(suggestions,
					strings.TrimSpace(listMarkerPattern.ReplaceAllString(line, "")))
			} else {
				suggestions = append(suggestions, line)
			}
		case current == sectionRelevance, current == sectionContent, current == sectionMissing:
			appendToLast(line)
		}
	}

	feedback := strings.Join(feedbackParts, "\n\n")

	if feedback == "" && score == 0 {
		if gibberish(answer) {
			return &models.AnswerEvaluation{
				Score:    1.0,
				Feedback: "Your response appears to be gibberish or random characters. Please provide a coherent answer.",
				Suggestions: []string{
					"Read the question carefully",
					"Provide a structured response with clear explanations",
					"Use proper technical terminology",
					"Include specific examples",
				},
			}
		}
		return lengthBasedEvaluation(answer, domain)
	}

	if len(suggestions) == 0 {
		suggestions = domainSuggestions(domain)
	}

	return &models.AnswerEvaluation{
		Score:       score,
		Feedback:    feedback,
		Suggestions: suggestions,
	}
}

// gibberish flags answers whose ratio of word-like tokens (alphabetic runs of
// three or more letters) to whitespace tokens falls below 0.3, or that are
// shorter than five characters.
func gibberish(answer string) bool {
	words := len(wordPattern.FindAllString(answer, -1))
	tokens := len(strings.Fields(answer))
	if tokens < 1 {
		tokens = 1
	}
	ratio := float64(words) / float64(tokens)
	return ratio < 0.3 || len(strings.TrimSpace(answer)) < 5
}
