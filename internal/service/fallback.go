package service

import (
	"fmt"
	"math"
	"strings"

	"mockmate/internal/models"
)

const genericFallbackQuestion = "Tell me about your experience and approach to solving problems in this field."

// Canned questions served when the model backend is down or unparsable.
// Keyed by canonical domain identifier; callers normalize at the boundary.
var fallbackQuestions = map[string]map[string]string{
	models.DomainSoftwareEngineering: {
		"easy":   "What is the difference between a class and an object in object-oriented programming?",
		"medium": "Explain the SOLID principles and provide an example of each.",
		"hard":   "Design a scalable microservices architecture for an e-commerce platform.",
	},
	models.DomainDataScience: {
		"easy":   "What is the difference between supervised and unsupervised learning?",
		"medium": "Explain bias-variance tradeoff and how to handle it.",
		"hard":   "Design an A/B testing framework for a recommendation system.",
	},
	models.DomainAIML: {
		"easy":   "What is the difference between artificial intelligence and machine learning?",
		"medium": "Explain the concept of backpropagation in neural networks.",
		"hard":   "How would you implement a transformer model from scratch?",
	},
	models.DomainHardwareECE: {
		"easy":   "Explain Ohm's law and its applications.",
		"medium": "What is the difference between analog and digital signals?",
		"hard":   "Design a low-power microcontroller system for IoT applications.",
	},
	models.DomainRobotics: {
		"easy":   "What are the main components of a robotic system?",
		"medium": "Explain PID control and its use in robotics.",
		"hard":   "How would you implement SLAM for an autonomous robot?",
	},
}

// fallbackQuestion returns the canned question for a domain/difficulty pair,
// or a generic prompt when either is unknown.
func fallbackQuestion(domain, difficulty string) *models.GeneratedQuestion {
	text := genericFallbackQuestion
	if byDifficulty, ok := fallbackQuestions[domain]; ok {
		if q, ok := byDifficulty[difficulty]; ok {
			text = q
		}
	}
	return &models.GeneratedQuestion{
		QuestionText:     text,
		QuestionType:     "technical",
		ExpectedConcepts: []string{"Domain knowledge", "Problem solving"},
	}
}

// lengthBasedEvaluation grades purely on answer length when the model's reply
// carried no usable score or feedback. Score is words/8 clamped to [4, 9].
func lengthBasedEvaluation(answer, domain string) *models.AnswerEvaluation {
	wordCount := len(strings.Fields(answer))
	score := math.Min(9, math.Max(4, float64(wordCount)/8.0))

	var feedback string
	var suggestions []string
	switch {
	case wordCount < 15:
		feedback = "Your answer demonstrates understanding but could benefit from more detailed explanations and specific examples."
		suggestions = []string{
			"Provide more detailed explanations",
			"Include specific examples",
			"Discuss relevant technical approaches",
		}
	case wordCount > 100:
		feedback = "You provided a very comprehensive answer with excellent detail."
		suggestions = []string{
			"Consider organizing with clear structure",
			"Focus on critical aspects first",
			"Practice concise summaries",
		}
	default:
		feedback = "Solid answer that demonstrates good understanding."
		suggestions = []string{
			"Include more technical terminology specific to " + domain,
			"Provide concrete examples",
			"Consider discussing trade-offs",
		}
	}

	return &models.AnswerEvaluation{
		Score:       score,
		Feedback:    feedback,
		Suggestions: suggestions,
	}
}

// fallbackEvaluation grades an answer offline: a word-count band sets the
// base score and a per-domain keyword scan adds a capped boost.
func fallbackEvaluation(_, answer, domain string) *models.AnswerEvaluation {
	wordCount := len(strings.Fields(answer))
	var score float64
	var feedback string
	switch {
	case wordCount < 5:
		score = 2.0
		feedback = "Your answer is too brief. Technical interviews require detailed explanations."
	case wordCount < 15:
		score = 4.0
		feedback = "Your answer covers some basics but needs more detail."
	case wordCount < 40:
		score = 6.5
		feedback = "Good answer with reasonable detail. Consider adding specific examples."
	case wordCount < 80:
		score = 7.5
		feedback = "Well-structured answer with good detail."
	default:
		score = 8.0
		feedback = "Comprehensive answer with excellent detail."
	}

	lowered := strings.ToLower(answer)
	matches := 0
	for _, keyword := range domainKeywords(domain) {
		if strings.Contains(lowered, strings.ToLower(keyword)) {
			matches++
		}
	}
	if matches > 0 {
		boost := math.Min(1.5, float64(matches)*0.3)
		score = math.Min(9.5, score+boost)
		plural := ""
		if matches > 1 {
			plural = "s"
		}
		feedback += fmt.Sprintf(" Great use of %d relevant technical term%s.", matches, plural)
	}

	return &models.AnswerEvaluation{
		Score:       score,
		Feedback:    feedback,
		Suggestions: domainSuggestions(domain),
	}
}

func domainKeywords(domain string) []string {
	switch domain {
	case models.DomainSoftwareEngineering:
		return []string{
			"algorithm", "complexity", "scalability", "design pattern", "OOP", "SOLID",
			"database", "API", "REST", "microservices", "testing", "debugging", "optimization",
			"data structure", "array", "linked list", "tree", "graph", "hash", "performance",
		}
	case models.DomainDataScience:
		return []string{
			"statistics", "probability", "regression", "classification", "clustering", "model",
			"feature", "dataset", "correlation", "variance", "bias", "validation", "cross-validation",
			"pandas", "numpy", "matplotlib", "sklearn", "analysis", "hypothesis", "p-value",
		}
	case models.DomainAIML:
		return []string{
			"neural network", "deep learning", "gradient", "backpropagation", "overfitting",
			"regularization", "CNN", "RNN", "transformer", "attention", "training", "inference",
			"supervised", "unsupervised", "reinforcement", "algorithm", "optimization", "loss function",
		}
	case models.DomainHardwareECE:
		return []string{
			"circuit", "voltage", "current", "resistance", "capacitor", "inductor", "transistor",
			"amplifier", "digital", "analog", "microcontroller", "FPGA", "PCB", "signal", "power",
		}
	case models.DomainRobotics:
		return []string{
			"sensor", "actuator", "control", "PID", "kinematics", "dynamics", "path planning",
			"localization", "mapping", "SLAM", "computer vision", "feedback", "servo", "motor",
		}
	default:
		return nil
	}
}

func domainSuggestions(domain string) []string {
	switch domain {
	case models.DomainSoftwareEngineering:
		return []string{
			"Discuss time and space complexity when relevant",
			"Consider scalability and maintainability",
			"Include specific design patterns or principles",
		}
	case models.DomainDataScience:
		return []string{
			"Mention relevant statistical concepts",
			"Discuss data preprocessing and validation",
			"Consider model evaluation metrics",
		}
	case models.DomainAIML:
		return []string{
			"Explain the mathematical intuition behind algorithms",
			"Discuss model architecture choices",
			"Consider training and inference optimization",
		}
	case models.DomainHardwareECE:
		return []string{
			"Include circuit analysis or component specifications",
			"Discuss power consumption and efficiency",
			"Consider real-world constraints and tolerances",
		}
	case models.DomainRobotics:
		return []string{
			"Discuss sensor fusion and perception",
			"Consider real-time constraints",
			"Include control theory concepts when relevant",
		}
	default:
		return []string{
			"Provide more specific technical details",
			"Include examples from real-world applications",
			"Structure your answer clearly",
		}
	}
}
