package models

// Section is a heading-delimited excerpt of a domain's topic document. Body
// carries a "Domain: ...\nSection: ..." header so the text stays
// self-describing when it is interpolated into a prompt.
type Section struct {
	Name string
	Body string
}

// GeneratedQuestion is the structured form of a model's question reply.
type GeneratedQuestion struct {
	QuestionText     string   `json:"question_text"`
	QuestionType     string   `json:"question_type"`
	ExpectedConcepts []string `json:"expected_concepts"`
}

// AnswerEvaluation is the structured form of a model's grading reply.
type AnswerEvaluation struct {
	Score       float64  `json:"score"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}
