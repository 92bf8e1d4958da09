package dto

type FeedbackSpeechRequest struct {
	Text string `json:"text" validate:"required"`
}

type TranscriptionResponse struct {
	Transcription string         `json:"transcription"`
	Evaluation    AnswerFeedback `json:"evaluation"`
}
