package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// sttUnavailableText is returned as the transcription when speech services
// are not configured or Azure cannot be reached, so the caller can prompt
// the candidate to type instead.
const sttUnavailableText = "Speech recognition not available. Please type your answer."

// SpeechService talks to the Azure Cognitive Services speech REST endpoints.
// With no subscription key configured it degrades gracefully: Synthesize
// returns an error and Transcribe returns a fixed fallback text.
type SpeechService struct {
	key      string
	region   string
	voice    string
	language string
	client   *http.Client
	logger   *zap.Logger
}

func NewSpeechService(key, region, voice, language string, logger *zap.Logger) *SpeechService {
	return &SpeechService{
		key:      key,
		region:   region,
		voice:    voice,
		language: language,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
	}
}

func (s *SpeechService) Available() bool {
	return s.key != "" && s.region != ""
}

// Synthesize converts text to RIFF 24kHz 16-bit mono PCM audio.
func (s *SpeechService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if !s.Available() {
		return nil, fmt.Errorf("speech service is not configured")
	}

	ssml := fmt.Sprintf(
		`<speak version='1.0' xml:lang='%s'><voice name='%s'>%s</voice></speak>`,
		s.language, s.voice, html.EscapeString(text),
	)
	url := fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/v1", s.region)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBufferString(ssml))
	if err != nil {
		return nil, fmt.Errorf("failed to create TTS request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", s.key)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", "riff-24khz-16bit-mono-pcm")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send TTS request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read TTS response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TTS API error: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

type recognitionResponse struct {
	RecognitionStatus string `json:"RecognitionStatus"`
	DisplayText       string `json:"DisplayText"`
}

// Transcribe converts WAV audio to text. Any failure yields the fallback
// prompt rather than an error so the interview flow is never blocked.
func (s *SpeechService) Transcribe(ctx context.Context, audio []byte) string {
	if !s.Available() {
		return sttUnavailableText
	}

	url := fmt.Sprintf(
		"https://%s.stt.speech.microsoft.com/speech/recognition/conversation/cognitiveservices/v1?language=%s",
		s.region, s.language,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(audio))
	if err != nil {
		s.logger.Warn("Failed to create STT request", zap.Error(err))
		return sttUnavailableText
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", s.key)
	req.Header.Set("Content-Type", "audio/wav")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("STT request failed", zap.Error(err))
		return sttUnavailableText
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		s.logger.Warn("STT API error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return sttUnavailableText
	}

	var rec recognitionResponse
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		s.logger.Warn("Failed to decode STT response", zap.Error(err))
		return sttUnavailableText
	}
	if rec.RecognitionStatus != "Success" {
		s.logger.Warn("STT recognition failed", zap.String("status", rec.RecognitionStatus))
		return ""
	}
	return rec.DisplayText
}
