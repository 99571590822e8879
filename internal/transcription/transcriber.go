package transcription

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrNotConfigured = errors.New("transcriber not configured")

// Transcriber turns an audio file on disk into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

type Config struct {
	Backend       string // whisper | gateway | mock
	OpenAIKey     string
	OpenAIBaseURL string
	WhisperModel  string
	GatewayURL    string
}

// New selects a backend. An empty backend means mock.
func New(cfg Config) (Transcriber, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", "mock":
		return Mock{}, nil
	case "whisper":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("whisper: OPENAI_API_KEY not set: %w", ErrNotConfigured)
		}
		return NewWhisper(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.WhisperModel), nil
	case "gateway":
		if cfg.GatewayURL == "" {
			return nil, fmt.Errorf("gateway: TRANSCRIBE_URL not set: %w", ErrNotConfigured)
		}
		return NewGateway(cfg.GatewayURL), nil
	default:
		return nil, fmt.Errorf("unknown transcriber backend %q", cfg.Backend)
	}
}
