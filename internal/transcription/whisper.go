package transcription

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Whisper calls an OpenAI-compatible /audio/transcriptions endpoint.
type Whisper struct {
	cli   *openai.Client
	model string
}

func NewWhisper(apiKey, baseURL, model string) *Whisper {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	if model == "" {
		model = openai.Whisper1
	}
	return &Whisper{cli: openai.NewClientWithConfig(clientConfig), model: model}
}

func (w *Whisper) Transcribe(ctx context.Context, audioPath string) (string, error) {
	resp, err := w.cli.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: audioPath,
	})
	if err != nil {
		return "", fmt.Errorf("whisper transcription: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}
