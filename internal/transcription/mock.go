package transcription

import "context"

const mockTranscript = "My name is Priya Sharma. I would like to take a loan for my new home, please call back tomorrow."

// Mock returns a fixed transcript for offline demos.
type Mock struct {
	Text string
}

func (m Mock) Transcribe(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.Text != "" {
		return m.Text, nil
	}
	return mockTranscript, nil
}
