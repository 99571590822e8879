package verifier

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"call-intelligence-go/internal/logger"
	"call-intelligence-go/internal/metrics"
	"call-intelligence-go/internal/types"
)

type RemoteConfig struct {
	Name    string
	APIKey  string
	BaseURL string
	Model   string
}

// Remote asks an OpenAI-compatible chat endpoint for a strict JSON verdict.
// It makes exactly one request per call and does not retry.
type Remote struct {
	cli   *openai.Client
	name  string
	model string
}

func NewRemote(cfg RemoteConfig) *Remote {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	name := cfg.Name
	if name == "" {
		name = DefaultName
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Remote{
		cli:   openai.NewClientWithConfig(clientConfig),
		name:  name,
		model: model,
	}
}

// New returns a Remote when an API key is configured, otherwise Disabled.
func New(cfg RemoteConfig) Verifier {
	if cfg.APIKey == "" {
		return Disabled{Label: cfg.Name}
	}
	return NewRemote(cfg)
}

func (v *Remote) Name() string { return v.name }

func (v *Remote) Verify(ctx context.Context, in Input) types.VerificationResult {
	log := logger.Component("verifier").WithField("verifier", v.name)

	content, err := v.complete(ctx, in)
	if err != nil {
		log.WithError(err).Warn("verifier request failed, using rule-based result")
		metrics.VerifierOutcomes.WithLabelValues(metrics.OutcomeFallback).Inc()
		return Fallback(in, fmt.Sprintf("%s error: %v", v.name, err))
	}

	res, err := parseVerification(content)
	if err != nil {
		log.WithError(err).Warn("verifier reply not parseable, using rule-based result")
		metrics.VerifierOutcomes.WithLabelValues(metrics.OutcomeFallback).Inc()
		return Fallback(in, fmt.Sprintf("Failed to parse %s response (%v). Using rule-based analysis.", v.name, err))
	}

	log.WithFields(map[string]interface{}{
		"verified_intent":   res.VerifiedIntent,
		"verified_priority": res.VerifiedPriority,
	}).Debug("verification parsed")
	metrics.VerifierOutcomes.WithLabelValues(metrics.OutcomeVerified).Inc()
	return res
}

func (v *Remote) complete(ctx context.Context, in Input) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: v.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(in)},
		},
	}
	resp, err := v.cli.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

const systemPrompt = `You verify banking call classifications.
Reply with ONLY a JSON object with exactly these keys:
{"verified_intent": "", "verified_priority": "", "reasoning": []}
verified_priority must be one of High, Medium, Low.
Do not add prose. Do not wrap the JSON in code fences.`

func buildPrompt(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rule-based intent: %s (%s confidence)\n", in.Intent.Label, in.Intent.Confidence)
	fmt.Fprintf(&b, "Rule-based priority: %s\n", in.Priority)
	fmt.Fprintf(&b, "Rule-based sentiment: %s (score %.1f)\n", in.Sentiment.Label, in.Sentiment.Score)
	fmt.Fprintf(&b, "\nTranscript:\n\"\"\"%s\"\"\"\n", in.Transcript)
	return b.String()
}
