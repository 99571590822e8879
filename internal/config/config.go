package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"call-intelligence-go/internal/extractor"
	"call-intelligence-go/internal/transcription"
	"call-intelligence-go/internal/upload"
	"call-intelligence-go/internal/verifier"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	APIKey      string

	MaxUploadBytes int64
	UploadDir      string
	JobTimeout     time.Duration

	Transcription transcription.Config
	Verifier      verifier.RemoteConfig
	VerifyTimeout time.Duration

	MaskPhone bool
}

// LoadDotEnv loads .env if present; a missing file is not an error.
func LoadDotEnv(paths ...string) {
	_ = godotenv.Load(paths...)
}

// Load reads configuration from the environment.
func Load() Config {
	return Config{
		Port:           envOr("PORT", "8080"),
		Environment:    os.Getenv("ENVIRONMENT"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		APIKey:         os.Getenv("API_KEY"),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", upload.DefaultMaxBytes),
		UploadDir:      os.Getenv("UPLOAD_DIR"),
		JobTimeout:     envSeconds("JOB_TIMEOUT_SEC", 180),
		Transcription: transcription.Config{
			Backend:       envOr("TRANSCRIBER", "mock"),
			OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
			OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
			WhisperModel:  envOr("WHISPER_MODEL", "whisper-1"),
			GatewayURL:    os.Getenv("TRANSCRIBE_URL"),
		},
		Verifier: verifier.RemoteConfig{
			Name:    envOr("VERIFIER_NAME", verifier.DefaultName),
			APIKey:  os.Getenv("VERIFIER_API_KEY"),
			BaseURL: os.Getenv("VERIFIER_BASE_URL"),
			Model:   envOr("VERIFIER_MODEL", "gpt-4o-mini"),
		},
		VerifyTimeout: envSeconds("VERIFIER_TIMEOUT_SEC", 20),
		MaskPhone:     envBool("MASK_PHONE", false),
	}
}

// MaskPolicy is the single masking decision for every identifier kind.
func (c Config) MaskPolicy() extractor.MaskPolicy {
	p := extractor.DefaultMaskPolicy()
	if c.MaskPhone {
		p.Phone = extractor.MaskLast4
	}
	return p
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt64(k string, def int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(os.Getenv(k)), 10, 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func envSeconds(k string, def int) time.Duration {
	return time.Duration(envInt64(k, int64(def))) * time.Second
}

func envBool(k string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(k)))
	if err != nil {
		return def
	}
	return v
}
