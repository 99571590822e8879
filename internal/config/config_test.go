package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call-intelligence-go/internal/extractor"
	"call-intelligence-go/internal/upload"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "MAX_UPLOAD_BYTES", "JOB_TIMEOUT_SEC", "TRANSCRIBER", "VERIFIER_API_KEY", "VERIFIER_NAME", "VERIFIER_TIMEOUT_SEC", "MASK_PHONE"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, upload.DefaultMaxBytes, cfg.MaxUploadBytes)
	assert.Equal(t, 180*time.Second, cfg.JobTimeout)
	assert.Equal(t, "mock", cfg.Transcription.Backend)
	assert.Equal(t, "AI verifier", cfg.Verifier.Name)
	assert.Empty(t, cfg.Verifier.APIKey)
	assert.Equal(t, 20*time.Second, cfg.VerifyTimeout)
	assert.Equal(t, extractor.DefaultMaskPolicy(), cfg.MaskPolicy())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("JOB_TIMEOUT_SEC", "5")
	t.Setenv("TRANSCRIBER", "gateway")
	t.Setenv("TRANSCRIBE_URL", "http://asr.local")
	t.Setenv("VERIFIER_API_KEY", "k")
	t.Setenv("VERIFIER_NAME", "Backboard AI")
	t.Setenv("MASK_PHONE", "true")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.Equal(t, 5*time.Second, cfg.JobTimeout)
	assert.Equal(t, "gateway", cfg.Transcription.Backend)
	assert.Equal(t, "http://asr.local", cfg.Transcription.GatewayURL)
	assert.Equal(t, "Backboard AI", cfg.Verifier.Name)
	assert.Equal(t, extractor.MaskLast4, cfg.MaskPolicy().Phone)
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "lots")
	t.Setenv("JOB_TIMEOUT_SEC", "-3")
	t.Setenv("MASK_PHONE", "maybe")
	cfg := Load()
	assert.Equal(t, upload.DefaultMaxBytes, cfg.MaxUploadBytes)
	assert.Equal(t, 180*time.Second, cfg.JobTimeout)
	assert.False(t, cfg.MaskPhone)
}

func TestLoadDotEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("CALLINTEL_TEST_VALUE=from-dotenv\n"), 0o600))
	t.Setenv("CALLINTEL_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("CALLINTEL_TEST_VALUE"))

	LoadDotEnv(p)
	assert.Equal(t, "from-dotenv", os.Getenv("CALLINTEL_TEST_VALUE"))
}
