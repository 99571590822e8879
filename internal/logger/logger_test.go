package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstUseReturns(t *testing.T) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		Configure("production", "info")
		New().Info("hello")
		Component("test").WithCall("c-1").Info("hello again")
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("logger did not return on first use")
	}
}

func TestJSONFieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	Configure("production", "warn")
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		Configure("production", "info")
	})

	Component("pipeline").WithCall("c-2").Info("dropped")
	assert.Zero(t, buf.Len())

	New().WithError(errors.New("boom")).Warn("kept")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "boom", entry["error"])
}

func TestWithRequestUsesHeaderID(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	req.Header.Set("X-Request-ID", "req-42")
	entry := New().WithRequest(req)
	assert.Equal(t, "req-42", entry.Data["req_id"])
	assert.Equal(t, "/healthz", entry.Data["path"])

	req.Header.Del("X-Request-ID")
	assert.NotEmpty(t, New().WithRequest(req).Data["req_id"])
}
