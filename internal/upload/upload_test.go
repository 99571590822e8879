package upload

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	for _, ct := range []string{"audio/mpeg", "audio/wav", "audio/x-m4a"} {
		assert.NoError(t, Validate(ct, 1024, 0), ct)
	}

	var ve *ValidationError
	err := Validate("video/mp4", 10, 0)
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, http.StatusUnsupportedMediaType, ve.Status)

	err = Validate("audio/wav", DefaultMaxBytes+1, 0)
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, http.StatusRequestEntityTooLarge, ve.Status)
	assert.Contains(t, ve.Error(), "25 MB")

	assert.NoError(t, Validate("audio/wav", DefaultMaxBytes, 0))
	assert.Error(t, Validate("audio/wav", 11, 10))
}

func TestValidateMediaTypeParameters(t *testing.T) {
	assert.NoError(t, Validate("audio/wav; codecs=1", 10, 0))
	assert.NoError(t, Validate("Audio/MPEG", 10, 0))

	var ve *ValidationError
	require.True(t, errors.As(Validate("", 10, 0), &ve))
	assert.Equal(t, http.StatusUnsupportedMediaType, ve.Status)
	require.True(t, errors.As(Validate("audio/wav; =bad", 10, 0), &ve))
	assert.Equal(t, http.StatusUnsupportedMediaType, ve.Status)
}

func TestValidateSmallLimitMessage(t *testing.T) {
	var ve *ValidationError
	require.True(t, errors.As(Validate("audio/wav", 11, 10), &ve))
	assert.Contains(t, ve.Error(), "10 bytes")

	require.True(t, errors.As(Validate("audio/wav", 600*1024, 512*1024), &ve))
	assert.Contains(t, ve.Error(), "512 KB")
}

func TestTempStoreSaveAndCleanup(t *testing.T) {
	s, err := NewTempStore(t.TempDir())
	require.NoError(t, err)

	path, cleanup, err := s.Save("c1", "../../etc/call.wav", strings.NewReader("audio"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Dir, "c1_call.wav"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "audio", string(data))

	cleanup()
	cleanup()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestTempStoreSaveFailureLeavesNothing(t *testing.T) {
	s, err := NewTempStore(t.TempDir())
	require.NoError(t, err)

	_, cleanup, err := s.Save("c2", "call.wav", failingReader{})
	require.Error(t, err)
	cleanup()

	entries, err := os.ReadDir(s.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
