package upload

import (
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxBytes mirrors the 25 MiB ceiling of hosted speech APIs.
const DefaultMaxBytes int64 = 25 * 1024 * 1024

var allowedTypes = map[string]bool{
	"audio/mpeg":  true,
	"audio/wav":   true,
	"audio/x-m4a": true,
}

// ValidationError rejects an upload before any analysis work starts.
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate checks the part's media type, ignoring parameters, and its size.
func Validate(contentType string, size, maxBytes int64) error {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !allowedTypes[mediaType] {
		return &ValidationError{
			Status:  http.StatusUnsupportedMediaType,
			Message: fmt.Sprintf("invalid file type %q: upload MP3, WAV or M4A audio", contentType),
		}
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if size > maxBytes {
		return &ValidationError{
			Status:  http.StatusRequestEntityTooLarge,
			Message: "file too large: maximum size is " + formatLimit(maxBytes),
		}
	}
	return nil
}

func formatLimit(n int64) string {
	const mib = 1024 * 1024
	switch {
	case n >= mib && n%mib == 0:
		return fmt.Sprintf("%d MB", n/mib)
	case n >= 1024 && n%1024 == 0:
		return fmt.Sprintf("%d KB", n/1024)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
