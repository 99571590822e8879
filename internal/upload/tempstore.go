package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"call-intelligence-go/internal/logger"
)

// TempStore holds uploaded audio until the owning job finishes.
type TempStore struct {
	Dir string
}

func NewTempStore(dir string) (*TempStore, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "callintel-uploads")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &TempStore{Dir: dir}, nil
}

// Save writes r to <dir>/<callID>_<base name>. The returned cleanup removes
// the file; it may be called any number of times. On error nothing is left
// on disk.
func (s *TempStore) Save(callID, filename string, r io.Reader) (string, func(), error) {
	path := filepath.Join(s.Dir, callID+"_"+filepath.Base(filename))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", func() {}, fmt.Errorf("create temp file: %w", err)
	}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				logger.Component("upload").WithCall(callID).WithError(err).Warn("temp file cleanup failed")
			}
		})
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		cleanup()
		return "", func() {}, fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", func() {}, fmt.Errorf("close temp file: %w", err)
	}
	return path, cleanup, nil
}
