package service

import (
	"fmt"
	"io"
	"os"
)

// StagedFile is an uploaded payload spooled to local disk for the
// duration of one request. The request that staged it owns it and must
// Discard it on every exit path.
type StagedFile struct {
	path    string
	size    int64
	removed bool
}

// Stage copies src into a fresh temp file under dir, creating dir if
// missing.
func Stage(dir string, src io.Reader) (*StagedFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "upload-*")
	if err != nil {
		return nil, fmt.Errorf("create staging file: %w", err)
	}
	size, err := io.Copy(tmp, src)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return nil, fmt.Errorf("stage upload: %w", err)
	}
	return &StagedFile{path: tmp.Name(), size: size}, nil
}

// Open returns a reader over the staged bytes. The caller closes it.
func (s *StagedFile) Open() (*os.File, error) {
	return os.Open(s.path)
}

func (s *StagedFile) Size() int64 {
	return s.size
}

func (s *StagedFile) Path() string {
	return s.path
}

// Discard deletes the staged file. Safe to call more than once; only the
// first call touches the filesystem.
func (s *StagedFile) Discard() error {
	if s.removed {
		return nil
	}
	s.removed = true
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
