// Package backup stores exported backup documents on local disk or in an
// S3-compatible bucket.
package backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrNotFound = errors.New("backup not found")

// Sink stores and retrieves backup documents by name.
type Sink interface {
	// Put stores data under name and returns where it was written.
	Put(ctx context.Context, name string, data []byte) (string, error)
	Get(ctx context.Context, name string) ([]byte, error)
}

// FileSink keeps backups as files under Dir.
type FileSink struct {
	Dir string
}

func NewFileSink(dir string) *FileSink {
	if dir == "" {
		dir = "."
	}
	return &FileSink{Dir: dir}
}

func (s *FileSink) Put(_ context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}
	path := filepath.Join(s.Dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return path, nil
}

// Get reads name from Dir. An absolute or relative path to an existing file
// is accepted as well.
func (s *FileSink) Get(_ context.Context, name string) ([]byte, error) {
	candidates := []string{filepath.Join(s.Dir, name)}
	if filepath.IsAbs(name) || filepath.Dir(name) != "." {
		candidates = append([]string{name}, candidates...)
	}

	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read backup: %w", err)
		}
	}
	return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
}

var _ Sink = (*FileSink)(nil)
