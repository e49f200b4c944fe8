package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	apperrors "github.com/alexisbeaulieu97/skingen/pkg/errors"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

// DefaultPath is the project file used when none is given.
const DefaultPath = "skin.json"

// FileStore keeps one project in a file. The format follows the extension.
type FileStore struct {
	Path string
}

// NewFileStore returns a store for path, or DefaultPath when path is empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{Path: path}
}

// Exists reports whether the project file is present.
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

// Load reads the project. A missing file yields a fresh default project;
// a malformed one is an error, never silently replaced.
func (s *FileStore) Load() (project.Project, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return project.New(), nil
		}
		return project.Project{}, apperrors.NewParseError(s.Path, 0, err)
	}

	return Decode(data, FormatForPath(s.Path), s.Path)
}

// Save writes p atomically, creating parent directories as needed.
func (s *FileStore) Save(p project.Project) error {
	data, err := Encode(p, FormatForPath(s.Path))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create project directory: %w", err)
		}
	}

	if err := atomic.WriteFile(s.Path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write project %s: %w", s.Path, err)
	}
	return nil
}
