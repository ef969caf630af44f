package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore keeps uploaded documents on the local filesystem under a single
// base directory. Stored names are prefixed with a uuid so two uploads of
// "exam.txt" never collide.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

// Save writes data and returns the path the caller should persist.
func (s *LocalStore) Save(fileName string, data []byte) (string, error) {
	safeName := filepath.Base(fileName)
	safeName = strings.ReplaceAll(safeName, " ", "_")
	storedName := fmt.Sprintf("%s_%s", uuid.New().String(), safeName)

	path := filepath.Join(s.baseDir, storedName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return path, nil
}

func (s *LocalStore) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (s *LocalStore) Delete(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
