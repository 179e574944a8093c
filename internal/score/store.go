// internal/score/store.go
package score

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileStore keeps the high score as a decimal number in a text file.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load returns the stored score. A missing, unreadable or malformed file
// yields 0.
func (s *FileStore) Load() int {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("high score: %v", err)
		}
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		log.Printf("high score: ignoring malformed file %s", s.Path)
		return 0
	}
	return n
}

// Save overwrites the file with score, creating its directory if needed.
func (s *FileStore) Save(score int) error {
	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create high score directory: %w", err)
		}
	}
	if err := os.WriteFile(s.Path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("failed to write high score: %w", err)
	}
	return nil
}
