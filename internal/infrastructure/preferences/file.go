// Package preferences persists the visitor's locale choice. Stores are
// deliberately forgiving: a preference that cannot be read or written is
// simply absent.
package preferences

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"passerelle/internal/ports/output"
)

var (
	_ output.PreferenceStore = (*FileStore)(nil)
	_ output.PreferenceStore = (*MemoryStore)(nil)
)

// FileStore keeps the chosen locale as a single line in one file.
type FileStore struct {
	path string
	log  *slog.Logger
}

func NewFileStore(path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{path: path, log: logger}
}

func (s *FileStore) Get(_ context.Context) (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	locale := strings.TrimSpace(string(data))
	if locale == "" {
		return "", false
	}
	return locale, true
}

func (s *FileStore) Put(_ context.Context, locale string) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.log.Warn("⚠️ Préférence de locale non enregistrée", "path", s.path, "err", err)
		return
	}
	if err := os.WriteFile(s.path, []byte(locale+"\n"), 0o644); err != nil {
		s.log.Warn("⚠️ Préférence de locale non enregistrée", "path", s.path, "err", err)
	}
}
