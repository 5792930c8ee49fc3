// Package history persists lint run summaries per project.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

const historyFile = ".bricklint/history.json"

// maxEntries bounds the stored history; older runs fall off the front.
const maxEntries = 50

// FileHistory implements domain.HistoryStore using JSON file storage.
type FileHistory struct{}

var _ domain.HistoryStore = (*FileHistory)(nil)

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Append(root string, entry domain.RunEntry) error {
	entries, err := h.Load(root)
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	fp := filepath.Join(root, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(root string) ([]domain.RunEntry, error) {
	data, err := os.ReadFile(filepath.Join(root, historyFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.RunEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
