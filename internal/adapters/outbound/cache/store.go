// Package cache persists the most recent lint report per project.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

const snapshotFile = ".bricklint/last_report.json"

// Store is a file-based implementation of domain.SnapshotStore.
type Store struct{}

var _ domain.SnapshotStore = (*Store)(nil)

func New() *Store {
	return &Store{}
}

// Save writes the snapshot to disk, creating the state directory as needed.
func (s *Store) Save(root string, snap domain.ReportSnapshot) error {
	fp := filepath.Join(root, snapshotFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fp, data, 0644)
}

// Load reads the stored snapshot. Returns (nil, nil) when none exists.
func (s *Store) Load(root string) (*domain.ReportSnapshot, error) {
	data, err := os.ReadFile(filepath.Join(root, snapshotFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var snap domain.ReportSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
