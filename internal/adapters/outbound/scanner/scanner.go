// Package scanner walks project trees for lintable source files.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

// skipDirs are never descended into. They hold dependencies, build output,
// or tool state rather than project source.
var skipDirs = map[string]bool{
	".git":         true,
	".bricklint":   true,
	".venv":        true,
	"venv":         true,
	"__pycache__":  true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
}

// FileScanner implements domain.FileScanner by walking the filesystem.
type FileScanner struct{}

var _ domain.FileScanner = (*FileScanner)(nil)

func New() *FileScanner {
	return &FileScanner{}
}

// Scan returns files under root whose extension is in extensions, as paths
// relative to root. Walk order is lexical, so results are deterministic.
func (s *FileScanner) Scan(root string, extensions []string, recursive bool) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}

	extSet := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		extSet[strings.ToLower(ext)] = true
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == absRoot {
				return nil
			}
			if skipDirs[d.Name()] || !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !extSet[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
