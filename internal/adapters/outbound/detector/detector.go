// Package detector infers the languages a project contains.
package detector

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

// markerFiles map project manifest names to the language they indicate.
var markerFiles = map[string]string{
	"go.mod":           "go",
	"go.sum":           "go",
	"pyproject.toml":   "python",
	"setup.py":         "python",
	"requirements.txt": "python",
	"package.json":     "javascript",
	"tsconfig.json":    "typescript",
}

var extLanguages = map[string]string{
	".go":  "go",
	".py":  "python",
	".js":  "javascript",
	".jsx": "javascript",
	".ts":  "typescript",
	".tsx": "typescript",
}

// languageOrder fixes the reporting order regardless of discovery order.
var languageOrder = []string{"go", "python", "javascript", "typescript"}

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

// probeLimit caps how many files the extension walk inspects. Marker files
// usually settle the answer before the walk matters.
const probeLimit = 2000

// LanguageDetector implements domain.LanguageDetector using manifest files
// and a bounded extension probe.
type LanguageDetector struct{}

var _ domain.LanguageDetector = (*LanguageDetector)(nil)

func New() *LanguageDetector {
	return &LanguageDetector{}
}

// Detect returns the languages found under root in canonical order. A missing
// or unreadable root yields an empty result.
func (d *LanguageDetector) Detect(root string) []string {
	found := map[string]bool{}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if lang, ok := markerFiles[e.Name()]; ok {
			found[lang] = true
		}
	}

	if len(found) < len(languageOrder) {
		probeExtensions(root, found)
	}

	var langs []string
	for _, lang := range languageOrder {
		if found[lang] {
			langs = append(langs, lang)
		}
	}
	return langs
}

func probeExtensions(root string, found map[string]bool) {
	seen := 0
	_ = filepath.WalkDir(root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() {
			if skipDirs[entry.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		seen++
		if seen > probeLimit || len(found) == len(languageOrder) {
			return fs.SkipAll
		}
		if lang, ok := extLanguages[strings.ToLower(filepath.Ext(path))]; ok {
			found[lang] = true
		}
		return nil
	})
}
