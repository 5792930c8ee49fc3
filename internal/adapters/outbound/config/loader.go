// Package config loads rule configuration files in JSON and YAML form.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

// fileNames are the conventional configuration files, checked in order.
// The first one found wins; later candidates are not merged in.
var fileNames = []string{
	".bricklintrc.json",
	".bricklintrc.yaml",
	".bricklintrc.yml",
	"bricklint.config.json",
}

// Loader implements domain.ConfigSource over the local filesystem.
type Loader struct{}

func New() *Loader {
	return &Loader{}
}

// FileNames returns the discovery candidates in priority order.
func FileNames() []string {
	return append([]string(nil), fileNames...)
}

// Load reads and parses an explicit configuration file. The codec follows the
// file extension: .yaml and .yml parse as YAML, everything else as JSON.
func (l *Loader) Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(data, path)
}

// Discover searches dir for a conventional config file. When none exists the
// default configuration applies and the returned path is empty.
func (l *Loader) Discover(dir string) (*domain.Config, string, error) {
	for _, name := range fileNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("reading config: %w", err)
		}
		cfg, err := parse(data, path)
		if err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}
	return domain.DefaultConfig(), "", nil
}

// Save writes cfg to path, choosing the codec from the extension. Used by the
// init flow to materialize a starter configuration.
func (l *Loader) Save(path string, cfg *domain.Config) error {
	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else if data, err = json.MarshalIndent(cfg, "", "  "); err == nil {
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func parse(data []byte, path string) (*domain.Config, error) {
	var cfg domain.Config
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
		}
		return &cfg, nil
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return &cfg, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
