package application

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain/baseline"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain/rules"
)

// initConfigName is the file Init writes. YAML so the generated file is easy
// to annotate by hand afterwards.
const initConfigName = ".bricklintrc.yaml"

// InitOptions controls config generation.
type InitOptions struct {
	Force bool // overwrite an existing config file
	Auto  bool // profile the codebase and suggest thresholds from it
}

// InitResult reports what Init wrote and what it learned about the codebase.
type InitResult struct {
	Path      string
	Languages []string
	Profile   *baseline.Profile // set only when the codebase was profiled
	Config    *domain.Config
}

// ValidationReport is the outcome of checking a config file without linting
// anything. Errors make the config unusable, warnings are survivable.
type ValidationReport struct {
	Path     string   `json:"path"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// SetupService implements config bootstrapping and validation.
type SetupService struct {
	configs  domain.ConfigSource
	scanner  domain.FileScanner
	parsers  domain.ParserResolver
	detector domain.LanguageDetector
	registry *rules.Registry
	logger   *slog.Logger
}

func NewSetupService(
	configs domain.ConfigSource,
	scanner domain.FileScanner,
	parsers domain.ParserResolver,
	detector domain.LanguageDetector,
	registry *rules.Registry,
	logger *slog.Logger,
) *SetupService {
	return &SetupService{
		configs:  configs,
		scanner:  scanner,
		parsers:  parsers,
		detector: detector,
		registry: registry,
		logger:   logger,
	}
}

// Init writes a starter config into root. Without Auto the file just extends
// the recommended preset. With Auto the codebase is parsed first and each
// threshold is lifted to the observed 90th percentile, so adopting the tool
// on an existing project does not bury it in findings.
func (s *SetupService) Init(root string, opts InitOptions) (*InitResult, error) {
	path := filepath.Join(root, initConfigName)
	if _, err := os.Stat(path); err == nil && !opts.Force {
		return nil, fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	result := &InitResult{Path: path, Languages: s.detector.Detect(root)}
	cfg := domain.DefaultConfig()
	if opts.Auto {
		profile, suggested, err := s.profile(root, result.Languages)
		if err != nil {
			return nil, err
		}
		result.Profile = profile
		cfg = suggested
	}

	if err := s.configs.Save(path, cfg); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	result.Config = cfg
	return result, nil
}

// Validate checks the config at path, or the discovered one under root when
// path is empty. Problems that would change or break a lint run are errors,
// ignorable oddities are warnings.
func (s *SetupService) Validate(root, path string) (*ValidationReport, error) {
	if path == "" {
		_, discovered, err := s.configs.Discover(root)
		if err != nil {
			return nil, err
		}
		if discovered == "" {
			return nil, fmt.Errorf("no config file found under %s", root)
		}
		path = discovered
	}

	report := &ValidationReport{Path: path}
	defer func() { report.Valid = len(report.Errors) == 0 }()

	cfg, err := s.configs.Load(path)
	if err != nil {
		report.Errors = append(report.Errors, err.Error())
		return report, nil
	}

	resolved, err := cfg.ResolvedRules()
	if err != nil {
		report.Errors = append(report.Errors, err.Error())
		return report, nil
	}

	ids := make([]string, 0, len(resolved))
	for id := range resolved {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		setting := resolved[id]
		_, factory, ok := s.registry.Lookup(id)
		if !ok {
			report.Warnings = append(report.Warnings, fmt.Sprintf("unknown rule %q, it will be ignored", id))
			continue
		}
		if setting.Severity == domain.SeverityOff {
			continue
		}
		if _, err := factory(setting.Severity, setting.Options); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("rule %s: %v", id, err))
		}
	}

	for _, id := range []string{"naming/function-naming", "naming/class-naming"} {
		setting, ok := resolved[id]
		if !ok || setting.Severity == domain.SeverityOff {
			continue
		}
		style, ok := setting.Options["style"].(string)
		if ok && !rules.ValidNamingStyle(style) {
			report.Errors = append(report.Errors, fmt.Sprintf(
				"rule %s: unknown style %q (valid: %s)",
				id, style, strings.Join(rules.KnownNamingStyles(), ", ")))
		}
	}

	for _, pattern := range cfg.IgnorePatterns {
		if !doublestar.ValidatePattern(pattern) {
			report.Errors = append(report.Errors, fmt.Sprintf("invalid ignore pattern %q", pattern))
		}
	}

	if len(cfg.Plugins) > 0 {
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"plugin loading is not implemented, %d plugin entries are ignored", len(cfg.Plugins)))
	}
	return report, nil
}

// profile parses every supported file under root and derives threshold
// suggestions from the result. Files that fail to parse are skipped so a
// single broken file cannot poison the sample.
func (s *SetupService) profile(root string, languages []string) (*baseline.Profile, *domain.Config, error) {
	files, err := s.scanner.Scan(root, s.extensionsFor(languages), true)
	if err != nil {
		return nil, nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	var outcomes []*domain.Outcome
	for _, rel := range files {
		full := filepath.Join(root, rel)
		parser, ok := s.parsers.ForPath(full)
		if !ok {
			continue
		}
		outcome := parser.ParseFile(full)
		if len(outcome.ParseErrors) > 0 {
			s.logger.Debug("skipping unparsable file", "path", full)
			continue
		}
		outcomes = append(outcomes, outcome)
	}

	profile, err := baseline.Collect(outcomes)
	if err != nil {
		return nil, nil, fmt.Errorf("profiling %s: no parsable source files found", root)
	}
	s.logger.Debug("profiled codebase",
		"files", profile.Files,
		"functions", profile.Functions,
		"classes", profile.Classes)
	return profile, profile.SuggestConfig(), nil
}

// extensionsFor maps detected languages to their file extensions, falling
// back to every supported extension when detection found nothing.
func (s *SetupService) extensionsFor(languages []string) []string {
	var extensions []string
	for _, language := range languages {
		if parser, ok := s.parsers.ForLanguage(language); ok {
			extensions = append(extensions, parser.Extensions()...)
		}
	}
	if len(extensions) == 0 {
		return s.parsers.Extensions()
	}
	return extensions
}
