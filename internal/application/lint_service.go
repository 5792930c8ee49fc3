// Package application wires the domain rule engine to the inbound and
// outbound adapters. Services hold ports, never concrete adapters, so the
// CLI and MCP surfaces share one implementation of every use case.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain/rules"
)

// LintOptions carries the per-invocation knobs of a lint run. The zero value
// lints the current directory with the discovered (or default) configuration.
type LintOptions struct {
	ConfigPath  string   // explicit config file, skips discovery
	Preset      string   // named preset, takes precedence over config files
	Extensions  []string // file extensions to scan, defaults to all supported
	Ignore      []string // extra glob patterns merged with the config's ignore list
	Recursive   bool
	SkipHistory bool // leave the run log and report snapshot untouched
}

// LintRun bundles a finished report with the run context the renderers need.
type LintRun struct {
	Report     *domain.LintReport
	Root       string
	ConfigPath string           // empty when defaults or a preset were used
	Commit     string           // short commit hash, empty outside a repository
	Previous   *domain.RunEntry // most recent history entry before this run
}

// LintService implements the lint, inspect and lint-source use cases.
type LintService struct {
	configs   domain.ConfigSource
	scanner   domain.FileScanner
	parsers   domain.ParserResolver
	registry  *rules.Registry
	history   domain.HistoryStore
	snapshots domain.SnapshotStore
	commits   domain.CommitResolver
	logger    *slog.Logger
}

func NewLintService(
	configs domain.ConfigSource,
	scanner domain.FileScanner,
	parsers domain.ParserResolver,
	registry *rules.Registry,
	history domain.HistoryStore,
	snapshots domain.SnapshotStore,
	commits domain.CommitResolver,
	logger *slog.Logger,
) *LintService {
	return &LintService{
		configs:   configs,
		scanner:   scanner,
		parsers:   parsers,
		registry:  registry,
		history:   history,
		snapshots: snapshots,
		commits:   commits,
		logger:    logger,
	}
}

// Run lints the given paths (files or directories) and returns the aggregated
// report. Results keep the order produced by the scanner even though files
// are linted in parallel. History and snapshot writes are best effort: a
// failure there is logged and never fails the run.
func (s *LintService) Run(ctx context.Context, paths []string, opts LintOptions) (*LintRun, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	root := lintRoot(paths)

	engine, err := rules.NewEngine(s.registry)
	if err != nil {
		return nil, err
	}

	var cfg *domain.Config
	var configPath string
	switch {
	case opts.Preset != "":
		if err := engine.UsePreset(opts.Preset); err != nil {
			return nil, err
		}
		s.logger.Debug("using preset", "preset", opts.Preset)
	case opts.ConfigPath != "":
		cfg, err = s.configs.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		if err := engine.ApplyConfig(cfg); err != nil {
			return nil, err
		}
		configPath = opts.ConfigPath
	default:
		cfg, configPath, err = s.configs.Discover(root)
		if err != nil {
			return nil, err
		}
		if err := engine.ApplyConfig(cfg); err != nil {
			return nil, err
		}
	}
	if configPath != "" {
		s.logger.Debug("resolved config", "path", configPath)
	}

	ignore := opts.Ignore
	if cfg != nil {
		ignore = append(append([]string{}, cfg.IgnorePatterns...), opts.Ignore...)
	}
	for _, pattern := range ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	extensions := normalizeExtensions(opts.Extensions)
	if len(extensions) == 0 {
		extensions = s.parsers.Extensions()
	}
	files, err := s.collectFiles(paths, extensions, opts.Recursive)
	if err != nil {
		return nil, err
	}
	files = dropIgnored(files, root, ignore)
	s.logger.Debug("collected files", "count", len(files), "root", root)

	results := make([]*domain.LintResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.lintFile(engine, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := domain.NewLintReport()
	for _, result := range results {
		report.Add(result)
	}

	run := &LintRun{Report: report, Root: root, ConfigPath: configPath}
	if hash, err := s.commits.CommitHash(root); err == nil {
		run.Commit = hash
	}
	if entries, err := s.history.Load(root); err == nil && len(entries) > 0 {
		last := entries[len(entries)-1]
		run.Previous = &last
	}
	if !opts.SkipHistory {
		s.record(root, run)
	}
	return run, nil
}

// LintSource lints an in-memory snippet with the default configuration. The
// result's file path is a placeholder since no file backs the source.
func (s *LintService) LintSource(source, language string) (*domain.LintResult, error) {
	parser, ok := s.parsers.ForLanguage(language)
	if !ok {
		return nil, fmt.Errorf("%w for language %q", domain.ErrNoParser, language)
	}
	engine, err := rules.NewEngine(s.registry)
	if err != nil {
		return nil, err
	}
	outcome := parser.Parse([]byte(source), "<source>")
	return engine.Lint(outcome), nil
}

// Inspect parses a single file and returns its structural outcome without
// running any rules.
func (s *LintService) Inspect(path string) (*domain.Outcome, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	parser, ok := s.parsers.ForPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoParser, path)
	}
	return parser.ParseFile(path), nil
}

// LastReport returns the persisted snapshot of the previous run, or an error
// when no run has been recorded for the root yet.
func (s *LintService) LastReport(root string) (*domain.ReportSnapshot, error) {
	snap, err := s.snapshots.Load(root)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, fmt.Errorf("no recorded report under %s, lint first", root)
	}
	return snap, nil
}

// History returns the recorded runs for root, oldest first.
func (s *LintService) History(root string) ([]domain.RunEntry, error) {
	return s.history.Load(root)
}

func (s *LintService) collectFiles(paths, extensions []string, recursive bool) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		relative, err := s.scanner.Scan(path, extensions, recursive)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", path, err)
		}
		for _, rel := range relative {
			files = append(files, filepath.Join(path, rel))
		}
	}
	return files, nil
}

func (s *LintService) lintFile(engine *rules.Engine, path string) *domain.LintResult {
	parser, ok := s.parsers.ForPath(path)
	if !ok {
		result := domain.NewLintResult(path)
		result.ParseErrors = append(result.ParseErrors, fmt.Sprintf("no parser available: %s", path))
		return result
	}
	started := time.Now()
	result := engine.Lint(parser.ParseFile(path))
	s.logger.Debug("linted file",
		"path", path,
		"violations", len(result.Violations),
		"elapsed", time.Since(started))
	return result
}

// record appends a history entry and refreshes the report snapshot. Failures
// are logged at warn level so an unwritable state directory never breaks
// linting itself.
func (s *LintService) record(root string, run *LintRun) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	entry := domain.RunEntry{
		Timestamp:       timestamp,
		CommitHash:      run.Commit,
		TotalFiles:      run.Report.TotalFiles(),
		TotalErrors:     run.Report.TotalErrors(),
		TotalWarnings:   run.Report.TotalWarnings(),
		TotalViolations: run.Report.TotalViolations(),
	}
	if err := s.history.Append(root, entry); err != nil {
		s.logger.Warn("saving run history", "root", root, "error", err)
	}
	snapshot := domain.ReportSnapshot{
		GeneratedAt: timestamp,
		CommitHash:  run.Commit,
		Root:        root,
		Report:      run.Report,
	}
	if err := s.snapshots.Save(root, snapshot); err != nil {
		s.logger.Warn("saving report snapshot", "root", root, "error", err)
	}
}

// lintRoot picks the directory that anchors config discovery and run history:
// the first path when it is a directory, otherwise that path's parent.
func lintRoot(paths []string) string {
	first := paths[0]
	if info, err := os.Stat(first); err == nil && info.IsDir() {
		return first
	}
	return filepath.Dir(first)
}

func normalizeExtensions(extensions []string) []string {
	if len(extensions) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return normalized
}

// dropIgnored filters out files matching any ignore pattern. Patterns are
// tried against the slash form of the full path, the path relative to root,
// and the bare file name, so "sub/**" works from any invocation directory
// and "*_test.py" skips test files at any depth.
func dropIgnored(files []string, root string, patterns []string) []string {
	if len(patterns) == 0 {
		return files
	}
	kept := files[:0]
	for _, file := range files {
		if !ignored(file, root, patterns) {
			kept = append(kept, file)
		}
	}
	return kept
}

func ignored(file, root string, patterns []string) bool {
	names := []string{filepath.ToSlash(file), filepath.Base(file)}
	if rel, err := filepath.Rel(root, file); err == nil && !strings.HasPrefix(rel, "..") {
		names = append(names, filepath.ToSlash(rel))
	}
	for _, pattern := range patterns {
		for _, name := range names {
			if match, _ := doublestar.Match(pattern, name); match {
				return true
			}
		}
	}
	return false
}
