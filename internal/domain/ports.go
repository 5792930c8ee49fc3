package domain

import "errors"

// ErrNoParser is returned when no parser adapter covers a path or language.
var ErrNoParser = errors.New("no parser available")

// SourceParser turns raw source text into the normalized Outcome consumed by
// the rule engine. Syntax problems are reported inside the Outcome's parse
// errors where feasible instead of failing the call.
type SourceParser interface {
	Parse(src []byte, filePath string) *Outcome
	ParseFile(filePath string) *Outcome
	Language() string
	Extensions() []string
}

// ParserResolver picks a parser adapter for a path or a language tag.
type ParserResolver interface {
	ForPath(path string) (SourceParser, bool)
	ForLanguage(language string) (SourceParser, bool)
	Languages() []string
	Extensions() []string
}

// ConfigSource loads and persists rule configuration, either from an
// explicit path or by searching a directory for conventional filenames.
type ConfigSource interface {
	Load(path string) (*Config, error)
	// Discover returns the loaded config and the path it came from; the path
	// is empty when no file was found and the default applied.
	Discover(dir string) (*Config, string, error)
	Save(path string, cfg *Config) error
}

// FileScanner walks a tree and returns lintable files filtered by extension.
type FileScanner interface {
	Scan(root string, extensions []string, recursive bool) ([]string, error)
}

// LanguageDetector reports the languages a project appears to contain, based
// on marker files.
type LanguageDetector interface {
	Detect(root string) []string
}

// HistoryStore persists run summaries per project root.
type HistoryStore interface {
	Append(root string, entry RunEntry) error
	Load(root string) ([]RunEntry, error)
}

// SnapshotStore persists the most recent report for later retrieval without
// re-linting.
type SnapshotStore interface {
	Save(root string, snap ReportSnapshot) error
	Load(root string) (*ReportSnapshot, error)
}

// CommitResolver reports the current VCS commit for a directory, when the
// directory is inside a repository.
type CommitResolver interface {
	CommitHash(dir string) (string, error)
}
