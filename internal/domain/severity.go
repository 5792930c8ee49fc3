package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Severity classifies whether and how a rule violation surfaces.
type Severity int

const (
	SeverityOff Severity = iota
	SeverityWarn
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// Valid reports whether s is one of the three defined levels.
func (s Severity) Valid() bool {
	return s >= SeverityOff && s <= SeverityError
}

// ParseSeverity resolves a raw configuration value into a Severity. Accepted
// forms: a level name (case-insensitive), an integer ordinal, or an
// already-typed value.
func ParseSeverity(v any) (Severity, error) {
	switch x := v.(type) {
	case Severity:
		if !x.Valid() {
			return SeverityOff, fmt.Errorf("severity ordinal out of range: %d", int(x))
		}
		return x, nil
	case string:
		switch strings.ToLower(x) {
		case "off":
			return SeverityOff, nil
		case "warn":
			return SeverityWarn, nil
		case "error":
			return SeverityError, nil
		}
		return SeverityOff, fmt.Errorf("unknown severity %q (valid: off, warn, error)", x)
	case int:
		return severityFromInt(x)
	case int64:
		return severityFromInt(int(x))
	case uint64:
		return severityFromInt(int(x))
	case float64:
		// JSON numbers arrive as float64.
		if x != float64(int(x)) {
			return SeverityOff, fmt.Errorf("severity ordinal must be an integer, got %v", x)
		}
		return severityFromInt(int(x))
	}
	return SeverityOff, fmt.Errorf("severity must be a name or ordinal, got %T", v)
}

func severityFromInt(n int) (Severity, error) {
	s := Severity(n)
	if !s.Valid() {
		return SeverityOff, fmt.Errorf("severity ordinal out of range: %d", n)
	}
	return s, nil
}

// MarshalJSON emits the level name so reports stay readable.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseSeverity(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Severity) MarshalYAML() (any, error) {
	return s.String(), nil
}

func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	var raw any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseSeverity(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
