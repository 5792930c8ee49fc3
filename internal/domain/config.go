package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned when an extends list names a preset that does
// not exist. A silent fallback would turn a typo into "all defaults".
var ErrUnknownPreset = errors.New("unknown preset")

// Built-in preset names.
const (
	PresetRecommended = "recommended"
	PresetStrict      = "strict"
	PresetMinimal     = "minimal"
)

// Setting is the configuration record for one rule id: a severity plus the
// raw options handed to the rule factory. A Setting always replaces wholesale
// across configuration sources; options are never merged field-by-field.
type Setting struct {
	Severity Severity
	Options  map[string]any
}

// fromSequence handles the [severity, options] shorthand.
func (s *Setting) fromSequence(parts []any) error {
	if len(parts) == 0 {
		s.Severity = SeverityWarn
		s.Options = map[string]any{}
		return nil
	}
	sev, err := ParseSeverity(parts[0])
	if err != nil {
		return err
	}
	opts := map[string]any{}
	if len(parts) > 1 {
		m, ok := parts[1].(map[string]any)
		if !ok {
			return fmt.Errorf("rule options must be a mapping, got %T", parts[1])
		}
		opts = m
	}
	s.Severity = sev
	s.Options = opts
	return nil
}

func (s *Setting) fromMapping(rawSeverity any, opts map[string]any) error {
	sev := SeverityWarn
	if rawSeverity != nil {
		parsed, err := ParseSeverity(rawSeverity)
		if err != nil {
			return err
		}
		sev = parsed
	}
	if opts == nil {
		opts = map[string]any{}
	}
	s.Severity = sev
	s.Options = opts
	return nil
}

// UnmarshalYAML accepts the three shorthand forms: a bare severity, a
// [severity, options] pair, or a {severity, options} mapping.
func (s *Setting) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var raw any
		if err := value.Decode(&raw); err != nil {
			return err
		}
		sev, err := ParseSeverity(raw)
		if err != nil {
			return err
		}
		s.Severity = sev
		s.Options = map[string]any{}
		return nil
	case yaml.SequenceNode:
		var parts []any
		if err := value.Decode(&parts); err != nil {
			return err
		}
		return s.fromSequence(parts)
	case yaml.MappingNode:
		var m struct {
			Severity any            `yaml:"severity"`
			Options  map[string]any `yaml:"options"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		return s.fromMapping(m.Severity, m.Options)
	}
	return fmt.Errorf("rule setting must be a severity, a [severity, options] pair, or a mapping")
}

func (s *Setting) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string, float64:
		sev, err := ParseSeverity(v)
		if err != nil {
			return err
		}
		s.Severity = sev
		s.Options = map[string]any{}
		return nil
	case []any:
		return s.fromSequence(v)
	case map[string]any:
		var opts map[string]any
		if rawOpts, ok := v["options"]; ok && rawOpts != nil {
			m, ok := rawOpts.(map[string]any)
			if !ok {
				return fmt.Errorf("rule options must be an object, got %T", rawOpts)
			}
			opts = m
		}
		return s.fromMapping(v["severity"], opts)
	}
	return fmt.Errorf("rule setting must be a severity, a [severity, options] pair, or an object")
}

func (s Setting) MarshalYAML() (any, error) {
	if len(s.Options) == 0 {
		return s.Severity.String(), nil
	}
	return struct {
		Severity string         `yaml:"severity"`
		Options  map[string]any `yaml:"options"`
	}{s.Severity.String(), s.Options}, nil
}

func (s Setting) MarshalJSON() ([]byte, error) {
	if len(s.Options) == 0 {
		return json.Marshal(s.Severity.String())
	}
	return json.Marshal(struct {
		Severity string         `json:"severity"`
		Options  map[string]any `json:"options"`
	}{s.Severity.String(), s.Options})
}

// StringList accepts both a single string and a list of strings, so
// `extends: recommended` and `extends: [recommended, strict]` both parse.
type StringList []string

func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*l = StringList{s}
		return nil
	}
	var items []string
	if err := value.Decode(&items); err != nil {
		return err
	}
	*l = items
	return nil
}

func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "\"") {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = StringList{s}
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*l = items
	return nil
}

// Config is one parsed rule-engine configuration document. Rule ids it
// mentions need not be registered; unknown ids are skipped at apply time so
// configurations can forward-declare plugin rules.
type Config struct {
	Extends        StringList         `json:"extends,omitempty" yaml:"extends,omitempty"`
	Rules          map[string]Setting `json:"rules,omitempty" yaml:"rules,omitempty"`
	IgnorePatterns []string           `json:"ignorePatterns,omitempty" yaml:"ignorePatterns,omitempty"`
	Plugins        []string           `json:"plugins,omitempty" yaml:"plugins,omitempty"`
}

// DefaultConfig is what applies when no configuration file exists.
func DefaultConfig() *Config {
	return &Config{Extends: StringList{PresetRecommended}, Rules: map[string]Setting{}}
}

// ResolvedRules flattens the configuration into a single rule map: presets
// from Extends merged left-to-right (later presets win per id), then the
// document's own rules replacing entries wholesale per id.
func (c *Config) ResolvedRules() (map[string]Setting, error) {
	resolved := map[string]Setting{}
	for _, name := range c.Extends {
		preset, err := Preset(name)
		if err != nil {
			return nil, err
		}
		for id, setting := range preset {
			resolved[id] = setting
		}
	}
	for id, setting := range c.Rules {
		resolved[id] = setting
	}
	return resolved, nil
}

// PresetNames lists the built-in presets in documentation order.
func PresetNames() []string {
	return []string{PresetRecommended, PresetStrict, PresetMinimal}
}

// Preset returns a fresh copy of the named preset's complete rule map.
func Preset(name string) (map[string]Setting, error) {
	switch name {
	case PresetRecommended:
		return map[string]Setting{
			"complexity/max-complexity":        {Severity: SeverityWarn, Options: map[string]any{"max": 10}},
			"complexity/max-function-lines":    {Severity: SeverityWarn, Options: map[string]any{"max": 50}},
			"complexity/max-params":            {Severity: SeverityWarn, Options: map[string]any{"max": 5}},
			"naming/function-naming":           {Severity: SeverityWarn, Options: map[string]any{"style": "snake_case"}},
			"naming/class-naming":              {Severity: SeverityWarn, Options: map[string]any{"style": "PascalCase"}},
			"structure/max-file-lines":         {Severity: SeverityWarn, Options: map[string]any{"max": 500}},
			"structure/max-classes-per-file":   {Severity: SeverityWarn, Options: map[string]any{"max": 5}},
			"structure/max-functions-per-file": {Severity: SeverityWarn, Options: map[string]any{"max": 20}},
		}, nil
	case PresetStrict:
		return map[string]Setting{
			"complexity/max-complexity":        {Severity: SeverityError, Options: map[string]any{"max": 8}},
			"complexity/max-function-lines":    {Severity: SeverityError, Options: map[string]any{"max": 30}},
			"complexity/max-params":            {Severity: SeverityError, Options: map[string]any{"max": 4}},
			"naming/function-naming":           {Severity: SeverityError, Options: map[string]any{"style": "snake_case"}},
			"naming/class-naming":              {Severity: SeverityError, Options: map[string]any{"style": "PascalCase"}},
			"structure/max-file-lines":         {Severity: SeverityError, Options: map[string]any{"max": 300}},
			"structure/max-classes-per-file":   {Severity: SeverityError, Options: map[string]any{"max": 3}},
			"structure/max-functions-per-file": {Severity: SeverityError, Options: map[string]any{"max": 10}},
		}, nil
	case PresetMinimal:
		return map[string]Setting{
			"complexity/max-complexity": {Severity: SeverityError, Options: map[string]any{"max": 15}},
		}, nil
	}
	return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
}
