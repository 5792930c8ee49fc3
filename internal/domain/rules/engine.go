package rules

import (
	"errors"
	"fmt"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

// ErrUnknownRule is returned when a single-rule operation names an id that
// was never registered. Bulk configuration stays lenient so one config can
// serve repos with different plugin sets.
var ErrUnknownRule = errors.New("unknown rule")

// Engine holds the materialized rule instances for one configuration and
// runs them against outcomes. The instance set is rebuilt wholesale on every
// configuration change; reconfiguring while a Lint is in flight is not safe.
type Engine struct {
	registry  *Registry
	instances map[string]*Rule
}

// NewEngine materializes every registered rule under its default severity
// and options.
func NewEngine(registry *Registry) (*Engine, error) {
	e := &Engine{registry: registry, instances: map[string]*Rule{}}
	if err := e.ApplyConfig(&domain.Config{}); err != nil {
		return nil, err
	}
	return e, nil
}

// ApplyConfig rebuilds the full instance set from cfg. For each registered
// rule: a resolved OFF leaves no instance, a resolved setting materializes
// one at that severity, and an absent entry falls back to the rule's own
// defaults so untouched rules stay active. Settings for unregistered ids are
// ignored.
func (e *Engine) ApplyConfig(cfg *domain.Config) error {
	resolved, err := cfg.ResolvedRules()
	if err != nil {
		return err
	}

	instances := make(map[string]*Rule, len(e.registry.order))
	for _, id := range e.registry.order {
		entry := e.registry.entries[id]
		setting, ok := resolved[id]
		if !ok {
			setting = domain.Setting{Severity: entry.desc.DefaultSeverity, Options: entry.desc.DefaultOptions}
		}
		if setting.Severity == domain.SeverityOff {
			continue
		}
		inst, err := entry.factory(setting.Severity, setting.Options)
		if err != nil {
			return fmt.Errorf("configuring %s: %w", id, err)
		}
		instances[id] = inst
	}
	e.instances = instances
	return nil
}

// UsePreset replaces the configuration with the named preset alone.
func (e *Engine) UsePreset(name string) error {
	return e.ApplyConfig(&domain.Config{Extends: domain.StringList{name}})
}

// ConfigureRule reconfigures a single rule without touching the rest of the
// instance set. OFF removes the instance. Unlike bulk configuration, an
// unregistered id is an error.
func (e *Engine) ConfigureRule(id string, severity domain.Severity, options map[string]any) error {
	entry, ok := e.registry.entries[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRule, id)
	}
	if severity == domain.SeverityOff {
		delete(e.instances, id)
		return nil
	}
	inst, err := entry.factory(severity, options)
	if err != nil {
		return fmt.Errorf("configuring %s: %w", id, err)
	}
	e.instances[id] = inst
	return nil
}

// Rule returns the materialized instance for id, if one is active.
func (e *Engine) Rule(id string) (*Rule, bool) {
	inst, ok := e.instances[id]
	return inst, ok
}

// EnabledRules returns the active instances in registration order.
func (e *Engine) EnabledRules() []*Rule {
	active := make([]*Rule, 0, len(e.instances))
	for _, id := range e.registry.order {
		if inst, ok := e.instances[id]; ok {
			active = append(active, inst)
		}
	}
	return active
}

// RegisteredIDs returns every known rule id in registration order,
// regardless of whether an instance is active.
func (e *Engine) RegisteredIDs() []string { return e.registry.IDs() }

// Descriptors returns every registered descriptor in registration order.
func (e *Engine) Descriptors() []Descriptor { return e.registry.Descriptors() }

// Lint evaluates one outcome. The result is seeded with the outcome's parse
// errors, then every enabled instance whose language support matches runs in
// registration order. Violations keep node order within a rule.
func (e *Engine) Lint(out *domain.Outcome) *domain.LintResult {
	result := domain.NewLintResult(out.FilePath)
	result.ParseErrors = append(result.ParseErrors, out.ParseErrors...)

	for _, rule := range e.EnabledRules() {
		if !rule.SupportsLanguage(out.Language) {
			continue
		}
		for _, v := range rule.Check(out) {
			result.Add(v)
		}
	}
	return result
}

// LintMany folds outcomes into a report, preserving input order.
func (e *Engine) LintMany(outcomes []*domain.Outcome) *domain.LintReport {
	report := domain.NewLintReport()
	for _, out := range outcomes {
		report.Add(e.Lint(out))
	}
	return report
}
