package rules

import (
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

// Target selects how a rule is dispatched against an outcome.
type Target int

const (
	// TargetFile rules run once per outcome.
	TargetFile Target = iota
	// TargetNodes rules run once per node whose kind is in the descriptor's
	// applicable set.
	TargetNodes
)

// Descriptor is the immutable metadata of a rule. Ids follow the
// "<category>/<name>" convention and are unique within a registry.
type Descriptor struct {
	ID              string
	Name            string
	Description     string
	Category        string
	DefaultSeverity domain.Severity
	DefaultOptions  map[string]any
	// NodeKinds limits node-targeted dispatch; empty means all kinds.
	NodeKinds []domain.NodeKind
	// Languages limits evaluation; empty means all languages.
	Languages []string
}

type (
	// CheckFileFunc evaluates a whole-file rule against one outcome.
	CheckFileFunc func(r *Rule, out *domain.Outcome) []domain.Violation
	// CheckNodeFunc evaluates a node-targeted rule against one node.
	CheckNodeFunc func(r *Rule, out *domain.Outcome, node domain.Node) []domain.Violation
)

// Rule is one materialized rule instance: a descriptor bound to a resolved
// severity and option set. Instances are immutable after construction;
// reconfiguration always builds a replacement through the factory.
type Rule struct {
	desc      Descriptor
	severity  domain.Severity
	options   map[string]any
	target    Target
	checkFile CheckFileFunc
	checkNode CheckNodeFunc
}

// NewFileRule builds a whole-file rule instance.
func NewFileRule(desc Descriptor, severity domain.Severity, options map[string]any, check CheckFileFunc) *Rule {
	return &Rule{desc: desc, severity: severity, options: options, target: TargetFile, checkFile: check}
}

// NewNodeRule builds a node-targeted rule instance.
func NewNodeRule(desc Descriptor, severity domain.Severity, options map[string]any, check CheckNodeFunc) *Rule {
	return &Rule{desc: desc, severity: severity, options: options, target: TargetNodes, checkNode: check}
}

func (r *Rule) Descriptor() Descriptor    { return r.desc }
func (r *Rule) ID() string                { return r.desc.ID }
func (r *Rule) Severity() domain.Severity { return r.severity }
func (r *Rule) Options() map[string]any   { return r.options }
func (r *Rule) Target() Target            { return r.target }

// Enabled reports whether the instance participates in linting. The engine
// never materializes OFF instances, so this is a guard for hand-built rules.
func (r *Rule) Enabled() bool { return r.severity != domain.SeverityOff }

// SupportsLanguage reports whether the rule applies to the given language
// tag. An empty descriptor language list means all languages.
func (r *Rule) SupportsLanguage(language string) bool {
	if len(r.desc.Languages) == 0 {
		return true
	}
	for _, lang := range r.desc.Languages {
		if strings.EqualFold(lang, language) {
			return true
		}
	}
	return false
}

func (r *Rule) appliesTo(kind domain.NodeKind) bool {
	if len(r.desc.NodeKinds) == 0 {
		return true
	}
	for _, k := range r.desc.NodeKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Check evaluates the rule against one outcome. Node-targeted rules iterate
// the outcome's nodes in order, filtered by the descriptor's kinds.
func (r *Rule) Check(out *domain.Outcome) []domain.Violation {
	switch r.target {
	case TargetFile:
		return r.checkFile(r, out)
	case TargetNodes:
		var violations []domain.Violation
		for _, node := range out.Nodes {
			if !r.appliesTo(node.Kind) {
				continue
			}
			violations = append(violations, r.checkNode(r, out, node)...)
		}
		return violations
	}
	return nil
}

// violation stamps the rule id, resolved severity, and file path onto v.
func (r *Rule) violation(out *domain.Outcome, v domain.Violation) domain.Violation {
	v.RuleID = r.desc.ID
	v.Severity = r.severity
	v.FilePath = out.FilePath
	return v
}

// DecodeOptions fills a typed options struct from the raw configuration map.
// Fields missing from the map keep whatever defaults the struct was seeded
// with; unknown keys are ignored so configs can carry extra metadata.
func DecodeOptions(raw map[string]any, into any) error {
	if len(raw) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           into,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}
