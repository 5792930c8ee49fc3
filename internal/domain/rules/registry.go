package rules

import (
	"errors"
	"fmt"
	"slices"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

// Factory builds a rule instance from a resolved severity and raw options.
// Factories validate and decode options, so a bad config fails at
// materialization time rather than mid-lint.
type Factory func(severity domain.Severity, options map[string]any) (*Rule, error)

// Registry is an ordered collection of rule descriptors and factories.
// Registration order is evaluation order, which keeps reports deterministic
// across runs.
type Registry struct {
	order   []string
	entries map[string]registryEntry
}

type registryEntry struct {
	desc    Descriptor
	factory Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[string]registryEntry{}}
}

// Register adds a rule under its descriptor id. A duplicate id is an error:
// two factories for one id would make evaluation order ambiguous.
func (g *Registry) Register(desc Descriptor, factory Factory) error {
	if desc.ID == "" {
		return errors.New("rule descriptor has no id")
	}
	if factory == nil {
		return fmt.Errorf("rule %q has no factory", desc.ID)
	}
	if _, exists := g.entries[desc.ID]; exists {
		return fmt.Errorf("rule %q already registered", desc.ID)
	}
	g.order = append(g.order, desc.ID)
	g.entries[desc.ID] = registryEntry{desc: desc, factory: factory}
	return nil
}

// MustRegister is Register for wiring known-good rules at startup.
func (g *Registry) MustRegister(desc Descriptor, factory Factory) {
	if err := g.Register(desc, factory); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor and factory registered under id.
func (g *Registry) Lookup(id string) (Descriptor, Factory, bool) {
	entry, ok := g.entries[id]
	if !ok {
		return Descriptor{}, nil, false
	}
	return entry.desc, entry.factory, true
}

// IDs returns every registered rule id in registration order.
func (g *Registry) IDs() []string {
	return slices.Clone(g.order)
}

// Descriptors returns every registered descriptor in registration order.
func (g *Registry) Descriptors() []Descriptor {
	descs := make([]Descriptor, 0, len(g.order))
	for _, id := range g.order {
		descs = append(descs, g.entries[id].desc)
	}
	return descs
}

// Len returns the number of registered rules.
func (g *Registry) Len() int { return len(g.order) }

// DefaultRegistry returns a registry holding the built-in rule library in
// its canonical order: complexity, naming, structure.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.MustRegister(maxComplexityDesc, NewMaxComplexity)
	reg.MustRegister(maxFunctionLinesDesc, NewMaxFunctionLines)
	reg.MustRegister(maxParamsDesc, NewMaxParams)
	reg.MustRegister(functionNamingDesc, NewFunctionNaming)
	reg.MustRegister(classNamingDesc, NewClassNaming)
	reg.MustRegister(maxFileLinesDesc, NewMaxFileLines)
	reg.MustRegister(maxClassesPerFileDesc, NewMaxClassesPerFile)
	reg.MustRegister(maxFunctionsPerFileDesc, NewMaxFunctionsPerFile)
	return reg
}
