// Package parser provides the language parser adapters and the resolver
// that maps file extensions to them.
package parser

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

// Registry implements domain.ParserResolver over the built-in language
// parsers. Languages keep registration order so listings are stable.
type Registry struct {
	order  []string
	byLang map[string]domain.SourceParser
	byExt  map[string]string
}

// New returns a registry with every supported language wired in.
func New() *Registry {
	r := &Registry{
		byLang: map[string]domain.SourceParser{},
		byExt:  map[string]string{},
	}
	r.register(NewGoParser())
	r.register(NewPythonParser())
	r.register(NewJavaScriptParser())
	r.register(NewTypeScriptParser())
	return r
}

func (r *Registry) register(p domain.SourceParser) {
	lang := p.Language()
	r.order = append(r.order, lang)
	r.byLang[lang] = p
	for _, ext := range p.Extensions() {
		r.byExt[ext] = lang
	}
}

// ForPath resolves a parser from the file extension.
func (r *Registry) ForPath(path string) (domain.SourceParser, bool) {
	lang, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, false
	}
	return r.ForLanguage(lang)
}

// ForLanguage resolves a parser from a language tag, case-insensitively.
func (r *Registry) ForLanguage(language string) (domain.SourceParser, bool) {
	p, ok := r.byLang[strings.ToLower(language)]
	return p, ok
}

// Languages returns the supported language tags in registration order.
func (r *Registry) Languages() []string {
	return slices.Clone(r.order)
}

// Extensions returns every recognized file extension, grouped by language in
// registration order.
func (r *Registry) Extensions() []string {
	var exts []string
	for _, lang := range r.order {
		exts = append(exts, r.byLang[lang].Extensions()...)
	}
	return exts
}
