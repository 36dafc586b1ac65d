package supplemental

import (
	"sort"
	"sync"

	"github.com/Oeditus/metastatic-sub006/analyzer"
	"github.com/Oeditus/metastatic-sub006/model"
)

type key struct {
	language  model.Language
	construct string
}

// Registry enforces one supplemental per (language, construct) (spec
// §4.7) under the same reader-writer discipline as the adapter (C3) and
// semantic pattern (C5) registries: non-blocking concurrent reads, rare
// serialized writes, conflict detection under the write lock (spec §5).
type Registry struct {
	mu      sync.RWMutex
	modules map[string]*Module
	index   map[key]string // (language, construct) -> owning module name
}

func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]*Module),
		index:   make(map[key]string),
	}
}

// Register adds m, claiming every (m.Info.Language, construct) pair it
// declares. If any pair is already claimed by a different module, no
// partial registration occurs: Register returns a ConflictError naming
// both modules and the registry is left unchanged (spec §4.7, scenario 7).
func (r *Registry) Register(m Module) error {
	if m.Info.Name == "" {
		return model.ValidationError("", "supplemental must declare a non-empty name")
	}
	if m.Info.Language == "" {
		return model.ValidationError("", "supplemental must declare a target language")
	}
	if len(m.Info.Constructs) == 0 {
		return model.ValidationError("", "supplemental must claim at least one construct")
	}
	if m.Transform == nil {
		return model.ValidationError("", "supplemental must provide a Transform")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range m.Info.Constructs {
		k := key{language: m.Info.Language, construct: c}
		if owner, taken := r.index[k]; taken && owner != m.Info.Name {
			return model.ConflictError(c, string(m.Info.Language), owner, m.Info.Name)
		}
	}

	mod := m
	r.modules[m.Info.Name] = &mod
	for _, c := range m.Info.Constructs {
		r.index[key{language: m.Info.Language, construct: c}] = m.Info.Name
	}
	return nil
}

// Unregister removes name's module and every index entry it owned.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.modules[name]
	if !ok {
		return
	}
	delete(r.modules, name)
	for _, c := range m.Info.Constructs {
		k := key{language: m.Info.Language, construct: c}
		if r.index[k] == name {
			delete(r.index, k)
		}
	}
}

// Get looks up the module claiming construct for language, if any.
func (r *Registry) Get(language model.Language, construct string) (*Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.index[key{language: language, construct: construct}]
	if !ok {
		return nil, false
	}
	return r.modules[name], true
}

// AvailableConstructs returns the sorted list of constructs claimed by
// any registered module for language (spec §4.7).
func (r *Registry) AvailableConstructs(language model.Language) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := map[string]bool{}
	for k := range r.index {
		if k.language == language {
			seen[k.construct] = true
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Compatible reports whether every non-core construct in doc — every
// language_specific node's hint — has a registered supplemental for
// targetLanguage (spec §4.7).
func (r *Registry) Compatible(doc *model.Document, targetLanguage model.Language) bool {
	if doc == nil || doc.AST == nil {
		return true
	}
	compatible := true
	analyzer.Walk(doc.AST, nil, func(n *model.Node, ctx interface{}) interface{} {
		if n.Tag != model.TagLanguageSpecific {
			return ctx
		}
		hint, _ := n.Metadata["hint"].(string)
		if hint == "" {
			return ctx
		}
		if _, ok := r.Get(targetLanguage, hint); !ok {
			compatible = false
		}
		return ctx
	}, nil)
	return compatible
}
