package adapter

import (
	"sort"
	"sync"

	"github.com/Oeditus/metastatic-sub006/model"
)

// Registry is the process-wide keyed store mapping a language tag to its
// Adapter, plus an auxiliary extension → language index (spec §4.2, §5).
// Reads are frequent and non-blocking under a read lock; writes
// (Register/Unregister) are rare and serialized under a write lock,
// mirroring the teacher's LanguageRegistry (graph/callgraph/language_adapter.go).
type Registry struct {
	mu        sync.RWMutex
	adapters  map[model.Language]Adapter
	byExt     map[string]model.Language
}

// NewRegistry returns an empty registry. Callers that want isolated test
// registries (rather than a single process-wide singleton, per spec §9
// design notes) construct their own instance.
func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[model.Language]Adapter),
		byExt:    make(map[string]model.Language),
	}
}

// Register validates that adapter exposes a usable contract and adds it
// under its Name(), indexing every extension it declares. After a
// successful Register, subsequent Get/DetectLanguage calls from any
// goroutine observe the new adapter (spec testable property 5).
func (r *Registry) Register(a Adapter) error {
	if a == nil {
		return model.ValidationError("", "cannot register a nil adapter")
	}
	if a.Name() == "" {
		return model.ValidationError("", "adapter must declare a non-empty language tag")
	}
	if len(a.FileExtensions()) == 0 {
		return model.ValidationError("", "adapter must declare at least one file extension")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.adapters[a.Name()] = a
	for _, ext := range a.FileExtensions() {
		r.byExt[ext] = a.Name()
	}
	return nil
}

// Unregister removes lang's adapter and every extension it owned.
func (r *Registry) Unregister(lang model.Language) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.adapters[lang]
	if !ok {
		return
	}
	delete(r.adapters, lang)
	for _, ext := range a.FileExtensions() {
		if r.byExt[ext] == lang {
			delete(r.byExt, ext)
		}
	}
}

// Get looks up the adapter registered for lang.
func (r *Registry) Get(lang model.Language) (Adapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.adapters[lang]
	return a, ok
}

// DetectLanguage returns the language tag whose adapter owns filename's
// extension, or ("", false) if no registered adapter claims it (spec
// scenario 8: unknown_extension).
func (r *Registry) DetectLanguage(filename string) (model.Language, bool) {
	ext := extensionOf(filename)
	if ext == "" {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	lang, ok := r.byExt[ext]
	return lang, ok
}

func extensionOf(filename string) string {
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '.' {
			return filename[i:]
		}
		if filename[i] == '/' {
			break
		}
	}
	return ""
}

// Languages lists every registered language tag, sorted for deterministic
// iteration (e.g. CLI help text, tests).
func (r *Registry) Languages() []model.Language {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Language, 0, len(r.adapters))
	for l := range r.adapters {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
