package semantic

import (
	"sync"

	"github.com/Oeditus/metastatic-sub006/model"
)

// entry is one registered pattern plus the (domain, language) it was
// registered under, kept in registration order (spec §4.4 "Match
// precedence is insertion order").
type entry struct {
	domain   model.Domain
	language model.Language
	pattern  *Pattern
}

// Registry is the process-wide keyed store of C5: (domain, language_tag)
// -> list[pattern], with insertion order preserved and observable across
// concurrent reads (spec §5 "Semantic pattern registry"). A reader-writer
// lock serializes writes while allowing concurrent reads, the same
// discipline as the adapter registry (C3).
type Registry struct {
	mu      sync.RWMutex
	entries []entry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds pattern under (domain, language) at the end of the
// insertion-ordered list. Returns an error if pattern's guard fails to
// compile.
func (r *Registry) Register(domain model.Domain, language model.Language, pattern *Pattern) error {
	if err := pattern.compile(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry{domain: domain, language: language, pattern: pattern})
	return nil
}

// Unregister removes every pattern registered for (domain, language) whose
// Matcher equals matcher.
func (r *Registry) Unregister(domain model.Domain, language model.Language, matcher string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.entries[:0:0]
	for _, e := range r.entries {
		if e.domain == domain && e.language == language && e.pattern.Matcher == matcher {
			continue
		}
		out = append(out, e)
	}
	r.entries = out
}

// Patterns returns the patterns registered for (domain, language), in
// insertion order. Used by tests and by available-pattern introspection.
func (r *Registry) Patterns(domain model.Domain, language model.Language) []*Pattern {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Pattern
	for _, e := range r.entries {
		if e.domain == domain && e.language == language {
			out = append(out, e.pattern)
		}
	}
	return out
}

// Classify finds the first pattern registered for language (searched
// across all domains, in insertion order, spec §4.4 step 1) whose matcher
// matches name and whose guard (if any) evaluates true against args, and
// builds the OpKind it describes. Returns ok=false when nothing matches.
func (r *Registry) Classify(language model.Language, name string, args []*model.Node, async bool) (model.OpKind, bool, error) {
	r.mu.RLock()
	candidates := make([]entry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.language == language {
			candidates = append(candidates, e)
		}
	}
	r.mu.RUnlock()

	for _, e := range candidates {
		p := e.pattern
		if !p.matches(name) {
			continue
		}
		target, hasTarget := extractTarget(p.ExtractTarget, name, args)
		env := guardEnv{Name: name, Target: target, Async: async}
		env.Args = make([]interface{}, len(args))
		for i, a := range args {
			env.Args[i] = argToValue(a)
		}
		ok, err := p.evalGuard(env)
		if err != nil {
			return model.OpKind{}, false, err
		}
		if !ok {
			continue
		}
		return model.OpKind{
			Domain:    e.domain,
			Operation: p.Operation,
			Target:    target,
			HasTarget: hasTarget,
			Async:     async,
			Framework: p.Framework,
		}, true, nil
	}
	return model.OpKind{}, false, nil
}
