// Package metastatic is Metastatic's root library API: quote, unquote,
// translate and analyze (spec §6.1), backed by the adapter registry (C3),
// the semantic pattern registry (C5), and the four C7 analyses. The CLI
// (package cmd) is a thin wrapper over exactly these four calls.
package metastatic

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Oeditus/metastatic-sub006/adapter"
	"github.com/Oeditus/metastatic-sub006/analyzer/complexity"
	"github.com/Oeditus/metastatic-sub006/analyzer/purity"
	"github.com/Oeditus/metastatic-sub006/analyzer/state"
	"github.com/Oeditus/metastatic-sub006/analyzer/taint"
	"github.com/Oeditus/metastatic-sub006/model"
	"github.com/Oeditus/metastatic-sub006/semantic"
	"github.com/Oeditus/metastatic-sub006/supplemental"
)

// Engine bundles the registries quote/unquote/translate/analyze need.
// Callers that want isolated test instances (spec §9 design notes)
// construct their own Engine rather than relying on a package-level
// singleton. Supplementals may be nil: Translate then skips the
// per-construct compatibility check entirely (spec §4.7 is opt-in).
type Engine struct {
	Adapters      *adapter.Registry
	Semantics     *semantic.Registry
	Supplementals *supplemental.Registry
	cache         *lru.Cache[string, any]
}

// NewEngine wires a fresh Engine around the given registries, with an
// LRU-bounded analysis-result cache (SPEC_FULL.md §12 item 2).
func NewEngine(adapters *adapter.Registry, semantics *semantic.Registry) *Engine {
	cache, _ := lru.New[string, any](512)
	return &Engine{Adapters: adapters, Semantics: semantics, cache: cache}
}

// WithSupplementals attaches a supplemental registry, returning e for
// chaining. Translate then refuses targets that can't represent every
// non-core construct the source used (spec §4.7).
func (e *Engine) WithSupplementals(s *supplemental.Registry) *Engine {
	e.Supplementals = s
	return e
}

// AnalyzerTag selects which C7 analysis Analyze runs.
type AnalyzerTag string

const (
	AnalyzerPurity           AnalyzerTag = "purity"
	AnalyzerComplexity       AnalyzerTag = "complexity"
	AnalyzerTaint            AnalyzerTag = "taint"
	AnalyzerStateManagement  AnalyzerTag = "state_management"
)

// AnalyzeOpts configures a single Analyze call. Zero value uses every
// analyzer's own defaults (e.g. complexity.DefaultThresholds).
type AnalyzeOpts struct {
	ComplexityThresholds complexity.Thresholds
}

// Quote parses source in language lang and abstracts it into a MetaAST
// Document (spec §6.1 quote).
func (e *Engine) Quote(source string, lang model.Language) (*model.Document, error) {
	if !model.IsSupported(lang) {
		return nil, model.UnsupportedLanguage(string(lang))
	}
	a, ok := e.Adapters.Get(lang)
	if !ok {
		return nil, model.UnsupportedLanguage(string(lang))
	}

	native, err := a.Parse(source)
	if err != nil {
		return nil, err
	}
	meta, err := a.ToMeta(native)
	if err != nil {
		return nil, err
	}

	doc := model.NewDocument(meta.AST, lang, meta.Metadata).WithOriginalSource(source)

	if e.Semantics != nil {
		enriched, err := semantic.Enrich(doc, e.Semantics)
		if err != nil {
			return nil, err
		}
		doc = enriched
	}

	return doc, nil
}

// Unquote reifies ast back into source text for the target language
// (spec §6.1 unquote).
func (e *Engine) Unquote(ast *model.Node, meta model.Metadata, lang model.Language) (string, error) {
	if !model.IsSupported(lang) {
		return "", model.UnsupportedLanguage(string(lang))
	}
	a, ok := e.Adapters.Get(lang)
	if !ok {
		return "", model.UnsupportedLanguage(string(lang))
	}

	native, err := a.FromMeta(ast, meta)
	if err != nil {
		return "", err
	}
	return a.Unparse(native)
}

// Translate round-trips source from one language to another:
// unquote(quote(source, from), to) (spec §6.1 translate). If e has a
// supplemental registry attached, a source using a non-core construct
// the target has no registered module for is rejected before unquote
// runs, rather than silently dropping the construct (spec §4.7,
// scenario 7's conflict/coverage contract extended to translate).
func (e *Engine) Translate(source string, from, to model.Language) (string, error) {
	doc, err := e.Quote(source, from)
	if err != nil {
		return "", err
	}
	if e.Supplementals != nil && !e.Supplementals.Compatible(doc, to) {
		return "", model.ValidationError("", fmt.Sprintf("%s cannot represent every non-core construct used by this %s source", to, from))
	}
	return e.Unquote(doc.AST, doc.Metadata, to)
}

// Analyze runs the analyzer named by tag over doc's AST, per spec §6.1
// analyze. Results are memoized in Engine's LRU cache, keyed by a content
// hash of doc plus tag and opts (SPEC_FULL.md §12 item 2); re-running the
// same analysis on the same document is served from cache.
func (e *Engine) Analyze(doc *model.Document, tag AnalyzerTag, opts AnalyzeOpts) (any, error) {
	key := cacheKey(doc, tag, opts)
	if e.cache != nil {
		if v, ok := e.cache.Get(key); ok {
			return v, nil
		}
	}

	var result any
	switch tag {
	case AnalyzerPurity:
		result = purity.Analyze(doc.AST, doc.Language)
	case AnalyzerComplexity:
		if (opts.ComplexityThresholds != complexity.Thresholds{}) {
			result = complexity.AnalyzeWithThresholds(doc.AST, opts.ComplexityThresholds)
		} else {
			result = complexity.Analyze(doc.AST)
		}
	case AnalyzerTaint:
		result = taint.Analyze(doc.AST, doc.Language)
	case AnalyzerStateManagement:
		result = state.Analyze(doc.AST)
	default:
		return nil, model.ValidationError("", fmt.Sprintf("unknown analyzer tag %q", tag))
	}

	if e.cache != nil {
		e.cache.Add(key, result)
	}
	return result, nil
}

// DetectLanguage exposes the adapter registry's extension lookup as a
// library function (SPEC_FULL.md §12 item 5), rather than keeping it
// internal to the CLI only.
func (e *Engine) DetectLanguage(filename string) (model.Language, bool) {
	return e.Adapters.DetectLanguage(filename)
}

func cacheKey(doc *model.Document, tag AnalyzerTag, opts AnalyzeOpts) string {
	h := sha256.New()
	hashNode(h, doc.AST)
	fmt.Fprintf(h, "|tag=%s|cw=%d|ce=%d|kw=%d|ke=%d|nw=%d|ne=%d|lw=%d|le=%d",
		tag,
		opts.ComplexityThresholds.CyclomaticWarn, opts.ComplexityThresholds.CyclomaticError,
		opts.ComplexityThresholds.CognitiveWarn, opts.ComplexityThresholds.CognitiveError,
		opts.ComplexityThresholds.NestingWarn, opts.ComplexityThresholds.NestingError,
		opts.ComplexityThresholds.LogicalLOCWarn, opts.ComplexityThresholds.LogicalLOCError,
	)
	return hex.EncodeToString(h.Sum(nil))
}

// hashNode feeds a canonical structural encoding of n into h: tag,
// sorted metadata keys/values, then children in order. Two structurally
// equal trees always produce the same hash regardless of map iteration
// order.
func hashNode(h interface{ Write([]byte) (int, error) }, n *model.Node) {
	if n == nil {
		fmt.Fprint(h, "<nil>")
		return
	}
	fmt.Fprintf(h, "(%s", n.Tag)

	keys := make([]string, 0, len(n.Metadata))
	for k := range n.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(h, "[%s=%v]", k, n.Metadata[k])
	}

	for _, c := range n.Children {
		hashNode(h, c)
	}
	fmt.Fprint(h, ")")
}
