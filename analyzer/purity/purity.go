// Package purity implements the purity analysis of spec §4.6.1: classify
// a MetaAST subtree as pure, impure (with an effect set), or unknown.
package purity

import (
	"sort"

	"github.com/Oeditus/metastatic-sub006/analyzer"
	"github.com/Oeditus/metastatic-sub006/model"
)

// Confidence mirrors spec §4.6.1's {high, medium, low} result field.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Effect is one of the side-effect categories the detection rules add.
type Effect string

const (
	EffectIO            Effect = "io"
	EffectNondeterminism Effect = "nondeterminism"
	EffectDB            Effect = "db"
	EffectNetwork       Effect = "network"
	EffectFile          Effect = "file"
	EffectQueue         Effect = "queue"
	EffectMutation      Effect = "mutation"
	EffectExceptions    Effect = "exceptions"
)

// domainEffect maps an op_kind.domain to the effect it contributes (spec
// §4.6.1: "db, http, file, external_api, queue → add the corresponding
// effect (:db, :network, etc.)"). http and external_api both read as
// network traffic from a purity standpoint.
var domainEffect = map[model.Domain]Effect{
	model.DomainDB:          EffectDB,
	model.DomainHTTP:        EffectNetwork,
	model.DomainExternalAPI: EffectNetwork,
	model.DomainFile:        EffectFile,
	model.DomainQueue:       EffectQueue,
}

// ioNames and nondeterministicNames are the language-specific print/log
// and random/time/date call-name lists the detection rules match against.
// Grounded on the same kind of per-language literal tables the teacher
// keeps for framework detection (core/frameworks.go).
var ioNames = map[model.Language]map[string]bool{
	model.Python:  namesOf("print", "logging.debug", "logging.info", "logging.warning", "logging.error"),
	model.Elixir:  namesOf("IO.puts", "IO.inspect", "IO.write", "Logger.info", "Logger.debug", "Logger.warn", "Logger.error"),
	model.Erlang:  namesOf("io:format", "io:fwrite", "logger:info", "logger:debug", "logger:warning", "logger:error"),
	model.Ruby:    namesOf("puts", "p", "pp", "print", "Logger.info", "Logger.debug"),
	model.Haskell: namesOf("putStrLn", "print", "putStr"),
}

var nondeterministicNames = map[model.Language]map[string]bool{
	model.Python:  namesOf("random.random", "random.randint", "random.choice", "time.time", "datetime.now", "datetime.utcnow"),
	model.Elixir:  namesOf(":rand.uniform", "DateTime.utc_now", "DateTime.now"),
	model.Erlang:  namesOf("rand:uniform", "erlang:now", "os:timestamp"),
	model.Ruby:    namesOf("rand", "Time.now", "Random.rand"),
	model.Haskell: namesOf("getCurrentTime", "randomIO", "randomRIO"),
}

func namesOf(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// Result is the purity verdict for the analyzed subtree (spec §4.6.1).
type Result struct {
	Pure       bool
	Effects    []Effect
	Unknown    []string
	Confidence Confidence
}

// state is the accumulator threaded through analyzer.Walk: a set of
// effects seen so far, a set of unknown call names, and the current loop
// nesting depth (spec's `in_loop` context).
type state struct {
	effects  map[Effect]bool
	unknown  map[string]bool
	loopDepth int
}

func newState() state {
	return state{effects: map[Effect]bool{}, unknown: map[string]bool{}}
}

// Analyze walks n and produces the purity Result of spec §4.6.1.
func Analyze(n *model.Node, lang model.Language) Result {
	final := analyzer.Walk(n, newState(), enter(lang), leave)
	st := final.(state)

	effects := make([]Effect, 0, len(st.effects))
	for e := range st.effects {
		effects = append(effects, e)
	}
	sort.Slice(effects, func(i, j int) bool { return effects[i] < effects[j] })

	unknown := make([]string, 0, len(st.unknown))
	for u := range st.unknown {
		unknown = append(unknown, u)
	}
	sort.Strings(unknown)

	pure := len(effects) == 0 && len(unknown) == 0
	var confidence Confidence
	switch {
	case len(effects) > 0:
		confidence = ConfidenceHigh
	case len(unknown) > 0:
		confidence = ConfidenceMedium
	default:
		confidence = ConfidenceHigh
	}

	return Result{Pure: pure, Effects: effects, Unknown: unknown, Confidence: confidence}
}

func enter(lang model.Language) analyzer.Handler {
	return func(n *model.Node, ctx interface{}) interface{} {
		st := ctx.(state)
		switch n.Tag {
		case model.TagLoop:
			st.loopDepth++
		case model.TagExceptionHandling:
			st.effects = withEffect(st.effects, EffectExceptions)
		case model.TagAssignment:
			if st.loopDepth > 0 {
				st.effects = withEffect(st.effects, EffectMutation)
			}
		case model.TagFunctionCall:
			name, _ := n.Metadata["name"].(string)
			classified := false
			if ioNames[lang][name] {
				st.effects = withEffect(st.effects, EffectIO)
				classified = true
			}
			if nondeterministicNames[lang][name] {
				st.effects = withEffect(st.effects, EffectNondeterminism)
				classified = true
			}
			if kind, ok := model.GetOpKind(n); ok {
				if eff, ok := domainEffect[kind.Domain]; ok {
					st.effects = withEffect(st.effects, eff)
				}
				classified = true
			}
			if !classified && name != "" && !hasDot(name) {
				st.unknown = withUnknown(st.unknown, name)
			}
		}
		return st
	}
}

func leave(n *model.Node, ctx interface{}) interface{} {
	st := ctx.(state)
	if n.Tag == model.TagLoop {
		st.loopDepth--
	}
	return st
}

// withEffect/withUnknown copy-on-write the accumulator maps so each
// returned state value is safe to treat as immutable, matching the
// threading discipline the rest of Metastatic's core uses.
func withEffect(m map[Effect]bool, e Effect) map[Effect]bool {
	out := make(map[Effect]bool, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[e] = true
	return out
}

func withUnknown(m map[string]bool, name string) map[string]bool {
	out := make(map[string]bool, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[name] = true
	return out
}

func hasDot(name string) bool {
	for _, r := range name {
		if r == '.' || r == ':' {
			return true
		}
	}
	return false
}
