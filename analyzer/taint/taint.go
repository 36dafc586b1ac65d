// Package taint implements the taint-flow analysis of spec §4.6.3: track
// data flow from sources (user input, request params, environment) to
// sinks (eval, SQL construction, shell execution, template rendering).
//
// The scan itself is a direct MetaAST adaptation of the teacher's
// intraprocedural forward data-flow pass
// (sast-engine/graph/callgraph/analysis/taint/analyzer.go): a mutable
// TaintState keyed by variable name, confidence decaying 0.7x per
// non-identity call hop, sanitizer calls clearing taint. The teacher
// walks a flat []*core.Statement; MetaAST has no such flat list, so the
// walk here recurses through block/conditional/loop children directly
// (which already carry source order) instead of over a precomputed
// statement slice.
package taint

import "github.com/Oeditus/metastatic-sub006/model"

// VarTaint records why a variable is tainted and with what confidence.
type VarTaint struct {
	Source     string
	Confidence float64
}

// TaintState is the mutable, per-analysis taint map, directly mirroring
// the teacher's TaintState (same method names/semantics).
type TaintState struct {
	Variables map[string]*VarTaint
}

func NewTaintState() *TaintState {
	return &TaintState{Variables: make(map[string]*VarTaint)}
}

func (ts *TaintState) SetTainted(name, source string, confidence float64) {
	ts.Variables[name] = &VarTaint{Source: source, Confidence: confidence}
}

func (ts *TaintState) SetUntainted(name string) {
	delete(ts.Variables, name)
}

func (ts *TaintState) Get(name string) (*VarTaint, bool) {
	v, ok := ts.Variables[name]
	return v, ok
}

func (ts *TaintState) IsTainted(name string) bool {
	_, ok := ts.Variables[name]
	return ok
}

// Risk is one of the four flow severities of spec §4.6.3.
type Risk string

const (
	RiskCritical Risk = "critical"
	RiskHigh     Risk = "high"
	RiskMedium   Risk = "medium"
	RiskLow      Risk = "low"
)

// Flow is one reported source-to-sink taint path (spec §4.6.3).
type Flow struct {
	Source         string
	Sink           string
	Risk           Risk
	Path           []string
	Recommendation string
}

// Result is the full taint report for an analyzed subtree.
type Result struct {
	Flows []Flow
}

// Analyze scans n for taint flows in language lang.
func Analyze(n *model.Node, lang model.Language) Result {
	ts := NewTaintState()
	var flows []Flow
	scan(n, ts, lang, &flows)
	return Result{Flows: flows}
}

// scan evaluates n, registering any sink flows it finds along the way
// into flows, and returns whether n's own value is tainted (and if so,
// its originating source and confidence) — used when n is the RHS of an
// assignment or an argument of an enclosing call.
func scan(n *model.Node, ts *TaintState, lang model.Language, flows *[]Flow) (bool, string, float64) {
	if n == nil {
		return false, "", 0
	}
	switch n.Tag {
	case model.TagBlock:
		for _, c := range n.Children {
			scan(c, ts, lang, flows)
		}
		return false, "", 0
	case model.TagAssignment:
		return scanAssignment(n, ts, lang, flows)
	case model.TagVariable:
		name, _ := n.Metadata["name"].(string)
		if vt, ok := ts.Get(name); ok {
			return true, vt.Source, vt.Confidence
		}
		return false, "", 0
	case model.TagFunctionCall:
		return scanCall(n, ts, lang, flows)
	default:
		tainted, source, conf := false, "", 0.0
		for _, c := range n.Children {
			t, s, cf := scan(c, ts, lang, flows)
			if t && !tainted {
				tainted, source, conf = t, s, cf
			}
		}
		return tainted, source, conf
	}
}

func scanAssignment(n *model.Node, ts *TaintState, lang model.Language, flows *[]Flow) (bool, string, float64) {
	target, value := n.Children[0], n.Children[1]
	tainted, source, conf := scan(value, ts, lang, flows)
	if target != nil && target.Tag == model.TagVariable {
		name, _ := target.Metadata["name"].(string)
		if tainted {
			ts.SetTainted(name, source, conf)
		} else {
			ts.SetUntainted(name)
		}
	}
	return tainted, source, conf
}

func scanCall(n *model.Node, ts *TaintState, lang model.Language, flows *[]Flow) (bool, string, float64) {
	name, _ := n.Metadata["name"].(string)

	var argTainted bool
	var argSource string
	var argConf float64
	for _, arg := range n.Children {
		t, s, c := scan(arg, ts, lang, flows)
		if t && !argTainted {
			argTainted, argSource, argConf = t, s, c
		}
	}

	if kind, ok := matchSink(lang, name); ok && argTainted {
		*flows = append(*flows, Flow{
			Source:         argSource,
			Sink:           name,
			Risk:           riskFor(kind),
			Path:           []string{argSource, name},
			Recommendation: recommendationFor(kind),
		})
	}

	if isSanitizer(lang, name) {
		return false, "", 0
	}

	if isSource(lang, name) {
		return true, name, 1.0
	}

	if argTainted && !isNonPropagator(lang, name) {
		return true, argSource, argConf * 0.7
	}
	return false, "", 0
}

func riskFor(kind string) Risk {
	switch kind {
	case "eval", "shell":
		return RiskCritical
	case "sql":
		return RiskHigh
	case "template":
		return RiskMedium
	default:
		return RiskLow
	}
}

func recommendationFor(kind string) string {
	switch kind {
	case "eval":
		return "avoid evaluating untrusted input; replace eval/exec with a safe parser"
	case "shell":
		return "avoid building shell commands from untrusted input; use a parameterized subprocess API"
	case "sql":
		return "use parameterized queries instead of string-built SQL"
	case "template":
		return "escape or sanitize untrusted input before rendering it into a template"
	default:
		return "sanitize untrusted input before use"
	}
}
