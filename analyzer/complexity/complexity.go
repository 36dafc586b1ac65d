// Package complexity implements the complexity analysis of spec §4.6.2:
// cyclomatic, cognitive, nesting depth, Halstead metrics, and logical LoC,
// with per-function breakdown and threshold-driven findings.
package complexity

import (
	"fmt"
	"math"

	"github.com/Oeditus/metastatic-sub006/analyzer"
	"github.com/Oeditus/metastatic-sub006/model"
)

// Thresholds are the default warning/error boundaries from spec §4.6.2.
type Thresholds struct {
	CyclomaticWarn, CyclomaticError int
	CognitiveWarn, CognitiveError   int
	NestingWarn, NestingError       int
	LogicalLOCWarn, LogicalLOCError int
}

// DefaultThresholds are the spec's stated defaults (10/20, 15/30, 3/5, 50/100).
var DefaultThresholds = Thresholds{
	CyclomaticWarn: 10, CyclomaticError: 20,
	CognitiveWarn: 15, CognitiveError: 30,
	NestingWarn: 3, NestingError: 5,
	LogicalLOCWarn: 50, LogicalLOCError: 100,
}

// Halstead holds the distinct/total operator and operand counts and the
// derived quantities of spec §4.6.2's standard formulae.
type Halstead struct {
	DistinctOperators int
	DistinctOperands  int
	TotalOperators    int
	TotalOperands     int
	Vocabulary        int
	Length            int
	Volume            float64
	Difficulty        float64
	Effort            float64
}

func computeHalstead(opCounts, operandCounts map[string]int) Halstead {
	n1, n2 := len(opCounts), len(operandCounts)
	var N1, N2 int
	for _, c := range opCounts {
		N1 += c
	}
	for _, c := range operandCounts {
		N2 += c
	}
	h := Halstead{DistinctOperators: n1, DistinctOperands: n2, TotalOperators: N1, TotalOperands: N2}
	h.Vocabulary = n1 + n2
	h.Length = N1 + N2
	if h.Vocabulary > 0 {
		h.Volume = float64(h.Length) * math.Log2(float64(h.Vocabulary))
	}
	if n2 > 0 {
		h.Difficulty = (float64(n1) / 2) * (float64(N2) / float64(n2))
	}
	h.Effort = h.Volume * h.Difficulty
	return h
}

// Metrics is the set of measurements computed over one subtree.
type Metrics struct {
	Cyclomatic int
	Cognitive  int
	MaxNesting int
	Halstead   Halstead
	LogicalLOC int
}

// Level is a finding's severity.
type Level string

const (
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Finding is a single threshold violation.
type Finding struct {
	Metric  string
	Value   int
	Level   Level
	Message string
}

// FunctionMetrics pairs a lambda's identifying name (if any) with its
// own Metrics, computed over its body alone.
type FunctionMetrics struct {
	Name    string
	Metrics Metrics
}

// Result is the full complexity report for a document (spec §4.6.2).
type Result struct {
	Metrics
	Functions []FunctionMetrics
	Findings  []Finding
}

// state is the accumulator analyzer.Walk threads through the traversal.
type state struct {
	cyclomatic    int
	cognitive     int
	nesting       int
	maxNesting    int
	logicalLOC    int
	operatorCount map[string]int
	operandCount  map[string]int
}

func newState() state {
	return state{operatorCount: map[string]int{}, operandCount: map[string]int{}}
}

// isControlStructure reports whether tag nests cognitive complexity and
// tracked nesting depth (spec §4.6.2: "every entry into a control
// structure"). conditional, loop, pattern_match, and exception_handling
// are the MetaAST constructs that introduce a new control-flow scope.
func isControlStructure(tag model.Tag) bool {
	switch tag {
	case model.TagConditional, model.TagLoop, model.TagPatternMatch, model.TagExceptionHandling:
		return true
	}
	return false
}

// isLogicalLOC reports whether tag is one of the statement-producing node
// kinds spec §4.6.2 counts towards logical LoC.
func isLogicalLOC(tag model.Tag) bool {
	switch tag {
	case model.TagAssignment, model.TagFunctionCall, model.TagEarlyReturn,
		model.TagConditional, model.TagLoop, model.TagPatternMatch,
		model.TagExceptionHandling, model.TagLambda:
		return true
	}
	return false
}

func enter(n *model.Node, ctx interface{}) interface{} {
	st := ctx.(state)

	if isLogicalLOC(n.Tag) {
		st.logicalLOC++
	}

	switch n.Tag {
	case model.TagConditional, model.TagLoop:
		st.cyclomatic++
	case model.TagMatchArm:
		st.cyclomatic++
	case model.TagBinaryOp:
		if cat, _ := n.Metadata["category"].(model.OpCategory); cat == model.CategoryBoolean {
			st.cyclomatic++
		}
		if op, ok := n.Metadata["operator"].(string); ok {
			st.operatorCount = withCount(st.operatorCount, op)
		}
	case model.TagUnaryOp:
		if op, ok := n.Metadata["operator"].(string); ok {
			st.operatorCount = withCount(st.operatorCount, op)
		}
	case model.TagFunctionCall:
		if name, ok := n.Metadata["name"].(string); ok {
			st.operatorCount = withCount(st.operatorCount, name)
		}
	case model.TagLiteral:
		st.operandCount = withCount(st.operandCount, fmt.Sprintf("%v", n.Metadata["value"]))
	case model.TagVariable:
		if name, ok := n.Metadata["name"].(string); ok {
			st.operandCount = withCount(st.operandCount, name)
		}
	}

	if isControlStructure(n.Tag) {
		st.cognitive += 1 + st.nesting
		st.nesting++
		if st.nesting > st.maxNesting {
			st.maxNesting = st.nesting
		}
	}

	return st
}

func leave(n *model.Node, ctx interface{}) interface{} {
	st := ctx.(state)
	if isControlStructure(n.Tag) {
		st.nesting--
	}
	return st
}

func withCount(m map[string]int, key string) map[string]int {
	out := make(map[string]int, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[key]++
	return out
}

// metricsOf computes Metrics for the subtree rooted at n, not descending
// into nested lambda bodies' own per-function breakdown (that is handled
// separately by Analyze, which walks n once for the whole-document
// Metrics and a second time per lambda for FunctionMetrics).
func metricsOf(n *model.Node) Metrics {
	final := analyzer.Walk(n, newState(), enter, leave).(state)
	return Metrics{
		Cyclomatic: 1 + final.cyclomatic,
		Cognitive:  final.cognitive,
		MaxNesting: final.maxNesting,
		Halstead:   computeHalstead(final.operatorCount, final.operandCount),
		LogicalLOC: final.logicalLOC,
	}
}

// collectLambdas gathers every lambda node in the tree, in declaration
// order, for per-function metrics.
func collectLambdas(n *model.Node) []*model.Node {
	var out []*model.Node
	analyzer.Walk(n, struct{}{}, func(n *model.Node, ctx interface{}) interface{} {
		if n.Tag == model.TagLambda {
			out = append(out, n)
		}
		return ctx
	}, nil)
	return out
}

func lambdaName(n *model.Node) string {
	if name, ok := n.Metadata["name"].(string); ok {
		return name
	}
	return ""
}

func lambdaBody(n *model.Node) *model.Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

func findings(m Metrics, t Thresholds) []Finding {
	var out []Finding
	check := func(metric string, value, warn, errLevel int) {
		switch {
		case value >= errLevel:
			out = append(out, Finding{Metric: metric, Value: value, Level: LevelError,
				Message: fmt.Sprintf("%s %d exceeds error threshold %d", metric, value, errLevel)})
		case value >= warn:
			out = append(out, Finding{Metric: metric, Value: value, Level: LevelWarning,
				Message: fmt.Sprintf("%s %d exceeds warning threshold %d", metric, value, warn)})
		}
	}
	check("cyclomatic", m.Cyclomatic, t.CyclomaticWarn, t.CyclomaticError)
	check("cognitive", m.Cognitive, t.CognitiveWarn, t.CognitiveError)
	check("nesting", m.MaxNesting, t.NestingWarn, t.NestingError)
	check("logical_loc", m.LogicalLOC, t.LogicalLOCWarn, t.LogicalLOCError)
	return out
}

// Analyze computes the full complexity Result for n using DefaultThresholds.
func Analyze(n *model.Node) Result {
	return AnalyzeWithThresholds(n, DefaultThresholds)
}

// AnalyzeWithThresholds computes the full complexity Result for n, using
// custom thresholds for the generated Findings.
func AnalyzeWithThresholds(n *model.Node, t Thresholds) Result {
	m := metricsOf(n)

	var functions []FunctionMetrics
	for _, lam := range collectLambdas(n) {
		body := lambdaBody(lam)
		if body == nil {
			continue
		}
		functions = append(functions, FunctionMetrics{Name: lambdaName(lam), Metrics: metricsOf(body)})
	}

	return Result{Metrics: m, Functions: functions, Findings: findings(m, t)}
}

// Merge combines several Metrics into one per spec §4.6.2 and §8.1.6:
// complexity-shaped metrics (cyclomatic, cognitive, max nesting) take the
// max across inputs; size-shaped metrics (logical LoC, Halstead totals)
// sum. Halstead's distinct operator/operand counts are treated as
// complexity-shaped (max) since they characterize vocabulary richness,
// not accumulated size; the derived quantities are recomputed from the
// merged totals rather than averaged.
func Merge(all []Metrics) Metrics {
	var out Metrics
	var totalOps, totalOperands, distinctOps, distinctOperands int
	for i, m := range all {
		if i == 0 || m.Cyclomatic > out.Cyclomatic {
			out.Cyclomatic = m.Cyclomatic
		}
		if i == 0 || m.Cognitive > out.Cognitive {
			out.Cognitive = m.Cognitive
		}
		if i == 0 || m.MaxNesting > out.MaxNesting {
			out.MaxNesting = m.MaxNesting
		}
		out.LogicalLOC += m.LogicalLOC
		totalOps += m.Halstead.TotalOperators
		totalOperands += m.Halstead.TotalOperands
		if m.Halstead.DistinctOperators > distinctOps {
			distinctOps = m.Halstead.DistinctOperators
		}
		if m.Halstead.DistinctOperands > distinctOperands {
			distinctOperands = m.Halstead.DistinctOperands
		}
	}
	out.Halstead = Halstead{
		DistinctOperators: distinctOps,
		DistinctOperands:  distinctOperands,
		TotalOperators:    totalOps,
		TotalOperands:     totalOperands,
	}
	out.Halstead.Vocabulary = out.Halstead.DistinctOperators + out.Halstead.DistinctOperands
	out.Halstead.Length = out.Halstead.TotalOperators + out.Halstead.TotalOperands
	if out.Halstead.Vocabulary > 0 {
		out.Halstead.Volume = float64(out.Halstead.Length) * math.Log2(float64(out.Halstead.Vocabulary))
	}
	if out.Halstead.DistinctOperands > 0 {
		out.Halstead.Difficulty = (float64(out.Halstead.DistinctOperators) / 2) *
			(float64(out.Halstead.TotalOperands) / float64(out.Halstead.DistinctOperands))
	}
	out.Halstead.Effort = out.Halstead.Volume * out.Halstead.Difficulty
	return out
}
