// Package state implements the state-management analysis of spec
// §4.6.4. MetaAST's core grammar has no dedicated module/class/record
// node (classes lower to plain assignment/lambda bindings per the
// adapters), so "container" here is the top-level scope passed to
// Analyze — typically a whole Document's AST, or a lambda body treated
// as its own container by a caller that wants per-function state
// classification. Top-level (not nested inside a further lambda)
// assignments within that scope are the container's state variables.
package state

import (
	"github.com/Oeditus/metastatic-sub006/model"
)

// Classification is one of the five container shapes of spec §4.6.4.
type Classification string

const (
	Stateless            Classification = "stateless"
	ImmutableState        Classification = "immutable_state"
	ControlledMutation    Classification = "controlled_mutation"
	UncontrolledMutation  Classification = "uncontrolled_mutation"
	Mixed                 Classification = "mixed"
)

// Assessment is the deterministic quality rating that follows from
// Classification.
type Assessment string

const (
	AssessmentExcellent Assessment = "excellent"
	AssessmentGood      Assessment = "good"
	AssessmentFair      Assessment = "fair"
	AssessmentPoor      Assessment = "poor"
)

// Result is the state-management report for one container.
type Result struct {
	Classification   Classification
	Assessment       Assessment
	StateVariables   int
	Mutations        int
	InitializedState int
	ReadOnlyState    int
}

type varInfo struct {
	assignments int
	initialized bool
	guarded     bool // every reassignment occurs inside a conditional/loop guard
}

// Analyze classifies container n (spec §4.6.4): walks its top-level
// statements (descending into blocks and control-structure bodies, but
// not into nested lambda bodies, which are their own containers) and
// tallies each assigned variable's assignment count and whether every
// reassignment beyond the first happens under a conditional or loop.
func Analyze(n *model.Node) Result {
	vars := map[string]*varInfo{}
	walkContainer(n, vars, false)

	var stateVars, mutations, initialized, readOnly int
	var guardedMutated, unguardedMutated int
	for _, v := range vars {
		stateVars++
		if v.initialized {
			initialized++
		}
		if v.assignments == 1 {
			readOnly++
			continue
		}
		mutations += v.assignments - 1
		if v.guarded {
			guardedMutated++
		} else {
			unguardedMutated++
		}
	}

	classification := classify(stateVars, guardedMutated, unguardedMutated)
	return Result{
		Classification:   classification,
		Assessment:       assess(classification),
		StateVariables:   stateVars,
		Mutations:        mutations,
		InitializedState: initialized,
		ReadOnlyState:    readOnly,
	}
}

// classify applies spec §4.6.4's deterministic pattern: a container with
// no state is stateless; with state but no reassignment beyond the
// initial binding, immutable; otherwise the split between mutated
// variables whose reassignments are all confined to a conditional/loop
// (controlled) versus unconfined (uncontrolled) decides the rest, with a
// container that has both kinds of mutated variables falling to mixed.
func classify(stateVars, guardedMutated, unguardedMutated int) Classification {
	switch {
	case stateVars == 0:
		return Stateless
	case guardedMutated == 0 && unguardedMutated == 0:
		return ImmutableState
	case unguardedMutated == 0:
		return ControlledMutation
	case guardedMutated == 0:
		return UncontrolledMutation
	default:
		return Mixed
	}
}

func assess(c Classification) Assessment {
	switch c {
	case Stateless, ImmutableState:
		return AssessmentExcellent
	case ControlledMutation:
		return AssessmentGood
	case Mixed:
		return AssessmentFair
	default:
		return AssessmentPoor
	}
}

// walkContainer records assignments to plain variable targets found at
// this container's own scope. guarded is true when the recursion has
// already entered a conditional or loop body within this container.
func walkContainer(n *model.Node, vars map[string]*varInfo, guarded bool) {
	if n == nil {
		return
	}
	switch n.Tag {
	case model.TagLambda:
		// A nested lambda is its own container; its body is analyzed
		// separately by a caller that wants per-function granularity.
		return
	case model.TagAssignment:
		target := n.Children[0]
		if target != nil && target.Tag == model.TagVariable {
			name, _ := target.Metadata["name"].(string)
			v, ok := vars[name]
			if !ok {
				v = &varInfo{guarded: true}
				vars[name] = v
			}
			v.assignments++
			if v.assignments == 1 {
				if _, isLiteral := literalValue(n.Children[1]); isLiteral {
					v.initialized = true
				}
			} else if !guarded {
				v.guarded = false
			}
		}
		return
	case model.TagConditional, model.TagLoop:
		for _, c := range n.Children {
			walkContainer(c, vars, true)
		}
		return
	default:
		for _, c := range n.Children {
			walkContainer(c, vars, guarded)
		}
	}
}

func literalValue(n *model.Node) (interface{}, bool) {
	if n == nil || n.Tag != model.TagLiteral {
		return nil, false
	}
	return n.Metadata["value"], true
}
