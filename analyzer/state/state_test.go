package state

import (
	"testing"

	"github.com/Oeditus/metastatic-sub006/model"
	"github.com/stretchr/testify/assert"
)

func TestEmptyContainerIsStateless(t *testing.T) {
	r := Analyze(model.Block(nil, nil))
	assert.Equal(t, Stateless, r.Classification)
	assert.Equal(t, AssessmentExcellent, r.Assessment)
}

func TestSingleAssignmentIsImmutableState(t *testing.T) {
	assign := model.Assignment(model.Variable("x", nil), model.Literal(model.LiteralInteger, 1, nil), nil)
	r := Analyze(model.Block([]*model.Node{assign}, nil))
	assert.Equal(t, ImmutableState, r.Classification)
	assert.Equal(t, 1, r.StateVariables)
	assert.Equal(t, 1, r.ReadOnlyState)
	assert.Equal(t, 1, r.InitializedState)
}

func TestReassignmentInsideLoopIsControlledMutation(t *testing.T) {
	init := model.Assignment(model.Variable("total", nil), model.Literal(model.LiteralInteger, 0, nil), nil)
	bump := model.Assignment(model.Variable("total", nil), model.Literal(model.LiteralInteger, 1, nil), nil)
	loop := model.Loop(model.LoopWhile, []*model.Node{bump}, nil)

	r := Analyze(model.Block([]*model.Node{init, loop}, nil))
	assert.Equal(t, ControlledMutation, r.Classification)
	assert.Equal(t, AssessmentGood, r.Assessment)
	assert.Equal(t, 1, r.Mutations)
}

func TestReassignmentAtTopLevelIsUncontrolledMutation(t *testing.T) {
	first := model.Assignment(model.Variable("x", nil), model.Literal(model.LiteralInteger, 1, nil), nil)
	second := model.Assignment(model.Variable("x", nil), model.Literal(model.LiteralInteger, 2, nil), nil)

	r := Analyze(model.Block([]*model.Node{first, second}, nil))
	assert.Equal(t, UncontrolledMutation, r.Classification)
	assert.Equal(t, AssessmentPoor, r.Assessment)
}

func TestMixedGuardedAndUnguardedMutation(t *testing.T) {
	initA := model.Assignment(model.Variable("a", nil), model.Literal(model.LiteralInteger, 0, nil), nil)
	guardedBump := model.Loop(model.LoopWhile, []*model.Node{
		model.Assignment(model.Variable("a", nil), model.Literal(model.LiteralInteger, 1, nil), nil),
	}, nil)

	initB := model.Assignment(model.Variable("b", nil), model.Literal(model.LiteralInteger, 0, nil), nil)
	unguardedBump := model.Assignment(model.Variable("b", nil), model.Literal(model.LiteralInteger, 2, nil), nil)

	r := Analyze(model.Block([]*model.Node{initA, guardedBump, initB, unguardedBump}, nil))
	assert.Equal(t, Mixed, r.Classification)
	assert.Equal(t, AssessmentFair, r.Assessment)
}

func TestNestedLambdaIsItsOwnContainer(t *testing.T) {
	inner := model.Assignment(model.Variable("y", nil), model.Literal(model.LiteralInteger, 1, nil), nil)
	lam := model.Lambda(nil, model.Block([]*model.Node{inner}, nil), nil)
	outer := model.Assignment(model.Variable("x", nil), model.Literal(model.LiteralInteger, 1, nil), nil)

	r := Analyze(model.Block([]*model.Node{outer, lam}, nil))
	assert.Equal(t, 1, r.StateVariables, "y is scoped to the nested lambda, not the outer container")
}
