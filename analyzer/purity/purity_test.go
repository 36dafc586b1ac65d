package purity

import (
	"testing"

	"github.com/Oeditus/metastatic-sub006/model"
	"github.com/stretchr/testify/assert"
)

func TestPrintIsImpureIO(t *testing.T) {
	call := model.FunctionCall("print", []*model.Node{
		model.Literal(model.LiteralString, "hi", nil),
	}, nil)

	result := Analyze(call, model.Python)
	assert.False(t, result.Pure)
	assert.Equal(t, []Effect{EffectIO}, result.Effects)
	assert.Equal(t, ConfidenceHigh, result.Confidence)
}

func TestLiteralAloneIsPure(t *testing.T) {
	result := Analyze(model.Literal(model.LiteralInteger, 5, nil), model.Python)
	assert.True(t, result.Pure)
	assert.Empty(t, result.Effects)
	assert.Empty(t, result.Unknown)
}

func TestUnknownBindingCallIsCollectedSeparately(t *testing.T) {
	call := model.FunctionCall("some_helper", nil, nil)
	result := Analyze(call, model.Python)
	assert.False(t, result.Pure)
	assert.Empty(t, result.Effects)
	assert.Equal(t, []string{"some_helper"}, result.Unknown)
	assert.Equal(t, ConfidenceMedium, result.Confidence)
}

func TestOpKindDomainContributesEffect(t *testing.T) {
	call := model.FunctionCall("requests.get", nil, nil)
	call = model.AttachOpKind(call, model.OpKind{Domain: model.DomainHTTP, Operation: "get"})

	result := Analyze(call, model.Python)
	assert.Contains(t, result.Effects, EffectNetwork)
}

func TestAssignmentInsideLoopIsMutation(t *testing.T) {
	body := model.Assignment(model.Variable("total", nil), model.Literal(model.LiteralInteger, 1, nil), nil)
	loop := model.Loop(model.LoopWhile, []*model.Node{body}, nil)

	result := Analyze(loop, model.Python)
	assert.Contains(t, result.Effects, EffectMutation)
}

func TestAssignmentOutsideLoopIsNotMutation(t *testing.T) {
	assign := model.Assignment(model.Variable("x", nil), model.Literal(model.LiteralInteger, 1, nil), nil)
	result := Analyze(assign, model.Python)
	assert.NotContains(t, result.Effects, EffectMutation)
}

func TestExceptionHandlingAddsEffect(t *testing.T) {
	try := model.ExceptionHandling(model.Block(nil, nil), nil, nil, nil)
	result := Analyze(try, model.Python)
	assert.Contains(t, result.Effects, EffectExceptions)
}

func TestRandomCallIsNondeterministic(t *testing.T) {
	call := model.FunctionCall("random.random", nil, nil)
	result := Analyze(call, model.Python)
	assert.Contains(t, result.Effects, EffectNondeterminism)
}
