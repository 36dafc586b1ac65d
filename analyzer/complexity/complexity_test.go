package complexity

import (
	"testing"

	"github.com/Oeditus/metastatic-sub006/model"
	"github.com/stretchr/testify/assert"
)

// TestIfElseMatchesScenario5 exercises spec's worked example directly:
// "if a: x = 1 else: x = 2" -> cyclomatic=2, nesting=1, logical_loc=3.
func TestIfElseMatchesScenario5(t *testing.T) {
	cond := model.Variable("a", nil)
	thenBranch := model.Assignment(model.Variable("x", nil), model.Literal(model.LiteralInteger, 1, nil), nil)
	elseBranch := model.Assignment(model.Variable("x", nil), model.Literal(model.LiteralInteger, 2, nil), nil)
	tree := model.Conditional(cond, thenBranch, elseBranch, nil)

	r := Analyze(tree)
	assert.Equal(t, 2, r.Cyclomatic)
	assert.Equal(t, 1, r.MaxNesting)
	assert.Equal(t, 3, r.LogicalLOC)
}

func TestLiteralAloneHasBaselineCyclomaticOne(t *testing.T) {
	r := Analyze(model.Literal(model.LiteralInteger, 5, nil))
	assert.Equal(t, 1, r.Cyclomatic)
	assert.Equal(t, 0, r.MaxNesting)
	assert.Equal(t, 0, r.LogicalLOC)
}

func TestShortCircuitBooleanOpAddsDecisionPoint(t *testing.T) {
	tree := model.BinaryOp(model.CategoryBoolean, "and", model.Variable("a", nil), model.Variable("b", nil), nil)
	r := Analyze(tree)
	assert.Equal(t, 2, r.Cyclomatic)
}

func TestMatchArmsAreDecisionPoints(t *testing.T) {
	arm1 := model.MatchArm(model.Literal(model.LiteralInteger, 1, nil), nil, model.Literal(model.LiteralString, "one", nil), nil)
	arm2 := model.MatchArm(model.Variable(model.Wildcard, nil), nil, model.Literal(model.LiteralString, "other", nil), nil)
	tree := model.PatternMatch(model.Variable("x", nil), []*model.Node{arm1, arm2}, nil)

	r := Analyze(tree)
	assert.Equal(t, 3, r.Cyclomatic) // base 1 + 2 match_arm decision points
}

func TestNestedConditionalsIncreaseMaxNesting(t *testing.T) {
	inner := model.Conditional(model.Variable("b", nil), model.Literal(model.LiteralInteger, 1, nil), nil, nil)
	outer := model.Conditional(model.Variable("a", nil), inner, nil, nil)

	r := Analyze(outer)
	assert.Equal(t, 2, r.MaxNesting)
}

func TestPerFunctionMetricsCoverLambdaBody(t *testing.T) {
	body := model.Conditional(model.Variable("x", nil), model.Literal(model.LiteralInteger, 1, nil), nil, nil)
	lam := model.Lambda([]*model.Node{model.Variable("x", nil)}, body, model.Metadata{"name": "check"})

	r := Analyze(lam)
	if assert.Len(t, r.Functions, 1) {
		assert.Equal(t, "check", r.Functions[0].Name)
		assert.Equal(t, 2, r.Functions[0].Metrics.Cyclomatic)
	}
}

func TestHighCyclomaticProducesWarningFinding(t *testing.T) {
	var tree *model.Node = model.Literal(model.LiteralBoolean, true, nil)
	for i := 0; i < 11; i++ {
		tree = model.Conditional(model.Variable("a", nil), tree, nil, nil)
	}
	r := Analyze(tree)
	found := false
	for _, f := range r.Findings {
		if f.Metric == "cyclomatic" && f.Level == LevelWarning {
			found = true
		}
	}
	assert.True(t, found)
}

func TestMergeTakesMaxForComplexitySumForSize(t *testing.T) {
	a := Metrics{Cyclomatic: 5, Cognitive: 4, MaxNesting: 2, LogicalLOC: 10}
	b := Metrics{Cyclomatic: 8, Cognitive: 2, MaxNesting: 1, LogicalLOC: 7}

	merged := Merge([]Metrics{a, b})
	assert.Equal(t, 8, merged.Cyclomatic)
	assert.Equal(t, 4, merged.Cognitive)
	assert.Equal(t, 2, merged.MaxNesting)
	assert.Equal(t, 17, merged.LogicalLOC)
}
