package haskell

import (
	"testing"

	"github.com/Oeditus/metastatic-sub006/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralArithmeticBinding(t *testing.T) {
	a := New()
	native, err := a.Parse("x = 1 + 2")
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	block := meta.AST
	require.Equal(t, model.TagBlock, block.Tag)
	require.Len(t, block.Children, 1)

	assign := block.Children[0]
	assert.Equal(t, model.TagAssignment, assign.Tag)
	assert.Equal(t, model.TagVariable, assign.Children[0].Tag)
	assert.Equal(t, "x", assign.Children[0].Metadata["name"])

	add := assign.Children[1]
	assert.Equal(t, model.TagBinaryOp, add.Tag)
	assert.Equal(t, model.CategoryArithmetic, add.Metadata["category"])
	assert.Equal(t, "+", add.Metadata["operator"])
}

func TestUnaryMinusIsArithmeticNotBoolean(t *testing.T) {
	a := New()
	native, err := a.Parse("y = -1")
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	neg := meta.AST.Children[0].Children[1]
	require.Equal(t, model.TagUnaryOp, neg.Tag)
	assert.Equal(t, model.CategoryArithmetic, neg.Metadata["category"])
}

func TestIfThenElse(t *testing.T) {
	a := New()
	native, err := a.Parse("if x == 1 then 10 else 20")
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	cond := meta.AST.Children[0]
	require.Equal(t, model.TagConditional, cond.Tag)
	require.Len(t, cond.Children, 3)

	comparison := cond.Children[0]
	assert.Equal(t, model.CategoryComparison, comparison.Metadata["category"])
	assert.Equal(t, "==", comparison.Metadata["operator"])
}

func TestLetInBecomesBlockOfAssignmentAndBody(t *testing.T) {
	a := New()
	native, err := a.Parse("let z = 5 in z + 1")
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	letBlock := meta.AST.Children[0]
	require.Equal(t, model.TagBlock, letBlock.Tag)
	require.Len(t, letBlock.Children, 2)

	assign := letBlock.Children[0]
	assert.Equal(t, model.TagAssignment, assign.Tag)
	assert.Equal(t, "z", assign.Children[0].Metadata["name"])

	body := letBlock.Children[1]
	assert.Equal(t, model.TagBinaryOp, body.Tag)
}

func TestLambda(t *testing.T) {
	a := New()
	native, err := a.Parse(`f = \x y -> x + y`)
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	lambda := meta.AST.Children[0].Children[1]
	require.Equal(t, model.TagLambda, lambda.Tag)
}

func TestCaseOfBecomesPatternMatch(t *testing.T) {
	a := New()
	native, err := a.Parse(`r = case n of { 0 -> "zero"; 1 -> "one" }`)
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	match := meta.AST.Children[0].Children[1]
	require.Equal(t, model.TagPatternMatch, match.Tag)
	require.Len(t, match.Children, 3)
	assert.Equal(t, model.TagMatchArm, match.Children[1].Tag)
}

func TestDoBlockBindsLikeAssignment(t *testing.T) {
	a := New()
	native, err := a.Parse("main = do { x <- getLine; print(x) }")
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	doBlock := meta.AST.Children[0].Children[1]
	require.Equal(t, model.TagBlock, doBlock.Tag)
	require.Len(t, doBlock.Children, 2)
	assert.Equal(t, model.TagAssignment, doBlock.Children[0].Tag)
}

func TestMapJuxtapositionBecomesCollectionOp(t *testing.T) {
	a := New()
	native, err := a.Parse("ys = map double xs")
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	call := meta.AST.Children[0].Children[1]
	require.Equal(t, model.TagCollectionOp, call.Tag)
	assert.Equal(t, model.CollectionOpKind("map"), call.Metadata["collection_type"])
}

func TestForkIOBecomesAsyncOperation(t *testing.T) {
	a := New()
	native, err := a.Parse("t = forkIO(worker())")
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	async := meta.AST.Children[0].Children[1]
	require.Equal(t, model.TagAsyncOperation, async.Tag)
	assert.Equal(t, model.AsyncKind("spawn"), async.Metadata["async_kind"])
}

func TestFromMetaRejectsForeignLanguageTag(t *testing.T) {
	a := New()
	foreign := model.LanguageSpecific("ruby", nil, "some_ruby_thing", nil)

	_, err := a.FromMeta(foreign, nil)
	require.Error(t, err)

	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.KindReifyError, merr.Kind)
}

func TestRoundTripUnparseIsReparsable(t *testing.T) {
	a := New()
	native, err := a.Parse("x = 1 + 2")
	require.NoError(t, err)

	text, err := a.Unparse(native)
	require.NoError(t, err)
	assert.Contains(t, text, "x = 1 + 2")

	reparsed, err := a.Parse(text)
	require.NoError(t, err)
	meta2, err := a.ToMeta(reparsed)
	require.NoError(t, err)
	assert.Equal(t, model.TagBlock, meta2.AST.Tag)
}
