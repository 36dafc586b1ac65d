package python

import (
	"testing"

	"github.com/Oeditus/metastatic-sub006/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleArithmeticAssignment(t *testing.T) {
	a := New()
	native, err := a.Parse("x = 1 + 2\n")
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	assign := meta.AST.Children[0]
	assert.Equal(t, model.TagAssignment, assign.Tag)
	add := assign.Children[1]
	assert.Equal(t, model.CategoryArithmetic, add.Metadata["category"])
	assert.Equal(t, "+", add.Metadata["operator"])
}

func TestIndentedIfElse(t *testing.T) {
	src := "if x == 1:\n    y = 2\nelse:\n    y = 3\n"
	a := New()
	native, err := a.Parse(src)
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	cond := meta.AST.Children[0]
	require.Equal(t, model.TagConditional, cond.Tag)
	require.Len(t, cond.Children, 3)
	assert.Equal(t, model.TagBlock, cond.Children[1].Tag)
	assert.Equal(t, model.TagBlock, cond.Children[2].Tag)
}

func TestDefBecomesAssignmentOfLambda(t *testing.T) {
	src := "def double(x):\n    return x * 2\n"
	a := New()
	native, err := a.Parse(src)
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	assign := meta.AST.Children[0]
	require.Equal(t, model.TagAssignment, assign.Tag)
	assert.Equal(t, "double", assign.Children[0].Metadata["name"])
	assert.Equal(t, model.TagLambda, assign.Children[1].Tag)
}

func TestMapBuiltinBecomesCollectionOp(t *testing.T) {
	a := New()
	native, err := a.Parse("map(fn, items)\n")
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	call := meta.AST.Children[0]
	require.Equal(t, model.TagCollectionOp, call.Tag)
	assert.Equal(t, model.CollectionOpKind("map"), call.Metadata["collection_type"])
}

func TestTryExceptFinally(t *testing.T) {
	src := "try:\n    risky()\nexcept ValueError as e:\n    handle(e)\nfinally:\n    cleanup()\n"
	a := New()
	native, err := a.Parse(src)
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	tryNode := meta.AST.Children[0]
	require.Equal(t, model.TagExceptionHandling, tryNode.Tag)
	assert.Equal(t, true, tryNode.Metadata["has_else"])
}

func TestFromMetaRejectsForeignLanguageTag(t *testing.T) {
	a := New()
	foreign := model.LanguageSpecific("ruby", nil, "ruby_thing", nil)

	_, err := a.FromMeta(foreign, nil)
	require.Error(t, err)

	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.KindReifyError, merr.Kind)
}

func TestUnparseRoundTripsAssignment(t *testing.T) {
	a := New()
	native, err := a.Parse("x = 1 + 2\n")
	require.NoError(t, err)

	text, err := a.Unparse(native)
	require.NoError(t, err)
	assert.Contains(t, text, "x = 1 + 2")
}
