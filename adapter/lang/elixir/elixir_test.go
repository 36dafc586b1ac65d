package elixir

import (
	"testing"

	"github.com/Oeditus/metastatic-sub006/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignmentAndArithmetic(t *testing.T) {
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

func TestParseIfElseAndAtom(t *testing.T) {
	a := New()
	native, err := a.Parse("if x == 1 do\n  :ok\nelse\n  :error\nend")
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	cond := meta.AST.Children[0]
	assert.Equal(t, model.TagConditional, cond.Tag)
	require.Len(t, cond.Children, 3)

	comparison := cond.Children[0]
	assert.Equal(t, model.CategoryComparison, comparison.Metadata["category"])
	assert.Equal(t, "==", comparison.Metadata["operator"])

	thenLit := cond.Children[1].Children[0]
	assert.Equal(t, model.TagLiteral, thenLit.Tag)
	assert.Equal(t, model.LiteralSymbol, thenLit.Metadata["subtype"])
	assert.Equal(t, "ok", thenLit.Metadata["value"])
}

func TestEnumMapBecomesCollectionOp(t *testing.T) {
	a := New()
	native, err := a.Parse("Enum.map(list, fn x -> x end)")
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	call := meta.AST.Children[0]
	require.Equal(t, model.TagCollectionOp, call.Tag)
	assert.Equal(t, model.CollectionOpKind("map"), call.Metadata["collection_type"])
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

func TestParseRejectsGarbage(t *testing.T) {
	a := New()
	_, err := a.Parse("if do do do")
	// An if with no condition and no closing "end" is a parse error.
	assert.Error(t, err)
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
