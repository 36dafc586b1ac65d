package erlang

import (
	"testing"

	"github.com/Oeditus/metastatic-sub006/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUppercaseIdentifierIsVariable(t *testing.T) {
	a := New()
	native, err := a.Parse("X = 1")
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	assign := meta.AST.Children[0]
	require.Equal(t, model.TagAssignment, assign.Tag)
	assert.Equal(t, model.TagVariable, assign.Children[0].Tag)
	assert.Equal(t, "X", assign.Children[0].Metadata["name"])
}

func TestLowercaseBareWordIsAtom(t *testing.T) {
	a := New()
	native, err := a.Parse("ok")
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	lit := meta.AST.Children[0]
	require.Equal(t, model.TagLiteral, lit.Tag)
	assert.Equal(t, model.LiteralSymbol, lit.Metadata["subtype"])
	assert.Equal(t, "ok", lit.Metadata["value"])
}

func TestStrictEqualityNormalizesAndPreservesSpelling(t *testing.T) {
	a := New()
	native, err := a.Parse("X =:= 1")
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	cmp := meta.AST.Children[0]
	assert.Equal(t, model.CategoryComparison, cmp.Metadata["category"])
	assert.Equal(t, "==", cmp.Metadata["operator"])
	assert.Equal(t, "=:=", cmp.Metadata["source_operator"])
}

func TestListsMapBecomesCollectionOpFunFirst(t *testing.T) {
	a := New()
	native, err := a.Parse("lists.map(handler, list)")
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	call := meta.AST.Children[0]
	require.Equal(t, model.TagCollectionOp, call.Tag)
	assert.Equal(t, model.CollectionOpKind("map"), call.Metadata["collection_type"])
}

func TestFromMetaDenormalizesBackToStrictEquality(t *testing.T) {
	left := model.Variable("X", nil)
	right := model.Literal(model.LiteralInteger, "1", nil)
	meta := model.Metadata{"source_operator": "=:="}
	cmp := model.BinaryOp(model.CategoryComparison, "==", left, right, meta)

	adapter := New()
	native, err := adapter.FromMeta(cmp, nil)
	require.NoError(t, err)

	text, err := adapter.Unparse(native)
	require.NoError(t, err)
	assert.Contains(t, text, "=:=")
}
