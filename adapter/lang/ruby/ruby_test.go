package ruby

import (
	"testing"

	"github.com/Oeditus/metastatic-sub006/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolLiteral(t *testing.T) {
	a := New()
	native, err := a.Parse("x = :ok")
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	assign := meta.AST.Children[0]
	sym := assign.Children[1]
	assert.Equal(t, model.TagLiteral, sym.Tag)
	assert.Equal(t, model.LiteralSymbol, sym.Metadata["subtype"])
	assert.Equal(t, "ok", sym.Metadata["value"])
}

func TestIfElsifElse(t *testing.T) {
	a := New()
	native, err := a.Parse("if x == 1\n  y\nelsif x == 2\n  z\nelse\n  w\nend")
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	cond := meta.AST.Children[0]
	require.Equal(t, model.TagConditional, cond.Tag)
}

func TestArrayMapBecomesCollectionOp(t *testing.T) {
	a := New()
	native, err := a.Parse("map(list, block)")
	require.NoError(t, err)

	meta, err := a.ToMeta(native)
	require.NoError(t, err)

	call := meta.AST.Children[0]
	require.Equal(t, model.TagCollectionOp, call.Tag)
	assert.Equal(t, model.CollectionOpKind("map"), call.Metadata["collection_type"])
}

func TestUnparseRendersSymbolWithColon(t *testing.T) {
	a := New()
	sym := model.Literal(model.LiteralSymbol, "ok", nil)

	native, err := a.FromMeta(sym, nil)
	require.NoError(t, err)

	text, err := a.Unparse(native)
	require.NoError(t, err)
	assert.Equal(t, ":ok", text)
}
