package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryOpShape(t *testing.T) {
	n := BinaryOp(CategoryArithmetic, "+", Variable("x", nil), Literal(LiteralInteger, 5, nil), nil)

	require.Equal(t, TagBinaryOp, n.Tag)
	assert.Equal(t, CategoryArithmetic, n.Metadata["category"])
	assert.Equal(t, "+", n.Metadata["operator"])
	require.Len(t, n.Children, 2)
	assert.Equal(t, TagVariable, n.Children[0].Tag)
	assert.Equal(t, "x", n.Children[0].Metadata["name"])
	assert.Equal(t, TagLiteral, n.Children[1].Tag)
	assert.Equal(t, 5, n.Children[1].Metadata["value"])
}

func TestConditionalOmitsNilElseBranch(t *testing.T) {
	cond := Conditional(Variable("a", nil), Block(nil, nil), nil, nil)
	assert.Len(t, cond.Children, 2)

	withElse := Conditional(Variable("a", nil), Block(nil, nil), Block(nil, nil), nil)
	assert.Len(t, withElse.Children, 3)
}

func TestWithMetadataDoesNotMutateOriginal(t *testing.T) {
	n := Variable("x", nil)
	enriched := n.WithMetadata("op_kind", "whatever")

	_, stillAbsent := n.Metadata["op_kind"]
	assert.False(t, stillAbsent)
	assert.Contains(t, enriched.Metadata, "op_kind")
}

func TestLanguageSpecificCanonicalFields(t *testing.T) {
	n := LanguageSpecific("haskell", "opaque-blob", "do-notation", nil)
	assert.Equal(t, "haskell", n.Metadata["language_tag"])
	assert.Equal(t, "opaque-blob", n.Metadata["opaque_native_ast"])
	assert.Equal(t, "do-notation", n.Metadata["hint"])
}

func TestLineDefaultsToZero(t *testing.T) {
	n := Variable("x", nil)
	assert.Equal(t, 0, n.Line())

	withLine := Variable("x", Metadata{"line": 12})
	assert.Equal(t, 12, withLine.Line())
}
