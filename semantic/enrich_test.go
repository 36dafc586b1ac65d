package semantic

import (
	"testing"

	"github.com/Oeditus/metastatic-sub006/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichAttachesOpKindToMatchingCall(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(model.DomainHTTP, model.Python, &Pattern{
		Matcher: "requests.get", Operation: "get", Framework: "requests",
	}))

	call := model.FunctionCall("requests.get", []*model.Node{
		model.Literal(model.LiteralString, "https://example.com", nil),
	}, nil)
	block := model.Block([]*model.Node{call}, nil)
	doc := model.NewDocument(block, model.Python, nil)

	enriched, err := Enrich(doc, r)
	require.NoError(t, err)

	got := enriched.AST.Children[0]
	kind, ok := model.GetOpKind(got)
	require.True(t, ok)
	assert.Equal(t, model.DomainHTTP, kind.Domain)
	assert.Equal(t, "get", kind.Operation)

	// original Document is untouched (spec §3.6 immutability).
	_, originalHasKind := model.GetOpKind(doc.AST.Children[0])
	assert.False(t, originalHasKind)
}

func TestEnrichLeavesUnmatchedCallsAlone(t *testing.T) {
	r := NewRegistry()
	call := model.FunctionCall("some_local_helper", nil, nil)
	doc := model.NewDocument(model.Block([]*model.Node{call}, nil), model.Python, nil)

	enriched, err := Enrich(doc, r)
	require.NoError(t, err)

	_, ok := model.GetOpKind(enriched.AST.Children[0])
	assert.False(t, ok)
}

func TestEnrichMarksCallsInsideAsyncOperation(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(model.DomainHTTP, model.Python, &Pattern{
		Matcher: "requests.get", Operation: "get",
	}))

	call := model.FunctionCall("requests.get", nil, nil)
	async := model.AsyncOperation(model.AsyncAwait, call, nil)
	doc := model.NewDocument(model.Block([]*model.Node{async}, nil), model.Python, nil)

	enriched, err := Enrich(doc, r)
	require.NoError(t, err)

	got := enriched.AST.Children[0].Children[0]
	kind, ok := model.GetOpKind(got)
	require.True(t, ok)
	assert.True(t, kind.Async)
}

func TestEnrichRecursesIntoConditional(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(model.DomainCache, model.Python, &Pattern{
		Matcher: "redis.get", Operation: "get",
	}))

	call := model.FunctionCall("redis.get", nil, nil)
	cond := model.Conditional(model.Variable("x", nil), model.Block([]*model.Node{call}, nil), nil, nil)
	doc := model.NewDocument(model.Block([]*model.Node{cond}, nil), model.Python, nil)

	enriched, err := Enrich(doc, r)
	require.NoError(t, err)

	nested := enriched.AST.Children[0].Children[1].Children[0]
	_, ok := model.GetOpKind(nested)
	assert.True(t, ok)
}
