package metastatic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oeditus/metastatic-sub006/adapter"
	"github.com/Oeditus/metastatic-sub006/adapter/lang/python"
	"github.com/Oeditus/metastatic-sub006/model"
	"github.com/Oeditus/metastatic-sub006/semantic"
)

func newPythonEngine(t *testing.T) *Engine {
	t.Helper()
	adapters := adapter.NewRegistry()
	require.NoError(t, adapters.Register(python.New()))
	return NewEngine(adapters, semantic.NewRegistry())
}

func TestQuoteUnsupportedLanguage(t *testing.T) {
	e := newPythonEngine(t)
	_, err := e.Quote("x + 5", model.Language("cobol"))
	require.Error(t, err)

	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.KindUnsupportedLanguage, merr.Kind)
}

func TestQuoteUnregisteredLanguage(t *testing.T) {
	e := newPythonEngine(t)
	_, err := e.Quote("x + 5", model.Ruby)
	require.Error(t, err)

	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.KindUnsupportedLanguage, merr.Kind)
}

func TestDetectLanguageMatchesScenario8(t *testing.T) {
	e := newPythonEngine(t)

	lang, ok := e.DetectLanguage("script.py")
	require.True(t, ok)
	assert.Equal(t, model.Python, lang)

	_, ok = e.DetectLanguage("file.xyz")
	assert.False(t, ok)
}

func TestAnalyzeUnknownTag(t *testing.T) {
	e := newPythonEngine(t)
	doc := model.NewDocument(model.Literal(model.LiteralInteger, 5, nil), model.Python, nil)

	_, err := e.Analyze(doc, AnalyzerTag("bogus"), AnalyzeOpts{})
	require.Error(t, err)
}

func TestAnalyzeCachesResultForIdenticalKey(t *testing.T) {
	e := newPythonEngine(t)
	doc := model.NewDocument(model.Literal(model.LiteralInteger, 5, nil), model.Python, nil)

	r1, err := e.Analyze(doc, AnalyzerPurity, AnalyzeOpts{})
	require.NoError(t, err)
	r2, err := e.Analyze(doc, AnalyzerPurity, AnalyzeOpts{})
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
}

func TestCacheKeyDiffersByAnalyzerTag(t *testing.T) {
	doc := model.NewDocument(model.Literal(model.LiteralInteger, 5, nil), model.Python, nil)
	k1 := cacheKey(doc, AnalyzerPurity, AnalyzeOpts{})
	k2 := cacheKey(doc, AnalyzerComplexity, AnalyzeOpts{})
	assert.NotEqual(t, k1, k2)
}

func TestCacheKeyStableRegardlessOfMetadataIterationOrder(t *testing.T) {
	n1 := model.Variable("x", model.Metadata{"a": 1, "b": 2, "c": 3})
	n2 := model.Variable("x", model.Metadata{"c": 3, "a": 1, "b": 2})
	doc1 := model.NewDocument(n1, model.Python, nil)
	doc2 := model.NewDocument(n2, model.Python, nil)

	assert.Equal(t, cacheKey(doc1, AnalyzerPurity, AnalyzeOpts{}), cacheKey(doc2, AnalyzerPurity, AnalyzeOpts{}))
}
