package supplemental

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oeditus/metastatic-sub006/model"
)

func TestNewDefaultRegistryClaimsActorPrimitivesForErlangAndElixir(t *testing.T) {
	r := NewDefaultRegistry()

	for _, lang := range []model.Language{model.Erlang, model.Elixir} {
		m, ok := r.Get(lang, "actor_call")
		require.True(t, ok, "expected %s to have a registered actor_call module", lang)
		assert.Contains(t, m.Info.Constructs, "actor_receive")
	}
}

func TestNewDefaultRegistryClaimsAsyncTaskForPython(t *testing.T) {
	r := NewDefaultRegistry()
	m, ok := r.Get(model.Python, "async_task")
	require.True(t, ok)
	assert.Equal(t, "python_asyncio_tasks", m.Info.Name)
}

func TestTransformActorPrimitiveRoundTripsOpaqueFragment(t *testing.T) {
	n := model.LanguageSpecific("erlang", "spawn(fun loop/0)", "actor_call", model.Metadata{})
	native, ok := transformActorPrimitive(n, model.Erlang, nil)
	require.True(t, ok)
	assert.Equal(t, "spawn(fun loop/0)", native)
}

func TestTransformActorPrimitiveRejectsUnrelatedHint(t *testing.T) {
	n := model.LanguageSpecific("erlang", "native", "some_other_construct", model.Metadata{})
	_, ok := transformActorPrimitive(n, model.Erlang, nil)
	assert.False(t, ok)
}

func TestTransformAsyncTaskRejectsNonLanguageSpecificNode(t *testing.T) {
	_, ok := transformAsyncTask(model.Variable("x", model.Metadata{}), model.Python, nil)
	assert.False(t, ok)
}

func TestDefaultRegistryCompatibleWithSourceUsingOnlyClaimedConstructs(t *testing.T) {
	r := NewDefaultRegistry()
	doc := &model.Document{
		Language: model.Erlang,
		AST:      model.LanguageSpecific("erlang", "spawn(fun loop/0)", "actor_call", model.Metadata{}),
	}
	assert.True(t, r.Compatible(doc, model.Erlang))
}

func TestDefaultRegistryIncompatibleWithUnclaimedConstruct(t *testing.T) {
	r := NewDefaultRegistry()
	doc := &model.Document{
		Language: model.Haskell,
		AST:      model.LanguageSpecific("haskell", "STRef s a", "mutable_stref", model.Metadata{}),
	}
	assert.False(t, r.Compatible(doc, model.Haskell))
}
