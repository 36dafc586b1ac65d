package supplemental

import (
	"testing"

	"github.com/Oeditus/metastatic-sub006/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopTransform(n *model.Node, lang model.Language, meta model.Metadata) (interface{}, bool) {
	return "native-fragment", true
}

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	err := r.Register(Module{
		Info: Info{Name: "actors", Language: model.Python, Constructs: []string{"actor_call"}},
		Transform: noopTransform,
	})
	require.NoError(t, err)

	m, ok := r.Get(model.Python, "actor_call")
	require.True(t, ok)
	assert.Equal(t, "actors", m.Info.Name)
}

// TestConflictingRegistrationMatchesScenario7 mirrors spec scenario 7:
// registering two supplementals that both claim actor_call for python.
func TestConflictingRegistrationMatchesScenario7(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Module{
		Info:      Info{Name: "actors_a", Language: model.Python, Constructs: []string{"actor_call"}},
		Transform: noopTransform,
	}))

	err := r.Register(Module{
		Info:      Info{Name: "actors_b", Language: model.Python, Constructs: []string{"actor_call"}},
		Transform: noopTransform,
	})
	require.Error(t, err)

	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.KindConflictError, merr.Kind)
	assert.Equal(t, "actors_a", merr.ModuleA)
	assert.Equal(t, "actors_b", merr.ModuleB)

	// the first registration is left intact.
	m, ok := r.Get(model.Python, "actor_call")
	require.True(t, ok)
	assert.Equal(t, "actors_a", m.Info.Name)
}

func TestUnregisterRemovesAllIndexEntries(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Module{
		Info:      Info{Name: "actors", Language: model.Python, Constructs: []string{"actor_call", "actor_spawn"}},
		Transform: noopTransform,
	}))
	r.Unregister("actors")

	_, ok := r.Get(model.Python, "actor_call")
	assert.False(t, ok)
	_, ok = r.Get(model.Python, "actor_spawn")
	assert.False(t, ok)
	assert.Empty(t, r.AvailableConstructs(model.Python))
}

func TestAvailableConstructsIsSortedAndScopedByLanguage(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Module{
		Info:      Info{Name: "a", Language: model.Python, Constructs: []string{"actor_spawn", "actor_call"}},
		Transform: noopTransform,
	}))
	require.NoError(t, r.Register(Module{
		Info:      Info{Name: "b", Language: model.Elixir, Constructs: []string{"receive_block"}},
		Transform: noopTransform,
	}))

	assert.Equal(t, []string{"actor_call", "actor_spawn"}, r.AvailableConstructs(model.Python))
	assert.Equal(t, []string{"receive_block"}, r.AvailableConstructs(model.Elixir))
}

func TestCompatibleTrueWhenEveryLanguageSpecificNodeIsCovered(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Module{
		Info:      Info{Name: "actors", Language: model.Python, Constructs: []string{"actor_call"}},
		Transform: noopTransform,
	}))

	ls := model.LanguageSpecific("elixir", "raw", "actor_call", nil)
	doc := model.NewDocument(model.Block([]*model.Node{ls}, nil), model.Elixir, nil)

	assert.True(t, r.Compatible(doc, model.Python))
}

func TestCompatibleFalseWhenAConstructIsUnclaimed(t *testing.T) {
	r := NewRegistry()
	ls := model.LanguageSpecific("elixir", "raw", "actor_call", nil)
	doc := model.NewDocument(model.Block([]*model.Node{ls}, nil), model.Elixir, nil)

	assert.False(t, r.Compatible(doc, model.Python))
}
