package supplemental

import "github.com/Oeditus/metastatic-sub006/model"

// NewDefaultRegistry returns a Registry seeded with the actor/async
// primitives spec §4.7 and §6.3's REDESIGN FLAGS call out as needing a
// supplemental home rather than a core MetaAST tag: Erlang/Elixir actor
// send/receive and Python's asyncio task spawn. Callers needing a clean
// slate for conflict tests use NewRegistry instead.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, m := range builtinModules {
		_ = r.Register(m) // built-ins never conflict with each other
	}
	return r
}

var builtinModules = []Module{
	{
		Info: Info{
			Name:             "erlang_actor_primitives",
			Language:         model.Erlang,
			Constructs:       []string{"actor_call", "actor_receive"},
			RequiredPackages: nil,
			Description:      "BEAM process spawn/send/receive, opaque to core M2",
		},
		Transform: transformActorPrimitive,
	},
	{
		Info: Info{
			Name:             "elixir_actor_primitives",
			Language:         model.Elixir,
			Constructs:       []string{"actor_call", "actor_receive"},
			RequiredPackages: nil,
			Description:      "GenServer/Process send-receive, opaque to core M2",
		},
		Transform: transformActorPrimitive,
	},
	{
		Info: Info{
			Name:             "python_asyncio_tasks",
			Language:         model.Python,
			Constructs:       []string{"async_task"},
			RequiredPackages: []string{"asyncio"},
			Description:      "asyncio.create_task/gather scheduling, opaque to core M2",
		},
		Transform: transformAsyncTask,
	},
}

// transformActorPrimitive turns an "actor_call"/"actor_receive"
// language_specific node back into its original opaque native fragment;
// actor primitives round-trip verbatim rather than being resynthesized
// from the construct's metadata fields, since no adapter lowers them to
// structured MetaAST in the first place (spec §4.7).
func transformActorPrimitive(n *model.Node, targetLanguage model.Language, metadata model.Metadata) (interface{}, bool) {
	if n == nil || n.Tag != model.TagLanguageSpecific {
		return nil, false
	}
	hint, _ := n.Metadata["hint"].(string)
	if hint != "actor_call" && hint != "actor_receive" {
		return nil, false
	}
	return n.Metadata["opaque_native_ast"], true
}

func transformAsyncTask(n *model.Node, targetLanguage model.Language, metadata model.Metadata) (interface{}, bool) {
	if n == nil || n.Tag != model.TagLanguageSpecific {
		return nil, false
	}
	hint, _ := n.Metadata["hint"].(string)
	if hint != "async_task" {
		return nil, false
	}
	return n.Metadata["opaque_native_ast"], true
}
