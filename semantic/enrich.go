package semantic

import "github.com/Oeditus/metastatic-sub006/model"

// Enrich walks doc's AST and returns a new Document whose function_call
// nodes carry an op_kind classification wherever the registry has a
// matching pattern for doc.Language (spec §4.4). Nodes with no match are
// left untouched. doc itself is never mutated (Documents are immutable
// value types, spec §3.6).
func Enrich(doc *model.Document, registry *Registry) (*model.Document, error) {
	enriched, err := enrichNode(doc.AST, doc.Language, registry, false)
	if err != nil {
		return nil, err
	}
	return doc.Enrich(enriched), nil
}

// enrichNode recurses depth-first, enriching function_call nodes and
// rebuilding every ancestor so the result is a new tree sharing untouched
// subtrees by reference. inAsync tracks whether the current node is
// nested inside an async_operation, feeding OpKind.Async (spec §4.4 step
// 2, "async set from context").
func enrichNode(n *model.Node, lang model.Language, registry *Registry, inAsync bool) (*model.Node, error) {
	if n == nil {
		return nil, nil
	}

	childAsync := inAsync || n.Tag == model.TagAsyncOperation
	children := make([]*model.Node, len(n.Children))
	changed := false
	for i, c := range n.Children {
		ec, err := enrichNode(c, lang, registry, childAsync)
		if err != nil {
			return nil, err
		}
		children[i] = ec
		if ec != c {
			changed = true
		}
	}

	result := n
	if changed {
		result = &model.Node{Tag: n.Tag, Metadata: n.Metadata.Clone(), Children: children}
	}

	if n.Tag != model.TagFunctionCall {
		return result, nil
	}

	name, _ := n.Metadata["name"].(string)
	kind, ok, err := registry.Classify(lang, name, n.Children, inAsync)
	if err != nil {
		return nil, err
	}
	if !ok {
		return result, nil
	}
	return model.AttachOpKind(result, kind), nil
}
