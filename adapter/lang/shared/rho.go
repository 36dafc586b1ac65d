package shared

import "github.com/Oeditus/metastatic-sub006/model"

// FromMeta is ρ: it rebuilds a generic Node tree from a MetaAST, the
// point-wise inverse of ToMeta, with language-specific denormalization of
// comparison/boolean operators (spec §4.3 "Reification"). It fails (via
// the returned error) when ast contains a language_specific node whose
// language_tag isn't d.Name (reify_error), and when ast contains a tag it
// has no reification rule for (unsupported_construct).
func FromMeta(ast *model.Node, d *Dialect) (*Node, error) {
	if ast == nil {
		return nil, nil
	}

	switch ast.Tag {
	case model.TagLiteral:
		return fromLiteral(ast), nil

	case model.TagVariable:
		name, _ := ast.Metadata["name"].(string)
		return &Node{Kind: KIdent, Str: name}, nil

	case model.TagBinaryOp:
		left, err := FromMeta(ast.Children[0], d)
		if err != nil {
			return nil, err
		}
		right, err := FromMeta(ast.Children[1], d)
		if err != nil {
			return nil, err
		}
		op, _ := ast.Metadata["operator"].(string)
		category, _ := ast.Metadata["category"].(model.OpCategory)
		var orig string
		if category == model.CategoryComparison {
			orig = denormalizeOperator(ast, d, op)
		} else if kw, ok := ast.Metadata["source_keyword"].(string); ok {
			orig = kw
		}
		return &Node{Kind: KBinary, Str: op, OriginalOp: orig, Children: []*Node{left, right}}, nil

	case model.TagUnaryOp:
		operand, err := FromMeta(ast.Children[0], d)
		if err != nil {
			return nil, err
		}
		op, _ := ast.Metadata["operator"].(string)
		return &Node{Kind: KUnary, Str: op, Children: []*Node{operand}}, nil

	case model.TagFunctionCall:
		name, _ := ast.Metadata["name"].(string)
		args, err := fromMetaList(ast.Children, d)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KCall, Str: name, Children: args}, nil

	case model.TagConditional:
		cond, err := FromMeta(ast.Children[0], d)
		if err != nil {
			return nil, err
		}
		then, err := FromMeta(ast.Children[1], d)
		if err != nil {
			return nil, err
		}
		n := &Node{Kind: KIf, Children: []*Node{cond, then}}
		if len(ast.Children) > 2 {
			els, err := FromMeta(ast.Children[2], d)
			if err != nil {
				return nil, err
			}
			n.HasElse = true
			n.Children = append(n.Children, els)
		}
		return n, nil

	case model.TagBlock:
		stmts, err := fromMetaList(ast.Children, d)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KBlock, Children: stmts}, nil

	case model.TagAssignment:
		target, err := FromMeta(ast.Children[0], d)
		if err != nil {
			return nil, err
		}
		value, err := FromMeta(ast.Children[1], d)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KAssign, Children: []*Node{target, value}}, nil

	case model.TagInlineMatch:
		pattern, err := FromMeta(ast.Children[0], d)
		if err != nil {
			return nil, err
		}
		value, err := FromMeta(ast.Children[1], d)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KAssign, Children: []*Node{pattern, value}}, nil

	case model.TagLoop:
		loopType, _ := ast.Metadata["loop_type"].(model.LoopType)
		children, err := fromMetaList(ast.Children, d)
		if err != nil {
			return nil, err
		}
		if loopType == model.LoopForEach {
			return &Node{Kind: KForEach, Children: children}, nil
		}
		return &Node{Kind: KWhile, Children: children}, nil

	case model.TagLambda:
		children, err := fromMetaList(ast.Children, d)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KLambda, Children: children}, nil

	case model.TagCollectionOp:
		kind, _ := ast.Metadata["collection_type"].(model.CollectionOpKind)
		children, err := fromMetaList(ast.Children, d)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KCollection, Str: string(kind), Children: children}, nil

	case model.TagExceptionHandling:
		body, err := FromMeta(ast.Children[0], d)
		if err != nil {
			return nil, err
		}
		hasElse, _ := ast.Metadata["has_else"].(bool)
		end := len(ast.Children)
		if hasElse {
			end--
		}
		n := &Node{Kind: KTry, Children: []*Node{body}}
		for _, arm := range ast.Children[1:end] {
			na, err := fromMetaArm(arm, d)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, na)
		}
		if hasElse {
			els, err := FromMeta(ast.Children[len(ast.Children)-1], d)
			if err != nil {
				return nil, err
			}
			n.HasElse = true
			n.Children = append(n.Children, els)
		}
		return n, nil

	case model.TagAsyncOperation:
		kind, _ := ast.Metadata["async_kind"].(model.AsyncKind)
		body, err := FromMeta(ast.Children[0], d)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KAsync, Str: string(kind), Children: []*Node{body}}, nil

	case model.TagList:
		items, err := fromMetaList(ast.Children, d)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KList, Children: items}, nil
	case model.TagMap:
		items, err := fromMetaList(ast.Children, d)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KMap, Children: items}, nil
	case model.TagPair:
		k, err := FromMeta(ast.Children[0], d)
		if err != nil {
			return nil, err
		}
		v, err := FromMeta(ast.Children[1], d)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KPair, Children: []*Node{k, v}}, nil
	case model.TagTuple:
		items, err := fromMetaList(ast.Children, d)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KTuple, Children: items}, nil

	case model.TagLanguageSpecific:
		tag, _ := ast.Metadata["language_tag"].(string)
		if tag != d.Name {
			return nil, model.ReifyError(d.Name, ast.Tag, "language_specific node belongs to "+tag)
		}
		native, _ := ast.Metadata["opaque_native_ast"].(*Node)
		if native != nil {
			return native, nil
		}
		hint, _ := ast.Metadata["hint"].(string)
		return &Node{Kind: KNative, Str: hint}, nil

	default:
		return nil, model.UnsupportedConstruct(ast.Tag, "no reification rule for this tag")
	}
}

func fromLiteral(ast *model.Node) *Node {
	subtype, _ := ast.Metadata["subtype"].(model.LiteralSubtype)
	switch subtype {
	case model.LiteralInteger:
		return &Node{Kind: KIntLit, Str: toStr(ast.Metadata["value"])}
	case model.LiteralFloat:
		return &Node{Kind: KFloatLit, Str: toStr(ast.Metadata["value"])}
	case model.LiteralString:
		return &Node{Kind: KStringLit, Str: toStr(ast.Metadata["value"])}
	case model.LiteralBoolean:
		b, _ := ast.Metadata["value"].(bool)
		if b {
			return &Node{Kind: KBoolLit, Str: "true"}
		}
		return &Node{Kind: KBoolLit, Str: "false"}
	case model.LiteralNull:
		return &Node{Kind: KNilLit}
	case model.LiteralSymbol:
		return &Node{Kind: KAtomLit, Str: toStr(ast.Metadata["value"])}
	default:
		return &Node{Kind: KStringLit, Str: toStr(ast.Metadata["value"])}
	}
}

func toStr(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func denormalizeOperator(ast *model.Node, d *Dialect, canonical string) string {
	if src, ok := ast.Metadata["source_operator"].(string); ok {
		if canon, ok := d.ComparisonAliases[src]; ok && canon == canonical {
			return src
		}
	}
	if kw, ok := ast.Metadata["source_keyword"].(string); ok {
		return kw
	}
	for spelling, canon := range d.ComparisonAliases {
		if canon == canonical {
			return spelling
		}
	}
	return canonical
}

func fromMetaList(ns []*model.Node, d *Dialect) ([]*Node, error) {
	out := make([]*Node, 0, len(ns))
	for _, n := range ns {
		fn, err := FromMeta(n, d)
		if err != nil {
			return nil, err
		}
		out = append(out, fn)
	}
	return out, nil
}

func fromMetaArm(arm *model.Node, d *Dialect) (*Node, error) {
	pattern, err := FromMeta(arm.Children[0], d)
	if err != nil {
		return nil, err
	}
	var guard *Node
	if arm.Children[1] != nil {
		guard, err = FromMeta(arm.Children[1], d)
		if err != nil {
			return nil, err
		}
	}
	body, err := FromMeta(arm.Children[2], d)
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KMatchArm, Children: []*Node{pattern, guard, body}}, nil
}
