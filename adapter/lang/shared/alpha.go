package shared

import "github.com/Oeditus/metastatic-sub006/model"

// ToMeta is the α transform shared by every keyword-block dialect: it
// walks a generic Node (shared.Node) and builds the corresponding
// MetaAST, following the canonical mapping table of spec §4.3. Dialect d
// supplies only what's language-specific: how an original boolean-op
// keyword is preserved in metadata, and (via VariableIsUpper etc.,
// already baked into the native tree by the parser) nothing else is
// needed at this stage.
func ToMeta(n *Node, d *Dialect) *model.Node {
	if n == nil {
		return nil
	}
	meta := model.Metadata{"line": int(n.Pos.Row)}

	switch n.Kind {
	case KIntLit:
		return model.Literal(model.LiteralInteger, n.Str, meta)
	case KFloatLit:
		return model.Literal(model.LiteralFloat, n.Str, meta)
	case KStringLit:
		return model.Literal(model.LiteralString, n.Str, meta)
	case KBoolLit:
		return model.Literal(model.LiteralBoolean, n.Str == "true", meta)
	case KNilLit:
		return model.Literal(model.LiteralNull, nil, meta)
	case KAtomLit:
		return model.Literal(model.LiteralSymbol, n.Str, meta)
	case KIdent:
		return model.Variable(n.Str, meta)

	case KBinary:
		left := ToMeta(n.Children[0], d)
		right := ToMeta(n.Children[1], d)
		switch n.Str {
		case "and", "or":
			m := meta.Clone()
			m["source_keyword"] = n.OriginalOp
			return model.BinaryOp(model.CategoryBoolean, n.Str, left, right, m)
		case "+", "-", "*", "/", "%", "**":
			return model.BinaryOp(model.CategoryArithmetic, n.Str, left, right, meta)
		default: // normalized comparison operator
			m := meta.Clone()
			if n.OriginalOp != "" && n.OriginalOp != n.Str {
				m["source_operator"] = n.OriginalOp
			}
			return model.BinaryOp(model.CategoryComparison, n.Str, left, right, m)
		}

	case KUnary:
		operand := ToMeta(n.Children[0], d)
		category := model.CategoryBoolean
		if n.Str == "-" {
			category = model.CategoryArithmetic
		}
		return model.UnaryOp(category, n.Str, operand, meta)

	case KCall:
		args := toMetaList(n.Children, d)
		return model.FunctionCall(n.Str, args, meta)

	case KCollection:
		fn := ToMeta(n.Children[0], d)
		collection := ToMeta(n.Children[1], d)
		var init *model.Node
		if len(n.Children) > 2 {
			init = ToMeta(n.Children[2], d)
		}
		return model.CollectionOp(model.CollectionOpKind(n.Str), fn, collection, init, meta)

	case KIf:
		cond := ToMeta(n.Children[0], d)
		then := ToMeta(n.Children[1], d)
		var els *model.Node
		if n.HasElse {
			els = ToMeta(n.Children[2], d)
		}
		return model.Conditional(cond, then, els, meta)

	case KBlock:
		return model.Block(toMetaList(n.Children, d), meta)

	case KAssign:
		target := ToMeta(n.Children[0], d)
		value := ToMeta(n.Children[1], d)
		if target.Tag != model.TagVariable {
			return model.InlineMatch(target, value, meta)
		}
		return model.Assignment(target, value, meta)

	case KWhile:
		cond := ToMeta(n.Children[0], d)
		body := ToMeta(n.Children[1], d)
		return model.Loop(model.LoopWhile, []*model.Node{cond, body}, meta)

	case KForEach:
		iterVar := ToMeta(n.Children[0], d)
		collection := ToMeta(n.Children[1], d)
		body := ToMeta(n.Children[2], d)
		return model.Loop(model.LoopForEach, []*model.Node{iterVar, collection, body}, meta)

	case KLambda:
		body := ToMeta(n.Children[len(n.Children)-1], d)
		params := toMetaList(n.Children[:len(n.Children)-1], d)
		return model.Lambda(params, body, meta)

	case KTry:
		body := ToMeta(n.Children[0], d)
		var arms []*model.Node
		end := len(n.Children)
		if n.HasElse {
			end--
		}
		for _, arm := range n.Children[1:end] {
			arms = append(arms, toMetaArm(arm, d))
		}
		var elseBody *model.Node
		if n.HasElse {
			elseBody = ToMeta(n.Children[len(n.Children)-1], d)
		}
		return model.ExceptionHandling(body, arms, elseBody, meta)

	case KAsync:
		body := ToMeta(n.Children[0], d)
		return model.AsyncOperation(model.AsyncKind(n.Str), body, meta)

	case KList:
		return model.List(toMetaList(n.Children, d), meta)
	case KMap:
		return model.MapNode(toMetaList(n.Children, d), meta)
	case KPair:
		return model.Pair(ToMeta(n.Children[0], d), ToMeta(n.Children[1], d), meta)
	case KTuple:
		return model.Tuple(toMetaList(n.Children, d), meta)

	default:
		return model.LanguageSpecific(d.Name, n, string(n.Kind), meta)
	}
}

func toMetaList(ns []*Node, d *Dialect) []*model.Node {
	out := make([]*model.Node, 0, len(ns))
	for _, n := range ns {
		out = append(out, ToMeta(n, d))
	}
	return out
}

func toMetaArm(arm *Node, d *Dialect) *model.Node {
	pattern := ToMeta(arm.Children[0], d)
	var guard *model.Node
	if arm.Children[1] != nil {
		guard = ToMeta(arm.Children[1], d)
	}
	body := ToMeta(arm.Children[2], d)
	return model.MatchArm(pattern, guard, body, nil)
}
