package python

import "github.com/Oeditus/metastatic-sub006/model"

// ToMeta is Python's α transform: native Node → MetaAST, following the
// same canonical mapping table as adapter/lang/shared.ToMeta (spec
// §4.3), independently implemented because Python's native tree comes
// from its own indentation-aware parser rather than the shared
// keyword-block one.
func ToMeta(n *Node) *model.Node {
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
	case KIdent:
		return model.Variable(n.Str, meta)

	case KBinary:
		left := ToMeta(n.Children[0])
		right := ToMeta(n.Children[1])
		switch n.Str {
		case "and", "or":
			return model.BinaryOp(model.CategoryBoolean, n.Str, left, right, meta)
		case "+", "-", "*", "/", "%", "**", "//":
			return model.BinaryOp(model.CategoryArithmetic, n.Str, left, right, meta)
		default:
			m := meta.Clone()
			if n.OriginalOp != "" && n.OriginalOp != n.Str {
				m["source_operator"] = n.OriginalOp
			}
			return model.BinaryOp(model.CategoryComparison, n.Str, left, right, m)
		}

	case KUnary:
		operand := ToMeta(n.Children[0])
		category := model.CategoryBoolean
		if n.Str == "-" {
			category = model.CategoryArithmetic
		}
		return model.UnaryOp(category, n.Str, operand, meta)

	case KCall:
		return model.FunctionCall(n.Str, toMetaList(n.Children), meta)

	case KCollection:
		fn := ToMeta(n.Children[0])
		collection := ToMeta(n.Children[1])
		var init *model.Node
		if len(n.Children) > 2 {
			init = ToMeta(n.Children[2])
		}
		return model.CollectionOp(model.CollectionOpKind(n.Str), fn, collection, init, meta)

	case KIf:
		cond := ToMeta(n.Children[0])
		then := ToMeta(n.Children[1])
		var els *model.Node
		if n.HasElse {
			els = ToMeta(n.Children[2])
		}
		return model.Conditional(cond, then, els, meta)

	case KBlock:
		return model.Block(toMetaList(n.Children), meta)

	case KAssign:
		target := ToMeta(n.Children[0])
		value := ToMeta(n.Children[1])
		if target.Tag != model.TagVariable {
			return model.InlineMatch(target, value, meta)
		}
		return model.Assignment(target, value, meta)

	case KWhile:
		cond := ToMeta(n.Children[0])
		body := ToMeta(n.Children[1])
		return model.Loop(model.LoopWhile, []*model.Node{cond, body}, meta)

	case KForEach:
		iterVar := ToMeta(n.Children[0])
		collection := ToMeta(n.Children[1])
		body := ToMeta(n.Children[2])
		return model.Loop(model.LoopForEach, []*model.Node{iterVar, collection, body}, meta)

	case KLambda:
		body := ToMeta(n.Children[len(n.Children)-1])
		params := toMetaList(n.Children[:len(n.Children)-1])
		return model.Lambda(params, body, meta)

	case KTry:
		body := ToMeta(n.Children[0])
		var arms []*model.Node
		end := len(n.Children)
		if n.HasElse {
			end--
		}
		for _, arm := range n.Children[1:end] {
			arms = append(arms, toMetaArm(arm))
		}
		var elseBody *model.Node
		if n.HasElse {
			elseBody = ToMeta(n.Children[len(n.Children)-1])
		}
		return model.ExceptionHandling(body, arms, elseBody, meta)

	case KAsync:
		body := ToMeta(n.Children[0])
		return model.AsyncOperation(model.AsyncKind(n.Str), body, meta)

	case KList:
		return model.List(toMetaList(n.Children), meta)
	case KMap:
		return model.MapNode(toMetaList(n.Children), meta)
	case KPair:
		return model.Pair(ToMeta(n.Children[0]), ToMeta(n.Children[1]), meta)
	case KTuple:
		return model.Tuple(toMetaList(n.Children), meta)

	case KReturn:
		if len(n.Children) == 0 {
			return model.EarlyReturn(nil, meta)
		}
		return model.EarlyReturn(ToMeta(n.Children[0]), meta)

	default:
		return model.LanguageSpecific("python", n, string(n.Kind), meta)
	}
}

func toMetaList(ns []*Node) []*model.Node {
	out := make([]*model.Node, 0, len(ns))
	for _, n := range ns {
		out = append(out, ToMeta(n))
	}
	return out
}

func toMetaArm(arm *Node) *model.Node {
	pattern := ToMeta(arm.Children[0])
	var guard *model.Node
	if arm.Children[1] != nil {
		guard = ToMeta(arm.Children[1])
	}
	body := ToMeta(arm.Children[2])
	return model.MatchArm(pattern, guard, body, nil)
}
