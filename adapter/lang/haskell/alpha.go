package haskell

import "github.com/Oeditus/metastatic-sub006/model"

// ToMeta is Haskell's α transform. let-bindings have no MetaAST
// counterpart (spec §4.3's grammar has no let construct), so "let x = v
// in body" abstracts to block(assignment(x, v), body) — semantically
// equivalent, not byte-identical, which is all the adapter contract
// promises (spec §4.2).
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
	case KIdent:
		return model.Variable(n.Str, meta)

	case KBinary:
		left := ToMeta(n.Children[0])
		right := ToMeta(n.Children[1])
		switch n.Str {
		case "and", "or":
			m := meta.Clone()
			if n.OriginalOp != "" && n.OriginalOp != n.Str {
				m["source_keyword"] = n.OriginalOp
			}
			return model.BinaryOp(model.CategoryBoolean, n.Str, left, right, m)
		case "+", "-", "*", "/", "++":
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
		els := ToMeta(n.Children[2])
		return model.Conditional(cond, then, els, meta)

	case KLet:
		name := n.Children[0].Str
		bound := ToMeta(n.Children[1])
		body := ToMeta(n.Children[2])
		assign := model.Assignment(model.Variable(name, nil), bound, meta)
		return model.Block([]*model.Node{assign, body}, meta)

	case KBlock:
		return model.Block(toMetaList(n.Children), meta)

	case KAssign:
		target := model.Variable(n.Children[0].Str, nil)
		value := ToMeta(n.Children[1])
		return model.Assignment(target, value, meta)

	case KLambda:
		body := ToMeta(n.Children[len(n.Children)-1])
		params := toMetaList(n.Children[:len(n.Children)-1])
		return model.Lambda(params, body, meta)

	case KMatch:
		scrutinee := ToMeta(n.Children[0])
		var arms []*model.Node
		for _, arm := range n.Children[1:] {
			arms = append(arms, toMetaArm(arm))
		}
		return model.PatternMatch(scrutinee, arms, meta)

	case KAsync:
		body := ToMeta(n.Children[0])
		return model.AsyncOperation(model.AsyncKind(n.Str), body, meta)

	case KList:
		return model.List(toMetaList(n.Children), meta)
	case KTuple:
		return model.Tuple(toMetaList(n.Children), meta)

	default:
		return model.LanguageSpecific("haskell", n, string(n.Kind), meta)
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
