package shared

import "strings"

// Unparse renders a generic Node back to dialect-specific source text. It
// is the companion to Parser: together Parse+Unparse give each
// keyword-block dialect (Elixir, Erlang, Ruby) its parse/unparse pair from
// spec §4.2 without three separate hand-written renderers.
func Unparse(n *Node, d *Dialect) string {
	var b strings.Builder
	writeNode(&b, n, d, 0)
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

func writeNode(b *strings.Builder, n *Node, d *Dialect, depth int) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KIntLit, KFloatLit:
		b.WriteString(n.Str)
	case KStringLit:
		b.WriteByte('"')
		b.WriteString(n.Str)
		b.WriteByte('"')
	case KBoolLit:
		if n.Str == "true" {
			b.WriteString(d.True)
		} else {
			b.WriteString(d.False)
		}
	case KNilLit:
		b.WriteString(d.Nil)
	case KAtomLit:
		b.WriteByte(':')
		b.WriteString(n.Str)
	case KIdent:
		b.WriteString(n.Str)

	case KBinary:
		writeNode(b, n.Children[0], d, depth)
		b.WriteByte(' ')
		b.WriteString(operatorSpelling(n, d))
		b.WriteByte(' ')
		writeNode(b, n.Children[1], d, depth)

	case KUnary:
		b.WriteString(n.Str)
		writeNode(b, n.Children[0], d, depth)

	case KCall:
		b.WriteString(n.Str)
		b.WriteByte('(')
		writeArgs(b, n.Children, d, depth)
		b.WriteByte(')')

	case KCollection:
		writeCollectionCall(b, n, d, depth)

	case KIf:
		b.WriteString(d.If)
		b.WriteByte(' ')
		writeNode(b, n.Children[0], d, depth)
		b.WriteByte('\n')
		indent(b, depth+1)
		writeNode(b, n.Children[1], d, depth+1)
		b.WriteByte('\n')
		if n.HasElse {
			indent(b, depth)
			b.WriteString(d.Else)
			b.WriteByte('\n')
			indent(b, depth+1)
			writeNode(b, n.Children[2], d, depth+1)
			b.WriteByte('\n')
		}
		indent(b, depth)
		b.WriteString(d.End)

	case KBlock:
		for i, stmt := range n.Children {
			if i > 0 {
				b.WriteByte('\n')
				indent(b, depth)
			}
			writeNode(b, stmt, d, depth)
		}

	case KAssign, KInlineMatch:
		writeNode(b, n.Children[0], d, depth)
		b.WriteString(" = ")
		writeNode(b, n.Children[1], d, depth)

	case KWhile:
		b.WriteString(d.While)
		b.WriteByte(' ')
		writeNode(b, n.Children[0], d, depth)
		b.WriteByte(' ')
		b.WriteString(d.Do)
		b.WriteByte('\n')
		indent(b, depth+1)
		writeNode(b, n.Children[1], d, depth+1)
		b.WriteByte('\n')
		indent(b, depth)
		b.WriteString(d.End)

	case KForEach:
		b.WriteString(d.ForEach)
		b.WriteByte(' ')
		writeNode(b, n.Children[0], d, depth)
		b.WriteByte(' ')
		b.WriteString(d.In)
		b.WriteByte(' ')
		writeNode(b, n.Children[1], d, depth)
		b.WriteByte('\n')
		indent(b, depth+1)
		writeNode(b, n.Children[2], d, depth+1)
		b.WriteByte('\n')
		indent(b, depth)
		b.WriteString(d.End)

	case KLambda:
		b.WriteString(d.FnKeyword)
		b.WriteByte('(')
		writeArgs(b, n.Children[:len(n.Children)-1], d, depth)
		b.WriteString(") ")
		b.WriteString(d.Arrow)
		b.WriteByte(' ')
		writeNode(b, n.Children[len(n.Children)-1], d, depth)

	case KTry:
		b.WriteString(d.TryKeyword)
		b.WriteByte('\n')
		indent(b, depth+1)
		writeNode(b, n.Children[0], d, depth+1)
		b.WriteByte('\n')
		end := len(n.Children)
		if n.HasElse {
			end--
		}
		for _, arm := range n.Children[1:end] {
			indent(b, depth)
			b.WriteString(d.CatchKeyword)
			b.WriteByte(' ')
			writeNode(b, arm.Children[0], d, depth)
			if arm.Children[1] != nil {
				b.WriteString(" when ")
				writeNode(b, arm.Children[1], d, depth)
			}
			b.WriteByte('\n')
			indent(b, depth+1)
			writeNode(b, arm.Children[2], d, depth+1)
			b.WriteByte('\n')
		}
		if n.HasElse {
			indent(b, depth)
			b.WriteString(d.FinallyKeyword)
			b.WriteByte('\n')
			indent(b, depth+1)
			writeNode(b, n.Children[len(n.Children)-1], d, depth+1)
			b.WriteByte('\n')
		}
		indent(b, depth)
		b.WriteString(d.End)

	case KAsync:
		b.WriteString(n.Str)
		b.WriteByte(' ')
		writeNode(b, n.Children[0], d, depth)

	case KList:
		b.WriteByte('[')
		writeArgs(b, n.Children, d, depth)
		b.WriteByte(']')

	case KMap:
		b.WriteByte('{')
		writeArgs(b, n.Children, d, depth)
		b.WriteByte('}')

	case KPair:
		writeNode(b, n.Children[0], d, depth)
		b.WriteString(": ")
		writeNode(b, n.Children[1], d, depth)

	case KTuple:
		b.WriteByte('{')
		writeArgs(b, n.Children, d, depth)
		b.WriteByte('}')

	case KNative:
		b.WriteString(n.Str)

	default:
		b.WriteString(n.Str)
	}
}

// operatorSpelling prefers the exact original source spelling when present
// (round-trip fidelity for e.g. "andalso" vs normalized "and"), falling
// back to the dialect's canonical spelling otherwise.
func operatorSpelling(n *Node, d *Dialect) string {
	if n.OriginalOp != "" {
		return n.OriginalOp
	}
	switch n.Str {
	case "and":
		if d.AndOperator != "" {
			return d.AndOperator
		}
		return d.AndKeyword
	case "or":
		if d.OrOperator != "" {
			return d.OrOperator
		}
		return d.OrKeyword
	default:
		return n.Str
	}
}

func writeArgs(b *strings.Builder, args []*Node, d *Dialect, depth int) {
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		writeNode(b, a, d, depth)
	}
}

func writeCollectionCall(b *strings.Builder, n *Node, d *Dialect, depth int) {
	name := collectionCallName(n.Str, d)
	fn, collection := n.Children[0], n.Children[1]
	b.WriteString(name)
	b.WriteByte('(')
	if d.CollectionArgFuncFirst {
		writeNode(b, fn, d, depth)
		b.WriteString(", ")
		writeNode(b, collection, d, depth)
	} else {
		writeNode(b, collection, d, depth)
		b.WriteString(", ")
		writeNode(b, fn, d, depth)
	}
	if len(n.Children) > 2 {
		b.WriteString(", ")
		writeNode(b, n.Children[2], d, depth)
	}
	b.WriteByte(')')
}

func collectionCallName(kind string, d *Dialect) string {
	for call, k := range d.CollectionFuncs {
		if k == kind {
			return call
		}
	}
	return kind
}
