package python

import "strings"

// Unparse renders a native Node back to indented Python source text.
func Unparse(n *Node) string {
	var b strings.Builder
	writeNode(&b, n, 0)
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("    ")
	}
}

func writeNode(b *strings.Builder, n *Node, depth int) {
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
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case KNilLit:
		b.WriteString("None")
	case KIdent:
		b.WriteString(n.Str)

	case KBinary:
		writeNode(b, n.Children[0], depth)
		b.WriteByte(' ')
		if n.OriginalOp != "" {
			b.WriteString(n.OriginalOp)
		} else {
			b.WriteString(n.Str)
		}
		b.WriteByte(' ')
		writeNode(b, n.Children[1], depth)

	case KUnary:
		if n.Str == "not" {
			b.WriteString("not ")
		} else {
			b.WriteString(n.Str)
		}
		writeNode(b, n.Children[0], depth)

	case KCall:
		b.WriteString(n.Str)
		b.WriteByte('(')
		writeArgs(b, n.Children, depth)
		b.WriteByte(')')

	case KCollection:
		b.WriteString(n.Str)
		b.WriteByte('(')
		writeArgs(b, n.Children, depth)
		b.WriteByte(')')

	case KIf:
		b.WriteString("if ")
		writeNode(b, n.Children[0], depth)
		b.WriteString(":\n")
		writeSuite(b, n.Children[1], depth+1)
		if n.HasElse {
			indent(b, depth)
			if n.Children[2].Kind == KIf {
				b.WriteString("el")
				writeNode(b, n.Children[2], depth)
			} else {
				b.WriteString("else:\n")
				writeSuite(b, n.Children[2], depth+1)
			}
		}

	case KBlock:
		for i, stmt := range n.Children {
			if i > 0 {
				b.WriteByte('\n')
				indent(b, depth)
			}
			writeNode(b, stmt, depth)
		}

	case KAssign:
		writeNode(b, n.Children[0], depth)
		b.WriteString(" = ")
		writeNode(b, n.Children[1], depth)

	case KWhile:
		b.WriteString("while ")
		writeNode(b, n.Children[0], depth)
		b.WriteString(":\n")
		writeSuite(b, n.Children[1], depth+1)

	case KForEach:
		b.WriteString("for ")
		writeNode(b, n.Children[0], depth)
		b.WriteString(" in ")
		writeNode(b, n.Children[1], depth)
		b.WriteString(":\n")
		writeSuite(b, n.Children[2], depth+1)

	case KLambda:
		b.WriteString("lambda ")
		writeArgs(b, n.Children[:len(n.Children)-1], depth)
		b.WriteString(": ")
		writeNode(b, n.Children[len(n.Children)-1], depth)

	case KTry:
		b.WriteString("try:\n")
		writeSuite(b, n.Children[0], depth+1)
		end := len(n.Children)
		if n.HasElse {
			end--
		}
		for _, arm := range n.Children[1:end] {
			indent(b, depth)
			b.WriteString("except ")
			writeNode(b, arm.Children[0], depth)
			b.WriteString(":\n")
			writeSuite(b, arm.Children[2], depth+1)
		}
		if n.HasElse {
			indent(b, depth)
			b.WriteString("finally:\n")
			writeSuite(b, n.Children[len(n.Children)-1], depth+1)
		}

	case KAsync:
		b.WriteString(n.Str)
		b.WriteByte(' ')
		writeNode(b, n.Children[0], depth)

	case KList:
		b.WriteByte('[')
		writeArgs(b, n.Children, depth)
		b.WriteByte(']')

	case KMap:
		b.WriteByte('{')
		writeArgs(b, n.Children, depth)
		b.WriteByte('}')

	case KPair:
		writeNode(b, n.Children[0], depth)
		b.WriteString(": ")
		writeNode(b, n.Children[1], depth)

	case KTuple:
		b.WriteByte('(')
		writeArgs(b, n.Children, depth)
		b.WriteByte(')')

	case KReturn:
		b.WriteString("return")
		if len(n.Children) > 0 {
			b.WriteByte(' ')
			writeNode(b, n.Children[0], depth)
		}

	case KNative:
		b.WriteString(n.Str)

	default:
		b.WriteString(n.Str)
	}
}

// writeSuite renders a KBlock body indented one level, as a Python
// compound statement's suite.
func writeSuite(b *strings.Builder, block *Node, depth int) {
	if block == nil || len(block.Children) == 0 {
		indent(b, depth)
		b.WriteString("pass\n")
		return
	}
	for _, stmt := range block.Children {
		indent(b, depth)
		writeNode(b, stmt, depth)
		b.WriteByte('\n')
	}
}

func writeArgs(b *strings.Builder, args []*Node, depth int) {
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		writeNode(b, a, depth)
	}
}
