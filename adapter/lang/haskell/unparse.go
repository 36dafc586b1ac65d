package haskell

import "strings"

// Unparse renders a Node back to the reduced Haskell surface this
// package parses. Explicit braces/semicolons are used for do/case
// blocks since the parser never learned the offside rule either.
func Unparse(n *Node) string {
	var b strings.Builder
	write(&b, n)
	return b.String()
}

func write(b *strings.Builder, n *Node) {
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
	case KIdent:
		b.WriteString(n.Str)
	case KNative:
		b.WriteString(n.Str)

	case KBinary:
		write(b, n.Children[0])
		b.WriteByte(' ')
		b.WriteString(operatorSpelling(n))
		b.WriteByte(' ')
		write(b, n.Children[1])

	case KUnary:
		if n.Str == "not" {
			b.WriteString("not ")
		} else {
			b.WriteString(n.Str)
		}
		write(b, n.Children[0])

	case KCall:
		b.WriteString(n.Str)
		b.WriteByte('(')
		writeArgs(b, n.Children)
		b.WriteByte(')')

	case KCollection:
		b.WriteString(collectionName(n.Str))
		b.WriteByte('(')
		writeArgs(b, n.Children)
		b.WriteByte(')')

	case KIf:
		b.WriteString("if ")
		write(b, n.Children[0])
		b.WriteString(" then ")
		write(b, n.Children[1])
		b.WriteString(" else ")
		write(b, n.Children[2])

	case KLet:
		b.WriteString("let ")
		write(b, n.Children[0])
		b.WriteString(" = ")
		write(b, n.Children[1])
		b.WriteString(" in ")
		write(b, n.Children[2])

	case KBlock:
		b.WriteString("do { ")
		for i, s := range n.Children {
			if i > 0 {
				b.WriteString("; ")
			}
			write(b, s)
		}
		b.WriteString(" }")

	case KAssign:
		write(b, n.Children[0])
		b.WriteString(" = ")
		write(b, n.Children[1])

	case KLambda:
		b.WriteString("\\")
		for i := 0; i < len(n.Children)-1; i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			write(b, n.Children[i])
		}
		b.WriteString(" -> ")
		write(b, n.Children[len(n.Children)-1])

	case KMatch:
		b.WriteString("case ")
		write(b, n.Children[0])
		b.WriteString(" of { ")
		for i, arm := range n.Children[1:] {
			if i > 0 {
				b.WriteString("; ")
			}
			write(b, arm.Children[0])
			b.WriteString(" -> ")
			write(b, arm.Children[2])
		}
		b.WriteString(" }")
	case KMatchArm:
		write(b, n.Children[0])
		b.WriteString(" -> ")
		write(b, n.Children[2])

	case KAsync:
		b.WriteString(asyncName(n.Str))
		b.WriteByte('(')
		write(b, n.Children[0])
		b.WriteByte(')')

	case KList:
		b.WriteByte('[')
		writeArgs(b, n.Children)
		b.WriteByte(']')
	case KTuple:
		b.WriteByte('(')
		writeArgs(b, n.Children)
		b.WriteByte(')')
	}
}

func writeArgs(b *strings.Builder, args []*Node) {
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		write(b, a)
	}
}

func operatorSpelling(n *Node) string {
	if n.OriginalOp != "" {
		return n.OriginalOp
	}
	return n.Str
}

func collectionName(canonical string) string {
	for name, c := range collectionFuncs {
		if c == canonical {
			return name
		}
	}
	return canonical
}

func asyncName(canonical string) string {
	for name, c := range asyncFuncs {
		if c == canonical {
			return name
		}
	}
	return canonical
}
