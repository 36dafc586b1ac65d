package haskell

import sitter "github.com/smacker/go-tree-sitter"

// NodeKind enumerates the native AST node shapes this adapter's parser
// produces for the reduced, expression-oriented Haskell surface it
// supports (no layout rule, no typeclasses, no full pattern syntax).
type NodeKind string

const (
	KIntLit     NodeKind = "int"
	KFloatLit   NodeKind = "float"
	KStringLit  NodeKind = "string"
	KBoolLit    NodeKind = "bool"
	KIdent      NodeKind = "ident"
	KBinary     NodeKind = "binary"
	KUnary      NodeKind = "unary"
	KCall       NodeKind = "call"
	KIf         NodeKind = "if" // Haskell's if always has both branches
	KLet        NodeKind = "let"
	KBlock      NodeKind = "block" // top-level binding sequence, and do-blocks
	KAssign     NodeKind = "assign"
	KLambda     NodeKind = "lambda"
	KCollection NodeKind = "collection_op"
	KMatch      NodeKind = "match" // case .. of
	KMatchArm   NodeKind = "match_arm"
	KAsync      NodeKind = "async"
	KList       NodeKind = "list"
	KTuple      NodeKind = "tuple"
	KNative     NodeKind = "native"
)

type Node struct {
	Kind       NodeKind
	Str        string
	Pos        sitter.Point
	Children   []*Node
	OriginalOp string
}

func pos(line, col int) sitter.Point {
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	return sitter.Point{Row: uint32(line), Column: uint32(col)}
}
