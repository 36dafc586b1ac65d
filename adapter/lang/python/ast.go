package python

import sitter "github.com/smacker/go-tree-sitter"

// NodeKind enumerates the native AST node shapes Python's parser
// produces. Deliberately close to adapter/lang/shared.NodeKind (same
// vocabulary, independent type) since both front ends feed the same
// MetaAST mapping table.
type NodeKind string

const (
	KIntLit     NodeKind = "int"
	KFloatLit   NodeKind = "float"
	KStringLit  NodeKind = "string"
	KBoolLit    NodeKind = "bool"
	KNilLit     NodeKind = "nil"
	KIdent      NodeKind = "ident"
	KBinary     NodeKind = "binary"
	KUnary      NodeKind = "unary"
	KCall       NodeKind = "call"
	KIf         NodeKind = "if"
	KBlock      NodeKind = "block"
	KAssign     NodeKind = "assign"
	KWhile      NodeKind = "while"
	KForEach    NodeKind = "for_each"
	KLambda     NodeKind = "lambda"
	KDef        NodeKind = "def" // def name(params): body -- abstracted as assignment(name, lambda)
	KCollection NodeKind = "collection_op"
	KTry        NodeKind = "try"
	KMatchArm   NodeKind = "match_arm"
	KAsync      NodeKind = "async"
	KList       NodeKind = "list"
	KMap        NodeKind = "map"
	KPair       NodeKind = "pair"
	KTuple      NodeKind = "tuple"
	KReturn     NodeKind = "return"
	KNative     NodeKind = "native"
)

type Node struct {
	Kind       NodeKind
	Str        string
	Pos        sitter.Point
	Children   []*Node
	OriginalOp string
	HasElse    bool
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
