package shared

import sitter "github.com/smacker/go-tree-sitter"

// NodeKind enumerates the generic native-AST node shapes the shared
// keyword-block parser produces. It is intentionally close to the MetaAST
// grammar it will be abstracted into — the "native AST" layer here plays
// the role the teacher's per-language tree-sitter CST plays before
// graph/java's builders turn it into model.Node: a real intermediate
// structure the α transform walks, not MetaAST itself.
type NodeKind string

const (
	KIntLit      NodeKind = "int"
	KFloatLit    NodeKind = "float"
	KStringLit   NodeKind = "string"
	KBoolLit     NodeKind = "bool"
	KNilLit      NodeKind = "nil"
	KAtomLit     NodeKind = "atom"
	KIdent       NodeKind = "ident"
	KBinary      NodeKind = "binary"
	KUnary       NodeKind = "unary"
	KCall        NodeKind = "call"
	KIf          NodeKind = "if"
	KBlock       NodeKind = "block"
	KAssign      NodeKind = "assign"
	KInlineMatch NodeKind = "inline_match"
	KWhile       NodeKind = "while"
	KForEach     NodeKind = "for_each"
	KLambda      NodeKind = "lambda"
	KCollection  NodeKind = "collection_op"
	KMatch       NodeKind = "match"
	KMatchArm    NodeKind = "match_arm"
	KTry         NodeKind = "try"
	KAsync       NodeKind = "async"
	KList        NodeKind = "list"
	KMap         NodeKind = "map"
	KPair        NodeKind = "pair"
	KTuple       NodeKind = "tuple"
	KReturn      NodeKind = "return"
	KNative      NodeKind = "native" // unparseable fragment, carried verbatim
)

// Node is the generic native AST node every keyword-block dialect parses
// into. Position uses sitter.Point (row/column), mirroring the teacher's
// use of a real tree-sitter position type on its Expr nodes even though
// this front end is hand-written rather than grammar-generated.
type Node struct {
	Kind     NodeKind
	Str      string // operator spelling, identifier/call name, literal text
	Pos      sitter.Point
	Children []*Node
	// OriginalOp preserves the exact source spelling of a boolean/
	// comparison operator (e.g. "andalso", "=:=") for round-trip fidelity
	// even after the value is normalized for MetaAST.
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
