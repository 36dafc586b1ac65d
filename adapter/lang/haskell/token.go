package haskell

// Kind enumerates Haskell token kinds. Haskell's real layout rule
// (whitespace-sensitive block inference) is out of scope here; this
// front end requires explicit braces and semicolons around do/case
// blocks instead of inferring them, the deliberate simplification noted
// in DESIGN.md for this adapter.
type Kind int

const (
	EOF Kind = iota
	IDENT
	INT
	FLOAT
	STRING
	OPERATOR
	ASSIGN
	BACKSLASH
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	COMMA
	SEMI
	COLON
	KEYWORD
	ILLEGAL
)

type Token struct {
	Kind    Kind
	Literal string
	Line    int
	Column  int
}

var keywords = map[string]bool{
	"if": true, "then": true, "else": true,
	"let": true, "in": true,
	"case": true, "of": true,
	"do": true, "where": true,
	"True": true, "False": true,
	"not": true,
}
