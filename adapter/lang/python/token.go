package python

// Kind enumerates Python token kinds. Distinct from adapter/lang/shared's
// token set because Python needs INDENT/DEDENT/NEWLINE tokens the
// keyword-block dialects never produce.
type Kind int

const (
	EOF Kind = iota
	NEWLINE
	INDENT
	DEDENT
	IDENT
	INT
	FLOAT
	STRING
	OPERATOR
	ASSIGN
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	COMMA
	COLON
	DOT
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
	"if": true, "elif": true, "else": true,
	"while": true, "for": true, "in": true,
	"def": true, "lambda": true, "return": true,
	"try": true, "except": true, "finally": true, "as": true,
	"and": true, "or": true, "not": true,
	"True": true, "False": true, "None": true,
	"await": true, "async": true,
}
