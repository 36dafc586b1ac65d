// Package elixir adapts Elixir source to and from MetaAST, reusing the
// shared keyword-block lexer/parser (adapter/lang/shared) parameterized
// for Elixir's grammar: do/end blocks, lowercase variables with explicit
// :atom literals, the Enum module for collection ops, and Task.await /
// spawn for async.
package elixir

import (
	"strings"

	"github.com/Oeditus/metastatic-sub006/adapter"
	"github.com/Oeditus/metastatic-sub006/adapter/lang/shared"
	"github.com/Oeditus/metastatic-sub006/model"
)

var dialect = &shared.Dialect{
	Name:          string(model.Elixir),
	CommentPrefix: "#",

	If: "if", Then: "", Elsif: "", Else: "else", End: "end",
	While: "while", Do: "do",
	ForEach: "for", In: "<-",

	FnKeyword: "fn", Arrow: "->",

	True: "true", False: "false", Nil: "nil",

	AndKeyword: "and", OrKeyword: "or",
	AndOperator: "&&", OrOperator: "||",

	ComparisonAliases: map[string]string{
		"==":  "==",
		"!=":  "!=",
		"===": "==",
		"!==": "!=",
		"<=":  "<=",
		">=":  ">=",
	},

	TryKeyword: "try", CatchKeyword: "rescue", FinallyKeyword: "after",

	VariableIsUpper: false,

	CollectionFuncs: map[string]string{
		"Enum.map":    "map",
		"Enum.filter": "filter",
		"Enum.reduce": "reduce",
		"Enum.each":   "each",
	},
	CollectionArgFuncFirst: false,

	AsyncFuncs: map[string]string{
		"Task.await": "await",
		"spawn":      "spawn",
		"Task.async": "async",
	},
}

// Adapter implements adapter.Adapter for Elixir.
type Adapter struct{}

// New returns the Elixir Adapter.
func New() *Adapter { return &Adapter{} }

func (a *Adapter) Name() model.Language    { return model.Elixir }
func (a *Adapter) FileExtensions() []string { return []string{".ex", ".exs"} }

func (a *Adapter) Parse(source string) (adapter.NativeAST, error) {
	p := shared.NewParser(source, dialect)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, model.ParseError(0, 0, strings.Join(errs, "; "))
	}
	return program, nil
}

func (a *Adapter) ToMeta(native adapter.NativeAST) (adapter.Meta, error) {
	n, ok := native.(*shared.Node)
	if !ok {
		return adapter.Meta{}, model.UnsupportedLanguage("elixir: native AST not produced by this adapter")
	}
	ast := shared.ToMeta(n, dialect)
	return adapter.Meta{AST: ast, Metadata: model.Metadata{}}, nil
}

func (a *Adapter) FromMeta(ast *model.Node, meta model.Metadata) (adapter.NativeAST, error) {
	return shared.FromMeta(ast, dialect)
}

func (a *Adapter) Unparse(native adapter.NativeAST) (string, error) {
	n, ok := native.(*shared.Node)
	if !ok {
		return "", model.UnsupportedLanguage("elixir: native AST not produced by this adapter")
	}
	return shared.Unparse(n, dialect), nil
}
