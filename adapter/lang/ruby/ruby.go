// Package ruby adapts Ruby source to and from MetaAST using the shared
// keyword-block lexer/parser, parameterized for Ruby's grammar:
// lowercase variables, explicit :symbol atoms, &&/|| and and/or keyword
// forms, and Array#map/#select/#reduce as the collection surface.
package ruby

import (
	"strings"

	"github.com/Oeditus/metastatic-sub006/adapter"
	"github.com/Oeditus/metastatic-sub006/adapter/lang/shared"
	"github.com/Oeditus/metastatic-sub006/model"
)

var dialect = &shared.Dialect{
	Name:          string(model.Ruby),
	CommentPrefix: "#",

	If: "if", Then: "", Elsif: "elsif", Else: "else", End: "end",
	While: "while", Do: "do",
	ForEach: "for", In: "in",

	FnKeyword: "lambda", Arrow: "->",

	True: "true", False: "false", Nil: "nil",

	AndKeyword: "and", OrKeyword: "or",
	AndOperator: "&&", OrOperator: "||",

	ComparisonAliases: map[string]string{
		"==":  "==",
		"!=":  "!=",
		"eql?": "==",
		"<=":  "<=",
		">=":  ">=",
	},

	TryKeyword: "begin", CatchKeyword: "rescue", FinallyKeyword: "ensure",

	VariableIsUpper: false,

	CollectionFuncs: map[string]string{
		"map":    "map",
		"select": "filter",
		"reduce": "reduce",
		"each":   "each",
	},
	CollectionArgFuncFirst: false,

	AsyncFuncs: map[string]string{
		"Thread.new": "spawn",
		"join":       "await",
	},
}

// Adapter implements adapter.Adapter for Ruby.
type Adapter struct{}

// New returns the Ruby Adapter.
func New() *Adapter { return &Adapter{} }

func (a *Adapter) Name() model.Language     { return model.Ruby }
func (a *Adapter) FileExtensions() []string { return []string{".rb"} }

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
		return adapter.Meta{}, model.UnsupportedLanguage("ruby: native AST not produced by this adapter")
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
		return "", model.UnsupportedLanguage("ruby: native AST not produced by this adapter")
	}
	return shared.Unparse(n, dialect), nil
}
