// Package erlang adapts Erlang source to and from MetaAST using the
// shared keyword-block lexer/parser, parameterized for Erlang's grammar:
// uppercase-leading identifiers are variables (lowercase ones are atoms),
// andalso/orelse short circuit, =:=/=/=/=</>= denote strict
// comparisons, and the lists collection functions are recognised in
// dotted form (lists.map, lists.filter, lists.foldl, lists.foreach); the
// colon form lists:map is not treated as a collection call.
package erlang

import (
	"strings"

	"github.com/Oeditus/metastatic-sub006/adapter"
	"github.com/Oeditus/metastatic-sub006/adapter/lang/shared"
	"github.com/Oeditus/metastatic-sub006/model"
)

var dialect = &shared.Dialect{
	Name:          string(model.Erlang),
	CommentPrefix: "%",

	If: "if", Then: "", Elsif: "", Else: "else", End: "end",
	While: "while", Do: "do",
	ForEach: "for", In: "<-",

	FnKeyword: "fun", Arrow: "->",

	True: "true", False: "false", Nil: "nil",

	AndKeyword: "andalso", OrKeyword: "orelse",
	AndOperator: "andalso", OrOperator: "orelse",

	ComparisonAliases: map[string]string{
		"=:=": "==",
		"==":  "==",
		"=/=": "!=",
		"/=":  "!=",
		"=<":  "<=",
		">=":  ">=",
	},

	TryKeyword: "try", CatchKeyword: "catch", FinallyKeyword: "after",

	VariableIsUpper: true,

	CollectionFuncs: map[string]string{
		"lists.map":    "map",
		"lists.filter": "filter",
		"lists.foldl":  "reduce",
		"lists.foreach": "each",
	},
	CollectionArgFuncFirst: true,

	AsyncFuncs: map[string]string{
		"spawn": "spawn",
		"await": "await",
	},
}

// Adapter implements adapter.Adapter for Erlang.
type Adapter struct{}

// New returns the Erlang Adapter.
func New() *Adapter { return &Adapter{} }

func (a *Adapter) Name() model.Language     { return model.Erlang }
func (a *Adapter) FileExtensions() []string { return []string{".erl"} }

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
		return adapter.Meta{}, model.UnsupportedLanguage("erlang: native AST not produced by this adapter")
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
		return "", model.UnsupportedLanguage("erlang: native AST not produced by this adapter")
	}
	return shared.Unparse(n, dialect), nil
}
