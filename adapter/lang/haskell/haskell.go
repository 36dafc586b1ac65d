// Package haskell adapts a reduced, expression-oriented Haskell surface
// to and from MetaAST. Like python, it gets its own tokenizer/parser
// rather than reusing adapter/lang/shared: Haskell has no end/do-style
// block delimiters for if/let, and this front end sidesteps the real
// layout rule by requiring explicit braces and semicolons around
// do/case blocks instead of inferring them from indentation.
package haskell

import (
	"strings"

	"github.com/Oeditus/metastatic-sub006/adapter"
	"github.com/Oeditus/metastatic-sub006/model"
)

// Adapter implements adapter.Adapter for Haskell.
type Adapter struct{}

// New returns the Haskell Adapter.
func New() *Adapter { return &Adapter{} }

func (a *Adapter) Name() model.Language     { return model.Haskell }
func (a *Adapter) FileExtensions() []string { return []string{".hs"} }

func (a *Adapter) Parse(source string) (adapter.NativeAST, error) {
	p := NewParser(source)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, model.ParseError(0, 0, strings.Join(errs, "; "))
	}
	return program, nil
}

func (a *Adapter) ToMeta(native adapter.NativeAST) (adapter.Meta, error) {
	n, ok := native.(*Node)
	if !ok {
		return adapter.Meta{}, model.UnsupportedLanguage("haskell: native AST not produced by this adapter")
	}
	return adapter.Meta{AST: ToMeta(n), Metadata: model.Metadata{}}, nil
}

func (a *Adapter) FromMeta(ast *model.Node, meta model.Metadata) (adapter.NativeAST, error) {
	return FromMeta(ast)
}

func (a *Adapter) Unparse(native adapter.NativeAST) (string, error) {
	n, ok := native.(*Node)
	if !ok {
		return "", model.UnsupportedLanguage("haskell: native AST not produced by this adapter")
	}
	return Unparse(n), nil
}
