// Package python adapts Python source to and from MetaAST. Python gets
// its own tokenizer/parser (rather than reusing adapter/lang/shared)
// because its block structure is indentation-significant, not delimited
// by end/do keywords.
package python

import (
	"strings"

	"github.com/Oeditus/metastatic-sub006/adapter"
	"github.com/Oeditus/metastatic-sub006/model"
)

// Adapter implements adapter.Adapter for Python.
type Adapter struct{}

// New returns the Python Adapter.
func New() *Adapter { return &Adapter{} }

func (a *Adapter) Name() model.Language     { return model.Python }
func (a *Adapter) FileExtensions() []string { return []string{".py"} }

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
		return adapter.Meta{}, model.UnsupportedLanguage("python: native AST not produced by this adapter")
	}
	return adapter.Meta{AST: ToMeta(n), Metadata: model.Metadata{}}, nil
}

func (a *Adapter) FromMeta(ast *model.Node, meta model.Metadata) (adapter.NativeAST, error) {
	return FromMeta(ast)
}

func (a *Adapter) Unparse(native adapter.NativeAST) (string, error) {
	n, ok := native.(*Node)
	if !ok {
		return "", model.UnsupportedLanguage("python: native AST not produced by this adapter")
	}
	return Unparse(n), nil
}
