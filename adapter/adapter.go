// Package adapter defines the bidirectional bridge every supported
// language plugs into: parse/unparse plus the α/ρ transform pair between
// a language's native AST and MetaAST (spec §4.2).
package adapter

import "github.com/Oeditus/metastatic-sub006/model"

// NativeAST is a language adapter's own AST representation. The core
// never inspects it directly; only the adapter that produced it
// understands its shape. Concrete adapters (adapter/lang/*) define their
// own native node types satisfying this empty interface.
type NativeAST interface{}

// Meta pairs a MetaAST with the file-level metadata an α transform
// derives alongside it (comment counts, line counts, ...). Kept separate
// from model.Document because an adapter doesn't know the document's
// original source text or enrichment state — only the core assembles a
// full Document from this plus the source.
type Meta struct {
	AST      *model.Node
	Metadata model.Metadata
}

// Adapter is the contract every supported language implements (spec §4.2).
// All five operations return (value, error); a failing α falls through to
// a language_specific node rather than erroring, per spec §7's
// propagation policy — ToMeta therefore only errors on an unrecoverable
// internal fault in the adapter itself (e.g. the native AST passed in
// didn't come from this adapter's own Parse).
type Adapter interface {
	// Name is the language tag this adapter registers under.
	Name() model.Language

	// FileExtensions lists the extensions (with leading dot) this
	// adapter's files are detected by, e.g. [".py"].
	FileExtensions() []string

	// Parse is the black-box source → native AST function (spec: external
	// collaborator, out of scope for the core's own responsibilities; the
	// core only requires that it exists and returns an error on
	// syntactically invalid source).
	Parse(source string) (NativeAST, error)

	// ToMeta is α: native AST → MetaAST. Falls through to
	// model.LanguageSpecific for constructs this adapter doesn't know how
	// to abstract rather than failing, except when disallowed by the
	// caller's validation mode (checked by model.Validate, not here).
	ToMeta(native NativeAST) (Meta, error)

	// FromMeta is ρ: MetaAST → native AST. Fails with a reify_error when
	// ast contains a language_specific node whose language_tag isn't this
	// adapter's own Name(), and with an unsupported_construct error when ast
	// contains a tag the adapter has no reification rule for.
	FromMeta(ast *model.Node, meta model.Metadata) (NativeAST, error)

	// Unparse pretty-prints a native AST back to source text.
	Unparse(native NativeAST) (string, error)
}
