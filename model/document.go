package model

// Language is a supported source-language tag (spec §6.1).
type Language string

const (
	Python Language = "python"
	Elixir Language = "elixir"
	Erlang Language = "erlang"
	Ruby   Language = "ruby"
	Haskell Language = "haskell"
)

// SupportedLanguages lists every tag quote/unquote/analyze accept.
var SupportedLanguages = []Language{Python, Elixir, Erlang, Ruby, Haskell}

// IsSupported reports whether lang is one of SupportedLanguages.
func IsSupported(lang Language) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// Document pairs a MetaAST with its source language tag and file-level
// metadata (spec §3.4). Documents are immutable value types: enrichment
// (C5) and analysis (C7) never mutate a Document in place, they return a
// new one or a Result.
type Document struct {
	AST      *Node
	Language Language
	// Metadata holds file-level facts: path, comment_count, line_count, ...
	Metadata       Metadata
	OriginalSource string
	hasSource      bool
}

// NewDocument constructs a Document from a MetaAST and language tag. The
// Document's Language determines only the source language for
// diagnostics (spec invariant 6) — unquote/translate can target any
// language regardless of this value.
func NewDocument(ast *Node, lang Language, meta Metadata) *Document {
	return &Document{AST: ast, Language: lang, Metadata: meta.Clone()}
}

// WithOriginalSource attaches the verbatim source text used to build ast.
func (d *Document) WithOriginalSource(src string) *Document {
	nd := *d
	nd.OriginalSource = src
	nd.hasSource = true
	return &nd
}

// HasOriginalSource reports whether original source text was recorded.
func (d *Document) HasOriginalSource() bool {
	return d != nil && d.hasSource
}

// Enrich returns a new Document whose AST has been replaced by enriched,
// leaving d untouched (Documents are immutable value types, spec §3.6).
func (d *Document) Enrich(enriched *Node) *Document {
	nd := *d
	nd.AST = enriched
	return &nd
}
