// Package supplemental implements the supplemental registry of spec
// §4.7: a pluggable way to add support for constructs outside
// M2.1/M2.2/M2.3 (e.g. actor primitives) on a per-target-language basis,
// without reopening the core adapter contract.
package supplemental

import "github.com/Oeditus/metastatic-sub006/model"

// Info describes one supplemental module's identity and coverage claim.
type Info struct {
	Name        string
	Language    model.Language
	Constructs  []string // construct names this module claims, e.g. "actor_call"
	RequiredPackages []string
	Description string
}

// Transform turns a MetaAST node into a native AST fragment for
// targetLanguage, opaque to the core (the same shape as an adapter's ρ,
// but scoped to one non-core construct rather than the whole grammar).
// ok is false when metaASTNode isn't a construct this module claims.
type Transform func(metaASTNode *model.Node, targetLanguage model.Language, metadata model.Metadata) (nativeAST interface{}, ok bool)

// Module is one registered supplemental: its declared coverage plus the
// transform that implements it.
type Module struct {
	Info      Info
	Transform Transform
}
