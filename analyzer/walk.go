// Package analyzer provides the generic, context-threaded MetaAST walker
// every C7 analysis (purity, complexity, taint, state) is built on top of
// (spec §4.5).
package analyzer

import "github.com/Oeditus/metastatic-sub006/model"

// Handler reacts to a node, given the context threaded in from its parent
// (or from the previously visited sibling subtree), and returns the
// context to carry forward. Per the design note in spec §9 ("Traversal
// control flow"), context is never mutated in place — every Handler
// returns a new value, the same accumulator-threading discipline the
// teacher's own CFG/statement walks use, just made explicit rather than
// implied by map/slice mutation.
type Handler func(n *model.Node, ctx interface{}) interface{}

// Walk performs a depth-first traversal of n: enter runs before
// descending into children, leave runs after. Children are visited in
// n.Children's declared order, which the MetaAST constructors already
// produce in the order spec §4.5 requires (pattern_match's
// scrutinee-then-arms, each match_arm's pattern-then-body) — the walker
// itself needs no per-tag special casing for ordering.
//
// Either handler may be nil to skip that phase. Unknown tags are handled
// like any other: if the analyzer's handler doesn't recognize the tag, it
// simply returns ctx unchanged, which is the "no-op for unknown tags"
// behavior spec §4.5 asks for.
func Walk(n *model.Node, ctx interface{}, enter, leave Handler) interface{} {
	if n == nil {
		return ctx
	}
	if enter != nil {
		ctx = enter(n, ctx)
	}
	for _, c := range n.Children {
		ctx = Walk(c, ctx, enter, leave)
	}
	if leave != nil {
		ctx = leave(n, ctx)
	}
	return ctx
}
