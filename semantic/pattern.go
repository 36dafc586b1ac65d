// Package semantic implements the pattern registry that classifies
// function_call nodes with an OpKind (spec §4.4, §3.3): a domain/operation
// label so downstream analyses can reason about what a call does rather
// than which library wrote it.
package semantic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Oeditus/metastatic-sub006/model"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ExtractStrategy is how a pattern's OpKind.Target is derived from the
// matched call's arguments/name (spec §4.4 step 2).
type ExtractStrategy string

const (
	ExtractNone     ExtractStrategy = "none"
	ExtractFirstArg ExtractStrategy = "first_arg"
	ExtractReceiver ExtractStrategy = "receiver"
)

// Pattern is one (matcher, spec) entry of the registry (spec §4.4). Matcher
// is either a literal call name, a "*.method" wildcard matching any
// receiver, or a regular expression when Regex is set.
type Pattern struct {
	Matcher string
	Regex   *regexp.Regexp

	Operation     string
	Framework     string
	ExtractTarget ExtractStrategy

	// Guard is an optional expr-lang boolean expression evaluated against
	// the matched call's extracted arguments (SPEC_FULL.md §12.4, purely
	// additive to §4.4's algorithm). Empty means unconditional.
	Guard string

	guardProgram *vm.Program
}

// compile parses Guard into a reusable expr-lang program. Returns an error
// if Guard is present but doesn't compile.
func (p *Pattern) compile() error {
	if p.Guard == "" {
		return nil
	}
	prog, err := expr.Compile(p.Guard, expr.Env(guardEnv{}), expr.AsBool())
	if err != nil {
		return fmt.Errorf("semantic: pattern %q has invalid guard: %w", p.Matcher, err)
	}
	p.guardProgram = prog
	return nil
}

// guardEnv is the evaluation environment exposed to a pattern's guard
// expression: the call's name, its positional argument values (best-effort
// textual/numeric/bool extraction), and the already-extracted target.
type guardEnv struct {
	Name   string        `expr:"name"`
	Args   []interface{}  `expr:"args"`
	Target string        `expr:"target"`
	Async  bool          `expr:"async"`
}

// matches reports whether name satisfies this pattern's matcher.
func (p *Pattern) matches(name string) bool {
	if p.Regex != nil {
		return p.Regex.MatchString(name)
	}
	if strings.HasPrefix(p.Matcher, "*.") {
		suffix := p.Matcher[1:] // ".method"
		bare := strings.TrimPrefix(suffix, ".")
		return strings.HasSuffix(name, suffix) || name == bare
	}
	return name == p.Matcher
}

// evalGuard runs the compiled guard (if any) against env, defaulting to
// true when there is no guard.
func (p *Pattern) evalGuard(env guardEnv) (bool, error) {
	if p.guardProgram == nil {
		return true, nil
	}
	out, err := expr.Run(p.guardProgram, env)
	if err != nil {
		return false, fmt.Errorf("semantic: guard evaluation failed for %q: %w", p.Matcher, err)
	}
	b, _ := out.(bool)
	return b, nil
}

// extractTarget derives OpKind.Target from a function_call node's name and
// arguments per ExtractTarget (spec §4.4 step 2).
func extractTarget(strategy ExtractStrategy, name string, args []*model.Node) (string, bool) {
	switch strategy {
	case ExtractFirstArg:
		if len(args) == 0 {
			return "", false
		}
		return literalOrVariableText(args[0])
	case ExtractReceiver:
		idx := strings.LastIndex(name, ".")
		if idx < 0 {
			return "", false
		}
		return name[:idx], true
	default:
		return "", false
	}
}

// literalOrVariableText extracts a textual form from a string/symbol
// literal or a variable reference, per §4.4's first_arg strategy.
func literalOrVariableText(n *model.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	switch n.Tag {
	case model.TagLiteral:
		subtype, _ := n.Metadata["subtype"].(model.LiteralSubtype)
		if subtype != model.LiteralString && subtype != model.LiteralSymbol {
			return "", false
		}
		s, ok := n.Metadata["value"].(string)
		return s, ok
	case model.TagVariable:
		name, ok := n.Metadata["name"].(string)
		return name, ok
	default:
		return "", false
	}
}

// argToValue converts an argument node to a plain Go value for guard
// expressions: literals surface their underlying value, variables surface
// their name, everything else surfaces nil.
func argToValue(n *model.Node) interface{} {
	if n == nil {
		return nil
	}
	switch n.Tag {
	case model.TagLiteral:
		return n.Metadata["value"]
	case model.TagVariable:
		return n.Metadata["name"]
	default:
		return nil
	}
}
