package shared

// Dialect parameterizes the keyword-block parser for one concrete
// language (elixir, erlang, ruby). Each language's adapter package builds
// exactly one Dialect value and hands it to NewParser; the grammar itself
// lives here, once, instead of being copy-pasted three times.
type Dialect struct {
	Name          string
	CommentPrefix string

	// Block keywords. Elsif may be "" (no elif-chain keyword; else+if is
	// used instead, as Erlang does).
	If, Then, Elsif, Else, End string
	While, Do                  string
	ForEach, In                string

	// Lambda spelling, e.g. Ruby "lambda do |x| ... end" simplified here
	// to "fn_kw(params) Arrow body End", see each dialect's comment.
	FnKeyword string
	Arrow     string

	True, False, Nil string

	// Keyword and symbolic spellings of short-circuit boolean ops; either
	// may be empty if the dialect doesn't use that form.
	AndKeyword, OrKeyword, NotKeyword string
	AndOperator, OrOperator           string

	// ComparisonAliases maps a source spelling to its normalized MetaAST
	// operator ("==", "!=", "<=") per spec §4.3's normalization table.
	ComparisonAliases map[string]string

	TryKeyword, CatchKeyword, FinallyKeyword string

	// VariableIsUpper selects Erlang's convention (identifiers starting
	// uppercase are variables, lowercase are atoms) vs. the Ruby/Elixir
	// convention (lowercase identifiers are variables, atoms need an
	// explicit marker recognized by the lexer as ATOM).
	VariableIsUpper bool

	// CollectionFuncs maps a call name (possibly dotted, e.g. "Enum.map")
	// to the collection_op kind it denotes (spec §4.3).
	CollectionFuncs map[string]string
	// CollectionArgFuncFirst selects argument order: Erlang's
	// lists:map(Fun, List) passes the function first, while Elixir's
	// Enum.map(list, fun) and Ruby's list.map(&fn) pass the collection
	// first (modeled here as collection-first with the block folded into
	// the second argument for simplicity).
	CollectionArgFuncFirst bool

	// AsyncFuncs maps a call name to the async_operation.kind it denotes
	// (e.g. "await" -> "await", "spawn" -> "spawn").
	AsyncFuncs map[string]string

	// Operators lists every multi-character operator spelling the lexer
	// must try to match longest-first (built from the fields above by
	// BuildOperatorTable).
	Operators []string
	Keywords  map[string]bool
}

// BuildOperatorTable derives the Lexer operator table from a Dialect's
// keyword/operator fields, longest-first so e.g. "==" is tried before
// "=" and "andalso" before "and".
func (d *Dialect) BuildOperatorTable(extra ...string) []string {
	seen := map[string]bool{}
	var ops []string
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			ops = append(ops, s)
		}
	}
	for src := range d.ComparisonAliases {
		add(src)
	}
	add(d.AndOperator)
	add(d.OrOperator)
	add(d.Arrow)
	add("**")
	add("!=")
	add("<=")
	add(">=")
	for _, e := range extra {
		add(e)
	}
	// Longest-match-first.
	for i := 0; i < len(ops); i++ {
		for j := i + 1; j < len(ops); j++ {
			if len(ops[j]) > len(ops[i]) {
				ops[i], ops[j] = ops[j], ops[i]
			}
		}
	}
	return ops
}

// BuildKeywordSet collects every keyword spelling used by the block
// syntax and boolean operators into a lookup set for the lexer.
func (d *Dialect) BuildKeywordSet() map[string]bool {
	kw := map[string]bool{}
	for _, k := range []string{
		d.If, d.Then, d.Elsif, d.Else, d.End, d.While, d.Do, d.ForEach, d.In,
		d.FnKeyword, d.True, d.False, d.Nil, d.AndKeyword, d.OrKeyword,
		d.NotKeyword, d.TryKeyword, d.CatchKeyword, d.FinallyKeyword,
	} {
		if k != "" {
			kw[k] = true
		}
	}
	return kw
}
