package shared

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

type sitterPoint = sitter.Point

// Parser is a recursive-descent / Pratt parser over the keyword-block
// grammar shared by the elixir, erlang, and ruby dialects. Grounded on
// the teacher's queryparser.Parser (token lookahead via cur/peek,
// ParseQuery as the single entry point) generalized to a full
// expression/statement grammar and parameterized by Dialect so one
// implementation serves three languages, the way the spec's §4.3 mapping
// table is itself language-agnostic.
type Parser struct {
	lex *Lexer
	d   *Dialect

	cur  Token
	peek Token

	errors []string
}

// NewParser builds a Parser over source under dialect d.
func NewParser(source string, d *Dialect) *Parser {
	if d.Operators == nil {
		d.Operators = d.BuildOperatorTable()
	}
	if d.Keywords == nil {
		d.Keywords = d.BuildKeywordSet()
	}
	p := &Parser{lex: NewLexer(source, d.Keywords, d.Operators), d: d}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lex.NextToken(p.d.CommentPrefix)
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

// Errors returns every parse error accumulated so far.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) curIsKeyword(kw string) bool {
	return p.cur.Kind == KEYWORD && p.cur.Literal == kw
}

func (p *Parser) expectKeyword(kw string) bool {
	if !p.curIsKeyword(kw) {
		p.errorf("expected keyword %q, got %q at line %d", kw, p.cur.Literal, p.cur.Line)
		return false
	}
	p.next()
	return true
}

// ParseProgram parses the whole source as a top-level block of
// statements.
func (p *Parser) ParseProgram() *Node {
	var stmts []*Node
	for p.cur.Kind != EOF {
		stmts = append(stmts, p.parseStatement())
		for p.cur.Kind == SEMI {
			p.next()
		}
	}
	return &Node{Kind: KBlock, Children: stmts}
}

func (p *Parser) parseBlockUntil(terminators ...string) *Node {
	var stmts []*Node
	for p.cur.Kind != EOF && !p.curIsAnyKeyword(terminators...) {
		stmts = append(stmts, p.parseStatement())
		for p.cur.Kind == SEMI {
			p.next()
		}
	}
	return &Node{Kind: KBlock, Children: stmts}
}

func (p *Parser) curIsAnyKeyword(kws ...string) bool {
	for _, k := range kws {
		if k != "" && p.curIsKeyword(k) {
			return true
		}
	}
	return false
}

func (p *Parser) parseStatement() *Node {
	if p.cur.Kind == IDENT && p.peek.Kind == ASSIGN {
		target := p.parsePrimary()
		p.next() // consume '='
		value := p.parseExpression()
		return &Node{Kind: KAssign, Pos: target.Pos, Children: []*Node{target, value}}
	}
	return p.parseExpression()
}

func (p *Parser) parseExpression() *Node {
	switch {
	case p.curIsKeyword(p.d.If):
		return p.parseIf()
	case p.curIsKeyword(p.d.While):
		return p.parseWhile()
	case p.curIsKeyword(p.d.ForEach):
		return p.parseForEach()
	case p.curIsKeyword(p.d.TryKeyword):
		return p.parseTry()
	case p.curIsKeyword(p.d.FnKeyword):
		return p.parseLambda()
	default:
		return p.parseOr()
	}
}

func (p *Parser) parseIf() *Node {
	pos := pos(int(p.cur.Line), int(p.cur.Column))
	p.next() // consume if
	cond := p.parseOr()
	if p.d.Then != "" && p.curIsKeyword(p.d.Then) {
		p.next()
	} else if p.d.Do != "" && p.curIsKeyword(p.d.Do) {
		p.next()
	}
	thenBody := p.parseBlockUntil(p.d.Elsif, p.d.Else, p.d.End)

	var elseBody *Node
	hasElse := false
	if p.d.Elsif != "" && p.curIsKeyword(p.d.Elsif) {
		hasElse = true
		elseBody = p.parseIf() // elsif recurses as a nested if, no End consumption
		return &Node{Kind: KIf, Pos: pos, HasElse: hasElse, Children: []*Node{cond, thenBody, elseBody}}
	}
	if p.curIsKeyword(p.d.Else) {
		hasElse = true
		p.next()
		elseBody = p.parseBlockUntil(p.d.End)
	}
	if p.d.End != "" {
		p.expectKeyword(p.d.End)
	}
	children := []*Node{cond, thenBody}
	if hasElse {
		children = append(children, elseBody)
	}
	return &Node{Kind: KIf, Pos: pos, HasElse: hasElse, Children: children}
}

func (p *Parser) parseWhile() *Node {
	pos := pos(int(p.cur.Line), int(p.cur.Column))
	p.next()
	cond := p.parseOr()
	if p.d.Do != "" && p.curIsKeyword(p.d.Do) {
		p.next()
	}
	body := p.parseBlockUntil(p.d.End)
	if p.d.End != "" {
		p.expectKeyword(p.d.End)
	}
	return &Node{Kind: KWhile, Pos: pos, Children: []*Node{cond, body}}
}

func (p *Parser) parseForEach() *Node {
	pos := pos(int(p.cur.Line), int(p.cur.Column))
	p.next()
	iterVar := p.parsePrimary()
	if p.d.In != "" {
		p.expectKeyword(p.d.In)
	}
	collection := p.parseOr()
	if p.d.Do != "" && p.curIsKeyword(p.d.Do) {
		p.next()
	}
	body := p.parseBlockUntil(p.d.End)
	if p.d.End != "" {
		p.expectKeyword(p.d.End)
	}
	return &Node{Kind: KForEach, Pos: pos, Children: []*Node{iterVar, collection, body}}
}

func (p *Parser) parseTry() *Node {
	pos := pos(int(p.cur.Line), int(p.cur.Column))
	p.next()
	body := p.parseBlockUntil(p.d.CatchKeyword, p.d.FinallyKeyword, p.d.End)

	var arms []*Node
	for p.curIsKeyword(p.d.CatchKeyword) {
		p.next()
		pattern := p.parsePrimary()
		if p.d.Arrow != "" {
			p.next() // consume arrow/then token
		}
		catchBody := p.parseBlockUntil(p.d.CatchKeyword, p.d.FinallyKeyword, p.d.End)
		arms = append(arms, &Node{Kind: KMatchArm, Children: []*Node{pattern, nil, catchBody}})
	}

	var elseBody *Node
	if p.curIsKeyword(p.d.FinallyKeyword) {
		p.next()
		elseBody = p.parseBlockUntil(p.d.End)
	}
	if p.d.End != "" {
		p.expectKeyword(p.d.End)
	}
	children := append([]*Node{body}, arms...)
	n := &Node{Kind: KTry, Pos: pos, Children: children, HasElse: elseBody != nil}
	if elseBody != nil {
		n.Children = append(n.Children, elseBody)
	}
	return n
}

func (p *Parser) parseLambda() *Node {
	pos := pos(int(p.cur.Line), int(p.cur.Column))
	p.next() // consume fn keyword
	var params []*Node
	if p.cur.Kind == LPAREN {
		p.next()
		for p.cur.Kind != RPAREN && p.cur.Kind != EOF {
			params = append(params, &Node{Kind: KIdent, Str: p.cur.Literal})
			p.next()
			if p.cur.Kind == COMMA {
				p.next()
			}
		}
		p.next() // consume ')'
	}
	if p.d.Arrow != "" {
		for p.cur.Literal != p.d.Arrow && p.cur.Kind != EOF {
			p.next() // skip to arrow (covers "|x|" style param lists folded elsewhere)
		}
		p.next() // consume arrow
	}
	body := p.parseBlockUntil(p.d.End)
	if p.d.End != "" {
		p.expectKeyword(p.d.End)
	}
	return &Node{Kind: KLambda, Pos: pos, Children: append(params, body)}
}

// --- Pratt-style binary expression chain: or > and > not > comparison > add > mul > unary > primary ---

func (p *Parser) parseOr() *Node {
	left := p.parseAnd()
	for p.isOr() {
		op := p.cur.Literal
		p.next()
		right := p.parseAnd()
		left = &Node{Kind: KBinary, Str: "or", OriginalOp: op, Children: []*Node{left, right}}
	}
	return left
}

func (p *Parser) isOr() bool {
	if p.d.OrKeyword != "" && p.curIsKeyword(p.d.OrKeyword) {
		return true
	}
	if p.d.OrOperator != "" && p.cur.Kind == OPERATOR && p.cur.Literal == p.d.OrOperator {
		return true
	}
	return false
}

func (p *Parser) parseAnd() *Node {
	left := p.parseNot()
	for p.isAnd() {
		op := p.cur.Literal
		p.next()
		right := p.parseNot()
		left = &Node{Kind: KBinary, Str: "and", OriginalOp: op, Children: []*Node{left, right}}
	}
	return left
}

func (p *Parser) isAnd() bool {
	if p.d.AndKeyword != "" && p.curIsKeyword(p.d.AndKeyword) {
		return true
	}
	if p.d.AndOperator != "" && p.cur.Kind == OPERATOR && p.cur.Literal == p.d.AndOperator {
		return true
	}
	return false
}

func (p *Parser) parseNot() *Node {
	if p.d.NotKeyword != "" && p.curIsKeyword(p.d.NotKeyword) {
		p.next()
		operand := p.parseNot()
		return &Node{Kind: KUnary, Str: "not", Children: []*Node{operand}}
	}
	if p.cur.Kind == OPERATOR && p.cur.Literal == "!" {
		p.next()
		operand := p.parseNot()
		return &Node{Kind: KUnary, Str: "!", Children: []*Node{operand}}
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() *Node {
	left := p.parseAdd()
	if canon, ok := p.comparisonOp(); ok {
		orig := p.cur.Literal
		p.next()
		right := p.parseAdd()
		return &Node{Kind: KBinary, Str: canon, OriginalOp: orig, Children: []*Node{left, right}}
	}
	return left
}

func (p *Parser) comparisonOp() (string, bool) {
	lit := p.cur.Literal
	if p.cur.Kind == OPERATOR || p.cur.Kind == ASSIGN {
		if canon, ok := p.d.ComparisonAliases[lit]; ok {
			return canon, true
		}
		if lit == "<" || lit == ">" {
			return lit, true
		}
	}
	return "", false
}

func (p *Parser) parseAdd() *Node {
	left := p.parseMul()
	for p.cur.Kind == OPERATOR && (p.cur.Literal == "+" || p.cur.Literal == "-") {
		op := p.cur.Literal
		p.next()
		right := p.parseMul()
		left = &Node{Kind: KBinary, Str: op, Children: []*Node{left, right}}
	}
	return left
}

func (p *Parser) parseMul() *Node {
	left := p.parseUnary()
	for p.cur.Kind == OPERATOR && (p.cur.Literal == "*" || p.cur.Literal == "/" || p.cur.Literal == "%" || p.cur.Literal == "**") {
		op := p.cur.Literal
		p.next()
		right := p.parseUnary()
		left = &Node{Kind: KBinary, Str: op, Children: []*Node{left, right}}
	}
	return left
}

func (p *Parser) parseUnary() *Node {
	if p.cur.Kind == OPERATOR && p.cur.Literal == "-" {
		p.next()
		operand := p.parseUnary()
		return &Node{Kind: KUnary, Str: "-", Children: []*Node{operand}}
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() *Node {
	tok := p.cur
	npos := pos(int(tok.Line), int(tok.Column))

	switch tok.Kind {
	case INT:
		p.next()
		return &Node{Kind: KIntLit, Str: tok.Literal, Pos: npos}
	case FLOAT:
		p.next()
		return &Node{Kind: KFloatLit, Str: tok.Literal, Pos: npos}
	case STRING:
		p.next()
		return &Node{Kind: KStringLit, Str: tok.Literal, Pos: npos}
	case ATOM:
		p.next()
		return &Node{Kind: KAtomLit, Str: tok.Literal, Pos: npos}
	case LPAREN:
		p.next()
		inner := p.parseOr()
		if p.cur.Kind == RPAREN {
			p.next()
		}
		return inner
	case LBRACKET:
		return p.parseList()
	case LBRACE:
		return p.parseMapOrTuple()
	case KEYWORD:
		switch tok.Literal {
		case p.d.True:
			p.next()
			return &Node{Kind: KBoolLit, Str: "true", Pos: npos}
		case p.d.False:
			p.next()
			return &Node{Kind: KBoolLit, Str: "false", Pos: npos}
		case p.d.Nil:
			p.next()
			return &Node{Kind: KNilLit, Pos: npos}
		}
		p.next()
		return &Node{Kind: KNative, Str: tok.Literal, Pos: npos}
	case IDENT:
		return p.parseIdentOrCall()
	}

	p.errorf("unexpected token %q at line %d", tok.Literal, tok.Line)
	p.next()
	return &Node{Kind: KNative, Str: tok.Literal, Pos: npos}
}

func (p *Parser) parseIdentOrCall() *Node {
	npos := pos(int(p.cur.Line), int(p.cur.Column))
	name := p.cur.Literal
	p.next()

	for p.cur.Kind == DOT {
		p.next()
		if p.cur.Kind != IDENT && p.cur.Kind != KEYWORD {
			break
		}
		name += "." + p.cur.Literal
		p.next()
	}

	if p.cur.Kind == LPAREN {
		p.next()
		var args []*Node
		for p.cur.Kind != RPAREN && p.cur.Kind != EOF {
			args = append(args, p.parseExpression())
			if p.cur.Kind == COMMA {
				p.next()
			}
		}
		if p.cur.Kind == RPAREN {
			p.next()
		}
		return p.buildCall(name, args, npos)
	}

	if p.isVariableName(name) {
		return &Node{Kind: KIdent, Str: name, Pos: npos}
	}
	return &Node{Kind: KAtomLit, Str: name, Pos: npos}
}

func (p *Parser) isVariableName(name string) bool {
	if name == "" {
		return true
	}
	first := name[0]
	isUpper := first >= 'A' && first <= 'Z'
	if p.d.VariableIsUpper {
		return isUpper
	}
	return !isUpper
}

// buildCall wraps a parsed call in the richer collection_op/async_operation
// shapes when its name matches the dialect's known tables (spec §4.3:
// "detected by called function name against a known list"), otherwise
// returns a plain call node.
func (p *Parser) buildCall(name string, args []*Node, npos sitterPoint) *Node {
	if kind, ok := p.d.CollectionFuncs[name]; ok && len(args) >= 2 {
		collection, fn := args[0], args[1]
		if p.d.CollectionArgFuncFirst {
			fn, collection = args[0], args[1]
		}
		n := &Node{Kind: KCollection, Str: kind, Pos: npos, Children: []*Node{fn, collection}}
		if len(args) >= 3 {
			n.Children = append(n.Children, args[2])
		}
		return n
	}
	if kind, ok := p.d.AsyncFuncs[name]; ok && len(args) >= 1 {
		return &Node{Kind: KAsync, Str: kind, Pos: npos, Children: []*Node{args[0]}}
	}
	return &Node{Kind: KCall, Str: name, Pos: npos, Children: args}
}

func (p *Parser) parseList() *Node {
	npos := pos(int(p.cur.Line), int(p.cur.Column))
	p.next() // '['
	var items []*Node
	for p.cur.Kind != RBRACKET && p.cur.Kind != EOF {
		items = append(items, p.parseOr())
		if p.cur.Kind == COMMA {
			p.next()
		}
	}
	if p.cur.Kind == RBRACKET {
		p.next()
	}
	return &Node{Kind: KList, Pos: npos, Children: items}
}

func (p *Parser) parseMapOrTuple() *Node {
	npos := pos(int(p.cur.Line), int(p.cur.Column))
	p.next() // '{'
	var items []*Node
	isMap := false
	for p.cur.Kind != RBRACE && p.cur.Kind != EOF {
		key := p.parseOr()
		if p.cur.Kind == COLON || (p.cur.Kind == OPERATOR && p.cur.Literal == p.d.Arrow) {
			isMap = true
			p.next()
			val := p.parseOr()
			items = append(items, &Node{Kind: KPair, Children: []*Node{key, val}})
		} else {
			items = append(items, key)
		}
		if p.cur.Kind == COMMA {
			p.next()
		}
	}
	if p.cur.Kind == RBRACE {
		p.next()
	}
	if isMap {
		return &Node{Kind: KMap, Pos: npos, Children: items}
	}
	return &Node{Kind: KTuple, Pos: npos, Children: items}
}
