package haskell

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

type sitterPoint = sitter.Point

// Parser is a recursive-descent parser over the reduced, expression-
// oriented Haskell surface this adapter supports: if-then-else always
// carries both branches, let..in and lambdas need no terminating
// keyword, and do/case blocks use explicit braces+semicolons rather
// than Haskell's real layout rule (a deliberate simplification recorded
// in DESIGN.md). A keyword that starts no supported construct becomes a
// native node; any other unexpected token is recorded as a parse error,
// which makes Parse fail.
type Parser struct {
	lex  *Lexer
	cur  Token
	peek Token

	errors []string
}

func NewParser(source string) *Parser {
	p := &Parser{lex: NewLexer(source)}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) curIsKeyword(kw string) bool {
	return p.cur.Kind == KEYWORD && p.cur.Literal == kw
}

func (p *Parser) expectKeyword(kw string) {
	if !p.curIsKeyword(kw) {
		p.errorf("expected keyword %q at line %d, got %q", kw, p.cur.Line, p.cur.Literal)
		return
	}
	p.next()
}

// ParseProgram parses a semicolon-separated sequence of bindings and/or
// bare expressions.
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

func (p *Parser) parseStatement() *Node {
	if p.cur.Kind == IDENT && p.peek.Kind == ASSIGN {
		npos := pos(int(p.cur.Line), int(p.cur.Column))
		name := p.cur.Literal
		p.next()
		p.next() // consume '='
		value := p.parseExpression()
		return &Node{Kind: KAssign, Pos: npos, Children: []*Node{{Kind: KIdent, Str: name}, value}}
	}
	return p.parseExpression()
}

func (p *Parser) parseExpression() *Node {
	switch {
	case p.curIsKeyword("if"):
		return p.parseIf()
	case p.curIsKeyword("let"):
		return p.parseLet()
	case p.cur.Kind == BACKSLASH:
		return p.parseLambda()
	case p.curIsKeyword("case"):
		return p.parseCase()
	case p.curIsKeyword("do"):
		return p.parseDo()
	default:
		return p.parseOr()
	}
}

func (p *Parser) parseIf() *Node {
	npos := pos(int(p.cur.Line), int(p.cur.Column))
	p.expectKeyword("if")
	cond := p.parseExpression()
	p.expectKeyword("then")
	then := p.parseExpression()
	p.expectKeyword("else")
	els := p.parseExpression()
	return &Node{Kind: KIf, Pos: npos, Children: []*Node{cond, then, els}}
}

func (p *Parser) parseLet() *Node {
	npos := pos(int(p.cur.Line), int(p.cur.Column))
	p.expectKeyword("let")
	name := p.cur.Literal
	p.next()
	if p.cur.Kind == ASSIGN {
		p.next()
	} else {
		p.errorf("expected '=' in let-binding at line %d", p.cur.Line)
	}
	bound := p.parseExpression()
	p.expectKeyword("in")
	body := p.parseExpression()
	return &Node{Kind: KLet, Pos: npos, Children: []*Node{{Kind: KIdent, Str: name}, bound, body}}
}

func (p *Parser) parseLambda() *Node {
	npos := pos(int(p.cur.Line), int(p.cur.Column))
	p.next() // consume '\'
	var params []*Node
	for p.cur.Kind == IDENT {
		params = append(params, &Node{Kind: KIdent, Str: p.cur.Literal})
		p.next()
	}
	if p.cur.Kind == OPERATOR && p.cur.Literal == "->" {
		p.next()
	} else {
		p.errorf("expected '->' in lambda at line %d", p.cur.Line)
	}
	body := p.parseExpression()
	return &Node{Kind: KLambda, Pos: npos, Children: append(params, body)}
}

func (p *Parser) parseCase() *Node {
	npos := pos(int(p.cur.Line), int(p.cur.Column))
	p.expectKeyword("case")
	scrutinee := p.parseOr()
	p.expectKeyword("of")
	if p.cur.Kind == LBRACE {
		p.next()
	} else {
		p.errorf("expected '{' to open case block at line %d", p.cur.Line)
	}
	n := &Node{Kind: KMatch, Pos: npos, Children: []*Node{scrutinee}}
	for p.cur.Kind != RBRACE && p.cur.Kind != EOF {
		pattern := p.parsePrimary()
		if p.cur.Kind == OPERATOR && p.cur.Literal == "->" {
			p.next()
		} else {
			p.errorf("expected '->' in case arm at line %d", p.cur.Line)
		}
		body := p.parseExpression()
		n.Children = append(n.Children, &Node{Kind: KMatchArm, Children: []*Node{pattern, nil, body}})
		if p.cur.Kind == SEMI {
			p.next()
		}
	}
	if p.cur.Kind == RBRACE {
		p.next()
	}
	return n
}

func (p *Parser) parseDo() *Node {
	npos := pos(int(p.cur.Line), int(p.cur.Column))
	p.expectKeyword("do")
	if p.cur.Kind == LBRACE {
		p.next()
	} else {
		p.errorf("expected '{' to open do block at line %d", p.cur.Line)
	}
	var stmts []*Node
	for p.cur.Kind != RBRACE && p.cur.Kind != EOF {
		if p.cur.Kind == IDENT && p.peek.Kind == OPERATOR && p.peek.Literal == "<-" {
			name := p.cur.Literal
			p.next()
			p.next() // consume '<-'
			action := p.parseExpression()
			stmts = append(stmts, &Node{Kind: KAssign, Children: []*Node{{Kind: KIdent, Str: name}, action}})
		} else {
			stmts = append(stmts, p.parseStatement())
		}
		if p.cur.Kind == SEMI {
			p.next()
		}
	}
	if p.cur.Kind == RBRACE {
		p.next()
	}
	return &Node{Kind: KBlock, Pos: npos, Children: stmts}
}

func (p *Parser) parseOr() *Node {
	left := p.parseAnd()
	for p.cur.Kind == OPERATOR && p.cur.Literal == "||" {
		p.next()
		right := p.parseAnd()
		left = &Node{Kind: KBinary, Str: "or", OriginalOp: "||", Children: []*Node{left, right}}
	}
	return left
}

func (p *Parser) parseAnd() *Node {
	left := p.parseNot()
	for p.cur.Kind == OPERATOR && p.cur.Literal == "&&" {
		p.next()
		right := p.parseNot()
		left = &Node{Kind: KBinary, Str: "and", OriginalOp: "&&", Children: []*Node{left, right}}
	}
	return left
}

func (p *Parser) parseNot() *Node {
	if p.curIsKeyword("not") {
		p.next()
		operand := p.parseNot()
		return &Node{Kind: KUnary, Str: "not", Children: []*Node{operand}}
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() *Node {
	left := p.parseAdd()
	if canon, orig, ok := p.comparisonOp(); ok {
		p.next()
		right := p.parseAdd()
		return &Node{Kind: KBinary, Str: canon, OriginalOp: orig, Children: []*Node{left, right}}
	}
	return left
}

func (p *Parser) comparisonOp() (string, string, bool) {
	if p.cur.Kind != OPERATOR {
		return "", "", false
	}
	switch p.cur.Literal {
	case "==":
		return "==", "==", true
	case "/=":
		return "!=", "/=", true
	case "<=":
		return "<=", "<=", true
	case ">=":
		return ">=", ">=", true
	case "<", ">":
		return p.cur.Literal, p.cur.Literal, true
	}
	return "", "", false
}

func (p *Parser) parseAdd() *Node {
	left := p.parseMul()
	for p.cur.Kind == OPERATOR && (p.cur.Literal == "+" || p.cur.Literal == "-" || p.cur.Literal == "++") {
		op := p.cur.Literal
		p.next()
		right := p.parseMul()
		left = &Node{Kind: KBinary, Str: op, Children: []*Node{left, right}}
	}
	return left
}

func (p *Parser) parseMul() *Node {
	left := p.parseUnary()
	for p.cur.Kind == OPERATOR && (p.cur.Literal == "*" || p.cur.Literal == "/") {
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

var collectionFuncs = map[string]string{
	"map":    "map",
	"filter": "filter",
	"foldl":  "reduce",
	"foldr":  "reduce",
}

var asyncFuncs = map[string]string{
	"forkIO": "spawn",
}

func (p *Parser) parsePrimary() *Node {
	t := p.cur
	npos := pos(int(t.Line), int(t.Column))

	switch t.Kind {
	case INT:
		p.next()
		return &Node{Kind: KIntLit, Str: t.Literal, Pos: npos}
	case FLOAT:
		p.next()
		return &Node{Kind: KFloatLit, Str: t.Literal, Pos: npos}
	case STRING:
		p.next()
		return &Node{Kind: KStringLit, Str: t.Literal, Pos: npos}
	case LPAREN:
		p.next()
		inner := p.parseTupleOrParen(npos)
		return inner
	case LBRACKET:
		return p.parseList()
	case KEYWORD:
		switch t.Literal {
		case "True":
			p.next()
			return &Node{Kind: KBoolLit, Str: "true", Pos: npos}
		case "False":
			p.next()
			return &Node{Kind: KBoolLit, Str: "false", Pos: npos}
		}
		p.next()
		return &Node{Kind: KNative, Str: t.Literal, Pos: npos}
	case IDENT:
		return p.parseIdentOrCall()
	}

	p.errorf("unexpected token %q at line %d", t.Literal, t.Line)
	p.next()
	return &Node{Kind: KNative, Str: t.Literal, Pos: npos}
}

func (p *Parser) parseTupleOrParen(npos sitterPoint) *Node {
	if p.cur.Kind == RPAREN {
		p.next()
		return &Node{Kind: KTuple, Pos: npos}
	}
	first := p.parseExpression()
	if p.cur.Kind != COMMA {
		if p.cur.Kind == RPAREN {
			p.next()
		}
		return first
	}
	items := []*Node{first}
	for p.cur.Kind == COMMA {
		p.next()
		items = append(items, p.parseExpression())
	}
	if p.cur.Kind == RPAREN {
		p.next()
	}
	return &Node{Kind: KTuple, Pos: npos, Children: items}
}

func (p *Parser) parseIdentOrCall() *Node {
	t := p.cur
	npos := pos(int(t.Line), int(t.Column))
	name := t.Literal
	p.next()

	if p.cur.Kind == LPAREN {
		p.next()
		var args []*Node
		for p.cur.Kind != RPAREN && p.cur.Kind != EOF {
			args = append(args, p.parseOr())
			if p.cur.Kind == COMMA {
				p.next()
			}
		}
		if p.cur.Kind == RPAREN {
			p.next()
		}
		return p.buildCall(name, args, npos)
	}

	// Haskell's juxtaposition application ("f x y") for known collection
	// functions, so "map f xs" parses the same way "map(f, xs)" would.
	if kind, ok := collectionFuncs[name]; ok {
		var args []*Node
		for p.canStartArg() {
			args = append(args, p.parsePrimary())
		}
		if len(args) >= 2 {
			n := &Node{Kind: KCollection, Str: kind, Pos: npos, Children: []*Node{args[0], args[1]}}
			if len(args) >= 3 {
				n.Children = append(n.Children, args[2])
			}
			return n
		}
		return &Node{Kind: KCall, Str: name, Pos: npos, Children: args}
	}

	return &Node{Kind: KIdent, Str: name, Pos: npos}
}

func (p *Parser) canStartArg() bool {
	switch p.cur.Kind {
	case IDENT, INT, FLOAT, STRING, LPAREN, LBRACKET:
		return true
	}
	return false
}

func (p *Parser) buildCall(name string, args []*Node, npos sitterPoint) *Node {
	if kind, ok := collectionFuncs[name]; ok && len(args) >= 2 {
		n := &Node{Kind: KCollection, Str: kind, Pos: npos, Children: []*Node{args[0], args[1]}}
		if len(args) >= 3 {
			n.Children = append(n.Children, args[2])
		}
		return n
	}
	if kind, ok := asyncFuncs[name]; ok && len(args) >= 1 {
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
