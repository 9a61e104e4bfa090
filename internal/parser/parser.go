// Package parser implements the operator-precedence parser that turns a
// token stream into an AST (spec §4.2). It is purely syntactic: whether an
// identifier names a legal type, or a digit-only identifier will later
// resolve to an integer literal, is the evaluator's concern, not this
// package's.
package parser

import (
	"github.com/jleeming/exprlang/internal/ast"
	"github.com/jleeming/exprlang/internal/errors"
	"github.com/jleeming/exprlang/internal/lexer"
)

// comparisonOps maps a comparison token to its handler name and the
// "back" handler name tried on the right operand when the left operand
// has no handler (spec §4.3's operator table).
var comparisonOps = map[lexer.TokenType]struct{ name, back, symbol string }{
	lexer.LESS:          {"less", "greater", "<"},
	lexer.LESS_EQUAL:    {"less_equal", "greater_equal", "<="},
	lexer.GREATER:       {"greater", "less", ">"},
	lexer.GREATER_EQUAL: {"greater_equal", "less_equal", ">="},
	lexer.EQUALITY:      {"equality", "equality", "=="},
	lexer.NONEQUALITY:   {"nonequality", "nonequality", "!="},
	lexer.IDENTITY:      {"identity", "identity", "is"},
}

var compoundAssignOps = map[lexer.TokenType]struct{ name, symbol string }{
	lexer.PLUS_EQUALS:  {"plus", "+"},
	lexer.MINUS_EQUALS: {"minus", "-"},
	lexer.STAR_EQUALS:  {"star", "*"},
	lexer.SLASH_EQUALS: {"slash", "/"},
}

// Parser consumes a fixed token slice produced by the lexer and builds an
// AST from it.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse tokenizes source and parses it into a Block of top-level
// statements. Lexer failures are folded into the same SyntaxError
// category the parser itself raises, so callers see one uniform error
// type regardless of which stage rejected the source.
func Parse(source string) (*ast.Block, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		if lexErr, ok := err.(*lexer.SyntaxError); ok {
			return nil, errors.NewSyntaxError(lexErr.Pos, "unexpected %q", lexErr.Snippet)
		}
		return nil, err
	}
	return NewParser(tokens).ParseProgram()
}

// NewParser builds a Parser over an already-tokenized stream.
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek(n int) lexer.Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	tok := p.current()
	if tok.Type != tt {
		return tok, errors.NewSyntaxError(tok.Pos, "expected %s, found %s", tt, tok)
	}
	return p.advance(), nil
}

func (p *Parser) expectIdentifier() (lexer.Token, error) {
	tok := p.current()
	if tok.Type != lexer.IDENTIFIER {
		return tok, errors.NewSyntaxError(tok.Pos, "expected identifier, found %s", tok)
	}
	return p.advance(), nil
}

// ParseProgram parses the whole token stream as a top-level Block.
func (p *Parser) ParseProgram() (*ast.Block, error) {
	pos := p.current().Pos
	block := &ast.Block{Position: pos}
	for p.current().Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	return block, nil
}

func (p *Parser) parseStatement() (ast.Node, error) {
	tok := p.current()
	switch tok.Type {
	case lexer.KWD_FOR:
		return p.parseFor()
	case lexer.KWD_WHILE:
		return p.parseWhile()
	case lexer.KWD_IF:
		return p.parseIf()
	case lexer.KWD_NONLOCAL:
		return p.parseNonlocal()
	case lexer.KWD_CLASS, lexer.KWD_FINAL:
		return nil, errors.NewSyntaxError(tok.Pos, "%q is reserved and not supported", tok.Lexeme)
	case lexer.LEFT_BRACE:
		return p.parseBlock()
	case lexer.KWD_CONST:
		return p.parseConstDecl()
	case lexer.KWD_AUTO:
		return p.parseAutoDecl()
	case lexer.IDENTIFIER:
		switch p.peek(1).Type {
		case lexer.IDENTIFIER:
			return p.parseTypedDecl()
		case lexer.EQUALS:
			return p.parseAssign()
		default:
			if _, ok := compoundAssignOps[p.peek(1).Type]; ok {
				return p.parseCompoundAssign()
			}
		}
	}
	return p.parseExprStatement()
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	pos := p.current().Pos
	if _, err := p.expect(lexer.LEFT_BRACE); err != nil {
		return nil, err
	}
	block := &ast.Block{Position: pos}
	for p.current().Type != lexer.RIGHT_BRACE {
		if p.current().Type == lexer.EOF {
			return nil, errors.NewSyntaxError(p.current().Pos, "unterminated block, expected %s", lexer.RIGHT_BRACE)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if _, err := p.expect(lexer.RIGHT_BRACE); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *Parser) parseConstDecl() (ast.Node, error) {
	pos := p.current().Pos
	if _, err := p.expect(lexer.KWD_CONST); err != nil {
		return nil, err
	}
	if p.current().Type == lexer.KWD_AUTO {
		p.advance()
		name, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.EQUALS); err != nil {
			return nil, err
		}
		init, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		return &ast.VarDecl{Position: pos, Name: name.Lexeme, Init: init, Const: true}, nil
	}

	typeTok, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.EQUALS); err != nil {
		return nil, err
	}
	init, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	typeName := typeTok.Lexeme
	return &ast.VarDecl{Position: pos, Name: name.Lexeme, Type: &typeName, Init: init, Const: true}, nil
}

func (p *Parser) parseAutoDecl() (ast.Node, error) {
	pos := p.current().Pos
	if _, err := p.expect(lexer.KWD_AUTO); err != nil {
		return nil, err
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.EQUALS); err != nil {
		return nil, err
	}
	init, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ast.VarDecl{Position: pos, Name: name.Lexeme, Init: init}, nil
}

func (p *Parser) parseTypedDecl() (ast.Node, error) {
	pos := p.current().Pos
	typeTok, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	var init ast.Node
	if p.current().Type == lexer.EQUALS {
		p.advance()
		init, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	typeName := typeTok.Lexeme
	return &ast.VarDecl{Position: pos, Name: name.Lexeme, Type: &typeName, Init: init}, nil
}

func (p *Parser) parseAssign() (ast.Node, error) {
	pos := p.current().Pos
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.EQUALS); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ast.VarAssign{Position: pos, Name: name.Lexeme, Value: value}, nil
}

func (p *Parser) parseCompoundAssign() (ast.Node, error) {
	pos := p.current().Pos
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	opTok := p.advance()
	op, ok := compoundAssignOps[opTok.Type]
	if !ok {
		return nil, errors.NewSyntaxError(opTok.Pos, "expected a compound assignment operator, found %s", opTok)
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ast.AssignOp{Position: pos, Name: op.name, Symbol: op.symbol, Target: name.Lexeme, Value: value}, nil
}

func (p *Parser) parseNonlocal() (ast.Node, error) {
	pos := p.current().Pos
	if _, err := p.expect(lexer.KWD_NONLOCAL); err != nil {
		return nil, err
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ast.NonLocal{Position: pos, Name: name.Lexeme}, nil
}

func (p *Parser) parseFor() (ast.Node, error) {
	pos := p.current().Pos
	if _, err := p.expect(lexer.KWD_FOR); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	init, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	check, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	change, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.For{Position: pos, Init: init, Check: check, Change: change, Body: body}, nil
}

func (p *Parser) parseWhile() (ast.Node, error) {
	pos := p.current().Pos
	if _, err := p.expect(lexer.KWD_WHILE); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	check, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Position: pos, Check: check, Body: body}, nil
}

func (p *Parser) parseIf() (ast.Node, error) {
	pos := p.current().Pos
	if _, err := p.expect(lexer.KWD_IF); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	check, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	elseBody := ast.Node(&ast.Block{Position: pos})
	if p.current().Type == lexer.KWD_ELSE {
		p.advance()
		elseBody, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Position: pos, Check: check, Body: body, Else: elseBody}, nil
}

func (p *Parser) parseExprStatement() (ast.Node, error) {
	pos := p.current().Pos
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ast.ExprStatement{Position: pos, Expr: expr}, nil
}

// parseExpr is the entry point for the expression grammar, starting at
// the lowest-precedence level (comparisons).
func (p *Parser) parseExpr() (ast.Node, error) {
	return p.parseComparison()
}

func (p *Parser) parseComparison() (ast.Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := comparisonOps[p.current().Type]
		if !ok {
			return left, nil
		}
		pos := p.current().Pos
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.ComparisonOp{Position: pos, Name: op.name, BackName: op.back, Symbol: op.symbol, Left: left, Right: right}
	}
}

func (p *Parser) parseAdditive() (ast.Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.current()
		var name, symbol string
		switch tok.Type {
		case lexer.PLUS:
			name, symbol = "plus", "+"
		case lexer.MINUS:
			name, symbol = "minus", "-"
		default:
			return left, nil
		}
		pos := tok.Pos
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Position: pos, Name: name, Symbol: symbol, Left: left, Right: right}
	}
}

func (p *Parser) parseMultiplicative() (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.current()
		var name, symbol string
		switch tok.Type {
		case lexer.STAR:
			name, symbol = "star", "*"
		case lexer.SLASH:
			name, symbol = "slash", "/"
		default:
			return left, nil
		}
		pos := tok.Pos
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Position: pos, Name: name, Symbol: symbol, Left: left, Right: right}
	}
}

func (p *Parser) parseUnary() (ast.Node, error) {
	tok := p.current()
	var name, symbol string
	switch tok.Type {
	case lexer.PLUS:
		name, symbol = "plus", "+"
	case lexer.MINUS:
		name, symbol = "minus", "-"
	default:
		return p.parsePostfix()
	}
	p.advance()
	child, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryOp{Position: tok.Pos, Name: name, Symbol: symbol, Child: child}, nil
}

// parsePostfix parses a dot chain and then, only when the result is a
// bare variable reference, an optional trailing `++`/`--` (spec §4.3:
// inc/dec targets are named variables, not arbitrary dot expressions).
func (p *Parser) parsePostfix() (ast.Node, error) {
	node, err := p.parseDot()
	if err != nil {
		return nil, err
	}
	ref, isRef := node.(*ast.VarRef)
	tok := p.current()
	switch tok.Type {
	case lexer.INCREMENT:
		if !isRef {
			return nil, errors.NewSyntaxError(tok.Pos, "++ requires a variable name")
		}
		p.advance()
		return &ast.IncDecOp{Position: tok.Pos, Name: "increment", Symbol: "++", Target: ref.Name}, nil
	case lexer.DECREMENT:
		if !isRef {
			return nil, errors.NewSyntaxError(tok.Pos, "-- requires a variable name")
		}
		p.advance()
		return &ast.IncDecOp{Position: tok.Pos, Name: "decrement", Symbol: "--", Target: ref.Name}, nil
	}
	return node, nil
}

func (p *Parser) parseDot() (ast.Node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.current().Type == lexer.PERIOD {
		pos := p.current().Pos
		p.advance()
		if p.current().Type == lexer.IDENTIFIER {
			name := p.advance()
			left = &ast.Dot{Position: pos, Left: left, Right: &ast.VarRef{Position: name.Pos, Name: name.Lexeme}, RightIsRef: true}
			continue
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.Dot{Position: pos, Left: left, Right: right, RightIsRef: false}
	}
	return left, nil
}

func (p *Parser) parsePrimary() (ast.Node, error) {
	tok := p.current()
	switch tok.Type {
	case lexer.IDENTIFIER:
		p.advance()
		return &ast.VarRef{Position: tok.Pos, Name: tok.Lexeme}, nil
	case lexer.LEFT_PAREN:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
			return nil, err
		}
		return expr, nil
	}
	return nil, errors.NewSyntaxError(tok.Pos, "unexpected token %s", tok)
}
