// Package parser implements a Pratt (precedence-climbing) parser that turns
// a token stream from the lexer into an ast.Node tree.
package parser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/abhisnowflakedev/snowflow/ast"
	"github.com/abhisnowflakedev/snowflow/lexer"
)

// ParseError carries a token position and a brief expected-category message.
type ParseError struct {
	Pos     lexer.Position
	Message string
}

func (e ParseError) String() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// ParseResult is the outcome of a Parse or ParseMeasure call.
type ParseResult struct {
	Success bool
	AST     ast.Node
	Errors  []ParseError
}

// opInfo is what binaryOpInfo maps a binary operator's token kind or keyword
// text to: its climbing precedence and resulting ast.BinaryOperator. Higher binds
// tighter. POWER is right-associative; all others are left-associative.
type opInfo struct {
	prec  int
	op    ast.BinaryOperator
	right bool
}

const (
	precOr = iota + 1
	precAnd
	precCompare
	precAmpersand
	precAdd
	precMul
	precPower
)

// abortParse unwinds the recursive-descent stack once the single permitted
// error-recovery attempt has also failed.
type abortParse struct{}

type parser struct {
	tokens  []lexer.Token
	pos     int
	errors  []ParseError
	synced  bool // whether the one allowed recovery attempt has been used
}

// Parse parses a single FL expression.
func Parse(src string) ParseResult {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return ParseResult{
			Success: false,
			Errors:  []ParseError{{Message: err.Error()}},
		}
	}

	p := &parser{tokens: tokens}

	return p.run(func() ast.Node {
		expr := p.parseExpr(0)
		p.expectEOF()

		return expr
	})
}

// ParseMeasure parses a named measure definition: `[Name] = expression`.
func ParseMeasure(src string) ParseResult {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return ParseResult{
			Success: false,
			Errors:  []ParseError{{Message: err.Error()}},
		}
	}

	p := &parser{tokens: tokens}

	return p.run(func() ast.Node {
		return p.parseMeasureDef()
	})
}

func (p *parser) run(body func() ast.Node) (result ParseResult) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(abortParse); ok {
				result = ParseResult{Success: false, Errors: p.errors}
				return
			}

			panic(r)
		}
	}()

	node := body()

	return ParseResult{
		Success: len(p.errors) == 0,
		AST:     node,
		Errors:  p.errors,
	}
}

func (p *parser) parseMeasureDef() ast.Node {
	name := p.expect(lexer.BRACKETED, "measure name in [brackets]")
	p.expect(lexer.ASSIGN, "'=' after measure name")
	expr := p.parseExpr(0)
	p.expectEOF()

	return &ast.MeasureDef{Name: name.Lexeme, Expression: expr}
}

func (p *parser) cur() lexer.Token {
	if p.pos >= len(p.tokens) {
		if len(p.tokens) == 0 {
			return lexer.Token{Kind: lexer.EOF}
		}

		return p.tokens[len(p.tokens)-1]
	}

	return p.tokens[p.pos]
}

func (p *parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}

	return t
}

func (p *parser) expectEOF() {
	if p.cur().Kind != lexer.EOF {
		p.fail(p.cur().Pos, fmt.Sprintf("unexpected trailing token %q", p.cur().Lexeme))
	}
}

func (p *parser) expect(kind lexer.Kind, what string) lexer.Token {
	if p.cur().Kind != kind {
		p.fail(p.cur().Pos, fmt.Sprintf("expected %s", what))
		return lexer.Token{}
	}

	return p.advance()
}

// fail records a parse error and attempts, at most once per parse, to
// resynchronize by skipping to the next comma or closing parenthesis at the
// current nesting depth. If the single recovery attempt has already been
// used, it aborts the parse immediately.
func (p *parser) fail(pos lexer.Position, msg string) {
	p.errors = append(p.errors, ParseError{Pos: pos, Message: msg})

	if p.synced {
		panic(abortParse{})
	}

	p.synced = true

	depth := 0

	for p.cur().Kind != lexer.EOF {
		switch p.cur().Kind {
		case lexer.LPAREN:
			depth++
		case lexer.RPAREN:
			if depth == 0 {
				return
			}

			depth--
		case lexer.COMMA:
			if depth == 0 {
				return
			}
		}

		p.advance()
	}
}

func isKeywordText(t lexer.Token, word string) bool {
	return t.Kind == lexer.IDENT && strings.EqualFold(t.Lexeme, word)
}

func binaryOpInfo(t lexer.Token) (opInfo, bool) {
	switch t.Kind {
	case lexer.ASSIGN:
		return opInfo{prec: precCompare, op: ast.EQ}, true
	case lexer.NOT_EQ:
		return opInfo{prec: precCompare, op: ast.NE}, true
	case lexer.LT:
		return opInfo{prec: precCompare, op: ast.LT}, true
	case lexer.LE:
		return opInfo{prec: precCompare, op: ast.LE}, true
	case lexer.GT:
		return opInfo{prec: precCompare, op: ast.GT}, true
	case lexer.GE:
		return opInfo{prec: precCompare, op: ast.GE}, true
	case lexer.AMP:
		return opInfo{prec: precAmpersand, op: ast.AMPERSAND}, true
	case lexer.PLUS:
		return opInfo{prec: precAdd, op: ast.ADD}, true
	case lexer.MINUS:
		return opInfo{prec: precAdd, op: ast.SUB}, true
	case lexer.STAR:
		return opInfo{prec: precMul, op: ast.MUL}, true
	case lexer.SLASH:
		return opInfo{prec: precMul, op: ast.DIV}, true
	case lexer.CARET:
		return opInfo{prec: precPower, op: ast.POWER, right: true}, true
	case lexer.AND_AND:
		return opInfo{prec: precAnd, op: ast.AND}, true
	case lexer.OR_OR:
		return opInfo{prec: precOr, op: ast.OR}, true
	}

	if isKeywordText(t, "AND") {
		return opInfo{prec: precAnd, op: ast.AND}, true
	}

	if isKeywordText(t, "OR") {
		return opInfo{prec: precOr, op: ast.OR}, true
	}

	return opInfo{}, false
}

// parseExpr implements precedence climbing: it parses a unary operand, then
// repeatedly absorbs binary operators whose precedence is >= minPrec.
func (p *parser) parseExpr(minPrec int) ast.Node {
	left := p.parseUnary()

	for {
		info, ok := binaryOpInfo(p.cur())
		if !ok || info.prec < minPrec {
			return left
		}

		p.advance()

		nextMin := info.prec + 1
		if info.right {
			nextMin = info.prec
		}

		right := p.parseExpr(nextMin)
		left = &ast.BinaryOp{Op: info.op, Left: left, Right: right}
	}
}

// parseUnary handles the unary operators, which bind tighter than any
// binary operator (including POWER) per the precedence ladder in §4.2.
func (p *parser) parseUnary() ast.Node {
	switch {
	case p.cur().Kind == lexer.MINUS:
		p.advance()
		return &ast.UnaryOp{Op: ast.NEGATE, Operand: p.parseUnary()}
	case p.cur().Kind == lexer.BANG:
		p.advance()
		return &ast.UnaryOp{Op: ast.NOT, Operand: p.parseUnary()}
	case isKeywordText(p.cur(), "NOT"):
		p.advance()
		return &ast.UnaryOp{Op: ast.NOT, Operand: p.parseUnary()}
	default:
		return p.parsePostfix()
	}
}

func (p *parser) parsePostfix() ast.Node {
	return p.parsePrimary()
}

func (p *parser) parsePrimary() ast.Node {
	t := p.cur()

	switch t.Kind {
	case lexer.NUMBER_INT, lexer.NUMBER_DECIMAL:
		p.advance()

		dec, err := decimal.NewFromString(t.Lexeme)
		if err != nil {
			p.fail(t.Pos, fmt.Sprintf("invalid number literal %q", t.Lexeme))
			return &ast.Literal{Type: ast.LiteralNumber}
		}

		return &ast.Literal{Type: ast.LiteralNumber, Number: dec}

	case lexer.STRING:
		p.advance()
		return &ast.Literal{Type: ast.LiteralString, String: t.Lexeme}

	case lexer.KEYWORD_TRUE:
		p.advance()
		return &ast.Literal{Type: ast.LiteralBoolean, Bool: true}

	case lexer.KEYWORD_FALSE:
		p.advance()
		return &ast.Literal{Type: ast.LiteralBoolean, Bool: false}

	case lexer.KEYWORD_BLANK:
		p.advance()
		return &ast.Literal{Type: ast.LiteralBlank}

	case lexer.BRACKETED:
		p.advance()
		return &ast.Column{ColumnName: t.Lexeme}

	case lexer.LPAREN:
		p.advance()

		expr := p.parseExpr(0)
		p.expect(lexer.RPAREN, "')'")

		return expr

	case lexer.IDENT:
		return p.parseIdentStarting(t)

	default:
		p.fail(t.Pos, fmt.Sprintf("unexpected token %q", t.Lexeme))
		return &ast.Literal{Type: ast.LiteralBlank}
	}
}

// parseIdentStarting disambiguates the three productions that begin with an
// identifier: Table[Column], Func(args), and a bare Table reference.
func (p *parser) parseIdentStarting(t lexer.Token) ast.Node {
	p.advance()

	switch p.cur().Kind {
	case lexer.BRACKETED:
		col := p.advance()
		return &ast.Column{TableName: t.Lexeme, ColumnName: col.Lexeme}

	case lexer.LPAREN:
		return p.parseFunctionCall(t.Lexeme)

	default:
		return &ast.Table{TableName: t.Lexeme}
	}
}

func (p *parser) parseFunctionCall(name string) ast.Node {
	p.advance() // '('

	var args []ast.Node

	if p.cur().Kind != lexer.RPAREN {
		args = append(args, p.parseExpr(0))

		for p.cur().Kind == lexer.COMMA {
			p.advance()
			args = append(args, p.parseExpr(0))
		}
	}

	p.expect(lexer.RPAREN, "')' to close argument list")

	return &ast.FunctionCall{FunctionName: name, Arguments: args}
}
