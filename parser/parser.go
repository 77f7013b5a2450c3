package parser

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/xiam/crisp/ast"
	"github.com/xiam/crisp/lexer"
)

var sugar = map[lexer.TokenType]*ast.Symbol{
	lexer.TokenQuote:     ast.Intern("quote"),
	lexer.TokenBackquote: ast.Intern("quasiquote"),
	lexer.TokenComma:     ast.Intern("unquote"),
}

type tokenSource interface {
	Next() (lexer.Token, error)
}

type tokenSlice struct {
	tokens []lexer.Token
}

func (ts *tokenSlice) Next() (lexer.Token, error) {
	if len(ts.tokens) == 0 {
		return lexer.Token{}, io.ErrUnexpectedEOF
	}
	tok := ts.tokens[0]
	if !tok.Is(lexer.TokenEOF) {
		ts.tokens = ts.tokens[1:]
	}
	return tok, nil
}

// Parser reads values out of a stream of tokens
type Parser struct {
	lx tokenSource

	nextTok *lexer.Token
}

// New creates a parser that reads from r
func New(r io.Reader) *Parser {
	return newParser(lexer.New(r))
}

func newParser(lx tokenSource) *Parser {
	return &Parser{lx: lx}
}

// Next parses and returns the next value, or io.EOF when the input has no
// more values. Nothing is returned along with an error.
func (p *Parser) Next() (ast.Value, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Is(lexer.TokenEOF) {
		return nil, io.EOF
	}
	return p.parseValue(tok)
}

func (p *Parser) peek() (*lexer.Token, error) {
	if p.nextTok != nil {
		return p.nextTok, nil
	}

	tok, err := p.lx.Next()
	if err != nil {
		return nil, err
	}
	p.nextTok = &tok
	return p.nextTok, nil
}

func (p *Parser) next() (*lexer.Token, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	p.nextTok = nil
	return tok, nil
}

func (p *Parser) parseValue(tok *lexer.Token) (ast.Value, error) {
	switch tok.Type() {
	case lexer.TokenNumber:
		i64, err := strconv.ParseInt(tok.Text(), 10, 64)
		if err != nil {
			return nil, parserError(tok, fmt.Errorf("%w: %v", ErrUnexpectedToken, err))
		}
		return ast.Fixnum(i64), nil

	case lexer.TokenBoolean:
		return ast.NewBoolean(tok.Text() == "#t"), nil

	case lexer.TokenCharacter:
		r := []rune(tok.Text())
		return ast.Character(r[len(r)-1]), nil

	case lexer.TokenString:
		return ast.NewString(tok.Text()), nil

	case lexer.TokenSymbol:
		return ast.Intern(tok.Text()), nil

	case lexer.TokenOpenList:
		return p.parseList(tok)

	case lexer.TokenQuote, lexer.TokenBackquote, lexer.TokenComma:
		return p.parseSugar(tok)

	case lexer.TokenEOF:
		return nil, parserError(tok, ErrUnexpectedEOF)
	}

	return nil, parserError(tok, fmt.Errorf("%w %q", ErrUnexpectedToken, tok.Text()))
}

func (p *Parser) parseList(open *lexer.Token) (ast.Value, error) {
	var listSoFar ast.Value = ast.EmptyList

	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}

		switch tok.Type() {
		case lexer.TokenEOF:
			return nil, parserError(open, fmt.Errorf("%w: list is never closed", ErrUnexpectedEOF))
		case lexer.TokenCloseList:
			return ast.Reverse(listSoFar), nil
		}

		value, err := p.parseValue(tok)
		if err != nil {
			return nil, err
		}
		listSoFar = ast.Cons(value, listSoFar)
	}
}

func (p *Parser) parseSugar(mark *lexer.Token) (ast.Value, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Is(lexer.TokenEOF) {
		return nil, parserError(mark, fmt.Errorf("%w: expecting a value after %q", ErrUnexpectedEOF, mark.Text()))
	}

	value, err := p.parseValue(tok)
	if err != nil {
		return nil, err
	}
	return ast.List(sugar[mark.Type()], value), nil
}

func parserError(tok *lexer.Token, err error) error {
	line, col := tok.Pos()
	return &Error{Line: line, Col: col, Err: err}
}

// Parse reads every value in the input. Either all values are returned or
// none.
func Parse(in []byte) ([]ast.Value, error) {
	p := New(bytes.NewReader(in))

	values := []ast.Value{}
	for {
		value, err := p.Next()
		if err == io.EOF {
			return values, nil
		}
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
}

// ReadLine reads exactly one value out of a line of text. The whole line is
// tokenized before parsing, so a lexing failure anywhere on the line aborts
// the read. A blank line returns ast.Void.
func ReadLine(line string) (ast.Value, error) {
	tokens, err := lexer.Tokenize([]byte(line))
	if err != nil {
		return nil, err
	}

	p := newParser(&tokenSlice{tokens: tokens})

	value, err := p.Next()
	if err == io.EOF {
		return ast.Void, nil
	}
	if err != nil {
		return nil, err
	}

	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if !tok.Is(lexer.TokenEOF) {
		return nil, parserError(tok, fmt.Errorf("%w: %q", ErrTrailingInput, tok.Text()))
	}

	return value, nil
}
