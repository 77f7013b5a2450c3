package lexer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"text/scanner"
	"unicode"
)

type lexState func(*Lexer) lexState

var (
	isOpenList  = isTokenType(TokenOpenList)
	isCloseList = isTokenType(TokenCloseList)

	isQuote     = isTokenType(TokenQuote)
	isBackquote = isTokenType(TokenBackquote)
	isComma     = isTokenType(TokenComma)
)

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	s := &scanner.Scanner{}
	s.Init(r)
	s.Error = func(*scanner.Scanner, string) {}

	return &Lexer{
		in:    s,
		state: lexDefaultState,
		buf:   []rune{},

		line: 1,
		col:  1,

		startLine: 1,
		startCol:  1,
	}
}

// Lexer represents a lexical analyzer. It only reads as much input as needed
// to produce the next token.
type Lexer struct {
	in *scanner.Scanner

	state   lexState
	queue   []Token
	lastErr error

	buf []rune

	line int
	col  int

	startLine int
	startCol  int
}

// Next returns the next token. Once the input is exhausted it keeps returning
// a TokenEOF token; once a lexing error happens it keeps returning it.
func (lx *Lexer) Next() (Token, error) {
	for len(lx.queue) == 0 {
		if lx.lastErr != nil {
			return Token{}, lx.lastErr
		}
		if lx.state == nil {
			return Token{tt: TokenEOF, line: lx.line, col: lx.col}, nil
		}
		lx.state = lx.state(lx)
	}

	tok := lx.queue[0]
	lx.queue = lx.queue[1:]
	return tok, nil
}

func (lx *Lexer) emit(tt TokenType) {
	lx.emitText(tt, string(lx.buf))
}

func (lx *Lexer) emitText(tt TokenType, text string) {
	lx.queue = append(lx.queue, Token{
		tt:     tt,
		lexeme: text,

		line: lx.startLine,
		col:  lx.startCol,
	})
	lx.ignore()
}

func (lx *Lexer) ignore() {
	lx.buf = lx.buf[0:0]
	lx.startLine, lx.startCol = lx.line, lx.col
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() rune {
	r := lx.in.Next()
	if r == scanner.EOF {
		return r
	}

	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}

	lx.buf = append(lx.buf, r)
	return r
}

func lexDefaultState(lx *Lexer) lexState {
	r := lx.next()

	switch {
	case r == scanner.EOF:
		lx.emit(TokenEOF)
		return nil

	case unicode.IsSpace(r):
		lx.ignore()
		return lexDefaultState

	case isOpenList(r):
		return lexEmit(TokenOpenList)
	case isCloseList(r):
		return lexEmit(TokenCloseList)

	case isQuote(r):
		return lexEmit(TokenQuote)
	case isBackquote(r):
		return lexEmit(TokenBackquote)
	case isComma(r):
		return lexEmit(TokenComma)

	case r == '"':
		return lexString
	case r == '#':
		return lexHash
	case r == '-' || isDigit(r):
		return lexNumber
	case isSymbolStart(r):
		return lexSymbol
	}

	return lexStateError(fmt.Errorf("%w: %q", ErrInvalidCharacter, r))
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexNumber(lx *Lexer) lexState {
	for isDigit(lx.peek()) {
		lx.next()
	}
	if p := lx.peek(); !isDelimiter(p) {
		return lexStateError(fmt.Errorf("%w: non-numeric digit %q", ErrInvalidLiteral, p))
	}

	text := string(lx.buf)
	if text == "-" {
		return lexStateError(fmt.Errorf("%w: %q is not a number", ErrInvalidLiteral, text))
	}
	if _, err := strconv.ParseInt(text, 10, 64); err != nil {
		return lexStateError(fmt.Errorf("%w: %q is out of range", ErrInvalidLiteral, text))
	}

	lx.emit(TokenNumber)
	return lexDefaultState
}

func lexHash(lx *Lexer) lexState {
	switch lx.next() {
	case 't', 'f':
		if !isDelimiter(lx.peek()) {
			return lexStateError(fmt.Errorf("%w after %q", ErrMissingDelimiter, string(lx.buf)))
		}
		lx.emit(TokenBoolean)

	case '\\':
		if lx.next() == scanner.EOF {
			return lexStateError(fmt.Errorf("%w: expecting a character after %q", ErrInvalidLiteral, string(lx.buf)))
		}
		if !isDelimiter(lx.peek()) {
			return lexStateError(fmt.Errorf("%w after %q", ErrMissingDelimiter, string(lx.buf)))
		}
		lx.emit(TokenCharacter)

	default:
		return lexStateError(fmt.Errorf("%w: %q", ErrInvalidLiteral, string(lx.buf)))
	}

	return lexDefaultState
}

func lexString(lx *Lexer) lexState {
	text := []rune{}

	for {
		r := lx.next()

		switch r {
		case scanner.EOF:
			return lexStateError(ErrUnterminatedString)

		case '\\':
			e := lx.next()
			if e == scanner.EOF {
				return lexStateError(ErrUnterminatedString)
			}
			text = append(text, unescape(e))

		case '"':
			if !isDelimiter(lx.peek()) {
				return lexStateError(fmt.Errorf("%w after string", ErrMissingDelimiter))
			}
			lx.emitText(TokenString, string(text))
			return lexDefaultState

		default:
			text = append(text, r)
		}
	}
}

func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	}
	return r
}

func lexSymbol(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if isDelimiter(p) {
			break
		}
		if !isSymbolBody(p) {
			return lexStateError(fmt.Errorf("%w: %q in symbol", ErrInvalidCharacter, p))
		}
		lx.next()
	}

	lx.emit(TokenSymbol)
	return lexDefaultState
}

func lexStateError(err error) lexState {
	return func(lx *Lexer) lexState {
		lx.lastErr = &Error{
			Line: lx.startLine,
			Col:  lx.startCol,
			Err:  err,
		}
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// ending with TokenEOF, or an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}

	lx := New(bytes.NewReader(in))
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Is(TokenEOF) {
			return tokens, nil
		}
	}
}
