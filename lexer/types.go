package lexer

import (
	"text/scanner"
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid   TokenType = iota
	TokenNumber              // Fixnum: "-12"
	TokenBoolean             // Boolean: "#t" or "#f"
	TokenCharacter           // Character: "#\a"
	TokenString              // String: "\"hi\""
	TokenOpenList            // Open parenthesis: "("
	TokenCloseList           // Close parenthesis: ")"
	TokenSymbol              // Symbol: "set!"
	TokenQuote               // Quote mark: "'"
	TokenBackquote           // Backtick: "`"
	TokenComma               // Comma: ","
	TokenEOF                 // End of input
)

var tokenValues = map[TokenType][]rune{
	TokenOpenList:  []rune{'('},
	TokenCloseList: []rune{')'},
	TokenQuote:     []rune{'\''},
	TokenBackquote: []rune{'`'},
	TokenComma:     []rune{','},
}

var tokenNames = map[TokenType]string{
	TokenInvalid:   "invalid",
	TokenNumber:    "number",
	TokenBoolean:   "boolean",
	TokenCharacter: "character",
	TokenString:    "string",
	TokenOpenList:  "open_list",
	TokenCloseList: "close_list",
	TokenSymbol:    "symbol",
	TokenQuote:     "quote",
	TokenBackquote: "backquote",
	TokenComma:     "comma",
	TokenEOF:       "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

var (
	symbolExtra = []rune("!$%&*/:<=>?^_~")
	symbolBody  = []rune("!$%&*/:<=>?^_~+-.@")
	delimiters  = []rune("()[]\";#")
)

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		return isOneOf(tokenValues[tt], r)
	}
}

func isOneOf(set []rune, r rune) bool {
	for _, v := range set {
		if v == r {
			return true
		}
	}
	return false
}

func isDelimiter(r rune) bool {
	return r == scanner.EOF || unicode.IsSpace(r) || isOneOf(delimiters, r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSymbolStart(r rune) bool {
	return unicode.IsLetter(r) || isOneOf(symbolExtra, r)
}

func isSymbolBody(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || isOneOf(symbolBody, r)
}
