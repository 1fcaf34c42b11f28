package astcalc

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// lexToken is a single token from an input expression.
type lexToken struct {
	// text is the text of the token.
	text string
	// kind is the category of the token.
	kind tokenKind
	// val is the parsed value of a tokenNum.
	val float64
	// pos is the position of the token as the number of runes up to and
	// including the start of its text.
	pos int
}

// String formats the token as its kind, text, and position.
func (l lexToken) String() string {
	return l.kind.String() + ":" + l.text + "@" + strconv.Itoa(l.pos)
}

type tokenKind int

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go mod tidy

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a number literal.
	tokenNum
	// Operator tokens, one per symbol. tokenFac is the postfix factorial.
	tokenPlus
	tokenMinus
	tokenMul
	tokenDiv
	tokenPow
	tokenFac
	// Keyword tokens for the prefix functions. tokenLog is spelled ln in
	// the input.
	tokenSin
	tokenCos
	tokenTan
	tokenExp
	tokenLog
	// tokenOpen and tokenClose are the parentheses.
	tokenOpen
	tokenClose
)

// keywords are the fixed spellings recognized as prefix function tokens.
var keywords = []struct {
	text string
	kind tokenKind
}{
	{"sin", tokenSin},
	{"cos", tokenCos},
	{"tan", tokenTan},
	{"exp", tokenExp},
	{"ln", tokenLog},
}

// lexer is an expression lexer over a string.
type lexer struct {
	// src is the input.
	src string
	// off is the byte offset of the unscanned input.
	off int
	// col is the number of runes consumed. Token positions are 1-based.
	col int
	// p is a pushed-back token, if its kind is not tokenNone.
	p lexToken
}

// lex creates a lexer over src.
func lex(src string) *lexer {
	return &lexer{src: src, col: 1}
}

// push pushes a token back onto the lexer, to be produced by the next call
// to next or must. Panics if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("astcalc: double push")
	}
	l.p = tok
}

// must gets the pushed-back token. Panics if there is none.
func (l *lexer) must() lexToken {
	if l.p.kind == tokenNone {
		panic("astcalc: no pushed token")
	}
	tok := l.p
	l.p = lexToken{}
	return tok
}

// next scans the next token from the input. Once the input is exhausted,
// every call produces an EOF token, so the parser can treat the end of
// input like any other terminator.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	l.space()
	tok := lexToken{pos: l.col}
	if l.off == len(l.src) {
		tok.kind = tokenEOF
		return tok, nil
	}
	switch l.src[l.off] {
	case '+':
		return l.take(tok, tokenPlus, 1), nil
	case '-':
		return l.take(tok, tokenMinus, 1), nil
	case '*':
		return l.take(tok, tokenMul, 1), nil
	case '/':
		return l.take(tok, tokenDiv, 1), nil
	case '^':
		return l.take(tok, tokenPow, 1), nil
	case '!':
		return l.take(tok, tokenFac, 1), nil
	case '(':
		return l.take(tok, tokenOpen, 1), nil
	case ')':
		return l.take(tok, tokenClose, 1), nil
	}
	for _, kw := range keywords {
		if strings.HasPrefix(l.src[l.off:], kw.text) {
			return l.take(tok, kw.kind, len(kw.text)), nil
		}
	}
	if c := l.src[l.off]; '0' <= c && c <= '9' {
		return l.num(tok), nil
	}
	return tok, l.error()
}

// space skips the whitespace the grammar ignores between tokens: space,
// tab, newline, and form feed. Any other character, including carriage
// return, must begin a token.
func (l *lexer) space() {
	for l.off < len(l.src) {
		switch l.src[l.off] {
		case ' ', '\t', '\n', '\f':
			l.off++
			l.col++
		default:
			return
		}
	}
}

// take consumes n bytes of ASCII input as a token of the given kind.
func (l *lexer) take(tok lexToken, kind tokenKind, n int) lexToken {
	tok.text = l.src[l.off : l.off+n]
	tok.kind = kind
	l.off += n
	l.col += n
	return tok
}

// num scans a number literal. The grammar is that of JSON numbers without
// a sign: an integer part with no superfluous leading zero, then an
// optional fraction and an optional exponent. A dot or exponent mark not
// followed by a digit is not part of the literal and is left in place for
// the next scan.
func (l *lexer) num(tok lexToken) lexToken {
	rest := l.src[l.off:]
	n := 1
	if rest[0] != '0' {
		for n < len(rest) && digit(rest[n]) {
			n++
		}
	}
	if n < len(rest) && rest[n] == '.' {
		m := n + 1
		for m < len(rest) && digit(rest[m]) {
			m++
		}
		if m > n+1 {
			n = m
		}
	}
	if n < len(rest) && (rest[n] == 'e' || rest[n] == 'E') {
		m := n + 1
		if m < len(rest) && (rest[m] == '+' || rest[m] == '-') {
			m++
		}
		k := m
		for k < len(rest) && digit(rest[k]) {
			k++
		}
		if k > m {
			n = k
		}
	}
	tok = l.take(tok, tokenNum, n)
	// The grammar leaves no syntax errors for ParseFloat to find. A
	// literal beyond float64 range rounds to an infinity or to zero.
	v, _ := strconv.ParseFloat(tok.text, 64)
	tok.val = v
	return tok
}

// digit reports whether c is an ASCII digit.
func digit(c byte) bool {
	return '0' <= c && c <= '9'
}

// error creates a LexError for input that cannot begin any token.
func (l *lexer) error() error {
	r, _ := utf8.DecodeRuneInString(l.src[l.off:])
	return &LexError{Text: string(r), Col: l.col}
}

// LexError is an error from invalid input characters. It implements
// InputError.
type LexError struct {
	// Text is the character which cannot begin a token.
	Text string
	// Col is the position of the character as the number of runes up to
	// and including it.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	return "invalid token at " + pos + ": " + err.Text
}

// Pos returns the position at which the invalid text occurred.
func (err *LexError) Pos() int {
	return err.Col
}
