package periodictable

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
	// abut indicates that no whitespace separates this token from the one
	// before it. Counts and isotope brackets bind to the preceding token
	// only when abutting.
	abut bool
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenSymbol is a chemical symbol: an upper case letter followed by any
	// number of lower case letters.
	tokenSymbol
	// tokenNum is an integer or decimal count.
	tokenNum
	// tokenOpen and tokenClose are the group brackets ( and ).
	tokenOpen
	tokenClose
	// tokenLBrack and tokenRBrack are the isotope brackets [ and ].
	tokenLBrack
	tokenRBrack
	// tokenPlus is the optional + separator between groups.
	tokenPlus
)

var tokenKindNames = [...]string{
	tokenNone:   "None",
	tokenEOF:    "EOF",
	tokenSymbol: "Symbol",
	tokenNum:    "Num",
	tokenOpen:   "Open",
	tokenClose:  "Close",
	tokenLBrack: "LBrack",
	tokenRBrack: "RBrack",
	tokenPlus:   "Plus",
}

func (k tokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// lexer scans formula tokens from a string. The zero value is not useful;
// use lex.
type lexer struct {
	src string
	// i is the byte offset of the next rune.
	i int
	// rune is the 1-based rune column of the next rune.
	rune int
	p    lexToken
}

func lex(src string) *lexer {
	return &lexer{src: src, rune: 1}
}

// push unreads a token so that it is the next token returned from next.
// Panics if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("periodictable: double push")
	}
	l.p = tok
}

// must scans the pushed token. Panics if there is no pushed token.
func (l *lexer) must() lexToken {
	tok := l.p
	if tok.kind == tokenNone {
		panic("periodictable: no pushed token")
	}
	l.p = lexToken{}
	return tok
}

// peek returns the rune at the scan position without consuming it, or -1 at
// the end of the input.
func (l *lexer) peek() rune {
	if l.i >= len(l.src) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.i:])
	return r
}

func (l *lexer) readRune() rune {
	r, sz := utf8.DecodeRuneInString(l.src[l.i:])
	l.i += sz
	l.rune++
	return r
}

// next scans the next token from the input. The end of the input yields an
// EOF token with no error, repeatedly.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	abut := true
	for l.i < len(l.src) && unicode.IsSpace(l.peek()) {
		l.readRune()
		abut = false
	}
	tok := lexToken{pos: l.rune, abut: abut}
	if l.i >= len(l.src) {
		tok.kind = tokenEOF
		return tok, nil
	}
	start := l.i
	switch r := l.readRune(); {
	case 'A' <= r && r <= 'Z':
		for l.i < len(l.src) {
			if c := l.peek(); 'a' <= c && c <= 'z' {
				l.readRune()
				continue
			}
			break
		}
		tok.text = l.src[start:l.i]
		tok.kind = tokenSymbol
		return tok, nil
	case '0' <= r && r <= '9', r == '.':
		dig := r != '.'
		dot := r == '.'
		for l.i < len(l.src) {
			c := l.peek()
			switch {
			case '0' <= c && c <= '9':
				dig = true
			case c == '.' && !dot:
				dot = true
			default:
				c = -1
			}
			if c == -1 {
				break
			}
			l.readRune()
		}
		tok.text = l.src[start:l.i]
		if !dig {
			return tok, &SyntaxError{Col: tok.pos, Token: tok.text, Want: "number"}
		}
		tok.kind = tokenNum
		return tok, nil
	case r == '(':
		tok.text, tok.kind = "(", tokenOpen
		return tok, nil
	case r == ')':
		tok.text, tok.kind = ")", tokenClose
		return tok, nil
	case r == '[':
		tok.text, tok.kind = "[", tokenLBrack
		return tok, nil
	case r == ']':
		tok.text, tok.kind = "]", tokenRBrack
		return tok, nil
	case r == '+':
		tok.text, tok.kind = "+", tokenPlus
		return tok, nil
	default:
		return tok, &SyntaxError{Col: tok.pos, Token: string(r)}
	}
}
