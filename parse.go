package periodictable

import (
	"errors"
	"strconv"
	"strings"
)

// formula        = group { ['+'] group }
// group          = implicit_group | explicit_group
// implicit_group = [count] element { element }
// explicit_group = '(' formula ')' [count]
// element        = SYMBOL [isotope] [count]
// isotope        = '[' DIGITS ']'  -- must abut the symbol
// count          = INTEGER | DECIMAL -- a trailing count must abut its token
//
// A group whose count is 1 contributes its children directly rather than a
// redundant multiplier node, so "CaCO3" and "(CaCO3)" parse to the same
// flat tree.

// maxNesting bounds group recursion so that pathological inputs fail
// instead of exhausting the stack.
const maxNesting = 1024

// Parser parses formula strings against a Resolver. A Parser holds no
// mutable state and is safe for concurrent, re-entrant use.
type Parser struct {
	table Resolver
}

// NewParser creates a parser that resolves symbols with the given table.
// A nil table means the built-in one.
func NewParser(table Resolver) *Parser {
	if table == nil {
		table = defaultTable
	}
	return &Parser{table: table}
}

// defaultParser serves the package-level parsing entry points. It is built
// once at init and shared; it has no mutable fields.
var defaultParser = NewParser(nil)

// ParseTree parses a formula string into its tree. The entire input must be
// consumed; an empty or blank string yields an empty tree.
func (p *Parser) ParseTree(s string) ([]Node, error) {
	scan := lex(s)
	nodes, err := p.parseFormula(scan, 0)
	if err != nil {
		return nil, err
	}
	if tok := scan.must(); tok.kind != tokenEOF {
		return nil, &SyntaxError{Col: tok.pos, Token: tok.text}
	}
	return nodes, nil
}

// parseFormula parses a sequence of groups with optional + separators. It
// pushes the token that ended the sequence, either EOF or an unconsumed
// token such as a close bracket.
func (p *Parser) parseFormula(scan *lexer, depth int) ([]Node, error) {
	var nodes []Node
	sep := false
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenPlus:
			if len(nodes) == 0 || sep {
				return nil, &SyntaxError{Col: tok.pos, Token: tok.text, Want: "group"}
			}
			sep = true
			continue
		case tokenSymbol, tokenNum, tokenOpen:
			scan.push(tok)
			g, err := p.parseGroup(scan, depth)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, g...)
			sep = false
		default:
			if sep {
				return nil, &SyntaxError{Col: tok.pos, Token: tok.text, Want: "group"}
			}
			scan.push(tok)
			return nodes, nil
		}
	}
}

// parseGroup parses one group. A group with a multiplier of 1 is returned
// as its bare children.
func (p *Parser) parseGroup(scan *lexer, depth int) ([]Node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenOpen:
		if depth >= maxNesting {
			return nil, &SyntaxError{Col: tok.pos, Token: tok.text, Want: "less nesting"}
		}
		inner, err := p.parseFormula(scan, depth+1)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		if end.kind != tokenClose {
			return nil, &SyntaxError{Col: end.pos, Token: end.text, Want: `")"`}
		}
		if len(inner) == 0 {
			return nil, &SyntaxError{Col: end.pos, Token: end.text, Want: "group"}
		}
		count, err := p.trailingCount(scan)
		if err != nil {
			return nil, err
		}
		if count == 1 {
			return inner, nil
		}
		return []Node{group(count, inner)}, nil
	case tokenNum:
		// Leading group count. Unlike a trailing count it binds regardless
		// of preceding whitespace: "CaCO3 6H2O" is "CaCO3+6H2O".
		count, err := countValue(tok)
		if err != nil {
			return nil, err
		}
		elems, err := p.parseElements(scan)
		if err != nil {
			return nil, err
		}
		if len(elems) == 0 {
			end, err := scan.next()
			if err != nil {
				return nil, err
			}
			return nil, &SyntaxError{Col: end.pos, Token: end.text, Want: "element"}
		}
		if count == 1 {
			return elems, nil
		}
		return []Node{group(count, elems)}, nil
	case tokenSymbol:
		scan.push(tok)
		return p.parseElements(scan)
	default:
		return nil, &SyntaxError{Col: tok.pos, Token: tok.text, Want: "group"}
	}
}

// parseElements parses a run of zero or more elements.
func (p *Parser) parseElements(scan *lexer) ([]Node, error) {
	var nodes []Node
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenSymbol {
			scan.push(tok)
			return nodes, nil
		}
		n, err := p.parseElement(scan, tok)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
}

// parseElement parses the isotope and count of an element whose symbol has
// already been scanned, and resolves the atom.
func (p *Parser) parseElement(scan *lexer, sym lexToken) (Node, error) {
	iso := 0
	tok, err := scan.next()
	if err != nil {
		return Node{}, err
	}
	if tok.kind == tokenLBrack && tok.abut {
		num, err := scan.next()
		if err != nil {
			return Node{}, err
		}
		if num.kind != tokenNum || !num.abut || strings.Contains(num.text, ".") {
			return Node{}, &SyntaxError{Col: num.pos, Token: num.text, Want: "isotope number"}
		}
		iso, err = strconv.Atoi(num.text)
		if err != nil {
			return Node{}, &SyntaxError{Col: num.pos, Token: num.text, Want: "isotope number"}
		}
		end, err := scan.next()
		if err != nil {
			return Node{}, err
		}
		if end.kind != tokenRBrack || !end.abut {
			return Node{}, &SyntaxError{Col: end.pos, Token: end.text, Want: `"]"`}
		}
	} else {
		scan.push(tok)
	}
	// An isotope number of 0 is the natural element.
	a, err := p.table.ResolveIsotope(sym.text, iso)
	if err != nil {
		var re *ResolutionError
		if errors.As(err, &re) && re.Col == 0 {
			// Fill in the position on a copy; the resolver may hand out a
			// shared error value.
			c := *re
			c.Col = sym.pos
			return Node{}, &c
		}
		return Node{}, err
	}
	count, err := p.trailingCount(scan)
	if err != nil {
		return Node{}, err
	}
	return leaf(count, a), nil
}

// trailingCount consumes a count that directly abuts the previous token.
// A count separated by whitespace is left for the next group, and the
// result is 1.
func (p *Parser) trailingCount(scan *lexer) (float64, error) {
	tok, err := scan.next()
	if err != nil {
		return 0, err
	}
	if tok.kind != tokenNum || !tok.abut {
		scan.push(tok)
		return 1, nil
	}
	return countValue(tok)
}

// countValue converts a count token. Multipliers are positive, so a count
// of zero is rejected.
func countValue(tok lexToken) (float64, error) {
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil || v == 0 {
		return 0, &SyntaxError{Col: tok.pos, Token: tok.text, Want: "positive count"}
	}
	return v, nil
}
