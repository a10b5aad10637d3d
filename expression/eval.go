package expression

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// After the rewrite pipeline has run, what remains is a plain expression over
// literals: arithmetic, comparisons, logical operators with value semantics
// (a || b yields an operand, not a bool), the conditional operator, and the
// empty array literal left behind by the projection rewrite. This file is the
// tokenizer, parser, and tree evaluator for that closed grammar.

const maxParseDepth = 200

type tokenKind int

const (
	tkEOF tokenKind = iota
	tkNumber
	tkString
	tkIdent
	tkOp
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

type lexer struct {
	src string
	pos int
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && unicode.IsSpace(rune(l.src[l.pos])) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token{kind: tkEOF}, nil
	}

	c := l.src[l.pos]

	if c >= '0' && c <= '9' || c == '.' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1]) {
		start := l.pos
		for l.pos < len(l.src) && (isDigit(l.src[l.pos]) || l.src[l.pos] == '.') {
			l.pos++
		}
		text := l.src[start:l.pos]
		num, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token{}, fmt.Errorf("invalid number %q", text)
		}
		return token{kind: tkNumber, text: text, num: num}, nil
	}

	if c == '\'' || c == '"' {
		quote := c
		l.pos++
		start := l.pos
		for l.pos < len(l.src) && l.src[l.pos] != quote {
			l.pos++
		}
		if l.pos >= len(l.src) {
			return token{}, fmt.Errorf("unterminated string")
		}
		text := l.src[start:l.pos]
		l.pos++
		return token{kind: tkString, text: text}, nil
	}

	if isIdentStart(c) {
		start := l.pos
		for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tkIdent, text: l.src[start:l.pos]}, nil
	}

	two := ""
	if l.pos+1 < len(l.src) {
		two = l.src[l.pos : l.pos+2]
	}
	switch two {
	case "||", "&&", "==", "!=", "<=", ">=":
		l.pos += 2
		return token{kind: tkOp, text: two}, nil
	}

	switch c {
	case '+', '-', '*', '/', '%', '<', '>', '!', '?', ':', '(', ')', '[', ']', ',':
		l.pos++
		return token{kind: tkOp, text: string(c)}, nil
	}

	return token{}, fmt.Errorf("unexpected character %q", string(c))
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return c == '_' || c == '$' || unicode.IsLetter(rune(c)) }
func isIdentPart(c byte) bool  { return isIdentStart(c) || isDigit(c) }

// AST

type node interface {
	eval() (any, error)
}

type litNode struct{ v any }

func (n litNode) eval() (any, error) { return n.v, nil }

// identNode is an identifier the grammar does not know. It only fails if the
// evaluator actually reaches it, so short-circuiting can skip dead branches.
type identNode struct{ name string }

func (n identNode) eval() (any, error) {
	return nil, fmt.Errorf("unknown identifier %q", n.name)
}

type unaryNode struct {
	op string
	x  node
}

func (n unaryNode) eval() (any, error) {
	v, err := n.x.eval()
	if err != nil {
		return nil, err
	}
	switch n.op {
	case "!":
		return !truthy(v), nil
	case "-":
		return -toNumber(v), nil
	case "+":
		return toNumber(v), nil
	}
	return nil, fmt.Errorf("unknown unary operator %q", n.op)
}

type binaryNode struct {
	op   string
	x, y node
}

func (n binaryNode) eval() (any, error) {
	left, err := n.x.eval()
	if err != nil {
		return nil, err
	}

	switch n.op {
	case "||":
		if truthy(left) {
			return left, nil
		}
		return n.y.eval()
	case "&&":
		if !truthy(left) {
			return left, nil
		}
		return n.y.eval()
	}

	right, err := n.y.eval()
	if err != nil {
		return nil, err
	}

	switch n.op {
	case "==":
		return looseEq(left, right), nil
	case "!=":
		return !looseEq(left, right), nil
	case "<", "<=", ">", ">=":
		return compare(n.op, left, right), nil
	case "+":
		if isStringish(left) || isStringish(right) {
			return valueToString(left) + valueToString(right), nil
		}
		return toNumber(left) + toNumber(right), nil
	case "-":
		return toNumber(left) - toNumber(right), nil
	case "*":
		return toNumber(left) * toNumber(right), nil
	case "/":
		return toNumber(left) / toNumber(right), nil
	case "%":
		return math.Mod(toNumber(left), toNumber(right)), nil
	}
	return nil, fmt.Errorf("unknown operator %q", n.op)
}

// isStringish reports whether + should concatenate: strings do, and arrays
// convert to their string form before concatenation.
func isStringish(v any) bool {
	switch v.(type) {
	case string, []any:
		return true
	}
	return false
}

// compare applies a relational operator. Two strings compare
// lexicographically; anything else compares numerically, and comparisons
// involving NaN are false.
func compare(op string, left, right any) bool {
	ls, lok := left.(string)
	rs, rok := right.(string)
	if lok && rok {
		switch op {
		case "<":
			return ls < rs
		case "<=":
			return ls <= rs
		case ">":
			return ls > rs
		case ">=":
			return ls >= rs
		}
		return false
	}

	ln, rn := toNumber(left), toNumber(right)
	if math.IsNaN(ln) || math.IsNaN(rn) {
		return false
	}
	switch op {
	case "<":
		return ln < rn
	case "<=":
		return ln <= rn
	case ">":
		return ln > rn
	case ">=":
		return ln >= rn
	}
	return false
}

type ternaryNode struct {
	cond, then, els node
}

func (n ternaryNode) eval() (any, error) {
	c, err := n.cond.eval()
	if err != nil {
		return nil, err
	}
	if truthy(c) {
		return n.then.eval()
	}
	return n.els.eval()
}

// Parser

type parser struct {
	lex   *lexer
	tok   token
	depth int
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *parser) acceptOp(ops ...string) (string, bool) {
	if p.tok.kind != tkOp {
		return "", false
	}
	for _, op := range ops {
		if p.tok.text == op {
			return op, true
		}
	}
	return "", false
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxParseDepth {
		return fmt.Errorf("expression too deeply nested")
	}
	return nil
}

func (p *parser) parseExpr() (node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	cond, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if _, ok := p.acceptOp("?"); !ok {
		return cond, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, ok := p.acceptOp(":"); !ok {
		return nil, fmt.Errorf("expected ':' in conditional, got %q", p.tok.text)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ternaryNode{cond: cond, then: then, els: els}, nil
}

func (p *parser) parseBinary(sub func() (node, error), ops ...string) (node, error) {
	left, err := sub()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.acceptOp(ops...)
		if !ok {
			return left, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := sub()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, x: left, y: right}
	}
}

func (p *parser) parseOr() (node, error) {
	return p.parseBinary(p.parseAnd, "||")
}

func (p *parser) parseAnd() (node, error) {
	return p.parseBinary(p.parseEquality, "&&")
}

func (p *parser) parseEquality() (node, error) {
	return p.parseBinary(p.parseRelational, "==", "!=")
}

func (p *parser) parseRelational() (node, error) {
	return p.parseBinary(p.parseAdditive, "<", "<=", ">", ">=")
}

func (p *parser) parseAdditive() (node, error) {
	return p.parseBinary(p.parseMultiplicative, "+", "-")
}

func (p *parser) parseMultiplicative() (node, error) {
	return p.parseBinary(p.parseUnary, "*", "/", "%")
}

func (p *parser) parseUnary() (node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	if op, ok := p.acceptOp("!", "-", "+"); ok {
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{op: op, x: x}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (node, error) {
	switch p.tok.kind {
	case tkNumber:
		n := litNode{v: p.tok.num}
		return n, p.advance()
	case tkString:
		n := litNode{v: p.tok.text}
		return n, p.advance()
	case tkIdent:
		name := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch name {
		case "true":
			return litNode{v: true}, nil
		case "false":
			return litNode{v: false}, nil
		case "null":
			return litNode{v: nil}, nil
		case "NaN":
			return litNode{v: math.NaN()}, nil
		case "Infinity":
			return litNode{v: math.Inf(1)}, nil
		}
		return identNode{name: name}, nil
	case tkOp:
		switch p.tok.text {
		case "(":
			if err := p.advance(); err != nil {
				return nil, err
			}
			inner, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, ok := p.acceptOp(")"); !ok {
				return nil, fmt.Errorf("expected ')', got %q", p.tok.text)
			}
			return inner, p.advance()
		case "[":
			if err := p.advance(); err != nil {
				return nil, err
			}
			if _, ok := p.acceptOp("]"); !ok {
				return nil, fmt.Errorf("expected ']', got %q", p.tok.text)
			}
			return litNode{v: []any{}}, p.advance()
		}
	}
	return nil, fmt.Errorf("unexpected token %q", p.tok.text)
}

// evalReduced parses and evaluates a fully substituted expression string.
func evalReduced(src string) (any, error) {
	if strings.TrimSpace(src) == "" {
		return nil, nil
	}

	p := &parser{lex: &lexer{src: src}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tkEOF {
		return nil, fmt.Errorf("unexpected trailing token %q", p.tok.text)
	}
	return root.eval()
}
