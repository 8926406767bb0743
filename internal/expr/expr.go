// Package expr evaluates day-count quantity expressions.
//
// The grammar is deliberately tiny: affine arithmetic over one free
// variable d (the trip day count), with '+', '-', '*', '/', parentheses
// and an implicit-multiplication form "Nd" (e.g. "2d" = 2*d).
// Division is ceiling division: "d/3" means "one every three days", and a
// partial interval still needs an item.
package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseError describes a malformed expression.
type ParseError struct {
	Expr string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid expression %q: %s", e.Expr, e.Msg)
}

// Evaluate computes the quantity an expression yields for the given day
// count. An empty expression evaluates to 1 (the "single" default). A
// purely numeric expression evaluates to that number directly. The result
// is rounded to the nearest integer and clamped to a minimum of 1.
func Evaluate(expression string, days int) (int, error) {
	src := normalize(expression)
	if src == "" {
		return 1, nil
	}
	if n, err := strconv.Atoi(src); err == nil {
		return finish(float64(n)), nil
	}

	toks, err := tokenize(src)
	if err != nil {
		return 0, err
	}
	p := &parser{src: src, toks: toks, days: float64(days)}
	v, err := p.parseExpression()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.toks) {
		return 0, p.errorf("unexpected %q", p.toks[p.pos].text)
	}
	return finish(v), nil
}

// ValidationResult reports whether an expression parses, without throwing.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Validate checks an expression against a placeholder day count.
func Validate(expression string) ValidationResult {
	if _, err := Evaluate(expression, 7); err != nil {
		return ValidationResult{Valid: false, Error: err.Error()}
	}
	return ValidationResult{Valid: true}
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

func finish(v float64) int {
	n := int(math.Round(v))
	if n < 1 {
		return 1
	}
	return n
}

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokDay              // "d" or "Nd"
	tokOp               // + - * /
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	num  float64 // literal value, or coefficient for "Nd"
}

// tokenize scans the normalized source. The concatenation of the scanned
// token texts must reconstruct the source exactly; anything left over is a
// parse error, never a best-effort parse.
func tokenize(src string) ([]token, error) {
	var toks []token
	var consumed strings.Builder
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '+' || c == '-' || c == '*' || c == '/':
			toks = append(toks, token{kind: tokOp, text: string(c)})
			consumed.WriteByte(c)
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, text: "("})
			consumed.WriteByte(c)
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, text: ")"})
			consumed.WriteByte(c)
			i++
		case c == 'd':
			toks = append(toks, token{kind: tokDay, text: "d", num: 1})
			consumed.WriteByte(c)
			i++
		case c >= '0' && c <= '9':
			j := i
			for j < len(src) && src[j] >= '0' && src[j] <= '9' {
				j++
			}
			text := src[i:j]
			n, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, &ParseError{Expr: src, Msg: "bad number " + text}
			}
			if j < len(src) && src[j] == 'd' {
				text = src[i : j+1]
				toks = append(toks, token{kind: tokDay, text: text, num: n})
				j++
			} else {
				toks = append(toks, token{kind: tokNumber, text: text, num: n})
			}
			consumed.WriteString(text)
			i = j
		default:
			return nil, &ParseError{Expr: src, Msg: fmt.Sprintf("unexpected character %q", string(c))}
		}
	}
	if consumed.String() != src {
		return nil, &ParseError{Expr: src, Msg: "could not tokenize"}
	}
	return toks, nil
}

type parser struct {
	src  string
	toks []token
	pos  int
	days float64
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Expr: p.src, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

// expression := term (('+' | '-') term)*
func (p *parser) parseExpression() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokOp || (t.text != "+" && t.text != "-") {
			return v, nil
		}
		p.pos++
		rhs, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if t.text == "+" {
			v += rhs
		} else {
			v -= rhs
		}
	}
}

// term := factor (('*' | '/') factor)*
func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokOp || (t.text != "*" && t.text != "/") {
			return v, nil
		}
		p.pos++
		rhs, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		if t.text == "*" {
			v *= rhs
		} else {
			if rhs == 0 {
				return 0, p.errorf("division by zero")
			}
			v = math.Ceil(v / rhs)
		}
	}
}

// factor := '(' expression ')' | NUMBER 'd' | 'd' | NUMBER
func (p *parser) parseFactor() (float64, error) {
	t, ok := p.peek()
	if !ok {
		return 0, p.errorf("unexpected end of expression")
	}
	switch t.kind {
	case tokLParen:
		p.pos++
		v, err := p.parseExpression()
		if err != nil {
			return 0, err
		}
		t, ok := p.peek()
		if !ok || t.kind != tokRParen {
			return 0, p.errorf("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	case tokDay:
		p.pos++
		return t.num * p.days, nil
	case tokNumber:
		p.pos++
		return t.num, nil
	default:
		return 0, p.errorf("unexpected %q", t.text)
	}
}
