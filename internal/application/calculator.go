package application

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/bnema/spidy/internal/domain"
)

type calcTokenKind int

const (
	calcNumber calcTokenKind = iota
	calcOperator
	calcOpen
	calcClose
)

type calcToken struct {
	kind  calcTokenKind
	op    rune
	value float64
}

var spokenOperators = map[string]rune{
	"x":     '*',
	"times": '*',
	"plus":  '+',
	"minus": '-',
	"over":  '/',
}

// twoWordOperators are spoken operators written as "<word> by".
var twoWordOperators = map[string]rune{
	"multiplied": '*',
	"divided":    '/',
}

// Calculate evaluates a restricted arithmetic expression: numbers, + - * /,
// unary signs and parentheses, plus the spoken operator words. Anything else
// is a *domain.CalculationError.
func Calculate(expression string) (float64, error) {
	tokens, err := lexCalc(expression)
	if err != nil {
		return 0, err
	}

	p := &calcParser{tokens: tokens, source: expression}
	value, err := p.expr()
	if err != nil {
		return 0, err
	}
	if p.pos < len(p.tokens) {
		return 0, p.fail("unexpected trailing input")
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, p.fail("result out of range")
	}

	return value, nil
}

// FormatNumber renders a result the way it is spoken: no exponent, no
// trailing zeros, rounded to ten decimal places.
func FormatNumber(v float64) string {
	v = math.Round(v*1e10) / 1e10
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func lexCalc(expression string) ([]calcToken, error) {
	fail := func(reason string) error {
		return &domain.CalculationError{Expression: expression, Reason: reason}
	}

	runes := []rune(strings.ToLower(expression))
	var tokens []calcToken

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsDigit(r) || r == '.':
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			value, err := strconv.ParseFloat(string(runes[start:i]), 64)
			if err != nil {
				return nil, fail("invalid number " + strconv.Quote(string(runes[start:i])))
			}
			tokens = append(tokens, calcToken{kind: calcNumber, value: value})
		case r == '+' || r == '-' || r == '*' || r == '/':
			tokens = append(tokens, calcToken{kind: calcOperator, op: r})
			i++
		case r == '×':
			tokens = append(tokens, calcToken{kind: calcOperator, op: '*'})
			i++
		case r == '÷':
			tokens = append(tokens, calcToken{kind: calcOperator, op: '/'})
			i++
		case r == '(':
			tokens = append(tokens, calcToken{kind: calcOpen})
			i++
		case r == ')':
			tokens = append(tokens, calcToken{kind: calcClose})
			i++
		case unicode.IsLetter(r):
			start := i
			for i < len(runes) && unicode.IsLetter(runes[i]) {
				i++
			}
			word := string(runes[start:i])
			if op, ok := spokenOperators[word]; ok {
				tokens = append(tokens, calcToken{kind: calcOperator, op: op})
				continue
			}
			op, ok := twoWordOperators[word]
			if !ok {
				return nil, fail("unknown word " + strconv.Quote(word))
			}
			next, end := nextWord(runes, i)
			if next != "by" {
				return nil, fail("expected \"by\" after " + strconv.Quote(word))
			}
			tokens = append(tokens, calcToken{kind: calcOperator, op: op})
			i = end
		default:
			return nil, fail("unexpected character " + strconv.QuoteRune(r))
		}
	}

	if len(tokens) == 0 {
		return nil, fail("empty expression")
	}

	return tokens, nil
}

func nextWord(runes []rune, i int) (string, int) {
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	start := i
	for i < len(runes) && unicode.IsLetter(runes[i]) {
		i++
	}
	return string(runes[start:i]), i
}

type calcParser struct {
	tokens []calcToken
	pos    int
	source string
}

func (p *calcParser) fail(reason string) error {
	return &domain.CalculationError{Expression: p.source, Reason: reason}
}

func (p *calcParser) peekOp(ops ...rune) (rune, bool) {
	if p.pos >= len(p.tokens) || p.tokens[p.pos].kind != calcOperator {
		return 0, false
	}
	for _, op := range ops {
		if p.tokens[p.pos].op == op {
			return op, true
		}
	}
	return 0, false
}

func (p *calcParser) expr() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peekOp('+', '-')
		if !ok {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *calcParser) term() (float64, error) {
	left, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peekOp('*', '/')
		if !ok {
			return left, nil
		}
		p.pos++
		right, err := p.factor()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			left *= right
			continue
		}
		if right == 0 {
			return 0, p.fail("division by zero")
		}
		left /= right
	}
}

func (p *calcParser) factor() (float64, error) {
	if op, ok := p.peekOp('+', '-'); ok {
		p.pos++
		v, err := p.factor()
		if err != nil {
			return 0, err
		}
		if op == '-' {
			return -v, nil
		}
		return v, nil
	}

	if p.pos >= len(p.tokens) {
		return 0, p.fail("unexpected end of expression")
	}

	tok := p.tokens[p.pos]
	switch tok.kind {
	case calcNumber:
		p.pos++
		return tok.value, nil
	case calcOpen:
		p.pos++
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.pos >= len(p.tokens) || p.tokens[p.pos].kind != calcClose {
			return 0, p.fail("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	default:
		return 0, p.fail("unexpected token")
	}
}
