package application

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/bnema/spidy/internal/domain"
)

// CompiledPattern is a command template ready for matching. It is built once
// at startup and never mutated.
type CompiledPattern struct {
	Index    int
	Template domain.CommandTemplate
	expr     *regexp.Regexp
	wildcard bool
}

func (p *CompiledPattern) HasWildcard() bool {
	return p.wildcard
}

// Expr returns the compiled regular expression, mostly useful for debugging
// template order.
func (p *CompiledPattern) Expr() string {
	return p.expr.String()
}

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenGroup
	tokenWildcard
)

type token struct {
	kind tokenKind
	text string
	alts []string
}

// CompilePatterns compiles templates in declaration order and checks their
// app bindings against apps. Every malformed template is reported; the
// returned slice only holds the templates that compiled.
func CompilePatterns(templates []domain.CommandTemplate, apps domain.AppRegistry) ([]*CompiledPattern, error) {
	compiled := make([]*CompiledPattern, 0, len(templates))
	var errs []error

	for i, tmpl := range templates {
		pattern, err := CompilePattern(i, tmpl)
		if err == nil {
			err = checkBinding(i, tmpl, pattern.wildcard, apps)
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		compiled = append(compiled, pattern)
	}

	return compiled, errors.Join(errs...)
}

func CompilePattern(index int, tmpl domain.CommandTemplate) (*CompiledPattern, error) {
	fail := func(format string, args ...any) error {
		return &domain.TemplateError{Index: index, Pattern: tmpl.Pattern, Reason: fmt.Sprintf(format, args...)}
	}

	tokens, reason := tokenize(tmpl.Pattern)
	if reason != "" {
		return nil, fail("%s", reason)
	}

	wildcards := 0
	literals := 0
	for _, tok := range tokens {
		if tok.kind == tokenWildcard {
			wildcards++
		} else {
			literals++
		}
	}
	switch {
	case len(tokens) == 0:
		return nil, fail("empty pattern")
	case wildcards > 1:
		return nil, fail("more than one wildcard")
	case literals == 0:
		return nil, fail("pattern has no literal tokens")
	}

	parts := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		switch tok.kind {
		case tokenWord:
			parts = append(parts, phraseExpr(tok.text))
		case tokenGroup:
			alts := make([]string, 0, len(tok.alts))
			for _, alt := range tok.alts {
				alts = append(alts, phraseExpr(alt))
			}
			parts = append(parts, "(?:"+strings.Join(alts, "|")+")")
		case tokenWildcard:
			if i == len(tokens)-1 {
				parts = append(parts, "(.+)")
			} else {
				parts = append(parts, "(.+?)")
			}
		}
	}

	expr, err := regexp.Compile(`(?:^|\s)` + strings.Join(parts, `\s+`) + `(?:\s|$)`)
	if err != nil {
		return nil, fail("%v", err)
	}

	return &CompiledPattern{Index: index, Template: tmpl, expr: expr, wildcard: wildcards == 1}, nil
}

func checkBinding(index int, tmpl domain.CommandTemplate, wildcard bool, apps domain.AppRegistry) error {
	fail := func(format string, args ...any) error {
		return &domain.TemplateError{Index: index, Pattern: tmpl.Pattern, Reason: fmt.Sprintf(format, args...)}
	}

	intent := tmpl.EffectiveIntent()
	if intent == "" {
		return fail("missing intent")
	}
	if !intent.Known() {
		return fail("unknown intent %q", intent)
	}

	if !tmpl.BoundToApp() {
		if intent.RequiresApp() {
			return fail("intent %q requires an app", intent)
		}
		return nil
	}

	if !intent.RequiresApp() {
		return fail("intent %q cannot be bound to app %q", intent, tmpl.AppID)
	}
	app, err := apps.Get(tmpl.AppID)
	if err != nil {
		return fail("unknown app %q", tmpl.AppID)
	}
	if wildcard && !app.HasLink(intent) {
		return fail("app %q has no %q link", tmpl.AppID, intent)
	}
	if !wildcard && app.WebURL == "" && app.NativeScheme == "" {
		return fail("app %q has no url to open", tmpl.AppID)
	}

	return nil
}

// phraseExpr quotes a normalized phrase so whitespace inside it matches any
// whitespace run.
func phraseExpr(phrase string) string {
	words := strings.Fields(NormalizeTranscript(phrase))
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(words, `\s+`)
}

// tokenize splits a pattern into words, groups and wildcards. A non-empty
// reason means the pattern is malformed.
func tokenize(pattern string) ([]token, string) {
	runes := []rune(strings.TrimSpace(pattern))
	var tokens []token
	var word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, token{kind: tokenWord, text: word.String()})
			word.Reset()
		}
	}
	standaloneEnd := func(i int) bool {
		return i+1 >= len(runes) || unicode.IsSpace(runes[i+1])
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\':
			if i+1 >= len(runes) {
				return nil, "dangling escape"
			}
			i++
			word.WriteRune(runes[i])
		case unicode.IsSpace(r):
			flush()
		case r == '*':
			if word.Len() > 0 || !standaloneEnd(i) {
				return nil, "wildcard must be a standalone token"
			}
			tokens = append(tokens, token{kind: tokenWildcard})
		case r == '(':
			if word.Len() > 0 {
				return nil, "alternation group must be a standalone token"
			}
			alts, end, reason := parseGroup(runes, i+1)
			if reason != "" {
				return nil, reason
			}
			if !standaloneEnd(end) {
				return nil, "alternation group must be a standalone token"
			}
			tokens = append(tokens, token{kind: tokenGroup, alts: alts})
			i = end
		case r == ')':
			return nil, "unbalanced ')'"
		case r == '|':
			return nil, "'|' outside an alternation group"
		default:
			word.WriteRune(r)
		}
	}
	flush()

	return tokens, ""
}

// parseGroup reads alternatives starting after '(' and returns the index of
// the closing ')'.
func parseGroup(runes []rune, start int) ([]string, int, string) {
	var alts []string
	var alt strings.Builder

	closeAlt := func() string {
		text := strings.TrimSpace(alt.String())
		alt.Reset()
		if text == "" {
			return "empty alternative"
		}
		alts = append(alts, text)
		return ""
	}

	for i := start; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '\\':
			if i+1 >= len(runes) {
				return nil, 0, "dangling escape"
			}
			i++
			alt.WriteRune(runes[i])
		case '(':
			return nil, 0, "nested alternation group"
		case '*':
			return nil, 0, "wildcard inside alternation group"
		case '|':
			if reason := closeAlt(); reason != "" {
				return nil, 0, reason
			}
		case ')':
			if reason := closeAlt(); reason != "" {
				return nil, 0, reason
			}
			return alts, i, ""
		default:
			alt.WriteRune(r)
		}
	}

	return nil, 0, "unclosed alternation group"
}
