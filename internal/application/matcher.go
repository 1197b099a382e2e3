package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/spidy/internal/domain"
	"github.com/bnema/spidy/internal/ports"
)

// MatchResult is the first template that matched a transcript. The zero
// value is NoMatch.
type MatchResult struct {
	Pattern   *CompiledPattern
	Parameter string
}

var NoMatch = MatchResult{}

func (m MatchResult) Matched() bool {
	return m.Pattern != nil
}

func (m MatchResult) Template() domain.CommandTemplate {
	if m.Pattern == nil {
		return domain.CommandTemplate{}
	}
	return m.Pattern.Template
}

type Matcher struct {
	patterns []*CompiledPattern
}

func NewMatcher(patterns []*CompiledPattern) *Matcher {
	return &Matcher{patterns: patterns}
}

// NewMatcherFromCatalog compiles the catalog and fails on any template error.
func NewMatcherFromCatalog(catalog domain.Catalog) (*Matcher, error) {
	patterns, err := CompilePatterns(catalog.Templates, catalog.Apps)
	if err != nil {
		return nil, err
	}
	return NewMatcher(patterns), nil
}

// LoadMatcher loads the catalog from repo and compiles it.
func LoadMatcher(ctx context.Context, repo ports.CatalogRepository) (*Matcher, domain.Catalog, error) {
	catalog, err := repo.Load(ctx)
	if err != nil {
		return nil, domain.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}

	matcher, err := NewMatcherFromCatalog(catalog)
	if err != nil {
		return nil, domain.Catalog{}, fmt.Errorf("compile catalog: %w", err)
	}
	return matcher, catalog, nil
}

func (m *Matcher) Patterns() []*CompiledPattern {
	return m.patterns
}

// Match returns the first pattern, in declaration order, found in the
// normalized transcript.
func (m *Matcher) Match(transcript string) MatchResult {
	text := NormalizeTranscript(transcript)
	if text == "" {
		return NoMatch
	}

	for _, p := range m.patterns {
		groups := p.expr.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		result := MatchResult{Pattern: p}
		if p.wildcard && len(groups) > 1 {
			result.Parameter = strings.TrimSpace(groups[1])
		}
		return result
	}

	return NoMatch
}
