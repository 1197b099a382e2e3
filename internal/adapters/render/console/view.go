package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/bnema/spidy/internal/application"
	"github.com/bnema/spidy/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// Source is where the catalog was loaded from.
	Source string
	// Err holds template errors from compiling the catalog.
	Err error
}

func renderTemplates(patterns []*application.CompiledPattern, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Spidy Commands"),
		s.header.Render(fmt.Sprintf("templates: %d", len(patterns))),
	}
	if opts.Source != "" {
		lines = append(lines, s.header.Render("catalog: "+opts.Source))
	}

	if len(patterns) == 0 {
		lines = append(lines, s.empty.Render("No command templates compiled."))
	}

	for _, p := range patterns {
		lines = append(lines, templateLine(p, s))
	}

	lines = append(lines, errorLines(opts.Err, s)...)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func templateLine(p *application.CompiledPattern, s styles) string {
	tmpl := p.Template
	parts := []string{
		s.index.Render(fmt.Sprintf("%d", p.Index)),
		" ",
		s.pattern.Render(tmpl.Pattern),
		" ",
		s.intent.Render("-> " + string(tmpl.EffectiveIntent())),
	}
	if tmpl.BoundToApp() {
		parts = append(parts, " ", s.app.Render("@"+string(tmpl.AppID)))
	}
	if p.HasWildcard() {
		parts = append(parts, " ", s.wildcard.Render("[param]"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func errorLines(err error, s styles) []string {
	if err == nil {
		return nil
	}

	var lines []string
	for _, e := range flatten(err) {
		lines = append(lines, s.warning.Render("error: ")+e.Error())
	}
	return lines
}

func flatten(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []error{err}
}

// TemplateErrors returns the individual template errors in err.
func TemplateErrors(err error) []*domain.TemplateError {
	var out []*domain.TemplateError
	for _, e := range flatten(err) {
		var templateErr *domain.TemplateError
		if errors.As(e, &templateErr) {
			out = append(out, templateErr)
		}
	}
	return out
}

// RenderTemplates writes the compiled command table to w in match order.
func RenderTemplates(w io.Writer, patterns []*application.CompiledPattern, opts RenderOptions) error {
	_, err := fmt.Fprintln(w, renderTemplates(patterns, opts, newStyles(nil)))
	return err
}
