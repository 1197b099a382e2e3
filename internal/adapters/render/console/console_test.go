package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bnema/spidy/internal/application"
	"github.com/bnema/spidy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, templates []domain.CommandTemplate, apps domain.AppRegistry) ([]*application.CompiledPattern, error) {
	t.Helper()
	return application.CompilePatterns(templates, apps)
}

func render(t *testing.T, patterns []*application.CompiledPattern, opts RenderOptions) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, RenderTemplates(&out, patterns, opts))
	return out.String()
}

func TestRenderTemplatesListsInMatchOrder(t *testing.T) {
	apps := domain.AppRegistry{
		"youtube": {ID: "youtube", WebURL: "https://youtube.com", Links: map[domain.Intent]domain.Link{
			domain.IntentPlay: {Web: "https://youtube.com/results?search_query={query}"},
		}},
	}
	patterns, err := compile(t, []domain.CommandTemplate{
		{Pattern: "open youtube", AppID: "youtube"},
		{Pattern: "play * on youtube", AppID: "youtube", Intent: domain.IntentPlay},
		{Pattern: "what time is it", Intent: domain.IntentTime},
	}, apps)
	require.NoError(t, err)

	output := render(t, patterns, RenderOptions{Source: "/tmp/catalog.toml"})

	assert.Contains(t, output, "Spidy Commands")
	assert.Contains(t, output, "templates: 3")
	assert.Contains(t, output, "catalog: /tmp/catalog.toml")
	assert.Contains(t, output, "open youtube -> open @youtube")
	assert.Contains(t, output, "play * on youtube -> play @youtube [param]")
	assert.Contains(t, output, "what time is it -> time")
	assert.Less(t, bytes.Index([]byte(output), []byte("open youtube")), bytes.Index([]byte(output), []byte("what time is it")))
}

func TestRenderTemplatesShowsErrors(t *testing.T) {
	patterns, err := compile(t, []domain.CommandTemplate{
		{Pattern: "open (youtube", AppID: "youtube"},
		{Pattern: "hello", Intent: domain.IntentGreet},
	}, domain.AppRegistry{})
	require.Error(t, err)

	output := render(t, patterns, RenderOptions{Err: err})
	assert.Contains(t, output, "templates: 1")
	assert.Contains(t, output, `error: template 0 "open (youtube": unclosed alternation group`)
}

func TestRenderTemplatesEmpty(t *testing.T) {
	output := render(t, nil, RenderOptions{})
	assert.Contains(t, output, "No command templates compiled.")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestRenderTemplatesReturnsWriteError(t *testing.T) {
	err := RenderTemplates(failingWriter{}, nil, RenderOptions{})
	assert.EqualError(t, err, "closed pipe")
}

func TestTemplateErrorsFlattensJoinedErrors(t *testing.T) {
	first := &domain.TemplateError{Index: 1, Pattern: "a", Reason: "x"}
	second := &domain.TemplateError{Index: 4, Pattern: "b", Reason: "y"}

	got := TemplateErrors(errors.Join(first, errors.Join(second, errors.New("other"))))
	assert.Equal(t, []*domain.TemplateError{first, second}, got)
	assert.Empty(t, TemplateErrors(nil))
}

func TestPresenterWritesConversation(t *testing.T) {
	var out bytes.Buffer
	p := NewPresenter(&out, "spidy")

	p.ShowStatus(domain.PromptStatus("Spidy"))
	p.ShowStatus(domain.PromptStatus("Spidy"))
	p.ShowStatus(domain.ListeningStatus())
	p.ShowTranscript("open you", false)
	p.ShowTranscript("open youtube", true)
	p.ShowResponse("Opening youtube")
	p.Scroll(-200)
	p.ShowStatus(domain.SleepingStatus())

	assert.Equal(t, "○ Say 'Spidy'\n"+
		"● Listening...\n"+
		"… open you\n"+
		"> open youtube\n"+
		"spidy: Opening youtube\n"+
		"scroll -200\n"+
		"☾ Sleeping\n", out.String())
}
