package line

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/spidy/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect() (domain.EventSink, <-chan domain.Event) {
	events := make(chan domain.Event, 16)
	return func(ev domain.Event) { events <- ev }, events
}

func drain(t *testing.T, events <-chan domain.Event) []domain.Event {
	t.Helper()
	var out []domain.Event
	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev := <-events:
			out = append(out, ev)
			if _, ok := ev.(domain.StreamClosedEvent); ok {
				return out
			}
		case <-timeout:
			t.Fatalf("stream was not closed, got %v", out)
			return out
		}
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line  string
		want  domain.Event
		valid bool
	}{
		{line: "open youtube", want: domain.TranscriptEvent{Text: "open youtube", Final: true}, valid: true},
		{line: `{"text":"open you","final":false}`, want: domain.TranscriptEvent{Text: "open you"}, valid: true},
		{line: `{"type":"partial","transcript":" spidy "}`, want: domain.TranscriptEvent{Text: "spidy"}, valid: true},
		{line: `{"event":"final","transcript":"what time is it"}`, want: domain.TranscriptEvent{Text: "what time is it", Final: true}, valid: true},
		{line: `{"type":"heartbeat"}`, valid: false},
		{line: `{not json`, want: domain.TranscriptEvent{Text: "{not json", Final: true}, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseLineError(t *testing.T) {
	got, ok := ParseLine(`{"error":"no-speech"}`)
	require.True(t, ok)

	errEvent, isErr := got.(domain.RecognitionErrorEvent)
	require.True(t, isErr)
	assert.ErrorIs(t, errEvent.Err, domain.ErrRecognition)
	assert.ErrorContains(t, errEvent.Err, "no-speech")
}

func TestRecognizerPostsEventsThenCloses(t *testing.T) {
	sink, events := collect()
	input := strings.NewReader("spidy\n\n{\"text\":\"open\",\"final\":false}\nopen youtube\n")
	r := NewRecognizer("stdin", input, sink, nil)

	require.NoError(t, r.Start(context.Background()))
	require.NoError(t, r.Start(context.Background()))

	got := drain(t, events)
	assert.Equal(t, []domain.Event{
		domain.TranscriptEvent{Text: "spidy", Final: true},
		domain.TranscriptEvent{Text: "open"},
		domain.TranscriptEvent{Text: "open youtube", Final: true},
		domain.StreamClosedEvent{},
	}, got)
}

func TestRecognizerDiscardsLinesWhileStopped(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	events := make(chan domain.Event, 16)
	reader, writer, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = reader.Close() })

	r := NewRecognizer("pipe", reader, func(ev domain.Event) { events <- ev }, logrus.NewEntry(logger))
	require.NoError(t, r.Start(context.Background()))

	_, err = writer.WriteString("spidy\n")
	require.NoError(t, err)
	assert.Equal(t, domain.TranscriptEvent{Text: "spidy", Final: true}, <-events)

	require.NoError(t, r.Stop())
	assert.False(t, r.Listening())
	_, err = writer.WriteString("open youtube\n")
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	assert.Equal(t, domain.StreamClosedEvent{}, <-events)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "recognizer stopped, line discarded", hook.LastEntry().Message)
}

func TestRecognizerFromMissingPathReportsError(t *testing.T) {
	sink, events := collect()
	r := NewRecognizerFromPath(filepath.Join(t.TempDir(), "missing.fifo"), sink, nil)

	require.NoError(t, r.Start(context.Background()))
	got := drain(t, events)

	require.Len(t, got, 2)
	errEvent, ok := got[0].(domain.RecognitionErrorEvent)
	require.True(t, ok)
	assert.ErrorIs(t, errEvent.Err, domain.ErrRecognition)
}

func TestRecognizerStartReopensInputAfterFailure(t *testing.T) {
	sink, events := collect()
	path := filepath.Join(t.TempDir(), "transcripts.txt")
	r := NewRecognizerFromPath(path, sink, nil)

	require.NoError(t, r.Start(context.Background()))
	first := drain(t, events)
	require.Len(t, first, 2)
	assert.IsType(t, domain.RecognitionErrorEvent{}, first[0])

	require.NoError(t, os.WriteFile(path, []byte("spidy\n"), 0o644))
	require.NoError(t, r.Start(context.Background()))

	second := drain(t, events)
	assert.Equal(t, []domain.Event{
		domain.TranscriptEvent{Text: "spidy", Final: true},
		domain.StreamClosedEvent{},
	}, second)
}

func TestRecognizerFromPathReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcripts.txt")
	require.NoError(t, os.WriteFile(path, []byte("spidy\ntell me a joke\n"), 0o600))

	sink, events := collect()
	r := NewRecognizerFromPath(path, sink, nil)
	require.NoError(t, r.Start(context.Background()))

	got := drain(t, events)
	assert.Len(t, got, 3)
	assert.Equal(t, path, r.Name())
}

func TestRecognizerWithoutInputFails(t *testing.T) {
	r := NewRecognizer("", nil, func(domain.Event) {}, nil)
	assert.Error(t, r.Start(context.Background()))
	assert.Equal(t, "line", r.Name())
}
