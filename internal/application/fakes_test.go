package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bnema/spidy/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mockAnyContext() any {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 10, 14, 15, 4, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type spokenCall struct {
	ID   domain.UtteranceID
	Text string
}

// recordingSynth keeps every call in order. speaking is set by the test.
type recordingSynth struct {
	mu       sync.Mutex
	speaking bool
	spoken   []spokenCall
	cancels  int
}

func (s *recordingSynth) Speak(_ context.Context, u domain.Utterance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spoken = append(s.spoken, spokenCall{ID: u.ID, Text: u.Text})
	return nil
}

func (s *recordingSynth) Speaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking
}

func (s *recordingSynth) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancels++
	return nil
}

func (s *recordingSynth) Close() error { return nil }

func (s *recordingSynth) setSpeaking(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.speaking = v
}

func (s *recordingSynth) texts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.spoken))
	for _, c := range s.spoken {
		out = append(out, c.Text)
	}
	return out
}

type recordingPresenter struct {
	statuses    []domain.Status
	transcripts []string
	responses   []string
	scrolls     []int
}

func (p *recordingPresenter) ShowStatus(status domain.Status) {
	p.statuses = append(p.statuses, status)
}

func (p *recordingPresenter) ShowTranscript(text string, _ bool) {
	p.transcripts = append(p.transcripts, text)
}

func (p *recordingPresenter) ShowResponse(text string) {
	p.responses = append(p.responses, text)
}

func (p *recordingPresenter) Scroll(delta int) {
	p.scrolls = append(p.scrolls, delta)
}

func (p *recordingPresenter) lastStatus() domain.StatusKind {
	if len(p.statuses) == 0 {
		return ""
	}
	return p.statuses[len(p.statuses)-1].Kind
}

func testLogger() (*logrus.Entry, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logrus.NewEntry(logger), hook
}

func testApps() domain.AppRegistry {
	return domain.AppRegistry{
		"youtube": {
			ID:           "youtube",
			WebURL:       "https://youtube.com",
			NativeScheme: "youtube://",
			Links: map[domain.Intent]domain.Link{
				domain.IntentPlay:   {Web: "https://youtube.com/results?search_query={query}"},
				domain.IntentSearch: {Web: "https://youtube.com/results?search_query={query}"},
			},
		},
		"google": {
			ID:     "google",
			WebURL: "https://google.com",
			Links: map[domain.Intent]domain.Link{
				domain.IntentSearch: {Web: "https://google.com/search?q={query}"},
			},
		},
		"phone": {
			ID:           "phone",
			NativeScheme: "tel:",
			Links: map[domain.Intent]domain.Link{
				domain.IntentCall: {Native: "tel:{param}"},
			},
		},
		"maps": {
			ID:           "maps",
			WebURL:       "https://maps.google.com",
			NativeScheme: "geo://",
			Links: map[domain.Intent]domain.Link{
				domain.IntentNavigate: {Web: "https://maps.google.com?q={query}", Native: "geo:0,0?q={query}"},
			},
		},
	}
}

func testTemplates() []domain.CommandTemplate {
	return []domain.CommandTemplate{
		{Pattern: "open youtube", AppID: "youtube"},
		{Pattern: "open (maps|google maps)", AppID: "maps"},
		{Pattern: "open google", AppID: "google"},
		{Pattern: "play * on youtube", AppID: "youtube", Intent: domain.IntentPlay},
		{Pattern: "(navigate|directions) to *", AppID: "maps", Intent: domain.IntentNavigate, Reply: "Getting directions to {param}"},
		{Pattern: "(call|dial) *", AppID: "phone", Intent: domain.IntentCall},
		{Pattern: "search youtube for *", AppID: "youtube", Intent: domain.IntentSearch},
		{Pattern: "(search|look up) *", AppID: "google", Intent: domain.IntentSearch, Reply: "Searching for {param}"},
		{Pattern: "time", Intent: domain.IntentTime},
		{Pattern: "date", Intent: domain.IntentDate},
		{Pattern: "tell me a joke", Intent: domain.IntentJoke},
		{Pattern: "weather (in|at|for) *", Intent: domain.IntentWeather},
		{Pattern: "weather", Intent: domain.IntentWeather},
		{Pattern: "scroll down", Intent: domain.IntentScrollDown},
		{Pattern: "scroll up", Intent: domain.IntentScrollUp},
		{Pattern: "hello", Intent: domain.IntentGreet},
		{Pattern: "(calculate|what is) *", Intent: domain.IntentCalculate},
	}
}

func testMatcher(t *testing.T) *Matcher {
	t.Helper()
	m, err := NewMatcherFromCatalog(domain.Catalog{Templates: testTemplates(), Apps: testApps()})
	require.NoError(t, err)
	return m
}
