package line

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/bnema/spidy/internal/domain"
	"github.com/bnema/spidy/internal/ports"
	"github.com/sirupsen/logrus"
)

// Recognizer turns lines of text into transcript events. Each line is either
// plain text (a final transcript) or a JSON object as written by streaming
// recognizers:
//
//	{"text": "open you", "final": false}
//	{"type": "partial", "transcript": "open you"}
//	{"error": "no-speech"}
//
// Lines read while the recognizer is stopped are discarded.
type Recognizer struct {
	name   string
	path   string
	reader io.Reader
	sink   domain.EventSink
	log    *logrus.Entry

	mu        sync.Mutex
	listening bool
	reading   bool
}

var _ ports.SpeechRecognizer = (*Recognizer)(nil)

func NewRecognizer(name string, reader io.Reader, sink domain.EventSink, log *logrus.Entry) *Recognizer {
	return &Recognizer{name: name, reader: reader, sink: sink, log: entryOrStandard(log)}
}

// NewRecognizerFromPath reads from a file or FIFO. The path is opened on the
// first Start.
func NewRecognizerFromPath(path string, sink domain.EventSink, log *logrus.Entry) *Recognizer {
	return &Recognizer{name: strings.TrimSpace(path), path: path, sink: sink, log: entryOrStandard(log)}
}

func (r *Recognizer) Name() string {
	if strings.TrimSpace(r.name) == "" {
		return "line"
	}
	return r.name
}

func (r *Recognizer) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listening = true
	if r.reading {
		return nil
	}
	if r.path == "" && r.reader == nil {
		return errors.New("line recognizer has no input")
	}

	r.reading = true
	go r.readLoop(ctx)
	return nil
}

func (r *Recognizer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listening = false
	return nil
}

func (r *Recognizer) Listening() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listening
}

// readLoop clears reading before it reports the closed stream, so a Start
// after an input failure opens the input again.
func (r *Recognizer) readLoop(ctx context.Context) {
	defer func() {
		r.mu.Lock()
		r.reading = false
		r.mu.Unlock()
		r.sink(domain.StreamClosedEvent{})
	}()

	input := r.reader
	if r.path != "" {
		f, err := os.Open(r.path)
		if err != nil {
			r.sink(domain.RecognitionErrorEvent{Err: fmt.Errorf("%w: open %s: %v", domain.ErrRecognition, r.path, err)})
			return
		}
		defer f.Close()
		input = f
	}

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ev, ok := ParseLine(line)
		if !ok {
			continue
		}
		if !r.Listening() {
			r.log.WithField("line", line).Debug("recognizer stopped, line discarded")
			continue
		}
		r.sink(ev)
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		r.log.WithError(err).WithField("recognizer", r.Name()).Warn("read transcript lines")
		r.sink(domain.RecognitionErrorEvent{Err: fmt.Errorf("%w: %v", domain.ErrRecognition, err)})
	}
}

type lineEvent struct {
	Type       string `json:"type"`
	Event      string `json:"event"`
	Text       string `json:"text"`
	Transcript string `json:"transcript"`
	Final      *bool  `json:"final"`
	Error      string `json:"error"`
}

// ParseLine converts one input line into an event. It reports false for
// JSON lines that carry neither text nor an error.
func ParseLine(line string) (domain.Event, bool) {
	if strings.HasPrefix(line, "{") {
		var evt lineEvent
		if err := json.Unmarshal([]byte(line), &evt); err == nil {
			if msg := strings.TrimSpace(evt.Error); msg != "" {
				return domain.RecognitionErrorEvent{Err: fmt.Errorf("%w: %s", domain.ErrRecognition, msg)}, true
			}

			text := pickText(evt.Text, evt.Transcript)
			if text == "" {
				return nil, false
			}
			final := true
			if evt.Final != nil {
				final = *evt.Final
			}
			if isPartial(evt.Type) || isPartial(evt.Event) {
				final = false
			}
			return domain.TranscriptEvent{Text: text, Final: final}, true
		}
	}

	return domain.TranscriptEvent{Text: strings.TrimSpace(line), Final: true}, true
}

func isPartial(kind string) bool {
	kind = strings.ToLower(kind)
	return strings.Contains(kind, "partial") || strings.Contains(kind, "interim")
}

func pickText(parts ...string) string {
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			return strings.TrimSpace(part)
		}
	}
	return ""
}

func entryOrStandard(log *logrus.Entry) *logrus.Entry {
	if log == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return log
}
