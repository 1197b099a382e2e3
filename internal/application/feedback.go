package application

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/spidy/internal/domain"
	"github.com/bnema/spidy/internal/ports"
	"github.com/sirupsen/logrus"
)

// FeedbackChannel serializes spoken output through one synthesizer and keeps
// the session's last-activity clock.
type FeedbackChannel struct {
	synth     ports.SpeechSynthesizer
	presenter ports.Presenter
	clock     ports.Clock
	activity  *domain.Activity
	idleAfter time.Duration
	log       *logrus.Entry

	mu      sync.Mutex
	nextID  domain.UtteranceID
	current domain.UtteranceID
}

func NewFeedbackChannel(
	synth ports.SpeechSynthesizer,
	presenter ports.Presenter,
	clock ports.Clock,
	activity *domain.Activity,
	idleAfter time.Duration,
	log *logrus.Entry,
) *FeedbackChannel {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if activity == nil {
		activity = &domain.Activity{}
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	return &FeedbackChannel{
		synth:     synth,
		presenter: presenter,
		clock:     clock,
		activity:  activity,
		idleAfter: idleAfter,
		log:       log,
	}
}

// Speak issues text to the synthesizer. A normal request is dropped while
// something is being spoken; a priority request cancels it and takes over.
// It reports whether the utterance was issued.
func (f *FeedbackChannel) Speak(ctx context.Context, text string, priority bool) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.synth.Speaking() {
		if !priority {
			f.log.WithField("text", text).Debug("speech dropped, synthesizer busy")
			return false
		}
		if err := f.synth.Cancel(); err != nil {
			f.log.WithError(err).Warn("cancel current utterance")
		}
	}

	f.nextID++
	utterance := domain.Utterance{ID: f.nextID, Text: text}

	f.activity.Touch(f.clock.Now())
	f.presenter.ShowResponse(text)

	if err := f.synth.Speak(ctx, utterance); err != nil {
		f.log.WithError(err).WithField("utterance_id", utterance.ID).Warn("speak utterance")
		return true
	}
	f.current = utterance.ID

	return true
}

// Complete handles the end of an utterance. Completions of canceled
// utterances do not clear the one that replaced them.
func (f *FeedbackChannel) Complete(id domain.UtteranceID) {
	f.mu.Lock()
	if f.current == id {
		f.current = 0
	}
	f.mu.Unlock()

	if f.activity.IdleFor(f.clock.Now(), f.idleAfter) {
		f.presenter.ShowStatus(domain.SleepingStatus())
	}
}

// Current returns the id of the utterance in flight, zero when none.
func (f *FeedbackChannel) Current() domain.UtteranceID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}
