package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/spidy/internal/domain"
	"github.com/bnema/spidy/internal/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	DefaultWakeWord      = "spidy"
	DefaultIdleThreshold = 30 * time.Second
	DefaultCheckInterval = 5 * time.Second

	wakeReply      = "Yes? How can I help?"
	emptyReply     = "Sorry, I didn't catch that"
	introReplyForm = "Hello! Say '%s' to activate me."
)

type ControllerConfig struct {
	WakeWord       string
	IdleThreshold  time.Duration
	CheckInterval  time.Duration
	RestartOnError bool
	// AutoStart starts recognition from Start.
	AutoStart bool
	Env       domain.Environment
}

type ControllerDeps struct {
	Matcher    *Matcher
	Dispatcher *Dispatcher
	Recognizer ports.SpeechRecognizer
	Synth      ports.SpeechSynthesizer
	Launcher   ports.PlatformLauncher
	Presenter  ports.Presenter
	Clock      ports.Clock
	Log        *logrus.Entry
}

// Controller is one conversation session. It owns the conversation state
// and the activity clock; every event goes through Handle from a single
// goroutine.
type Controller struct {
	deps     ControllerDeps
	cfg      ControllerConfig
	feedback *FeedbackChannel
	session  domain.SessionID
	wake     string
	log      *logrus.Entry

	state       domain.ConversationState
	activity    domain.Activity
	recognizing bool
	errored     bool
	// wokeOnInterim is set while the utterance that carried the wake word
	// has not been finalized yet.
	wokeOnInterim bool
}

func NewController(deps ControllerDeps, cfg ControllerConfig) *Controller {
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Log == nil {
		deps.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	if strings.TrimSpace(cfg.WakeWord) == "" {
		cfg.WakeWord = DefaultWakeWord
	}
	if cfg.IdleThreshold == 0 {
		cfg.IdleThreshold = DefaultIdleThreshold
	}
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = DefaultCheckInterval
	}
	if deps.Launcher != nil && deps.Launcher.Native() {
		cfg.Env.HasNativeLauncher = true
	}

	session := domain.SessionID(uuid.NewString())
	c := &Controller{
		deps:    deps,
		cfg:     cfg,
		session: session,
		wake:    NormalizeTranscript(cfg.WakeWord),
		log:     deps.Log.WithField("session_id", string(session)),
		state:   domain.StateDormant,
	}
	c.activity.Touch(deps.Clock.Now())
	c.feedback = NewFeedbackChannel(deps.Synth, deps.Presenter, deps.Clock, &c.activity, cfg.IdleThreshold, c.log)

	return c
}

func (c *Controller) Session() domain.SessionID {
	return c.session
}

func (c *Controller) State() domain.ConversationState {
	return c.state
}

func (c *Controller) LastActivity() time.Time {
	return c.activity.Last
}

func (c *Controller) Feedback() *FeedbackChannel {
	return c.feedback
}

// Start shows the wake prompt, speaks the introduction and, when configured,
// starts recognition.
func (c *Controller) Start(ctx context.Context) error {
	label := WakeLabel(c.cfg.WakeWord)
	c.deps.Presenter.ShowStatus(domain.PromptStatus(label))
	c.feedback.Speak(ctx, fmt.Sprintf(introReplyForm, label), false)

	if !c.cfg.AutoStart {
		return nil
	}
	if err := c.startRecognition(ctx); err != nil {
		return fmt.Errorf("start recognition: %w", err)
	}
	return nil
}

// Run consumes events until the stream closes or ctx is done. Idle checks
// run on the configured interval.
func (c *Controller) Run(ctx context.Context, events <-chan domain.Event) error {
	ticker := time.NewTicker(c.cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Handle(ctx, domain.IdleTickEvent{})
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, closed := ev.(domain.StreamClosedEvent); closed {
				c.log.Debug("recognition stream closed")
				return nil
			}
			c.Handle(ctx, ev)
		}
	}
}

func (c *Controller) Handle(ctx context.Context, ev domain.Event) {
	switch e := ev.(type) {
	case domain.TranscriptEvent:
		c.handleTranscript(ctx, e)
	case domain.RecognitionErrorEvent:
		c.handleRecognitionError(e)
	case domain.ToggleEvent:
		c.handleToggle(ctx)
	case domain.IdleTickEvent:
		c.handleIdleTick(ctx)
	case domain.UtteranceDoneEvent:
		c.feedback.Complete(e.ID)
	case domain.StreamClosedEvent:
		c.recognizing = false
	default:
		c.log.WithField("event", fmt.Sprintf("%T", ev)).Debug("ignoring unknown event")
	}
}

func (c *Controller) handleTranscript(ctx context.Context, e domain.TranscriptEvent) {
	text := NormalizeTranscript(e.Text)

	if c.state == domain.StateDormant {
		if c.wake == "" || !strings.Contains(text, c.wake) {
			return
		}
		c.transition(domain.StateActive)
		c.wokeOnInterim = !e.Final
		c.deps.Presenter.ShowStatus(domain.ListeningStatus())
		c.feedback.Speak(ctx, wakeReply, true)
		return
	}

	if !e.Final {
		c.deps.Presenter.ShowTranscript(e.Text, false)
		return
	}

	if c.wokeOnInterim {
		c.wokeOnInterim = false
		if _, rest, found := strings.Cut(text, c.wake); found {
			text = strings.TrimSpace(rest)
		}
		if text == "" {
			// The final of the wake utterance itself; keep listening.
			return
		}
	}

	c.deps.Presenter.ShowTranscript(e.Text, true)
	c.transition(domain.StateDormant)

	if text == "" {
		c.feedback.Speak(ctx, emptyReply, false)
	} else {
		c.perform(ctx, text)
	}

	c.deps.Presenter.ShowStatus(domain.PromptStatus(WakeLabel(c.cfg.WakeWord)))
	c.activity.Touch(c.deps.Clock.Now())
}

func (c *Controller) perform(ctx context.Context, text string) {
	match := c.deps.Matcher.Match(text)
	action := c.deps.Dispatcher.Dispatch(match, c.cfg.Env)

	log := c.log.WithField("intent", action.Intent)
	if match.Matched() {
		log = log.WithField("template", match.Pattern.Index)
	}
	log.Debug("dispatched command")

	if action.HasTarget() && c.deps.Launcher != nil {
		c.launch(ctx, action, log)
	}
	if action.ScrollBy != 0 {
		c.deps.Presenter.Scroll(action.ScrollBy)
	}
	c.feedback.Speak(ctx, action.SpokenText, false)
}

// launch opens the action target and retries with its web form when the
// native link fails.
func (c *Controller) launch(ctx context.Context, action domain.IntentAction, log *logrus.Entry) {
	err := c.deps.Launcher.Open(ctx, action.TargetURL)
	if err == nil {
		return
	}
	if !action.HasFallback() {
		log.WithError(err).WithField("url", action.TargetURL).Warn("launch target")
		return
	}

	log.WithError(err).WithField("url", action.TargetURL).Debug("launch native target, trying web form")
	if fallbackErr := c.deps.Launcher.Open(ctx, action.FallbackURL); fallbackErr != nil {
		log.WithError(errors.Join(err, fallbackErr)).WithField("url", action.FallbackURL).Warn("launch target")
	}
}

func (c *Controller) handleRecognitionError(e domain.RecognitionErrorEvent) {
	c.log.WithError(e.Err).Error("speech recognition")
	c.transition(domain.StateDormant)
	c.wokeOnInterim = false
	c.errored = true
	c.deps.Presenter.ShowStatus(domain.ErrorStatus())
	c.stopRecognition()
}

func (c *Controller) handleToggle(ctx context.Context) {
	if c.state == domain.StateActive {
		c.stopRecognition()
		c.transition(domain.StateDormant)
		c.wokeOnInterim = false
		c.deps.Presenter.ShowStatus(domain.MicOffStatus())
		return
	}

	if err := c.startRecognition(ctx); err != nil {
		c.log.WithError(err).Error("start recognition")
		c.errored = true
		c.deps.Presenter.ShowStatus(domain.ErrorStatus())
		return
	}
	c.deps.Presenter.ShowStatus(domain.PromptStatus(WakeLabel(c.cfg.WakeWord)))
}

func (c *Controller) handleIdleTick(ctx context.Context) {
	if c.errored && c.cfg.RestartOnError && !c.recognizing {
		if err := c.startRecognition(ctx); err != nil {
			c.log.WithError(err).Warn("restart recognition")
		} else {
			c.errored = false
			c.deps.Presenter.ShowStatus(domain.PromptStatus(WakeLabel(c.cfg.WakeWord)))
		}
	}

	if c.state == domain.StateDormant && c.activity.IdleFor(c.deps.Clock.Now(), c.cfg.IdleThreshold) {
		c.deps.Presenter.ShowStatus(domain.SleepingStatus())
	}
}

func (c *Controller) startRecognition(ctx context.Context) error {
	if c.deps.Recognizer == nil {
		return nil
	}
	if err := c.deps.Recognizer.Start(ctx); err != nil {
		return err
	}
	c.recognizing = true
	return nil
}

func (c *Controller) stopRecognition() {
	if c.deps.Recognizer == nil || !c.recognizing {
		return
	}
	if err := c.deps.Recognizer.Stop(); err != nil {
		c.log.WithError(err).Warn("stop recognition")
	}
	c.recognizing = false
}

func (c *Controller) transition(to domain.ConversationState) {
	if c.state == to {
		return
	}
	c.log.WithFields(logrus.Fields{"from": c.state.String(), "to": to.String()}).Debug("conversation transition")
	c.state = to
}
