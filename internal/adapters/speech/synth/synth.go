package synth

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/bnema/spidy/internal/domain"
	"github.com/bnema/spidy/internal/ports"
	"github.com/sirupsen/logrus"
)

const (
	EngineSilent = "silent"
	EngineExec   = "exec"

	defaultCommand = "espeak-ng"
)

var ErrUnavailable = errors.New("speech synthesizer command unavailable")

type Config struct {
	Engine  string
	Command string
	Args    []string
}

// New builds the synthesizer selected by cfg.Engine. Completion events are
// posted to sink.
func New(cfg Config, sink domain.EventSink, log *logrus.Entry) (ports.SpeechSynthesizer, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Engine)) {
	case EngineSilent, "":
		return NewSilent(sink), nil
	case EngineExec:
		return NewExec(cfg.Command, cfg.Args, sink, log), nil
	default:
		return nil, fmt.Errorf("unknown synth engine %q", cfg.Engine)
	}
}

// Silent completes every utterance immediately and never reports speaking.
type Silent struct {
	sink domain.EventSink
	wg   sync.WaitGroup
}

var _ ports.SpeechSynthesizer = (*Silent)(nil)

func NewSilent(sink domain.EventSink) *Silent {
	return &Silent{sink: sink}
}

func (s *Silent) Speak(ctx context.Context, utterance domain.Utterance) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.sink(domain.UtteranceDoneEvent{ID: utterance.ID})
	}()
	return nil
}

func (s *Silent) Speaking() bool { return false }

func (s *Silent) Cancel() error { return nil }

func (s *Silent) Close() error {
	s.wg.Wait()
	return nil
}

type startFunc func(ctx context.Context, name string, args ...string) (wait func() error, err error)

type playback struct {
	id     domain.UtteranceID
	cancel context.CancelFunc
}

// Exec speaks by running a command such as espeak-ng with the text as its
// last argument. Cancel kills the running process.
type Exec struct {
	command string
	args    []string
	sink    domain.EventSink
	log     *logrus.Entry
	start   startFunc

	mu      sync.Mutex
	current *playback
	wg      sync.WaitGroup
}

var _ ports.SpeechSynthesizer = (*Exec)(nil)

func NewExec(command string, args []string, sink domain.EventSink, log *logrus.Entry) *Exec {
	if strings.TrimSpace(command) == "" {
		command = defaultCommand
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	return &Exec{
		command: command,
		args:    args,
		sink:    sink,
		log:     log.WithField("synth", command),
		start:   startCommand,
	}
}

func (e *Exec) Speak(ctx context.Context, utterance domain.Utterance) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current != nil {
		e.current.cancel()
		e.current = nil
	}

	procCtx, cancel := context.WithCancel(ctx)
	args := append(append([]string{}, e.args...), utterance.Text)
	wait, err := e.start(procCtx, e.command, args...)
	if err != nil {
		cancel()
		return fmt.Errorf("start %s: %w", e.command, err)
	}

	p := &playback{id: utterance.ID, cancel: cancel}
	e.current = p

	e.wg.Add(1)
	go e.watch(procCtx, p, wait)
	return nil
}

func (e *Exec) watch(ctx context.Context, p *playback, wait func() error) {
	defer e.wg.Done()

	err := wait()
	canceled := ctx.Err() != nil
	p.cancel()

	e.mu.Lock()
	if e.current == p {
		e.current = nil
	}
	e.mu.Unlock()

	if err != nil && !canceled {
		e.log.WithError(err).WithField("utterance_id", p.id).Warn("speech command failed")
	}
	e.sink(domain.UtteranceDoneEvent{ID: p.id})
}

func (e *Exec) Speaking() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current != nil
}

func (e *Exec) Cancel() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current != nil {
		e.current.cancel()
		e.current = nil
	}
	return nil
}

// Close cancels the current utterance and waits for its process to exit.
func (e *Exec) Close() error {
	if err := e.Cancel(); err != nil {
		return err
	}
	e.wg.Wait()
	return nil
}

func startCommand(ctx context.Context, name string, args ...string) (func() error, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, ErrUnavailable
		}
		return nil, fmt.Errorf("locate %s command: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return func() error {
		if err := cmd.Wait(); err != nil {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return fmt.Errorf("%w: %s", err, msg)
			}
			return err
		}
		return nil
	}, nil
}
