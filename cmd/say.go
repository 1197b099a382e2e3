package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bnema/spidy/internal/application"
	"github.com/bnema/spidy/internal/domain"
	"github.com/bnema/spidy/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const (
	sayUtterance domain.UtteranceID = 1
	sayPreviewLen                   = 40
)

type sayPhase int

const (
	sayStarting sayPhase = iota
	saySpeaking
	sayFinished
)

type speakStartedMsg struct{}

type sayDoneMsg struct {
	err error
}

// sayModel follows one utterance: the synthesizer starting, then playback
// until its completion event.
type sayModel struct {
	spinner spinner.Model
	engine  string
	text    string
	phase   sayPhase
	speak   tea.Cmd
	wait    tea.Cmd
	err     error
}

func newSayModel(engine, text string, speak, wait tea.Cmd) sayModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return sayModel{spinner: s, engine: engine, text: text, speak: speak, wait: wait}
}

func (m sayModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.speak)
}

func (m sayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.phase == sayFinished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case speakStartedMsg:
		m.phase = saySpeaking
		return m, m.wait
	case sayDoneMsg:
		m.phase = sayFinished
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m sayModel) View() string {
	switch m.phase {
	case sayStarting:
		return fmt.Sprintf("%s Starting %s synthesizer...", m.spinner.View(), m.engine)
	case saySpeaking:
		return fmt.Sprintf("%s Speaking %q", m.spinner.View(), preview(m.text, sayPreviewLen))
	default:
		return ""
	}
}

func preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}

func newSayCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "say <text...>",
		Short: "Speak text through the configured synthesizer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return errors.New("nothing to say")
			}

			finished := make(chan struct{}, 1)
			sink := func(ev domain.Event) {
				if done, ok := ev.(domain.UtteranceDoneEvent); ok && done.ID == sayUtterance {
					select {
					case finished <- struct{}{}:
					default:
					}
				}
			}

			synthesizer, err := app.newSynth(false, sink)
			if err != nil {
				return err
			}
			defer func() { _ = synthesizer.Close() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := runSay(ctx, cmd.ErrOrStderr(), app.cfg.Synth.Engine, text, synthesizer, finished); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", application.WakeLabel(app.cfg.WakeWord), text)
			return err
		},
	}
}

// runSay speaks text and returns once the synthesizer reports the utterance
// finished. A canceled ctx cancels playback.
func runSay(ctx context.Context, output io.Writer, engine, text string, synthesizer ports.SpeechSynthesizer, finished <-chan struct{}) error {
	speak := func() tea.Msg {
		if err := synthesizer.Speak(ctx, domain.Utterance{ID: sayUtterance, Text: text}); err != nil {
			return sayDoneMsg{err: fmt.Errorf("speak: %w", err)}
		}
		return speakStartedMsg{}
	}
	wait := func() tea.Msg {
		select {
		case <-finished:
			return sayDoneMsg{}
		case <-ctx.Done():
			return sayDoneMsg{err: ctx.Err()}
		}
	}

	p := tea.NewProgram(
		newSayModel(engine, text, speak, wait),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if ctx.Err() != nil {
		_ = synthesizer.Cancel()
		return ctx.Err()
	}
	if err != nil {
		return err
	}

	result, ok := finalModel.(sayModel)
	if !ok {
		return fmt.Errorf("unexpected final say model type %T", finalModel)
	}
	return result.err
}
