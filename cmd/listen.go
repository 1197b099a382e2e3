package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/spidy/internal/adapters/render/console"
	"github.com/bnema/spidy/internal/adapters/speech/line"
	"github.com/bnema/spidy/internal/application"
	"github.com/bnema/spidy/internal/domain"
	"github.com/spf13/cobra"
)

const eventBuffer = 16

type listenOptions struct {
	input   string
	dryRun  bool
	noStart bool
}

func newListenCmd(app *app) *cobra.Command {
	var opts listenOptions

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Run the voice interpreter over a transcript stream",
		Long:  "listen reads transcript lines (plain text or JSON events) from stdin or --input and runs the wake word conversation over them. Send SIGUSR1 to toggle the microphone.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runListen(cmd.Context(), app, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "Read transcripts from a file or FIFO instead of stdin")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print launch targets and stay silent instead of opening and speaking")
	cmd.Flags().BoolVar(&opts.noStart, "no-start", false, "Wait for a toggle before starting recognition")

	return cmd
}

func runListen(ctx context.Context, app *app, opts listenOptions, in io.Reader, out io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	matcher, catalog, err := app.loadMatcher(ctx)
	if err != nil {
		return err
	}

	events := make(chan domain.Event, eventBuffer)
	done := make(chan struct{})
	sink := func(ev domain.Event) {
		select {
		case events <- ev:
		case <-done:
		case <-ctx.Done():
		}
	}

	synthesizer, err := app.newSynth(opts.dryRun, sink)
	if err != nil {
		return err
	}
	defer func() { _ = synthesizer.Close() }()
	// Unblock pending posts before Close waits on them.
	defer close(done)

	platform, err := app.newLauncher(opts.dryRun, out)
	if err != nil {
		return err
	}

	recognizerLog := app.component("recognizer")
	var recognizer *line.Recognizer
	if opts.input == "" || opts.input == "-" {
		recognizer = line.NewRecognizer("stdin", in, sink, recognizerLog)
	} else {
		recognizer = line.NewRecognizerFromPath(opts.input, sink, recognizerLog)
	}
	defer func() { _ = recognizer.Stop() }()

	stopToggle := notifyToggle(ctx, sink)
	defer stopToggle()

	controller := application.NewController(application.ControllerDeps{
		Matcher:    matcher,
		Dispatcher: application.NewDispatcher(catalog.Apps, app.clock),
		Recognizer: recognizer,
		Synth:      synthesizer,
		Launcher:   platform,
		Presenter:  console.NewPresenter(out, application.WakeLabel(app.cfg.WakeWord)),
		Clock:      app.clock,
		Log:        app.component("controller"),
	}, application.ControllerConfig{
		WakeWord:       app.cfg.WakeWord,
		IdleThreshold:  app.cfg.Idle.Threshold,
		CheckInterval:  app.cfg.Idle.CheckInterval,
		RestartOnError: app.cfg.Recognition.RestartOnError,
		AutoStart:      !opts.noStart,
		Env:            app.environment(),
	})

	if err := controller.Start(ctx); err != nil {
		return err
	}

	err = controller.Run(ctx, events)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run conversation: %w", err)
	}
	return nil
}
