package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/spidy/internal/adapters/launcher"
	"github.com/bnema/spidy/internal/adapters/render/console"
	tomlrepo "github.com/bnema/spidy/internal/adapters/repo/toml"
	"github.com/bnema/spidy/internal/adapters/speech/synth"
	"github.com/bnema/spidy/internal/application"
	"github.com/bnema/spidy/internal/config"
	"github.com/bnema/spidy/internal/domain"
	"github.com/bnema/spidy/internal/logging"
	"github.com/bnema/spidy/internal/ports"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type app struct {
	cfg              config.Config
	catalog          *tomlrepo.CatalogRepository
	logger           *logrus.Logger
	clock            ports.Clock
	templateRenderer func(io.Writer, []*application.CompiledPattern, console.RenderOptions) error
}

func wireApp() (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	repo, err := tomlrepo.NewCatalogRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire catalog repository: %w", err)
	}

	return &app{
		cfg:              cfg,
		catalog:          repo,
		logger:           logger,
		clock:            ports.SystemClock{},
		templateRenderer: console.RenderTemplates,
	}, nil
}

func (a *app) component(name string) *logrus.Entry {
	return logging.Component(a.logger, name)
}

// loadMatcher loads the catalog and compiles it; any template error fails.
func (a *app) loadMatcher(ctx context.Context) (*application.Matcher, domain.Catalog, error) {
	matcher, catalog, err := application.LoadMatcher(ctx, a.catalog)
	if err != nil {
		return nil, domain.Catalog{}, fmt.Errorf("%s: %w", a.catalog.Path(), err)
	}
	return matcher, catalog, nil
}

func (a *app) newSynth(dryRun bool, sink domain.EventSink) (ports.SpeechSynthesizer, error) {
	cfg := synth.Config{Engine: a.cfg.Synth.Engine, Command: a.cfg.Synth.Command, Args: a.cfg.Synth.Args}
	if dryRun {
		cfg.Engine = synth.EngineSilent
	}

	s, err := synth.New(cfg, sink, a.component("synth"))
	if err != nil {
		return nil, fmt.Errorf("wire synthesizer: %w", err)
	}
	return s, nil
}

// newLauncher builds the configured launcher. Dry runs print targets to out
// instead of opening them.
func (a *app) newLauncher(dryRun bool, out io.Writer) (ports.PlatformLauncher, error) {
	var opener launcher.Opener = launcher.NewCommandOpener(a.cfg.Launcher.Command)
	if dryRun {
		opener = launcher.NewPrintOpener(out)
	}

	l, err := launcher.New(launcher.Mode(a.cfg.Launcher.Mode), opener)
	if err != nil {
		return nil, fmt.Errorf("wire launcher: %w", err)
	}
	return l, nil
}

func (a *app) environment() domain.Environment {
	return domain.Environment{IsMobileRuntime: a.cfg.Runtime.Mobile}
}
