package launcher

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/spidy/internal/domain"
	"github.com/bnema/spidy/internal/ports"
)

type Mode string

const (
	ModeWeb    Mode = "web"
	ModeNative Mode = "native"
	ModeChain  Mode = "chain"
)

var (
	errNilOpener   = errors.New("url opener is nil")
	errNilPrimary  = errors.New("primary launcher is nil")
	errNilFallback = errors.New("fallback launcher is nil")
	errEmptyScheme = errors.New("url has no scheme")
)

// Web only opens http and https URLs.
type Web struct {
	opener Opener
}

var _ ports.PlatformLauncher = (*Web)(nil)

func NewWeb(opener Opener) *Web {
	return &Web{opener: opener}
}

func (w *Web) Native() bool { return false }

func (w *Web) Open(ctx context.Context, target string) error {
	scheme, err := schemeOf(target)
	if err != nil {
		return err
	}
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("open %q: %w", target, domain.ErrUnsupportedScheme)
	}

	return w.opener.OpenURL(ctx, target)
}

// Native hands any URL with a scheme to the platform, which dispatches
// custom schemes (tel:, geo:, youtube://) to the registered app.
type Native struct {
	opener Opener
}

var _ ports.PlatformLauncher = (*Native)(nil)

func NewNative(opener Opener) *Native {
	return &Native{opener: opener}
}

func (n *Native) Native() bool { return true }

func (n *Native) Open(ctx context.Context, target string) error {
	if _, err := schemeOf(target); err != nil {
		return err
	}

	return n.opener.OpenURL(ctx, target)
}

// Chain tries primary first and falls back when it fails.
type Chain struct {
	primary  ports.PlatformLauncher
	fallback ports.PlatformLauncher
}

var _ ports.PlatformLauncher = (*Chain)(nil)

func NewChain(primary ports.PlatformLauncher, fallback ports.PlatformLauncher) (*Chain, error) {
	if primary == nil {
		return nil, errNilPrimary
	}
	if fallback == nil {
		return nil, errNilFallback
	}

	return &Chain{primary: primary, fallback: fallback}, nil
}

func (c *Chain) Native() bool {
	return c.primary.Native() || c.fallback.Native()
}

func (c *Chain) Open(ctx context.Context, target string) error {
	err := c.primary.Open(ctx, target)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := c.fallback.Open(ctx, target)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary launcher open failed: %w; fallback launcher open failed: %w", err, fallbackErr)
}

// New builds the launcher for mode on top of opener.
func New(mode Mode, opener Opener) (ports.PlatformLauncher, error) {
	if opener == nil {
		return nil, errNilOpener
	}

	switch mode {
	case ModeWeb, "":
		return NewWeb(opener), nil
	case ModeNative:
		return NewNative(opener), nil
	case ModeChain:
		return NewChain(NewNative(opener), NewWeb(opener))
	default:
		return nil, fmt.Errorf("unknown launcher mode %q", mode)
	}
}

func schemeOf(target string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(target))
	if err != nil {
		return "", fmt.Errorf("parse url %q: %w", target, err)
	}
	if parsed.Scheme == "" {
		return "", fmt.Errorf("open %q: %w", target, errEmptyScheme)
	}
	return strings.ToLower(parsed.Scheme), nil
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
