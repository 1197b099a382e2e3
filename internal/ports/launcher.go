package ports

import "context"

type PlatformLauncher interface {
	Open(ctx context.Context, url string) error
	// Native reports whether the launcher can hand custom schemes to
	// native apps.
	Native() bool
}
