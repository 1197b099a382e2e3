package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/spidy/internal/application"
	"github.com/bnema/spidy/internal/domain"
	"github.com/bnema/spidy/internal/ports"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*CatalogRepository, string) {
	t.Helper()

	catalogPath := filepath.Join(t.TempDir(), "catalog.toml")
	config := viper.New()
	config.Set(CatalogPathKey, catalogPath)

	repo, err := NewCatalogRepository(config)
	require.NoError(t, err)
	return repo, catalogPath
}

func TestCatalogRepositoryLoadFallsBackToDefault(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	catalog, err := repo.Load(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, catalog.Templates)
	assert.Equal(t, "open youtube", catalog.Templates[0].Pattern)
	assert.Equal(t, domain.AppID("youtube"), catalog.Templates[0].AppID)

	youtube, err := catalog.Apps.Get("youtube")
	require.NoError(t, err)
	assert.Equal(t, "https://youtube.com", youtube.WebURL)
	assert.True(t, youtube.HasLink(domain.IntentPlay))
}

func TestDefaultCatalogCompiles(t *testing.T) {
	t.Parallel()

	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	patterns, err := application.CompilePatterns(catalog.Templates, catalog.Apps)
	require.NoError(t, err)
	assert.Len(t, patterns, len(catalog.Templates))

	m := application.NewMatcher(patterns)
	got := m.Match("search for cats")
	require.True(t, got.Matched())
	assert.Equal(t, "cats", got.Parameter)

	got = m.Match("open google maps")
	require.True(t, got.Matched())
	assert.Equal(t, domain.AppID("maps"), got.Template().AppID)
}

func TestDefaultCatalogRoutesCommandsToTheirApps(t *testing.T) {
	t.Parallel()

	catalog, err := DefaultCatalog()
	require.NoError(t, err)
	m, err := application.NewMatcherFromCatalog(catalog)
	require.NoError(t, err)
	d := application.NewDispatcher(catalog.Apps, ports.SystemClock{})

	tests := []struct {
		transcript string
		pattern    string
		target     string
	}{
		{transcript: "search for call of duty", pattern: "(search|look up) for *", target: "https://google.com/search?q=call%20of%20duty"},
		{transcript: "look up text editors", pattern: "(search|look up) *", target: "https://google.com/search?q=text%20editors"},
		{transcript: "search youtube for text to speech", pattern: "search youtube for *", target: "https://youtube.com/results?search_query=text%20to%20speech"},
		{transcript: "call mom", pattern: "(call|dial) *", target: "tel:mom"},
		{transcript: "send a message to bob", pattern: "(text|send a message to) *", target: "sms:bob"},
		{transcript: "play despacito on youtube", pattern: "play * on youtube", target: "https://youtube.com/results?search_query=despacito"},
	}

	for _, tt := range tests {
		t.Run(tt.transcript, func(t *testing.T) {
			got := m.Match(tt.transcript)
			require.True(t, got.Matched())
			assert.Equal(t, tt.pattern, got.Template().Pattern)

			action := d.Dispatch(got, domain.Environment{})
			assert.Equal(t, tt.target, action.TargetURL)
		})
	}
}

func TestCatalogRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	catalog := domain.Catalog{
		Templates: []domain.CommandTemplate{
			{Pattern: "open docs", AppID: "docs"},
			{Pattern: "(call|dial) *", AppID: "phone", Intent: domain.IntentCall, Reply: "Calling {param}"},
			{Pattern: "hello", Intent: domain.IntentGreet},
		},
		Apps: domain.AppRegistry{
			"docs": {ID: "docs", Name: "Docs", WebURL: "https://docs.google.com"},
			"phone": {
				ID:           "phone",
				NativeScheme: "tel:",
				Links:        map[domain.Intent]domain.Link{domain.IntentCall: {Native: "tel:{param}"}},
			},
		},
	}

	require.NoError(t, repo.Save(context.Background(), catalog))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog, got)
}

func TestCatalogRepositoryRejectsFutureSchema(t *testing.T) {
	t.Parallel()

	repo, catalogPath := newTestRepository(t)
	require.NoError(t, os.WriteFile(catalogPath, []byte("version = 9\n"), 0o644))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported catalog schema version 9")
}

func TestCatalogRepositoryRejectsInvalidTOML(t *testing.T) {
	t.Parallel()

	repo, catalogPath := newTestRepository(t)
	require.NoError(t, os.WriteFile(catalogPath, []byte("[[commands]\npattern = "), 0o644))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalog file")
}

func TestCatalogRepositoryWriteDefault(t *testing.T) {
	t.Parallel()

	repo, catalogPath := newTestRepository(t)
	require.NoError(t, repo.WriteDefault(context.Background(), false))

	data, err := os.ReadFile(catalogPath)
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalogTOML(), data)

	err = repo.WriteDefault(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, repo.WriteDefault(context.Background(), true))

	entries, err := os.ReadDir(filepath.Dir(catalogPath))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCatalogRepositoryHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, repo.Save(ctx, domain.Catalog{}), context.Canceled)
}
