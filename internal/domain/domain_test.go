package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func youtubeApp() App {
	return App{
		ID:           "youtube",
		WebURL:       "https://youtube.com",
		NativeScheme: "youtube://",
		Links: map[Intent]Link{
			IntentPlay: {Web: "https://youtube.com/results?search_query={query}"},
		},
	}
}

func TestAppOpenURLPrefersNativeWhenCapable(t *testing.T) {
	tests := []struct {
		name string
		app  App
		env  Environment
		want string
	}{
		{name: "desktop web", app: youtubeApp(), env: Environment{}, want: "https://youtube.com"},
		{name: "mobile runtime", app: youtubeApp(), env: Environment{IsMobileRuntime: true}, want: "youtube://"},
		{name: "native launcher", app: youtubeApp(), env: Environment{HasNativeLauncher: true}, want: "youtube://"},
		{name: "native only app on desktop", app: App{ID: "phone", NativeScheme: "tel:"}, env: Environment{}, want: "tel:"},
		{name: "web only app on mobile", app: App{ID: "gmail", WebURL: "https://mail.google.com"}, env: Environment{IsMobileRuntime: true}, want: "https://mail.google.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.app.OpenURL(tt.env))
		})
	}
}

func TestAppLinkURLEscapesParameter(t *testing.T) {
	app := youtubeApp()

	got, ok := app.LinkURL(IntentPlay, "lo fi & chill", Environment{})
	require.True(t, ok)
	assert.Equal(t, "https://youtube.com/results?search_query=lo%20fi%20%26%20chill", got)

	_, ok = app.LinkURL(IntentCall, "555", Environment{})
	assert.False(t, ok)
}

func TestAppLinkURLPathParameter(t *testing.T) {
	phone := App{ID: "phone", Links: map[Intent]Link{IntentCall: {Native: "tel:{param}"}}}

	got, ok := phone.LinkURL(IntentCall, "555 1234", Environment{})
	require.True(t, ok)
	assert.Equal(t, "tel:555%201234", got)
}

func TestAppRegistryGet(t *testing.T) {
	registry := AppRegistry{"youtube": youtubeApp(), "drive": {ID: "drive"}}

	app, err := registry.Get("youtube")
	require.NoError(t, err)
	assert.Equal(t, "youtube", app.DisplayName())

	_, err = registry.Get("netflix")
	assert.ErrorIs(t, err, ErrAppNotFound)
	assert.Equal(t, []AppID{"drive", "youtube"}, registry.IDs())
}

func TestCommandTemplateEffectiveIntent(t *testing.T) {
	assert.Equal(t, IntentOpen, CommandTemplate{Pattern: "open youtube", AppID: "youtube"}.EffectiveIntent())
	assert.Equal(t, IntentPlay, CommandTemplate{Pattern: "play * on youtube", AppID: "youtube", Intent: IntentPlay}.EffectiveIntent())
	assert.Equal(t, Intent(""), CommandTemplate{Pattern: "hello"}.EffectiveIntent())
	assert.False(t, Intent("dance").Known())
}

func TestActivityIdleFor(t *testing.T) {
	t0 := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	a := Activity{}
	a.Touch(t0)

	assert.False(t, a.IdleFor(t0.Add(20*time.Second), 30*time.Second))
	assert.False(t, a.IdleFor(t0.Add(30*time.Second), 30*time.Second))
	assert.True(t, a.IdleFor(t0.Add(35*time.Second), 30*time.Second))
	assert.False(t, a.IdleFor(t0.Add(time.Hour), 0))
}

func TestTypedErrorsUnwrapToSentinels(t *testing.T) {
	var err error = &TemplateError{Index: 2, Pattern: "open (youtube", Reason: "unclosed group"}
	assert.True(t, errors.Is(err, ErrTemplate))
	assert.Equal(t, `template 2 "open (youtube": unclosed group`, err.Error())

	err = &CalculationError{Expression: "2 +", Reason: "unexpected end"}
	assert.True(t, errors.Is(err, ErrCalculation))
}

func TestStatusPromptUsesWakeLabel(t *testing.T) {
	s := PromptStatus("Spidy")
	assert.Equal(t, "Say 'Spidy'", s.Text)
	assert.Equal(t, StatusPrompt, s.Kind)
}
