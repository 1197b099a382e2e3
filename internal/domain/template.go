package domain

type AppID string

type Intent string

const (
	IntentOpen       Intent = "open"
	IntentSearch     Intent = "search"
	IntentPlay       Intent = "play"
	IntentMessage    Intent = "message"
	IntentNavigate   Intent = "navigate"
	IntentCall       Intent = "call"
	IntentText       Intent = "text"
	IntentTime       Intent = "time"
	IntentDate       Intent = "date"
	IntentJoke       Intent = "joke"
	IntentWeather    Intent = "weather"
	IntentScrollDown Intent = "scroll_down"
	IntentScrollUp   Intent = "scroll_up"
	IntentCalculate  Intent = "calculate"
	IntentGreet      Intent = "greet"
	// IntentFallback is reported for transcripts no template matched.
	IntentFallback Intent = "fallback"
)

// CommandTemplate is one declarative entry of the command table. Pattern
// mixes literal words, alternation groups like "(call|dial)" and at most one
// "*" wildcard. Reply may use the {app} and {param} placeholders.
type CommandTemplate struct {
	Pattern string
	AppID   AppID
	Intent  Intent
	Reply   string
}

func (t CommandTemplate) BoundToApp() bool {
	return t.AppID != ""
}

// EffectiveIntent returns the template intent, defaulting app-bound templates
// to IntentOpen.
func (t CommandTemplate) EffectiveIntent() Intent {
	if t.Intent == "" && t.BoundToApp() {
		return IntentOpen
	}
	return t.Intent
}

func (i Intent) Known() bool {
	switch i {
	case IntentOpen, IntentSearch, IntentPlay, IntentMessage, IntentNavigate, IntentCall, IntentText,
		IntentTime, IntentDate, IntentJoke, IntentWeather, IntentScrollDown, IntentScrollUp,
		IntentCalculate, IntentGreet:
		return true
	default:
		return false
	}
}

// RequiresApp reports whether the intent resolves to an app URL.
func (i Intent) RequiresApp() bool {
	switch i {
	case IntentOpen, IntentSearch, IntentPlay, IntentMessage, IntentNavigate, IntentCall, IntentText:
		return true
	default:
		return false
	}
}

// Catalog is the static command configuration: templates in declaration
// order plus the app registry they refer to.
type Catalog struct {
	Templates []CommandTemplate
	Apps      AppRegistry
}
