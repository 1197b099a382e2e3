package application

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/bnema/spidy/internal/domain"
	"github.com/bnema/spidy/internal/ports"
)

const (
	scrollStep = 200

	fallbackReply    = "Try saying: 'Open YouTube', 'Search for cats', or 'What time is it?'"
	greetReply       = "Hello there! How can I help you?"
	calculationReply = "I couldn't calculate that"
	defaultPlace     = "your location"
)

var jokes = []string{
	"Why don't scientists trust atoms? Because they make up everything!",
	"Parallel lines have so much in common... it's a shame they'll never meet.",
}

type Dispatcher struct {
	apps  domain.AppRegistry
	clock ports.Clock
	pick  func(n int) int
}

type DispatcherOption func(*Dispatcher)

// WithPicker replaces the random joke picker. pick receives the number of
// jokes and returns an index.
func WithPicker(pick func(n int) int) DispatcherOption {
	return func(d *Dispatcher) {
		d.pick = pick
	}
}

func NewDispatcher(apps domain.AppRegistry, clock ports.Clock, opts ...DispatcherOption) *Dispatcher {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	d := &Dispatcher{apps: apps, clock: clock, pick: rand.Intn}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch resolves a match into the action to perform. It never fails:
// unusable matches degrade to a spoken reply without a target.
func (d *Dispatcher) Dispatch(match MatchResult, env domain.Environment) domain.IntentAction {
	if !match.Matched() {
		return domain.IntentAction{Intent: domain.IntentFallback, SpokenText: fallbackReply}
	}

	tmpl := match.Template()
	if tmpl.BoundToApp() {
		return d.dispatchApp(tmpl, match.Parameter, env)
	}

	intent := tmpl.EffectiveIntent()
	action := domain.IntentAction{Intent: intent}
	now := d.clock.Now()

	switch intent {
	case domain.IntentTime:
		action.SpokenText = "It's " + now.Format("3:04 PM")
	case domain.IntentDate:
		action.SpokenText = "Today is " + now.Format("Monday, January 2, 2006")
	case domain.IntentJoke:
		action.SpokenText = jokes[d.pickIndex(len(jokes))]
	case domain.IntentWeather:
		place := match.Parameter
		if place == "" {
			place = defaultPlace
		}
		action.SpokenText = fmt.Sprintf("I'd normally check the weather in %s, but you need a weather API for this.", place)
	case domain.IntentScrollDown:
		action.ScrollBy = scrollStep
		action.SpokenText = "Scrolled down"
	case domain.IntentScrollUp:
		action.ScrollBy = -scrollStep
		action.SpokenText = "Scrolled up"
	case domain.IntentGreet:
		action.SpokenText = greetReply
	case domain.IntentCalculate:
		action.SpokenText = calculationAnswer(match.Parameter)
	default:
		return domain.IntentAction{Intent: domain.IntentFallback, SpokenText: fallbackReply}
	}

	if tmpl.Reply != "" {
		action.SpokenText = expandReply(tmpl.Reply, "", match.Parameter)
	}
	return action
}

func (d *Dispatcher) dispatchApp(tmpl domain.CommandTemplate, param string, env domain.Environment) domain.IntentAction {
	intent := tmpl.EffectiveIntent()
	app, err := d.apps.Get(tmpl.AppID)
	if err != nil {
		return domain.IntentAction{Intent: domain.IntentFallback, SpokenText: fallbackReply}
	}

	name := app.DisplayName()
	action := domain.IntentAction{Intent: intent}

	target, ok := "", false
	if param != "" {
		target, ok = app.LinkURL(intent, param, env)
	}
	if ok {
		action.TargetURL = target
		action.FallbackURL, _ = app.LinkURL(intent, param, domain.Environment{})
		action.SpokenText = fmt.Sprintf("Opening %s for %s", name, param)
	} else {
		action.TargetURL = app.OpenURL(env)
		action.FallbackURL = app.OpenURL(domain.Environment{})
		action.SpokenText = "Opening " + name
	}
	if !action.HasFallback() {
		action.FallbackURL = ""
	}

	if tmpl.Reply != "" {
		action.SpokenText = expandReply(tmpl.Reply, name, param)
	}
	return action
}

func (d *Dispatcher) pickIndex(n int) int {
	i := d.pick(n)
	if i < 0 || i >= n {
		return 0
	}
	return i
}

func calculationAnswer(expression string) string {
	value, err := Calculate(expression)
	if err != nil {
		return calculationReply
	}
	return fmt.Sprintf("%s equals %s", expression, FormatNumber(value))
}

func expandReply(reply, app, param string) string {
	return strings.NewReplacer("{app}", app, "{param}", param).Replace(reply)
}
