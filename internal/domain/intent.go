package domain

// IntentAction is the resolved outcome of one dispatched command.
type IntentAction struct {
	Intent     Intent
	SpokenText string
	TargetURL  string
	// FallbackURL is the web form of TargetURL, set when TargetURL is a
	// native link the platform may not be able to open.
	FallbackURL string
	// ScrollBy is a vertical scroll request in pixels, positive is down.
	ScrollBy int
}

func (a IntentAction) HasFallback() bool {
	return a.FallbackURL != "" && a.FallbackURL != a.TargetURL
}

func (a IntentAction) HasTarget() bool {
	return a.TargetURL != ""
}
