package application

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeTranscript folds compatibility forms, lower-cases and collapses
// whitespace. Templates and transcripts go through the same folding.
func NormalizeTranscript(text string) string {
	folded := cases.Lower(language.English).String(norm.NFKC.String(text))
	return strings.Join(strings.Fields(folded), " ")
}

// WakeLabel is the wake word as shown to the user, e.g. "Spidy".
func WakeLabel(wakeWord string) string {
	return cases.Title(language.English).String(NormalizeTranscript(wakeWord))
}
