package ports

import (
	"context"

	"github.com/bnema/spidy/internal/domain"
)

// SpeechRecognizer produces transcript and error events on the sink it was
// built with. Start on a running recognizer is a no-op.
type SpeechRecognizer interface {
	Start(ctx context.Context) error
	Stop() error
}

// SpeechSynthesizer plays one utterance at a time and posts a
// domain.UtteranceDoneEvent when an utterance ends, canceled or not.
type SpeechSynthesizer interface {
	Speak(ctx context.Context, utterance domain.Utterance) error
	Speaking() bool
	Cancel() error
	Close() error
}
