package domain

// Event is anything the conversation controller reacts to. Recognizers,
// synthesizers, timers and the manual toggle all feed one event stream.
type Event interface {
	isEvent()
}

type TranscriptEvent struct {
	Text  string
	Final bool
}

type RecognitionErrorEvent struct {
	Err error
}

// StreamClosedEvent is posted when the recognizer has no more input.
type StreamClosedEvent struct{}

type UtteranceDoneEvent struct {
	ID UtteranceID
}

type ToggleEvent struct{}

type IdleTickEvent struct{}

func (TranscriptEvent) isEvent()       {}
func (RecognitionErrorEvent) isEvent() {}
func (StreamClosedEvent) isEvent()     {}
func (UtteranceDoneEvent) isEvent()    {}
func (ToggleEvent) isEvent()           {}
func (IdleTickEvent) isEvent()         {}

// EventSink delivers an event to the controller's inbound stream.
type EventSink func(Event)
