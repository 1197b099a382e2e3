package domain

import "fmt"

type StatusIcon string

const (
	IconMicrophone      StatusIcon = "microphone"
	IconMicrophoneSlash StatusIcon = "microphone-slash"
	IconError           StatusIcon = "exclamation-circle"
	IconMoon            StatusIcon = "moon"
)

type StatusKind string

const (
	StatusPrompt    StatusKind = "prompt"
	StatusListening StatusKind = "listening"
	StatusMicOff    StatusKind = "mic_off"
	StatusError     StatusKind = "error"
	StatusSleeping  StatusKind = "sleeping"
)

// Status is what the presentation layer shows after every transition.
type Status struct {
	Kind  StatusKind
	Text  string
	Icon  StatusIcon
	Color string
}

func PromptStatus(wakeLabel string) Status {
	return Status{Kind: StatusPrompt, Text: fmt.Sprintf("Say '%s'", wakeLabel), Icon: IconMicrophoneSlash, Color: "#6200ea"}
}

func ListeningStatus() Status {
	return Status{Kind: StatusListening, Text: "Listening...", Icon: IconMicrophone, Color: "#4CAF50"}
}

func MicOffStatus() Status {
	return Status{Kind: StatusMicOff, Text: "Mic off", Icon: IconMicrophoneSlash, Color: "#6200ea"}
}

func ErrorStatus() Status {
	return Status{Kind: StatusError, Text: "Error - try again", Icon: IconError, Color: "#ff0000"}
}

func SleepingStatus() Status {
	return Status{Kind: StatusSleeping, Text: "Sleeping", Icon: IconMoon, Color: "#aaaaaa"}
}
