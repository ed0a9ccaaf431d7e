package game

import "snake-arcade/game/types"

// IntentKind enumerates what a boundary can ask of the controller.
type IntentKind int

const (
	IntentSteer IntentKind = iota
	// IntentStart begins a round while waiting and toggles pause otherwise,
	// matching a single "space" key.
	IntentStart
	IntentTogglePause
	IntentRestart
	IntentSubmitName
	// IntentClearScores must only be sent after the player confirmed.
	IntentClearScores
)

func (k IntentKind) String() string {
	switch k {
	case IntentSteer:
		return "steer"
	case IntentStart:
		return "start"
	case IntentTogglePause:
		return "toggle-pause"
	case IntentRestart:
		return "restart"
	case IntentSubmitName:
		return "submit-name"
	case IntentClearScores:
		return "clear-scores"
	default:
		return "unknown"
	}
}

type Intent struct {
	Kind      IntentKind
	Direction types.Direction
	Text      string
}

func Steer(d types.Direction) Intent {
	return Intent{Kind: IntentSteer, Direction: d}
}

func SubmitName(text string) Intent {
	return Intent{Kind: IntentSubmitName, Text: text}
}

func Control(kind IntentKind) Intent {
	return Intent{Kind: kind}
}
