package engine

// Outcome is the race signal produced by a tick
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
	OutcomeP1Win
	OutcomeP2Win
	OutcomeP1LapWin
	OutcomeP2LapWin
	OutcomeChangeMap
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomeP1Win:
		return "p1-win"
	case OutcomeP2Win:
		return "p2-win"
	case OutcomeP1LapWin:
		return "p1-lap-win"
	case OutcomeP2LapWin:
		return "p2-lap-win"
	case OutcomeChangeMap:
		return "change-map"
	default:
		return "none"
	}
}

// Final reports outcomes that end the race
func (o Outcome) Final() bool {
	switch o {
	case OutcomeWin, OutcomeLose, OutcomeP1Win, OutcomeP2Win:
		return true
	}
	return false
}

// Phase is the session lifecycle stage
type Phase int

const (
	PhaseCountdown Phase = iota
	PhaseRacing
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseRacing:
		return "racing"
	default:
		return "finished"
	}
}
