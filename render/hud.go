package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/lixenwraith/pixel-racer/component"
	"github.com/lixenwraith/pixel-racer/engine"
)

// FormatDuration renders race times as m:ss.cc
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	cs := d.Milliseconds() / 10
	return fmt.Sprintf("%d:%02d.%02d", cs/6000, cs/100%60, cs%100)
}

func carLabel(id component.CarID) string {
	return strings.ToUpper(id.String())
}

// StatusLine summarizes the race for the top row
func StatusLine(snap engine.Snapshot) string {
	var sb strings.Builder
	if snap.Track != nil {
		sb.WriteString(snap.Track.Name)
	}
	fmt.Fprintf(&sb, "  %s", snap.Mode)

	for _, c := range snap.Cars {
		fmt.Fprintf(&sb, "  %s %d/%d %s", carLabel(c.ID), c.Laps, snap.LapsToWin, FormatDuration(c.Elapsed))
		if c.BestLap > 0 {
			fmt.Fprintf(&sb, " best %s", FormatDuration(c.BestLap))
		}
		if c.Power != component.PowerNone {
			fmt.Fprintf(&sb, " [%s %.1fs]", c.Power, c.PowerRemaining.Seconds())
		}
		if c.Ammo > 0 {
			fmt.Fprintf(&sb, " ammo %d", c.Ammo)
		}
		if c.Stunned {
			sb.WriteString(" STUNNED")
		}
	}
	return sb.String()
}

// Banner returns the centered overlay text for the race phase, empty while racing
func Banner(snap engine.Snapshot) string {
	switch {
	case snap.Paused:
		return "PAUSED"
	case snap.Phase == engine.PhaseCountdown:
		return fmt.Sprintf("%d", int(math.Ceil(snap.Countdown.Seconds())))
	case snap.Phase == engine.PhaseFinished:
		return OutcomeText(snap.Outcome) + "  (r restart, q quit)"
	}
	return ""
}

// OutcomeText is the player-facing wording of an outcome
func OutcomeText(o engine.Outcome) string {
	switch o {
	case engine.OutcomeWin:
		return "YOU WIN"
	case engine.OutcomeLose:
		return "YOU LOSE"
	case engine.OutcomeP1Win:
		return "PLAYER 1 WINS"
	case engine.OutcomeP2Win:
		return "PLAYER 2 WINS"
	case engine.OutcomeP1LapWin:
		return "PLAYER 1 TAKES THE LAP"
	case engine.OutcomeP2LapWin:
		return "PLAYER 2 TAKES THE LAP"
	case engine.OutcomeChangeMap:
		return "NEXT TRACK"
	}
	return ""
}
