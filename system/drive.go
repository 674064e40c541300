package system

import (
	"time"

	"github.com/lixenwraith/pixel-racer/engine"
	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/physics"
)

// DriveSystem applies human intents to car kinematics
// Accelerate wins over brake when both are held; opposite turns cancel
type DriveSystem struct{}

func NewDriveSystem() engine.System {
	return &DriveSystem{}
}

func (d *DriveSystem) Name() string { return "drive" }

func (d *DriveSystem) Priority() int {
	return parameter.PriorityDrive
}

func (d *DriveSystem) Update(s *engine.Session, now time.Time) {
	for _, h := range s.Humans {
		if h.Stunned(now) {
			physics.Coast(&h.Body)
			continue
		}

		in := s.Intents[h.Slot]
		if in.Left {
			physics.Rotate(&h.Body, 1)
		}
		if in.Right {
			physics.Rotate(&h.Body, -1)
		}

		switch {
		case in.Accelerate:
			physics.Accelerate(&h.Body)
		case in.Brake:
			physics.Brake(&h.Body)
		default:
			physics.Coast(&h.Body)
		}
	}
}
