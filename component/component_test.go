package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/track"
	"github.com/lixenwraith/pixel-racer/vmath"
)

func testBody(heading float64) Body {
	return NewBody(track.Start{Pos: vmath.V(100, 100), Heading: heading}, 4, 4, 0.1, 14, 24)
}

func TestSilhouetteFollowsHeading(t *testing.T) {
	b := testBody(0)
	mask, origin := b.Silhouette()
	assert.Equal(t, 14, mask.Width())
	assert.Equal(t, 24, mask.Height())
	assert.Equal(t, 14*24, mask.Count())
	assert.Equal(t, 93, origin.X)
	assert.Equal(t, 88, origin.Y)

	b.Heading = -90
	mask, _ = b.Silhouette()
	assert.Equal(t, 24, mask.Width())
	assert.Equal(t, 14, mask.Height())

	b.Heading = 45
	mask, _ = b.Silhouette()
	assert.Greater(t, mask.Width(), 24)
	assert.Less(t, mask.Count(), mask.Width()*mask.Height())

	r := b.Bounds()
	assert.InDelta(t, 100, r.Center().X, 1e-9)
	assert.InDelta(t, 100, r.Center().Y, 1e-9)
}

func TestResetToStart(t *testing.T) {
	b := testBody(30)
	b.Pos = vmath.V(5, 5)
	b.Heading = 400
	b.Velocity = 3
	b.ResetToStart()
	assert.Equal(t, vmath.V(100, 100), b.Pos)
	assert.Equal(t, 30.0, b.Heading)
	assert.Zero(t, b.Velocity)
}

func TestAIWaypointLoop(t *testing.T) {
	a := &AICar{}
	_, ok := a.Target()
	assert.False(t, ok)
	a.AdvanceWaypoint()
	assert.Zero(t, a.WaypointIndex)

	a.Waypoints = []vmath.Vec2{vmath.V(1, 1), vmath.V(2, 2)}
	a.AdvanceWaypoint()
	assert.Equal(t, 1, a.WaypointIndex)
	a.AdvanceWaypoint()
	assert.Equal(t, 0, a.WaypointIndex)
}

func TestLapCooldown(t *testing.T) {
	t0 := time.Unix(1000, 0)
	var l LapState
	l.Begin(t0)

	l.PassCheckpoint()
	require.True(t, l.Complete(t0.Add(20*time.Second)))
	assert.Equal(t, 1, l.Count)
	assert.Equal(t, 20*time.Second, l.BestLap)
	assert.False(t, l.Checkpoint)

	// Checkpoint passed again but inside the cooldown
	l.PassCheckpoint()
	assert.False(t, l.Complete(t0.Add(20*time.Second+parameter.LapCooldown-time.Millisecond)))
	assert.Equal(t, 1, l.Count)
	assert.True(t, l.Checkpoint)

	require.True(t, l.Complete(t0.Add(20*time.Second+parameter.LapCooldown)))
	assert.Equal(t, 2, l.Count)
	assert.Equal(t, parameter.LapCooldown, l.BestLap)
}

func TestLapRequiresCheckpoint(t *testing.T) {
	t0 := time.Unix(1000, 0)
	var l LapState
	l.Begin(t0)

	assert.False(t, l.Complete(t0.Add(30*time.Second)))
	assert.Zero(t, l.Count)

	l.PassCheckpoint()
	l.PassCheckpoint()
	assert.True(t, l.Complete(t0.Add(31*time.Second)))
	assert.False(t, l.Complete(t0.Add(60*time.Second)))
	assert.Equal(t, 1, l.Count)
}

func TestLapFreeze(t *testing.T) {
	t0 := time.Unix(1000, 0)
	var l LapState
	assert.Zero(t, l.Elapsed(t0))

	l.Begin(t0)
	assert.Equal(t, 5*time.Second, l.Elapsed(t0.Add(5*time.Second)))
	l.Freeze(t0.Add(7 * time.Second))
	l.Freeze(t0.Add(9 * time.Second))
	assert.Equal(t, 7*time.Second, l.Elapsed(t0.Add(30*time.Second)))

	l.PassCheckpoint()
	assert.False(t, l.Complete(t0.Add(40*time.Second)))
}

func TestPowerKindString(t *testing.T) {
	assert.Equal(t, "speed-boost", PowerSpeedBoost.String())
	assert.Equal(t, "none", PowerNone.String())
	assert.Equal(t, "p2", Player2.String())
}
