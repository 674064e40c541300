package status

import (
	"fmt"
	"sync/atomic"
)

// Counter and gauge keys written by the race systems
const (
	MetricTicks       = "race.ticks"
	MetricWallHits    = "collision.wall_hits"
	MetricPushOuts    = "collision.push_outs"
	MetricPickups     = "powerup.pickups"
	MetricSpawns      = "powerup.spawns"
	MetricShots       = "projectile.shots"
	MetricHits        = "projectile.hits"
	MetricLaps        = "race.laps"
	MetricWrongWay    = "race.wrong_way"
	MetricTrackChange = "race.track_changes"

	GaugeBestLap = "race.best_lap_seconds"

	LabelTrack   = "race.track"
	LabelOutcome = "race.outcome"
)

// Registry is the central metrics facade
// Systems cache pointers during init; Update loops write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Inc bumps an integer counter
func (r *Registry) Inc(key string) {
	r.Ints.Get(key).Add(1)
}

// Int reads an integer counter, zero when unregistered
func (r *Registry) Int(key string) int64 {
	return r.Ints.Get(key).Load()
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Report renders every metric as "key=value" lines in key order
func (r *Registry) Report() []string {
	var lines []string
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.2f", k, v.Get()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	return lines
}
