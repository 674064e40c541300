package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryCounters(t *testing.T) {
	r := NewRegistry()
	assert.Zero(t, r.Int(MetricLaps))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Inc(MetricTicks)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(800), r.Int(MetricTicks))
	assert.Same(t, r.Ints.Get(MetricTicks), r.Ints.Get(MetricTicks))
}

func TestRegistryReportSorted(t *testing.T) {
	r := NewRegistry()
	r.Inc(MetricWallHits)
	r.Inc(MetricLaps)
	r.Floats.Get(GaugeBestLap).Set(12.5)
	r.Strings.Get(LabelTrack).Store("speedway")

	assert.Equal(t, []string{
		"collision.wall_hits=1",
		"race.laps=1",
		"race.best_lap_seconds=12.50",
		"race.track=speedway",
	}, r.Report())
	assert.Equal(t, 4, r.TotalCount())
}

func TestAtomicHelpers(t *testing.T) {
	var f AtomicFloat
	assert.Equal(t, 1.5, f.Add(1.5))
	assert.Equal(t, 1.5, f.Get())

	var s AtomicString
	assert.Equal(t, "", s.Load())
	s.Store("a-very-long-label-that-exceeds-the-limit")
	assert.Len(t, s.Load(), MaxStringLen)
}
