package bench_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/fbtft/bench"
)

func TestStats(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var s bench.Stats
	s.Images = 3
	s.Begin(start)
	assert.Equal(t, 3, s.Images)

	// no rate before the first frame
	s.Update(start.Add(time.Second))
	assert.Zero(t, s.CurrentFPS)

	s.Frames = 60
	s.Update(start.Add(2 * time.Second))
	assert.InDelta(t, 30.0, s.CurrentFPS, 1e-9)
	assert.InDelta(t, 30.0, s.MaxFPS, 1e-9)

	s.Frames = 80
	s.Update(start.Add(4 * time.Second))
	assert.InDelta(t, 20.0, s.CurrentFPS, 1e-9)
	assert.InDelta(t, 30.0, s.MaxFPS, 1e-9)

	s.Frames = 100
	s.Finish(start.Add(5 * time.Second))
	assert.InDelta(t, 20.0, s.AverageFPS, 1e-9)
	assert.Equal(t, 5*time.Second, s.Elapsed())
}

func TestStatsFinishWithoutElapsedTime(t *testing.T) {
	now := time.Now()
	var s bench.Stats
	s.Begin(now)
	s.Frames = 5
	s.Finish(now)
	assert.Zero(t, s.AverageFPS)
}
