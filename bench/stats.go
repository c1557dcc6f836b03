package bench

import (
	"log/slog"
	"time"
)

// Stats are the counters of a benchmark run.
type Stats struct {
	Frames     uint64
	Start      time.Time
	Last       time.Time
	CurrentFPS float64
	MaxFPS     float64
	AverageFPS float64
	CPUPercent float64
	Images     int
}

func (s *Stats) Begin(now time.Time) {
	*s = Stats{Start: now, Last: now, Images: s.Images}
}

// Update recomputes the current rate from the frames completed so far.
func (s *Stats) Update(now time.Time) {
	s.Last = now
	elapsed := s.Elapsed()
	if s.Frames == 0 || elapsed <= 0 {
		return
	}
	s.CurrentFPS = float64(s.Frames) / elapsed.Seconds()
	s.MaxFPS = max(s.MaxFPS, s.CurrentFPS)
}

// Finish computes the average rate of the whole run.
func (s *Stats) Finish(now time.Time) {
	s.Last = now
	if elapsed := s.Elapsed(); elapsed > 0 {
		s.AverageFPS = float64(s.Frames) / elapsed.Seconds()
	}
}

func (s Stats) Elapsed() time.Duration { return s.Last.Sub(s.Start) }

var _ slog.LogValuer = Stats{}

func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64(`frames`, s.Frames),
		slog.Duration(`elapsed`, s.Elapsed()),
		slog.Float64(`fps`, s.CurrentFPS),
		slog.Float64(`max_fps`, s.MaxFPS),
		slog.Float64(`avg_fps`, s.AverageFPS),
		slog.Float64(`cpu_percent`, s.CPUPercent),
		slog.Int(`images`, s.Images),
	)
}
