package viewer

import (
	"log/slog"
	"time"
)

// DefaultTimerWindow is how many frames each measurement averages over.
const DefaultTimerWindow = 100

// FrameStats is one frame-time measurement.
type FrameStats struct {
	FrameTime time.Duration // mean over the window
	FPS       float64
}

// Milliseconds returns the frame time in fractional milliseconds.
func (s FrameStats) Milliseconds() float64 {
	return float64(s.FrameTime) / float64(time.Millisecond)
}

// FrameTimer measures frame time over a fixed window of frames and logs
// each result.
type FrameTimer struct {
	window int
	frames int
	start  time.Time
	last   FrameStats
	log    *slog.Logger
}

// NewFrameTimer creates a timer that reports every window frames.
func NewFrameTimer(window int, logger *slog.Logger) *FrameTimer {
	if window <= 0 {
		window = DefaultTimerWindow
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FrameTimer{window: window, log: logger}
}

// Tick records a frame finished at now. It reports true when a window
// completed and Last was updated.
func (t *FrameTimer) Tick(now time.Time) bool {
	if t.start.IsZero() {
		t.start = now
		return false
	}
	t.frames++
	if t.frames < t.window {
		return false
	}

	elapsed := now.Sub(t.start)
	t.last = FrameStats{FrameTime: elapsed / time.Duration(t.frames)}
	if elapsed > 0 {
		t.last.FPS = float64(t.frames) / elapsed.Seconds()
	}
	t.frames = 0
	t.start = now

	t.log.Info("frame time",
		slog.Float64("ms", t.last.Milliseconds()),
		slog.Float64("fps", t.last.FPS),
	)
	return true
}

// Last returns the most recent measurement.
func (t *FrameTimer) Last() FrameStats {
	return t.last
}
