package game

import "time"

// statsWindow is how often frame statistics are published.
const statsWindow = time.Second

// FramePacer measures frame time against a fixed budget and counts frames
// to derive FPS once per stats window.
type FramePacer struct {
	budget time.Duration
	now    func() time.Time

	start       time.Time
	elapsed     time.Duration
	windowStart time.Time
	frames      int
	fps         float64
}

// NewFramePacer creates a pacer. A nil clock uses time.Now.
func NewFramePacer(budget time.Duration, clock func() time.Time) *FramePacer {
	if clock == nil {
		clock = time.Now
	}
	now := clock()
	return &FramePacer{
		budget:      budget,
		now:         clock,
		start:       now,
		windowStart: now,
	}
}

// Begin marks the start of a frame.
func (p *FramePacer) Begin() {
	p.start = p.now()
}

// End marks the end of a frame. It returns true when a stats window has
// closed and FPS holds a fresh value.
func (p *FramePacer) End() bool {
	now := p.now()
	p.elapsed = now.Sub(p.start)
	p.frames++

	window := now.Sub(p.windowStart)
	if window < statsWindow {
		return false
	}
	p.fps = float64(p.frames) / window.Seconds()
	p.frames = 0
	p.windowStart = now
	return true
}

// Remaining returns the idle time left in the budget for the last frame.
func (p *FramePacer) Remaining() time.Duration {
	return max(p.budget-p.elapsed, 0)
}

// FPS returns the rate measured over the last closed window.
func (p *FramePacer) FPS() float64 {
	return p.fps
}
