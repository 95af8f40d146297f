package core

// Clock is a monotonic millisecond time source.
type Clock interface {
	Ticks() uint64
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() uint64

// Ticks calls f.
func (f ClockFunc) Ticks() uint64 {
	return f()
}

// Stopwatch turns a Clock into per-step elapsed seconds.
// The first call to Lap returns 0.
type Stopwatch struct {
	clock   Clock
	last    uint64
	started bool
}

// NewStopwatch creates a stopwatch reading from clock.
func NewStopwatch(clock Clock) *Stopwatch {
	return &Stopwatch{clock: clock}
}

// Lap returns the seconds elapsed since the previous Lap.
func (s *Stopwatch) Lap() float64 {
	now := s.clock.Ticks()
	if !s.started {
		s.last = now
		s.started = true
	}
	if now < s.last {
		now = s.last
	}
	dt := float64(now-s.last) / 1000.0
	s.last = now
	return dt
}

// Reset makes the next Lap return 0 again.
func (s *Stopwatch) Reset() {
	s.started = false
}
