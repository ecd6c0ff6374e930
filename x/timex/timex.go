package timex

import "time"

// Ms is a free-running millisecond counter. It wraps at 2^32 (~49.7 days),
// like an MCU millis() tick.
type Ms uint32

// Since returns now-then in modular arithmetic, which stays correct across
// a single wrap of the counter.
func Since(now, then Ms) Ms { return now - then }

// Due reports whether at least every has elapsed between then and now.
func Due(now, then, every Ms) bool { return Since(now, then) >= every }

// FromDuration truncates d to whole milliseconds.
func FromDuration(d time.Duration) Ms { return Ms(d / time.Millisecond) }

// Clock returns the current tick.
type Clock func() Ms

// Monotonic returns a Clock counting milliseconds since the call, truncated
// to 32 bits so it wraps the same way the MCU counter does.
func Monotonic() Clock {
	start := time.Now()
	return func() Ms { return Ms(uint64(time.Since(start) / time.Millisecond)) }
}

// Manual is a settable Clock for tests and simulations.
type Manual struct{ Now Ms }

func (m *Manual) Clock() Clock { return func() Ms { return m.Now } }
func (m *Manual) Advance(d Ms) { m.Now += d }
func (m *Manual) Set(now Ms)   { m.Now = now }
