// Package source supplies new channel values. The scheduler calls Update on
// every refresh; implementations overwrite Channel.Value in place.
package source

import (
	"math/rand"

	"gaugecode-go/services/gauge/internal/registry"
)

// Source overwrites the value of every channel it knows about.
// A returned error is reported by the caller; values already written stay.
type Source interface {
	Update(r *registry.Registry) error
}

// Func adapts a per-channel function to Source.
type Func func(i int, ch *registry.Channel) float32

func (f Func) Update(r *registry.Registry) error {
	r.Each(func(i int, ch *registry.Channel) { ch.Value = f(i, ch) })
	return nil
}

// Band narrows the random draw for one channel. A zero Band, or one that does
// not overlap the declared range, means the declared range.
type Band struct{ Lo, Hi float32 }

// Random draws values uniformly on a 0.1-unit grid strictly inside each
// channel's band.
type Random struct {
	rnd   *rand.Rand
	bands []Band
}

// NewRandom seeds a Random source. bands[i] applies to channel i; missing
// entries use the declared range.
func NewRandom(seed int64, bands ...Band) *Random {
	return &Random{rnd: rand.New(rand.NewSource(seed)), bands: bands}
}

func (s *Random) Update(r *registry.Registry) error {
	r.Each(func(i int, ch *registry.Channel) {
		lo, hi := ch.Min(), ch.Max()
		if i < len(s.bands) && s.bands[i].Lo < s.bands[i].Hi {
			// A band that misses the declared range is ignored.
			if blo, bhi := max(lo, s.bands[i].Lo), min(hi, s.bands[i].Hi); blo < bhi {
				lo, hi = blo, bhi
			}
		}
		ch.Value = s.draw(lo, hi)
	})
	return nil
}

const grid = 10 // steps per unit

func (s *Random) draw(lo, hi float32) float32 {
	steps := int((hi - lo) * grid)
	if steps < 2 {
		return lo + (hi-lo)/2
	}
	k := 1 + s.rnd.Intn(steps-1)
	return lo + float32(k)/grid
}
