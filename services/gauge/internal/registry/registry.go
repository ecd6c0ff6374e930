// Package registry holds the fixed, ordered set of sensor channels shown on
// the gauge. Channels are validated when they are created so nothing later in
// the render path can divide by a zero-width range.
package registry

import (
	"image/color"
	"strconv"

	"gaugecode-go/errcode"
	"gaugecode-go/x/mathx"
)

// Channel is one named scalar reading with its valid range and styling.
// Only Value changes after construction.
type Channel struct {
	name  string
	unit  string
	min   float32
	max   float32
	color color.RGBA

	Value float32
}

// NewChannel validates and builds a channel. min must be strictly below max
// and both bounds, as well as max-min, must be finite.
func NewChannel(name string, min, max float32, unit string, c color.RGBA) (Channel, error) {
	const op = "registry.NewChannel"
	if name == "" {
		return Channel{}, errcode.New(errcode.EmptyName, op, "channel name is empty")
	}
	if mathx.IsNaN(min) || mathx.IsNaN(max) || !(min < max) {
		return Channel{}, errcode.New(errcode.InvalidRange, op,
			name+": min "+ftoa(min)+" must be below max "+ftoa(max))
	}
	if !mathx.IsFinite(min) || !mathx.IsFinite(max) || !mathx.IsFinite(max-min) {
		return Channel{}, errcode.New(errcode.InvalidRange, op,
			name+": range "+ftoa(min)+" .. "+ftoa(max)+" is not finite")
	}
	return Channel{name: name, unit: unit, min: min, max: max, color: c, Value: min}, nil
}

func (c *Channel) Name() string      { return c.name }
func (c *Channel) Unit() string      { return c.unit }
func (c *Channel) Min() float32      { return c.min }
func (c *Channel) Max() float32      { return c.max }
func (c *Channel) Color() color.RGBA { return c.color }

// Percent maps Value onto [0,1], saturating outside the declared range.
func (c *Channel) Percent() float32 { return mathx.Unit(c.Value, c.min, c.max) }

func ftoa(f float32) string { return strconv.FormatFloat(float64(f), 'g', -1, 32) }

// Registry is the fixed-length channel collection plus the cyclic index of
// the channel currently on screen. It is owned by a single loop; there is no
// locking.
type Registry struct {
	channels []Channel
	active   int
}

// New builds a registry over chans. The slice is copied.
func New(chans ...Channel) (*Registry, error) {
	if len(chans) == 0 {
		return nil, errcode.New(errcode.NoChannels, "registry.New", "no channels")
	}
	for i := range chans {
		// Zero-value Channels bypass NewChannel.
		if !(chans[i].min < chans[i].max) || chans[i].name == "" {
			return nil, errcode.New(errcode.InvalidParams, "registry.New",
				"channel "+strconv.Itoa(i)+" was not built with NewChannel")
		}
	}
	return &Registry{channels: append([]Channel(nil), chans...)}, nil
}

// Len returns the channel count.
func (r *Registry) Len() int { return len(r.channels) }

// At returns channel i. It panics on an out-of-range index like a slice does.
func (r *Registry) At(i int) *Channel { return &r.channels[i] }

// Each calls fn for every channel in order.
func (r *Registry) Each(fn func(i int, ch *Channel)) {
	for i := range r.channels {
		fn(i, &r.channels[i])
	}
}

// Names lists channel names in order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.channels))
	for i := range r.channels {
		out[i] = r.channels[i].name
	}
	return out
}

// ActiveIndex returns the index of the channel on screen.
func (r *Registry) ActiveIndex() int { return r.active }

// Active returns the channel on screen.
func (r *Registry) Active() *Channel { return &r.channels[r.active] }

// Advance moves to the next channel, wrapping to 0, and returns the new index.
func (r *Registry) Advance() int {
	r.active = (r.active + 1) % len(r.channels)
	return r.active
}

// SetActive selects channel i. Out-of-range indexes are rejected.
func (r *Registry) SetActive(i int) error {
	if i < 0 || i >= len(r.channels) {
		return errcode.New(errcode.InvalidParams, "registry.SetActive", "index "+strconv.Itoa(i)+" out of range")
	}
	r.active = i
	return nil
}
