// Package config holds the gauge firmware configuration: display geometry,
// timer intervals, the channel table and the value source selection.
//
// The MCU build uses the compiled-in defaults (see ForBoard). Host builds can
// additionally read YAML files with Load.
package config

import (
	"image/color"
	"time"

	"gaugecode-go/errcode"
)

// Source kinds.
const (
	SourceRandom = "random"
	SourceBME280 = "bme280"
)

// Config represents the application configuration.
type Config struct {
	Display  DisplayConfig   `yaml:"display"`
	Gauge    GaugeConfig     `yaml:"gauge"`
	Timing   TimingConfig    `yaml:"timing"`
	Channels []ChannelConfig `yaml:"channels"`
	Source   SourceConfig    `yaml:"source"`
	Log      LogConfig       `yaml:"log"`
}

// DisplayConfig describes the panel.
type DisplayConfig struct {
	Width       int16 `yaml:"width"`
	Height      int16 `yaml:"height"`
	Orientation uint8 `yaml:"orientation"` // panel scan direction: 0 horizontal, 1 vertical
}

// GaugeConfig holds the dial layout in display pixels and degrees.
type GaugeConfig struct {
	CenterX      int16   `yaml:"center_x"`
	CenterY      int16   `yaml:"center_y"`
	Radius       int16   `yaml:"radius"`
	NeedleLength int16   `yaml:"needle_length"`
	ArcStart     float32 `yaml:"arc_start"`
	ArcSpan      float32 `yaml:"arc_span"`
	Ticks        int     `yaml:"ticks"`
	TickOuter    int16   `yaml:"tick_outer"` // inset of the tick's outer end from the rim
	TickInner    int16   `yaml:"tick_inner"` // inset of the tick's inner end from the rim
	HubRadius    int16   `yaml:"hub_radius"`
	NameY        int16   `yaml:"name_y"`
	ValueY       int16   `yaml:"value_y"`
	RangeY       int16   `yaml:"range_y"`
	GlyphWidth   int16   `yaml:"glyph_width"` // estimated glyph advance at text size 1
}

// TimingConfig holds the three timer intervals plus the idle yield between
// loop iterations. Redraw is deliberately a little shorter than Rotate so a
// redraw lands just before each switch without the two ever locking together.
type TimingConfig struct {
	Refresh time.Duration `yaml:"refresh"`
	Rotate  time.Duration `yaml:"rotate"`
	Redraw  time.Duration `yaml:"redraw"`
	Idle    time.Duration `yaml:"idle"`
}

// ChannelConfig describes one sensor channel.
type ChannelConfig struct {
	Name   string  `yaml:"name"`
	Min    float32 `yaml:"min"`
	Max    float32 `yaml:"max"`
	Unit   string  `yaml:"unit"`
	Color  Color   `yaml:"color"`
	SimMin float32 `yaml:"sim_min"` // random source band; zero band means the declared range
	SimMax float32 `yaml:"sim_max"`
}

// SourceConfig selects where channel values come from.
type SourceConfig struct {
	Kind string `yaml:"kind"`
	Seed uint64 `yaml:"seed"` // 0 = seed from the clock
}

// LogConfig controls the serial/stdout logger.
type LogConfig struct {
	Debug bool `yaml:"debug"`
}

var (
	red   = Color{R: 0xFF, A: 0xFF}
	green = Color{G: 0xFF, A: 0xFF}
	blue  = Color{B: 0xFF, A: 0xFF}
)

// Default returns the reference configuration: a 240x240 round panel
// cycling Temperature, Humidity and Pressure.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{Width: 240, Height: 240},
		Gauge: GaugeConfig{
			CenterX:      120,
			CenterY:      120,
			Radius:       100,
			NeedleLength: 80,
			ArcStart:     225,
			ArcSpan:      270,
			Ticks:        11,
			TickOuter:    10,
			TickInner:    20,
			HubRadius:    5,
			NameY:        80,
			ValueY:       160,
			RangeY:       220,
			GlyphWidth:   6,
		},
		Timing: TimingConfig{
			Refresh: 5000 * time.Millisecond,
			Rotate:  7000 * time.Millisecond,
			Redraw:  6900 * time.Millisecond,
			Idle:    time.Millisecond,
		},
		Channels: []ChannelConfig{
			{Name: "Temperature", Min: 0, Max: 100, Unit: "C", Color: red, SimMin: 15, SimMax: 35},
			{Name: "Humidity", Min: 0, Max: 100, Unit: "%", Color: blue, SimMin: 30, SimMax: 80},
			{Name: "Pressure", Min: 900, Max: 1100, Unit: "hPa", Color: green, SimMin: 980, SimMax: 1020},
		},
		Source: SourceConfig{Kind: SourceRandom},
	}
}

// Validate checks everything except per-channel ranges, which the channel
// registry rejects when it is built.
func (c *Config) Validate() error {
	const op = "config.Validate"
	switch {
	case len(c.Channels) == 0:
		return errcode.New(errcode.NoChannels, op, "at least one channel is required")
	case c.Display.Width <= 0 || c.Display.Height <= 0:
		return errcode.New(errcode.InvalidParams, op, "display size must be positive")
	case c.Display.Orientation > 1:
		return errcode.New(errcode.InvalidParams, op, "display orientation must be 0 or 1")
	case c.Gauge.Radius <= 0 || c.Gauge.NeedleLength <= 0:
		return errcode.New(errcode.InvalidParams, op, "radius and needle length must be positive")
	case c.Gauge.Ticks < 2:
		return errcode.New(errcode.InvalidParams, op, "at least two ticks are required")
	case c.Gauge.ArcSpan == 0:
		return errcode.New(errcode.InvalidParams, op, "arc span must be non-zero")
	case !wholeMillis(c.Timing.Refresh) || !wholeMillis(c.Timing.Rotate) || !wholeMillis(c.Timing.Redraw):
		return errcode.New(errcode.InvalidInterval, op, "timer intervals must be whole milliseconds, at least 1ms")
	case c.Timing.Idle < 0 || c.Timing.Idle >= min(c.Timing.Refresh, c.Timing.Rotate, c.Timing.Redraw):
		return errcode.New(errcode.InvalidInterval, op, "idle must be shorter than every interval")
	}
	switch c.Source.Kind {
	case SourceRandom, SourceBME280:
	default:
		return errcode.New(errcode.InvalidParams, op, "unknown source kind "+c.Source.Kind)
	}
	for _, ch := range c.Channels {
		if ch.SimMin == 0 && ch.SimMax == 0 {
			continue
		}
		if !(ch.SimMin < ch.SimMax) || max(ch.SimMin, ch.Min) >= min(ch.SimMax, ch.Max) {
			return errcode.New(errcode.InvalidRange, op, ch.Name+": simulation band must overlap the channel range")
		}
	}
	return nil
}

// wholeMillis reports whether d is a positive whole number of milliseconds,
// the resolution of the loop's timers.
func wholeMillis(d time.Duration) bool {
	return d >= time.Millisecond && d%time.Millisecond == 0
}

// ensureDefaults fills zero-valued fields from Default.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Display.Width == 0 {
		c.Display.Width = def.Display.Width
	}
	if c.Display.Height == 0 {
		c.Display.Height = def.Display.Height
	}

	g, dg := &c.Gauge, def.Gauge
	orDefault(&g.CenterX, dg.CenterX)
	orDefault(&g.CenterY, dg.CenterY)
	orDefault(&g.Radius, dg.Radius)
	orDefault(&g.NeedleLength, dg.NeedleLength)
	orDefault(&g.ArcStart, dg.ArcStart)
	orDefault(&g.ArcSpan, dg.ArcSpan)
	orDefault(&g.Ticks, dg.Ticks)
	orDefault(&g.TickOuter, dg.TickOuter)
	orDefault(&g.TickInner, dg.TickInner)
	orDefault(&g.HubRadius, dg.HubRadius)
	orDefault(&g.NameY, dg.NameY)
	orDefault(&g.ValueY, dg.ValueY)
	orDefault(&g.RangeY, dg.RangeY)
	orDefault(&g.GlyphWidth, dg.GlyphWidth)

	if c.Timing.Refresh == 0 {
		c.Timing.Refresh = def.Timing.Refresh
	}
	if c.Timing.Rotate == 0 {
		c.Timing.Rotate = def.Timing.Rotate
	}
	if c.Timing.Redraw == 0 {
		c.Timing.Redraw = def.Timing.Redraw
	}
	if c.Timing.Idle == 0 {
		c.Timing.Idle = def.Timing.Idle
	}

	if len(c.Channels) == 0 {
		c.Channels = def.Channels
	}
	for i := range c.Channels {
		if c.Channels[i].Color.A == 0 {
			c.Channels[i].Color.A = 0xFF
		}
	}

	if c.Source.Kind == "" {
		c.Source.Kind = def.Source.Kind
	}
}

// orDefault sets *v to d when *v is the zero value.
func orDefault[T comparable](v *T, d T) {
	var zero T
	if *v == zero {
		*v = d
	}
}

// RGBA returns the channel color as used by the display drivers.
func (c ChannelConfig) RGBA() color.RGBA { return color.RGBA(c.Color) }
