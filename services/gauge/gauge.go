// Package gauge wires the channel registry, value source, renderer and
// cycle scheduler into one service driven by a config.Config.
package gauge

import (
	"context"
	"strings"
	"time"

	"tinygo.org/x/drivers"

	"gaugecode-go/errcode"
	"gaugecode-go/services/config"
	"gaugecode-go/services/gauge/internal/cycle"
	"gaugecode-go/services/gauge/internal/geometry"
	"gaugecode-go/services/gauge/internal/registry"
	"gaugecode-go/services/gauge/internal/render"
	"gaugecode-go/services/gauge/internal/source"
	"gaugecode-go/services/gauge/status"
	"gaugecode-go/x/logx"
	"gaugecode-go/x/timex"
)

type (
	// Surface is the display collaborator.
	Surface = render.Surface
	// ValueSource supplies channel values on every refresh.
	ValueSource = source.Source
	// Environment is a BME280-style temperature/humidity/pressure reader.
	Environment = source.Environment
	// Fired reports which timers expired in one Tick.
	Fired = cycle.Fired
)

const (
	Refresh = cycle.Refresh
	Rotate  = cycle.Rotate
	Redraw  = cycle.Redraw
)

// NewDisplaySurface draws through a tinygo display driver.
func NewDisplaySurface(d drivers.Displayer) Surface { return render.NewDisplaySurface(d) }

// NewBME280Source reads Temperature, Humidity and Pressure channels from env.
func NewBME280Source(env Environment) ValueSource { return source.NewBME280(env) }

// Options carries the collaborators a Service cannot build from config.
type Options struct {
	Surface Surface     // required
	Source  ValueSource // required for config.SourceBME280, optional otherwise
	Log     logx.Logger // nil discards
	Clock   timex.Clock // nil uses timex.Monotonic
}

// Service is one gauge display loop.
type Service struct {
	cfg   *config.Config
	reg   *registry.Registry
	sched *cycle.Scheduler
	log   logx.Logger
	clock timex.Clock
}

func New(cfg *config.Config, opts Options) (*Service, error) {
	const op = "gauge.New"
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Surface == nil {
		return nil, errcode.New(errcode.InvalidParams, op, "surface is required")
	}
	if opts.Log == nil {
		opts.Log = logx.Noop()
	}
	if opts.Clock == nil {
		opts.Clock = timex.Monotonic()
	}

	chans := make([]registry.Channel, 0, len(cfg.Channels))
	for _, cc := range cfg.Channels {
		ch, err := registry.NewChannel(cc.Name, cc.Min, cc.Max, cc.Unit, cc.RGBA())
		if err != nil {
			return nil, err
		}
		chans = append(chans, ch)
	}
	reg, err := registry.New(chans...)
	if err != nil {
		return nil, err
	}

	src := opts.Source
	if src == nil {
		switch cfg.Source.Kind {
		case config.SourceRandom:
			src = newRandom(cfg)
		default:
			return nil, errcode.New(errcode.InvalidParams, op, cfg.Source.Kind+" source needs Options.Source")
		}
	}

	g := cfg.Gauge
	r := render.New(opts.Surface, geometry.Config{
		Center:       geometry.Point{X: g.CenterX, Y: g.CenterY},
		Radius:       g.Radius,
		NeedleLength: g.NeedleLength,
		ArcStart:     g.ArcStart,
		ArcSpan:      g.ArcSpan,
		Ticks:        g.Ticks,
		TickOuter:    g.TickOuter,
		TickInner:    g.TickInner,
	}, render.Style{
		Background: render.DefaultStyle.Background,
		Scale:      render.DefaultStyle.Scale,
		Label:      render.DefaultStyle.Label,
		Range:      render.DefaultStyle.Range,
		HubRadius:  g.HubRadius,
		Width:      cfg.Display.Width,
		NameY:      g.NameY,
		ValueY:     g.ValueY,
		RangeY:     g.RangeY,
		GlyphWidth: g.GlyphWidth,
	})

	sched, err := cycle.New(reg, src, r, opts.Log, cycle.Intervals{
		Refresh: timex.FromDuration(cfg.Timing.Refresh),
		Rotate:  timex.FromDuration(cfg.Timing.Rotate),
		Redraw:  timex.FromDuration(cfg.Timing.Redraw),
	})
	if err != nil {
		return nil, err
	}

	return &Service{cfg: cfg, reg: reg, sched: sched, log: opts.Log, clock: opts.Clock}, nil
}

func newRandom(cfg *config.Config) *source.Random {
	seed := int64(cfg.Source.Seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	bands := make([]source.Band, len(cfg.Channels))
	for i, cc := range cfg.Channels {
		bands[i] = source.Band{Lo: cc.SimMin, Hi: cc.SimMax}
	}
	return source.NewRandom(seed, bands...)
}

// Start performs the initial refresh and draw at now.
func (s *Service) Start(now timex.Ms) {
	s.sched.Start(now)
	s.log.Info("Sensor display ready!")
	s.log.Info("Cycling through: %s", strings.Join(s.reg.Names(), " -> "))
}

// Tick runs one loop iteration at now.
func (s *Service) Tick(now timex.Ms) Fired { return s.sched.Tick(now) }

// Run starts the service on its clock and loops until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	s.Start(s.clock())
	return s.sched.Run(ctx, s.clock, s.cfg.Timing.Idle)
}

// Active returns the index and name of the channel on screen.
func (s *Service) Active() (int, string) {
	return s.reg.ActiveIndex(), s.reg.Active().Name()
}

// Readings snapshots every channel's current value.
func (s *Service) Readings() []status.Reading {
	rs := make([]status.Reading, 0, s.reg.Len())
	s.reg.Each(func(_ int, ch *registry.Channel) {
		rs = append(rs, status.Reading{Name: ch.Name(), Value: ch.Value, Unit: ch.Unit()})
	})
	return rs
}
