// Package cycle is the gauge control loop: three independent timers decide,
// once per iteration, whether to refresh values, rotate to the next channel
// and redraw the active one.
package cycle

import (
	"context"
	"time"

	"gaugecode-go/errcode"
	"gaugecode-go/services/gauge/internal/registry"
	"gaugecode-go/services/gauge/internal/source"
	"gaugecode-go/services/gauge/status"
	"gaugecode-go/x/logx"
	"gaugecode-go/x/timex"
)

// Fired reports which timers expired in one Tick.
type Fired uint8

const (
	Refresh Fired = 1 << iota
	Rotate
	Redraw
)

func (f Fired) Has(t Fired) bool { return f&t != 0 }

// Intervals are the timer periods in milliseconds.
//
// The reference periods are 5000/7000/6900: Redraw sits just under Rotate so
// the active gauge picks up fresh values shortly before each switch while the
// two timers drift apart rather than firing together.
type Intervals struct {
	Refresh timex.Ms
	Rotate  timex.Ms
	Redraw  timex.Ms
}

// DefaultIntervals are the reference periods.
var DefaultIntervals = Intervals{Refresh: 5000, Rotate: 7000, Redraw: 6900}

// Drawer renders one channel. render.Renderer implements it.
type Drawer interface {
	Draw(ch *registry.Channel) error
}

// State is the scheduler's mutable state. Active mirrors the registry's
// active index; the Last* stamps are the tick each timer last fired at.
type State struct {
	Active      int
	LastRefresh timex.Ms
	LastRotate  timex.Ms
	LastRedraw  timex.Ms
}

// Scheduler drives the registry, value source and renderer. It is not safe
// for concurrent use; one loop owns it.
type Scheduler struct {
	reg *registry.Registry
	src source.Source
	out Drawer
	log logx.Logger
	iv  Intervals

	st      State
	started bool
}

func New(reg *registry.Registry, src source.Source, out Drawer, log logx.Logger, iv Intervals) (*Scheduler, error) {
	const op = "cycle.New"
	switch {
	case reg == nil || src == nil || out == nil:
		return nil, errcode.New(errcode.InvalidParams, op, "registry, source and drawer are required")
	case iv.Refresh == 0 || iv.Rotate == 0 || iv.Redraw == 0:
		return nil, errcode.New(errcode.InvalidInterval, op, "intervals must be non-zero")
	}
	if log == nil {
		log = logx.Noop()
	}
	return &Scheduler{reg: reg, src: src, out: out, log: log, iv: iv}, nil
}

// Start loads initial values, draws the active channel and stamps every
// timer with now.
func (s *Scheduler) Start(now timex.Ms) {
	if err := s.src.Update(s.reg); err != nil {
		s.log.Warn("value refresh: %v", err)
	}
	s.draw()
	s.st = State{Active: s.reg.ActiveIndex(), LastRefresh: now, LastRotate: now, LastRedraw: now}
	s.started = true
}

// Tick evaluates the timers against now, in the order refresh, rotate,
// redraw. Any combination may fire in one call.
func (s *Scheduler) Tick(now timex.Ms) Fired {
	var fired Fired

	if timex.Due(now, s.st.LastRefresh, s.iv.Refresh) {
		s.refresh()
		s.st.LastRefresh = now
		fired |= Refresh
	}

	if timex.Due(now, s.st.LastRotate, s.iv.Rotate) {
		s.st.Active = s.reg.Advance()
		s.draw()
		s.st.LastRotate = now
		s.log.Info("%s", status.FormatSwitch(s.st.Active, s.reg.Active().Name()))
		fired |= Rotate
	}

	// May repeat the rotation's draw in the same tick; drawing is idempotent.
	if timex.Due(now, s.st.LastRedraw, s.iv.Redraw) {
		s.draw()
		s.st.LastRedraw = now
		fired |= Redraw
	}

	return fired
}

// State returns a copy of the current state.
func (s *Scheduler) State() State { return s.st }

// Run starts the scheduler if needed and ticks it every idle period until ctx
// is done. Each iteration does a constant number of comparisons plus at most
// one refresh and two draws.
func (s *Scheduler) Run(ctx context.Context, clock timex.Clock, idle time.Duration) error {
	if !s.started {
		s.Start(clock())
	}
	if idle <= 0 {
		idle = time.Millisecond
	}
	tick := time.NewTicker(idle)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Debug("gauge loop stopping")
			return ctx.Err()
		case <-tick.C:
			s.Tick(clock())
		}
	}
}

func (s *Scheduler) refresh() {
	if err := s.src.Update(s.reg); err != nil {
		s.log.Warn("value refresh: %v", err)
	}
	rs := make([]status.Reading, 0, s.reg.Len())
	s.reg.Each(func(_ int, ch *registry.Channel) {
		rs = append(rs, status.Reading{Name: ch.Name(), Value: ch.Value, Unit: ch.Unit()})
	})
	s.log.Info("%s", status.Format(rs))
}

func (s *Scheduler) draw() {
	if err := s.out.Draw(s.reg.Active()); err != nil {
		s.log.Warn("draw %s: %v", s.reg.Active().Name(), err)
	}
}
