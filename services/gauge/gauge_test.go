package gauge

import (
	"bytes"
	"context"
	"image/color"
	"strings"
	"testing"
	"time"

	"gaugecode-go/errcode"
	"gaugecode-go/services/config"
	"gaugecode-go/services/gauge/status"
	"gaugecode-go/x/framebuf"
	"gaugecode-go/x/logx"
	"gaugecode-go/x/timex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct{ temp, hum, press int32 }

func (e env) ReadTemperature() (int32, error) { return e.temp, nil }
func (e env) ReadHumidity() (int32, error)    { return e.hum, nil }
func (e env) ReadPressure() (int32, error)    { return e.press, nil }

func seeded() *config.Config {
	cfg := config.Default()
	cfg.Source.Seed = 1
	return cfg
}

func TestServiceCyclesChannels(t *testing.T) {
	fb := framebuf.New(240, 240)
	var logs bytes.Buffer
	var clk timex.Manual

	svc, err := New(seeded(), Options{
		Surface: NewDisplaySurface(fb),
		Log:     logx.New(&logs, false),
		Clock:   clk.Clock(),
	})
	require.NoError(t, err)

	svc.Start(0)
	assert.Equal(t, 1, fb.Frames())
	i, name := svc.Active()
	assert.Equal(t, 0, i)
	assert.Equal(t, "Temperature", name)

	var seen []string
	for now := timex.Ms(1); now <= 21000; now++ {
		if svc.Tick(now).Has(Rotate) {
			_, name := svc.Active()
			seen = append(seen, name)
		}
	}
	assert.Equal(t, []string{"Humidity", "Pressure", "Temperature"}, seen)
	assert.Equal(t, 1+3+3, fb.Frames())

	// random values land inside the configured simulation bands
	rs := svc.Readings()
	require.Len(t, rs, 3)
	assert.True(t, rs[0].Value > 15 && rs[0].Value < 35)
	assert.True(t, rs[2].Value > 980 && rs[2].Value < 1020)

	out := logs.String()
	assert.Contains(t, out, "Info: Cycling through: Temperature -> Humidity -> Pressure\r\n")
	assert.Contains(t, out, "Info: Switched to sensor 2: Pressure\r\n")

	var summaries int
	for _, line := range strings.Split(out, "\n") {
		if rs, ok := status.Parse(line); ok {
			summaries++
			assert.Len(t, rs, 3)
		}
	}
	assert.Equal(t, 4, summaries)
}

func TestServiceWithBME280(t *testing.T) {
	cfg := config.Default()
	cfg.Source.Kind = config.SourceBME280

	_, err := New(cfg, Options{Surface: NewDisplaySurface(framebuf.New(240, 240))})
	assert.Equal(t, errcode.InvalidParams, errcode.Of(err))

	svc, err := New(cfg, Options{
		Surface: NewDisplaySurface(framebuf.New(240, 240)),
		Source:  NewBME280Source(env{temp: 21500, hum: 4800, press: 99870000}),
	})
	require.NoError(t, err)
	svc.Start(0)

	rs := svc.Readings()
	assert.InDelta(t, 21.5, rs[0].Value, 1e-4)
	assert.InDelta(t, 48.0, rs[1].Value, 1e-4)
	assert.InDelta(t, 998.7, rs[2].Value, 1e-3)
}

func TestServiceRejectsDegenerateChannel(t *testing.T) {
	cfg := seeded()
	cfg.Channels[1].Min = 100 // equal to Max
	cfg.Channels[1].SimMin, cfg.Channels[1].SimMax = 0, 0

	_, err := New(cfg, Options{Surface: NewDisplaySurface(framebuf.New(240, 240))})
	require.Error(t, err)
	assert.Equal(t, errcode.InvalidRange, errcode.Of(err))
}

func TestServiceRequiresSurface(t *testing.T) {
	_, err := New(seeded(), Options{})
	assert.Equal(t, errcode.InvalidParams, errcode.Of(err))

	cfg := seeded()
	cfg.Timing.Rotate = 0
	_, err = New(cfg, Options{Surface: NewDisplaySurface(framebuf.New(240, 240))})
	assert.Equal(t, errcode.InvalidInterval, errcode.Of(err))
}

func TestServiceRunUntilCancelled(t *testing.T) {
	cfg := seeded()
	cfg.Timing.Refresh = 5 * time.Millisecond
	cfg.Timing.Rotate = 7 * time.Millisecond
	cfg.Timing.Redraw = 6 * time.Millisecond
	cfg.Timing.Idle = time.Millisecond

	fb := framebuf.New(240, 240)
	svc, err := New(cfg, Options{Surface: NewDisplaySurface(fb)})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, svc.Run(ctx), context.DeadlineExceeded)
	assert.Greater(t, fb.Frames(), 1)

	// the needle hub is drawn in the active channel's colour
	_, name := svc.Active()
	for _, cc := range cfg.Channels {
		if cc.Name == name {
			assert.Equal(t, color.RGBA(cc.Color), fb.RGBAAt(120, 120))
		}
	}
}
