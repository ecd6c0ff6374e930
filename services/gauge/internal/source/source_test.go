package source

import (
	"errors"
	"image/color"
	"testing"

	"gaugecode-go/errcode"
	"gaugecode-go/services/gauge/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	var chans []registry.Channel
	for _, c := range []struct {
		name     string
		min, max float32
	}{
		{"Temperature", 0, 100},
		{"Humidity", 0, 100},
		{"Pressure", 900, 1100},
	} {
		ch, err := registry.NewChannel(c.name, c.min, c.max, "", color.RGBA{A: 0xFF})
		require.NoError(t, err)
		chans = append(chans, ch)
	}
	r, err := registry.New(chans...)
	require.NoError(t, err)
	return r
}

func TestFunc(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, Func(func(i int, ch *registry.Channel) float32 { return ch.Max() + float32(i) }).Update(r))
	assert.Equal(t, float32(100), r.At(0).Value)
	assert.Equal(t, float32(101), r.At(1).Value)
	assert.Equal(t, float32(1102), r.At(2).Value)
}

func TestRandomStaysStrictlyInsideRange(t *testing.T) {
	r := newRegistry(t)
	src := NewRandom(1)
	for n := 0; n < 500; n++ {
		require.NoError(t, src.Update(r))
		r.Each(func(_ int, ch *registry.Channel) {
			assert.Greater(t, ch.Value, ch.Min())
			assert.Less(t, ch.Value, ch.Max())
		})
	}
}

func TestRandomHonoursBands(t *testing.T) {
	r := newRegistry(t)
	src := NewRandom(7, Band{15, 35}, Band{}, Band{980, 1020})
	for n := 0; n < 500; n++ {
		require.NoError(t, src.Update(r))
		assert.True(t, r.At(0).Value > 15 && r.At(0).Value < 35, "temperature %v", r.At(0).Value)
		assert.True(t, r.At(1).Value > 0 && r.At(1).Value < 100, "humidity %v", r.At(1).Value)
		assert.True(t, r.At(2).Value > 980 && r.At(2).Value < 1020, "pressure %v", r.At(2).Value)
	}
}

func TestRandomIgnoresDisjointBand(t *testing.T) {
	r := newRegistry(t)
	src := NewRandom(5, Band{150, 200}, Band{}, Band{800, 900})
	for n := 0; n < 200; n++ {
		require.NoError(t, src.Update(r))
		r.Each(func(_ int, ch *registry.Channel) {
			assert.Greater(t, ch.Value, ch.Min())
			assert.Less(t, ch.Value, ch.Max())
		})
	}
}

func TestRandomIsDeterministicPerSeed(t *testing.T) {
	a, b := newRegistry(t), newRegistry(t)
	require.NoError(t, NewRandom(99).Update(a))
	require.NoError(t, NewRandom(99).Update(b))
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, a.At(i).Value, b.At(i).Value)
	}
}

func TestRandomNarrowRangeUsesMidpoint(t *testing.T) {
	ch, err := registry.NewChannel("Tiny", 1, 1.05, "", color.RGBA{})
	require.NoError(t, err)
	r, err := registry.New(ch)
	require.NoError(t, err)
	require.NoError(t, NewRandom(3).Update(r))
	assert.InDelta(t, 1.025, r.At(0).Value, 1e-6)
}

type fakeEnv struct {
	temp, press, hum int32
	pressErr         error
}

func (f *fakeEnv) ReadTemperature() (int32, error) { return f.temp, nil }
func (f *fakeEnv) ReadPressure() (int32, error)    { return f.press, f.pressErr }
func (f *fakeEnv) ReadHumidity() (int32, error)    { return f.hum, nil }

func TestBME280Conversion(t *testing.T) {
	r := newRegistry(t)
	env := &fakeEnv{temp: 23450, hum: 5512, press: 101325000}

	require.NoError(t, NewBME280(env).Update(r))
	assert.InDelta(t, 23.45, r.At(0).Value, 1e-4)
	assert.InDelta(t, 55.12, r.At(1).Value, 1e-4)
	assert.InDelta(t, 1013.25, r.At(2).Value, 1e-3)
}

func TestBME280ReadErrorKeepsPreviousValue(t *testing.T) {
	r := newRegistry(t)
	r.At(2).Value = 1000
	env := &fakeEnv{temp: 20000, hum: 4000, pressErr: errors.New("i2c timeout")}

	err := NewBME280(env).Update(r)
	require.Error(t, err)
	assert.Equal(t, errcode.SensorRead, errcode.Of(err))
	assert.Equal(t, float32(20), r.At(0).Value)
	assert.Equal(t, float32(40), r.At(1).Value)
	assert.Equal(t, float32(1000), r.At(2).Value)
}

func TestBME280Bind(t *testing.T) {
	ch, err := registry.NewChannel("Outside", -40, 60, "C", color.RGBA{})
	require.NoError(t, err)
	r, err := registry.New(ch)
	require.NoError(t, err)

	src := NewBME280(&fakeEnv{temp: -5500})
	require.NoError(t, src.Update(r))
	assert.Equal(t, float32(-40), r.At(0).Value, "unbound channel keeps its value")

	src.Bind("Outside", Temperature)
	require.NoError(t, src.Update(r))
	assert.Equal(t, float32(-5.5), r.At(0).Value)
}
