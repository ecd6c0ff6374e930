package source

import (
	"strings"

	"gaugecode-go/errcode"
	"gaugecode-go/services/gauge/internal/registry"
)

// Environment is the reading side of tinygo.org/x/drivers/bme280.Device.
type Environment interface {
	ReadTemperature() (int32, error) // milli-degrees Celsius
	ReadPressure() (int32, error)    // milli-pascal
	ReadHumidity() (int32, error)    // hundredths of a percent
}

// Quantity is one measurement an Environment sensor provides.
type Quantity uint8

const (
	None Quantity = iota
	Temperature
	Humidity
	Pressure
)

// BME280 reads channels from a combined temperature/humidity/pressure sensor.
// Channels are bound to quantities by name unless Bind overrides it.
type BME280 struct {
	dev   Environment
	binds map[string]Quantity
}

func NewBME280(dev Environment) *BME280 {
	return &BME280{dev: dev, binds: map[string]Quantity{}}
}

// Bind maps the named channel to q. None leaves the channel untouched.
func (s *BME280) Bind(channel string, q Quantity) { s.binds[channel] = q }

func (s *BME280) quantity(name string) Quantity {
	if q, ok := s.binds[name]; ok {
		return q
	}
	n := strings.ToLower(name)
	switch {
	case strings.HasPrefix(n, "temp"):
		return Temperature
	case strings.HasPrefix(n, "hum"):
		return Humidity
	case strings.HasPrefix(n, "press"):
		return Pressure
	}
	return None
}

// Update reads each bound channel. On a failed read the channel keeps its
// previous value, the remaining channels are still read, and the first error
// is returned.
func (s *BME280) Update(r *registry.Registry) error {
	var first error
	r.Each(func(_ int, ch *registry.Channel) {
		v, err := s.read(s.quantity(ch.Name()))
		switch {
		case err != nil:
			if first == nil {
				first = errcode.Wrap(errcode.SensorRead, "source.BME280 "+ch.Name(), err)
			}
		case v != nil:
			ch.Value = *v
		}
	})
	return first
}

func (s *BME280) read(q Quantity) (*float32, error) {
	var (
		raw   int32
		err   error
		scale float32
	)
	switch q {
	case Temperature:
		raw, err = s.dev.ReadTemperature()
		scale = 1000
	case Humidity:
		raw, err = s.dev.ReadHumidity()
		scale = 100
	case Pressure:
		raw, err = s.dev.ReadPressure()
		scale = 100000 // mPa -> hPa
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	v := float32(raw) / scale
	return &v, nil
}
