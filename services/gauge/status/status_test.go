package status

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reference = []Reading{
	{"Temperature", 23.4, "C"},
	{"Humidity", 55, "%"},
	{"Pressure", 1001.2, "hPa"},
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "Temperature: 23.4C, Humidity: 55.0%, Pressure: 1001.2hPa", Format(reference))
	assert.Equal(t, "", Format(nil))
	assert.Equal(t, "Switched to sensor 2: Pressure", FormatSwitch(2, "Pressure"))
}

func TestParse(t *testing.T) {
	rs, ok := Parse("Info: Temperature: 23.4C, Humidity: 55.0%, Pressure: 1001.2hPa\r\n")
	require.True(t, ok)
	assert.Equal(t, reference, rs)

	rs, ok = Parse("Outside: -3.5C")
	require.True(t, ok)
	assert.Equal(t, []Reading{{"Outside", -3.5, "C"}}, rs)

	rs, ok = Parse("Bus: Voltage: 12.0V")
	require.True(t, ok)
	assert.Equal(t, "Bus: Voltage", rs[0].Name)

	rs, ok = Parse("Sensor: NaNC")
	require.True(t, ok)
	assert.True(t, math.IsNaN(float64(rs[0].Value)))
	assert.Equal(t, "C", rs[0].Unit)
}

func TestParseRejectsOtherLines(t *testing.T) {
	for _, line := range []string{
		"",
		"Info: Multi-Sensor Display Starting...",
		"Info: Switched to sensor 1: Humidity",
		"Info: Cycling through: Temperature -> Humidity",
		"Temperature: abcC",
		"Info: CS: 17, DC: 20, RST: 21, BL: 22",
		"Info: MOSI: 19, SCLK: 18, MISO: 16",
	} {
		_, ok := Parse(line)
		assert.False(t, ok, line)
	}
}

func TestParseSwitch(t *testing.T) {
	i, name, ok := ParseSwitch("Info: Switched to sensor 1: Humidity\r\n")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, "Humidity", name)

	_, _, ok = ParseSwitch("Info: Temperature: 23.4C")
	assert.False(t, ok)
	_, _, ok = ParseSwitch("Switched to sensor x: A")
	assert.False(t, ok)
}

func TestFormatParseAgree(t *testing.T) {
	rs, ok := Parse(Format(reference))
	require.True(t, ok)
	assert.Equal(t, reference, rs)
}
