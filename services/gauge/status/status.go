// Package status defines the diagnostic lines the gauge loop writes to its
// log and parses them back on the host side.
//
//	Temperature: 23.4C, Humidity: 55.0%, Pressure: 1001.2hPa
//	Switched to sensor 1: Humidity
package status

import (
	"strconv"
	"strings"
)

// Reading is one channel's entry in a summary line.
type Reading struct {
	Name  string
	Value float32
	Unit  string
}

const switchPrefix = "Switched to sensor "

// Format renders a summary line, one "Name: value unit" entry per reading
// with the value at one decimal.
func Format(rs []Reading) string {
	var b strings.Builder
	for i, r := range rs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(r.Name)
		b.WriteString(": ")
		b.WriteString(strconv.FormatFloat(float64(r.Value), 'f', 1, 32))
		b.WriteString(r.Unit)
	}
	return b.String()
}

// FormatSwitch renders the line logged when the active channel changes.
func FormatSwitch(index int, name string) string {
	return switchPrefix + strconv.Itoa(index) + ": " + name
}

// trimLevel drops a leading "Info: " style logger prefix and line endings.
func trimLevel(line string) string {
	line = strings.TrimRight(line, "\r\n")
	for _, p := range [...]string{"Debug: ", "Info: ", "Warn: ", "Error: "} {
		if strings.HasPrefix(line, p) {
			return line[len(p):]
		}
	}
	return line
}

// Parse reads a summary line. ok is false for any other line, including
// lines whose entries all lack a unit.
func Parse(line string) (rs []Reading, ok bool) {
	line = trimLevel(line)
	if line == "" || strings.HasPrefix(line, switchPrefix) {
		return nil, false
	}
	hasUnit := false
	for _, part := range strings.Split(line, ", ") {
		i := strings.LastIndex(part, ": ")
		if i <= 0 {
			return nil, false
		}
		v, unit, ok := splitNumber(part[i+2:])
		if !ok {
			return nil, false
		}
		rs = append(rs, Reading{Name: part[:i], Value: v, Unit: unit})
		hasUnit = hasUnit || unit != ""
	}
	// Bare numbers such as the pin table ("CS: 17, DC: 20") are not readings.
	if !hasUnit {
		return nil, false
	}
	return rs, true
}

// ParseSwitch reads a channel switch line.
func ParseSwitch(line string) (index int, name string, ok bool) {
	line = trimLevel(line)
	if !strings.HasPrefix(line, switchPrefix) {
		return 0, "", false
	}
	rest := line[len(switchPrefix):]
	i := strings.Index(rest, ": ")
	if i <= 0 {
		return 0, "", false
	}
	n, err := strconv.Atoi(rest[:i])
	if err != nil || n < 0 {
		return 0, "", false
	}
	return n, rest[i+2:], true
}

// splitNumber splits "1001.2hPa" into 1001.2 and "hPa".
func splitNumber(s string) (float32, string, bool) {
	for _, special := range [...]string{"NaN", "+Inf", "-Inf"} {
		if strings.HasPrefix(s, special) {
			v, _ := strconv.ParseFloat(special, 32)
			return float32(v), s[len(special):], true
		}
	}
	end := 0
	for end < len(s) && (s[end] == '-' && end == 0 || s[end] == '.' || '0' <= s[end] && s[end] <= '9') {
		end++
	}
	v, err := strconv.ParseFloat(s[:end], 32)
	if err != nil {
		return 0, "", false
	}
	return float32(v), s[end:], true
}
