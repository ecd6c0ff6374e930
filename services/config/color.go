package config

import (
	"image/color"

	"gaugecode-go/errcode"
)

// Color is an opaque display color written as "#RRGGBB" in config files.
type Color color.RGBA

// ParseColor parses "#RRGGBB" or "RRGGBB".
func ParseColor(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, errcode.New(errcode.InvalidParams, "config.ParseColor", "want #RRGGBB, got "+s)
	}
	var b [3]uint8
	for i := range b {
		hi, ok1 := nibble(s[2*i])
		lo, ok2 := nibble(s[2*i+1])
		if !ok1 || !ok2 {
			return Color{}, errcode.New(errcode.InvalidParams, "config.ParseColor", "bad hex digit in "+s)
		}
		b[i] = hi<<4 | lo
	}
	return Color{R: b[0], G: b[1], B: b[2], A: 0xFF}, nil
}

// String formats the color as "#RRGGBB".
func (c Color) String() string {
	const digits = "0123456789ABCDEF"
	out := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		out[1+2*i] = digits[v>>4]
		out[2+2*i] = digits[v&0x0F]
	}
	return string(out)
}

func nibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
