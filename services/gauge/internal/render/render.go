// Package render draws one complete gauge frame for a channel.
package render

import (
	"image/color"
	"strconv"
	"unicode/utf8"

	"gaugecode-go/errcode"
	"gaugecode-go/services/gauge/internal/geometry"
	"gaugecode-go/services/gauge/internal/registry"
)

// Style holds the colors and text layout around the dial.
type Style struct {
	Background color.RGBA
	Scale      color.RGBA // rim and tick marks
	Label      color.RGBA // channel name
	Range      color.RGBA // min-max line
	HubRadius  int16
	Width      int16 // display width used to centre text
	NameY      int16
	ValueY     int16
	RangeY     int16
	GlyphWidth int16 // estimated advance per character at text size 1
}

var (
	black = color.RGBA{A: 0xFF}
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	cyan  = color.RGBA{G: 0xFF, B: 0xFF, A: 0xFF}
)

// DefaultStyle matches the 240 pixel round panel.
var DefaultStyle = Style{
	Background: black,
	Scale:      white,
	Label:      white,
	Range:      cyan,
	HubRadius:  5,
	Width:      240,
	NameY:      80,
	ValueY:     160,
	RangeY:     220,
	GlyphWidth: 6,
}

const (
	nameSize  = 2
	valueSize = 2
	rangeSize = 1
)

// Renderer draws gauges onto a Surface. Tick positions are computed once.
type Renderer struct {
	s     Surface
	g     geometry.Config
	st    Style
	ticks [][2]geometry.Point
}

func New(s Surface, g geometry.Config, st Style) *Renderer {
	return &Renderer{s: s, g: g, st: st, ticks: g.TickSegments()}
}

// Draw clears the surface and renders ch. The only error is a failed flush
// reported by the display driver.
func (r *Renderer) Draw(ch *registry.Channel) error {
	s, g, c := r.s, r.g, ch.Color()

	s.Clear(r.st.Background)

	// Two concentric outlines give the rim a 2px stroke.
	s.Circle(g.Center, g.Radius, r.st.Scale)
	s.Circle(g.Center, g.Radius-1, r.st.Scale)

	for _, t := range r.ticks {
		s.Line(t[0], t[1], r.st.Scale)
	}

	// Needle: three parallel segments, one pixel apart horizontally.
	_, tip := g.Needle(ch.Value, ch.Min(), ch.Max())
	for _, dx := range [...]int16{0, -1, 1} {
		s.Line(geometry.Point{X: g.Center.X + dx, Y: g.Center.Y}, geometry.Point{X: tip.X + dx, Y: tip.Y}, c)
	}
	s.FillCircle(g.Center, r.st.HubRadius, c)

	r.centred(r.st.NameY, nameSize, ch.Name(), r.st.Label)
	r.centred(r.st.ValueY, valueSize, ValueText(ch), c)
	r.centred(r.st.RangeY, rangeSize, RangeText(ch), r.st.Range)

	return errcode.Wrap(errcode.Display, "render.Draw", s.Flush())
}

func (r *Renderer) centred(y int16, size uint8, text string, c color.RGBA) {
	w := r.textWidth(size, text)
	r.s.Text(geometry.Point{X: (r.st.Width - w) / 2, Y: y}, size, text, c)
}

func (r *Renderer) textWidth(size uint8, text string) int16 {
	if m, ok := r.s.(TextMeasurer); ok {
		return m.TextWidth(size, text)
	}
	return int16(utf8.RuneCountInString(text)) * r.st.GlyphWidth * int16(size)
}

// ValueText formats the current reading, e.g. "23.4 C".
func ValueText(ch *registry.Channel) string {
	return strconv.FormatFloat(float64(ch.Value), 'f', 1, 32) + " " + ch.Unit()
}

// RangeText formats the declared range, e.g. "900 - 1100 hPa".
func RangeText(ch *registry.Channel) string {
	return strconv.FormatFloat(float64(ch.Min()), 'f', 0, 32) + " - " +
		strconv.FormatFloat(float64(ch.Max()), 'f', 0, 32) + " " + ch.Unit()
}
