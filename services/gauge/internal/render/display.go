package render

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"

	"gaugecode-go/services/gauge/internal/geometry"
)

// DisplaySurface draws onto any tinygo display driver.
type DisplaySurface struct {
	d     drivers.Displayer
	small tinyfont.Fonter
	large tinyfont.Fonter
}

var _ TextMeasurer = (*DisplaySurface)(nil)

func NewDisplaySurface(d drivers.Displayer) *DisplaySurface {
	return &DisplaySurface{
		d:     d,
		small: &proggy.TinySZ8pt7b,
		large: &freemono.Bold9pt7b,
	}
}

type screenFiller interface{ FillScreen(c color.RGBA) }

func (s *DisplaySurface) Clear(c color.RGBA) {
	if f, ok := s.d.(screenFiller); ok {
		f.FillScreen(c)
		return
	}
	w, h := s.d.Size()
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			s.d.SetPixel(x, y, c)
		}
	}
}

func (s *DisplaySurface) Circle(p geometry.Point, r int16, c color.RGBA) {
	tinydraw.Circle(s.d, p.X, p.Y, r, c)
}

func (s *DisplaySurface) FillCircle(p geometry.Point, r int16, c color.RGBA) {
	tinydraw.FilledCircle(s.d, p.X, p.Y, r, c)
}

func (s *DisplaySurface) Line(a, b geometry.Point, c color.RGBA) {
	tinydraw.Line(s.d, a.X, a.Y, b.X, b.Y, c)
}

// Text converts the top-left anchor to tinyfont's baseline anchor using the
// font's line advance as the ascent estimate.
func (s *DisplaySurface) Text(at geometry.Point, size uint8, str string, c color.RGBA) {
	f := s.font(size)
	tinyfont.WriteLine(s.d, f, at.X, at.Y+int16(f.GetYAdvance())*3/4, str, c)
}

func (s *DisplaySurface) TextWidth(size uint8, str string) int16 {
	_, outbox := tinyfont.LineWidth(s.font(size), str)
	return int16(outbox)
}

func (s *DisplaySurface) Flush() error { return s.d.Display() }

func (s *DisplaySurface) font(size uint8) tinyfont.Fonter {
	if size <= 1 {
		return s.small
	}
	return s.large
}
