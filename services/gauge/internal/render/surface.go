package render

import (
	"image/color"

	"gaugecode-go/services/gauge/internal/geometry"
)

// Surface is the display collaborator: the drawing primitives one gauge
// frame needs. Calls do not fail individually; driver errors surface from
// Flush.
type Surface interface {
	Clear(c color.RGBA)
	Circle(center geometry.Point, r int16, c color.RGBA)
	FillCircle(center geometry.Point, r int16, c color.RGBA)
	Line(a, b geometry.Point, c color.RGBA)
	// Text draws s with its top-left corner at at. size is the integer text
	// scale, 1 being the smallest font.
	Text(at geometry.Point, size uint8, s string, c color.RGBA)
	Flush() error
}

// TextMeasurer is implemented by surfaces that know their glyph metrics.
// The renderer centres text with it instead of estimating.
type TextMeasurer interface {
	TextWidth(size uint8, s string) int16
}
