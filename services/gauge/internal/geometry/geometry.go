// Package geometry maps channel values onto dial angles and pixel
// coordinates. Angles are in degrees, measured the way the display's
// y-down coordinate system sees them: 0 points right, positive angles turn
// clockwise on screen. Everything here is pure.
package geometry

import (
	"github.com/chewxy/math32"

	"gaugecode-go/x/mathx"
)

// Point is a display pixel coordinate.
type Point struct{ X, Y int16 }

// Config is the dial layout for one rendering session.
type Config struct {
	Center       Point
	Radius       int16
	NeedleLength int16
	ArcStart     float32 // angle of the range minimum
	ArcSpan      float32 // sweep from minimum to maximum, decreasing angle
	Ticks        int     // scale marks including both ends
	TickOuter    int16   // inset of each mark's outer end from the rim
	TickInner    int16   // inset of each mark's inner end from the rim
}

// Default is the 240x240 round panel layout.
var Default = Config{
	Center:       Point{120, 120},
	Radius:       100,
	NeedleLength: 80,
	ArcStart:     225,
	ArcSpan:      270,
	Ticks:        11,
	TickOuter:    10,
	TickInner:    20,
}

// TickAngle is the angle of mark i of tickCount, spread evenly over the arc.
func TickAngle(i, tickCount int, arcStart, arcSpan float32) float32 {
	return arcStart - float32(i)*(arcSpan/float32(tickCount-1))
}

// TickSegment returns the outer and inner end of a scale mark at angleDeg.
func TickSegment(angleDeg float32, radius, outerOffset, innerOffset int16, center Point) (Point, Point) {
	return Project(angleDeg, float32(radius-outerOffset), center),
		Project(angleDeg, float32(radius-innerOffset), center)
}

// ValueToPercentage maps value onto [0,1]. Readings outside the range
// saturate; NaN maps to 0.
func ValueToPercentage(value, minVal, maxVal float32) float32 {
	return mathx.Unit(value, minVal, maxVal)
}

// NeedleAngle is linear in percentage: arcStart at 0, arcStart-arcSpan at 1.
func NeedleAngle(percentage, arcStart, arcSpan float32) float32 {
	return mathx.Lerp(arcStart, arcStart-arcSpan, percentage)
}

// NeedleTip is the needle's far end for a needle of length at angleDeg.
func NeedleTip(angleDeg float32, length int16, center Point) Point {
	return Project(angleDeg, float32(length), center)
}

// Project returns center + r*(cos, sin) of angleDeg, rounded to the nearest
// pixel so the cardinal angles land exactly on the axes.
func Project(angleDeg, r float32, center Point) Point {
	rad := angleDeg * math32.Pi / 180
	return Point{
		X: pixel(float32(center.X) + r*math32.Cos(rad)),
		Y: pixel(float32(center.Y) + r*math32.Sin(rad)),
	}
}

func pixel(v float32) int16 { return int16(math32.Floor(v + 0.5)) }

// TickSegments returns every scale mark of c as (outer, inner) segments.
func (c Config) TickSegments() [][2]Point {
	out := make([][2]Point, c.Ticks)
	for i := range out {
		a := TickAngle(i, c.Ticks, c.ArcStart, c.ArcSpan)
		p1, p2 := TickSegment(a, c.Radius, c.TickOuter, c.TickInner, c.Center)
		out[i] = [2]Point{p1, p2}
	}
	return out
}

// Needle returns the needle angle and tip for a value in [minVal,maxVal].
func (c Config) Needle(value, minVal, maxVal float32) (float32, Point) {
	a := NeedleAngle(ValueToPercentage(value, minVal, maxVal), c.ArcStart, c.ArcSpan)
	return a, NeedleTip(a, c.NeedleLength, c.Center)
}
