package starrating

import (
	"fmt"
	"math"
)

// Star shape defaults.
const (
	DefaultPointCount       = 5
	DefaultInnerRadiusRatio = 0.5
)

// StarShape describes a symmetric star polygon.
//
// Points is the number of spikes. InnerRatio is the inner radius divided by
// the outer radius: 1 gives a regular 2*Points-gon, values near 0 give thin
// spikes.
type StarShape struct {
	Points     int
	InnerRatio float64
}

// DefaultStarShape returns a five-pointed star with inner ratio 0.5.
func DefaultStarShape() StarShape {
	return StarShape{Points: DefaultPointCount, InnerRatio: DefaultInnerRadiusRatio}
}

// Validate checks the shape parameters.
func (s StarShape) Validate() error {
	if s.Points < 2 {
		return fmt.Errorf("%w: got %d", ErrPointCount, s.Points)
	}
	if math.IsNaN(s.InnerRatio) || s.InnerRatio <= 0 || s.InnerRatio > 1 {
		return fmt.Errorf("%w: got %g", ErrInnerRatio, s.InnerRatio)
	}
	return nil
}

// Outline returns the star centered in box. The outline has 2*Points
// vertices, alternating outer and inner radius, starting at the top and
// proceeding clockwise on screen.
//
// The outer radius is half of the shorter box side, so a zero-sized box
// yields a zero-area outline. Outline returns nil when Points < 1.
func (s StarShape) Outline(box Rect) Polygon {
	if s.Points < 1 {
		return nil
	}
	n := 2 * s.Points
	outer := box.MinSide() / 2
	inner := outer * s.InnerRatio
	center := box.Center()

	start := -math.Pi / 2
	step := math.Pi / float64(s.Points)

	poly := make(Polygon, n)
	for i := range n {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		poly[i] = polar(center, r, start+float64(i)*step)
	}
	return poly
}

// GenerateStar returns the outline of a pointCount-pointed star centered in
// box. Parameters are not validated; see StarShape.Validate. A pointCount
// below 1 yields nil.
func GenerateStar(box Rect, pointCount int, innerRadiusRatio float64) Polygon {
	return StarShape{Points: pointCount, InnerRatio: innerRadiusRatio}.Outline(box)
}

// Design box of the fixed outline.
const (
	fixedOutlineWidth  = 88.29
	fixedOutlineHeight = 80.5
)

// fixedOutline is a five-pointed star drawn in an 88.29 x 80.5 box.
var fixedOutline = [10]Point{
	{44.15, 0.00},
	{54.57, 30.75},
	{88.29, 30.75},
	{61.01, 49.75},
	{71.43, 80.50},
	{44.15, 61.50},
	{16.86, 80.50},
	{27.28, 49.75},
	{0.00, 30.75},
	{33.72, 30.75},
}

// FixedStarOutline returns a hard-coded five-pointed star scaled uniformly
// to fit box and centered in it. It is an alternative to StarShape.Outline
// for callers that only ever draw classic five-pointed stars.
func FixedStarOutline(box Rect) Polygon {
	scale := math.Min(box.Width/fixedOutlineWidth, box.Height/fixedOutlineHeight)
	if scale < 0 {
		scale = 0
	}
	offset := Point{
		X: box.X + (box.Width-fixedOutlineWidth*scale)/2,
		Y: box.Y + (box.Height-fixedOutlineHeight*scale)/2,
	}
	poly := make(Polygon, len(fixedOutline))
	for i, pt := range fixedOutline {
		poly[i] = pt.Mul(scale).Add(offset)
	}
	return poly
}
