package starrating

import "math"

// Side selects one side of a vertical line.
type Side int

const (
	// SideLeft keeps points with X <= line.
	SideLeft Side = iota
	// SideRight keeps points with X >= line.
	SideRight
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Polygon is a closed outline. The last vertex connects back to the first;
// the closing vertex is not repeated.
type Polygon []Point

// Len returns the number of vertices, which equals the number of edges.
func (p Polygon) Len() int {
	return len(p)
}

// Edge returns the i-th edge. Edge Len()-1 is the closing edge from the last
// vertex back to vertex 0.
func (p Polygon) Edge(i int) (from, to Point) {
	return p[i], p[(i+1)%len(p)]
}

// Bounds returns the axis-aligned bounding box. An empty polygon yields a
// zero Rect.
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	minX, minY := p[0].X, p[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Area returns the absolute enclosed area using the shoelace formula.
func (p Polygon) Area() float64 {
	if len(p) < 3 {
		return 0
	}
	var sum float64
	for i := range p {
		a, b := p.Edge(i)
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

// Translate returns a copy of the polygon moved by d.
func (p Polygon) Translate(d Point) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = pt.Add(d)
	}
	return out
}

// ClipHalfPlane clips the polygon against the vertical line X = x and keeps
// the part on the given side (Sutherland-Hodgman). The result may contain
// collinear vertices along the cut; filling it still yields the right shape.
func (p Polygon) ClipHalfPlane(x float64, keep Side) Polygon {
	if len(p) == 0 {
		return nil
	}
	inside := func(pt Point) bool {
		if keep == SideLeft {
			return pt.X <= x
		}
		return pt.X >= x
	}
	cross := func(a, b Point) Point {
		return a.Lerp(b, (x-a.X)/(b.X-a.X))
	}

	out := make(Polygon, 0, len(p)+2)
	prev := p[len(p)-1]
	for _, cur := range p {
		switch {
		case inside(cur):
			if !inside(prev) {
				out = append(out, cross(prev, cur))
			}
			out = append(out, cur)
		case inside(prev):
			out = append(out, cross(prev, cur))
		}
		prev = cur
	}
	return out
}
