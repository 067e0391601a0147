package starrating

import "testing"

func TestPolygon_Area(t *testing.T) {
	square := Polygon{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	if got := square.Area(); got != 100 {
		t.Errorf("Area() = %g, want 100", got)
	}
	// Winding does not change the sign.
	rev := Polygon{Pt(0, 10), Pt(10, 10), Pt(10, 0), Pt(0, 0)}
	if got := rev.Area(); got != 100 {
		t.Errorf("reversed Area() = %g, want 100", got)
	}
	if got := (Polygon{Pt(0, 0), Pt(1, 1)}).Area(); got != 0 {
		t.Errorf("two-point Area() = %g, want 0", got)
	}
}

func TestPolygon_Bounds(t *testing.T) {
	p := Polygon{Pt(3, -1), Pt(7, 4), Pt(-2, 2)}
	want := Rect{X: -2, Y: -1, Width: 9, Height: 5}
	if got := p.Bounds(); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	if got := Polygon(nil).Bounds(); got != (Rect{}) {
		t.Errorf("empty Bounds() = %+v, want zero", got)
	}
}

func TestPolygon_Translate(t *testing.T) {
	p := Polygon{Pt(0, 0), Pt(1, 2)}
	got := p.Translate(Pt(10, 20))
	if got[0] != Pt(10, 20) || got[1] != Pt(11, 22) {
		t.Errorf("Translate() = %v", got)
	}
	if p[0] != Pt(0, 0) {
		t.Error("Translate() modified the receiver")
	}
}

func TestPolygon_ClipHalfPlane(t *testing.T) {
	square := Polygon{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}

	tests := []struct {
		name string
		x    float64
		keep Side
		area float64
		minX float64
		maxX float64
	}{
		{"left half", 5, SideLeft, 50, 0, 5},
		{"right half", 5, SideRight, 50, 5, 10},
		{"left quarter", 2.5, SideLeft, 25, 0, 2.5},
		{"everything", 20, SideLeft, 100, 0, 10},
		{"nothing", -1, SideLeft, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := square.ClipHalfPlane(tt.x, tt.keep)
			if a := got.Area(); !near(a, tt.area) {
				t.Errorf("Area() = %g, want %g", a, tt.area)
			}
			if tt.area == 0 {
				return
			}
			b := got.Bounds()
			if !near(b.X, tt.minX) || !near(b.MaxX(), tt.maxX) {
				t.Errorf("Bounds() x range = [%g, %g], want [%g, %g]", b.X, b.MaxX(), tt.minX, tt.maxX)
			}
		})
	}
}

func TestPolygon_ClipHalfPlaneStar(t *testing.T) {
	box := R(0, 0, 100, 100)
	star := GenerateStar(box, 5, 0.5)
	cx := box.Center().X

	left := star.ClipHalfPlane(cx, SideLeft)
	right := star.ClipHalfPlane(cx, SideRight)

	// The star is mirror-symmetric, so both halves carry half the area.
	if !near(left.Area(), star.Area()/2) {
		t.Errorf("left Area() = %g, want %g", left.Area(), star.Area()/2)
	}
	if !near(right.Area(), star.Area()/2) {
		t.Errorf("right Area() = %g, want %g", right.Area(), star.Area()/2)
	}
	for _, pt := range left {
		if pt.X > cx+eps {
			t.Errorf("left half has vertex %v right of %g", pt, cx)
		}
	}
}

func TestSide_String(t *testing.T) {
	if SideLeft.String() != "left" || SideRight.String() != "right" || Side(9).String() != "unknown" {
		t.Error("unexpected Side.String() result")
	}
}
