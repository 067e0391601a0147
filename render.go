package starrating

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// Palette holds the fill colours of a rendered control. Theming is left to
// the host; DefaultPalette matches the classic yellow-on-gray look.
type Palette struct {
	Full       gg.RGBA
	Empty      gg.RGBA
	Background gg.RGBA
}

// DefaultPalette returns yellow filled stars, gray empty stars and a
// transparent background.
func DefaultPalette() Palette {
	return Palette{
		Full:       gg.RGB(1, 0.8, 0),
		Empty:      gg.RGB(0.56, 0.56, 0.58),
		Background: gg.Transparent,
	}
}

// Fill is one polygon of a rendered control with its colour.
type Fill struct {
	Slot    int
	State   SlotState
	Outline Polygon
	Color   gg.RGBA
}

// Scene returns the polygons that make up the control drawn into box, in
// paint order. A half star yields two fills: the whole star in the empty
// colour, then its leading half in the full colour. Degenerate outlines
// are left out.
func Scene(box Rect, c *Controller, p Palette) []Fill {
	cfg := c.Config()
	leading := SideLeft
	if cfg.Direction == RightToLeft {
		leading = SideRight
	}

	fills := make([]Fill, 0, SlotCount+1)
	for i, slot := range Layout(box, cfg) {
		outline := cfg.Shape.Outline(slot)
		if outline.Area() == 0 {
			continue
		}
		state := c.Classify(i)
		switch state {
		case SlotFull:
			fills = append(fills, Fill{Slot: i, State: state, Outline: outline, Color: p.Full})
		case SlotHalf:
			half := outline.ClipHalfPlane(slot.Center().X, leading)
			fills = append(fills,
				Fill{Slot: i, State: state, Outline: outline, Color: p.Empty},
				Fill{Slot: i, State: state, Outline: half, Color: p.Full},
			)
		default:
			fills = append(fills, Fill{Slot: i, State: state, Outline: outline, Color: p.Empty})
		}
	}
	return fills
}

// Render draws the control into box on dc.
func Render(dc *gg.Context, box Rect, c *Controller, p Palette) error {
	fills := Scene(box, c, p)
	Logger().Debug("starrating: render",
		"rating", c.Rating().Float64(),
		"fills", len(fills),
		"width", box.Width,
		"height", box.Height,
	)
	for _, f := range fills {
		if err := fillPolygon(dc, f.Outline, f.Color); err != nil {
			return fmt.Errorf("starrating: fill slot %d: %w", f.Slot, err)
		}
	}
	return nil
}

// RenderImage draws the control into a new width x height image. The row is
// fitted to a 5:1 box centered in the image.
func RenderImage(width, height int, c *Controller, p Palette) (image.Image, error) {
	dc := gg.NewContext(width, height)
	defer func() { _ = dc.Close() }()

	dc.ClearWithColor(p.Background)
	box := FitAspect(R(0, 0, float64(width), float64(height)))
	if err := Render(dc, box, c, p); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func fillPolygon(dc *gg.Context, poly Polygon, col gg.RGBA) error {
	if len(poly) < 3 {
		return nil
	}
	dc.SetRGBA(col.R, col.G, col.B, col.A)
	dc.MoveTo(poly[0].X, poly[0].Y)
	for _, pt := range poly[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	dc.ClosePath()
	return dc.Fill()
}
