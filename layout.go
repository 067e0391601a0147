package starrating

import "math"

// AspectRatio is the recommended width:height ratio of the control.
const AspectRatio = SlotCount

// FitAspect returns the largest rectangle with a 5:1 aspect ratio that fits
// in box, centered in it.
func FitAspect(box Rect) Rect {
	if box.Empty() {
		return Rect{X: box.X, Y: box.Y}
	}
	w, h := box.Width, box.Height
	if w/h > AspectRatio {
		w = h * AspectRatio
	} else {
		h = w / AspectRatio
	}
	return Rect{
		X:      box.X + (box.Width-w)/2,
		Y:      box.Y + (box.Height-h)/2,
		Width:  w,
		Height: h,
	}
}

// Layout splits box into SlotCount slots separated by cfg.Spacing. Every
// slot spans the full box height. The result is indexed by slot, so with
// RightToLeft slot 0 is the rightmost rectangle.
func Layout(box Rect, cfg Config) [SlotCount]Rect {
	slotW := math.Max(0, (box.Width-cfg.Spacing*(SlotCount-1))/SlotCount)
	var slots [SlotCount]Rect
	for i := range slots {
		pos := i
		if cfg.Direction == RightToLeft {
			pos = SlotCount - 1 - i
		}
		slots[i] = Rect{
			X:      box.X + float64(pos)*(slotW+cfg.Spacing),
			Y:      box.Y,
			Width:  slotW,
			Height: box.Height,
		}
	}
	return slots
}

// SlotAt resolves a tap at offset x from the left edge of box to a slot
// index. It returns false when x falls into a gap or outside the row.
func SlotAt(box Rect, cfg Config, x float64) (int, bool) {
	ax := box.X + x
	for i, r := range Layout(box, cfg) {
		if r.Width > 0 && ax >= r.X && ax <= r.MaxX() {
			return i, true
		}
	}
	return 0, false
}
