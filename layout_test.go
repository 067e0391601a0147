package starrating

import "testing"

func TestFitAspect(t *testing.T) {
	tests := []struct {
		name string
		box  Rect
		want Rect
	}{
		{"exact", R(0, 0, 500, 100), R(0, 0, 500, 100)},
		{"too tall", R(0, 0, 500, 300), R(0, 100, 500, 100)},
		{"too wide", R(10, 0, 700, 100), R(110, 0, 500, 100)},
		{"empty", R(3, 4, 0, 100), R(3, 4, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitAspect(tt.box); got != tt.want {
				t.Errorf("FitAspect(%+v) = %+v, want %+v", tt.box, got, tt.want)
			}
		})
	}
}

func TestLayout(t *testing.T) {
	cfg := DefaultConfig()
	slots := Layout(R(0, 0, 520, 100), cfg)
	for i, r := range slots {
		want := R(float64(i)*105, 0, 100, 100)
		if r != want {
			t.Errorf("slot %d = %+v, want %+v", i, r, want)
		}
	}
}

func TestLayout_RightToLeft(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Direction = RightToLeft
	slots := Layout(R(0, 0, 520, 100), cfg)
	if slots[0].X != 420 {
		t.Errorf("slot 0 X = %g, want 420", slots[0].X)
	}
	if slots[4].X != 0 {
		t.Errorf("slot 4 X = %g, want 0", slots[4].X)
	}
}

func TestLayout_SpacingWiderThanBox(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spacing = 50
	for i, r := range Layout(R(0, 0, 100, 20), cfg) {
		if r.Width != 0 {
			t.Errorf("slot %d width = %g, want 0", i, r.Width)
		}
	}
}

func TestSlotAt(t *testing.T) {
	box := R(50, 0, 520, 100)
	cfg := DefaultConfig()
	tests := []struct {
		x    float64
		slot int
		ok   bool
	}{
		{0, 0, true},
		{99, 0, true},
		{102, 0, false}, // gap
		{106, 1, true},
		{519, 4, true},
		{530, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		slot, ok := SlotAt(box, cfg, tt.x)
		if slot != tt.slot || ok != tt.ok {
			t.Errorf("SlotAt(%g) = (%d, %v), want (%d, %v)", tt.x, slot, ok, tt.slot, tt.ok)
		}
	}

	cfg.Direction = RightToLeft
	if slot, ok := SlotAt(box, cfg, 10); !ok || slot != 4 {
		t.Errorf("RTL SlotAt(10) = (%d, %v), want (4, true)", slot, ok)
	}
}
