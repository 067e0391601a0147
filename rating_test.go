package starrating

import (
	"math"
	"testing"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		in   float64
		want Rating
	}{
		{0, 0},
		{1.24, 1},
		{1.25, 1.5},
		{1.26, 1.5},
		{1.74, 1.5},
		{1.75, 2},
		{2.5, 2.5},
		{4.9, 5},
		{5, 5},
		{7.3, 5},
		{-0.2, 0},
		{-3, 0},
		{math.Inf(1), 5},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := Quantize(tt.in); got != tt.want {
			t.Errorf("Quantize(%g) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestQuantize_HalfStepInvariant(t *testing.T) {
	for v := -1.0; v <= 6; v += 0.01 {
		r := float64(Quantize(v))
		if r < 0 || r > 5 {
			t.Fatalf("Quantize(%g) = %g out of range", v, r)
		}
		if math.Round(r*2)/2 != r {
			t.Fatalf("Quantize(%g) = %g is not a half step", v, r)
		}
	}
}

func TestClassify(t *testing.T) {
	const (
		E = SlotEmpty
		H = SlotHalf
		F = SlotFull
	)
	tests := []struct {
		rating Rating
		want   [SlotCount]SlotState
	}{
		{0, [SlotCount]SlotState{E, E, E, E, E}},
		{0.5, [SlotCount]SlotState{H, E, E, E, E}},
		{1, [SlotCount]SlotState{F, E, E, E, E}},
		{2.5, [SlotCount]SlotState{F, F, H, E, E}},
		{3, [SlotCount]SlotState{F, F, F, E, E}},
		{4.5, [SlotCount]SlotState{F, F, F, F, H}},
		{5, [SlotCount]SlotState{F, F, F, F, F}},
	}
	for _, tt := range tests {
		if got := Classify(tt.rating); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.rating, got, tt.want)
		}
	}
}

func TestClassify_Coverage(t *testing.T) {
	for step := 0; step <= 10; step++ {
		r := Rating(float64(step) / 2)
		states := Classify(r)
		filled := int(math.Ceil(float64(r)))
		halves := 0
		for i, st := range states {
			if st == SlotHalf {
				halves++
			}
			covered := st == SlotFull || st == SlotHalf
			if covered != (i < filled) {
				t.Errorf("rating %v: slot %d = %v, want covered=%v", r, i, st, i < filled)
			}
		}
		wantHalves := 0
		if step%2 == 1 {
			wantHalves = 1
		}
		if halves != wantHalves {
			t.Errorf("rating %v: %d half slots, want %d", r, halves, wantHalves)
		}
	}
}

func TestSlotState_String(t *testing.T) {
	tests := map[SlotState]string{
		SlotEmpty:    "empty",
		SlotHalf:     "half",
		SlotFull:     "full",
		SlotState(7): "SlotState(7)",
	}
	for st, want := range tests {
		if got := st.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestFormatStates(t *testing.T) {
	if got, want := FormatStates(Classify(2.5)), "★★⯪☆☆"; got != want {
		t.Errorf("FormatStates(2.5) = %q, want %q", got, want)
	}
}

func TestRating_String(t *testing.T) {
	if got := Rating(2.5).String(); got != "2.5" {
		t.Errorf("String() = %q, want 2.5", got)
	}
	if got := Rating(3).String(); got != "3.0" {
		t.Errorf("String() = %q, want 3.0", got)
	}
}
