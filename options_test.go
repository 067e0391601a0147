package starrating

import (
	"errors"
	"math"
	"testing"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"", LeftToRight, false},
		{"ltr", LeftToRight, false},
		{"rtl", RightToLeft, false},
		{"up", LeftToRight, true},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestDirection_String(t *testing.T) {
	if LeftToRight.String() != "ltr" || RightToLeft.String() != "rtl" {
		t.Errorf("String() = %q, %q", LeftToRight, RightToLeft)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	for _, spacing := range []float64{-0.5, math.NaN(), math.Inf(1)} {
		cfg.Spacing = spacing
		if err := cfg.Validate(); !errors.Is(err, ErrSpacing) {
			t.Errorf("spacing %g: Validate() = %v, want ErrSpacing", spacing, err)
		}
	}
}

func TestWithConfig(t *testing.T) {
	cfg := Config{Spacing: 2, Shape: StarShape{Points: 4, InnerRatio: 1}, Direction: RightToLeft}
	c, _ := newTestController(t, WithConfig(cfg))
	if c.Config() != cfg {
		t.Errorf("Config() = %+v, want %+v", c.Config(), cfg)
	}
}
