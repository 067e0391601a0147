package starrating

import (
	"fmt"
	"math"
)

// Direction is the reading order of the star row.
type Direction int

const (
	// LeftToRight places slot 0 at the left edge.
	LeftToRight Direction = iota
	// RightToLeft places slot 0 at the right edge and mirrors pointer input
	// and the half-star boundary.
	RightToLeft
)

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// ParseDirection parses "ltr" or "rtl". The empty string means LeftToRight.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "ltr":
		return LeftToRight, nil
	case "rtl":
		return RightToLeft, nil
	default:
		return LeftToRight, fmt.Errorf("starrating: unknown direction %q", s)
	}
}

// DefaultSpacing is the gap between star slots in layout units.
const DefaultSpacing = 5

// Config is the fixed configuration of one control instance.
type Config struct {
	// Spacing is the gap between adjacent slots.
	Spacing float64
	// Shape is the star drawn in every slot.
	Shape StarShape
	// Direction is the slot order.
	Direction Direction
}

// DefaultConfig returns spacing 5, a five-pointed star with inner ratio 0.5
// and left-to-right order.
func DefaultConfig() Config {
	return Config{
		Spacing:   DefaultSpacing,
		Shape:     DefaultStarShape(),
		Direction: LeftToRight,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Spacing < 0 || math.IsNaN(c.Spacing) || math.IsInf(c.Spacing, 0) {
		return fmt.Errorf("%w: got %g", ErrSpacing, c.Spacing)
	}
	return c.Shape.Validate()
}

// Option configures a Controller during creation.
//
// Example:
//
//	c, err := starrating.New(onChange,
//	    starrating.WithRating(4),
//	    starrating.WithSpacing(10),
//	)
type Option func(*options)

// options holds optional configuration for Controller creation.
type options struct {
	rating Rating
	config Config
}

// defaultOptions returns the default controller options.
func defaultOptions() options {
	return options{
		rating: DefaultRating,
		config: DefaultConfig(),
	}
}

// WithRating sets the initial rating. The value is quantized to a half star.
func WithRating(r float64) Option {
	return func(o *options) {
		o.rating = Quantize(r)
	}
}

// WithSpacing sets the gap between star slots.
func WithSpacing(spacing float64) Option {
	return func(o *options) {
		o.config.Spacing = spacing
	}
}

// WithInnerRadiusRatio sets how spiky the stars are. Must be in (0, 1].
func WithInnerRadiusRatio(ratio float64) Option {
	return func(o *options) {
		o.config.Shape.InnerRatio = ratio
	}
}

// WithPointCount sets the number of spikes per star. The rating semantics
// always use five slots; this only changes the drawn shape.
func WithPointCount(n int) Option {
	return func(o *options) {
		o.config.Shape.Points = n
	}
}

// WithDirection sets the slot order.
func WithDirection(d Direction) Option {
	return func(o *options) {
		o.config.Direction = d
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}
