package starrating

import (
	"fmt"
	"math"
	"strings"
)

// Rating limits.
const (
	// SlotCount is the number of stars in the control.
	SlotCount = 5

	// MaxRating is the highest rating value.
	MaxRating Rating = SlotCount

	// DefaultRating is the rating a control starts with.
	DefaultRating Rating = 2.5
)

// Rating is a control value in [0, 5], always a multiple of 0.5.
type Rating float64

// Quantize clamps v to [0, 5] and rounds it to the nearest half star.
// Halves round away from zero, so 1.25 becomes 1.5. NaN maps to 0.
func Quantize(v float64) Rating {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Max(0, math.Min(v, float64(MaxRating)))
	return Rating(math.Round(v*2) / 2)
}

// Float64 returns the rating as a float64.
func (r Rating) Float64() float64 {
	return float64(r)
}

// String formats the rating with one decimal place.
func (r Rating) String() string {
	return fmt.Sprintf("%.1f", float64(r))
}

// SlotState is the visual state of one star slot.
type SlotState int

const (
	// SlotEmpty is an unfilled star.
	SlotEmpty SlotState = iota
	// SlotHalf is a star with its leading half filled.
	SlotHalf
	// SlotFull is a filled star.
	SlotFull
)

// String returns the state name.
func (s SlotState) String() string {
	switch s {
	case SlotEmpty:
		return "empty"
	case SlotHalf:
		return "half"
	case SlotFull:
		return "full"
	default:
		return fmt.Sprintf("SlotState(%d)", int(s))
	}
}

// Symbol returns a one-rune picture of the state, for terminals and logs.
func (s SlotState) Symbol() string {
	switch s {
	case SlotFull:
		return "★"
	case SlotHalf:
		return "⯪"
	default:
		return "☆"
	}
}

// ClassifySlot returns the state of slot index for rating r.
//
// Slots below floor(r) are full, the slot straddling a fractional rating is
// half, everything else is empty.
func ClassifySlot(r Rating, index int) SlotState {
	v := float64(r)
	if float64(index) < math.Floor(v) {
		return SlotFull
	}
	if d := v - float64(index); d > 0 && d < 1 {
		return SlotHalf
	}
	return SlotEmpty
}

// Classify returns the states of all slots for rating r.
func Classify(r Rating) [SlotCount]SlotState {
	var states [SlotCount]SlotState
	for i := range states {
		states[i] = ClassifySlot(r, i)
	}
	return states
}

// FormatStates renders states as a row of star symbols.
func FormatStates(states [SlotCount]SlotState) string {
	var sb strings.Builder
	for _, st := range states {
		sb.WriteString(st.Symbol())
	}
	return sb.String()
}
