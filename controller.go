package starrating

import "fmt"

// Controller owns the rating of one star control and turns pointer input
// into quantized ratings.
//
// A Controller is driven from a single event loop and is not safe for
// concurrent use. Every update commits a new rating and calls the change
// callback synchronously before returning.
type Controller struct {
	rating   Rating
	config   Config
	onChange func(Rating)
}

// New creates a controller. onChange is required and is called once per
// update, including updates that leave the rating unchanged.
func New(onChange func(Rating), opts ...Option) (*Controller, error) {
	if onChange == nil {
		return nil, ErrNilCallback
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.config.Validate(); err != nil {
		return nil, fmt.Errorf("starrating: invalid config: %w", err)
	}
	return &Controller{
		rating:   o.rating,
		config:   o.config,
		onChange: onChange,
	}, nil
}

// Rating returns the current rating.
func (c *Controller) Rating() Rating {
	return c.rating
}

// Config returns the control configuration.
func (c *Controller) Config() Config {
	return c.config
}

// Classify returns the state of slot index for the current rating.
func (c *Controller) Classify(index int) SlotState {
	return ClassifySlot(c.rating, index)
}

// States returns the state of every slot for the current rating.
func (c *Controller) States() [SlotCount]SlotState {
	return Classify(c.rating)
}

// UpdateFromContinuousInput sets the rating from a pointer offset within a
// control of totalWidth. Each star covers two half-star zones of
// totalWidth/10. With RightToLeft the offset is measured from the right
// edge. A non-positive width yields 0.
//
// It is meant to be called on every pointer move of a drag.
func (c *Controller) UpdateFromContinuousInput(pointerX, totalWidth float64) Rating {
	var raw float64
	if totalWidth > 0 {
		if c.config.Direction == RightToLeft {
			pointerX = totalWidth - pointerX
		}
		step := totalWidth / (2 * SlotCount)
		raw = pointerX / step * 0.5
	}
	return c.commit(Quantize(raw), "drag")
}

// UpdateFromSlotTap sets the rating to index+1 whole stars, or clears it when
// the rating already equals index+1. index is clamped into [0, SlotCount).
func (c *Controller) UpdateFromSlotTap(index int) Rating {
	index = max(0, min(index, SlotCount-1))
	candidate := Rating(index + 1)
	next := candidate
	if c.rating == candidate {
		next = 0
	}
	return c.commit(next, "tap")
}

// Handle dispatches a host input event and returns the committed rating.
// Unknown events leave the rating untouched and do not notify.
func (c *Controller) Handle(ev Event) Rating {
	switch e := ev.(type) {
	case EventTap:
		return c.UpdateFromSlotTap(e.Slot)
	case EventDrag:
		return c.UpdateFromContinuousInput(e.X, e.Width)
	default:
		Logger().Warn("starrating: ignoring unknown event", "event", fmt.Sprintf("%T", ev))
		return c.rating
	}
}

func (c *Controller) commit(r Rating, source string) Rating {
	Logger().Debug("starrating: rating committed",
		"source", source,
		"from", c.rating.Float64(),
		"to", r.Float64(),
	)
	c.rating = r
	c.onChange(r)
	return r
}

// Event is a pointer event delivered by the host UI.
type Event interface {
	isEvent()
}

// EventTap is a tap or click resolved to a slot index.
type EventTap struct {
	Slot int
}

// EventDrag is a pointer position during a drag. X is the offset from the
// control's left edge, Width is the control's total width.
type EventDrag struct {
	X, Width float64
}

func (EventTap) isEvent()  {}
func (EventDrag) isEvent() {}
