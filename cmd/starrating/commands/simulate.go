package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/starrating"
)

func simulateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate EVENT...",
		Short: "Feed input events to a control and print each committed rating",
		Long: `Feed input events to a control and print each committed rating.

Events:
  tap:N      tap slot N (0-4)
  drag:X/W   pointer at offset X in a control W wide
  click:X    tap at offset X inside the --width x --height canvas,
             resolved to a slot through the layout (gaps are ignored)`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var notified int
			ctl, err := a.controller(func(starrating.Rating) { notified++ })
			if err != nil {
				return err
			}
			box := starrating.FitAspect(starrating.R(0, 0, float64(a.file.Width), float64(a.file.Height)))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "start      %s %s\n", ctl.Rating(), starrating.FormatStates(ctl.States()))
			for _, arg := range args {
				ev, err := parseEvent(arg, box, ctl.Config())
				if err != nil {
					return err
				}
				if ev == nil {
					fmt.Fprintf(out, "%-10s gap\n", arg)
					continue
				}
				r := ctl.Handle(ev)
				fmt.Fprintf(out, "%-10s %s %s\n", arg, r, starrating.FormatStates(ctl.States()))
			}
			fmt.Fprintf(out, "notifications: %d\n", notified)
			return nil
		},
	}
	return cmd
}

// parseEvent turns one command line event into a controller event. A click
// that lands between stars yields a nil event.
func parseEvent(s string, box starrating.Rect, cfg starrating.Config) (starrating.Event, error) {
	kind, arg, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("event %q: want KIND:ARG", s)
	}
	switch kind {
	case "tap":
		slot, err := strconv.Atoi(arg)
		if err != nil || slot < 0 || slot >= starrating.SlotCount {
			return nil, fmt.Errorf("event %q: slot must be 0-%d", s, starrating.SlotCount-1)
		}
		return starrating.EventTap{Slot: slot}, nil
	case "drag":
		xs, ws, ok := strings.Cut(arg, "/")
		if !ok {
			return nil, fmt.Errorf("event %q: want drag:X/WIDTH", s)
		}
		x, errX := strconv.ParseFloat(xs, 64)
		w, errW := strconv.ParseFloat(ws, 64)
		if errX != nil || errW != nil {
			return nil, fmt.Errorf("event %q: X and WIDTH must be numbers", s)
		}
		return starrating.EventDrag{X: x, Width: w}, nil
	case "click":
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("event %q: X must be a number", s)
		}
		slot, hit := starrating.SlotAt(box, cfg, x)
		if !hit {
			return nil, nil
		}
		return starrating.EventTap{Slot: slot}, nil
	default:
		return nil, fmt.Errorf("event %q: unknown kind %q", s, kind)
	}
}
