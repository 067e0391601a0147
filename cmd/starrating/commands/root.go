package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/starrating"
	"github.com/gogpu/starrating/internal/config"
)

// app holds state shared by all subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string

	// overrides applied on top of the config file
	rating     float64
	ratio      float64
	pointCount int
	spacing    float64
	direction  string
	width      int
	height     int

	file config.File
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "starrating",
		Short:         "Render and exercise five-star rating controls",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "control description file (.toml, .yaml)")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.Float64Var(&a.rating, "rating", float64(starrating.DefaultRating), "initial rating")
	pf.Float64Var(&a.ratio, "inner-ratio", starrating.DefaultInnerRadiusRatio, "inner/outer radius ratio in (0, 1]")
	pf.IntVar(&a.pointCount, "point-count", starrating.DefaultPointCount, "points per star, at least 2")
	pf.Float64Var(&a.spacing, "spacing", starrating.DefaultSpacing, "gap between stars")
	pf.StringVar(&a.direction, "direction", "ltr", "slot order: ltr or rtl")
	pf.IntVar(&a.width, "width", 500, "canvas width in pixels")
	pf.IntVar(&a.height, "height", 100, "canvas height in pixels")

	root.AddCommand(renderCmd(a), svgCmd(a), simulateCmd(a), serveCmd(a))
	return root
}

// setup installs the logger and resolves the control description: config
// file first, then any flag the user set explicitly.
func (a *app) setup(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(a.logLevel))); err != nil {
		return fmt.Errorf("invalid --log-level %q", a.logLevel)
	}
	starrating.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	a.file = config.Defaults()
	if a.configPath != "" {
		f, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.file = f
	}

	flags := cmd.Flags()
	if flags.Changed("rating") {
		a.file.Rating = a.rating
	}
	if flags.Changed("inner-ratio") {
		a.file.InnerRadiusRatio = a.ratio
	}
	if flags.Changed("point-count") {
		a.file.PointCount = a.pointCount
	}
	if flags.Changed("spacing") {
		a.file.Spacing = a.spacing
	}
	if flags.Changed("direction") {
		a.file.Direction = a.direction
	}
	if flags.Changed("width") {
		a.file.Width = a.width
	}
	if flags.Changed("height") {
		a.file.Height = a.height
	}
	return a.file.Validate()
}

// controller builds a controller for the resolved description. onChange
// may be nil when the caller does not care about notifications.
func (a *app) controller(onChange func(starrating.Rating)) (*starrating.Controller, error) {
	if onChange == nil {
		onChange = func(r starrating.Rating) {
			starrating.Logger().Info("rating changed", "rating", r.Float64())
		}
	}
	opts, err := a.file.Options()
	if err != nil {
		return nil, err
	}
	return starrating.New(onChange, opts...)
}
