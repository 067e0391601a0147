package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/starrating"
)

func svgCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Write the control as SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := a.controller(nil)
			if err != nil {
				return err
			}
			width, height := float64(a.file.Width), float64(a.file.Height)
			if output == "-" {
				return starrating.EncodeSVG(cmd.OutOrStdout(), width, height, ctl, a.file.Palette())
			}
			return saveSVG(output, width, height, ctl, a.file.Palette())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	return cmd
}

func saveSVG(path string, width, height float64, ctl *starrating.Controller, p starrating.Palette) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := starrating.EncodeSVG(f, width, height, ctl, p); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
