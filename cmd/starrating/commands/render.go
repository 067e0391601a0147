package commands

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/gogpu/starrating"
	"github.com/gogpu/starrating/internal/caption"
)

func renderCmd(a *app) *cobra.Command {
	var (
		output      string
		withCaption bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the control to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := a.controller(nil)
			if err != nil {
				return err
			}
			p := a.file.Palette()
			w, h := a.file.Width, a.file.Height

			extra := 0
			if withCaption {
				extra = caption.Height
			}
			dc := gg.NewContext(w, h+extra)
			defer func() { _ = dc.Close() }()

			if withCaption {
				dc.ClearWithColor(captionBackground(p))
			} else {
				dc.ClearWithColor(p.Background)
			}
			box := starrating.FitAspect(starrating.R(0, 0, float64(w), float64(h)))
			if err := starrating.Render(dc, box, ctl, p); err != nil {
				return err
			}
			if withCaption {
				strip := starrating.R(0, float64(h), float64(w), caption.Height)
				label := caption.Format(ctl.Rating(), a.file.Locale)
				if err := caption.Draw(dc, strip, label, a.file.Locale, gg.Black); err != nil {
					return err
				}
			}

			img := dc.Image()
			if err := savePNG(output, img); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s saved to %s (%dx%d)\n",
				starrating.FormatStates(ctl.States()), output, img.Bounds().Dx(), img.Bounds().Dy())
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "stars.png", "output file")
	cmd.Flags().BoolVar(&withCaption, "caption", false, "draw the rating below the stars")
	return cmd
}

// captionBackground keeps a captioned image readable when the palette
// leaves the background transparent.
func captionBackground(p starrating.Palette) gg.RGBA {
	if p.Background.A == 0 {
		return gg.White
	}
	return p.Background
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
