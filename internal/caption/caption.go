// Package caption draws a short rating label under a rendered star control.
package caption

import (
	"fmt"
	"sync"

	"github.com/go-text/typesetting/language"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/starrating"
)

// Height is the strip reserved below the stars for a caption.
const Height = 24

// fontSize is the caption size in points.
const fontSize = 14.0

var (
	sourceOnce sync.Once
	source     *text.FontSource
	sourceErr  error
)

// fontSource returns the embedded Go Regular font, parsed once.
func fontSource() (*text.FontSource, error) {
	sourceOnce.Do(func() {
		source, sourceErr = text.NewFontSource(goregular.TTF)
	})
	return source, sourceErr
}

// Format returns "r / 5" with the digits and decimal separator of locale.
// Unknown locales fall back to English.
func Format(r starrating.Rating, locale string) string {
	tag, err := xlanguage.Parse(locale)
	if err != nil {
		tag = xlanguage.English
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("%.1f / %d", r.Float64(), int(starrating.MaxRating))
}

// Direction reports the writing direction of label: right-to-left as soon
// as it contains a rune of a right-to-left script.
func Direction(label string) text.Direction {
	for _, r := range label {
		switch language.LookupScript(r) {
		case language.Arabic, language.Hebrew, language.Syriac, language.Thaana, language.Nko:
			return text.DirectionRTL
		}
	}
	return text.DirectionLTR
}

// Face returns the caption face for label in locale.
func Face(label, locale string) (text.Face, error) {
	src, err := fontSource()
	if err != nil {
		return nil, fmt.Errorf("caption: load font: %w", err)
	}
	return src.Face(fontSize,
		text.WithLanguage(locale),
		text.WithDirection(Direction(label)),
	), nil
}

// Draw writes label centered in box on dc.
func Draw(dc *gg.Context, box starrating.Rect, label, locale string, col gg.RGBA) error {
	face, err := Face(label, locale)
	if err != nil {
		return err
	}
	dc.SetFont(face)
	dc.SetRGBA(col.R, col.G, col.B, col.A)
	c := box.Center()
	dc.DrawStringAnchored(label, c.X, c.Y, 0.5, 0.5)
	return nil
}
