package starrating

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

type svgDoc struct {
	XMLName  xml.Name     `xml:"svg"`
	NS       string       `xml:"xmlns,attr"`
	Width    string       `xml:"width,attr"`
	Height   string       `xml:"height,attr"`
	ViewBox  string       `xml:"viewBox,attr"`
	Rect     *svgRect     `xml:"rect,omitempty"`
	Polygons []svgPolygon `xml:"polygon"`
}

type svgRect struct {
	Width       string `xml:"width,attr"`
	Height      string `xml:"height,attr"`
	Fill        string `xml:"fill,attr"`
	FillOpacity string `xml:"fill-opacity,attr,omitempty"`
}

type svgPolygon struct {
	Class       string `xml:"class,attr"`
	Points      string `xml:"points,attr"`
	Fill        string `xml:"fill,attr"`
	FillOpacity string `xml:"fill-opacity,attr,omitempty"`
}

// EncodeSVG writes the control as an SVG document of the given size. The
// scene is the same as the one drawn by Render.
func EncodeSVG(w io.Writer, width, height float64, c *Controller, p Palette) error {
	box := FitAspect(R(0, 0, width, height))
	doc := svgDoc{
		NS:      "http://www.w3.org/2000/svg",
		Width:   svgNum(width),
		Height:  svgNum(height),
		ViewBox: fmt.Sprintf("0 0 %s %s", svgNum(width), svgNum(height)),
	}
	if p.Background.A > 0 {
		fill, opacity := svgColor(p.Background)
		doc.Rect = &svgRect{Width: "100%", Height: "100%", Fill: fill, FillOpacity: opacity}
	}
	for _, f := range Scene(box, c, p) {
		fill, opacity := svgColor(f.Color)
		doc.Polygons = append(doc.Polygons, svgPolygon{
			Class:       fmt.Sprintf("slot-%d %s", f.Slot, f.State),
			Points:      svgPoints(f.Outline),
			Fill:        fill,
			FillOpacity: opacity,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("starrating: encode svg: %w", err)
	}
	return enc.Close()
}

func svgPoints(poly Polygon) string {
	var sb strings.Builder
	for i, pt := range poly {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(svgNum(pt.X))
		sb.WriteByte(',')
		sb.WriteString(svgNum(pt.Y))
	}
	return sb.String()
}

func svgNum(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// svgColor returns "#rrggbb" and, for translucent colours, the opacity.
func svgColor(c gg.RGBA) (fill, opacity string) {
	to8 := func(v float64) int {
		return int(math.Round(math.Max(0, math.Min(v, 1)) * 255))
	}
	fill = fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
	if c.A < 1 {
		opacity = svgNum(c.A)
	}
	return fill, opacity
}
