package starrating

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/gogpu/gg"
)

func TestEncodeSVG(t *testing.T) {
	c, _ := newTestController(t)
	var buf bytes.Buffer
	if err := EncodeSVG(&buf, 500, 100, c, DefaultPalette()); err != nil {
		t.Fatalf("EncodeSVG() error = %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") {
		t.Errorf("missing XML header: %q", out[:20])
	}

	var doc svgDoc
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid XML: %v", err)
	}
	if doc.ViewBox != "0 0 500 100" {
		t.Errorf("viewBox = %q, want 0 0 500 100", doc.ViewBox)
	}
	if len(doc.Polygons) != 6 {
		t.Fatalf("polygons = %d, want 6", len(doc.Polygons))
	}
	if doc.Polygons[0].Fill != "#ffcc00" {
		t.Errorf("full fill = %q, want #ffcc00", doc.Polygons[0].Fill)
	}
	if doc.Polygons[2].Class != "slot-2 half" {
		t.Errorf("class = %q, want slot-2 half", doc.Polygons[2].Class)
	}
	if got := len(strings.Fields(doc.Polygons[0].Points)); got != 10 {
		t.Errorf("first polygon has %d points, want 10", got)
	}
	if doc.Rect != nil {
		t.Error("transparent background should not emit a rect")
	}
}

func TestSVGColor(t *testing.T) {
	fill, opacity := svgColor(gg.RGBA{R: 1, G: 0, B: 0.5, A: 0.25})
	if fill != "#ff0080" || opacity != "0.25" {
		t.Errorf("svgColor() = %q, %q", fill, opacity)
	}
	if _, opacity := svgColor(gg.RGB(0, 0, 0)); opacity != "" {
		t.Errorf("opaque colour has opacity %q", opacity)
	}
}
