// Package starrating implements a five-star rating control: star geometry,
// rating-to-slot classification and tap/drag interaction.
//
// # Overview
//
// A control is a row of five star slots. Its value is a [Rating] in [0, 5]
// that is always a multiple of 0.5. Each slot is drawn full, half or empty
// depending on the rating, and input from the host UI (taps on a slot,
// pointer moves during a drag) is quantized to the nearest half star.
//
// # Quick Start
//
//	c, err := starrating.New(func(r starrating.Rating) {
//	    fmt.Println("rating:", r)
//	}, starrating.WithRating(3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c.UpdateFromSlotTap(3)                 // 4 stars
//	c.UpdateFromContinuousInput(250, 500)  // 2.5 stars
//
//	img, _ := starrating.RenderImage(500, 100, c, starrating.DefaultPalette())
//
// # Geometry
//
// [StarShape] produces a symmetric star polygon for any point count and
// inner/outer radius ratio. [FixedStarOutline] is a hard-coded five-pointed
// alternative. [Layout] splits a box into slots; [FitAspect] fits the
// recommended 5:1 box.
//
// # Rendering
//
// [Scene] turns a controller into coloured polygons. [Render] fills them
// with github.com/gogpu/gg and [EncodeSVG] writes them as SVG. Half stars
// are built by clipping the outline at the slot center, so no raster mask
// is needed.
//
// # Threading
//
// A [Controller] belongs to one event loop. It holds a single mutable
// field, the rating, and notifies its callback synchronously on every
// update.
package starrating
