// Package render rasterises background snapshots.
package render

import (
	"image"

	"github.com/fogleman/gg"

	"basic-gui-threads/internal/models"
)

// Draw paints snap onto a new w×h image. The background colour always
// fills the surface; circles are only drawn for the Circles pattern.
func Draw(snap models.Snapshot, w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(snap.Background)
	dc.Clear()

	if snap.Pattern == models.DrawPatternCircles {
		for _, c := range snap.Circles {
			dc.DrawCircle(float64(c.CenterX), float64(c.CenterY), float64(c.Radius))
			dc.SetColor(c.Color)
			dc.Fill()
		}
	}

	return dc.Image()
}
