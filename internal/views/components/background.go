package components

import (
	"image"
	"sync/atomic"

	"basic-gui-threads/internal/models"
	"basic-gui-threads/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Surface is a drawing area hosted behind the main view's content
type Surface interface {
	fyne.CanvasObject
	Config() models.AnimationConfig
	Configure(cfg models.AnimationConfig)
	RenderSnapshot()
}

// Driver produces the snapshots a Background draws
type Driver interface {
	Snapshot() models.Snapshot
	Config() models.AnimationConfig
	Configure(cfg models.AnimationConfig)
	SetSurfaceSize(width, height int)
}

// Background paints the latest published snapshot of its driver
type Background struct {
	widget.BaseWidget

	driver   Driver
	lastSize atomic.Pointer[image.Point]
}

// NewBackground creates a background surface fed by driver
func NewBackground(driver Driver) *Background {
	b := &Background{driver: driver}
	b.ExtendBaseWidget(b)
	return b
}

// Config returns the driver's current configuration
func (b *Background) Config() models.AnimationConfig {
	return b.driver.Config()
}

// Configure forwards cfg to the driver
func (b *Background) Configure(cfg models.AnimationConfig) {
	b.driver.Configure(cfg)
}

// RenderSnapshot repaints from the latest snapshot. Call on the UI thread.
func (b *Background) RenderSnapshot() {
	b.Refresh()
}

// draw is the raster generator; w and h are in device pixels
func (b *Background) draw(w, h int) image.Image {
	size := image.Pt(w, h)
	if last := b.lastSize.Load(); last == nil || *last != size {
		b.lastSize.Store(&size)
		b.driver.SetSurfaceSize(w, h)
	}
	return render.Draw(b.driver.Snapshot(), w, h)
}

func (b *Background) CreateRenderer() fyne.WidgetRenderer {
	raster := canvas.NewRaster(b.draw)
	return &backgroundRenderer{raster: raster, objects: []fyne.CanvasObject{raster}}
}

type backgroundRenderer struct {
	raster  *canvas.Raster
	objects []fyne.CanvasObject
}

func (r *backgroundRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
}

func (r *backgroundRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *backgroundRenderer) Refresh() {
	canvas.Refresh(r.raster)
}

func (r *backgroundRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *backgroundRenderer) Destroy() {}
