package components

import (
	"image"
	"image/color"
	"testing"
	"time"

	"basic-gui-threads/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

type fakeDriver struct {
	snap    models.Snapshot
	cfg     models.AnimationConfig
	surface image.Point
	calls   int
}

func (d *fakeDriver) Snapshot() models.Snapshot { return d.snap }

func (d *fakeDriver) Config() models.AnimationConfig { return d.cfg }

func (d *fakeDriver) Configure(cfg models.AnimationConfig) { d.cfg = cfg }

func (d *fakeDriver) SetSurfaceSize(width, height int) {
	d.calls++
	d.surface = image.Pt(width, height)
}

func TestBackgroundDrawsDriverSnapshot(t *testing.T) {
	bg := color.RGBA{R: 0, G: 0, B: 200, A: 255}
	driver := &fakeDriver{snap: models.Snapshot{Pattern: models.DrawPatternSolidFill, Background: bg}}
	b := NewBackground(driver)

	img := b.draw(40, 30)
	if got := color.RGBAModel.Convert(img.At(20, 15)); got != bg {
		t.Errorf("pixel = %v, want %v", got, bg)
	}
	if driver.surface != image.Pt(40, 30) {
		t.Errorf("surface size reported as %v, want 40x30", driver.surface)
	}

	b.draw(40, 30)
	if driver.calls != 1 {
		t.Errorf("unchanged size reported %d times, want 1", driver.calls)
	}
	b.draw(80, 60)
	if driver.calls != 2 || driver.surface != image.Pt(80, 60) {
		t.Errorf("resize not reported: calls=%d surface=%v", driver.calls, driver.surface)
	}
}

func TestBackgroundConfigureForwardsToDriver(t *testing.T) {
	driver := &fakeDriver{cfg: models.DefaultAnimationConfig()}
	b := NewBackground(driver)

	cfg := b.Config()
	cfg.DrawPattern = models.DrawPatternCircles
	b.Configure(cfg)

	if driver.cfg.DrawPattern != models.DrawPatternCircles {
		t.Errorf("driver pattern = %v, want Circles", driver.cfg.DrawPattern)
	}
}

func TestBackgroundRendersInWindow(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	driver := &fakeDriver{snap: models.InitialSnapshot()}
	b := NewBackground(driver)
	w := test.NewWindow(b)
	defer w.Close()
	w.Resize(fyne.NewSize(120, 90))

	b.RenderSnapshot()

	r := test.WidgetRenderer(b)
	if len(r.Objects()) != 1 {
		t.Fatalf("renderer has %d objects, want 1", len(r.Objects()))
	}
	if r.MinSize() != fyne.NewSize(0, 0) {
		t.Errorf("MinSize = %v, want zero so content decides the layout", r.MinSize())
	}
}

func TestStatusBar(t *testing.T) {
	test.NewApp()

	sb := NewStatusBar()
	if sb.GetStatus() != StatusReady {
		t.Errorf("initial status = %q, want %q", sb.GetStatus(), StatusReady)
	}

	sb.SetStatus("Opened: notes.txt")
	if sb.GetStatus() != "Opened: notes.txt" {
		t.Errorf("status = %q", sb.GetStatus())
	}

	sb.SetDocumentInfo(models.Document{Name: "notes.txt", Content: "Hello\nWorld", Size: 11})
	if got, want := sb.GetDocumentInfo(), "notes.txt: 2 lines, 11 bytes"; got != want {
		t.Errorf("document info = %q, want %q", got, want)
	}

	sb.SetAnimationInfo(models.AnimationConfig{
		ColorMode:    models.ColorModeBlues,
		DrawPattern:  models.DrawPatternCircles,
		TickInterval: 250 * time.Millisecond,
	})
	if got, want := sb.GetAnimationInfo(), "Circles | Blues | 250 ms"; got != want {
		t.Errorf("animation info = %q, want %q", got, want)
	}

	sb.ResetDocumentInfo()
	if got := sb.GetDocumentInfo(); got != noDocumentInfo {
		t.Errorf("document info after reset = %q, want %q", got, noDocumentInfo)
	}
}
