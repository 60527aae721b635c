// Package animation drives the decorative window background.
//
// A single goroutine owns the tick loop. Each tick builds a fresh
// models.Snapshot from the current configuration and publishes it with an
// atomic swap, so the UI thread only ever reads complete values.
package animation

import (
	"context"
	"image"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"basic-gui-threads/internal/logger"
	"basic-gui-threads/internal/models"
)

const component = "Animator"

// Surface size used for circle placement until the widget reports its own
var defaultSurface = image.Pt(800, 600)

// Animator owns the periodic tick loop for the background
type Animator struct {
	logger logger.Logger

	// guards the loop lifecycle only; never taken by the loop itself
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	config   atomic.Pointer[models.AnimationConfig]
	snapshot atomic.Pointer[models.Snapshot]
	surface  atomic.Pointer[image.Point]
	onTick   atomic.Pointer[func()]

	// signalled when the tick interval changes so a pending wait restarts
	reschedule chan struct{}

	// only used from the tick goroutine
	rng *rand.Rand
}

// NewAnimator creates a stopped animator with the default configuration
func NewAnimator(log logger.Logger) *Animator {
	a := &Animator{
		logger:     log,
		reschedule: make(chan struct{}, 1),
		rng:        rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())),
	}

	cfg := models.DefaultAnimationConfig()
	snap := models.InitialSnapshot()
	surface := defaultSurface
	a.config.Store(&cfg)
	a.snapshot.Store(&snap)
	a.surface.Store(&surface)

	return a
}

// SetOnTick installs the redraw request invoked after every published tick.
// fn runs on the tick goroutine and must not block on the UI thread.
func (a *Animator) SetOnTick(fn func()) {
	if fn == nil {
		a.onTick.Store(nil)
		return
	}
	a.onTick.Store(&fn)
}

// Start begins ticking. Calling Start while running is a no-op.
// The loop also ends when ctx is cancelled.
func (a *Animator) Start(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.runningLocked() {
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	a.cancel = cancel
	a.done = done

	go a.run(loopCtx, done)
}

// Stop halts ticking and returns once the loop goroutine has exited.
// Safe to call repeatedly or before Start.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancel == nil {
		return
	}

	a.cancel()
	<-a.done
	a.cancel = nil
}

// Running reports whether the loop goroutine is alive
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.runningLocked()
}

func (a *Animator) runningLocked() bool {
	if a.done == nil {
		return false
	}
	select {
	case <-a.done:
		return false
	default:
		return true
	}
}

func (a *Animator) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	a.logger.Info(component, "animation started", map[string]interface{}{
		"interval_ms": a.Config().TickInterval.Milliseconds(),
	})

	select {
	case <-a.reschedule:
	default:
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	var lastTick time.Time
	for {
		select {
		case <-ctx.Done():
			a.logger.Info(component, "animation stopped", nil)
			return
		case <-a.reschedule:
			// The first tick is still pending; the new interval applies after it.
			if lastTick.IsZero() {
				continue
			}
			timer.Reset(max(a.Config().TickInterval-time.Since(lastTick), 0))
			continue
		case <-timer.C:
		}

		if ctx.Err() != nil {
			a.logger.Info(component, "animation stopped", nil)
			return
		}

		a.tick()
		lastTick = time.Now()
		timer.Reset(a.Config().TickInterval)
	}
}

// tick regenerates the drawing state and requests a redraw
func (a *Animator) tick() {
	prev := a.snapshot.Load()
	cfg := a.Config()
	next := a.buildSnapshot(prev, cfg)

	// A setter swapped in a new pattern while we were building; its
	// snapshot wins and the next tick picks up the new config.
	if !a.snapshot.CompareAndSwap(prev, next) {
		a.logger.Debug(component, "tick discarded after config change", nil)
		return
	}

	a.requestRedraw()
}

func (a *Animator) buildSnapshot(prev *models.Snapshot, cfg models.AnimationConfig) *models.Snapshot {
	next := &models.Snapshot{
		Pattern:    cfg.DrawPattern,
		Background: prev.Background,
		Sequence:   prev.Sequence + 1,
	}

	switch cfg.DrawPattern {
	case models.DrawPatternCircles:
		size := a.surfaceSize()
		circles := make([]models.CircleShape, models.CirclesPerTick)
		for i := range circles {
			circles[i] = models.CircleShape{
				CenterX: a.rng.IntN(size.X),
				CenterY: a.rng.IntN(size.Y),
				Radius:  models.MinCircleRadius + a.rng.IntN(models.MaxCircleRadius-models.MinCircleRadius),
				Color:   GenerateColor(cfg.ColorMode, a.rng),
			}
		}
		next.Circles = circles
	default:
		next.Background = GenerateColor(cfg.ColorMode, a.rng)
	}

	return next
}

func (a *Animator) requestRedraw() {
	if fn := a.onTick.Load(); fn != nil {
		(*fn)()
	}
}

// Snapshot returns the latest published drawing state
func (a *Animator) Snapshot() models.Snapshot {
	return *a.snapshot.Load()
}

// Config returns the current configuration
func (a *Animator) Config() models.AnimationConfig {
	return *a.config.Load()
}

func (a *Animator) SetColorMode(mode models.ColorMode) {
	cfg := a.updateConfig(func(c *models.AnimationConfig) {
		c.ColorMode = mode
	})
	a.logger.Info(component, "color mode changed", map[string]interface{}{
		"color_mode": cfg.ColorMode.String(),
	})
}

// SetDrawPattern switches pattern and drops any circles left over from
// the previous pattern before returning.
func (a *Animator) SetDrawPattern(pattern models.DrawPattern) {
	a.updateConfig(func(c *models.AnimationConfig) {
		c.DrawPattern = pattern
	})

	for {
		prev := a.snapshot.Load()
		if prev.Pattern == pattern && (pattern == models.DrawPatternCircles || len(prev.Circles) == 0) {
			break
		}

		next := &models.Snapshot{
			Pattern:    pattern,
			Background: prev.Background,
			Sequence:   prev.Sequence + 1,
		}
		if a.snapshot.CompareAndSwap(prev, next) {
			a.requestRedraw()
			break
		}
	}

	a.logger.Info(component, "draw pattern changed", map[string]interface{}{
		"draw_pattern": pattern.String(),
	})
}

// SetTickInterval changes the wait between ticks, clamped to
// models.MinTickInterval. A wait already in progress restarts with the new
// interval.
func (a *Animator) SetTickInterval(d time.Duration) {
	cfg := a.updateConfig(func(c *models.AnimationConfig) {
		c.TickInterval = models.ClampTickInterval(d)
	})

	select {
	case a.reschedule <- struct{}{}:
	default:
	}

	fields := map[string]interface{}{
		"requested_ms": d.Milliseconds(),
		"interval_ms":  cfg.TickInterval.Milliseconds(),
	}
	if cfg.TickInterval != d {
		a.logger.Warning(component, "tick interval below minimum, clamped", fields)
		return
	}
	a.logger.Info(component, "tick interval changed", fields)
}

// SetSurfaceSize records the drawing surface bounds used to place circles.
// Non-positive sizes are ignored.
func (a *Animator) SetSurfaceSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	size := image.Pt(width, height)
	a.surface.Store(&size)
}

func (a *Animator) surfaceSize() image.Point {
	return *a.surface.Load()
}

func (a *Animator) updateConfig(mutate func(*models.AnimationConfig)) models.AnimationConfig {
	for {
		prev := a.config.Load()
		next := *prev
		mutate(&next)
		if a.config.CompareAndSwap(prev, &next) {
			return next
		}
	}
}

// Configure applies every field of cfg that differs from the current
// configuration through the matching setter.
func (a *Animator) Configure(cfg models.AnimationConfig) {
	current := a.Config()
	if cfg.ColorMode != current.ColorMode {
		a.SetColorMode(cfg.ColorMode)
	}
	if cfg.DrawPattern != current.DrawPattern {
		a.SetDrawPattern(cfg.DrawPattern)
	}
	if cfg.TickInterval != current.TickInterval {
		a.SetTickInterval(cfg.TickInterval)
	}
}
