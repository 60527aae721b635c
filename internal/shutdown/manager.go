package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"basic-gui-threads/internal/logger"
)

const component = "ShutdownManager"

type step struct {
	name string
	fn   func()
}

// Manager runs the exit sequence exactly once, step by step, in the order
// the steps were added. Every exit path (menu, window close, signal) goes
// through Run.
type Manager struct {
	logger   logger.Logger
	mu       sync.Mutex
	steps    []step
	once     sync.Once
	done     chan struct{}
	dispatch func(func())
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		logger:   log,
		done:     make(chan struct{}),
		dispatch: func(fn func()) { fn() },
	}
}

// Add appends a named step to the sequence
func (m *Manager) Add(name string, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.steps = append(m.steps, step{name: name, fn: fn})
}

// SetDispatcher sets how a signal-triggered Run is scheduled, e.g. onto the UI thread
func (m *Manager) SetDispatcher(dispatch func(func())) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dispatch = dispatch
}

// Run executes every step synchronously. Later calls wait for the first to
// finish and then return without doing anything.
func (m *Manager) Run() {
	m.once.Do(func() {
		defer close(m.done)

		m.mu.Lock()
		steps := make([]step, len(m.steps))
		copy(steps, m.steps)
		m.mu.Unlock()

		m.logger.Info(component, "shutdown sequence initiated", map[string]interface{}{
			"steps": len(steps),
		})

		for _, s := range steps {
			start := time.Now()
			s.fn()
			m.logger.Debug(component, "shutdown step completed", map[string]interface{}{
				"step":        s.name,
				"duration_ms": time.Since(start).Milliseconds(),
			})
		}

		m.logger.Info(component, "shutdown sequence completed", nil)
	})
}

// Listen routes SIGINT and SIGTERM into Run until ctx is cancelled
func (m *Manager) Listen(ctx context.Context) {
	m.listen(ctx, os.Interrupt, syscall.SIGTERM)
}

func (m *Manager) listen(ctx context.Context, signals ...os.Signal) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, signals...)

	go func() {
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			m.logger.Info(component, "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.mu.Lock()
			dispatch := m.dispatch
			m.mu.Unlock()
			dispatch(m.Run)
		case <-ctx.Done():
		}
	}()
}

// Done is closed once the sequence has completed
func (m *Manager) Done() <-chan struct{} {
	return m.done
}
