// Package shutdown ends the viewer session in an orderly way when the process
// is asked to stop. Components are stopped newest first, so the window closes
// (and the processed CSV is written) before anything it depends on goes away.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"borrow-trends/internal/logger"
)

// DefaultComponentTimeout bounds a single component's Shutdown call.
const DefaultComponentTimeout = 10 * time.Second

// Shutdownable is anything the manager can stop.
type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() { f() }

// Manager stops registered components in reverse registration order. Shutdown
// runs at most once however it is triggered; a component that does not return
// within the timeout is logged and skipped.
type Manager struct {
	components []Shutdownable
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	done       chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewManager returns a manager with DefaultComponentTimeout.
func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		logger:  log,
		timeout: DefaultComponentTimeout,
		done:    make(chan struct{}),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// SetComponentTimeout bounds how long a single component may take to stop.
func (m *Manager) SetComponentTimeout(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeout = d
}

// Register adds a component. Later registrations are stopped first.
func (m *Manager) Register(component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component)
}

// Listen shuts down on SIGINT or SIGTERM. The listening goroutine exits once
// shutdown has happened for any reason.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	m.listen(sigChan)
}

func (m *Manager) listen(sigChan <-chan os.Signal) {
	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "stop signal received, ending session", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
		case <-m.done:
		}
	}()
}

// Shutdown stops every registered component. Calls after the first return
// immediately.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	select {
	case <-m.done:
		m.mu.Unlock()
		return
	default:
	}
	close(m.done)
	components := append([]Shutdownable(nil), m.components...)
	timeout := m.timeout
	m.mu.Unlock()

	m.logger.Info("ShutdownManager", "stopping components", map[string]interface{}{
		"components": len(components),
	})
	m.cancel()

	for i := len(components) - 1; i >= 0; i-- {
		if !stopWithin(components[i], timeout) {
			m.logger.Warning("ShutdownManager", "component did not stop in time", map[string]interface{}{
				"component_index": i,
				"timeout_ms":      timeout.Milliseconds(),
			})
		}
	}

	m.logger.Info("ShutdownManager", "all components stopped", nil)
}

// stopWithin reports whether c.Shutdown returned before the timeout.
func stopWithin(c Shutdownable, timeout time.Duration) bool {
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		c.Shutdown()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-stopped:
		return true
	case <-timer.C:
		return false
	}
}

// Context is cancelled when shutdown starts.
func (m *Manager) Context() context.Context {
	return m.ctx
}

// Done is closed when shutdown starts.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}
