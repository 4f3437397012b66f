package shutdown

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"sync"
	"syscall"
	"time"

	"hello-world/internal/logger"
)

const DefaultTimeout = 10 * time.Second

type Shutdownable interface {
	Shutdown()
}

// Manager stops registered components, last registered first, on SIGINT,
// SIGTERM or an explicit Shutdown call. Each component gets at most the
// configured timeout.
type Manager struct {
	logger logger.Logger

	mu         sync.Mutex
	components []Shutdownable
	timeout    time.Duration

	once   sync.Once
	ctx    context.Context
	cancel context.CancelFunc
}

func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		logger:  log,
		timeout: DefaultTimeout,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (m *Manager) SetTimeout(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.timeout = d
}

func (m *Manager) Register(component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component)
}

// Listen starts watching for termination signals until shutdown begins.
func (m *Manager) Listen() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go m.awaitSignal(signals)
}

func (m *Manager) awaitSignal(signals chan os.Signal) {
	defer signal.Stop(signals)

	select {
	case sig := <-signals:
		m.logger.Info("Shutdown", "termination signal", map[string]interface{}{
			"signal": sig.String(),
		})
		m.Shutdown()
	case <-m.ctx.Done():
	}
}

// Shutdown runs once; concurrent callers wait for the first to finish.
func (m *Manager) Shutdown() {
	m.once.Do(m.stopAll)
}

func (m *Manager) stopAll() {
	m.cancel()

	m.mu.Lock()
	components := slices.Clone(m.components)
	timeout := m.timeout
	m.mu.Unlock()

	slices.Reverse(components)

	m.logger.Info("Shutdown", "stopping components", map[string]interface{}{
		"components": len(components),
		"timeout":    timeout.String(),
	})

	stopped := 0
	for _, component := range components {
		if stopWithin(component, timeout) {
			stopped++
			continue
		}
		m.logger.Warning("Shutdown", "component did not stop in time", map[string]interface{}{
			"component": fmt.Sprintf("%T", component),
		})
	}

	m.logger.Info("Shutdown", "components stopped", map[string]interface{}{
		"stopped":   stopped,
		"timed_out": len(components) - stopped,
	})
}

func stopWithin(component Shutdownable, timeout time.Duration) bool {
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		component.Shutdown()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-finished:
		return true
	case <-timer.C:
		return false
	}
}

// Context is cancelled once shutdown begins.
func (m *Manager) Context() context.Context {
	return m.ctx
}
