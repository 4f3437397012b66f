package app

import (
	"sync"

	"hello-world/internal/logger"

	"fyne.io/fyne/v2"
)

// Lifecycle tracks whether the Fyne event loop is running. A shutdown
// requested before the loop starts prevents it from starting at all.
type Lifecycle struct {
	fyneApp fyne.App
	logger  logger.Logger

	mu      sync.Mutex
	running bool
	stopped bool
}

func NewLifecycle(fyneApp fyne.App, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		fyneApp: fyneApp,
		logger:  log,
	}
}

// start reports whether the event loop may be entered.
func (l *Lifecycle) start() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped {
		return false
	}
	l.running = true
	return true
}

func (l *Lifecycle) finish() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.running = false
}

func (l *Lifecycle) Shutdown() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.stopped = true
	running := l.running
	l.mu.Unlock()

	l.logger.Info("Lifecycle", "shutdown sequence initiated", map[string]interface{}{
		"event_loop_running": running,
	})
	if running {
		fyne.Do(l.fyneApp.Quit)
	}
}
