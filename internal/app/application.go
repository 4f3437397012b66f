package app

import (
	"context"
	"fmt"
	"sync/atomic"

	"hello-world/internal/config"
	"hello-world/internal/logger"

	"fyne.io/fyne/v2"
)

// Application runs a Program inside a single Fyne window. Update and View
// are only ever called on the Fyne UI goroutine.
type Application[M any, Msg any] struct {
	fyneApp   fyne.App
	window    fyne.Window
	program   Program[M, Msg]
	logger    logger.Logger
	lifecycle *Lifecycle

	model      M
	dispatches atomic.Int64
}

func NewApplication[M any, Msg any](fyneApp fyne.App, program Program[M, Msg], cfg config.Config, log logger.Logger) (*Application[M, Msg], error) {
	if fyneApp == nil {
		return nil, ErrNilApp
	}
	if err := program.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewNop()
	}

	window := fyneApp.NewWindow(program.Title)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.SetPadded(false)
	window.SetMaster()
	window.CenterOnScreen()

	a := &Application[M, Msg]{
		fyneApp:   fyneApp,
		window:    window,
		program:   program,
		logger:    log,
		lifecycle: NewLifecycle(fyneApp, log),
		model:     program.Init(),
	}

	window.SetOnClosed(func() {
		log.Info("Application", "window closed", map[string]interface{}{
			"dispatches": a.Dispatches(),
		})
	})

	log.Debug("Application", "application created", map[string]interface{}{
		"title":  program.Title,
		"width":  cfg.WindowWidth,
		"height": cfg.WindowHeight,
	})

	return a, nil
}

// Start renders the initial view and shows the window without entering the
// event loop.
func (a *Application[M, Msg]) Start() {
	a.render()
	a.window.Show()
	a.logger.Info("Application", "window shown", map[string]interface{}{
		"title": a.window.Title(),
	})
}

// Run shows the window and blocks in the Fyne event loop until the window is
// closed or ctx is cancelled. It returns immediately if shutdown was already
// requested. Driver panics during startup are returned as errors.
func (a *Application[M, Msg]) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("gui runtime failed: %v", r)
		}
	}()

	if ctx.Err() != nil {
		a.Shutdown()
	}
	if !a.lifecycle.start() {
		a.logger.Info("Application", "shutdown requested before event loop started", nil)
		return nil
	}
	defer a.lifecycle.finish()

	a.Start()

	stop := context.AfterFunc(ctx, a.Shutdown)
	defer stop()

	a.fyneApp.Run()

	a.logger.Info("Application", "event loop finished", nil)
	return nil
}

// Dispatch applies msg to the model. It must be called on the UI goroutine;
// use Send from anywhere else.
func (a *Application[M, Msg]) Dispatch(msg Msg) {
	task := a.program.Update(&a.model, msg)
	a.render()
	n := a.dispatches.Add(1)

	a.logger.Debug("Runtime", "message dispatched", map[string]interface{}{
		"dispatches":    n,
		"pending_tasks": task.Len(),
	})

	a.perform(task)
}

// Send is safe to call from any goroutine.
func (a *Application[M, Msg]) Send(msg Msg) {
	fyne.Do(func() {
		a.Dispatch(msg)
	})
}

func (a *Application[M, Msg]) perform(task Task[Msg]) {
	for _, cmd := range task.cmds {
		cmd := cmd // per-iteration copy; go.mod targets go 1.21 (pre-1.22 loop semantics)
		go func() {
			a.Send(cmd())
		}()
	}
}

func (a *Application[M, Msg]) render() {
	a.window.SetContent(a.program.View(a.model))
}

// Model returns the current model. Read it from the UI goroutine, or after
// observing Dispatches.
func (a *Application[M, Msg]) Model() M {
	return a.model
}

func (a *Application[M, Msg]) Window() fyne.Window {
	return a.window
}

func (a *Application[M, Msg]) Dispatches() int {
	return int(a.dispatches.Load())
}

// Shutdown stops the event loop. It is safe to call more than once.
func (a *Application[M, Msg]) Shutdown() {
	a.lifecycle.Shutdown()
}
