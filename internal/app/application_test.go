package app_test

import (
	"context"
	"testing"
	"time"

	"hello-world/internal/app"
	"hello-world/internal/config"
	"hello-world/internal/controllers"
	"hello-world/internal/logger"
	"hello-world/internal/models"
	"hello-world/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helloProgram() app.Program[models.HelloWorld, models.Message] {
	return app.Program[models.HelloWorld, models.Message]{
		Title:  config.WindowTitle,
		Init:   models.NewHelloWorld,
		Update: controllers.Update,
		View:   views.View,
	}
}

func newHelloApplication(t *testing.T) *app.Application[models.HelloWorld, models.Message] {
	t.Helper()
	a, err := app.NewApplication(test.NewTempApp(t), helloProgram(), config.Default(), logger.NewNop())
	require.NoError(t, err)
	return a
}

func collectTexts(obj fyne.CanvasObject) []*canvas.Text {
	switch o := obj.(type) {
	case *canvas.Text:
		return []*canvas.Text{o}
	case *fyne.Container:
		var texts []*canvas.Text
		for _, child := range o.Objects {
			texts = append(texts, collectTexts(child)...)
		}
		return texts
	}
	return nil
}

func TestNewApplication_Errors(t *testing.T) {
	_, err := app.NewApplication[models.HelloWorld, models.Message](nil, helloProgram(), config.Default(), nil)
	assert.ErrorIs(t, err, app.ErrNilApp)

	program := helloProgram()
	program.View = nil
	_, err = app.NewApplication(test.NewTempApp(t), program, config.Default(), nil)
	assert.ErrorIs(t, err, app.ErrInvalidProgram)
}

func TestApplication_InitialModelIsDefault(t *testing.T) {
	for i := 0; i < 3; i++ {
		a := newHelloApplication(t)
		assert.Equal(t, models.HelloWorld{}, a.Model())
		assert.Zero(t, a.Dispatches())
	}
}

func TestApplication_StartShowsGreeting(t *testing.T) {
	a := newHelloApplication(t)
	a.Start()

	window := a.Window()
	assert.Equal(t, "Hello World - Iced", window.Title())

	texts := collectTexts(window.Content())
	require.Len(t, texts, 1)
	assert.Equal(t, "Hello, world!", texts[0].Text)
	assert.Equal(t, float32(50), texts[0].TextSize)
}

func TestApplication_DispatchChangesNothing(t *testing.T) {
	a := newHelloApplication(t)
	a.Start()

	for i := 0; i < 25; i++ {
		assert.NotPanics(t, func() {
			a.Dispatch(models.Message{})
		})
	}

	assert.Equal(t, 25, a.Dispatches())
	assert.Equal(t, models.HelloWorld{}, a.Model())

	texts := collectTexts(a.Window().Content())
	require.Len(t, texts, 1)
	assert.Equal(t, "Hello, world!", texts[0].Text)
	assert.Equal(t, float32(50), texts[0].TextSize)
}

func TestApplication_ShutdownIsIdempotent(t *testing.T) {
	a := newHelloApplication(t)
	a.Start()

	assert.NotPanics(t, func() {
		a.Shutdown()
		a.Shutdown()
	})
}

func TestApplication_GreetingInsetMatchesPadding(t *testing.T) {
	a := newHelloApplication(t)
	a.Start()

	window := a.Window()
	assert.False(t, window.Padded())

	window.Resize(fyne.NewSize(400, 300))

	root, ok := window.Content().(*fyne.Container)
	require.True(t, ok)
	require.Len(t, root.Objects, 1)
	column := root.Objects[0]

	assert.Equal(t, fyne.NewPos(0, 0), root.Position())
	assert.Equal(t, fyne.NewPos(views.Padding, views.Padding), root.Position().Add(column.Position()))
}

func TestApplication_TaskResultIsDispatched(t *testing.T) {
	program := app.Program[int, int]{
		Title: "Feedback",
		Init:  func() int { return 0 },
		Update: func(model *int, msg int) app.Task[int] {
			*model += msg
			if msg > 0 {
				return app.Perform(func() int { return 0 })
			}
			return app.None[int]()
		},
		View: func(model int) fyne.CanvasObject {
			return widget.NewLabel("feedback")
		},
	}

	a, err := app.NewApplication(test.NewTempApp(t), program, config.Default(), logger.NewNop())
	require.NoError(t, err)
	a.Start()

	a.Dispatch(5)

	assert.Eventually(t, func() bool {
		return a.Dispatches() == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 5, a.Model())

	// The follow-up message schedules nothing further.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 2, a.Dispatches())
}

func TestApplication_RunAfterCancelReturns(t *testing.T) {
	a := newHelloApplication(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		done <- a.Run(ctx)
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestApplication_RunAfterShutdownReturns(t *testing.T) {
	a := newHelloApplication(t)
	a.Shutdown()

	done := make(chan error, 1)
	go func() {
		done <- a.Run(context.Background())
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
		assert.Zero(t, a.Dispatches())
	case <-time.After(time.Second):
		t.Fatal("Run did not return after shutdown")
	}
}
