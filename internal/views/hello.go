package views

import (
	"hello-world/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
)

const (
	Greeting     = "Hello, world!"
	GreetingSize = 50
	Padding      = 20
)

// View builds the widget tree for model: a padded column holding the
// greeting.
func View(_ models.HelloWorld) fyne.CanvasObject {
	// Colour is resolved here; the view is rebuilt on every dispatch.
	greeting := canvas.NewText(Greeting, theme.Color(theme.ColorNameForeground))
	greeting.TextSize = GreetingSize

	column := container.NewVBox(greeting)

	return container.New(
		layout.NewCustomPaddedLayout(Padding, Padding, Padding, Padding),
		column,
	)
}
