package controllers

import (
	"hello-world/internal/app"
	"hello-world/internal/models"
)

// Update handles a message. The model has a single state, so every message
// is a self-transition and nothing is scheduled.
func Update(_ *models.HelloWorld, _ models.Message) app.Task[models.Message] {
	return app.None[models.Message]()
}
