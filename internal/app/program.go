package app

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
)

var (
	ErrNilApp         = errors.New("fyne app is nil")
	ErrInvalidProgram = errors.New("invalid program")
)

// Program describes a model/update/view application.
type Program[M any, Msg any] struct {
	Title  string
	Init   func() M
	Update func(model *M, msg Msg) Task[Msg]
	View   func(model M) fyne.CanvasObject
}

func (p Program[M, Msg]) Validate() error {
	switch {
	case p.Title == "":
		return fmt.Errorf("%w: empty title", ErrInvalidProgram)
	case p.Init == nil:
		return fmt.Errorf("%w: missing init", ErrInvalidProgram)
	case p.Update == nil:
		return fmt.Errorf("%w: missing update", ErrInvalidProgram)
	case p.View == nil:
		return fmt.Errorf("%w: missing view", ErrInvalidProgram)
	}
	return nil
}
