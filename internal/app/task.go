package app

// Task is follow-up work returned by an update function. Each command runs
// off the UI goroutine and the message it returns is dispatched back into
// the program.
type Task[Msg any] struct {
	cmds []func() Msg
}

// None returns a task that does nothing.
func None[Msg any]() Task[Msg] {
	return Task[Msg]{}
}

func Perform[Msg any](fn func() Msg) Task[Msg] {
	if fn == nil {
		return None[Msg]()
	}
	return Task[Msg]{cmds: []func() Msg{fn}}
}

// Batch combines tasks. Their commands run concurrently.
func Batch[Msg any](tasks ...Task[Msg]) Task[Msg] {
	var cmds []func() Msg
	for _, t := range tasks {
		cmds = append(cmds, t.cmds...)
	}
	return Task[Msg]{cmds: cmds}
}

func (t Task[Msg]) IsNone() bool {
	return len(t.cmds) == 0
}

func (t Task[Msg]) Len() int {
	return len(t.cmds)
}
