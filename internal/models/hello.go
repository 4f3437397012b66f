package models

// HelloWorld is the application model. It has no state; the zero value is
// the only value.
type HelloWorld struct{}

func NewHelloWorld() HelloWorld {
	return HelloWorld{}
}

// Message signals that an event occurred. It carries no data.
type Message struct{}
