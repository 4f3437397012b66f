package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHelloWorld_IsDefault(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, HelloWorld{}, NewHelloWorld())
	}
}

func TestMessage_SingleValue(t *testing.T) {
	var a, b Message
	assert.Equal(t, a, b)
	assert.Equal(t, Message{}, a)
}
