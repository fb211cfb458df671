package stack

import "errors"

var ErrEmptyStack = errors.New("[stack] there is no element")

// Stack is a LIFO container. Every operation is O(1).
// Note that none of the implementations are thread safe.
type Stack[T any] interface {
	Len() int64
	// Push pushes the value v onto the top and returns the stack itself for chaining.
	Push(v T) Stack[T]
	// Pop removes and returns the top value or ErrEmptyStack.
	Pop() (T, error)
	// Peek returns the top value without removing it or ErrEmptyStack.
	Peek() (T, error)
}
