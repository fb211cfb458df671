package stack

import "github.com/benz9527/xlinear/lib/list"

var _ Stack[struct{}] = (*linkedStack[struct{}])(nil)

// linkedStack is backed by a singly linked list, the top is the head.
type linkedStack[T any] struct {
	slist list.SinglyLinkedList[T]
}

func NewLinkedStack[T any]() Stack[T] {
	return &linkedStack[T]{
		slist: list.NewSinglyLinkedList[T](),
	}
}

func (s *linkedStack[T]) Len() int64 {
	return s.slist.Len()
}

func (s *linkedStack[T]) Push(v T) Stack[T] {
	s.slist.PushFront(v)
	return s
}

func (s *linkedStack[T]) Pop() (v T, err error) {
	e := s.slist.PopFront()
	if e == nil {
		return v, ErrEmptyStack
	}
	return e.Value, nil
}

func (s *linkedStack[T]) Peek() (v T, err error) {
	e := s.slist.Front()
	if e == nil {
		return v, ErrEmptyStack
	}
	return e.Value, nil
}
