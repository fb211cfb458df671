package stack

var _ Stack[struct{}] = (*arrayStack[struct{}])(nil)

// arrayStack is backed by a dynamic array, the top is the last slot.
type arrayStack[T any] struct {
	arr []T
}

func NewArrayStack[T any](capacity ...int) Stack[T] {
	c := 0
	if len(capacity) > 0 && capacity[0] > 0 {
		c = capacity[0]
	}
	return &arrayStack[T]{
		arr: make([]T, 0, c),
	}
}

func (s *arrayStack[T]) Len() int64 {
	return int64(len(s.arr))
}

// Push amortized O(1)
func (s *arrayStack[T]) Push(v T) Stack[T] {
	s.arr = append(s.arr, v)
	return s
}

func (s *arrayStack[T]) Pop() (v T, err error) {
	n := len(s.arr)
	if n <= 0 {
		return v, ErrEmptyStack
	}
	v = s.arr[n-1]
	var zero T
	s.arr[n-1] = zero // avoid memory leaks
	s.arr = s.arr[:n-1]
	return v, nil
}

func (s *arrayStack[T]) Peek() (v T, err error) {
	n := len(s.arr)
	if n <= 0 {
		return v, ErrEmptyStack
	}
	return s.arr[n-1], nil
}
