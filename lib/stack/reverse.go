package stack

// Reverse returns a new slice holding values in reverse order. O(n)
func Reverse[T any](values []T) []T {
	s := NewLinkedStack[T]()
	for _, v := range values {
		s.Push(v)
	}
	reversed := make([]T, 0, len(values))
	for s.Len() > 0 {
		v, _ := s.Pop()
		reversed = append(reversed, v)
	}
	return reversed
}
