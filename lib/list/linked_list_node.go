package list

type NodeElement[T any] struct {
	next  *NodeElement[T]
	Value T
}

func NewNodeElement[T any](v T) *NodeElement[T] {
	return &NodeElement[T]{
		Value: v,
	}
}

func (e *NodeElement[T]) Next() *NodeElement[T] {
	if e == nil {
		return nil
	}
	return e.next
}
