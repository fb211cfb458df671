package list

var _ SinglyLinkedList[struct{}] = (*singlyLinkedList[struct{}])(nil)

type singlyLinkedList[T any] struct {
	head *NodeElement[T]
	len  int64
}

func NewSinglyLinkedList[T any](values ...T) SinglyLinkedList[T] {
	l := &singlyLinkedList[T]{}
	for _, v := range values {
		l.PushFront(v)
	}
	return l
}

func (l *singlyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *singlyLinkedList[T]) Front() *NodeElement[T] {
	return l.head
}

// PushFront O(1)
func (l *singlyLinkedList[T]) PushFront(v T) *NodeElement[T] {
	e := NewNodeElement[T](v)
	e.next = l.head
	l.head = e
	l.len++
	return e
}

// PopFront O(1)
func (l *singlyLinkedList[T]) PopFront() *NodeElement[T] {
	if l.head == nil {
		return nil
	}
	e := l.head
	l.head = e.next
	e.next = nil // avoid memory leaks
	l.len--
	return e
}

func (l *singlyLinkedList[T]) Foreach(fn func(idx int64, e *NodeElement[T]) error) error {
	if fn == nil {
		return nil
	}
	var idx int64
	for iterator := l.head; iterator != nil; iterator = iterator.Next() {
		if err := fn(idx, iterator); err != nil {
			return err
		}
		idx++
	}
	return nil
}
