package list

// Note that the singly linked list is not thread safe.
// It only supports the operations at the head in O(1), which is
// all a linked stack needs.

// SinglyLinkedList is a singly linked list interface.
type SinglyLinkedList[T any] interface {
	Len() int64
	// Front returns the first element of list l or nil if the list is empty.
	Front() *NodeElement[T]
	// PushFront inserts a new element e with value v at the front of list l and returns e.
	PushFront(v T) *NodeElement[T]
	// PopFront removes the first element of list l and returns it or nil if the list is empty.
	PopFront() *NodeElement[T]
	// Foreach traverses the list l from the front and executes function fn for each element.
	// If fn returns an error, the traversal stops and returns the error.
	Foreach(fn func(idx int64, e *NodeElement[T]) error) error
}
