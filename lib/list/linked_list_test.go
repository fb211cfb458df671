package list

import (
	"container/list"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values[T any](l SinglyLinkedList[T]) []T {
	vs := make([]T, 0, l.Len())
	_ = l.Foreach(func(_ int64, e *NodeElement[T]) error {
		vs = append(vs, e.Value)
		return nil
	})
	return vs
}

func TestSinglyLinkedList_PushFront(t *testing.T) {
	slist := NewSinglyLinkedList[int]()
	require.Nil(t, slist.Front())
	require.Equal(t, int64(0), slist.Len())

	slist2 := list.New()
	for i := 1; i <= 5; i++ {
		e := slist.PushFront(i)
		assert.Equal(t, i, e.Value)
		assert.Equal(t, e, slist.Front())
		slist2.PushFront(i)
	}
	assert.Equal(t, int64(slist2.Len()), slist.Len())

	slistItr := slist.Front()
	slist2Itr := slist2.Front()
	for slist2Itr != nil {
		assert.Equal(t, slist2Itr.Value, slistItr.Value)
		slist2Itr = slist2Itr.Next()
		slistItr = slistItr.Next()
	}
	require.Nil(t, slistItr)
}

func TestSinglyLinkedList_PopFront(t *testing.T) {
	slist := NewSinglyLinkedList[string]("a", "b", "c")
	require.Equal(t, []string{"c", "b", "a"}, values(slist))

	e := slist.PopFront()
	require.NotNil(t, e)
	assert.Equal(t, "c", e.Value)
	assert.Nil(t, e.Next())
	assert.Equal(t, int64(2), slist.Len())

	assert.Equal(t, "b", slist.PopFront().Value)
	assert.Equal(t, "a", slist.PopFront().Value)
	assert.Nil(t, slist.PopFront())
	assert.Equal(t, int64(0), slist.Len())
	assert.Empty(t, values(slist))
}

func TestSinglyLinkedList_Foreach(t *testing.T) {
	slist := NewSinglyLinkedList[int](1, 2, 3, 4, 5)
	visited := make([]int, 0, 5)
	err := slist.Foreach(func(idx int64, e *NodeElement[int]) error {
		assert.Equal(t, int64(len(visited)), idx)
		visited = append(visited, e.Value)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{5, 4, 3, 2, 1}, visited)

	errStop := errors.New("stop")
	count := 0
	err = slist.Foreach(func(idx int64, e *NodeElement[int]) error {
		count++
		if idx == 1 {
			return errStop
		}
		return nil
	})
	require.ErrorIs(t, err, errStop)
	require.Equal(t, 2, count)

	require.NoError(t, slist.Foreach(nil))
}

func TestNodeElement_NilSafe(t *testing.T) {
	var e *NodeElement[int]
	assert.Nil(t, e.Next())
}
