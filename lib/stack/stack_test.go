package stack

import (
	"testing"

	"github.com/emirpasic/gods/stacks"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stackImpls() map[string]func() Stack[int] {
	return map[string]func() Stack[int]{
		"array":      func() Stack[int] { return NewArrayStack[int]() },
		"array-cap":  func() Stack[int] { return NewArrayStack[int](8) },
		"linkedList": func() Stack[int] { return NewLinkedStack[int]() },
	}
}

func TestStack_Empty(t *testing.T) {
	for name, newStack := range stackImpls() {
		t.Run(name, func(t *testing.T) {
			s := newStack()
			require.Equal(t, int64(0), s.Len())
			_, err := s.Pop()
			require.ErrorIs(t, err, ErrEmptyStack)
			_, err = s.Peek()
			require.ErrorIs(t, err, ErrEmptyStack)
		})
	}
}

func TestStack_PushChaining(t *testing.T) {
	for name, newStack := range stackImpls() {
		t.Run(name, func(t *testing.T) {
			s := newStack()
			require.Same(t, s, s.Push(10))
			s.Push(20).Push(30)
			require.Equal(t, int64(3), s.Len())

			top, err := s.Peek()
			require.NoError(t, err)
			require.Equal(t, 30, top)
			require.Equal(t, int64(3), s.Len())
		})
	}
}

// Compares with the gods stacks, which are treated as the reference.
func TestStack_CompareWithReference(t *testing.T) {
	references := map[string]func() stacks.Stack{
		"gods-array":      func() stacks.Stack { return arraystack.New() },
		"gods-linkedList": func() stacks.Stack { return linkedliststack.New() },
	}
	ops := []int{1, 2, -1, 3, 4, 5, -1, -1, 6, -1, -1, -1, -1, 7}
	for name, newStack := range stackImpls() {
		for refName, newRef := range references {
			t.Run(name+"/"+refName, func(t *testing.T) {
				s, ref := newStack(), newRef()
				for _, op := range ops {
					if op > 0 {
						s.Push(op)
						ref.Push(op)
					} else {
						v, err := s.Pop()
						refV, ok := ref.Pop()
						require.Equal(t, ok, err == nil)
						if ok {
							assert.Equal(t, refV, v)
						}
					}
					require.Equal(t, int64(ref.Size()), s.Len())
					v, err := s.Peek()
					refV, ok := ref.Peek()
					require.Equal(t, ok, err == nil)
					if ok {
						assert.Equal(t, refV, v)
					}
				}
			})
		}
	}
}

func TestReverse(t *testing.T) {
	testcases := []struct {
		values   []int
		expected []int
	}{
		{[]int{}, []int{}},
		{nil, []int{}},
		{[]int{10}, []int{10}},
		{[]int{10, 20}, []int{20, 10}},
		{[]int{10, 20, 30}, []int{30, 20, 10}},
	}
	for _, tc := range testcases {
		reversed := Reverse(tc.values)
		require.Equal(t, tc.expected, reversed)
	}

	src := []rune("+1*23")
	require.Equal(t, "32*1+", string(Reverse(src)))
	require.Equal(t, "+1*23", string(src))
}
