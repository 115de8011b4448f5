// Package stack implements a bounded, array-backed LIFO container.
//
// The capacity is fixed at construction and the backing array never grows.
// Pushing onto a full stack and popping or peeking an empty one are
// programmer errors reported through the injected diag.Reporter.
package stack

import "github.com/pavanmanishd/framealloc/diag"

// Stack is a fixed-capacity last-in-first-out container.
type Stack[T any] struct {
	elems []T
	head  int
	rep   diag.Reporter
}

// New creates a stack holding at most capacity elements. Violations are
// sent to r; a nil r panics.
func New[T any](capacity int, r diag.Reporter) *Stack[T] {
	r = diag.OrDefault(r)
	diag.Check(r, capacity > 0, "stack: capacity must be positive, got %d", capacity)
	return &Stack[T]{
		elems: make([]T, capacity),
		rep:   r,
	}
}

// Push places v on top.
func (s *Stack[T]) Push(v T) {
	diag.Check(s.rep, !s.IsFull(), "stack: push onto full stack (capacity %d)", len(s.elems))
	s.elems[s.head] = v
	s.head++
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() T {
	diag.Check(s.rep, !s.IsEmpty(), "stack: pop from empty stack")
	s.head--
	v := s.elems[s.head]
	var zero T
	s.elems[s.head] = zero
	return v
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() T {
	diag.Check(s.rep, !s.IsEmpty(), "stack: peek at empty stack")
	return s.elems[s.head-1]
}

// Clear drops every element.
func (s *Stack[T]) Clear() {
	clear(s.elems[:s.head])
	s.head = 0
}

// Each calls fn for every element from top to bottom until fn returns false.
func (s *Stack[T]) Each(fn func(T) bool) {
	for i := s.head - 1; i >= 0; i-- {
		if !fn(s.elems[i]) {
			return
		}
	}
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return s.head == 0 }

// IsFull reports whether Push would overflow.
func (s *Stack[T]) IsFull() bool { return s.head == len(s.elems) }

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return s.head }

// Cap returns the fixed capacity.
func (s *Stack[T]) Cap() int { return len(s.elems) }
