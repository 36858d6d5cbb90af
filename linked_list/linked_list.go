// Package linked_list implements the first list problems (last, penultimate,
// k-th element, length, reverse, palindrome) over a singly-linked list.
//
// A list is a *Node pointing at its head. There is no empty list value: New
// returns nil for empty input, and every lookup reports absence with a false
// ok result instead of an error.
package linked_list

import (
	"fmt"
	"strings"

	"github.com/goose-lang/std"
)

type Node[T any] struct {
	elem T
	next *Node[T]
}

// New builds a list holding values in order, or nil if values is empty.
func New[T any](values []T) *Node[T] {
	if len(values) == 0 {
		return nil
	}
	head := &Node[T]{elem: values[0]}
	tail := head
	for _, v := range values[1:] {
		tail.next = &Node[T]{elem: v}
		tail = tail.next
	}
	return head
}

// prepend returns a new list with elem in front of l; l is shared, not copied.
func (l *Node[T]) prepend(elem T) *Node[T] {
	return &Node[T]{elem: elem, next: l}
}

// At returns the element at a 0-based index.
func (l *Node[T]) At(index int) (T, bool) {
	var zero T
	if index < 0 {
		return zero, false
	}
	n := l
	for i := 0; i < index && n != nil; i++ {
		n = n.next
	}
	if n == nil {
		return zero, false
	}
	return n.elem, true
}

func (l *Node[T]) Length() int {
	count := 0
	for n := l; n != nil; n = n.next {
		count++
	}
	return count
}

// Last returns the element of the tail node.
func (l *Node[T]) Last() (T, bool) {
	if l == nil {
		var zero T
		return zero, false
	}
	n := l
	for n.next != nil {
		n = n.next
	}
	return n.elem, true
}

// Penultimate returns the element just before the tail. A single-node list
// has none.
func (l *Node[T]) Penultimate() (T, bool) {
	if l == nil || l.next == nil {
		var zero T
		return zero, false
	}
	n := l
	for n.next.next != nil {
		n = n.next
	}
	return n.elem, true
}

// Reverse returns a new list with the elements of l in reverse order.
//
// l is left untouched: each element is prepended to an accumulator, so the
// result is built entirely from fresh nodes.
func (l *Node[T]) Reverse() *Node[T] {
	if l == nil {
		return nil
	}
	var r *Node[T]
	for n := l; n != nil; n = n.next {
		r = r.prepend(n.elem)
	}
	std.Assert(r != nil)
	return r
}

// Values copies the elements of l into a slice.
func (l *Node[T]) Values() []T {
	values := make([]T, 0, l.Length())
	for n := l; n != nil; n = n.next {
		values = append(values, n.elem)
	}
	return values
}

func (l *Node[T]) String() string {
	var b strings.Builder
	b.WriteString("List with elements: ")
	for n := l; n != nil; n = n.next {
		fmt.Fprint(&b, n.elem)
		if n.next != nil {
			b.WriteString(", ")
		}
	}
	return b.String()
}
