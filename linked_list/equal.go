package linked_list

// Equal reports whether a and b have the same length and equal elements at
// every position.
func Equal[T comparable](a, b *Node[T]) bool {
	for a != nil && b != nil {
		if a.elem != b.elem {
			return false
		}
		a, b = a.next, b.next
	}
	// equal only if both ran out together
	return a == nil && b == nil
}

// IsPalindrome reports whether l equals its own reversal.
func IsPalindrome[T comparable](l *Node[T]) bool {
	return Equal(l, l.Reverse())
}
