// Package slices has helpers for using slices as stacks.
package slices

// Pop removes the last element of s. ok is false if s is empty.
func Pop[E any, S ~[]E](s S) (e E, rest S, ok bool) {
	if len(s) == 0 {
		return e, s, false
	}
	return s[len(s)-1], s[:len(s)-1], true
}

// Last returns the last element of s without removing it.
func Last[E any, S ~[]E](s S) (e E, ok bool) {
	if len(s) == 0 {
		return e, false
	}
	return s[len(s)-1], true
}
