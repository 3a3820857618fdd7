// Package seq renders and collects anything that can be walked in order.
package seq

import (
	"fmt"
	"iter"
	"strings"
)

type Seq[T any] interface {
	All() iter.Seq[T]
}

func Count[T any](s Seq[T]) int {
	i := 0
	for range s.All() {
		i++
	}
	return i
}

// Format renders the elements of s separated by spaces between start and end.
func Format[T any](s Seq[T], start string, end string) string {
	var b strings.Builder
	b.WriteString(start)
	first := true
	for x := range s.All() {
		if !first {
			b.WriteString(" ")
		}
		first = false
		fmt.Fprint(&b, x)
	}
	b.WriteString(end)
	return b.String()
}

func Collect[T any](s Seq[T]) []T {
	xs := []T{}
	for x := range s.All() {
		xs = append(xs, x)
	}
	return xs
}

// Take yields at most the first n elements of s.
func Take[T any](n int, s Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for x := range s.All() {
			if !yield(x) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}

// Map yields f applied to each element of s.
func Map[T, U any](f func(T) U, s Seq[T]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for x := range s.All() {
			if !yield(f(x)) {
				return
			}
		}
	}
}
