package persistent

import (
	"fmt"
	"iter"
	"strings"
	"sync/atomic"
)

type node[T any] struct {
	elem T
	next *node[T]
	refs int
}

var liveNodes atomic.Int64

// LiveNodes reports how many nodes, across all lists, have been allocated and
// not yet freed by Release.
func LiveNodes() int64 {
	return liveNodes.Load()
}

func newNode[T any](x T, next *node[T]) *node[T] {
	liveNodes.Add(1)
	return &node[T]{elem: x, next: next, refs: 1}
}

func (n *node[T]) share() *node[T] {
	if n != nil {
		n.refs++
	}
	return n
}

func (n *node[T]) free() {
	var zero T
	n.elem = zero
	n.next = nil
	liveNodes.Add(-1)
}

// List is a handle to a chain of shared nodes. The zero value and a nil *List
// are both empty.
type List[T any] struct {
	head *node[T]
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// NewList returns a list holding items in order, so that items[0] is its head.
func NewList[T any](items ...T) *List[T] {
	var head *node[T]
	for i := len(items) - 1; i >= 0; i-- {
		head = newNode(items[i], head)
	}
	return &List[T]{head}
}

func (l *List[T]) first() *node[T] {
	if l == nil {
		return nil
	}
	return l.head
}

func (l *List[T]) IsEmpty() bool {
	return l.first() == nil
}

// Head returns a copy of the first element.
func (l *List[T]) Head() (T, bool) {
	n := l.first()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.elem, true
}

// Prepend returns a new list with x in front of l. l is left untouched.
func (l *List[T]) Prepend(x T) *List[T] {
	return &List[T]{newNode(x, l.first().share())}
}

// Tail returns the list after the head. The tail of an empty list is empty.
func (l *List[T]) Tail() *List[T] {
	n := l.first()
	if n == nil {
		return New[T]()
	}
	return &List[T]{n.next.share()}
}

// Clone returns another handle to the same nodes. Each handle must be
// released on its own.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{l.first().share()}
}

func (l *List[T]) Len() int {
	i := 0
	for n := l.first(); n != nil; n = n.next {
		i++
	}
	return i
}

// Release gives back this handle's share of its nodes and leaves it empty.
// Nodes are freed front to back until one is found that is still shared;
// that node and everything after it stay alive for their other owners.
// Calling Release again is a no-op.
func (l *List[T]) Release() {
	if l == nil {
		return
	}
	n := l.head
	l.head = nil
	for n != nil {
		n.refs--
		if n.refs > 0 {
			return
		}
		next := n.next
		n.free()
		n = next
	}
}

// Iter walks the elements of a list from head to tail. It must not be used
// after the list it came from has been released.
type Iter[T any] struct {
	next *node[T]
}

func (l *List[T]) Iter() *Iter[T] {
	return &Iter[T]{l.first()}
}

func (it *Iter[T]) Next() (T, bool) {
	n := it.next
	if n == nil {
		var zero T
		return zero, false
	}
	it.next = n.next
	return n.elem, true
}

// All returns the elements as a sequence for use with range.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		for x, ok := it.Next(); ok; x, ok = it.Next() {
			if !yield(x) {
				return
			}
		}
	}
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteString("(")
	it := l.Iter()
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		fmt.Fprint(&b, x)
		if it.next != nil {
			b.WriteString(" ")
		}
	}
	b.WriteString(")")
	return b.String()
}
