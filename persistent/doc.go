// Package persistent implements a singly linked list featuring persistence,
// that is, whose values don't change on any operation; instead, new,
// independent lists are derived from them when needed, sharing the nodes
// they have in common.
//
// Every node carries a count of the handles and nodes pointing at it. A List
// owns one share of its first node, and Release gives it back, freeing every
// node nobody else holds. Counts are plain integers: lists are not safe for
// concurrent use without external locking.
package persistent
