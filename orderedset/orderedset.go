// Package orderedset provides a generic balanced ordered container, backed by
// github.com/emirpasic/gods/trees/redblacktree, parameterized by a caller-supplied
// comparator.
//
// # Overview
//
// OrderedSet is the shared substrate for the sweep-line engine's event queue and
// status structure. Both need a totally-ordered collection supporting insertion,
// removal, membership search, min/max, and predecessor/successor ("neighbor")
// queries — and, critically, both need that ordering to be re-derivable on demand
// from state outside the set itself (sweep order for the event queue; the current
// sweep-line height for the status structure). The comparator is supplied once at
// construction and may close over such external state.
//
// # Neighbor queries
//
// LeftNeighbor and RightNeighbor walk the red-black tree's parent pointers rather
// than performing an in-order scan, giving O(log n) neighbor lookups instead of the
// O(n) a naive in-order traversal would cost.
package orderedset

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// Comparator returns a negative number if a precedes b, zero if they are
// equivalent, and a positive number if a follows b.
type Comparator[V any] func(a, b V) int

// OrderedSet is a balanced ordered container over values of type V, ordered by a
// Comparator supplied at construction. It is not safe for concurrent use.
type OrderedSet[V any] struct {
	tree *rbt.Tree
	cmp  Comparator[V]
}

// New creates an empty OrderedSet ordered by cmp.
func New[V any](cmp Comparator[V]) *OrderedSet[V] {
	return &OrderedSet[V]{
		tree: rbt.NewWith(func(a, b interface{}) int {
			return cmp(a.(V), b.(V))
		}),
		cmp: cmp,
	}
}

// Len returns the number of elements in the set.
func (s *OrderedSet[V]) Len() int {
	return s.tree.Size()
}

// Insert adds v to the set. If an equivalent element (under the comparator) is
// already present, Insert is a no-op with respect to set membership but still
// replaces the stored value with v — callers relying on value identity rather
// than comparator equality should check Search first.
func (s *OrderedSet[V]) Insert(v V) {
	s.tree.Put(v, struct{}{})
}

// Remove deletes the element equivalent to v from the set. It is a no-op if no
// such element is present.
func (s *OrderedSet[V]) Remove(v V) {
	s.tree.Remove(v)
}

// Search returns the stored value equivalent to v under the comparator, and
// whether one was found.
func (s *OrderedSet[V]) Search(v V) (V, bool) {
	node := s.tree.GetNode(v)
	if node == nil {
		var zero V
		return zero, false
	}
	return node.Key.(V), true
}

// Min returns the smallest element in the set.
func (s *OrderedSet[V]) Min() (V, bool) {
	node := s.tree.Left()
	if node == nil {
		var zero V
		return zero, false
	}
	return node.Key.(V), true
}

// Max returns the largest element in the set.
func (s *OrderedSet[V]) Max() (V, bool) {
	node := s.tree.Right()
	if node == nil {
		var zero V
		return zero, false
	}
	return node.Key.(V), true
}

// LeftNeighbor returns the predecessor of v under the current comparator, i.e.
// the largest stored element strictly less than v. v need not itself be present
// in the set.
func (s *OrderedSet[V]) LeftNeighbor(v V) (V, bool) {
	node := s.tree.GetNode(v)
	if node == nil {
		floor, ok := s.tree.Floor(v)
		if !ok {
			var zero V
			return zero, false
		}
		return floor.Key.(V), true
	}
	pred := predecessor(node)
	if pred == nil {
		var zero V
		return zero, false
	}
	return pred.Key.(V), true
}

// RightNeighbor returns the successor of v under the current comparator, i.e.
// the smallest stored element strictly greater than v. v need not itself be
// present in the set.
func (s *OrderedSet[V]) RightNeighbor(v V) (V, bool) {
	node := s.tree.GetNode(v)
	if node == nil {
		ceil, ok := s.tree.Ceiling(v)
		if !ok {
			var zero V
			return zero, false
		}
		return ceil.Key.(V), true
	}
	succ := successor(node)
	if succ == nil {
		var zero V
		return zero, false
	}
	return succ.Key.(V), true
}

// Difference removes every element of other from the receiver.
func (s *OrderedSet[V]) Difference(other *OrderedSet[V]) {
	other.Ascend(func(v V) bool {
		s.Remove(v)
		return true
	})
}

// Clear removes all elements from the set.
func (s *OrderedSet[V]) Clear() {
	s.tree.Clear()
}

// Ascend calls fn for every element in ascending order, stopping early if fn
// returns false.
func (s *OrderedSet[V]) Ascend(fn func(v V) bool) {
	it := s.tree.Iterator()
	for it.Next() {
		if !fn(it.Key().(V)) {
			return
		}
	}
}

// predecessor returns the in-order predecessor of node by walking the tree's
// parent pointers: O(log n) rather than an O(n) in-order scan.
func predecessor(node *rbt.Node) *rbt.Node {
	if node.Left != nil {
		curr := node.Left
		for curr.Right != nil {
			curr = curr.Right
		}
		return curr
	}
	parent := node.Parent
	curr := node
	for parent != nil && curr == parent.Left {
		curr = parent
		parent = parent.Parent
	}
	return parent
}

// successor returns the in-order successor of node by walking the tree's
// parent pointers: O(log n) rather than an O(n) in-order scan.
func successor(node *rbt.Node) *rbt.Node {
	if node.Right != nil {
		curr := node.Right
		for curr.Left != nil {
			curr = curr.Left
		}
		return curr
	}
	parent := node.Parent
	curr := node
	for parent != nil && curr == parent.Right {
		curr = parent
		parent = parent.Parent
	}
	return parent
}
