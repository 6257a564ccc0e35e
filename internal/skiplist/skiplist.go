// Package skiplist implements a generic ordered map with O(log n) expected
// insert, delete and lookup, plus O(1) predecessor/successor traversal via a
// doubly-linked level-0 chain.
//
// The shape follows the classic randomized skip list (Pugh): each node owns
// a random tower of forward pointers, with level-0 acting as a plain sorted
// linked list. A maintained tail pointer gives O(1) access to the
// maximum key without a full traversal, which the ordered structures built
// on top of this package rely on.
package skiplist

import (
	"cmp"
	"math/rand"
)

const (
	maxLevel = 24
	p        = 0.5
)

// Node is one entry in the list. The forward tower is unexported; callers
// navigate in key order via Next and Prev.
type Node[K cmp.Ordered, V any] struct {
	Key   K
	Value V

	forward []*Node[K, V]
	back    *Node[K, V]
	isHead  bool
}

// Next returns the node with the next-larger key, or nil at the end of the
// list.
func (n *Node[K, V]) Next() *Node[K, V] {
	if n == nil {
		return nil
	}
	return n.forward[0]
}

// Prev returns the node with the next-smaller key, or nil at the start of
// the list.
func (n *Node[K, V]) Prev() *Node[K, V] {
	if n == nil || n.back == nil || n.back.isHead {
		return nil
	}
	return n.back
}

// List is a skip list keyed by K, ordered by the standard cmp.Ordered
// comparison.
type List[K cmp.Ordered, V any] struct {
	head  *Node[K, V]
	tail  *Node[K, V]
	level int
	size  int
}

// New returns an empty list.
func New[K cmp.Ordered, V any]() *List[K, V] {
	return &List[K, V]{
		head: &Node[K, V]{
			forward: make([]*Node[K, V], maxLevel),
			isHead:  true,
		},
		level: 1,
	}
}

// Len returns the number of keys currently stored.
func (l *List[K, V]) Len() int { return l.size }

// Max returns the node with the greatest key, or nil if the list is empty.
// O(1) via the maintained tail pointer.
func (l *List[K, V]) Max() *Node[K, V] { return l.tail }

// Min returns the node with the smallest key, or nil if the list is empty.
func (l *List[K, V]) Min() *Node[K, V] {
	if l.size == 0 {
		return nil
	}
	return l.head.forward[0]
}

// randomLevel produces a geometrically-distributed tower height in [1, maxLevel].
func randomLevel() int {
	lvl := 1
	for lvl < maxLevel && rand.Float64() < p {
		lvl++
	}
	return lvl
}

// locate walks down from the top level, recording the last node at each
// level that precedes key. update[0].forward[0] is the first candidate node
// whose key may equal key.
func (l *List[K, V]) locate(key K) (update [maxLevel]*Node[K, V]) {
	cur := l.head
	for lvl := l.level - 1; lvl >= 0; lvl-- {
		for cur.forward[lvl] != nil && cur.forward[lvl].Key < key {
			cur = cur.forward[lvl]
		}
		update[lvl] = cur
	}
	return update
}

// Get returns the value stored under key, if present.
func (l *List[K, V]) Get(key K) (V, bool) {
	update := l.locate(key)
	cand := update[0].forward[0]
	if cand != nil && cand.Key == key {
		return cand.Value, true
	}
	var zero V
	return zero, false
}

// Find returns the node stored under key, if present, giving callers access
// to Prev/Next traversal from that point.
func (l *List[K, V]) Find(key K) *Node[K, V] {
	update := l.locate(key)
	cand := update[0].forward[0]
	if cand != nil && cand.Key == key {
		return cand
	}
	return nil
}

// Upsert inserts key/value, or overwrites the value if key is already
// present. Returns the node and whether it already existed.
func (l *List[K, V]) Upsert(key K, value V) (*Node[K, V], bool) {
	update := l.locate(key)
	cand := update[0].forward[0]
	if cand != nil && cand.Key == key {
		cand.Value = value
		return cand, true
	}

	lvl := randomLevel()
	if lvl > l.level {
		for i := l.level; i < lvl; i++ {
			update[i] = l.head
		}
		l.level = lvl
	}

	n := &Node[K, V]{
		Key:     key,
		Value:   value,
		forward: make([]*Node[K, V], lvl),
		back:    update[0],
	}
	for i := 0; i < lvl; i++ {
		n.forward[i] = update[i].forward[i]
		update[i].forward[i] = n
	}
	if n.forward[0] != nil {
		n.forward[0].back = n
	} else {
		l.tail = n
	}
	l.size++
	return n, false
}

// Delete removes key from the list. Returns the removed value and whether
// it was present.
func (l *List[K, V]) Delete(key K) (V, bool) {
	update := l.locate(key)
	target := update[0].forward[0]
	if target == nil || target.Key != key {
		var zero V
		return zero, false
	}

	for i := 0; i < l.level; i++ {
		if update[i].forward[i] != target {
			continue
		}
		update[i].forward[i] = target.forward[i]
	}
	if target.forward[0] != nil {
		target.forward[0].back = target.back
	} else {
		l.tail = target.back
		if l.tail != nil && l.tail.isHead {
			l.tail = nil
		}
	}
	for l.level > 1 && l.head.forward[l.level-1] == nil {
		l.level--
	}
	l.size--
	return target.Value, true
}
