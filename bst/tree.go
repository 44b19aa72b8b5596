// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bst implements an in-memory ordered map backed by an unbalanced
// binary search tree.
//
// The tree never rebalances, so its height depends only on insertion order.
// Monotonic input degenerates it into a list of height n. Every operation
// except LevelOrder recurses once per level, so very deep trees need a
// correspondingly deep goroutine stack.
//
// A Tree is not safe for concurrent use.
package bst

import "cmp"

// Tree is an ordered map from K to V. Create one with New or NewFunc; the
// zero value has no ordering and is not usable.
type Tree[K, V any] struct {
	root    *node[K, V]
	count   int
	compare func(a, b K) int
}

// New returns an empty tree ordered by K's natural ordering.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{compare: cmp.Compare[K]}
}

// NewFunc returns an empty tree ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when
// a > b. compare must be a total order; the tree does not detect violations.
func NewFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	return &Tree[K, V]{compare: compare}
}

// Size returns the number of keys in the tree.
func (tree *Tree[K, V]) Size() int {
	return tree.count
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree[K, V]) IsEmpty() bool {
	return tree.count == 0
}

// Insert binds key to value. An existing key keeps its node and only has
// its value replaced.
func (tree *Tree[K, V]) Insert(key K, value V) {
	tree.root = tree.insertRecursive(tree.root, key, value)
}

func (tree *Tree[K, V]) insertRecursive(n *node[K, V], key K, value V) *node[K, V] {
	if n == nil {
		tree.count++
		return newNode(key, value)
	}

	c := tree.compare(key, n.key)
	if c == 0 {
		n.value = value
	} else if c > 0 {
		n.right = tree.insertRecursive(n.right, key, value)
	} else {
		n.left = tree.insertRecursive(n.left, key, value)
	}
	return n
}

// Contain reports whether key is present.
func (tree *Tree[K, V]) Contain(key K) bool {
	return tree.find(tree.root, key) != nil
}

// Search returns the value bound to key. The boolean is false, and the
// value is V's zero value, when key is absent.
func (tree *Tree[K, V]) Search(key K) (V, bool) {
	if n := tree.find(tree.root, key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

func (tree *Tree[K, V]) find(n *node[K, V], key K) *node[K, V] {
	if n == nil {
		return nil
	}

	c := tree.compare(key, n.key)
	if c < 0 {
		return tree.find(n.left, key)
	} else if c > 0 {
		return tree.find(n.right, key)
	}
	return n
}

// Min returns the smallest key, or false if the tree is empty.
func (tree *Tree[K, V]) Min() (K, bool) {
	if tree.root == nil {
		var zero K
		return zero, false
	}
	return findMin(tree.root).key, true
}

// Max returns the largest key, or false if the tree is empty.
func (tree *Tree[K, V]) Max() (K, bool) {
	if tree.root == nil {
		var zero K
		return zero, false
	}
	return findMax(tree.root).key, true
}

func findMin[K, V any](n *node[K, V]) *node[K, V] {
	if n.left != nil {
		return findMin(n.left)
	}
	return n
}

func findMax[K, V any](n *node[K, V]) *node[K, V] {
	if n.right != nil {
		return findMax(n.right)
	}
	return n
}

// RemoveMin deletes the smallest key. It does nothing on an empty tree.
func (tree *Tree[K, V]) RemoveMin() {
	if tree.root != nil {
		tree.root = tree.removeMinRecursive(tree.root)
	}
}

// removeMinRecursive expects a non-nil subtree.
func (tree *Tree[K, V]) removeMinRecursive(n *node[K, V]) *node[K, V] {
	if n.left == nil {
		tree.count--
		return n.right
	}
	n.left = tree.removeMinRecursive(n.left)
	return n
}

// RemoveMax deletes the largest key. It does nothing on an empty tree.
func (tree *Tree[K, V]) RemoveMax() {
	if tree.root != nil {
		tree.root = tree.removeMaxRecursive(tree.root)
	}
}

func (tree *Tree[K, V]) removeMaxRecursive(n *node[K, V]) *node[K, V] {
	if n.right == nil {
		tree.count--
		return n.left
	}
	n.right = tree.removeMaxRecursive(n.right)
	return n
}

// Remove deletes key if it is present, using Hibbard deletion.
//
// A node with two children is replaced by a new node holding its in-order
// successor (the minimum of its right subtree). The predecessor is never
// used, so the resulting shape is deterministic.
func (tree *Tree[K, V]) Remove(key K) {
	tree.root = tree.removeRecursive(tree.root, key)
}

func (tree *Tree[K, V]) removeRecursive(n *node[K, V], key K) *node[K, V] {
	if n == nil {
		return nil // Key not found
	}

	c := tree.compare(key, n.key)
	if c < 0 {
		n.left = tree.removeRecursive(n.left, key)
		return n
	} else if c > 0 {
		n.right = tree.removeRecursive(n.right, key)
		return n
	}

	if n.left == nil {
		tree.count--
		return n.right
	}
	if n.right == nil {
		tree.count--
		return n.left
	}

	// removeMinRecursive accounts for the one node that leaves the tree.
	successor := copyNode(findMin(n.right))
	successor.right = tree.removeMinRecursive(n.right)
	successor.left = n.left
	return successor
}
