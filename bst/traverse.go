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

package bst

import (
	"errors"
	"fmt"
	"strings"
)

// Visitor is called once per node during a traversal. depth is 0 at the root.
type Visitor[K, V any] func(key K, value V, depth int)

// Order selects a traversal.
type Order int

const (
	PreOrderTraversal Order = iota
	InOrderTraversal
	PostOrderTraversal
	LevelOrderTraversal
)

var ErrUnknownOrder = errors.New("unknown traversal order")

var orderNames = map[Order]string{
	PreOrderTraversal:   "pre",
	InOrderTraversal:    "in",
	PostOrderTraversal:  "post",
	LevelOrderTraversal: "level",
}

// Orders returns every traversal order.
func Orders() []Order {
	return []Order{PreOrderTraversal, InOrderTraversal, PostOrderTraversal, LevelOrderTraversal}
}

func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder accepts "pre", "in", "post" and "level", their "...order"
// long forms, and "bfs" for level order. Case is ignored.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pre", "preorder", "pre-order":
		return PreOrderTraversal, nil
	case "in", "inorder", "in-order":
		return InOrderTraversal, nil
	case "post", "postorder", "post-order":
		return PostOrderTraversal, nil
	case "level", "levelorder", "level-order", "bfs":
		return LevelOrderTraversal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// PreOrder visits each node before its left and then its right subtree.
func (tree *Tree[K, V]) PreOrder(visit Visitor[K, V]) {
	preOrder(tree.root, 0, visit)
}

func preOrder[K, V any](n *node[K, V], depth int, visit Visitor[K, V]) {
	if n != nil {
		visit(n.key, n.value, depth)
		preOrder(n.left, depth+1, visit)
		preOrder(n.right, depth+1, visit)
	}
}

// InOrder visits keys in ascending order.
func (tree *Tree[K, V]) InOrder(visit Visitor[K, V]) {
	inOrder(tree.root, 0, visit)
}

func inOrder[K, V any](n *node[K, V], depth int, visit Visitor[K, V]) {
	if n != nil {
		inOrder(n.left, depth+1, visit)
		visit(n.key, n.value, depth)
		inOrder(n.right, depth+1, visit)
	}
}

// PostOrder visits both subtrees of a node before the node itself.
func (tree *Tree[K, V]) PostOrder(visit Visitor[K, V]) {
	postOrder(tree.root, 0, visit)
}

func postOrder[K, V any](n *node[K, V], depth int, visit Visitor[K, V]) {
	if n != nil {
		postOrder(n.left, depth+1, visit)
		postOrder(n.right, depth+1, visit)
		visit(n.key, n.value, depth)
	}
}

type pending[K, V any] struct {
	n     *node[K, V]
	depth int
}

// LevelOrder visits the tree breadth-first, each level from left to right.
func (tree *Tree[K, V]) LevelOrder(visit Visitor[K, V]) {
	if tree.root == nil {
		return
	}

	queue := []pending[K, V]{{n: tree.root}}
	for len(queue) > 0 {
		p := queue[0]
		queue[0] = pending[K, V]{}
		queue = queue[1:]

		visit(p.n.key, p.n.value, p.depth)
		if p.n.left != nil {
			queue = append(queue, pending[K, V]{n: p.n.left, depth: p.depth + 1})
		}
		if p.n.right != nil {
			queue = append(queue, pending[K, V]{n: p.n.right, depth: p.depth + 1})
		}
	}
}

// Walk runs the traversal selected by order.
func (tree *Tree[K, V]) Walk(order Order, visit Visitor[K, V]) error {
	switch order {
	case PreOrderTraversal:
		tree.PreOrder(visit)
	case InOrderTraversal:
		tree.InOrder(visit)
	case PostOrderTraversal:
		tree.PostOrder(visit)
	case LevelOrderTraversal:
		tree.LevelOrder(visit)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownOrder, order)
	}
	return nil
}

// Keys collects the keys visited by order. It returns nil for an unknown
// order or an empty tree.
func (tree *Tree[K, V]) Keys(order Order) []K {
	var keys []K
	if tree.count > 0 {
		keys = make([]K, 0, tree.count)
	}
	if err := tree.Walk(order, func(key K, _ V, _ int) {
		keys = append(keys, key)
	}); err != nil {
		return nil
	}
	if len(keys) == 0 {
		return nil
	}
	return keys
}
