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

package main

import (
	"fmt"
	"strings"

	"github.com/cybrota/bstmap/bst"
)

// renderShape draws the tree as an indented pre-order outline. Each child
// is tagged L or R by comparing it with its parent, which pre-order visits
// immediately before the child's subtree.
//
//	5 = five
//	├─L 3 = three
//	└─R 8 = eight
func renderShape(tree *bst.Tree[string, string]) string {
	if tree.IsEmpty() {
		return emptyMarker
	}

	var lines []string
	var ancestors []string
	tree.PreOrder(func(key, value string, depth int) {
		ancestors = append(ancestors[:depth], key)

		label := key
		if value != key {
			label = fmt.Sprintf("%s = %s", key, value)
		}
		if depth == 0 {
			lines = append(lines, label)
			return
		}

		side := "R"
		if compareKeys(key, ancestors[depth-1]) < 0 {
			side = "L"
		}
		lines = append(lines, fmt.Sprintf("%s%s─%s %s", strings.Repeat("│ ", depth-1), branchGlyph(side), side, label))
	})
	return strings.Join(lines, "\n")
}

func branchGlyph(side string) string {
	if side == "L" {
		return "├"
	}
	return "└"
}

// treeHeight is the number of levels, zero for an empty tree.
func treeHeight[K, V any](tree *bst.Tree[K, V]) int {
	if tree.IsEmpty() {
		return 0
	}
	deepest := 0
	tree.LevelOrder(func(_ K, _ V, depth int) {
		deepest = max(deepest, depth)
	})
	return deepest + 1
}
