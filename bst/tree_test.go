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
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var scenarioKeys = []int{5, 3, 8, 1, 4, 7, 9}

func scenarioTree() *Tree[int, string] {
	tree := New[int, string]()
	for _, k := range scenarioKeys {
		tree.Insert(k, "v")
	}
	return tree
}

type TreeTestCase struct {
	Name          string
	KeysToInsert  []int
	KeysToDelete  []int
	ExpectedOrder []int // In-order traversal expectation after operations
	ExpectedPre   []int
}

func TestTreeOperations(t *testing.T) {
	testCases := []TreeTestCase{
		{
			Name:          "Scenario",
			KeysToInsert:  scenarioKeys,
			ExpectedOrder: []int{1, 3, 4, 5, 7, 8, 9},
			ExpectedPre:   []int{5, 3, 1, 4, 8, 7, 9},
		},
		{
			Name:          "Two Children Promotes Successor",
			KeysToInsert:  scenarioKeys,
			KeysToDelete:  []int{5},
			ExpectedOrder: []int{1, 3, 4, 7, 8, 9},
			ExpectedPre:   []int{7, 3, 1, 4, 8, 9},
		},
		{
			Name:          "Leaf",
			KeysToInsert:  scenarioKeys,
			KeysToDelete:  []int{1},
			ExpectedOrder: []int{3, 4, 5, 7, 8, 9},
			ExpectedPre:   []int{5, 3, 4, 8, 7, 9},
		},
		{
			Name:          "Only Right Child",
			KeysToInsert:  []int{2, 1, 4, 5},
			KeysToDelete:  []int{4},
			ExpectedOrder: []int{1, 2, 5},
			ExpectedPre:   []int{2, 1, 5},
		},
		{
			Name:          "Only Left Child",
			KeysToInsert:  []int{2, 1, 4, 3},
			KeysToDelete:  []int{4},
			ExpectedOrder: []int{1, 2, 3},
			ExpectedPre:   []int{2, 1, 3},
		},
		{
			Name:          "Absent Key",
			KeysToInsert:  []int{2, 1, 3},
			KeysToDelete:  []int{42},
			ExpectedOrder: []int{1, 2, 3},
			ExpectedPre:   []int{2, 1, 3},
		},
		{
			Name:          "Successor Deep In Right Subtree",
			KeysToInsert:  []int{10, 5, 20, 15, 25, 12, 13},
			KeysToDelete:  []int{10},
			ExpectedOrder: []int{5, 12, 13, 15, 20, 25},
			ExpectedPre:   []int{12, 5, 20, 15, 13, 25},
		},
		{
			Name:          "Remove Everything",
			KeysToInsert:  []int{2, 1, 3},
			KeysToDelete:  []int{2, 1, 3},
			ExpectedOrder: nil,
			ExpectedPre:   nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := New[int, string]()
			for _, key := range tc.KeysToInsert {
				tree.Insert(key, "v")
			}
			for _, key := range tc.KeysToDelete {
				tree.Remove(key)
			}
			if diff := cmp.Diff(tc.ExpectedOrder, tree.Keys(InOrderTraversal)); diff != "" {
				t.Errorf("in-order mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.ExpectedPre, tree.Keys(PreOrderTraversal)); diff != "" {
				t.Errorf("pre-order mismatch (-want +got):\n%s", diff)
			}
			if tree.Size() != len(tc.ExpectedOrder) {
				t.Errorf("Size() = %d; want %d", tree.Size(), len(tc.ExpectedOrder))
			}
			checkInvariants(t, tree)
		})
	}
}

func TestScenario(t *testing.T) {
	tree := scenarioTree()

	if k, ok := tree.Min(); !ok || k != 1 {
		t.Errorf("Min() = %d, %v; want 1, true", k, ok)
	}
	if k, ok := tree.Max(); !ok || k != 9 {
		t.Errorf("Max() = %d, %v; want 9, true", k, ok)
	}

	oldRoot := tree.root
	tree.Remove(5)
	if tree.Size() != 6 {
		t.Errorf("Size() = %d; want 6", tree.Size())
	}
	if tree.root.key != 7 {
		t.Errorf("root key = %d; want 7", tree.root.key)
	}
	if tree.root == oldRoot {
		t.Errorf("root node was reused; want a fresh node at the deletion point")
	}
	if tree.root.left != oldRoot.left {
		t.Errorf("left subtree of the replacement is not the original left subtree")
	}
	if tree.Contain(5) {
		t.Errorf("Contain(5) = true after Remove(5)")
	}
}

func TestEmptyTree(t *testing.T) {
	tree := New[string, int]()

	if tree.Size() != 0 || !tree.IsEmpty() {
		t.Fatalf("new tree: Size() = %d, IsEmpty() = %v", tree.Size(), tree.IsEmpty())
	}
	if _, ok := tree.Min(); ok {
		t.Errorf("Min() reported a key on an empty tree")
	}
	if _, ok := tree.Max(); ok {
		t.Errorf("Max() reported a key on an empty tree")
	}
	if v, ok := tree.Search("anything"); ok || v != 0 {
		t.Errorf("Search() = %d, %v; want 0, false", v, ok)
	}
	if tree.Contain("anything") {
		t.Errorf("Contain() = true on an empty tree")
	}

	tree.RemoveMin()
	tree.RemoveMax()
	tree.Remove("anything")
	if tree.Size() != 0 || tree.root != nil {
		t.Errorf("removals changed an empty tree: Size() = %d", tree.Size())
	}

	for _, order := range Orders() {
		calls := 0
		if err := tree.Walk(order, func(string, int, int) { calls++ }); err != nil {
			t.Fatalf("Walk(%v): %v", order, err)
		}
		if calls != 0 {
			t.Errorf("Walk(%v) visited %d nodes on an empty tree", order, calls)
		}
		if keys := tree.Keys(order); keys != nil {
			t.Errorf("Keys(%v) = %v; want nil", order, keys)
		}
	}
}

func TestInsertOverwrite(t *testing.T) {
	tree := scenarioTree()
	before := tree.root.right

	tree.Insert(8, "eight")
	if tree.Size() != len(scenarioKeys) {
		t.Errorf("Size() = %d after re-insert; want %d", tree.Size(), len(scenarioKeys))
	}
	if v, ok := tree.Search(8); !ok || v != "eight" {
		t.Errorf("Search(8) = %q, %v; want eight, true", v, ok)
	}
	if tree.root.right != before || before.left.key != 7 || before.right.key != 9 {
		t.Errorf("re-insert disturbed the node or its children")
	}
}

func TestRemoveMinMax(t *testing.T) {
	tree := scenarioTree()

	tree.RemoveMin()
	if k, _ := tree.Min(); k != 3 {
		t.Errorf("Min() after RemoveMin = %d; want 3", k)
	}
	tree.RemoveMax()
	if k, _ := tree.Max(); k != 8 {
		t.Errorf("Max() after RemoveMax = %d; want 8", k)
	}
	if tree.Size() != 5 {
		t.Errorf("Size() = %d; want 5", tree.Size())
	}

	single := New[int, int]()
	single.Insert(1, 1)
	single.RemoveMin()
	if _, ok := single.Min(); ok || !single.IsEmpty() {
		t.Errorf("RemoveMin on a single key left a key behind")
	}
	single.Insert(1, 1)
	single.RemoveMax()
	if single.root != nil || single.Size() != 0 {
		t.Errorf("RemoveMax on a single key left a key behind")
	}
}

func TestDrainByRemoveMin(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	tree := New[int, int]()
	inserted := map[int]bool{}
	for range 500 {
		k := r.IntN(1000)
		tree.Insert(k, k)
		inserted[k] = true
	}
	if tree.Size() != len(inserted) {
		t.Fatalf("Size() = %d; want %d distinct keys", tree.Size(), len(inserted))
	}

	var drained []int
	for !tree.IsEmpty() {
		k, ok := tree.Min()
		if !ok {
			t.Fatalf("Min() reported absence with Size() = %d", tree.Size())
		}
		drained = append(drained, k)
		size := tree.Size()
		tree.RemoveMin()
		if tree.Size() != size-1 {
			t.Fatalf("RemoveMin changed Size() from %d to %d", size, tree.Size())
		}
	}
	if !slices.IsSorted(drained) || len(drained) != len(inserted) {
		t.Errorf("drained %d keys, sorted = %v", len(drained), slices.IsSorted(drained))
	}
	if tree.root != nil {
		t.Errorf("root still set after draining")
	}
}

func TestRandomInsertRemove(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	tree := New[int, int]()
	want := map[int]int{}

	for i := range 2000 {
		k := r.IntN(200)
		if r.IntN(3) == 0 {
			_, present := want[k]
			size := tree.Size()
			tree.Remove(k)
			delete(want, k)
			if tree.Contain(k) {
				t.Fatalf("step %d: Contain(%d) after Remove", i, k)
			}
			if present && tree.Size() != size-1 || !present && tree.Size() != size {
				t.Fatalf("step %d: Remove(%d) changed Size() from %d to %d (present=%v)", i, k, size, tree.Size(), present)
			}
		} else {
			tree.Insert(k, i)
			want[k] = i
		}
	}

	for k, v := range want {
		if got, ok := tree.Search(k); !ok || got != v {
			t.Errorf("Search(%d) = %d, %v; want %d, true", k, got, ok, v)
		}
	}
	checkInvariants(t, tree)
}

func TestNewFunc(t *testing.T) {
	tree := NewFunc[string, int](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	tree.Insert("b", 1)
	tree.Insert("A", 2)
	tree.Insert("B", 3)

	if tree.Size() != 2 {
		t.Errorf("Size() = %d; want 2", tree.Size())
	}
	if v, _ := tree.Search("b"); v != 3 {
		t.Errorf("Search(b) = %d; want 3", v)
	}
	if diff := cmp.Diff([]string{"A", "b"}, tree.Keys(InOrderTraversal)); diff != "" {
		t.Errorf("in-order mismatch (-want +got):\n%s", diff)
	}
}

func TestDegenerateHeight(t *testing.T) {
	tree := New[int, int]()
	for i := range 100 {
		tree.Insert(i, i)
	}
	deepest := 0
	tree.LevelOrder(func(_, _ int, depth int) {
		deepest = max(deepest, depth)
	})
	if deepest != 99 {
		t.Errorf("deepest level = %d; want 99 for ascending inserts", deepest)
	}
}

// checkInvariants verifies ordering and that count matches the reachable nodes.
func checkInvariants[V any](t *testing.T, tree *Tree[int, V]) {
	t.Helper()
	keys := tree.Keys(InOrderTraversal)
	if len(keys) != tree.Size() {
		t.Errorf("in-order visited %d nodes; Size() = %d", len(keys), tree.Size())
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Errorf("in-order not strictly ascending at %d: %v", i, keys)
			break
		}
	}
	if (tree.root == nil) != (tree.Size() == 0) {
		t.Errorf("root presence disagrees with Size() = %d", tree.Size())
	}
}
