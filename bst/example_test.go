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

package bst_test

import (
	"fmt"

	"github.com/cybrota/bstmap/bst"
)

func Example() {
	tree := bst.New[int, string]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(k, fmt.Sprint("v", k))
	}

	fmt.Println(tree.Keys(bst.InOrderTraversal))
	tree.Remove(5)
	fmt.Println(tree.Keys(bst.PreOrderTraversal))

	if _, ok := tree.Search(5); !ok {
		fmt.Println("5 is gone")
	}
	// Output:
	// [1 3 4 5 7 8 9]
	// [7 3 1 4 8 9]
	// 5 is gone
}
