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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessageMarkdown() string {
	return fmt.Sprintf(`

 **bstmap %s**

An ordered key-value map on an unbalanced binary search tree, driven from the shell.

Built with Go %s

# 1. Commands
* **run**: interactive session (default when no command is given)
* **walk** bindings...: build a tree from key[=value] arguments and print a traversal
* **load** FILE: build a tree from a YAML dataset
* **exec** [FILE]: run session commands from a script or stdin
* **bench**: insert and drain many keys, reporting tree height
* **settings**: show or create ~/.bstmap.yaml

# 2. Keys
* Integer keys sort numerically and ahead of other keys
* Other keys sort lexically

# 3. Traversals
* **pre**: node, left, right
* **in**: ascending key order
* **post**: left, right, node
* **level**: breadth-first, root first

# 4. Removal
Removing a key with two children promotes its in-order successor, the smallest key of its right subtree.

%s

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version(), commandReference())
}

func getHelpMessage() string {
	result := markdown.Render(getHelpMessageMarkdown(), 80, 3)
	return string(result)
}
