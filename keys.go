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
	"cmp"
	"strconv"
	"strings"

	"github.com/cybrota/bstmap/bst"
)

// compareKeys orders integer keys numerically ahead of all other keys,
// which are ordered lexically. "10" sorts after "9" but before "apple".
func compareKeys(a, b string) int {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)

	switch {
	case errA == nil && errB == nil:
		if c := cmp.Compare(na, nb); c != 0 {
			return c
		}
		// "07" and "7" are distinct keys with the same number.
		return strings.Compare(a, b)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}

func newKeyTree() *bst.Tree[string, string] {
	return bst.NewFunc[string, string](compareKeys)
}

// parseBinding splits "key=value". A bare key is bound to itself.
func parseBinding(arg string) (key, value string) {
	key, value, found := strings.Cut(arg, "=")
	if !found {
		return arg, arg
	}
	return key, value
}
