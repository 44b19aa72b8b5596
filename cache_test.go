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
	"testing"
	"time"

	"github.com/cybrota/bstmap/bst"
	"github.com/patrickmn/go-cache"
)

func TestCacheWalkAndGetCachedWalk(t *testing.T) {
	c := NewWalkCache()

	if got, ok := GetCachedWalk(c, bst.InOrderTraversal); ok {
		t.Errorf("GetCachedWalk(in) = %q before caching; want miss", got)
	}

	CacheWalk(c, bst.InOrderTraversal, "1 2 3")
	if got, ok := GetCachedWalk(c, bst.InOrderTraversal); !ok || got != "1 2 3" {
		t.Errorf("GetCachedWalk(in) = %q, %v; want %q", got, ok, "1 2 3")
	}
	if _, ok := GetCachedWalk(c, bst.PreOrderTraversal); ok {
		t.Errorf("GetCachedWalk(pre) hit an entry cached for in-order")
	}

	InvalidateWalks(c)
	if _, ok := GetCachedWalk(c, bst.InOrderTraversal); ok {
		t.Errorf("GetCachedWalk(in) hit after InvalidateWalks")
	}
}

func TestCacheWalkExpiration(t *testing.T) {
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)

	CacheWalk(c, bst.LevelOrderTraversal, "5 3 8")
	if _, ok := GetCachedWalk(c, bst.LevelOrderTraversal); !ok {
		t.Fatalf("GetCachedWalk(level) missed right after caching")
	}

	time.Sleep(150 * time.Millisecond)

	if got, ok := GetCachedWalk(c, bst.LevelOrderTraversal); ok {
		t.Errorf("After expiration, GetCachedWalk(level) = %q; want miss", got)
	}
}
