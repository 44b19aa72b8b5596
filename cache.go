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
	"time"

	"github.com/cybrota/bstmap/bst"
	"github.com/patrickmn/go-cache"
)

const (
	// Rendered traversals stay valid until the tree changes; expiry only
	// bounds memory for long idle sessions.
	walkCacheExpiration = 30 * time.Minute
	walkCacheCleanup    = 5 * time.Minute
)

// NewWalkCache creates the memo used for rendered traversals.
func NewWalkCache() *cache.Cache {
	return cache.New(walkCacheExpiration, walkCacheCleanup)
}

func CacheWalk(c *cache.Cache, order bst.Order, rendered string) {
	c.Set(order.String(), rendered, cache.DefaultExpiration)
}

func GetCachedWalk(c *cache.Cache, order bst.Order) (string, bool) {
	val, ok := c.Get(order.String())
	if !ok {
		return "", false
	}
	return val.(string), true
}

// InvalidateWalks drops every memoized traversal.
func InvalidateWalks(c *cache.Cache) {
	c.Flush()
}
