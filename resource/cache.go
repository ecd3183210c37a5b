// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package resource

import (
	"context"

	"github.com/google/glstate/core/data/id"
	lru "github.com/hashicorp/golang-lru"
)

// Cache is a Resolver that remembers the most recent successful lookups of
// another Resolver.
type Cache struct {
	inner Resolver
	ids   *lru.Cache
	live  *lru.Cache
}

// Cached wraps r with an LRU cache holding up to size entries per direction.
// Failed lookups are never cached.
func Cached(r Resolver, size int) (*Cache, error) {
	ids, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	live, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{inner: r, ids: ids, live: live}, nil
}

// ID implements Resolver.
func (c *Cache) ID(ctx context.Context, k Kind, h Handle) id.ID {
	if h == 0 {
		return id.ID{}
	}
	key := handleKey{k, h}
	if v, ok := c.ids.Get(key); ok {
		return v.(id.ID)
	}
	i := c.inner.ID(ctx, k, h)
	if i.IsValid() {
		c.ids.Add(key, i)
	}
	return i
}

// Live implements Resolver.
func (c *Cache) Live(ctx context.Context, k Kind, i id.ID) Handle {
	if !i.IsValid() {
		return 0
	}
	key := idKey{k, i}
	if v, ok := c.live.Get(key); ok {
		return v.(Handle)
	}
	h := c.inner.Live(ctx, k, i)
	if h != 0 {
		c.live.Add(key, h)
	}
	return h
}

// Purge drops every cached entry. Call it after the underlying mapping
// changes, for example when objects are deleted.
func (c *Cache) Purge() {
	c.ids.Purge()
	c.live.Purge()
}
