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

package resource_test

import (
	"context"
	"testing"

	"github.com/google/glstate/core/assert"
	"github.com/google/glstate/core/data/id"
	"github.com/google/glstate/core/log"
	"github.com/google/glstate/resource"
)

func TestManagerTrack(t *testing.T) {
	ctx := log.Testing(t)
	m := resource.NewManager()

	tex := m.Track(resource.Texture, 5)
	assert.For(ctx, "tracked id").That(tex.IsValid()).Equals(true)
	assert.For(ctx, "track is stable").That(m.Track(resource.Texture, 5)).Equals(tex)
	assert.For(ctx, "kinds are separate").That(m.Track(resource.Buffer, 5)).NotEquals(tex)

	assert.For(ctx, "id").That(m.ID(ctx, resource.Texture, 5)).Equals(tex)
	assert.For(ctx, "live").That(m.Live(ctx, resource.Texture, tex)).Equals(resource.Handle(5))
}

func TestManagerNull(t *testing.T) {
	ctx := log.Testing(t)
	m := resource.NewManager()
	assert.For(ctx, "track 0").That(m.Track(resource.Program, 0)).Equals(id.ID{})
	assert.For(ctx, "id of 0").That(m.ID(ctx, resource.Program, 0)).Equals(id.ID{})
	assert.For(ctx, "live of null").That(m.Live(ctx, resource.Program, id.ID{})).Equals(resource.Handle(0))
}

func TestManagerMiss(t *testing.T) {
	ctx := log.Testing(t)
	m := resource.NewManager()
	assert.For(ctx, "unknown handle").That(m.ID(ctx, resource.Sampler, 9)).Equals(id.ID{})
	assert.For(ctx, "unknown id").That(m.Live(ctx, resource.Sampler, id.OfString("x"))).Equals(resource.Handle(0))
}

func TestManagerBindAndForget(t *testing.T) {
	ctx := log.Testing(t)
	m := resource.NewManager()
	recorded := id.OfString("recorded texture")

	m.Bind(resource.Texture, recorded, 40)
	assert.For(ctx, "bound live").That(m.Live(ctx, resource.Texture, recorded)).Equals(resource.Handle(40))
	assert.For(ctx, "bound id").That(m.ID(ctx, resource.Texture, 40)).Equals(recorded)

	m.Bind(resource.Texture, recorded, 41)
	assert.For(ctx, "rebound live").That(m.Live(ctx, resource.Texture, recorded)).Equals(resource.Handle(41))
	assert.For(ctx, "old handle dropped").That(m.ID(ctx, resource.Texture, 40)).Equals(id.ID{})

	m.Forget(resource.Texture, 41)
	assert.For(ctx, "forgotten").That(m.Live(ctx, resource.Texture, recorded)).Equals(resource.Handle(0))
}

type countingResolver struct {
	resource.Resolver
	ids, lives int
}

func (c *countingResolver) ID(ctx context.Context, k resource.Kind, h resource.Handle) id.ID {
	c.ids++
	return c.Resolver.ID(ctx, k, h)
}

func (c *countingResolver) Live(ctx context.Context, k resource.Kind, i id.ID) resource.Handle {
	c.lives++
	return c.Resolver.Live(ctx, k, i)
}

func TestCache(t *testing.T) {
	ctx := log.Testing(t)
	m := resource.NewManager()
	buf := m.Track(resource.Buffer, 3)
	inner := &countingResolver{Resolver: m}
	c, err := resource.Cached(inner, 16)
	assert.For(ctx, "cached").ThatError(err).Succeeded()

	for i := 0; i < 3; i++ {
		assert.For(ctx, "id").That(c.ID(ctx, resource.Buffer, 3)).Equals(buf)
		assert.For(ctx, "live").That(c.Live(ctx, resource.Buffer, buf)).Equals(resource.Handle(3))
	}
	assert.For(ctx, "id lookups").That(inner.ids).Equals(1)
	assert.For(ctx, "live lookups").That(inner.lives).Equals(1)

	c.ID(ctx, resource.Buffer, 0)
	assert.For(ctx, "null is not resolved").That(inner.ids).Equals(1)

	c.ID(ctx, resource.Buffer, 99)
	c.ID(ctx, resource.Buffer, 99)
	assert.For(ctx, "misses are not cached").That(inner.ids).Equals(3)

	c.Purge()
	c.ID(ctx, resource.Buffer, 3)
	assert.For(ctx, "purged").That(inner.ids).Equals(4)
}

func TestCachedBadSize(t *testing.T) {
	ctx := log.Testing(t)
	_, err := resource.Cached(resource.NewManager(), 0)
	assert.For(ctx, "zero size").ThatError(err).Failed()
}

func TestOffline(t *testing.T) {
	ctx := log.Testing(t)
	o := resource.NewOffline()
	a, b := id.OfString("a"), id.OfString("b")

	assert.For(ctx, "first").That(o.Live(ctx, resource.Texture, a)).Equals(resource.Handle(1))
	assert.For(ctx, "second").That(o.Live(ctx, resource.Texture, b)).Equals(resource.Handle(2))
	assert.For(ctx, "repeat").That(o.Live(ctx, resource.Texture, a)).Equals(resource.Handle(1))
	assert.For(ctx, "other kind").That(o.Live(ctx, resource.Buffer, b)).Equals(resource.Handle(1))
	assert.For(ctx, "null").That(o.Live(ctx, resource.Buffer, id.ID{})).Equals(resource.Handle(0))
	assert.For(ctx, "reverse").That(o.ID(ctx, resource.Texture, 2)).Equals(b)

	assert.For(ctx, "entries").ThatSlice(o.Entries()).Equals([]resource.Entry{
		{Kind: resource.Texture, ID: a, Handle: 1},
		{Kind: resource.Texture, ID: b, Handle: 2},
		{Kind: resource.Buffer, ID: b, Handle: 1},
	})
}
