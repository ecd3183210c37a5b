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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/glstate/capture"
	"github.com/google/glstate/core/assert"
	"github.com/google/glstate/core/data/id"
	"github.com/google/glstate/core/log"
	"github.com/google/glstate/gles/glstate"
	"github.com/google/glstate/resource"
)

type recorder struct{ *resource.Manager }

func (r recorder) ID(ctx context.Context, k resource.Kind, h resource.Handle) id.ID {
	return r.Track(k, h)
}

func writeChunk(ctx context.Context, t *testing.T) string {
	s := &glstate.Snapshot{}
	s.Tex2D[0] = 12
	s.Program = 3
	s.LineWidth = 4
	buf := &bytes.Buffer{}
	err := capture.Write(ctx, buf, s, fixedBackbuffer(0), recorder{resource.NewManager()})
	assert.For(ctx, "write").ThatError(err).Succeeded()
	path := filepath.Join(t.TempDir(), "state.glrs")
	assert.For(ctx, "save").ThatError(os.WriteFile(path, buf.Bytes(), 0666)).Succeeded()
	return path
}

func run(ctx context.Context, args ...string) (string, error) {
	out := &bytes.Buffer{}
	app := newApp()
	app.Writer = out
	err := app.RunContext(ctx, append([]string{"glsnap"}, args...))
	return out.String(), err
}

func TestDump(t *testing.T) {
	ctx := log.Testing(t)
	path := writeChunk(ctx, t)

	out, err := run(ctx, "dump", path)
	assert.For(ctx, "dump").ThatError(err).Succeeded()
	for _, expect := range []string{"compression: none", "kind: Texture", "kind: Program", "linewidth: 4"} {
		assert.For(ctx, "output contains %q", expect).That(strings.Contains(out, expect)).Equals(true)
	}

	out, err = run(ctx, "dump", "--format", "spew", path)
	assert.For(ctx, "spew").ThatError(err).Succeeded()
	assert.For(ctx, "spew output").That(strings.Contains(out, "LineWidth: (float32) 4")).Equals(true)

	_, err = run(ctx, "dump", "--format", "xml", path)
	assert.For(ctx, "bad format").ThatError(err).Failed()
}

func TestConvert(t *testing.T) {
	ctx := log.Testing(t)
	path := writeChunk(ctx, t)
	converted := filepath.Join(filepath.Dir(path), "converted.glrs")

	_, err := run(ctx, "convert", "--big-endian", path, converted)
	assert.For(ctx, "convert").ThatError(err).Succeeded()

	out, err := run(ctx, "info", converted)
	assert.For(ctx, "info").ThatError(err).Succeeded()
	assert.For(ctx, "compression").That(strings.Contains(out, "compression: zstd")).Equals(true)
	assert.For(ctx, "byte order").That(strings.Contains(out, "BigEndian")).Equals(true)

	original, err := run(ctx, "dump", path)
	assert.For(ctx, "dump original").ThatError(err).Succeeded()
	roundTrip, err := run(ctx, "dump", converted)
	assert.For(ctx, "dump converted").ThatError(err).Succeeded()
	assert.For(ctx, "state").That(stateOf(roundTrip)).Equals(stateOf(original))
}

// stateOf drops the header section of a yaml dump.
func stateOf(dump string) string {
	if i := strings.Index(dump, "resources:"); i >= 0 {
		return dump[i:]
	}
	return dump
}

func TestMissingArgument(t *testing.T) {
	ctx := log.Testing(t)
	_, err := run(ctx, "info")
	assert.For(ctx, "info").ThatError(err).Failed()
}

func TestResolverIsCached(t *testing.T) {
	ctx := log.Testing(t)
	offline, resolver, err := newResolver()
	assert.For(ctx, "new").ThatError(err).Succeeded()
	_, cached := resolver.(*resource.Cache)
	assert.For(ctx, "cached").That(cached).Equals(true)

	i := id.OfString("texture")
	first := resolver.Live(ctx, resource.Texture, i)
	second := resolver.Live(ctx, resource.Texture, i)
	assert.For(ctx, "handle").That(second).Equals(first)
	assert.For(ctx, "entries").ThatSlice(offline.Entries()).IsLength(1)
	assert.For(ctx, "identifier").That(resolver.ID(ctx, resource.Texture, first)).Equals(i)
}
