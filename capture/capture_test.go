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

package capture_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"

	"github.com/google/glstate/capture"
	"github.com/google/glstate/core/assert"
	"github.com/google/glstate/core/data/id"
	"github.com/google/glstate/core/log"
	"github.com/google/glstate/gles"
	"github.com/google/glstate/gles/glstate"
	"github.com/google/glstate/resource"
)

type backbuffer gles.FramebufferId

func (b backbuffer) FakeBackbuffer() gles.FramebufferId { return gles.FramebufferId(b) }

type recorder struct{ *resource.Manager }

func (r recorder) ID(ctx context.Context, k resource.Kind, h resource.Handle) id.ID {
	return r.Track(k, h)
}

func snapshot() *glstate.Snapshot {
	s := &glstate.Snapshot{}
	s.Enabled[glstate.DepthTest] = true
	s.Tex2D[0] = 3
	s.Program = 4
	s.DrawFBO = 5
	s.ReadFBO = 5
	s.LineWidth = 2.5
	s.DepthRanges[0] = glstate.DepthRange{Near: 0, Far: 1}
	s.DepthFunc = gles.GLenum_GL_LESS
	s.ColorClearValue = [4]float32{0.5, 0.5, 0.5, 1}
	return s
}

func TestRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		name string
		opts []capture.Option
	}{
		{"default", nil},
		{"zstd", []capture.Option{capture.WithCompression(capture.Zstd)}},
		{"big endian", []capture.Option{capture.WithByteOrder(binary.BigEndian)}},
		{"big endian zstd", []capture.Option{capture.WithByteOrder(binary.BigEndian), capture.WithCompression(capture.Zstd)}},
	} {
		r := recorder{resource.NewManager()}
		s := snapshot()
		buf := &bytes.Buffer{}
		err := capture.Write(ctx, buf, s, backbuffer(0), r, test.opts...)
		if !assert.For(ctx, "%s write", test.name).ThatError(err).Succeeded() {
			continue
		}
		got := &glstate.Snapshot{}
		err = capture.Read(ctx, buf, got, backbuffer(0), r)
		assert.For(ctx, "%s read", test.name).ThatError(err).Succeeded()
		assert.For(ctx, "%s snapshot", test.name).That(*got == *s).Equals(true)
		assert.For(ctx, "%s remaining", test.name).ThatInteger(buf.Len()).Equals(0)
	}
}

func TestCompressionShrinks(t *testing.T) {
	ctx := log.Testing(t)
	r := recorder{resource.NewManager()}
	plain, packed := &bytes.Buffer{}, &bytes.Buffer{}
	assert.For(ctx, "plain").ThatError(capture.Write(ctx, plain, snapshot(), backbuffer(0), r)).Succeeded()
	assert.For(ctx, "zstd").ThatError(capture.Write(ctx, packed, snapshot(), backbuffer(0), r,
		capture.WithCompression(capture.Zstd))).Succeeded()
	assert.For(ctx, "size").ThatInteger(packed.Len()).IsAtMost(plain.Len() / 4)

	h, err := capture.ReadHeader(bytes.NewReader(packed.Bytes()))
	assert.For(ctx, "header").ThatError(err).Succeeded()
	assert.For(ctx, "compression").That(h.Compression).Equals(capture.Zstd)
	assert.For(ctx, "size").ThatInteger(int(h.Size)).Equals(packed.Len() - capture.HeaderSize)
}

func TestOfflineDecode(t *testing.T) {
	ctx := log.Testing(t)
	buf := &bytes.Buffer{}
	assert.For(ctx, "write").ThatError(capture.Write(ctx, buf, snapshot(), backbuffer(0), recorder{resource.NewManager()})).Succeeded()

	offline := resource.NewOffline()
	got := &glstate.Snapshot{}
	assert.For(ctx, "read").ThatError(capture.Read(ctx, buf, got, backbuffer(77), offline)).Succeeded()
	assert.For(ctx, "texture").That(got.Tex2D[0]).Equals(gles.TextureId(1))
	assert.For(ctx, "program").That(got.Program).Equals(gles.ProgramId(1))
	assert.For(ctx, "draw framebuffer").That(got.DrawFBO).Equals(gles.FramebufferId(1))
	assert.For(ctx, "read framebuffer").That(got.ReadFBO).Equals(gles.FramebufferId(1))
	assert.For(ctx, "sampler").That(got.Samplers[0]).Equals(gles.SamplerId(0))
	assert.For(ctx, "entries").ThatSlice(offline.Entries()).IsLength(3)
}

func TestBadHeaders(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		name   string
		data   []byte
		expect error
	}{
		{"magic", []byte{'G', 'L', 'R', 'X', 1, 0, 0, 0, 0, 0, 0, 0}, capture.ErrBadMagic},
		{"version", []byte{'G', 'L', 'R', 'S', 2, 0, 0, 0, 0, 0, 0, 0}, capture.ErrUnsupportedVersion},
		{"compression", []byte{'G', 'L', 'R', 'S', 1, 0, 9, 0, 0, 0, 0, 0}, capture.ErrUnknownCompression},
		{"size", []byte{'G', 'L', 'R', 'S', 1, 0, 0, 0, 0, 0, 0, 0x10}, capture.ErrTooLarge},
	} {
		err := capture.Read(ctx, bytes.NewReader(test.data), &glstate.Snapshot{}, backbuffer(0), resource.NewOffline())
		assert.For(ctx, test.name).ThatError(err).HasCause(test.expect)
	}
}

func TestTruncated(t *testing.T) {
	ctx := log.Testing(t)
	buf := &bytes.Buffer{}
	assert.For(ctx, "write").ThatError(capture.Write(ctx, buf, snapshot(), backbuffer(0), recorder{resource.NewManager()})).Succeeded()
	data := buf.Bytes()
	for _, n := range []int{0, capture.HeaderSize - 1, capture.HeaderSize + 10, len(data) - 1} {
		err := capture.Read(ctx, bytes.NewReader(data[:n]), &glstate.Snapshot{}, backbuffer(0), resource.NewOffline())
		assert.For(ctx, "truncated to %d", n).ThatError(err).Failed()
	}
}

func TestParseCompression(t *testing.T) {
	ctx := log.Testing(t)
	c, err := capture.ParseCompression("zstd")
	assert.For(ctx, "zstd").ThatError(err).Succeeded()
	assert.For(ctx, "zstd").That(c).Equals(capture.Zstd)
	_, err = capture.ParseCompression("lz4")
	assert.For(ctx, "lz4").ThatError(err).HasCause(capture.ErrUnknownCompression)
}
