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

package gltest_test

import (
	"testing"

	"github.com/google/glstate/core/assert"
	"github.com/google/glstate/core/log"
	"github.com/google/glstate/gles"
	"github.com/google/glstate/gles/glstate"
	"github.com/google/glstate/gles/gltest"
)

func TestUnansweredQuery(t *testing.T) {
	ctx := log.Testing(t)
	c := gltest.New()
	out := []int32{7, 8}
	c.GetIntegerv(gles.GLenum_GL_POLYGON_MODE, out)
	assert.For(ctx, "untouched").ThatSlice(out).Equals([]int32{7, 8})
	c.PolygonMode(gles.GLenum_GL_FRONT_AND_BACK, gles.GLenum_GL_LINE)
	c.GetIntegerv(gles.GLenum_GL_POLYGON_MODE, out)
	assert.For(ctx, "answered").ThatSlice(out).Equals([]int32{int32(gles.GLenum_GL_LINE), int32(gles.GLenum_GL_LINE)})
}

func TestTextureUnits(t *testing.T) {
	ctx := log.Testing(t)
	c := gltest.New()
	c.ActiveTexture(gles.GLenum_GL_TEXTURE0 + 2)
	c.BindTexture(gles.GLenum_GL_TEXTURE_2D, 12)
	c.ActiveTexture(gles.GLenum_GL_TEXTURE0)
	c.BindTexture(gles.GLenum_GL_TEXTURE_2D, 10)

	var v [1]int32
	c.GetIntegerv(gles.GLenum_GL_TEXTURE_BINDING_2D, v[:])
	assert.For(ctx, "unit 0").That(v[0]).Equals(int32(10))
	c.ActiveTexture(gles.GLenum_GL_TEXTURE0 + 2)
	c.GetIntegerv(gles.GLenum_GL_TEXTURE_BINDING_2D, v[:])
	assert.For(ctx, "unit 2").That(v[0]).Equals(int32(12))
}

func TestStencilFaces(t *testing.T) {
	ctx := log.Testing(t)
	c := gltest.New()
	c.StencilFuncSeparate(gles.GLenum_GL_FRONT_AND_BACK, gles.GLenum_GL_LESS, 3, 0xff)
	c.StencilFuncSeparate(gles.GLenum_GL_BACK, gles.GLenum_GL_ALWAYS, 4, 0x0f)
	assert.For(ctx, "front").That(c.Get(gles.GLenum_GL_STENCIL_FUNC)).DeepEquals([]float64{float64(gles.GLenum_GL_LESS)})
	assert.For(ctx, "front ref").That(c.Get(gles.GLenum_GL_STENCIL_REF)).DeepEquals([]float64{3})
	assert.For(ctx, "back").That(c.Get(gles.GLenum_GL_STENCIL_BACK_FUNC)).DeepEquals([]float64{float64(gles.GLenum_GL_ALWAYS)})
	assert.For(ctx, "back mask").That(c.Get(gles.GLenum_GL_STENCIL_BACK_VALUE_MASK)).DeepEquals([]float64{15})
}

func TestBindFramebuffer(t *testing.T) {
	ctx := log.Testing(t)
	c := gltest.New()
	c.BindFramebuffer(gles.GLenum_GL_FRAMEBUFFER, 3)
	c.BindFramebuffer(gles.GLenum_GL_READ_FRAMEBUFFER, 4)
	assert.For(ctx, "draw").That(c.Get(gles.GLenum_GL_DRAW_FRAMEBUFFER_BINDING)).DeepEquals([]float64{3})
	assert.For(ctx, "read").That(c.Get(gles.GLenum_GL_READ_FRAMEBUFFER_BINDING)).DeepEquals([]float64{4})
}

func TestMode(t *testing.T) {
	ctx := log.Testing(t)
	c := gltest.New()
	assert.For(ctx, "default").That(c.Mode()).Equals(glstate.Authoring)
	c.Replaying = true
	assert.For(ctx, "replaying").That(c.Mode()).Equals(glstate.Replaying)
	assert.For(ctx, "calls").ThatSlice(c.Calls).IsEmpty()
}

func TestSetVersionString(t *testing.T) {
	ctx := log.Testing(t)
	c := gltest.New()
	err := c.SetVersionString("OpenGL ES 3.2 V@415.0")
	assert.For(ctx, "es").ThatError(err).Succeeded()
	assert.For(ctx, "es version").That(c.Version()).Equals(gles.Version{IsES: true, Major: 3, Minor: 2})

	err = c.SetVersionString("4.5.0 NVIDIA 525.60.11")
	assert.For(ctx, "desktop").ThatError(err).Succeeded()
	assert.For(ctx, "desktop version").That(c.Version()).Equals(gles.Version{Major: 4, Minor: 5})

	err = c.SetVersionString("garbage")
	assert.For(ctx, "garbage").ThatError(err).Failed()
	assert.For(ctx, "unchanged").That(c.Version()).Equals(gles.Version{Major: 4, Minor: 5})
}
