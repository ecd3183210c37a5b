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

package glstate

import (
	"context"

	"github.com/google/glstate/gles"
)

// Mode is whether the engine runs while recording an application or while
// replaying a recording.
type Mode int

const (
	// Authoring is the original application run, against the real default
	// framebuffer.
	Authoring Mode = iota
	// Replaying is a later inspection run, where a fake backbuffer stands in
	// for the default framebuffer.
	Replaying
)

func (m Mode) String() string {
	if m == Replaying {
		return "Replaying"
	}
	return "Authoring"
}

// Backbuffer provides the framebuffer object that stands in for the
// unobservable default framebuffer.
type Backbuffer interface {
	FakeBackbuffer() gles.FramebufferId
}

// Context is a live GL context the state engine can read and write.
type Context interface {
	gles.Functions
	Backbuffer
	// Version returns the context's GL version.
	Version() gles.Version
	// Supports returns true if the extension's entry points can be called.
	Supports(gles.Extension) bool
	// Mode returns whether the context is being recorded or replayed.
	Mode() Mode
}

// feature is a set of optional capabilities resolved once per pass.
type feature uint8

const (
	clipControl feature = 1 << iota
	depthBounds
)

func features(c Context) feature {
	var f feature
	if c.Version().AtLeastGL(4, 5) || c.Supports(gles.ARB_clip_control) {
		f |= clipControl
	}
	if c.Supports(gles.EXT_depth_bounds_test) {
		f |= depthBounds
	}
	return f
}

// pass is one Fetch or Apply traversal of a context.
type pass struct {
	ctx      context.Context
	c        Context
	features feature
	replay   bool
}

func newPass(ctx context.Context, c Context) *pass {
	return &pass{
		ctx:      ctx,
		c:        c,
		features: features(c),
		replay:   c.Mode() == Replaying,
	}
}

func (p *pass) has(f feature) bool { return p.features&f == f }

// integer queries a single integer.
func (p *pass) integer(pname gles.GLenum) int32 {
	var v [1]int32
	p.c.GetIntegerv(pname, v[:])
	return v[0]
}

func (p *pass) enum(pname gles.GLenum) gles.GLenum { return gles.GLenum(p.integer(pname)) }

func (p *pass) float(pname gles.GLenum) float32 {
	var v [1]float32
	p.c.GetFloatv(pname, v[:])
	return v[0]
}

func (p *pass) boolean(pname gles.GLenum) bool {
	var v [1]bool
	p.c.GetBooleanv(pname, v[:])
	return v[0]
}

// limit returns min(device limit pname, capacity).
func (p *pass) limit(pname gles.GLenum, capacity int) int {
	n := int(p.integer(pname))
	if n > capacity {
		n = capacity
	}
	if n < 0 {
		n = 0
	}
	return n
}

// textureUnits calls f with each texture unit selected in turn, then
// reselects restore.
func (p *pass) textureUnits(restore gles.GLenum, f func(unit uint32)) {
	defer p.c.ActiveTexture(restore)
	for i := uint32(0); i < MaxTextureUnits; i++ {
		p.c.ActiveTexture(gles.GLenum_GL_TEXTURE0 + gles.GLenum(i))
		f(i)
	}
}

// integeri queries a single integer of an indexed target.
func (p *pass) integeri(pname gles.GLenum, index uint32) int32 {
	var v [1]int32
	p.c.GetIntegeri(pname, index, v[:])
	return v[0]
}

func (p *pass) enumi(pname gles.GLenum, index uint32) gles.GLenum {
	return gles.GLenum(p.integeri(pname, index))
}

func (p *pass) enablei(capability gles.GLenum, index uint32, enabled bool) {
	if enabled {
		p.c.Enablei(capability, index)
	} else {
		p.c.Disablei(capability, index)
	}
}

// framebuffer returns the framebuffer to bind for fb. During replay the
// default framebuffer is replaced by the fake backbuffer.
func (p *pass) framebuffer(fb gles.FramebufferId) gles.FramebufferId {
	if p.replay && fb == 0 {
		return p.c.FakeBackbuffer()
	}
	return fb
}
