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

// Package gltest provides an in-memory GL context for testing code that reads
// and writes context state.
//
// The context keeps one value list per queryable parameter. Setters store
// what a conforming driver would report back, and queries return it. A query
// for a parameter that was never set leaves the output untouched, just like a
// driver that does not recognise it.
package gltest

import (
	"github.com/google/glstate/gles"
	"github.com/google/glstate/gles/glstate"
)

// Call is a single recorded function call.
type Call struct {
	Name   string
	Target gles.GLenum // pname, capability or target, where the function has one
	Index  uint32
}

type key struct {
	pname   gles.GLenum
	index   uint32
	indexed bool
}

// Context is a fake glstate.Context.
type Context struct {
	// GLVersion is returned by Version.
	GLVersion gles.Version
	// Extensions lists the extensions reported by Supports.
	Extensions map[gles.Extension]bool
	// Backbuffer is returned by FakeBackbuffer.
	Backbuffer gles.FramebufferId
	// Replaying selects the Replaying mode.
	Replaying bool
	// Calls holds every call made on the context, queries included.
	Calls []Call

	state       map[key][]float64
	stageCounts map[gles.ProgramId]map[gles.GLenum]int32
	pipelines   map[gles.PipelineId]map[gles.GLenum]gles.ProgramId
	subroutines map[gles.GLenum][]uint32
}

var _ glstate.Context = (*Context)(nil)

// New returns a desktop GL 4.6 context with no extensions and typical device
// limits.
func New() *Context {
	c := &Context{
		GLVersion:   gles.Version{Major: 4, Minor: 6},
		Extensions:  map[gles.Extension]bool{},
		state:       map[key][]float64{},
		stageCounts: map[gles.ProgramId]map[gles.GLenum]int32{},
		pipelines:   map[gles.PipelineId]map[gles.GLenum]gles.ProgramId{},
		subroutines: map[gles.GLenum][]uint32{},
	}
	c.SetLimit(gles.GLenum_GL_MAX_VERTEX_ATTRIBS, 16)
	c.SetLimit(gles.GLenum_GL_MAX_ATOMIC_COUNTER_BUFFER_BINDINGS, 1)
	c.SetLimit(gles.GLenum_GL_MAX_SHADER_STORAGE_BUFFER_BINDINGS, 8)
	c.SetLimit(gles.GLenum_GL_MAX_TRANSFORM_FEEDBACK_SEPARATE_ATTRIBS, 4)
	c.SetLimit(gles.GLenum_GL_MAX_UNIFORM_BUFFER_BINDINGS, 72)
	c.Set(gles.GLenum_GL_ACTIVE_TEXTURE, float64(gles.GLenum_GL_TEXTURE0))
	return c
}

// SetVersionString sets GLVersion from a GL_VERSION string, as a driver
// would report it.
func (c *Context) SetVersionString(str string) error {
	v, err := gles.ParseVersion(str)
	if err != nil {
		return err
	}
	c.GLVersion = *v
	return nil
}

// SetLimit sets the device limit reported for pname.
func (c *Context) SetLimit(pname gles.GLenum, v int32) { c.Set(pname, float64(v)) }

// Set stores the values reported for pname.
func (c *Context) Set(pname gles.GLenum, v ...float64) {
	c.state[key{pname: pname}] = append([]float64{}, v...)
}

// Seti stores the values reported for index of pname.
func (c *Context) Seti(pname gles.GLenum, index uint32, v ...float64) {
	c.state[key{pname, index, true}] = append([]float64{}, v...)
}

// Get returns the values stored for pname, or nil if there are none.
func (c *Context) Get(pname gles.GLenum) []float64 { return c.state[key{pname: pname}] }

// Geti returns the values stored for index of pname, or nil if there are none.
func (c *Context) Geti(pname gles.GLenum, index uint32) []float64 {
	return c.state[key{pname, index, true}]
}

// Unset removes pname, so that it is no longer answered.
func (c *Context) Unset(pname gles.GLenum) { delete(c.state, key{pname: pname}) }

// SetStageSubroutines declares that program has count active subroutine
// uniform locations in stage.
func (c *Context) SetStageSubroutines(program gles.ProgramId, stage gles.GLenum, count int32) {
	m, ok := c.stageCounts[program]
	if !ok {
		m = map[gles.GLenum]int32{}
		c.stageCounts[program] = m
	}
	m[stage] = count
}

// SetPipelineStage attaches program to stage of pipeline.
func (c *Context) SetPipelineStage(pipeline gles.PipelineId, stage gles.GLenum, program gles.ProgramId) {
	m, ok := c.pipelines[pipeline]
	if !ok {
		m = map[gles.GLenum]gles.ProgramId{}
		c.pipelines[pipeline] = m
	}
	m[stage] = program
}

// Subroutines returns the subroutine indices last set for stage.
func (c *Context) Subroutines(stage gles.GLenum) []uint32 { return c.subroutines[stage] }

// Called returns the recorded calls to the named function.
func (c *Context) Called(name string) []Call {
	out := []Call{}
	for _, call := range c.Calls {
		if call.Name == name {
			out = append(out, call)
		}
	}
	return out
}

// Version returns c.GLVersion.
func (c *Context) Version() gles.Version { return c.GLVersion }

// Supports returns true if ext is in c.Extensions.
func (c *Context) Supports(ext gles.Extension) bool { return c.Extensions[ext] }

// FakeBackbuffer returns c.Backbuffer.
func (c *Context) FakeBackbuffer() gles.FramebufferId { return c.Backbuffer }

// Mode returns Replaying if c.Replaying is set, otherwise Authoring.
func (c *Context) Mode() glstate.Mode {
	if c.Replaying {
		return glstate.Replaying
	}
	return glstate.Authoring
}

func (c *Context) record(name string, target gles.GLenum, index uint32) {
	c.Calls = append(c.Calls, Call{name, target, index})
}

func (c *Context) activeUnit() uint32 {
	if v := c.Get(gles.GLenum_GL_ACTIVE_TEXTURE); len(v) > 0 {
		return uint32(gles.GLenum(v[0]) - gles.GLenum_GL_TEXTURE0)
	}
	return 0
}

// lookup resolves the storage key of a non-indexed query. Texture unit
// bindings are stored per unit and read through the active unit.
func (c *Context) lookup(pname gles.GLenum) key {
	switch pname {
	case gles.GLenum_GL_TEXTURE_BINDING_2D, gles.GLenum_GL_SAMPLER_BINDING:
		return key{pname, c.activeUnit(), true}
	}
	return key{pname: pname}
}
