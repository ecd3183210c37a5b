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

package gltest

import "github.com/google/glstate/gles"

func toBool(v float64) bool { return v != 0 }

func fromBool(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func floats32(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}

// IsEnabled reports whether capability was last enabled.
func (c *Context) IsEnabled(capability gles.GLenum) bool {
	c.record("IsEnabled", capability, 0)
	v := c.state[key{pname: capability}]
	return len(v) > 0 && toBool(v[0])
}

// IsEnabledi reports whether index of capability was last enabled.
func (c *Context) IsEnabledi(capability gles.GLenum, index uint32) bool {
	c.record("IsEnabledi", capability, index)
	v := c.state[key{capability, index, true}]
	return len(v) > 0 && toBool(v[0])
}

// GetBooleanv copies the values of pname into out, non-zero as true.
func (c *Context) GetBooleanv(pname gles.GLenum, out []bool) {
	c.record("GetBooleanv", pname, 0)
	for i, v := range c.state[c.lookup(pname)] {
		if i < len(out) {
			out[i] = toBool(v)
		}
	}
}

// GetBooleani copies the values of index of pname into out, non-zero as true.
func (c *Context) GetBooleani(pname gles.GLenum, index uint32, out []bool) {
	c.record("GetBooleani", pname, index)
	for i, v := range c.state[key{pname, index, true}] {
		if i < len(out) {
			out[i] = toBool(v)
		}
	}
}

// GetIntegerv copies the values of pname into out, truncated to int32.
func (c *Context) GetIntegerv(pname gles.GLenum, out []int32) {
	c.record("GetIntegerv", pname, 0)
	for i, v := range c.state[c.lookup(pname)] {
		if i < len(out) {
			out[i] = int32(int64(v))
		}
	}
}

// GetIntegeri copies the values of index of pname into out, truncated to
// int32.
func (c *Context) GetIntegeri(pname gles.GLenum, index uint32, out []int32) {
	c.record("GetIntegeri", pname, index)
	for i, v := range c.state[key{pname, index, true}] {
		if i < len(out) {
			out[i] = int32(int64(v))
		}
	}
}

// GetInteger64i copies the values of index of pname into out.
func (c *Context) GetInteger64i(pname gles.GLenum, index uint32, out []int64) {
	c.record("GetInteger64i", pname, index)
	for i, v := range c.state[key{pname, index, true}] {
		if i < len(out) {
			out[i] = int64(v)
		}
	}
}

// GetFloatv copies the values of pname into out.
func (c *Context) GetFloatv(pname gles.GLenum, out []float32) {
	c.record("GetFloatv", pname, 0)
	for i, v := range c.state[c.lookup(pname)] {
		if i < len(out) {
			out[i] = float32(v)
		}
	}
}

// GetFloati copies the values of index of pname into out.
func (c *Context) GetFloati(pname gles.GLenum, index uint32, out []float32) {
	c.record("GetFloati", pname, index)
	for i, v := range c.state[key{pname, index, true}] {
		if i < len(out) {
			out[i] = float32(v)
		}
	}
}

// GetDoublev copies the values of pname into out.
func (c *Context) GetDoublev(pname gles.GLenum, out []float64) {
	c.record("GetDoublev", pname, 0)
	copy(out, c.state[c.lookup(pname)])
}

// GetDoublei copies the values of index of pname into out.
func (c *Context) GetDoublei(pname gles.GLenum, index uint32, out []float64) {
	c.record("GetDoublei", pname, index)
	copy(out, c.state[key{pname, index, true}])
}

// GetVertexAttribfv copies the values of pname for attribute index into out.
func (c *Context) GetVertexAttribfv(index uint32, pname gles.GLenum, out []float32) {
	c.record("GetVertexAttribfv", pname, index)
	for i, v := range c.state[key{pname, index, true}] {
		if i < len(out) {
			out[i] = float32(v)
		}
	}
}

// GetProgramPipelineiv reports the program attached to the stage pname of
// pipeline, as set by SetPipelineStage.
func (c *Context) GetProgramPipelineiv(pipeline gles.PipelineId, pname gles.GLenum, out []int32) {
	c.record("GetProgramPipelineiv", pname, uint32(pipeline))
	if p, ok := c.pipelines[pipeline][pname]; ok && len(out) > 0 {
		out[0] = int32(p)
	}
}

// GetProgramStageiv answers ACTIVE_SUBROUTINE_UNIFORM_LOCATIONS with the count
// given to SetStageSubroutines. Other pnames are not answered.
func (c *Context) GetProgramStageiv(program gles.ProgramId, stage gles.GLenum, pname gles.GLenum, out []int32) {
	c.record("GetProgramStageiv", stage, uint32(program))
	if pname != gles.GLenum_GL_ACTIVE_SUBROUTINE_UNIFORM_LOCATIONS || len(out) == 0 {
		return
	}
	if n, ok := c.stageCounts[program][stage]; ok {
		out[0] = n
	}
}

// GetUniformSubroutineuiv reports the subroutine index last set at location
// of stage.
func (c *Context) GetUniformSubroutineuiv(stage gles.GLenum, location int32, out []uint32) {
	c.record("GetUniformSubroutineuiv", stage, uint32(location))
	if v := c.subroutines[stage]; location >= 0 && int(location) < len(v) && len(out) > 0 {
		out[0] = v[location]
	}
}
