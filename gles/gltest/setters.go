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

var bufferBindings = map[gles.GLenum]gles.GLenum{
	gles.GLenum_GL_ARRAY_BUFFER:             gles.GLenum_GL_ARRAY_BUFFER_BINDING,
	gles.GLenum_GL_COPY_READ_BUFFER:         gles.GLenum_GL_COPY_READ_BUFFER_BINDING,
	gles.GLenum_GL_COPY_WRITE_BUFFER:        gles.GLenum_GL_COPY_WRITE_BUFFER_BINDING,
	gles.GLenum_GL_DRAW_INDIRECT_BUFFER:     gles.GLenum_GL_DRAW_INDIRECT_BUFFER_BINDING,
	gles.GLenum_GL_DISPATCH_INDIRECT_BUFFER: gles.GLenum_GL_DISPATCH_INDIRECT_BUFFER_BINDING,
	gles.GLenum_GL_PIXEL_PACK_BUFFER:        gles.GLenum_GL_PIXEL_PACK_BUFFER_BINDING,
	gles.GLenum_GL_PIXEL_UNPACK_BUFFER:      gles.GLenum_GL_PIXEL_UNPACK_BUFFER_BINDING,
	gles.GLenum_GL_QUERY_BUFFER:             gles.GLenum_GL_QUERY_BUFFER_BINDING,
	gles.GLenum_GL_TEXTURE_BUFFER:           gles.GLenum_GL_TEXTURE_BUFFER_BINDING,
}

type indexedBinding struct{ binding, start, size gles.GLenum }

var indexedBindings = map[gles.GLenum]indexedBinding{
	gles.GLenum_GL_ATOMIC_COUNTER_BUFFER: {
		gles.GLenum_GL_ATOMIC_COUNTER_BUFFER_BINDING,
		gles.GLenum_GL_ATOMIC_COUNTER_BUFFER_START,
		gles.GLenum_GL_ATOMIC_COUNTER_BUFFER_SIZE,
	},
	gles.GLenum_GL_SHADER_STORAGE_BUFFER: {
		gles.GLenum_GL_SHADER_STORAGE_BUFFER_BINDING,
		gles.GLenum_GL_SHADER_STORAGE_BUFFER_START,
		gles.GLenum_GL_SHADER_STORAGE_BUFFER_SIZE,
	},
	gles.GLenum_GL_TRANSFORM_FEEDBACK_BUFFER: {
		gles.GLenum_GL_TRANSFORM_FEEDBACK_BUFFER_BINDING,
		gles.GLenum_GL_TRANSFORM_FEEDBACK_BUFFER_START,
		gles.GLenum_GL_TRANSFORM_FEEDBACK_BUFFER_SIZE,
	},
	gles.GLenum_GL_UNIFORM_BUFFER: {
		gles.GLenum_GL_UNIFORM_BUFFER_BINDING,
		gles.GLenum_GL_UNIFORM_BUFFER_START,
		gles.GLenum_GL_UNIFORM_BUFFER_SIZE,
	},
}

type stencilNames struct{ fn, ref, valueMask, writeMask, fail, depthFail, pass gles.GLenum }

var (
	stencilFront = stencilNames{
		gles.GLenum_GL_STENCIL_FUNC,
		gles.GLenum_GL_STENCIL_REF,
		gles.GLenum_GL_STENCIL_VALUE_MASK,
		gles.GLenum_GL_STENCIL_WRITEMASK,
		gles.GLenum_GL_STENCIL_FAIL,
		gles.GLenum_GL_STENCIL_PASS_DEPTH_FAIL,
		gles.GLenum_GL_STENCIL_PASS_DEPTH_PASS,
	}
	stencilBack = stencilNames{
		gles.GLenum_GL_STENCIL_BACK_FUNC,
		gles.GLenum_GL_STENCIL_BACK_REF,
		gles.GLenum_GL_STENCIL_BACK_VALUE_MASK,
		gles.GLenum_GL_STENCIL_BACK_WRITEMASK,
		gles.GLenum_GL_STENCIL_BACK_FAIL,
		gles.GLenum_GL_STENCIL_BACK_PASS_DEPTH_FAIL,
		gles.GLenum_GL_STENCIL_BACK_PASS_DEPTH_PASS,
	}
)

func stencilFaces(face gles.GLenum) []stencilNames {
	switch face {
	case gles.GLenum_GL_FRONT:
		return []stencilNames{stencilFront}
	case gles.GLenum_GL_BACK:
		return []stencilNames{stencilBack}
	case gles.GLenum_GL_FRONT_AND_BACK:
		return []stencilNames{stencilFront, stencilBack}
	}
	return nil
}

// The gles.Setter methods record the call, then store the values that the
// matching queries report back.

// Enable turns capability on.
func (c *Context) Enable(capability gles.GLenum) {
	c.record("Enable", capability, 0)
	c.Set(capability, 1)
}

func (c *Context) Disable(capability gles.GLenum) {
	c.record("Disable", capability, 0)
	c.Set(capability, 0)
}

func (c *Context) Enablei(capability gles.GLenum, index uint32) {
	c.record("Enablei", capability, index)
	c.Seti(capability, index, 1)
}

func (c *Context) Disablei(capability gles.GLenum, index uint32) {
	c.record("Disablei", capability, index)
	c.Seti(capability, index, 0)
}

func (c *Context) ActiveTexture(unit gles.GLenum) {
	c.record("ActiveTexture", unit, 0)
	c.Set(gles.GLenum_GL_ACTIVE_TEXTURE, float64(unit))
}

func (c *Context) BindTexture(target gles.GLenum, texture gles.TextureId) {
	c.record("BindTexture", target, c.activeUnit())
	if target == gles.GLenum_GL_TEXTURE_2D {
		c.Seti(gles.GLenum_GL_TEXTURE_BINDING_2D, c.activeUnit(), float64(texture))
	}
}

func (c *Context) BindSampler(unit uint32, sampler gles.SamplerId) {
	c.record("BindSampler", 0, unit)
	c.Seti(gles.GLenum_GL_SAMPLER_BINDING, unit, float64(sampler))
}

func (c *Context) BindVertexArray(array gles.VertexArrayId) {
	c.record("BindVertexArray", 0, 0)
	c.Set(gles.GLenum_GL_VERTEX_ARRAY_BINDING, float64(array))
}

func (c *Context) BindTransformFeedback(target gles.GLenum, feedback gles.TransformFeedbackId) {
	c.record("BindTransformFeedback", target, 0)
	c.Set(gles.GLenum_GL_TRANSFORM_FEEDBACK_BINDING, float64(feedback))
}

func (c *Context) VertexAttrib4fv(index uint32, v [4]float32) {
	c.record("VertexAttrib4fv", 0, index)
	c.Seti(gles.GLenum_GL_CURRENT_VERTEX_ATTRIB, index, floats32(v[:])...)
}

func (c *Context) PointParameterf(pname gles.GLenum, v float32) {
	c.record("PointParameterf", pname, 0)
	c.Set(pname, float64(v))
}

func (c *Context) PointParameteri(pname gles.GLenum, v int32) {
	c.record("PointParameteri", pname, 0)
	c.Set(pname, float64(v))
}

func (c *Context) LineWidth(width float32) {
	c.record("LineWidth", 0, 0)
	c.Set(gles.GLenum_GL_LINE_WIDTH, float64(width))
}

func (c *Context) PointSize(size float32) {
	c.record("PointSize", 0, 0)
	c.Set(gles.GLenum_GL_POINT_SIZE, float64(size))
}

func (c *Context) PrimitiveRestartIndex(index uint32) {
	c.record("PrimitiveRestartIndex", 0, 0)
	c.Set(gles.GLenum_GL_PRIMITIVE_RESTART_INDEX, float64(index))
}

func (c *Context) ClipControl(origin, depth gles.GLenum) {
	c.record("ClipControl", origin, 0)
	c.Set(gles.GLenum_GL_CLIP_ORIGIN, float64(origin))
	c.Set(gles.GLenum_GL_CLIP_DEPTH_MODE, float64(depth))
}

func (c *Context) ProvokingVertex(mode gles.GLenum) {
	c.record("ProvokingVertex", mode, 0)
	c.Set(gles.GLenum_GL_PROVOKING_VERTEX, float64(mode))
}

func (c *Context) UseProgram(program gles.ProgramId) {
	c.record("UseProgram", 0, uint32(program))
	c.Set(gles.GLenum_GL_CURRENT_PROGRAM, float64(program))
}

func (c *Context) BindProgramPipeline(pipeline gles.PipelineId) {
	c.record("BindProgramPipeline", 0, uint32(pipeline))
	c.Set(gles.GLenum_GL_PROGRAM_PIPELINE_BINDING, float64(pipeline))
}

func (c *Context) UniformSubroutinesuiv(stage gles.GLenum, indices []uint32) {
	c.record("UniformSubroutinesuiv", stage, uint32(len(indices)))
	c.subroutines[stage] = append([]uint32{}, indices...)
}

func (c *Context) BindBuffer(target gles.GLenum, buffer gles.BufferId) {
	c.record("BindBuffer", target, 0)
	if b, ok := bufferBindings[target]; ok {
		c.Set(b, float64(buffer))
	}
}

func (c *Context) BindBufferBase(target gles.GLenum, index uint32, buffer gles.BufferId) {
	c.record("BindBufferBase", target, index)
	if b, ok := indexedBindings[target]; ok {
		c.Seti(b.binding, index, float64(buffer))
		c.Seti(b.start, index, 0)
		c.Seti(b.size, index, 0)
	}
}

func (c *Context) BindBufferRange(target gles.GLenum, index uint32, buffer gles.BufferId, offset, size int64) {
	c.record("BindBufferRange", target, index)
	if b, ok := indexedBindings[target]; ok {
		c.Seti(b.binding, index, float64(buffer))
		c.Seti(b.start, index, float64(offset))
		c.Seti(b.size, index, float64(size))
	}
}

func (c *Context) BlendFuncSeparatei(buf uint32, srcRGB, dstRGB, srcAlpha, dstAlpha gles.GLenum) {
	c.record("BlendFuncSeparatei", 0, buf)
	c.Seti(gles.GLenum_GL_BLEND_SRC_RGB, buf, float64(srcRGB))
	c.Seti(gles.GLenum_GL_BLEND_DST_RGB, buf, float64(dstRGB))
	c.Seti(gles.GLenum_GL_BLEND_SRC_ALPHA, buf, float64(srcAlpha))
	c.Seti(gles.GLenum_GL_BLEND_DST_ALPHA, buf, float64(dstAlpha))
}

func (c *Context) BlendEquationSeparatei(buf uint32, modeRGB, modeAlpha gles.GLenum) {
	c.record("BlendEquationSeparatei", 0, buf)
	c.Seti(gles.GLenum_GL_BLEND_EQUATION_RGB, buf, float64(modeRGB))
	c.Seti(gles.GLenum_GL_BLEND_EQUATION_ALPHA, buf, float64(modeAlpha))
}

func (c *Context) BlendColor(r, g, b, a float32) {
	c.record("BlendColor", 0, 0)
	c.Set(gles.GLenum_GL_BLEND_COLOR, floats32([]float32{r, g, b, a})...)
}

func (c *Context) ViewportArrayv(first uint32, v []float32) {
	c.record("ViewportArrayv", 0, first)
	for i := 0; i+4 <= len(v); i += 4 {
		c.Seti(gles.GLenum_GL_VIEWPORT, first+uint32(i/4), floats32(v[i:i+4])...)
	}
}

func (c *Context) ScissorIndexedv(index uint32, v [4]int32) {
	c.record("ScissorIndexedv", 0, index)
	c.Seti(gles.GLenum_GL_SCISSOR_BOX, index, float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3]))
}

func (c *Context) BindFramebuffer(target gles.GLenum, framebuffer gles.FramebufferId) {
	c.record("BindFramebuffer", target, uint32(framebuffer))
	if target != gles.GLenum_GL_READ_FRAMEBUFFER {
		c.Set(gles.GLenum_GL_DRAW_FRAMEBUFFER_BINDING, float64(framebuffer))
	}
	if target != gles.GLenum_GL_DRAW_FRAMEBUFFER {
		c.Set(gles.GLenum_GL_READ_FRAMEBUFFER_BINDING, float64(framebuffer))
	}
}

// DrawBuffers stores bufs and sets the remaining draw buffers to NONE.
func (c *Context) DrawBuffers(bufs []gles.GLenum) {
	c.record("DrawBuffers", 0, uint32(len(bufs)))
	for i := 0; i < 8; i++ {
		b := gles.GLenum_GL_NONE
		if i < len(bufs) {
			b = bufs[i]
		}
		c.Set(gles.GLenum_GL_DRAW_BUFFER0+gles.GLenum(i), float64(b))
	}
}

func (c *Context) Hint(target, mode gles.GLenum) {
	c.record("Hint", target, 0)
	c.Set(target, float64(mode))
}

func (c *Context) DepthMask(flag bool) {
	c.record("DepthMask", 0, 0)
	c.Set(gles.GLenum_GL_DEPTH_WRITEMASK, fromBool(flag))
}

func (c *Context) ClearDepthf(depth float32) {
	c.record("ClearDepthf", 0, 0)
	c.Set(gles.GLenum_GL_DEPTH_CLEAR_VALUE, float64(depth))
}

func (c *Context) DepthFunc(fn gles.GLenum) {
	c.record("DepthFunc", fn, 0)
	c.Set(gles.GLenum_GL_DEPTH_FUNC, float64(fn))
}

func (c *Context) DepthRangeArrayv(first uint32, v []float64) {
	c.record("DepthRangeArrayv", 0, first)
	for i := 0; i+2 <= len(v); i += 2 {
		c.Seti(gles.GLenum_GL_DEPTH_RANGE, first+uint32(i/2), v[i], v[i+1])
	}
}

func (c *Context) DepthBoundsEXT(zmin, zmax float64) {
	c.record("DepthBoundsEXT", 0, 0)
	c.Set(gles.GLenum_GL_DEPTH_BOUNDS_EXT, zmin, zmax)
}

func (c *Context) StencilFuncSeparate(face, fn gles.GLenum, ref int32, mask uint32) {
	c.record("StencilFuncSeparate", face, 0)
	for _, n := range stencilFaces(face) {
		c.Set(n.fn, float64(fn))
		c.Set(n.ref, float64(ref))
		c.Set(n.valueMask, float64(mask))
	}
}

func (c *Context) StencilMaskSeparate(face gles.GLenum, mask uint32) {
	c.record("StencilMaskSeparate", face, 0)
	for _, n := range stencilFaces(face) {
		c.Set(n.writeMask, float64(mask))
	}
}

func (c *Context) StencilOpSeparate(face, sfail, dpfail, dppass gles.GLenum) {
	c.record("StencilOpSeparate", face, 0)
	for _, n := range stencilFaces(face) {
		c.Set(n.fail, float64(sfail))
		c.Set(n.depthFail, float64(dpfail))
		c.Set(n.pass, float64(dppass))
	}
}

func (c *Context) ClearStencil(s int32) {
	c.record("ClearStencil", 0, 0)
	c.Set(gles.GLenum_GL_STENCIL_CLEAR_VALUE, float64(s))
}

func (c *Context) ColorMaski(buf uint32, r, g, b, a bool) {
	c.record("ColorMaski", 0, buf)
	c.Seti(gles.GLenum_GL_COLOR_WRITEMASK, buf, fromBool(r), fromBool(g), fromBool(b), fromBool(a))
}

func (c *Context) SampleMaski(index uint32, mask gles.GLbitfield) {
	c.record("SampleMaski", 0, index)
	c.Seti(gles.GLenum_GL_SAMPLE_MASK_VALUE, index, float64(mask))
}

func (c *Context) SampleCoverage(value float32, invert bool) {
	c.record("SampleCoverage", 0, 0)
	c.Set(gles.GLenum_GL_SAMPLE_COVERAGE_VALUE, float64(value))
	c.Set(gles.GLenum_GL_SAMPLE_COVERAGE_INVERT, fromBool(invert))
}

func (c *Context) MinSampleShading(value float32) {
	c.record("MinSampleShading", 0, 0)
	c.Set(gles.GLenum_GL_MIN_SAMPLE_SHADING_VALUE, float64(value))
}

func (c *Context) LogicOp(op gles.GLenum) {
	c.record("LogicOp", op, 0)
	c.Set(gles.GLenum_GL_LOGIC_OP_MODE, float64(op))
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.record("ClearColor", 0, 0)
	c.Set(gles.GLenum_GL_COLOR_CLEAR_VALUE, floats32([]float32{r, g, b, a})...)
}

func (c *Context) PatchParameteri(pname gles.GLenum, v int32) {
	c.record("PatchParameteri", pname, 0)
	c.Set(pname, float64(v))
}

func (c *Context) PatchParameterfv(pname gles.GLenum, v []float32) {
	c.record("PatchParameterfv", pname, 0)
	c.Set(pname, floats32(v)...)
}

func (c *Context) PolygonMode(face, mode gles.GLenum) {
	c.record("PolygonMode", face, 0)
	c.Set(gles.GLenum_GL_POLYGON_MODE, float64(mode), float64(mode))
}

func (c *Context) PolygonOffset(factor, units float32) {
	c.record("PolygonOffset", 0, 0)
	c.Set(gles.GLenum_GL_POLYGON_OFFSET_FACTOR, float64(factor))
	c.Set(gles.GLenum_GL_POLYGON_OFFSET_UNITS, float64(units))
}

func (c *Context) FrontFace(mode gles.GLenum) {
	c.record("FrontFace", mode, 0)
	c.Set(gles.GLenum_GL_FRONT_FACE, float64(mode))
}

func (c *Context) CullFace(mode gles.GLenum) {
	c.record("CullFace", mode, 0)
	c.Set(gles.GLenum_GL_CULL_FACE_MODE, float64(mode))
}
