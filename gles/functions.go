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

// Package gles declares the slice of the OpenGL API that the state engine
// reads and writes: enumerants, object handle types and the function table a
// live context must provide.
package gles

// Querier is the read half of a GL context. Output slices are filled up to
// their length; a query the driver does not answer leaves them unchanged.
type Querier interface {
	IsEnabled(capability GLenum) bool
	IsEnabledi(capability GLenum, index uint32) bool
	GetBooleanv(pname GLenum, out []bool)
	GetBooleani(pname GLenum, index uint32, out []bool)
	GetIntegerv(pname GLenum, out []int32)
	GetIntegeri(pname GLenum, index uint32, out []int32)
	GetInteger64i(pname GLenum, index uint32, out []int64)
	GetFloatv(pname GLenum, out []float32)
	GetFloati(pname GLenum, index uint32, out []float32)
	GetDoublev(pname GLenum, out []float64)
	GetDoublei(pname GLenum, index uint32, out []float64)
	GetVertexAttribfv(index uint32, pname GLenum, out []float32)
	GetProgramPipelineiv(pipeline PipelineId, pname GLenum, out []int32)
	GetProgramStageiv(program ProgramId, stage GLenum, pname GLenum, out []int32)
	GetUniformSubroutineuiv(stage GLenum, location int32, out []uint32)
}

// Setter is the write half of a GL context.
type Setter interface {
	Enable(capability GLenum)
	Disable(capability GLenum)
	Enablei(capability GLenum, index uint32)
	Disablei(capability GLenum, index uint32)

	ActiveTexture(unit GLenum)
	BindTexture(target GLenum, texture TextureId)
	BindSampler(unit uint32, sampler SamplerId)
	BindVertexArray(array VertexArrayId)
	BindTransformFeedback(target GLenum, feedback TransformFeedbackId)
	VertexAttrib4fv(index uint32, v [4]float32)

	PointParameterf(pname GLenum, v float32)
	PointParameteri(pname GLenum, v int32)
	LineWidth(width float32)
	PointSize(size float32)
	PrimitiveRestartIndex(index uint32)
	ClipControl(origin, depth GLenum)
	ProvokingVertex(mode GLenum)

	UseProgram(program ProgramId)
	BindProgramPipeline(pipeline PipelineId)
	UniformSubroutinesuiv(stage GLenum, indices []uint32)

	BindBuffer(target GLenum, buffer BufferId)
	BindBufferBase(target GLenum, index uint32, buffer BufferId)
	BindBufferRange(target GLenum, index uint32, buffer BufferId, offset, size int64)

	BlendFuncSeparatei(buf uint32, srcRGB, dstRGB, srcAlpha, dstAlpha GLenum)
	BlendEquationSeparatei(buf uint32, modeRGB, modeAlpha GLenum)
	BlendColor(r, g, b, a float32)

	ViewportArrayv(first uint32, v []float32)
	ScissorIndexedv(index uint32, v [4]int32)
	BindFramebuffer(target GLenum, framebuffer FramebufferId)
	DrawBuffers(bufs []GLenum)
	Hint(target, mode GLenum)

	DepthMask(flag bool)
	ClearDepthf(depth float32)
	DepthFunc(fn GLenum)
	DepthRangeArrayv(first uint32, v []float64)
	DepthBoundsEXT(zmin, zmax float64)

	StencilFuncSeparate(face, fn GLenum, ref int32, mask uint32)
	StencilMaskSeparate(face GLenum, mask uint32)
	StencilOpSeparate(face, sfail, dpfail, dppass GLenum)
	ClearStencil(s int32)

	ColorMaski(buf uint32, r, g, b, a bool)
	SampleMaski(index uint32, mask GLbitfield)
	SampleCoverage(value float32, invert bool)
	MinSampleShading(value float32)
	LogicOp(op GLenum)
	ClearColor(r, g, b, a float32)

	PatchParameteri(pname GLenum, v int32)
	PatchParameterfv(pname GLenum, v []float32)
	PolygonMode(face, mode GLenum)
	PolygonOffset(factor, units float32)
	FrontFace(mode GLenum)
	CullFace(mode GLenum)
}

// Functions is the full function table of a GL context.
type Functions interface {
	Querier
	Setter
}
