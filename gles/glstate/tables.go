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

import "github.com/google/glstate/gles"

// Capability indexes Snapshot.Enabled.
type Capability int

const (
	ClipDistance0 Capability = iota
	ClipDistance1
	ClipDistance2
	ClipDistance3
	ClipDistance4
	ClipDistance5
	ClipDistance6
	ClipDistance7
	ColorLogicOp
	CullFace
	DepthClamp
	DepthTest
	Dither
	FramebufferSRGB
	LineSmooth
	Multisample
	PolygonSmooth
	PolygonOffsetFill
	PolygonOffsetLine
	PolygonOffsetPoint
	ProgramPointSize
	PrimitiveRestart
	PrimitiveRestartFixedIndex
	SampleAlphaToCoverage
	SampleAlphaToOne
	SampleCoverage
	SampleMask
	StencilTest
	TextureCubeMapSeamless

	CapabilityCount
)

// capabilities holds the GL enum of each Capability, in Capability order.
var capabilities = [...]gles.GLenum{
	gles.GLenum_GL_CLIP_DISTANCE0,
	gles.GLenum_GL_CLIP_DISTANCE1,
	gles.GLenum_GL_CLIP_DISTANCE2,
	gles.GLenum_GL_CLIP_DISTANCE3,
	gles.GLenum_GL_CLIP_DISTANCE4,
	gles.GLenum_GL_CLIP_DISTANCE5,
	gles.GLenum_GL_CLIP_DISTANCE6,
	gles.GLenum_GL_CLIP_DISTANCE7,
	gles.GLenum_GL_COLOR_LOGIC_OP,
	gles.GLenum_GL_CULL_FACE,
	gles.GLenum_GL_DEPTH_CLAMP,
	gles.GLenum_GL_DEPTH_TEST,
	gles.GLenum_GL_DITHER,
	gles.GLenum_GL_FRAMEBUFFER_SRGB,
	gles.GLenum_GL_LINE_SMOOTH,
	gles.GLenum_GL_MULTISAMPLE,
	gles.GLenum_GL_POLYGON_SMOOTH,
	gles.GLenum_GL_POLYGON_OFFSET_FILL,
	gles.GLenum_GL_POLYGON_OFFSET_LINE,
	gles.GLenum_GL_POLYGON_OFFSET_POINT,
	gles.GLenum_GL_PROGRAM_POINT_SIZE,
	gles.GLenum_GL_PRIMITIVE_RESTART,
	gles.GLenum_GL_PRIMITIVE_RESTART_FIXED_INDEX,
	gles.GLenum_GL_SAMPLE_ALPHA_TO_COVERAGE,
	gles.GLenum_GL_SAMPLE_ALPHA_TO_ONE,
	gles.GLenum_GL_SAMPLE_COVERAGE,
	gles.GLenum_GL_SAMPLE_MASK,
	gles.GLenum_GL_STENCIL_TEST,
	gles.GLenum_GL_TEXTURE_CUBE_MAP_SEAMLESS,
}

// Enum returns the GL enum toggled by c.
func (c Capability) Enum() gles.GLenum { return capabilities[c] }

// StageCount is the number of shader stages with subroutine state.
const StageCount = 6

// stages is the order of Snapshot.Subroutines.
var stages = [...]gles.GLenum{
	gles.GLenum_GL_VERTEX_SHADER,
	gles.GLenum_GL_TESS_CONTROL_SHADER,
	gles.GLenum_GL_TESS_EVALUATION_SHADER,
	gles.GLenum_GL_GEOMETRY_SHADER,
	gles.GLenum_GL_FRAGMENT_SHADER,
	gles.GLenum_GL_COMPUTE_SHADER,
}

// Stage returns the shader stage enum of Snapshot.Subroutines[i].
func Stage(i int) gles.GLenum { return stages[i] }

// BufferTarget indexes Snapshot.BufferBindings.
type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	CopyReadBuffer
	CopyWriteBuffer
	DrawIndirectBuffer
	DispatchIndirectBuffer
	PixelPackBuffer
	PixelUnpackBuffer
	QueryBuffer
	TextureBuffer

	BufferTargetCount
)

type bufferTarget struct {
	target  gles.GLenum
	binding gles.GLenum
}

var bufferTargets = [...]bufferTarget{
	{gles.GLenum_GL_ARRAY_BUFFER, gles.GLenum_GL_ARRAY_BUFFER_BINDING},
	{gles.GLenum_GL_COPY_READ_BUFFER, gles.GLenum_GL_COPY_READ_BUFFER_BINDING},
	{gles.GLenum_GL_COPY_WRITE_BUFFER, gles.GLenum_GL_COPY_WRITE_BUFFER_BINDING},
	{gles.GLenum_GL_DRAW_INDIRECT_BUFFER, gles.GLenum_GL_DRAW_INDIRECT_BUFFER_BINDING},
	{gles.GLenum_GL_DISPATCH_INDIRECT_BUFFER, gles.GLenum_GL_DISPATCH_INDIRECT_BUFFER_BINDING},
	{gles.GLenum_GL_PIXEL_PACK_BUFFER, gles.GLenum_GL_PIXEL_PACK_BUFFER_BINDING},
	{gles.GLenum_GL_PIXEL_UNPACK_BUFFER, gles.GLenum_GL_PIXEL_UNPACK_BUFFER_BINDING},
	{gles.GLenum_GL_QUERY_BUFFER, gles.GLenum_GL_QUERY_BUFFER_BINDING},
	{gles.GLenum_GL_TEXTURE_BUFFER, gles.GLenum_GL_TEXTURE_BUFFER_BINDING},
}

// Target returns the GL bind target of b.
func (b BufferTarget) Target() gles.GLenum { return bufferTargets[b].target }

// indexedKind describes one of the indexed-range buffer arrays.
type indexedKind struct {
	name    string
	target  gles.GLenum
	binding gles.GLenum
	start   gles.GLenum
	size    gles.GLenum
	max     gles.GLenum // device limit query
	buffers func(*Snapshot) []IndexedBuffer
}

const indexedKindCount = 4

var indexedKinds = [...]indexedKind{
	{
		name:    "atomic counter",
		target:  gles.GLenum_GL_ATOMIC_COUNTER_BUFFER,
		binding: gles.GLenum_GL_ATOMIC_COUNTER_BUFFER_BINDING,
		start:   gles.GLenum_GL_ATOMIC_COUNTER_BUFFER_START,
		size:    gles.GLenum_GL_ATOMIC_COUNTER_BUFFER_SIZE,
		max:     gles.GLenum_GL_MAX_ATOMIC_COUNTER_BUFFER_BINDINGS,
		buffers: func(s *Snapshot) []IndexedBuffer { return s.AtomicCounter[:] },
	}, {
		name:    "shader storage",
		target:  gles.GLenum_GL_SHADER_STORAGE_BUFFER,
		binding: gles.GLenum_GL_SHADER_STORAGE_BUFFER_BINDING,
		start:   gles.GLenum_GL_SHADER_STORAGE_BUFFER_START,
		size:    gles.GLenum_GL_SHADER_STORAGE_BUFFER_SIZE,
		max:     gles.GLenum_GL_MAX_SHADER_STORAGE_BUFFER_BINDINGS,
		buffers: func(s *Snapshot) []IndexedBuffer { return s.ShaderStorage[:] },
	}, {
		name:    "transform feedback",
		target:  gles.GLenum_GL_TRANSFORM_FEEDBACK_BUFFER,
		binding: gles.GLenum_GL_TRANSFORM_FEEDBACK_BUFFER_BINDING,
		start:   gles.GLenum_GL_TRANSFORM_FEEDBACK_BUFFER_START,
		size:    gles.GLenum_GL_TRANSFORM_FEEDBACK_BUFFER_SIZE,
		max:     gles.GLenum_GL_MAX_TRANSFORM_FEEDBACK_SEPARATE_ATTRIBS,
		buffers: func(s *Snapshot) []IndexedBuffer { return s.TransformFeedback[:] },
	}, {
		name:    "uniform",
		target:  gles.GLenum_GL_UNIFORM_BUFFER,
		binding: gles.GLenum_GL_UNIFORM_BUFFER_BINDING,
		start:   gles.GLenum_GL_UNIFORM_BUFFER_START,
		size:    gles.GLenum_GL_UNIFORM_BUFFER_SIZE,
		max:     gles.GLenum_GL_MAX_UNIFORM_BUFFER_BINDINGS,
		buffers: func(s *Snapshot) []IndexedBuffer { return s.UniformBinding[:] },
	},
}

// Each table must have exactly one entry per index of the array it
// describes. A mismatch in either direction gives a negative array length.
var (
	_ [int(CapabilityCount) - len(capabilities)]struct{}
	_ [len(capabilities) - int(CapabilityCount)]struct{}
	_ [StageCount - len(stages)]struct{}
	_ [len(stages) - StageCount]struct{}
	_ [int(BufferTargetCount) - len(bufferTargets)]struct{}
	_ [len(bufferTargets) - int(BufferTargetCount)]struct{}
	_ [indexedKindCount - len(indexedKinds)]struct{}
	_ [len(indexedKinds) - indexedKindCount]struct{}
)
