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

// Compiled capacities of the array categories. Device limits larger than
// these are clamped.
const (
	MaxTextureUnits             = 128
	MaxVertexAttribs            = 32
	MaxSubroutineUniforms       = 128
	MaxAtomicCounterBuffers     = 1
	MaxShaderStorageBuffers     = 8
	MaxTransformFeedbackBuffers = 4
	MaxUniformBuffers           = 84
	MaxDrawBuffers              = 8
	MaxViewports                = 16
)

// Snapshot holds one value for every piece of mutable context state.
//
// The zero value is the cleared baseline: every toggle false, every handle
// unbound and every number zero. Snapshot is comparable with ==.
type Snapshot struct {
	Enabled [CapabilityCount]bool

	Tex2D         [MaxTextureUnits]gles.TextureId
	Samplers      [MaxTextureUnits]gles.SamplerId
	ActiveTexture gles.GLenum

	VAO         gles.VertexArrayId
	FeedbackObj gles.TransformFeedbackId

	GenericVertexAttribs [MaxVertexAttribs][4]float32

	PointFadeThresholdSize float32
	PointSpriteOrigin      gles.GLenum
	LineWidth              float32
	PointSize              float32

	PrimitiveRestartIndex uint32
	ClipOrigin            gles.GLenum
	ClipDepth             gles.GLenum
	ProvokingVertex       gles.GLenum

	Program  gles.ProgramId
	Pipeline gles.PipelineId

	Subroutines [StageCount]Subroutines

	BufferBindings [BufferTargetCount]gles.BufferId

	AtomicCounter     [MaxAtomicCounterBuffers]IndexedBuffer
	ShaderStorage     [MaxShaderStorageBuffers]IndexedBuffer
	TransformFeedback [MaxTransformFeedbackBuffers]IndexedBuffer
	UniformBinding    [MaxUniformBuffers]IndexedBuffer

	Blends     [MaxDrawBuffers]Blend
	BlendColor [4]float32

	Viewports [MaxViewports]Viewport
	Scissors  [MaxViewports]Scissor

	DrawFBO gles.FramebufferId
	ReadFBO gles.FramebufferId

	DrawBuffers [MaxDrawBuffers]gles.GLenum

	Hints Hints

	DepthWriteMask  bool
	DepthClearValue float32
	DepthFunc       gles.GLenum
	DepthRanges     [MaxViewports]DepthRange
	DepthBounds     DepthRange

	StencilFront      Stencil
	StencilBack       Stencil
	StencilClearValue int32

	ColorMasks [MaxDrawBuffers]ColorMask

	SampleMask           uint32
	SampleCoverage       float32
	SampleCoverageInvert bool
	MinSampleShading     float32

	LogicOp         gles.GLenum
	ColorClearValue [4]float32

	PatchParams   PatchParams
	PolygonMode   gles.GLenum
	PolygonOffset [2]float32 // factor, units

	FrontFace gles.GLenum
	CullFace  gles.GLenum
}

// Subroutines is the subroutine uniform assignment of one shader stage.
// Only the first Count values are meaningful.
type Subroutines struct {
	Count  int32
	Values [MaxSubroutineUniforms]uint32
}

// IndexedBuffer is one binding point of an indexed buffer target. Start and
// Size both zero means the whole buffer is bound.
type IndexedBuffer struct {
	Name  gles.BufferId
	Start int64
	Size  int64
}

// Blend is the blend state of one draw buffer.
type Blend struct {
	SourceRGB        gles.GLenum
	SourceAlpha      gles.GLenum
	DestinationRGB   gles.GLenum
	DestinationAlpha gles.GLenum
	EquationRGB      gles.GLenum
	EquationAlpha    gles.GLenum
	Enabled          bool
}

// Viewport is one viewport rectangle, in window coordinates.
type Viewport struct {
	X, Y, Width, Height float32
}

// Scissor is one scissor box and whether its test is enabled.
type Scissor struct {
	X, Y, Width, Height int32
	Enabled             bool
}

// Hints holds the implementation quality hints.
type Hints struct {
	Derivatives    gles.GLenum
	LineSmooth     gles.GLenum
	PolySmooth     gles.GLenum
	TexCompression gles.GLenum
}

// DepthRange is a near and far pair, used for both depth ranges and depth
// bounds.
type DepthRange struct {
	Near, Far float64
}

// Stencil is the stencil state of one face. Masks keep the low 8 bits only.
type Stencil struct {
	Func        gles.GLenum
	Ref         int32
	ValueMask   uint8
	WriteMask   uint8
	StencilFail gles.GLenum
	DepthFail   gles.GLenum
	Pass        gles.GLenum
}

// ColorMask is the channel write mask of one draw buffer.
type ColorMask struct {
	Red, Green, Blue, Alpha bool
}

// PatchParams holds the tessellation patch size and the default levels
// used when no tessellation control shader is bound.
type PatchParams struct {
	Vertices          int32
	DefaultInnerLevel [2]float32
	DefaultOuterLevel [4]float32
}

// Clear resets s to the zero baseline.
func (s *Snapshot) Clear() {
	*s = Snapshot{}
}
