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

package gles

// GLenum is a GL enumerant value.
type GLenum uint32

// GLbitfield is a GL bitfield value.
type GLbitfield uint32

// Capabilities.
const (
	GLenum_GL_CLIP_DISTANCE0                GLenum = 0x3000
	GLenum_GL_CLIP_DISTANCE1                GLenum = 0x3001
	GLenum_GL_CLIP_DISTANCE2                GLenum = 0x3002
	GLenum_GL_CLIP_DISTANCE3                GLenum = 0x3003
	GLenum_GL_CLIP_DISTANCE4                GLenum = 0x3004
	GLenum_GL_CLIP_DISTANCE5                GLenum = 0x3005
	GLenum_GL_CLIP_DISTANCE6                GLenum = 0x3006
	GLenum_GL_CLIP_DISTANCE7                GLenum = 0x3007
	GLenum_GL_COLOR_LOGIC_OP                GLenum = 0x0BF2
	GLenum_GL_CULL_FACE                     GLenum = 0x0B44
	GLenum_GL_DEPTH_CLAMP                   GLenum = 0x864F
	GLenum_GL_DEPTH_TEST                    GLenum = 0x0B71
	GLenum_GL_DITHER                        GLenum = 0x0BD0
	GLenum_GL_FRAMEBUFFER_SRGB              GLenum = 0x8DB9
	GLenum_GL_LINE_SMOOTH                   GLenum = 0x0B20
	GLenum_GL_MULTISAMPLE                   GLenum = 0x809D
	GLenum_GL_POLYGON_SMOOTH                GLenum = 0x0B41
	GLenum_GL_POLYGON_OFFSET_FILL           GLenum = 0x8037
	GLenum_GL_POLYGON_OFFSET_LINE           GLenum = 0x2A02
	GLenum_GL_POLYGON_OFFSET_POINT          GLenum = 0x2A01
	GLenum_GL_PROGRAM_POINT_SIZE            GLenum = 0x8642
	GLenum_GL_PRIMITIVE_RESTART             GLenum = 0x8F9D
	GLenum_GL_PRIMITIVE_RESTART_FIXED_INDEX GLenum = 0x8D69
	GLenum_GL_SAMPLE_ALPHA_TO_COVERAGE      GLenum = 0x809E
	GLenum_GL_SAMPLE_ALPHA_TO_ONE           GLenum = 0x809F
	GLenum_GL_SAMPLE_COVERAGE               GLenum = 0x80A0
	GLenum_GL_SAMPLE_MASK                   GLenum = 0x8E51
	GLenum_GL_STENCIL_TEST                  GLenum = 0x0B90
	GLenum_GL_TEXTURE_CUBE_MAP_SEAMLESS     GLenum = 0x884F
	GLenum_GL_BLEND                         GLenum = 0x0BE2
	GLenum_GL_SCISSOR_TEST                  GLenum = 0x0C11
)

// Texture units, objects and vertex attributes.
const (
	GLenum_GL_ACTIVE_TEXTURE             GLenum = 0x84E0
	GLenum_GL_TEXTURE0                   GLenum = 0x84C0
	GLenum_GL_TEXTURE_2D                 GLenum = 0x0DE1
	GLenum_GL_TEXTURE_BINDING_2D         GLenum = 0x8069
	GLenum_GL_SAMPLER_BINDING            GLenum = 0x8919
	GLenum_GL_VERTEX_ARRAY_BINDING       GLenum = 0x85B5
	GLenum_GL_TRANSFORM_FEEDBACK         GLenum = 0x8E22
	GLenum_GL_TRANSFORM_FEEDBACK_BINDING GLenum = 0x8E25
	GLenum_GL_MAX_VERTEX_ATTRIBS         GLenum = 0x8869
	GLenum_GL_CURRENT_VERTEX_ATTRIB      GLenum = 0x8626
)

// Rasterization parameters.
const (
	GLenum_GL_POINT_FADE_THRESHOLD_SIZE GLenum = 0x8128
	GLenum_GL_POINT_SPRITE_COORD_ORIGIN GLenum = 0x8CA0
	GLenum_GL_LINE_WIDTH                GLenum = 0x0B21
	GLenum_GL_POINT_SIZE                GLenum = 0x0B11
	GLenum_GL_PRIMITIVE_RESTART_INDEX   GLenum = 0x8F9E
	GLenum_GL_CLIP_ORIGIN               GLenum = 0x935C
	GLenum_GL_CLIP_DEPTH_MODE           GLenum = 0x935D
	GLenum_GL_LOWER_LEFT                GLenum = 0x8CA1
	GLenum_GL_UPPER_LEFT                GLenum = 0x8CA2
	GLenum_GL_NEGATIVE_ONE_TO_ONE       GLenum = 0x935E
	GLenum_GL_ZERO_TO_ONE               GLenum = 0x935F
	GLenum_GL_PROVOKING_VERTEX          GLenum = 0x8E4F
	GLenum_GL_FIRST_VERTEX_CONVENTION   GLenum = 0x8E4D
	GLenum_GL_LAST_VERTEX_CONVENTION    GLenum = 0x8E4E
)

// Programs and shader stages.
const (
	GLenum_GL_CURRENT_PROGRAM                     GLenum = 0x8B8D
	GLenum_GL_PROGRAM_PIPELINE_BINDING            GLenum = 0x825A
	GLenum_GL_VERTEX_SHADER                       GLenum = 0x8B31
	GLenum_GL_TESS_CONTROL_SHADER                 GLenum = 0x8E88
	GLenum_GL_TESS_EVALUATION_SHADER              GLenum = 0x8E87
	GLenum_GL_GEOMETRY_SHADER                     GLenum = 0x8DD9
	GLenum_GL_FRAGMENT_SHADER                     GLenum = 0x8B30
	GLenum_GL_COMPUTE_SHADER                      GLenum = 0x91B9
	GLenum_GL_ACTIVE_SUBROUTINE_UNIFORM_LOCATIONS GLenum = 0x8E47
)

// Buffer targets and their binding queries.
const (
	GLenum_GL_ARRAY_BUFFER                     GLenum = 0x8892
	GLenum_GL_ARRAY_BUFFER_BINDING             GLenum = 0x8894
	GLenum_GL_COPY_READ_BUFFER                 GLenum = 0x8F36
	GLenum_GL_COPY_READ_BUFFER_BINDING         GLenum = 0x8F36
	GLenum_GL_COPY_WRITE_BUFFER                GLenum = 0x8F37
	GLenum_GL_COPY_WRITE_BUFFER_BINDING        GLenum = 0x8F37
	GLenum_GL_DRAW_INDIRECT_BUFFER             GLenum = 0x8F3F
	GLenum_GL_DRAW_INDIRECT_BUFFER_BINDING     GLenum = 0x8F43
	GLenum_GL_DISPATCH_INDIRECT_BUFFER         GLenum = 0x90EE
	GLenum_GL_DISPATCH_INDIRECT_BUFFER_BINDING GLenum = 0x90EF
	GLenum_GL_PIXEL_PACK_BUFFER                GLenum = 0x88EB
	GLenum_GL_PIXEL_PACK_BUFFER_BINDING        GLenum = 0x88ED
	GLenum_GL_PIXEL_UNPACK_BUFFER              GLenum = 0x88EC
	GLenum_GL_PIXEL_UNPACK_BUFFER_BINDING      GLenum = 0x88EF
	GLenum_GL_QUERY_BUFFER                     GLenum = 0x9192
	GLenum_GL_QUERY_BUFFER_BINDING             GLenum = 0x9193
	GLenum_GL_TEXTURE_BUFFER                   GLenum = 0x8C2A
	GLenum_GL_TEXTURE_BUFFER_BINDING           GLenum = 0x8C2A

	GLenum_GL_ATOMIC_COUNTER_BUFFER                   GLenum = 0x92C0
	GLenum_GL_ATOMIC_COUNTER_BUFFER_BINDING           GLenum = 0x92C1
	GLenum_GL_ATOMIC_COUNTER_BUFFER_START             GLenum = 0x92C2
	GLenum_GL_ATOMIC_COUNTER_BUFFER_SIZE              GLenum = 0x92C3
	GLenum_GL_MAX_ATOMIC_COUNTER_BUFFER_BINDINGS      GLenum = 0x92DC
	GLenum_GL_SHADER_STORAGE_BUFFER                   GLenum = 0x90D2
	GLenum_GL_SHADER_STORAGE_BUFFER_BINDING           GLenum = 0x90D3
	GLenum_GL_SHADER_STORAGE_BUFFER_START             GLenum = 0x90D4
	GLenum_GL_SHADER_STORAGE_BUFFER_SIZE              GLenum = 0x90D5
	GLenum_GL_MAX_SHADER_STORAGE_BUFFER_BINDINGS      GLenum = 0x90DD
	GLenum_GL_TRANSFORM_FEEDBACK_BUFFER               GLenum = 0x8C8E
	GLenum_GL_TRANSFORM_FEEDBACK_BUFFER_BINDING       GLenum = 0x8C8F
	GLenum_GL_TRANSFORM_FEEDBACK_BUFFER_START         GLenum = 0x8C84
	GLenum_GL_TRANSFORM_FEEDBACK_BUFFER_SIZE          GLenum = 0x8C85
	GLenum_GL_MAX_TRANSFORM_FEEDBACK_SEPARATE_ATTRIBS GLenum = 0x8C8B
	GLenum_GL_UNIFORM_BUFFER                          GLenum = 0x8A11
	GLenum_GL_UNIFORM_BUFFER_BINDING                  GLenum = 0x8A28
	GLenum_GL_UNIFORM_BUFFER_START                    GLenum = 0x8A29
	GLenum_GL_UNIFORM_BUFFER_SIZE                     GLenum = 0x8A2A
	GLenum_GL_MAX_UNIFORM_BUFFER_BINDINGS             GLenum = 0x8A2F
)

// Blending.
const (
	GLenum_GL_BLEND_EQUATION_RGB   GLenum = 0x8009
	GLenum_GL_BLEND_EQUATION_ALPHA GLenum = 0x883D
	GLenum_GL_BLEND_SRC_RGB        GLenum = 0x80C9
	GLenum_GL_BLEND_SRC_ALPHA      GLenum = 0x80CB
	GLenum_GL_BLEND_DST_RGB        GLenum = 0x80C8
	GLenum_GL_BLEND_DST_ALPHA      GLenum = 0x80CA
	GLenum_GL_BLEND_COLOR          GLenum = 0x8005
	GLenum_GL_FUNC_ADD             GLenum = 0x8006
	GLenum_GL_ZERO                 GLenum = 0
	GLenum_GL_ONE                  GLenum = 1
)

// Viewports, framebuffers and draw buffers.
const (
	GLenum_GL_VIEWPORT                 GLenum = 0x0BA2
	GLenum_GL_SCISSOR_BOX              GLenum = 0x0C10
	GLenum_GL_DRAW_FRAMEBUFFER_BINDING GLenum = 0x8CA6
	GLenum_GL_READ_FRAMEBUFFER_BINDING GLenum = 0x8CAA
	GLenum_GL_DRAW_FRAMEBUFFER         GLenum = 0x8CA9
	GLenum_GL_READ_FRAMEBUFFER         GLenum = 0x8CA8
	GLenum_GL_FRAMEBUFFER              GLenum = 0x8D40
	GLenum_GL_DRAW_BUFFER0             GLenum = 0x8825
	GLenum_GL_NONE                     GLenum = 0
	GLenum_GL_FRONT_LEFT               GLenum = 0x0400
	GLenum_GL_FRONT_RIGHT              GLenum = 0x0401
	GLenum_GL_BACK_LEFT                GLenum = 0x0402
	GLenum_GL_BACK_RIGHT               GLenum = 0x0403
	GLenum_GL_FRONT                    GLenum = 0x0404
	GLenum_GL_BACK                     GLenum = 0x0405
	GLenum_GL_FRONT_AND_BACK           GLenum = 0x0408
	GLenum_GL_COLOR_ATTACHMENT0        GLenum = 0x8CE0
)

// Hints.
const (
	GLenum_GL_FRAGMENT_SHADER_DERIVATIVE_HINT GLenum = 0x8B8B
	GLenum_GL_LINE_SMOOTH_HINT                GLenum = 0x0C52
	GLenum_GL_POLYGON_SMOOTH_HINT             GLenum = 0x0C53
	GLenum_GL_TEXTURE_COMPRESSION_HINT        GLenum = 0x84EF
	GLenum_GL_DONT_CARE                       GLenum = 0x1100
	GLenum_GL_FASTEST                         GLenum = 0x1101
	GLenum_GL_NICEST                          GLenum = 0x1102
)

// Depth and stencil.
const (
	GLenum_GL_DEPTH_WRITEMASK              GLenum = 0x0B72
	GLenum_GL_DEPTH_CLEAR_VALUE            GLenum = 0x0B73
	GLenum_GL_DEPTH_FUNC                   GLenum = 0x0B74
	GLenum_GL_DEPTH_RANGE                  GLenum = 0x0B70
	GLenum_GL_DEPTH_BOUNDS_EXT             GLenum = 0x8891
	GLenum_GL_STENCIL_FUNC                 GLenum = 0x0B92
	GLenum_GL_STENCIL_VALUE_MASK           GLenum = 0x0B93
	GLenum_GL_STENCIL_FAIL                 GLenum = 0x0B94
	GLenum_GL_STENCIL_PASS_DEPTH_FAIL      GLenum = 0x0B95
	GLenum_GL_STENCIL_PASS_DEPTH_PASS      GLenum = 0x0B96
	GLenum_GL_STENCIL_REF                  GLenum = 0x0B97
	GLenum_GL_STENCIL_WRITEMASK            GLenum = 0x0B98
	GLenum_GL_STENCIL_BACK_FUNC            GLenum = 0x8800
	GLenum_GL_STENCIL_BACK_FAIL            GLenum = 0x8801
	GLenum_GL_STENCIL_BACK_PASS_DEPTH_FAIL GLenum = 0x8802
	GLenum_GL_STENCIL_BACK_PASS_DEPTH_PASS GLenum = 0x8803
	GLenum_GL_STENCIL_BACK_REF             GLenum = 0x8CA3
	GLenum_GL_STENCIL_BACK_VALUE_MASK      GLenum = 0x8CA4
	GLenum_GL_STENCIL_BACK_WRITEMASK       GLenum = 0x8CA5
	GLenum_GL_STENCIL_CLEAR_VALUE          GLenum = 0x0B91
	GLenum_GL_NEVER                        GLenum = 0x0200
	GLenum_GL_LESS                         GLenum = 0x0201
	GLenum_GL_EQUAL                        GLenum = 0x0202
	GLenum_GL_LEQUAL                       GLenum = 0x0203
	GLenum_GL_GREATER                      GLenum = 0x0204
	GLenum_GL_ALWAYS                       GLenum = 0x0207
	GLenum_GL_KEEP                         GLenum = 0x1E00
	GLenum_GL_REPLACE                      GLenum = 0x1E01
	GLenum_GL_INCR                         GLenum = 0x1E02
)

// Color, multisample, logic op and clear state.
const (
	GLenum_GL_COLOR_WRITEMASK          GLenum = 0x0C23
	GLenum_GL_SAMPLE_MASK_VALUE        GLenum = 0x8E52
	GLenum_GL_SAMPLE_COVERAGE_VALUE    GLenum = 0x80AA
	GLenum_GL_SAMPLE_COVERAGE_INVERT   GLenum = 0x80AB
	GLenum_GL_MIN_SAMPLE_SHADING_VALUE GLenum = 0x8C37
	GLenum_GL_LOGIC_OP_MODE            GLenum = 0x0BF0
	GLenum_GL_COPY                     GLenum = 0x1503
	GLenum_GL_XOR                      GLenum = 0x1506
	GLenum_GL_COLOR_CLEAR_VALUE        GLenum = 0x0C22
)

// Tessellation and polygon state.
const (
	GLenum_GL_PATCH_VERTICES            GLenum = 0x8E72
	GLenum_GL_PATCH_DEFAULT_INNER_LEVEL GLenum = 0x8E73
	GLenum_GL_PATCH_DEFAULT_OUTER_LEVEL GLenum = 0x8E74
	GLenum_GL_POLYGON_MODE              GLenum = 0x0B40
	GLenum_GL_POINT                     GLenum = 0x1B00
	GLenum_GL_LINE                      GLenum = 0x1B01
	GLenum_GL_FILL                      GLenum = 0x1B02
	GLenum_GL_POLYGON_OFFSET_FACTOR     GLenum = 0x8038
	GLenum_GL_POLYGON_OFFSET_UNITS      GLenum = 0x2A00
	GLenum_GL_FRONT_FACE                GLenum = 0x0B46
	GLenum_GL_CW                        GLenum = 0x0900
	GLenum_GL_CCW                       GLenum = 0x0901
	GLenum_GL_CULL_FACE_MODE            GLenum = 0x0B45
)
