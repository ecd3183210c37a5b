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
	"github.com/google/glstate/gles"
	"github.com/google/glstate/resource"
)

// category is one independent piece of context state. fetch and apply are
// skipped when the pass lacks the required features, in which case fetch
// is replaced by fallback. serialise always runs, so the stream layout never
// depends on the device.
type category struct {
	name      string
	requires  feature
	fallback  func(*Snapshot)
	fetch     func(*pass, *Snapshot)
	apply     func(*pass, *Snapshot)
	serialise func(*codec, *Snapshot)
}

// categories is the traversal order of Fetch, Apply and Serialise.
var categories = [...]category{
	{
		name: "capabilities",
		fetch: func(p *pass, s *Snapshot) {
			for i, e := range capabilities {
				s.Enabled[i] = p.c.IsEnabled(e)
			}
		},
		apply: func(p *pass, s *Snapshot) {
			for i, e := range capabilities {
				if s.Enabled[i] {
					p.c.Enable(e)
				} else {
					p.c.Disable(e)
				}
			}
		},
		serialise: func(c *codec, s *Snapshot) { c.booleans(s.Enabled[:]) },
	}, {
		name: "texture units",
		fetch: func(p *pass, s *Snapshot) {
			s.ActiveTexture = p.enum(gles.GLenum_GL_ACTIVE_TEXTURE)
			p.textureUnits(s.ActiveTexture, func(u uint32) {
				s.Tex2D[u] = gles.TextureId(p.integer(gles.GLenum_GL_TEXTURE_BINDING_2D))
				s.Samplers[u] = gles.SamplerId(p.integer(gles.GLenum_GL_SAMPLER_BINDING))
			})
		},
		apply: func(p *pass, s *Snapshot) {
			p.textureUnits(s.ActiveTexture, func(u uint32) {
				p.c.BindTexture(gles.GLenum_GL_TEXTURE_2D, s.Tex2D[u])
				p.c.BindSampler(u, s.Samplers[u])
			})
		},
		serialise: func(c *codec, s *Snapshot) {
			for i := range s.Tex2D {
				handle(c, resource.Texture, &s.Tex2D[i])
			}
			for i := range s.Samplers {
				handle(c, resource.Sampler, &s.Samplers[i])
			}
			c.enum(&s.ActiveTexture)
		},
	}, {
		name: "vertex array and transform feedback objects",
		fetch: func(p *pass, s *Snapshot) {
			s.VAO = gles.VertexArrayId(p.integer(gles.GLenum_GL_VERTEX_ARRAY_BINDING))
			s.FeedbackObj = gles.TransformFeedbackId(p.integer(gles.GLenum_GL_TRANSFORM_FEEDBACK_BINDING))
		},
		apply: func(p *pass, s *Snapshot) {
			p.c.BindVertexArray(s.VAO)
			p.c.BindTransformFeedback(gles.GLenum_GL_TRANSFORM_FEEDBACK, s.FeedbackObj)
		},
		serialise: func(c *codec, s *Snapshot) {
			handle(c, resource.VertexArray, &s.VAO)
			handle(c, resource.TransformFeedback, &s.FeedbackObj)
		},
	}, {
		// The current value can only be read back in the type it was last set
		// with, and that type cannot be queried. Reading floats is correct for
		// the common all-zero default.
		name: "generic vertex attributes",
		fetch: func(p *pass, s *Snapshot) {
			n := p.limit(gles.GLenum_GL_MAX_VERTEX_ATTRIBS, MaxVertexAttribs)
			for i := 0; i < n; i++ {
				p.c.GetVertexAttribfv(uint32(i), gles.GLenum_GL_CURRENT_VERTEX_ATTRIB, s.GenericVertexAttribs[i][:])
			}
		},
		apply: func(p *pass, s *Snapshot) {
			n := p.limit(gles.GLenum_GL_MAX_VERTEX_ATTRIBS, MaxVertexAttribs)
			for i := 0; i < n; i++ {
				p.c.VertexAttrib4fv(uint32(i), s.GenericVertexAttribs[i])
			}
		},
		serialise: func(c *codec, s *Snapshot) {
			for i := range s.GenericVertexAttribs {
				c.f32s(s.GenericVertexAttribs[i][:])
			}
		},
	}, {
		name: "points and lines",
		fetch: func(p *pass, s *Snapshot) {
			s.PointFadeThresholdSize = p.float(gles.GLenum_GL_POINT_FADE_THRESHOLD_SIZE)
			s.PointSpriteOrigin = p.enum(gles.GLenum_GL_POINT_SPRITE_COORD_ORIGIN)
			s.LineWidth = p.float(gles.GLenum_GL_LINE_WIDTH)
			s.PointSize = p.float(gles.GLenum_GL_POINT_SIZE)
		},
		apply: func(p *pass, s *Snapshot) {
			p.c.PointParameterf(gles.GLenum_GL_POINT_FADE_THRESHOLD_SIZE, s.PointFadeThresholdSize)
			p.c.PointParameteri(gles.GLenum_GL_POINT_SPRITE_COORD_ORIGIN, int32(s.PointSpriteOrigin))
			p.c.LineWidth(s.LineWidth)
			p.c.PointSize(s.PointSize)
		},
		serialise: func(c *codec, s *Snapshot) {
			c.f32(&s.PointFadeThresholdSize)
			c.enum(&s.PointSpriteOrigin)
			c.f32(&s.LineWidth)
			c.f32(&s.PointSize)
		},
	}, {
		name: "primitive restart index",
		fetch: func(p *pass, s *Snapshot) {
			s.PrimitiveRestartIndex = uint32(p.integer(gles.GLenum_GL_PRIMITIVE_RESTART_INDEX))
		},
		apply:     func(p *pass, s *Snapshot) { p.c.PrimitiveRestartIndex(s.PrimitiveRestartIndex) },
		serialise: func(c *codec, s *Snapshot) { c.u32(&s.PrimitiveRestartIndex) },
	}, {
		name:     "clip control",
		requires: clipControl,
		fallback: func(s *Snapshot) {
			s.ClipOrigin = gles.GLenum_GL_LOWER_LEFT
			s.ClipDepth = gles.GLenum_GL_NEGATIVE_ONE_TO_ONE
		},
		fetch: func(p *pass, s *Snapshot) {
			s.ClipOrigin = p.enum(gles.GLenum_GL_CLIP_ORIGIN)
			s.ClipDepth = p.enum(gles.GLenum_GL_CLIP_DEPTH_MODE)
		},
		apply: func(p *pass, s *Snapshot) { p.c.ClipControl(s.ClipOrigin, s.ClipDepth) },
		serialise: func(c *codec, s *Snapshot) {
			c.enum(&s.ClipOrigin)
			c.enum(&s.ClipDepth)
		},
	}, {
		name:      "provoking vertex",
		fetch:     func(p *pass, s *Snapshot) { s.ProvokingVertex = p.enum(gles.GLenum_GL_PROVOKING_VERTEX) },
		apply:     func(p *pass, s *Snapshot) { p.c.ProvokingVertex(s.ProvokingVertex) },
		serialise: func(c *codec, s *Snapshot) { c.enum(&s.ProvokingVertex) },
	}, {
		name: "program",
		fetch: func(p *pass, s *Snapshot) {
			s.Program = gles.ProgramId(p.integer(gles.GLenum_GL_CURRENT_PROGRAM))
			s.Pipeline = gles.PipelineId(p.integer(gles.GLenum_GL_PROGRAM_PIPELINE_BINDING))
		},
		apply: func(p *pass, s *Snapshot) {
			p.c.UseProgram(s.Program)
			p.c.BindProgramPipeline(s.Pipeline)
		},
		serialise: func(c *codec, s *Snapshot) {
			handle(c, resource.Program, &s.Program)
			handle(c, resource.Pipeline, &s.Pipeline)
		},
	}, {
		name:  "subroutine uniforms",
		fetch: fetchSubroutines,
		apply: func(p *pass, s *Snapshot) {
			for i, stage := range stages {
				if n := clampCount(s.Subroutines[i].Count); n > 0 {
					p.c.UniformSubroutinesuiv(stage, s.Subroutines[i].Values[:n])
				}
			}
		},
		serialise: func(c *codec, s *Snapshot) {
			for i := range s.Subroutines {
				c.i32(&s.Subroutines[i].Count)
				c.u32s(s.Subroutines[i].Values[:])
			}
		},
	}, {
		name: "buffer bindings",
		fetch: func(p *pass, s *Snapshot) {
			for i, t := range bufferTargets {
				s.BufferBindings[i] = gles.BufferId(p.integer(t.binding))
			}
		},
		apply: func(p *pass, s *Snapshot) {
			for i, t := range bufferTargets {
				p.c.BindBuffer(t.target, s.BufferBindings[i])
			}
		},
		serialise: func(c *codec, s *Snapshot) {
			for i := range s.BufferBindings {
				handle(c, resource.Buffer, &s.BufferBindings[i])
			}
		},
	}, {
		name:  "indexed buffer bindings",
		fetch: fetchIndexedBuffers,
		apply: applyIndexedBuffers,
		serialise: func(c *codec, s *Snapshot) {
			for _, k := range indexedKinds {
				bufs := k.buffers(s)
				for i := range bufs {
					handle(c, resource.Buffer, &bufs[i].Name)
					c.i64(&bufs[i].Start)
					c.i64(&bufs[i].Size)
				}
			}
		},
	}, {
		name: "blending",
		fetch: func(p *pass, s *Snapshot) {
			for i := range s.Blends {
				b, u := &s.Blends[i], uint32(i)
				b.EquationRGB = p.enumi(gles.GLenum_GL_BLEND_EQUATION_RGB, u)
				b.EquationAlpha = p.enumi(gles.GLenum_GL_BLEND_EQUATION_ALPHA, u)
				b.SourceRGB = p.enumi(gles.GLenum_GL_BLEND_SRC_RGB, u)
				b.SourceAlpha = p.enumi(gles.GLenum_GL_BLEND_SRC_ALPHA, u)
				b.DestinationRGB = p.enumi(gles.GLenum_GL_BLEND_DST_RGB, u)
				b.DestinationAlpha = p.enumi(gles.GLenum_GL_BLEND_DST_ALPHA, u)
				b.Enabled = p.c.IsEnabledi(gles.GLenum_GL_BLEND, u)
			}
		},
		apply: func(p *pass, s *Snapshot) {
			for i, b := range s.Blends {
				u := uint32(i)
				p.c.BlendFuncSeparatei(u, b.SourceRGB, b.DestinationRGB, b.SourceAlpha, b.DestinationAlpha)
				p.c.BlendEquationSeparatei(u, b.EquationRGB, b.EquationAlpha)
				p.enablei(gles.GLenum_GL_BLEND, u, b.Enabled)
			}
		},
		serialise: func(c *codec, s *Snapshot) {
			for i := range s.Blends {
				b := &s.Blends[i]
				c.enum(&b.EquationRGB)
				c.enum(&b.EquationAlpha)
				c.enum(&b.SourceRGB)
				c.enum(&b.SourceAlpha)
				c.enum(&b.DestinationRGB)
				c.enum(&b.DestinationAlpha)
				c.boolean(&b.Enabled)
			}
		},
	}, {
		name:  "blend color",
		fetch: func(p *pass, s *Snapshot) { p.c.GetFloatv(gles.GLenum_GL_BLEND_COLOR, s.BlendColor[:]) },
		apply: func(p *pass, s *Snapshot) {
			p.c.BlendColor(s.BlendColor[0], s.BlendColor[1], s.BlendColor[2], s.BlendColor[3])
		},
		serialise: func(c *codec, s *Snapshot) { c.f32s(s.BlendColor[:]) },
	}, {
		name: "viewports",
		fetch: func(p *pass, s *Snapshot) {
			for i := range s.Viewports {
				var v [4]float32
				p.c.GetFloati(gles.GLenum_GL_VIEWPORT, uint32(i), v[:])
				s.Viewports[i] = Viewport{v[0], v[1], v[2], v[3]}
			}
		},
		apply: func(p *pass, s *Snapshot) {
			v := make([]float32, 0, 4*len(s.Viewports))
			for _, vp := range s.Viewports {
				v = append(v, vp.X, vp.Y, vp.Width, vp.Height)
			}
			p.c.ViewportArrayv(0, v)
		},
		serialise: func(c *codec, s *Snapshot) {
			for i := range s.Viewports {
				vp := &s.Viewports[i]
				c.f32(&vp.X)
				c.f32(&vp.Y)
				c.f32(&vp.Width)
				c.f32(&vp.Height)
			}
		},
	}, {
		name: "scissors",
		fetch: func(p *pass, s *Snapshot) {
			for i := range s.Scissors {
				var v [4]int32
				p.c.GetIntegeri(gles.GLenum_GL_SCISSOR_BOX, uint32(i), v[:])
				s.Scissors[i] = Scissor{
					X: v[0], Y: v[1], Width: v[2], Height: v[3],
					Enabled: p.c.IsEnabledi(gles.GLenum_GL_SCISSOR_TEST, uint32(i)),
				}
			}
		},
		apply: func(p *pass, s *Snapshot) {
			for i, sc := range s.Scissors {
				p.c.ScissorIndexedv(uint32(i), [4]int32{sc.X, sc.Y, sc.Width, sc.Height})
				p.enablei(gles.GLenum_GL_SCISSOR_TEST, uint32(i), sc.Enabled)
			}
		},
		serialise: func(c *codec, s *Snapshot) {
			for i := range s.Scissors {
				sc := &s.Scissors[i]
				c.i32(&sc.X)
				c.i32(&sc.Y)
				c.i32(&sc.Width)
				c.i32(&sc.Height)
				c.boolean(&sc.Enabled)
			}
		},
	}, {
		name: "framebuffers",
		fetch: func(p *pass, s *Snapshot) {
			s.DrawFBO = gles.FramebufferId(p.integer(gles.GLenum_GL_DRAW_FRAMEBUFFER_BINDING))
			s.ReadFBO = gles.FramebufferId(p.integer(gles.GLenum_GL_READ_FRAMEBUFFER_BINDING))
		},
		apply: func(p *pass, s *Snapshot) {
			p.c.BindFramebuffer(gles.GLenum_GL_READ_FRAMEBUFFER, p.framebuffer(s.ReadFBO))
			p.c.BindFramebuffer(gles.GLenum_GL_DRAW_FRAMEBUFFER, p.framebuffer(s.DrawFBO))
		},
		serialise: func(c *codec, s *Snapshot) {
			c.framebuffer(&s.DrawFBO)
			c.framebuffer(&s.ReadFBO)
		},
	}, {
		name: "draw buffers",
		fetch: func(p *pass, s *Snapshot) {
			for i := range s.DrawBuffers {
				s.DrawBuffers[i] = p.enum(gles.GLenum_GL_DRAW_BUFFER0 + gles.GLenum(i))
			}
		},
		apply: func(p *pass, s *Snapshot) {
			bufs := make([]gles.GLenum, 0, len(s.DrawBuffers))
			for _, b := range s.DrawBuffers {
				if b == gles.GLenum_GL_NONE {
					break
				}
				if p.replay {
					b = replayDrawBuffer(b)
				}
				bufs = append(bufs, b)
			}
			p.c.DrawBuffers(bufs)
		},
		serialise: func(c *codec, s *Snapshot) { c.enums(s.DrawBuffers[:]) },
	}, {
		name: "hints",
		fetch: func(p *pass, s *Snapshot) {
			s.Hints.Derivatives = p.enum(gles.GLenum_GL_FRAGMENT_SHADER_DERIVATIVE_HINT)
			s.Hints.LineSmooth = p.enum(gles.GLenum_GL_LINE_SMOOTH_HINT)
			s.Hints.PolySmooth = p.enum(gles.GLenum_GL_POLYGON_SMOOTH_HINT)
			s.Hints.TexCompression = p.enum(gles.GLenum_GL_TEXTURE_COMPRESSION_HINT)
		},
		apply: func(p *pass, s *Snapshot) {
			p.c.Hint(gles.GLenum_GL_FRAGMENT_SHADER_DERIVATIVE_HINT, s.Hints.Derivatives)
			p.c.Hint(gles.GLenum_GL_LINE_SMOOTH_HINT, s.Hints.LineSmooth)
			p.c.Hint(gles.GLenum_GL_POLYGON_SMOOTH_HINT, s.Hints.PolySmooth)
			p.c.Hint(gles.GLenum_GL_TEXTURE_COMPRESSION_HINT, s.Hints.TexCompression)
		},
		serialise: func(c *codec, s *Snapshot) {
			c.enum(&s.Hints.Derivatives)
			c.enum(&s.Hints.LineSmooth)
			c.enum(&s.Hints.PolySmooth)
			c.enum(&s.Hints.TexCompression)
		},
	}, {
		name: "depth",
		fetch: func(p *pass, s *Snapshot) {
			s.DepthWriteMask = p.boolean(gles.GLenum_GL_DEPTH_WRITEMASK)
			s.DepthClearValue = p.float(gles.GLenum_GL_DEPTH_CLEAR_VALUE)
			s.DepthFunc = p.enum(gles.GLenum_GL_DEPTH_FUNC)
		},
		apply: func(p *pass, s *Snapshot) {
			p.c.DepthMask(s.DepthWriteMask)
			p.c.ClearDepthf(s.DepthClearValue)
			p.c.DepthFunc(s.DepthFunc)
		},
		serialise: func(c *codec, s *Snapshot) {
			c.boolean(&s.DepthWriteMask)
			c.f32(&s.DepthClearValue)
			c.enum(&s.DepthFunc)
		},
	}, {
		// Unlike the other indexed arrays this one is not clamped to a device
		// limit; every viewport slot is read and written.
		name: "depth ranges",
		fetch: func(p *pass, s *Snapshot) {
			for i := range s.DepthRanges {
				var v [2]float64
				p.c.GetDoublei(gles.GLenum_GL_DEPTH_RANGE, uint32(i), v[:])
				s.DepthRanges[i] = DepthRange{v[0], v[1]}
			}
		},
		apply: func(p *pass, s *Snapshot) {
			for i, r := range s.DepthRanges {
				p.c.DepthRangeArrayv(uint32(i), []float64{r.Near, r.Far})
			}
		},
		serialise: func(c *codec, s *Snapshot) {
			for i := range s.DepthRanges {
				c.f64(&s.DepthRanges[i].Near)
				c.f64(&s.DepthRanges[i].Far)
			}
		},
	}, {
		name:     "depth bounds",
		requires: depthBounds,
		fallback: func(s *Snapshot) { s.DepthBounds = DepthRange{0, 1} },
		fetch: func(p *pass, s *Snapshot) {
			var v [2]float64
			p.c.GetDoublev(gles.GLenum_GL_DEPTH_BOUNDS_EXT, v[:])
			s.DepthBounds = DepthRange{v[0], v[1]}
		},
		apply: func(p *pass, s *Snapshot) { p.c.DepthBoundsEXT(s.DepthBounds.Near, s.DepthBounds.Far) },
		serialise: func(c *codec, s *Snapshot) {
			c.f64(&s.DepthBounds.Near)
			c.f64(&s.DepthBounds.Far)
		},
	}, {
		name: "stencil",
		fetch: func(p *pass, s *Snapshot) {
			for _, f := range stencilFaces {
				st := f.state(s)
				st.Func = p.enum(f.fn)
				st.Ref = p.integer(f.ref)
				st.ValueMask = uint8(p.integer(f.valueMask) & 0xff)
				st.WriteMask = uint8(p.integer(f.writeMask) & 0xff)
				st.StencilFail = p.enum(f.fail)
				st.DepthFail = p.enum(f.depthFail)
				st.Pass = p.enum(f.pass)
			}
		},
		apply: func(p *pass, s *Snapshot) {
			for _, f := range stencilFaces {
				st := f.state(s)
				p.c.StencilFuncSeparate(f.face, st.Func, st.Ref, uint32(st.ValueMask))
				p.c.StencilMaskSeparate(f.face, uint32(st.WriteMask))
				p.c.StencilOpSeparate(f.face, st.StencilFail, st.DepthFail, st.Pass)
			}
		},
		serialise: func(c *codec, s *Snapshot) {
			for _, f := range stencilFaces {
				st := f.state(s)
				c.enum(&st.Func)
				c.i32(&st.Ref)
				c.u8(&st.ValueMask)
				c.u8(&st.WriteMask)
				c.enum(&st.StencilFail)
				c.enum(&st.DepthFail)
				c.enum(&st.Pass)
			}
		},
	}, {
		name:      "stencil clear value",
		fetch:     func(p *pass, s *Snapshot) { s.StencilClearValue = p.integer(gles.GLenum_GL_STENCIL_CLEAR_VALUE) },
		apply:     func(p *pass, s *Snapshot) { p.c.ClearStencil(s.StencilClearValue) },
		serialise: func(c *codec, s *Snapshot) { c.i32(&s.StencilClearValue) },
	}, {
		name: "color masks",
		fetch: func(p *pass, s *Snapshot) {
			for i := range s.ColorMasks {
				var v [4]bool
				p.c.GetBooleani(gles.GLenum_GL_COLOR_WRITEMASK, uint32(i), v[:])
				s.ColorMasks[i] = ColorMask{v[0], v[1], v[2], v[3]}
			}
		},
		apply: func(p *pass, s *Snapshot) {
			for i, m := range s.ColorMasks {
				p.c.ColorMaski(uint32(i), m.Red, m.Green, m.Blue, m.Alpha)
			}
		},
		serialise: func(c *codec, s *Snapshot) {
			for i := range s.ColorMasks {
				m := &s.ColorMasks[i]
				c.boolean(&m.Red)
				c.boolean(&m.Green)
				c.boolean(&m.Blue)
				c.boolean(&m.Alpha)
			}
		},
	}, {
		name: "multisampling",
		fetch: func(p *pass, s *Snapshot) {
			s.SampleMask = uint32(p.integeri(gles.GLenum_GL_SAMPLE_MASK_VALUE, 0))
			s.SampleCoverage = p.float(gles.GLenum_GL_SAMPLE_COVERAGE_VALUE)
			s.SampleCoverageInvert = p.boolean(gles.GLenum_GL_SAMPLE_COVERAGE_INVERT)
			s.MinSampleShading = p.float(gles.GLenum_GL_MIN_SAMPLE_SHADING_VALUE)
		},
		apply: func(p *pass, s *Snapshot) {
			p.c.SampleMaski(0, gles.GLbitfield(s.SampleMask))
			p.c.SampleCoverage(s.SampleCoverage, s.SampleCoverageInvert)
			p.c.MinSampleShading(s.MinSampleShading)
		},
		serialise: func(c *codec, s *Snapshot) {
			c.u32(&s.SampleMask)
			c.f32(&s.SampleCoverage)
			c.boolean(&s.SampleCoverageInvert)
			c.f32(&s.MinSampleShading)
		},
	}, {
		name:      "logic op",
		fetch:     func(p *pass, s *Snapshot) { s.LogicOp = p.enum(gles.GLenum_GL_LOGIC_OP_MODE) },
		apply:     func(p *pass, s *Snapshot) { p.c.LogicOp(s.LogicOp) },
		serialise: func(c *codec, s *Snapshot) { c.enum(&s.LogicOp) },
	}, {
		name:  "clear color",
		fetch: func(p *pass, s *Snapshot) { p.c.GetFloatv(gles.GLenum_GL_COLOR_CLEAR_VALUE, s.ColorClearValue[:]) },
		apply: func(p *pass, s *Snapshot) {
			v := s.ColorClearValue
			p.c.ClearColor(v[0], v[1], v[2], v[3])
		},
		serialise: func(c *codec, s *Snapshot) { c.f32s(s.ColorClearValue[:]) },
	}, {
		name: "patch parameters",
		fetch: func(p *pass, s *Snapshot) {
			s.PatchParams.Vertices = p.integer(gles.GLenum_GL_PATCH_VERTICES)
			p.c.GetFloatv(gles.GLenum_GL_PATCH_DEFAULT_INNER_LEVEL, s.PatchParams.DefaultInnerLevel[:])
			p.c.GetFloatv(gles.GLenum_GL_PATCH_DEFAULT_OUTER_LEVEL, s.PatchParams.DefaultOuterLevel[:])
		},
		apply: func(p *pass, s *Snapshot) {
			inner, outer := s.PatchParams.DefaultInnerLevel, s.PatchParams.DefaultOuterLevel
			p.c.PatchParameteri(gles.GLenum_GL_PATCH_VERTICES, s.PatchParams.Vertices)
			p.c.PatchParameterfv(gles.GLenum_GL_PATCH_DEFAULT_INNER_LEVEL, inner[:])
			p.c.PatchParameterfv(gles.GLenum_GL_PATCH_DEFAULT_OUTER_LEVEL, outer[:])
		},
		serialise: func(c *codec, s *Snapshot) {
			c.i32(&s.PatchParams.Vertices)
			c.f32s(s.PatchParams.DefaultInnerLevel[:])
			c.f32s(s.PatchParams.DefaultOuterLevel[:])
		},
	}, {
		name: "polygon",
		fetch: func(p *pass, s *Snapshot) {
			// Documented as two values (front, back). Some core profile
			// drivers no longer answer at all, so start from FILL.
			mode := [2]int32{int32(gles.GLenum_GL_FILL), int32(gles.GLenum_GL_FILL)}
			p.c.GetIntegerv(gles.GLenum_GL_POLYGON_MODE, mode[:])
			s.PolygonMode = gles.GLenum(mode[0])
			s.PolygonOffset[0] = p.float(gles.GLenum_GL_POLYGON_OFFSET_FACTOR)
			s.PolygonOffset[1] = p.float(gles.GLenum_GL_POLYGON_OFFSET_UNITS)
		},
		apply: func(p *pass, s *Snapshot) {
			p.c.PolygonMode(gles.GLenum_GL_FRONT_AND_BACK, s.PolygonMode)
			p.c.PolygonOffset(s.PolygonOffset[0], s.PolygonOffset[1])
		},
		serialise: func(c *codec, s *Snapshot) {
			c.enum(&s.PolygonMode)
			c.f32s(s.PolygonOffset[:])
		},
	}, {
		name: "face culling",
		fetch: func(p *pass, s *Snapshot) {
			s.FrontFace = p.enum(gles.GLenum_GL_FRONT_FACE)
			s.CullFace = p.enum(gles.GLenum_GL_CULL_FACE_MODE)
		},
		apply: func(p *pass, s *Snapshot) {
			p.c.FrontFace(s.FrontFace)
			p.c.CullFace(s.CullFace)
		},
		serialise: func(c *codec, s *Snapshot) {
			c.enum(&s.FrontFace)
			c.enum(&s.CullFace)
		},
	},
}

func fetchSubroutines(p *pass, s *Snapshot) {
	for i, stage := range stages {
		sub := &s.Subroutines[i]
		prog := s.Program
		if prog == 0 && s.Pipeline != 0 {
			var v [1]int32
			p.c.GetProgramPipelineiv(s.Pipeline, stage, v[:])
			prog = gles.ProgramId(v[0])
		}
		if prog == 0 {
			sub.Count = 0
			continue
		}
		var n [1]int32
		p.c.GetProgramStageiv(prog, stage, gles.GLenum_GL_ACTIVE_SUBROUTINE_UNIFORM_LOCATIONS, n[:])
		sub.Count = clampCount(n[0])
		for l := int32(0); l < sub.Count; l++ {
			p.c.GetUniformSubroutineuiv(stage, l, sub.Values[l:l+1])
		}
	}
}

func clampCount(n int32) int32 {
	switch {
	case n < 0:
		return 0
	case n > MaxSubroutineUniforms:
		return MaxSubroutineUniforms
	default:
		return n
	}
}

func fetchIndexedBuffers(p *pass, s *Snapshot) {
	for _, k := range indexedKinds {
		bufs := k.buffers(s)
		n := p.limit(k.max, len(bufs))
		for i := 0; i < n; i++ {
			u := uint32(i)
			var name [1]int32
			p.c.GetIntegeri(k.binding, u, name[:])
			bufs[i].Name = gles.BufferId(name[0])
			var start, size [1]int64
			p.c.GetInteger64i(k.start, u, start[:])
			p.c.GetInteger64i(k.size, u, size[:])
			bufs[i].Start, bufs[i].Size = start[0], size[0]
		}
	}
}

func applyIndexedBuffers(p *pass, s *Snapshot) {
	for _, k := range indexedKinds {
		// Transform feedback buffer bindings belong to the bound feedback
		// object unless it is the default one.
		if k.target == gles.GLenum_GL_TRANSFORM_FEEDBACK_BUFFER && s.FeedbackObj != 0 {
			continue
		}
		bufs := k.buffers(s)
		n := p.limit(k.max, len(bufs))
		for i, b := range bufs[:n] {
			if b.Name == 0 || (b.Start == 0 && b.Size == 0) {
				p.c.BindBufferBase(k.target, uint32(i), b.Name)
			} else {
				p.c.BindBufferRange(k.target, uint32(i), b.Name, b.Start, b.Size)
			}
		}
	}
}

// replayDrawBuffer maps the default framebuffer's color buffers to the
// fake backbuffer's only attachment. Bare FRONT and BACK are not valid for
// glDrawBuffers but can be read back from the context; they imply LEFT.
func replayDrawBuffer(b gles.GLenum) gles.GLenum {
	switch b {
	case gles.GLenum_GL_BACK_LEFT, gles.GLenum_GL_BACK_RIGHT,
		gles.GLenum_GL_FRONT_LEFT, gles.GLenum_GL_FRONT_RIGHT,
		gles.GLenum_GL_BACK, gles.GLenum_GL_FRONT:
		return gles.GLenum_GL_COLOR_ATTACHMENT0
	}
	return b
}

type stencilFace struct {
	face      gles.GLenum
	fn        gles.GLenum
	ref       gles.GLenum
	valueMask gles.GLenum
	writeMask gles.GLenum
	fail      gles.GLenum
	depthFail gles.GLenum
	pass      gles.GLenum
	state     func(*Snapshot) *Stencil
}

var stencilFaces = [...]stencilFace{
	{
		face:      gles.GLenum_GL_FRONT,
		fn:        gles.GLenum_GL_STENCIL_FUNC,
		ref:       gles.GLenum_GL_STENCIL_REF,
		valueMask: gles.GLenum_GL_STENCIL_VALUE_MASK,
		writeMask: gles.GLenum_GL_STENCIL_WRITEMASK,
		fail:      gles.GLenum_GL_STENCIL_FAIL,
		depthFail: gles.GLenum_GL_STENCIL_PASS_DEPTH_FAIL,
		pass:      gles.GLenum_GL_STENCIL_PASS_DEPTH_PASS,
		state:     func(s *Snapshot) *Stencil { return &s.StencilFront },
	}, {
		face:      gles.GLenum_GL_BACK,
		fn:        gles.GLenum_GL_STENCIL_BACK_FUNC,
		ref:       gles.GLenum_GL_STENCIL_BACK_REF,
		valueMask: gles.GLenum_GL_STENCIL_BACK_VALUE_MASK,
		writeMask: gles.GLenum_GL_STENCIL_BACK_WRITEMASK,
		fail:      gles.GLenum_GL_STENCIL_BACK_FAIL,
		depthFail: gles.GLenum_GL_STENCIL_BACK_PASS_DEPTH_FAIL,
		pass:      gles.GLenum_GL_STENCIL_BACK_PASS_DEPTH_PASS,
		state:     func(s *Snapshot) *Stencil { return &s.StencilBack },
	},
}
