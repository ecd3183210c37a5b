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

package glstate_test

import (
	"bytes"
	"context"
	"encoding/binary"

	"github.com/google/glstate/core/data/endian"
	"github.com/google/glstate/core/data/id"
	"github.com/google/glstate/gles"
	"github.com/google/glstate/gles/glstate"
	"github.com/google/glstate/gles/gltest"
	"github.com/google/glstate/resource"
)

const (
	testProgram  = gles.ProgramId(7)
	testPipeline = gles.PipelineId(8)
)

type backbuffer gles.FramebufferId

func (b backbuffer) FakeBackbuffer() gles.FramebufferId { return gles.FramebufferId(b) }

// recorder assigns identifiers to handles as it sees them, the way a capture
// session does.
type recorder struct{ *resource.Manager }

func (r recorder) ID(ctx context.Context, k resource.Kind, h resource.Handle) id.ID {
	return r.Track(k, h)
}

// stamp writes the kind and handle into the identifier itself, so encoded
// handles can be read straight from the stream bytes.
type stamp struct{}

func (stamp) ID(ctx context.Context, k resource.Kind, h resource.Handle) id.ID {
	var i id.ID
	i[0] = byte(k) + 1
	binary.LittleEndian.PutUint32(i[1:], uint32(h))
	return i
}

func (stamp) Live(ctx context.Context, k resource.Kind, i id.ID) resource.Handle {
	return resource.Handle(binary.LittleEndian.Uint32(i[1:]))
}

type counting struct {
	resource.Resolver
	ids, lives int
}

func (c *counting) ID(ctx context.Context, k resource.Kind, h resource.Handle) id.ID {
	c.ids++
	return c.Resolver.ID(ctx, k, h)
}

func (c *counting) Live(ctx context.Context, k resource.Kind, i id.ID) resource.Handle {
	c.lives++
	return c.Resolver.Live(ctx, k, i)
}

func encode(ctx context.Context, s *glstate.Snapshot, r resource.Resolver) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := s.Serialise(ctx, glstate.NewEncoder(endian.Writer(buf, nil)), backbuffer(0), r)
	return buf.Bytes(), err
}

func decode(ctx context.Context, data []byte, s *glstate.Snapshot, bb glstate.Backbuffer, r resource.Resolver) error {
	return s.Serialise(ctx, glstate.NewDecoder(endian.Reader(bytes.NewReader(data), nil)), bb, r)
}

// populated returns a snapshot with every field, at full capacity, set to
// a value distinct from the zero baseline.
func populated() *glstate.Snapshot {
	s := &glstate.Snapshot{}
	for i := range s.Enabled {
		s.Enabled[i] = i%2 == 0
	}
	for i := range s.Tex2D {
		s.Tex2D[i] = gles.TextureId(100 + i)
		s.Samplers[i] = gles.SamplerId(300 + i)
	}
	s.ActiveTexture = gles.GLenum_GL_TEXTURE0 + 3
	s.VAO = 5
	s.FeedbackObj = 6
	for i := range s.GenericVertexAttribs {
		for j := range s.GenericVertexAttribs[i] {
			s.GenericVertexAttribs[i][j] = float32(i) + float32(j)/4
		}
	}
	s.PointFadeThresholdSize = 1.5
	s.PointSpriteOrigin = gles.GLenum_GL_LOWER_LEFT
	s.LineWidth = 2
	s.PointSize = 3
	s.PrimitiveRestartIndex = 0xffff
	s.ClipOrigin = gles.GLenum_GL_UPPER_LEFT
	s.ClipDepth = gles.GLenum_GL_ZERO_TO_ONE
	s.ProvokingVertex = gles.GLenum_GL_FIRST_VERTEX_CONVENTION
	s.Program = testProgram
	s.Pipeline = testPipeline
	for i := range s.Subroutines {
		s.Subroutines[i].Count = int32(i + 1)
		for j := range s.Subroutines[i].Values {
			s.Subroutines[i].Values[j] = uint32(i*1000 + j + 1)
		}
	}
	for i := range s.BufferBindings {
		s.BufferBindings[i] = gles.BufferId(20 + i)
	}
	for _, bufs := range [][]glstate.IndexedBuffer{
		s.AtomicCounter[:], s.ShaderStorage[:], s.TransformFeedback[:], s.UniformBinding[:],
	} {
		for i := range bufs {
			bufs[i] = glstate.IndexedBuffer{Name: gles.BufferId(40 + i), Start: int64(i * 256), Size: 128}
		}
	}
	for i := range s.Blends {
		s.Blends[i] = glstate.Blend{
			SourceRGB:        gles.GLenum_GL_ONE,
			SourceAlpha:      gles.GLenum_GL_ONE,
			DestinationRGB:   gles.GLenum_GL_ZERO,
			DestinationAlpha: gles.GLenum_GL_ONE,
			EquationRGB:      gles.GLenum_GL_FUNC_ADD,
			EquationAlpha:    gles.GLenum_GL_FUNC_ADD,
			Enabled:          i%2 == 1,
		}
	}
	s.BlendColor = [4]float32{0.25, 0.5, 0.75, 1}
	for i := range s.Viewports {
		s.Viewports[i] = glstate.Viewport{X: float32(i), Y: float32(2 * i), Width: 640, Height: 480}
		s.Scissors[i] = glstate.Scissor{X: int32(i), Y: int32(i), Width: 320, Height: 240, Enabled: i%3 == 0}
		s.DepthRanges[i] = glstate.DepthRange{Near: float64(i) / 32, Far: 1 - float64(i)/32}
	}
	s.DrawFBO = 9
	s.ReadFBO = 10
	for i := range s.DrawBuffers {
		s.DrawBuffers[i] = gles.GLenum_GL_COLOR_ATTACHMENT0 + gles.GLenum(i)
	}
	s.Hints = glstate.Hints{
		Derivatives:    gles.GLenum_GL_NICEST,
		LineSmooth:     gles.GLenum_GL_FASTEST,
		PolySmooth:     gles.GLenum_GL_DONT_CARE,
		TexCompression: gles.GLenum_GL_NICEST,
	}
	s.DepthWriteMask = true
	s.DepthClearValue = 0.5
	s.DepthFunc = gles.GLenum_GL_LEQUAL
	s.DepthBounds = glstate.DepthRange{Near: 0.25, Far: 0.75}
	s.StencilFront = glstate.Stencil{
		Func: gles.GLenum_GL_EQUAL, Ref: 1, ValueMask: 0xf0, WriteMask: 0x0f,
		StencilFail: gles.GLenum_GL_REPLACE, DepthFail: gles.GLenum_GL_INCR, Pass: gles.GLenum_GL_KEEP,
	}
	s.StencilBack = glstate.Stencil{
		Func: gles.GLenum_GL_GREATER, Ref: 2, ValueMask: 0x3c, WriteMask: 0xff,
		StencilFail: gles.GLenum_GL_KEEP, DepthFail: gles.GLenum_GL_REPLACE, Pass: gles.GLenum_GL_INCR,
	}
	s.StencilClearValue = 4
	for i := range s.ColorMasks {
		s.ColorMasks[i] = glstate.ColorMask{Red: true, Green: i%2 == 0, Blue: false, Alpha: true}
	}
	s.SampleMask = 0xffff0000
	s.SampleCoverage = 0.5
	s.SampleCoverageInvert = true
	s.MinSampleShading = 0.25
	s.LogicOp = gles.GLenum_GL_XOR
	s.ColorClearValue = [4]float32{0.5, 0.25, 0.125, 1}
	s.PatchParams = glstate.PatchParams{
		Vertices:          3,
		DefaultInnerLevel: [2]float32{1, 2},
		DefaultOuterLevel: [4]float32{1, 2, 3, 4},
	}
	s.PolygonMode = gles.GLenum_GL_LINE
	s.PolygonOffset = [2]float32{1, 2}
	s.FrontFace = gles.GLenum_GL_CW
	s.CullFace = gles.GLenum_GL_FRONT
	return s
}

// applicable returns the subset of populated that a gltest.New context can
// hold and report back unchanged, along with that context.
func applicable() (*glstate.Snapshot, *gltest.Context) {
	c := gltest.New()
	s := populated()
	s.FeedbackObj = 0
	for i := 16; i < glstate.MaxVertexAttribs; i++ {
		s.GenericVertexAttribs[i] = [4]float32{}
	}
	for i := 72; i < glstate.MaxUniformBuffers; i++ {
		s.UniformBinding[i] = glstate.IndexedBuffer{}
	}
	for i := range s.Subroutines {
		sub := &s.Subroutines[i]
		for j := int(sub.Count); j < len(sub.Values); j++ {
			sub.Values[j] = 0
		}
		c.SetStageSubroutines(testProgram, glstate.Stage(i), sub.Count)
	}
	s.DepthBounds = glstate.DepthRange{Near: 0, Far: 1}
	return s, c
}
