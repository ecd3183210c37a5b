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

	"github.com/google/glstate/core/data/binary"
	"github.com/google/glstate/core/data/id"
	"github.com/google/glstate/gles"
	"github.com/google/glstate/resource"
)

// Direction is which way a Stream moves values.
type Direction int

const (
	// Encode writes Snapshot fields to the stream.
	Encode Direction = iota
	// Decode reads Snapshot fields from the stream.
	Decode
)

func (d Direction) String() string {
	if d == Decode {
		return "Decode"
	}
	return "Encode"
}

// Stream is one end of a capture stream, set up for a single direction.
type Stream struct {
	dir Direction
	w   binary.Writer
	r   binary.Reader
}

// NewEncoder returns a Stream that encodes to w.
func NewEncoder(w binary.Writer) *Stream { return &Stream{dir: Encode, w: w} }

// NewDecoder returns a Stream that decodes from r.
func NewDecoder(r binary.Reader) *Stream { return &Stream{dir: Decode, r: r} }

// Direction returns the direction of the stream.
func (s *Stream) Direction() Direction { return s.dir }

// Error returns the first I/O error the stream hit, or nil.
func (s *Stream) Error() error {
	if s.dir == Decode {
		return s.r.Error()
	}
	return s.w.Error()
}

// codec visits Snapshot fields in either direction. Every method either
// writes *v or overwrites *v with the next value in the stream.
type codec struct {
	ctx      context.Context
	decoding bool
	w        binary.Writer
	r        binary.Reader
	bb       Backbuffer
	resolver resource.Resolver
}

func (c *codec) boolean(v *bool) {
	if c.decoding {
		*v = c.r.Bool()
	} else {
		c.w.Bool(*v)
	}
}

func (c *codec) booleans(v []bool) {
	for i := range v {
		c.boolean(&v[i])
	}
}

func (c *codec) u8(v *uint8) {
	if c.decoding {
		*v = c.r.Uint8()
	} else {
		c.w.Uint8(*v)
	}
}

func (c *codec) u32(v *uint32) {
	if c.decoding {
		*v = c.r.Uint32()
	} else {
		c.w.Uint32(*v)
	}
}

func (c *codec) u32s(v []uint32) {
	for i := range v {
		c.u32(&v[i])
	}
}

func (c *codec) i32(v *int32) {
	if c.decoding {
		*v = c.r.Int32()
	} else {
		c.w.Int32(*v)
	}
}

func (c *codec) i64(v *int64) {
	if c.decoding {
		*v = c.r.Int64()
	} else {
		c.w.Int64(*v)
	}
}

func (c *codec) enum(v *gles.GLenum) {
	if c.decoding {
		*v = gles.GLenum(c.r.Uint32())
	} else {
		c.w.Uint32(uint32(*v))
	}
}

func (c *codec) enums(v []gles.GLenum) {
	for i := range v {
		c.enum(&v[i])
	}
}

func (c *codec) f32(v *float32) {
	if c.decoding {
		*v = c.r.Float32()
	} else {
		c.w.Float32(*v)
	}
}

func (c *codec) f32s(v []float32) {
	for i := range v {
		c.f32(&v[i])
	}
}

func (c *codec) f64(v *float64) {
	if c.decoding {
		*v = c.r.Float64()
	} else {
		c.w.Float64(*v)
	}
}

func (c *codec) identifier(v *id.ID) {
	if c.decoding {
		c.r.Data(v[:])
	} else {
		c.w.Data(v[:])
	}
}

// handle visits a resource field as its stable identifier. Handle 0 is
// written as the null identifier without consulting the resolver, and a null
// identifier leaves the field as it was.
func handle[T ~uint32](c *codec, kind resource.Kind, v *T) {
	var i id.ID
	if !c.decoding && *v != 0 {
		i = c.resolver.ID(c.ctx, kind, resource.Handle(*v))
	}
	c.identifier(&i)
	if c.decoding && i.IsValid() {
		*v = T(c.resolver.Live(c.ctx, kind, i))
	}
}

// framebuffer is handle for framebuffer bindings. A binding that decodes to
// zero is replaced by the fake backbuffer, as the real default framebuffer
// does not exist during replay.
func (c *codec) framebuffer(v *gles.FramebufferId) {
	handle(c, resource.Framebuffer, v)
	if c.decoding && *v == 0 {
		*v = c.bb.FakeBackbuffer()
	}
}
