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

	"github.com/google/glstate/config"
	"github.com/google/glstate/core/log"
	"github.com/google/glstate/resource"
)

// Fetch returns a new Snapshot of the current state of c.
func Fetch(ctx context.Context, c Context) *Snapshot {
	s := &Snapshot{}
	s.Fetch(ctx, c)
	return s
}

// Fetch overwrites s with the current state of c.
//
// Optional state that c cannot report is set to its GL default. Array state
// is read up to the smaller of the device limit and the array's capacity;
// entries past that are left as they were.
func (s *Snapshot) Fetch(ctx context.Context, c Context) {
	p := newPass(ctx, c)
	for i := range categories {
		cat := &categories[i]
		if !p.has(cat.requires) {
			if config.DebugStateFetch {
				log.D(ctx, "Fetch %s: not supported, using defaults", cat.name)
			}
			cat.fallback(s)
			continue
		}
		if config.DebugStateFetch {
			log.D(ctx, "Fetch %s", cat.name)
		}
		cat.fetch(p, s)
	}
}

// Apply makes c's state match s. Optional state that c does not support is
// skipped. s is not modified.
func (s *Snapshot) Apply(ctx context.Context, c Context) {
	p := newPass(ctx, c)
	if config.DebugStateApply {
		log.D(ctx, "Apply in %v mode", c.Mode())
	}
	for i := range categories {
		cat := &categories[i]
		if !p.has(cat.requires) {
			if config.DebugStateApply {
				log.D(ctx, "Apply %s: not supported, skipped", cat.name)
			}
			continue
		}
		if config.DebugStateApply {
			log.D(ctx, "Apply %s", cat.name)
		}
		cat.apply(p, s)
	}
}

// Serialise encodes s to, or decodes s from, the stream depending on the
// stream's direction.
//
// Resource handles are translated through r to stable identifiers on encode
// and back to live handles on decode. A null identifier decodes to no change.
// A framebuffer binding that decodes to zero is replaced by
// bb.FakeBackbuffer().
//
// The only error returned is the stream's I/O error. On error, s may be
// partially decoded.
func (s *Snapshot) Serialise(ctx context.Context, st *Stream, bb Backbuffer, r resource.Resolver) error {
	c := &codec{
		ctx:      ctx,
		decoding: st.Direction() == Decode,
		w:        st.w,
		r:        st.r,
		bb:       bb,
		resolver: r,
	}
	if config.LogStateSerialise {
		log.D(ctx, "Serialise: %v", st.Direction())
	}
	for i := range categories {
		cat := &categories[i]
		if config.LogStateSerialise {
			log.D(ctx, "Serialise %s", cat.name)
		}
		cat.serialise(c, s)
		if err := st.Error(); err != nil {
			return log.Errf(ctx, err, "Serialise %s", cat.name)
		}
	}
	return nil
}
