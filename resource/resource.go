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

// Package resource maps the transient handles a GL driver gives out to stable
// identifiers that survive across processes, and back again.
package resource

import (
	"context"

	"github.com/google/glstate/core/data/id"
)

// Kind is the type of GL object a handle names.
type Kind uint8

const (
	Texture Kind = iota
	Sampler
	VertexArray
	TransformFeedback
	Buffer
	Program
	Pipeline
	Framebuffer
)

var kindNames = [...]string{
	Texture:           "Texture",
	Sampler:           "Sampler",
	VertexArray:       "VertexArray",
	TransformFeedback: "TransformFeedback",
	Buffer:            "Buffer",
	Program:           "Program",
	Pipeline:          "Pipeline",
	Framebuffer:       "Framebuffer",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Handle is a live, process-local object name. Zero is never a valid object.
type Handle uint32

// Resolver translates between live handles and stable identifiers.
//
// Handle 0 maps to the null identifier and the null identifier maps to
// handle 0. A lookup that cannot be satisfied also returns the null value.
type Resolver interface {
	// ID returns the stable identifier of the live object h of kind k.
	ID(ctx context.Context, k Kind, h Handle) id.ID
	// Live returns the live handle currently associated with the stable
	// identifier i of kind k.
	Live(ctx context.Context, k Kind, i id.ID) Handle
}
