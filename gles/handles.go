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

// Object handles as handed out by a GL driver. Zero is the unbound value for
// every kind.
type (
	TextureId           uint32
	SamplerId           uint32
	VertexArrayId       uint32
	TransformFeedbackId uint32
	BufferId            uint32
	ProgramId           uint32
	PipelineId          uint32
	FramebufferId       uint32
)
