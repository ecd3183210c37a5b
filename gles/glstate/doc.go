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

// Package glstate captures the complete mutable state of a GL context into a
// Snapshot, applies a Snapshot back onto a context, and serialises Snapshots
// to capture streams.
//
// Every operation walks the same ordered table of state categories. The
// order is the wire format: a stream carries no tags, only position, so
// reordering or resizing any category breaks existing captures.
//
// Resource fields hold live driver handles. Only Serialise translates them,
// through a resource.Resolver, to identifiers that are stable across
// processes.
package glstate
