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

package resource

import (
	"context"
	"sort"
	"sync"

	"github.com/google/glstate/core/data/id"
)

// Offline is a Resolver for inspecting recorded state without a live
// context. It hands out sequential handles, starting at 1 for each kind, to
// identifiers as it first sees them.
type Offline struct {
	mu      sync.Mutex
	next    map[Kind]Handle
	live    map[idKey]Handle
	entries []Entry
}

// Entry is one identifier to handle association made by Offline.
type Entry struct {
	Kind   Kind
	ID     id.ID
	Handle Handle
}

// NewOffline returns an empty Offline resolver.
func NewOffline() *Offline {
	return &Offline{
		next: map[Kind]Handle{},
		live: map[idKey]Handle{},
	}
}

// Live implements Resolver.
func (o *Offline) Live(ctx context.Context, k Kind, i id.ID) Handle {
	if !i.IsValid() {
		return 0
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	key := idKey{k, i}
	if h, ok := o.live[key]; ok {
		return h
	}
	o.next[k]++
	h := o.next[k]
	o.live[key] = h
	o.entries = append(o.entries, Entry{k, i, h})
	return h
}

// ID implements Resolver, returning identifiers previously given to Live.
func (o *Offline) ID(ctx context.Context, k Kind, h Handle) id.ID {
	if h == 0 {
		return id.ID{}
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, e := range o.entries {
		if e.Kind == k && e.Handle == h {
			return e.ID
		}
	}
	return id.ID{}
}

// Entries returns the associations made so far, ordered by kind then handle.
func (o *Offline) Entries() []Entry {
	o.mu.Lock()
	out := append([]Entry{}, o.entries...)
	o.mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Handle < out[j].Handle
	})
	return out
}
