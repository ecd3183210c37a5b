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
	"sync"

	"github.com/google/glstate/core/data/id"
	"github.com/google/glstate/core/log"
)

type handleKey struct {
	kind   Kind
	handle Handle
}

type idKey struct {
	kind Kind
	id   id.ID
}

// Manager is the bidirectional identity table shared by every context of a
// capture or replay session. It is safe for concurrent use.
type Manager struct {
	mu   sync.RWMutex
	ids  map[handleKey]id.ID
	live map[idKey]Handle
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{
		ids:  map[handleKey]id.ID{},
		live: map[idKey]Handle{},
	}
}

// Track returns the identifier of the live object h, assigning a new unique
// identifier the first time h is seen.
func (m *Manager) Track(k Kind, h Handle) id.ID {
	if h == 0 {
		return id.ID{}
	}
	key := handleKey{k, h}
	m.mu.Lock()
	defer m.mu.Unlock()
	if i, ok := m.ids[key]; ok {
		return i
	}
	i := id.Unique()
	m.ids[key] = i
	m.live[idKey{k, i}] = h
	return i
}

// Bind associates the recorded identifier i with the live object h,
// replacing any previous association of either.
func (m *Manager) Bind(k Kind, i id.ID, h Handle) {
	if h == 0 || !i.IsValid() {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.live[idKey{k, i}]; ok {
		delete(m.ids, handleKey{k, old})
	}
	if old, ok := m.ids[handleKey{k, h}]; ok {
		delete(m.live, idKey{k, old})
	}
	m.ids[handleKey{k, h}] = i
	m.live[idKey{k, i}] = h
}

// Forget drops the live object h, for when the driver deletes it.
func (m *Manager) Forget(k Kind, h Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := handleKey{k, h}
	if i, ok := m.ids[key]; ok {
		delete(m.live, idKey{k, i})
		delete(m.ids, key)
	}
}

// ID implements Resolver.
func (m *Manager) ID(ctx context.Context, k Kind, h Handle) id.ID {
	if h == 0 {
		return id.ID{}
	}
	m.mu.RLock()
	i, ok := m.ids[handleKey{k, h}]
	m.mu.RUnlock()
	if !ok {
		log.W(ctx, "No identifier for %v %d", k, h)
	}
	return i
}

// Live implements Resolver.
func (m *Manager) Live(ctx context.Context, k Kind, i id.ID) Handle {
	if !i.IsValid() {
		return 0
	}
	m.mu.RLock()
	h, ok := m.live[idKey{k, i}]
	m.mu.RUnlock()
	if !ok {
		log.W(ctx, "No live %v for %v", k, i)
	}
	return h
}
