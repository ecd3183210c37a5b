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

package id_test

import (
	"testing"

	"github.com/google/glstate/core/assert"
	"github.com/google/glstate/core/data/id"
	"github.com/google/glstate/core/log"
)

var (
	sampleID  = id.ID{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19}
	sampleStr = "0001020304050607080910111213141516171819"
)

func TestIDString(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "String").That(sampleID.String()).Equals(sampleStr)
}

func TestIDParse(t *testing.T) {
	ctx := log.Testing(t)
	got, err := id.Parse(sampleStr)
	assert.For(ctx, "parse").ThatError(err).Succeeded()
	assert.For(ctx, "parsed").That(got).Equals(sampleID)

	_, err = id.Parse("0001")
	assert.For(ctx, "short").ThatError(err).Failed()
	_, err = id.Parse("not hex at all")
	assert.For(ctx, "bad hex").ThatError(err).Failed()
}

func TestIDText(t *testing.T) {
	ctx := log.Testing(t)
	text, err := sampleID.MarshalText()
	assert.For(ctx, "marshal").ThatError(err).Succeeded()
	var got id.ID
	assert.For(ctx, "unmarshal").ThatError(got.UnmarshalText(text)).Succeeded()
	assert.For(ctx, "value").That(got).Equals(sampleID)
}

func TestIDValid(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "null").That(id.ID{}.IsValid()).Equals(false)
	assert.For(ctx, "hash").That(id.OfString("texture").IsValid()).Equals(true)
	assert.For(ctx, "hash is stable").That(id.OfString("a", "b")).Equals(id.OfString("ab"))
}

func TestUnique(t *testing.T) {
	ctx := log.Testing(t)
	seen := map[id.ID]bool{}
	for i := 0; i < 100; i++ {
		u := id.Unique()
		assert.For(ctx, "unique %d", i).That(seen[u]).Equals(false)
		seen[u] = true
	}
}
