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

package gles_test

import (
	"testing"

	"github.com/google/glstate/core/assert"
	"github.com/google/glstate/core/log"
	"github.com/google/glstate/gles"
)

func TestParseVersion(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		str    string
		expect gles.Version
	}{
		{"4.6.0 NVIDIA 535.54.03", gles.Version{Major: 4, Minor: 6}},
		{"3.3 (Core Profile) Mesa 23.1.4", gles.Version{Major: 3, Minor: 3}},
		{"OpenGL ES 3.2 V@415.0", gles.Version{IsES: true, Major: 3, Minor: 2}},
	} {
		v, err := gles.ParseVersion(test.str)
		if assert.For(ctx, "parse %q", test.str).ThatError(err).Succeeded() {
			assert.For(ctx, "version of %q", test.str).That(*v).Equals(test.expect)
		}
	}
	_, err := gles.ParseVersion("garbage")
	assert.For(ctx, "bad version").ThatError(err).Failed()
}

func TestVersionAtLeast(t *testing.T) {
	ctx := log.Testing(t)
	gl45 := gles.Version{Major: 4, Minor: 5}
	es32 := gles.Version{IsES: true, Major: 3, Minor: 2}
	assert.For(ctx, "4.5 >= 4.5").ThatBoolean(gl45.AtLeastGL(4, 5)).IsTrue()
	assert.For(ctx, "4.5 >= 3.9").ThatBoolean(gl45.AtLeast(3, 9)).IsTrue()
	assert.For(ctx, "4.5 >= 4.6").ThatBoolean(gl45.AtLeast(4, 6)).IsFalse()
	assert.For(ctx, "ES is not GL").ThatBoolean(es32.AtLeastGL(3, 0)).IsFalse()
	assert.For(ctx, "ES 3.2 >= 3.1").ThatBoolean(es32.AtLeast(3, 1)).IsTrue()
	assert.For(ctx, "string").That(es32.String()).Equals("OpenGL ES 3.2")
}
