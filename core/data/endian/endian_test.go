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

package endian_test

import (
	"bytes"
	eb "encoding/binary"
	"testing"

	"github.com/google/glstate/core/assert"
	"github.com/google/glstate/core/data/endian"
	"github.com/google/glstate/core/fault"
	"github.com/google/glstate/core/log"
)

func TestLayout(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		order  eb.ByteOrder
		expect []byte
	}{
		{eb.LittleEndian, []byte{1, 0x34, 0x12, 0x78, 0x56, 0x34, 0x12, 0, 0, 0x80, 0x3f}},
		{eb.BigEndian, []byte{1, 0x12, 0x34, 0x12, 0x34, 0x56, 0x78, 0x3f, 0x80, 0, 0}},
	} {
		buf := &bytes.Buffer{}
		w := endian.Writer(buf, test.order)
		w.Bool(true)
		w.Uint16(0x1234)
		w.Uint32(0x12345678)
		w.Float32(1)
		assert.For(ctx, "write error").ThatError(w.Error()).Succeeded()
		assert.For(ctx, "%v bytes", test.order).ThatSlice(buf.Bytes()).Equals(test.expect)

		r := endian.Reader(bytes.NewReader(buf.Bytes()), test.order)
		assert.For(ctx, "bool").That(r.Bool()).Equals(true)
		assert.For(ctx, "uint16").That(r.Uint16()).Equals(uint16(0x1234))
		assert.For(ctx, "uint32").That(r.Uint32()).Equals(uint32(0x12345678))
		assert.For(ctx, "float32").That(r.Float32()).Equals(float32(1))
		assert.For(ctx, "read error").ThatError(r.Error()).Succeeded()
	}
}

func TestValues(t *testing.T) {
	ctx := log.Testing(t)
	buf := &bytes.Buffer{}
	w := endian.Writer(buf, nil)
	w.Int32(-7)
	w.Int64(-1 << 40)
	w.Uint64(1 << 63)
	w.Float64(0.25)
	w.Uint8(200)
	w.Data([]byte("GLRS"))
	assert.For(ctx, "size").That(buf.Len()).Equals(4 + 8 + 8 + 8 + 1 + 4)

	r := endian.Reader(bytes.NewReader(buf.Bytes()), nil)
	assert.For(ctx, "int32").That(r.Int32()).Equals(int32(-7))
	assert.For(ctx, "int64").That(r.Int64()).Equals(int64(-1 << 40))
	assert.For(ctx, "uint64").That(r.Uint64()).Equals(uint64(1 << 63))
	assert.For(ctx, "float64").That(r.Float64()).Equals(0.25)
	assert.For(ctx, "uint8").That(r.Uint8()).Equals(uint8(200))
	tag := make([]byte, 4)
	r.Data(tag)
	assert.For(ctx, "data").That(string(tag)).Equals("GLRS")
	assert.For(ctx, "read error").ThatError(r.Error()).Succeeded()
}

func TestShortRead(t *testing.T) {
	ctx := log.Testing(t)
	r := endian.Reader(bytes.NewReader([]byte{1, 2}), nil)
	assert.For(ctx, "truncated").That(r.Uint32()).Equals(uint32(0))
	assert.For(ctx, "error").ThatError(r.Error()).Failed()
	assert.For(ctx, "sticky").That(r.Uint8()).Equals(uint8(0))
}

func TestSetError(t *testing.T) {
	ctx := log.Testing(t)
	buf := &bytes.Buffer{}
	w := endian.Writer(buf, nil)
	w.SetError(errStop)
	w.Uint32(5)
	assert.For(ctx, "no bytes after error").That(buf.Len()).Equals(0)
	assert.For(ctx, "error").ThatError(w.Error()).Equals(errStop)
}

const errStop = fault.Const("stop")
