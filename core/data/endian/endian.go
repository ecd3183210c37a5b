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

// Package endian implements binary.Reader and binary.Writer over an
// io.Reader or io.Writer with a chosen byte order.
package endian

import (
	eb "encoding/binary"
	"io"
	"math"

	"github.com/google/glstate/core/data/binary"
	"github.com/pkg/errors"
)

// Reader creates a binary.Reader that reads from the provided io.Reader, with
// the specified byte order. A nil order means little-endian.
func Reader(r io.Reader, order eb.ByteOrder) binary.Reader {
	if order == nil {
		order = eb.LittleEndian
	}
	return &reader{reader: r, byteOrder: order}
}

// Writer creates a binary.Writer that writes to the supplied stream, with the
// specified byte order. A nil order means little-endian.
func Writer(w io.Writer, order eb.ByteOrder) binary.Writer {
	if order == nil {
		order = eb.LittleEndian
	}
	return &writer{writer: w, byteOrder: order}
}

type reader struct {
	reader    io.Reader
	tmp       [8]byte
	byteOrder eb.ByteOrder
	offset    int64
	err       error
}

type writer struct {
	writer    io.Writer
	tmp       [8]byte
	byteOrder eb.ByteOrder
	err       error
}

func (r *reader) Read(p []byte) (n int, err error) {
	if r.err != nil {
		return 0, r.err
	}
	n, err = r.reader.Read(p)
	r.offset += int64(n)
	return n, err
}

func (r *reader) Data(p []byte) {
	if r.err != nil {
		return
	}
	n, err := io.ReadFull(r.reader, p)
	r.offset += int64(n)
	if err != nil {
		r.err = errors.Wrapf(err, "reading %d bytes at offset %d", len(p), r.offset-int64(n))
	}
}

// fill reads n bytes into tmp. Once the stream has failed it returns zeros.
func (r *reader) fill(n int) []byte {
	b := r.tmp[:n]
	r.Data(b)
	if r.err != nil {
		for i := range b {
			b[i] = 0
		}
	}
	return b
}

func (w *writer) Data(data []byte) {
	if w.err != nil {
		return
	}
	n, err := w.writer.Write(data)
	if err != nil {
		w.err = err
	} else if n != len(data) {
		w.err = io.ErrShortWrite
	}
}

func (r *reader) Bool() bool { return r.Uint8() != 0 }

func (w *writer) Bool(v bool) {
	if v {
		w.Uint8(1)
	} else {
		w.Uint8(0)
	}
}

func (r *reader) Uint8() uint8 { return r.fill(1)[0] }

func (w *writer) Uint8(v uint8) {
	w.tmp[0] = v
	w.Data(w.tmp[:1])
}

func (r *reader) Uint16() uint16 { return r.byteOrder.Uint16(r.fill(2)) }

func (w *writer) Uint16(v uint16) {
	w.byteOrder.PutUint16(w.tmp[:], v)
	w.Data(w.tmp[:2])
}

func (r *reader) Int32() int32 { return int32(r.Uint32()) }

func (w *writer) Int32(v int32) { w.Uint32(uint32(v)) }

func (r *reader) Uint32() uint32 { return r.byteOrder.Uint32(r.fill(4)) }

func (w *writer) Uint32(v uint32) {
	w.byteOrder.PutUint32(w.tmp[:], v)
	w.Data(w.tmp[:4])
}

func (r *reader) Int64() int64 { return int64(r.Uint64()) }

func (w *writer) Int64(v int64) { w.Uint64(uint64(v)) }

func (r *reader) Uint64() uint64 { return r.byteOrder.Uint64(r.fill(8)) }

func (w *writer) Uint64(v uint64) {
	w.byteOrder.PutUint64(w.tmp[:], v)
	w.Data(w.tmp[:8])
}

func (r *reader) Float32() float32 { return math.Float32frombits(r.Uint32()) }

func (w *writer) Float32(v float32) { w.Uint32(math.Float32bits(v)) }

func (r *reader) Float64() float64 { return math.Float64frombits(r.Uint64()) }

func (w *writer) Float64(v float64) { w.Uint64(math.Float64bits(v)) }

func (w *writer) Error() error { return w.err }

func (r *reader) Error() error { return r.err }

func (r *reader) SetError(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (w *writer) SetError(err error) {
	if w.err == nil {
		w.err = err
	}
}
