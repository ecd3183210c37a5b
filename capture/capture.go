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

package capture

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"

	"github.com/google/glstate/config"
	"github.com/google/glstate/core/data/endian"
	"github.com/google/glstate/core/log"
	"github.com/google/glstate/gles/glstate"
	"github.com/google/glstate/resource"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// The zstd encoder and decoder are safe for concurrent use of their
// EncodeAll and DecodeAll methods.
var (
	encoder, _ = zstd.NewWriter(nil)
	decoder, _ = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxPayloadSize))
)

type options struct {
	compression Compression
	order       binary.ByteOrder
}

// Option customizes Write.
type Option func(*options)

// WithCompression sets the payload compression. The default is None.
func WithCompression(c Compression) Option {
	return func(o *options) { o.compression = c }
}

// WithByteOrder sets the byte order of the payload. The default is
// little-endian. The header is always little-endian.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *options) { o.order = order }
}

// Write encodes s as a single chunk to w.
func Write(ctx context.Context, w io.Writer, s *glstate.Snapshot, bb glstate.Backbuffer, r resource.Resolver, opts ...Option) error {
	o := options{compression: None, order: binary.LittleEndian}
	for _, opt := range opts {
		opt(&o)
	}

	buf := &bytes.Buffer{}
	if err := s.Serialise(ctx, glstate.NewEncoder(endian.Writer(buf, o.order)), bb, r); err != nil {
		return errors.Wrap(err, "Encoding state")
	}
	payload := buf.Bytes()
	switch o.compression {
	case None:
	case Zstd:
		payload = encoder.EncodeAll(payload, make([]byte, 0, len(payload)/4))
	default:
		return errors.Wrapf(ErrUnknownCompression, "mode %d", uint8(o.compression))
	}
	if len(payload) > MaxPayloadSize {
		return errors.Wrapf(ErrTooLarge, "%d bytes", len(payload))
	}

	h := Header{
		Version:     Version,
		Compression: o.compression,
		BigEndian:   o.order == binary.BigEndian,
		Size:        uint32(len(payload)),
	}
	if config.LogStateSerialise {
		log.D(ctx, "Writing state chunk: %+v", h)
	}
	if err := h.write(w); err != nil {
		return errors.Wrap(err, "Writing state chunk header")
	}
	if _, err := w.Write(payload); err != nil {
		return errors.Wrap(err, "Writing state chunk payload")
	}
	return nil
}

// Read decodes a single chunk from r into s.
func Read(ctx context.Context, r io.Reader, s *glstate.Snapshot, bb glstate.Backbuffer, res resource.Resolver) error {
	h, err := ReadHeader(r)
	if err != nil {
		return err
	}
	if config.LogStateSerialise {
		log.D(ctx, "Reading state chunk: %+v", h)
	}
	payload := make([]byte, h.Size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return errors.Wrap(err, "Reading state chunk payload")
	}
	if h.Compression == Zstd {
		if payload, err = decoder.DecodeAll(payload, nil); err != nil {
			return errors.Wrap(err, "Decompressing state chunk")
		}
	}
	d := endian.Reader(bytes.NewReader(payload), h.ByteOrder())
	if err := s.Serialise(ctx, glstate.NewDecoder(d), bb, res); err != nil {
		return errors.Wrap(err, "Decoding state")
	}
	return nil
}
