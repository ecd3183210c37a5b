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

// Package capture frames encoded state snapshots as self describing chunks
// that can be stored in a trace file or sent to a replay device.
//
// A chunk is a fixed 12 byte little-endian header followed by the payload:
//
//	magic       [4]byte "GLRS"
//	version     uint16
//	compression uint8
//	flags       uint8
//	size        uint32  payload size in bytes, after compression
package capture

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/google/glstate/core/data/endian"
	"github.com/google/glstate/core/fault"
	"github.com/pkg/errors"
)

const (
	// ErrBadMagic is returned when a chunk does not start with the magic bytes.
	ErrBadMagic = fault.Const("Incorrect state chunk magic")
	// ErrUnsupportedVersion is returned for a chunk version this package
	// cannot read.
	ErrUnsupportedVersion = fault.Const("Unsupported state chunk version")
	// ErrUnknownCompression is returned for an unrecognised compression mode.
	ErrUnknownCompression = fault.Const("Unknown state chunk compression")
	// ErrTooLarge is returned when a chunk payload exceeds MaxPayloadSize.
	ErrTooLarge = fault.Const("State chunk payload too large")
)

const (
	// Version is the chunk format version written by this package.
	Version = 1
	// HeaderSize is the size of the chunk header in bytes.
	HeaderSize = 12
	// MaxPayloadSize bounds both the stored and the decompressed payload.
	MaxPayloadSize = 16 << 20

	flagBigEndian = 1 << 0
)

var magic = [4]byte{'G', 'L', 'R', 'S'}

// Compression is the payload compression of a chunk.
type Compression uint8

const (
	None Compression = iota
	Zstd
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// MarshalText returns the name of c.
func (c Compression) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// ParseCompression returns the Compression with the given name.
func ParseCompression(name string) (Compression, error) {
	for _, c := range []Compression{None, Zstd} {
		if c.String() == name {
			return c, nil
		}
	}
	return None, errors.Wrapf(ErrUnknownCompression, "%q", name)
}

// Header is the decoded chunk header.
type Header struct {
	Version     uint16
	Compression Compression
	BigEndian   bool
	Size        uint32
}

// ByteOrder returns the byte order of the payload.
func (h Header) ByteOrder() binary.ByteOrder {
	if h.BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (h Header) write(w io.Writer) error {
	var flags uint8
	if h.BigEndian {
		flags |= flagBigEndian
	}
	e := endian.Writer(w, binary.LittleEndian)
	e.Data(magic[:])
	e.Uint16(h.Version)
	e.Uint8(uint8(h.Compression))
	e.Uint8(flags)
	e.Uint32(h.Size)
	return e.Error()
}

// ReadHeader reads and validates a chunk header from r.
func ReadHeader(r io.Reader) (Header, error) {
	d := endian.Reader(r, binary.LittleEndian)
	var m [4]byte
	d.Data(m[:])
	h := Header{
		Version:     d.Uint16(),
		Compression: Compression(d.Uint8()),
	}
	flags := d.Uint8()
	h.Size = d.Uint32()
	if err := d.Error(); err != nil {
		return Header{}, errors.Wrap(err, "Reading state chunk header")
	}
	h.BigEndian = flags&flagBigEndian != 0
	switch {
	case m != magic:
		return Header{}, errors.Wrapf(ErrBadMagic, "got %q", m[:])
	case h.Version != Version:
		return Header{}, errors.Wrapf(ErrUnsupportedVersion, "version %d", h.Version)
	case h.Compression > Zstd:
		return Header{}, errors.Wrapf(ErrUnknownCompression, "mode %d", uint8(h.Compression))
	case h.Size > MaxPayloadSize:
		return Header{}, errors.Wrapf(ErrTooLarge, "%d bytes", h.Size)
	}
	return h, nil
}
