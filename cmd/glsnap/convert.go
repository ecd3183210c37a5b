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

package main

import (
	"bytes"
	"encoding/binary"
	"os"

	"github.com/google/glstate/capture"
	"github.com/google/glstate/core/log"
	"github.com/google/glstate/gles/glstate"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var (
	compressionFlag = &cli.StringFlag{
		Name:  "compression",
		Usage: "Payload compression of the output: none or zstd",
		Value: "zstd",
	}
	bigEndianFlag = &cli.BoolFlag{
		Name:  "big-endian",
		Usage: "Write the output payload big-endian",
	}
	convertCommand = &cli.Command{
		Name:      "convert",
		Usage:     "Rewrites a state chunk with a different compression or byte order",
		ArgsUsage: "<in> <out>",
		Flags:     []cli.Flag{compressionFlag, bigEndianFlag},
		Action:    convert,
	}
)

func convert(c *cli.Context) error {
	ctx := logContext(c)
	if c.NArg() != 2 {
		return errors.New("need input and output files as arguments")
	}
	in, out := c.Args().Get(0), c.Args().Get(1)
	compression, err := capture.ParseCompression(c.String(compressionFlag.Name))
	if err != nil {
		return err
	}
	opts := []capture.Option{capture.WithCompression(compression)}
	if c.Bool(bigEndianFlag.Name) {
		opts = append(opts, capture.WithByteOrder(binary.BigEndian))
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	// The offline resolver hands back the identifiers it was given, so the
	// resources survive the round trip unchanged.
	_, resolver, err := newResolver()
	if err != nil {
		return err
	}
	bb := fixedBackbuffer(0)
	s := &glstate.Snapshot{}
	if err := capture.Read(ctx, bytes.NewReader(data), s, bb, resolver); err != nil {
		return errors.Wrapf(err, "Reading %s", in)
	}
	buf := &bytes.Buffer{}
	if err := capture.Write(ctx, buf, s, bb, resolver, opts...); err != nil {
		return errors.Wrapf(err, "Encoding %s", out)
	}
	log.I(ctx, "Converted %s (%d bytes) to %s (%d bytes)", in, len(data), out, buf.Len())
	return os.WriteFile(out, buf.Bytes(), 0666)
}
