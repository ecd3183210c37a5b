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
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/glstate/capture"
	"github.com/google/glstate/core/data/id"
	"github.com/google/glstate/core/log"
	"github.com/google/glstate/gles"
	"github.com/google/glstate/gles/glstate"
	"github.com/google/glstate/resource"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

var (
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Output format: yaml or spew",
		Value: "yaml",
	}
	backbufferFlag = &cli.UintFlag{
		Name:  "backbuffer",
		Usage: "Framebuffer handle that stands in for the default framebuffer",
		Value: 1 << 31,
	}
)

var (
	infoCommand = &cli.Command{
		Name:      "info",
		Usage:     "Prints the header of a state chunk",
		ArgsUsage: "<chunk>",
		Action:    info,
	}
	dumpCommand = &cli.Command{
		Name:      "dump",
		Usage:     "Decodes a state chunk and prints the snapshot",
		ArgsUsage: "<chunk>",
		Flags:     []cli.Flag{formatFlag, backbufferFlag},
		Action:    dump,
	}
)

// resolverCacheSize bounds the lookups remembered per direction. A snapshot
// references at most a few hundred objects.
const resolverCacheSize = 1024

// newResolver returns an Offline resolver and the cached view of it that is
// handed to the state chunk functions.
func newResolver() (*resource.Offline, resource.Resolver, error) {
	offline := resource.NewOffline()
	cached, err := resource.Cached(offline, resolverCacheSize)
	if err != nil {
		return nil, nil, err
	}
	return offline, cached, nil
}

type fixedBackbuffer gles.FramebufferId

func (b fixedBackbuffer) FakeBackbuffer() gles.FramebufferId { return gles.FramebufferId(b) }

// resourceEntry is the printed form of a resource.Entry.
type resourceEntry struct {
	Kind   string `yaml:"kind"`
	ID     id.ID  `yaml:"id"`
	Handle uint32 `yaml:"handle"`
}

type report struct {
	Header    capture.Header    `yaml:"header"`
	Resources []resourceEntry   `yaml:"resources"`
	State     *glstate.Snapshot `yaml:"state"`
}

func openChunk(c *cli.Context) (*os.File, error) {
	if c.NArg() != 1 {
		return nil, errors.New("need a state chunk file as argument")
	}
	return os.Open(c.Args().First())
}

func info(c *cli.Context) error {
	f, err := openChunk(c)
	if err != nil {
		return err
	}
	defer f.Close()
	h, err := capture.ReadHeader(f)
	if err != nil {
		return errors.Wrapf(err, "Reading %s", f.Name())
	}
	fmt.Fprintf(c.App.Writer, "version:     %d\n", h.Version)
	fmt.Fprintf(c.App.Writer, "compression: %v\n", h.Compression)
	fmt.Fprintf(c.App.Writer, "byte order:  %v\n", h.ByteOrder())
	fmt.Fprintf(c.App.Writer, "size:        %d\n", h.Size)
	return nil
}

func dump(c *cli.Context) error {
	ctx := logContext(c)
	format := c.String(formatFlag.Name)
	if format != "yaml" && format != "spew" {
		return errors.Errorf("unknown format %q", format)
	}
	f, err := openChunk(c)
	if err != nil {
		return err
	}
	defer f.Close()
	h, err := capture.ReadHeader(f)
	if err != nil {
		return errors.Wrapf(err, "Reading %s", f.Name())
	}
	if _, err := f.Seek(0, 0); err != nil {
		return err
	}

	offline, resolver, err := newResolver()
	if err != nil {
		return err
	}
	s := &glstate.Snapshot{}
	bb := fixedBackbuffer(c.Uint(backbufferFlag.Name))
	if err := capture.Read(ctx, f, s, bb, resolver); err != nil {
		return errors.Wrapf(err, "Reading %s", f.Name())
	}
	log.D(ctx, "Decoded %s: %d resources", f.Name(), len(offline.Entries()))

	r := report{Header: h, State: s}
	for _, e := range offline.Entries() {
		r.Resources = append(r.Resources, resourceEntry{e.Kind.String(), e.ID, uint32(e.Handle)})
	}
	if format == "spew" {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
		cfg.Fdump(c.App.Writer, r)
		return nil
	}
	enc := yaml.NewEncoder(c.App.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "Encoding yaml")
	}
	return enc.Close()
}
