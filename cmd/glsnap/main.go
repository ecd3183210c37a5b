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

// The glsnap command inspects and converts GL state chunks.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/glstate/core/log"
	"github.com/urfave/cli/v2"
)

var verboseFlag = &cli.BoolFlag{
	Name:    "verbose",
	Aliases: []string{"v"},
	Usage:   "Log debug messages",
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "glsnap",
		Usage: "Inspect and convert GL state chunks",
		Flags: []cli.Flag{verboseFlag},
		Commands: []*cli.Command{
			infoCommand,
			dumpCommand,
			convertCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// logContext returns a context that logs to stderr at the severity selected
// by the command line flags.
func logContext(c *cli.Context) context.Context {
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = log.PutHandler(ctx, log.Brief.Handler(log.Std()))
	ctx = log.PutTag(ctx, "glsnap")
	severity := log.Warning
	if c.Bool(verboseFlag.Name) {
		severity = log.Debug
	}
	return log.PutFilter(ctx, log.SeverityFilter(severity))
}
