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

package log_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/glstate/core/log"
)

var testClock log.Clock

func init() {
	t, err := time.Parse("Mon Jan _2 15:04:05.999 2006", "Mon Jan 22 12:34:56.789 2000")
	if err != nil {
		panic(err)
	}
	testClock = log.FixedClock(t)
}

type testMessage struct {
	msg      string
	args     []interface{}
	values   log.V
	severity log.Severity
	tag      string

	raw    string
	brief  string
	normal string
}

func (m testMessage) send(h log.Handler) {
	ctx := context.Background()
	ctx = log.PutHandler(ctx, h)
	ctx = log.PutTag(ctx, m.tag)
	ctx = log.PutClock(ctx, testClock)
	ctx = m.values.Bind(ctx)
	log.From(ctx).Logf(m.severity, m.msg, m.args...)
}

var testMessages = []testMessage{
	{
		msg:      "plain warning",
		severity: log.Warning,

		raw:    "plain warning",
		brief:  "W: plain warning",
		normal: "12:34:56.789 W: plain warning",
	}, {
		msg:      "info with values",
		severity: log.Info,
		values:   log.V{"unit": 3, "kind": "texture"},

		raw:    "info with values",
		brief:  "I: info with values",
		normal: "12:34:56.789 I: info with values (kind: texture, unit: 3)",
	}, {
		msg:      "tagged %d",
		args:     []interface{}{7},
		severity: log.Debug,
		tag:      "glstate",

		raw:    "tagged 7",
		brief:  "D: tagged 7",
		normal: "12:34:56.789 D: [glstate] tagged 7",
	},
}

func TestStyles(t *testing.T) {
	for _, test := range []struct {
		style  log.Style
		expect func(testMessage) string
	}{
		{log.Raw, func(m testMessage) string { return m.raw }},
		{log.Brief, func(m testMessage) string { return m.brief }},
		{log.Normal, func(m testMessage) string { return m.normal }},
	} {
		for _, m := range testMessages {
			w, buf := log.Buffer()
			m.send(test.style.Handler(w))
			if got, expect := buf.String(), test.expect(m); got != expect {
				t.Errorf("%v style for %q: got %q, expected %q", test.style.Name, m.msg, got, expect)
			}
		}
	}
}

func TestFilter(t *testing.T) {
	w, buf := log.Buffer()
	ctx := log.PutHandler(context.Background(), log.Raw.Handler(w))
	ctx = log.PutFilter(ctx, log.SeverityFilter(log.Warning))
	log.D(ctx, "hidden")
	log.I(ctx, "hidden")
	log.W(ctx, "shown")
	log.E(ctx, "also shown")
	if got, expect := buf.String(), "shown\nalso shown"; got != expect {
		t.Errorf("Filtered output: got %q, expected %q", got, expect)
	}
}

func TestNoHandler(t *testing.T) {
	l := log.From(context.Background())
	if l.Active(log.Fatal) {
		t.Errorf("Logger without a handler should not be active")
	}
	l.E("dropped")
}

func TestErr(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("short read")
	err := log.Errf(ctx, cause, "Decoding %s", "state")
	if !strings.HasPrefix(err.Error(), "Decoding state") {
		t.Errorf("Unexpected error text %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Errorf("Error does not unwrap to its cause")
	}
	if got := log.Err(ctx, nil, "plain").Error(); got != "plain" {
		t.Errorf("Error without cause: got %q", got)
	}
}
