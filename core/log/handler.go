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

package log

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"
)

// Handler is the handler of log messages.
type Handler interface {
	Handle(*Message)
	Close()
}

type handler struct {
	handle func(*Message)
	close  func()
}

func (h handler) Handle(m *Message) { h.handle(m) }
func (h handler) Close()            { h.close() }

// NewHandler returns a Handler that calls handle for each message and close
// when closed.
func NewHandler(handle func(*Message), close func()) Handler {
	if close == nil {
		close = func() {}
	}
	return handler{handle, close}
}

// Writer is a function that writes out a formatted log message.
type Writer func(text string, severity Severity)

// Std returns a Writer that writes to stdout if the message severity is less
// than an error, otherwise it writes to stderr.
func Std() Writer {
	return func(text string, severity Severity) {
		out := os.Stdout
		if severity >= Error {
			out = os.Stderr
		}
		out.WriteString(text)
		out.WriteString("\n")
	}
}

// Buffer returns a Writer that writes to the returned buffer.
func Buffer() (Writer, *bytes.Buffer) {
	buf, nl := &bytes.Buffer{}, false
	return func(text string, severity Severity) {
		if nl {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
		nl = true
	}, buf
}

// Style provides customization for printing messages.
type Style struct {
	Name      string // Name of the style.
	Timestamp bool   // If true, the timestamp will be printed if part of the message.
	Tag       bool   // If true, the tag will be printed if part of the message.
	Severity  bool   // If true, the short severity is printed.
	Values    bool   // If true, the values are printed on a single line.
}

var (
	// Raw is a style that only prints the text of the message.
	Raw = Style{Name: "raw"}

	// Brief is a style that only prints the text and short severity of the
	// message.
	Brief = Style{Name: "brief", Severity: true}

	// Normal is a style that prints the timestamp, tag, severity and values.
	Normal = Style{Name: "normal", Timestamp: true, Tag: true, Severity: true, Values: true}
)

// Handler returns a new Handler that writes to w with the given style.
func (s Style) Handler(w Writer) Handler {
	return NewHandler(func(msg *Message) { w(s.Print(msg), msg.Severity) }, nil)
}

// Print returns the message msg printed with the style s.
func (s Style) Print(msg *Message) string {
	var parts [5]string
	m := parts[:0]
	if s.Timestamp && !msg.Time.IsZero() {
		m = append(m, HHMMSSsss(msg.Time))
	}
	if s.Severity {
		m = append(m, msg.Severity.Short()+":")
	}
	if s.Tag && msg.Tag != "" {
		m = append(m, fmt.Sprintf("[%s]", msg.Tag))
	}
	m = append(m, msg.Text)
	if s.Values && len(msg.Values) > 0 {
		t := make([]string, len(msg.Values))
		for i, v := range msg.Values {
			t[i] = fmt.Sprintf("%v: %v", v.Name, v.Value)
		}
		m = append(m, fmt.Sprintf("(%v)", strings.Join(t, ", ")))
	}
	return strings.Join(m, " ")
}

// HHMMSSsss prints the time as a HH:MM:SS.sss
func HHMMSSsss(t time.Time) string {
	return fmt.Sprintf("%.2d:%.2d:%.2d.%.3d", t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/1e6)
}
