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

package fault_test

import (
	"testing"

	"github.com/google/glstate/core/fault"
)

const (
	anError      = fault.Const("some message")
	anotherError = fault.Const("another")
)

func TestConst(t *testing.T) {
	if got := anError.Error(); got != "some message" {
		t.Errorf("Const error text: got %q", got)
	}
	var err error = anError
	if err != anError {
		t.Errorf("Const errors should compare equal")
	}
}

func TestOne(t *testing.T) {
	o := fault.One{}
	if o.First() != nil {
		t.Errorf("Empty collector should have no error")
	}
	o.Collect(nil)
	o.Collect(anError)
	o.Collect(anotherError)
	if o.First() != anError {
		t.Errorf("Expected first error %v, got %v", anError, o.First())
	}
}
